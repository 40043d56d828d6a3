package tact

import (
	"math/big"

	"github.com/wippyai/tvm-cells/cell"
	"github.com/wippyai/tvm-cells/dict"
	"github.com/wippyai/tvm-cells/errors"
	"github.com/wippyai/tvm-cells/tuple"
)

// StateInit is the code and data a contract is deployed with.
type StateInit struct {
	Code *cell.Cell
	Data *cell.Cell
}

func StoreStateInit(v StateInit) func(*cell.Builder) error {
	return func(b *cell.Builder) error {
		if err := b.StoreRef(v.Code); err != nil {
			return errors.WithPath(err, "code")
		}
		if err := b.StoreRef(v.Data); err != nil {
			return errors.WithPath(err, "data")
		}
		return nil
	}
}

func LoadStateInit(s *cell.Slice) (StateInit, error) {
	var v StateInit
	var err error
	if v.Code, err = s.LoadRef(); err != nil {
		return v, errors.WithPath(err, "code")
	}
	if v.Data, err = s.LoadRef(); err != nil {
		return v, errors.WithPath(err, "data")
	}
	return v, nil
}

func StoreTupleStateInit(v StateInit) ([]tuple.Item, error) {
	b := tuple.NewBuilder()
	b.WriteCell(v.Code)
	b.WriteCell(v.Data)
	return b.Build()
}

func LoadTupleStateInit(r *tuple.Reader) (StateInit, error) {
	var v StateInit
	var err error
	if v.Code, err = r.ReadCell(); err != nil {
		return v, errors.WithPath(err, "code")
	}
	if v.Data, err = r.ReadCell(); err != nil {
		return v, errors.WithPath(err, "data")
	}
	return v, nil
}

func DictValueStateInit() dict.ValueCodec[StateInit] {
	return DictValue(StoreStateInit, LoadStateInit)
}

// Context describes the message being processed.
type Context struct {
	Bounced bool
	Sender  *cell.Address
	Value   *big.Int
	Raw     *cell.Cell
}

func StoreContext(v Context) func(*cell.Builder) error {
	return func(b *cell.Builder) error {
		if err := b.StoreBit(v.Bounced); err != nil {
			return errors.WithPath(err, "bounced")
		}
		if err := b.StoreAddress(v.Sender); err != nil {
			return errors.WithPath(err, "sender")
		}
		if err := b.StoreBigInt(v.Value, 257); err != nil {
			return errors.WithPath(err, "value")
		}
		if err := b.StoreRef(v.Raw); err != nil {
			return errors.WithPath(err, "raw")
		}
		return nil
	}
}

func LoadContext(s *cell.Slice) (Context, error) {
	var v Context
	var err error
	if v.Bounced, err = s.LoadBit(); err != nil {
		return v, errors.WithPath(err, "bounced")
	}
	if v.Sender, err = s.LoadAddress(); err != nil {
		return v, errors.WithPath(err, "sender")
	}
	if v.Value, err = s.LoadBigInt(257); err != nil {
		return v, errors.WithPath(err, "value")
	}
	if v.Raw, err = s.LoadRef(); err != nil {
		return v, errors.WithPath(err, "raw")
	}
	return v, nil
}

func StoreTupleContext(v Context) ([]tuple.Item, error) {
	b := tuple.NewBuilder()
	b.WriteBool(v.Bounced)
	b.WriteAddress(v.Sender)
	b.WriteNumber(v.Value)
	b.WriteSlice(v.Raw)
	return b.Build()
}

func LoadTupleContext(r *tuple.Reader) (Context, error) {
	var v Context
	var err error
	if v.Bounced, err = r.ReadBool(); err != nil {
		return v, errors.WithPath(err, "bounced")
	}
	if v.Sender, err = r.ReadAddress(); err != nil {
		return v, errors.WithPath(err, "sender")
	}
	if v.Value, err = r.ReadBigNumber(); err != nil {
		return v, errors.WithPath(err, "value")
	}
	if v.Raw, err = r.ReadCell(); err != nil {
		return v, errors.WithPath(err, "raw")
	}
	return v, nil
}

func DictValueContext() dict.ValueCodec[Context] {
	return DictValue(StoreContext, LoadContext)
}

// SendParameters are the arguments of an outgoing message.
type SendParameters struct {
	Bounce bool
	To     *cell.Address
	Value  *big.Int
	Mode   *big.Int
	Body   *cell.Cell
	Code   *cell.Cell
	Data   *cell.Cell
}

func StoreSendParameters(v SendParameters) func(*cell.Builder) error {
	return func(b *cell.Builder) error {
		if err := b.StoreBit(v.Bounce); err != nil {
			return errors.WithPath(err, "bounce")
		}
		if err := b.StoreAddress(v.To); err != nil {
			return errors.WithPath(err, "to")
		}
		if err := b.StoreBigInt(v.Value, 257); err != nil {
			return errors.WithPath(err, "value")
		}
		if err := b.StoreBigInt(v.Mode, 257); err != nil {
			return errors.WithPath(err, "mode")
		}
		if err := b.StoreMaybeRef(v.Body); err != nil {
			return errors.WithPath(err, "body")
		}
		if err := b.StoreMaybeRef(v.Code); err != nil {
			return errors.WithPath(err, "code")
		}
		if err := b.StoreMaybeRef(v.Data); err != nil {
			return errors.WithPath(err, "data")
		}
		return nil
	}
}

func LoadSendParameters(s *cell.Slice) (SendParameters, error) {
	var v SendParameters
	var err error
	if v.Bounce, err = s.LoadBit(); err != nil {
		return v, errors.WithPath(err, "bounce")
	}
	if v.To, err = s.LoadAddress(); err != nil {
		return v, errors.WithPath(err, "to")
	}
	if v.Value, err = s.LoadBigInt(257); err != nil {
		return v, errors.WithPath(err, "value")
	}
	if v.Mode, err = s.LoadBigInt(257); err != nil {
		return v, errors.WithPath(err, "mode")
	}
	if v.Body, err = s.LoadMaybeRef(); err != nil {
		return v, errors.WithPath(err, "body")
	}
	if v.Code, err = s.LoadMaybeRef(); err != nil {
		return v, errors.WithPath(err, "code")
	}
	if v.Data, err = s.LoadMaybeRef(); err != nil {
		return v, errors.WithPath(err, "data")
	}
	return v, nil
}

func StoreTupleSendParameters(v SendParameters) ([]tuple.Item, error) {
	b := tuple.NewBuilder()
	b.WriteBool(v.Bounce)
	b.WriteAddress(v.To)
	b.WriteNumber(v.Value)
	b.WriteNumber(v.Mode)
	b.WriteCell(v.Body)
	b.WriteCell(v.Code)
	b.WriteCell(v.Data)
	return b.Build()
}

func LoadTupleSendParameters(r *tuple.Reader) (SendParameters, error) {
	var v SendParameters
	var err error
	if v.Bounce, err = r.ReadBool(); err != nil {
		return v, errors.WithPath(err, "bounce")
	}
	if v.To, err = r.ReadAddress(); err != nil {
		return v, errors.WithPath(err, "to")
	}
	if v.Value, err = r.ReadBigNumber(); err != nil {
		return v, errors.WithPath(err, "value")
	}
	if v.Mode, err = r.ReadBigNumber(); err != nil {
		return v, errors.WithPath(err, "mode")
	}
	if v.Body, err = r.ReadCellOpt(); err != nil {
		return v, errors.WithPath(err, "body")
	}
	if v.Code, err = r.ReadCellOpt(); err != nil {
		return v, errors.WithPath(err, "code")
	}
	if v.Data, err = r.ReadCellOpt(); err != nil {
		return v, errors.WithPath(err, "data")
	}
	return v, nil
}

func DictValueSendParameters() dict.ValueCodec[SendParameters] {
	return DictValue(StoreSendParameters, LoadSendParameters)
}
