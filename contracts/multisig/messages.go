package multisig

import (
	"math"
	"math/big"

	"github.com/wippyai/tvm-cells/cell"
	"github.com/wippyai/tvm-cells/dict"
	"github.com/wippyai/tvm-cells/errors"
	"github.com/wippyai/tvm-cells/tact"
	"github.com/wippyai/tvm-cells/tuple"
)

const (
	OpRequest uint32 = 4266760323
	OpSigned  uint32 = 2213172633
)

// Request proposes a transfer that members approve.
type Request struct {
	Requested *cell.Address
	To        *cell.Address
	Value     *big.Int
	Timeout   uint32
	Bounce    bool
	Mode      uint8
	Body      *cell.Cell
}

func StoreRequest(v Request) func(*cell.Builder) error {
	return func(b *cell.Builder) error {
		if err := b.StoreUint(uint64(OpRequest), 32); err != nil {
			return err
		}
		if err := b.StoreAddress(v.Requested); err != nil {
			return errors.WithPath(err, "requested")
		}
		if err := b.StoreAddress(v.To); err != nil {
			return errors.WithPath(err, "to")
		}
		if err := b.StoreBigCoins(v.Value); err != nil {
			return errors.WithPath(err, "value")
		}
		if err := b.StoreUint(uint64(v.Timeout), 32); err != nil {
			return errors.WithPath(err, "timeout")
		}
		if err := b.StoreBit(v.Bounce); err != nil {
			return errors.WithPath(err, "bounce")
		}
		if err := b.StoreUint(uint64(v.Mode), 8); err != nil {
			return errors.WithPath(err, "mode")
		}
		if err := b.StoreMaybeRef(v.Body); err != nil {
			return errors.WithPath(err, "body")
		}
		return nil
	}
}

func LoadRequest(s *cell.Slice) (Request, error) {
	var v Request
	var err error
	if err = tact.LoadOpcode(s, OpRequest, "Request"); err != nil {
		return v, err
	}
	if v.Requested, err = s.LoadAddress(); err != nil {
		return v, errors.WithPath(err, "requested")
	}
	if v.To, err = s.LoadAddress(); err != nil {
		return v, errors.WithPath(err, "to")
	}
	if v.Value, err = s.LoadBigCoins(); err != nil {
		return v, errors.WithPath(err, "value")
	}
	timeout, err := s.LoadUint(32)
	if err != nil {
		return v, errors.WithPath(err, "timeout")
	}
	v.Timeout = uint32(timeout)
	if v.Bounce, err = s.LoadBit(); err != nil {
		return v, errors.WithPath(err, "bounce")
	}
	mode, err := s.LoadUint(8)
	if err != nil {
		return v, errors.WithPath(err, "mode")
	}
	v.Mode = uint8(mode)
	if v.Body, err = s.LoadMaybeRef(); err != nil {
		return v, errors.WithPath(err, "body")
	}
	return v, nil
}

func StoreTupleRequest(v Request) ([]tuple.Item, error) {
	b := tuple.NewBuilder()
	b.WriteAddress(v.Requested)
	b.WriteAddress(v.To)
	b.WriteNumber(v.Value)
	b.WriteUint64(uint64(v.Timeout))
	b.WriteBool(v.Bounce)
	b.WriteUint64(uint64(v.Mode))
	b.WriteCell(v.Body)
	return b.Build()
}

func LoadTupleRequest(r *tuple.Reader) (Request, error) {
	var v Request
	var err error
	if v.Requested, err = r.ReadAddress(); err != nil {
		return v, errors.WithPath(err, "requested")
	}
	if v.To, err = r.ReadAddress(); err != nil {
		return v, errors.WithPath(err, "to")
	}
	if v.Value, err = r.ReadBigNumber(); err != nil {
		return v, errors.WithPath(err, "value")
	}
	timeout, err := readBounded(r, math.MaxUint32, 32)
	if err != nil {
		return v, errors.WithPath(err, "timeout")
	}
	v.Timeout = uint32(timeout)
	if v.Bounce, err = r.ReadBool(); err != nil {
		return v, errors.WithPath(err, "bounce")
	}
	mode, err := readBounded(r, math.MaxUint8, 8)
	if err != nil {
		return v, errors.WithPath(err, "mode")
	}
	v.Mode = uint8(mode)
	if v.Body, err = r.ReadCellOpt(); err != nil {
		return v, errors.WithPath(err, "body")
	}
	return v, nil
}

// readBounded reads an unsigned stack integer no larger than limit.
func readBounded(r *tuple.Reader, limit uint64, bits uint) (uint64, error) {
	v, err := r.ReadUint64()
	if err != nil {
		return 0, err
	}
	if v > limit {
		return 0, errors.IntegerOutOfRange(errors.PhaseTuple, v, bits, false)
	}
	return v, nil
}

func DictValueRequest() dict.ValueCodec[Request] {
	return tact.DictValue(StoreRequest, LoadRequest)
}

// Signed carries an approved request. The request, op code included, is
// embedded inline.
type Signed struct {
	Request Request
}

func StoreSigned(v Signed) func(*cell.Builder) error {
	return func(b *cell.Builder) error {
		if err := b.StoreUint(uint64(OpSigned), 32); err != nil {
			return err
		}
		if err := b.Store(StoreRequest(v.Request)); err != nil {
			return errors.WithPath(err, "request")
		}
		return nil
	}
}

func LoadSigned(s *cell.Slice) (Signed, error) {
	var v Signed
	var err error
	if err = tact.LoadOpcode(s, OpSigned, "Signed"); err != nil {
		return v, err
	}
	if v.Request, err = LoadRequest(s); err != nil {
		return v, errors.WithPath(err, "request")
	}
	return v, nil
}

func StoreTupleSigned(v Signed) ([]tuple.Item, error) {
	req, err := StoreTupleRequest(v.Request)
	if err != nil {
		return nil, errors.WithPath(err, "request")
	}
	b := tuple.NewBuilder()
	b.WriteTuple(req)
	return b.Build()
}

func LoadTupleSigned(r *tuple.Reader) (Signed, error) {
	var v Signed
	sub, err := r.ReadTuple()
	if err != nil {
		return v, errors.WithPath(err, "request")
	}
	if v.Request, err = LoadTupleRequest(sub); err != nil {
		return v, errors.WithPath(err, "request")
	}
	return v, nil
}

func DictValueSigned() dict.ValueCodec[Signed] {
	return tact.DictValue(StoreSigned, LoadSigned)
}
