package jetton

import (
	"math/big"

	"github.com/wippyai/tvm-cells/cell"
	"github.com/wippyai/tvm-cells/dict"
	"github.com/wippyai/tvm-cells/errors"
	"github.com/wippyai/tvm-cells/tact"
	"github.com/wippyai/tvm-cells/tuple"
)

// JettonData is the result of get_jetton_data.
type JettonData struct {
	TotalSupply *big.Int
	Mintable    bool
	Owner       *cell.Address
	Content     *cell.Cell
	WalletCode  *cell.Cell
}

func StoreJettonData(v JettonData) func(*cell.Builder) error {
	return func(b *cell.Builder) error {
		if err := b.StoreBigInt(v.TotalSupply, 257); err != nil {
			return errors.WithPath(err, "totalSupply")
		}
		if err := b.StoreBit(v.Mintable); err != nil {
			return errors.WithPath(err, "mintable")
		}
		if err := b.StoreAddress(v.Owner); err != nil {
			return errors.WithPath(err, "owner")
		}
		if err := b.StoreMaybeRef(v.Content); err != nil {
			return errors.WithPath(err, "content")
		}
		if err := b.StoreRef(v.WalletCode); err != nil {
			return errors.WithPath(err, "walletCode")
		}
		return nil
	}
}

func LoadJettonData(s *cell.Slice) (JettonData, error) {
	var v JettonData
	var err error
	if v.TotalSupply, err = s.LoadBigInt(257); err != nil {
		return v, errors.WithPath(err, "totalSupply")
	}
	if v.Mintable, err = s.LoadBit(); err != nil {
		return v, errors.WithPath(err, "mintable")
	}
	if v.Owner, err = s.LoadAddress(); err != nil {
		return v, errors.WithPath(err, "owner")
	}
	if v.Content, err = s.LoadMaybeRef(); err != nil {
		return v, errors.WithPath(err, "content")
	}
	if v.WalletCode, err = s.LoadRef(); err != nil {
		return v, errors.WithPath(err, "walletCode")
	}
	return v, nil
}

func StoreTupleJettonData(v JettonData) ([]tuple.Item, error) {
	b := tuple.NewBuilder()
	b.WriteNumber(v.TotalSupply)
	b.WriteBool(v.Mintable)
	b.WriteAddress(v.Owner)
	b.WriteCell(v.Content)
	b.WriteCell(v.WalletCode)
	return b.Build()
}

func LoadTupleJettonData(r *tuple.Reader) (JettonData, error) {
	var v JettonData
	var err error
	if v.TotalSupply, err = r.ReadBigNumber(); err != nil {
		return v, errors.WithPath(err, "totalSupply")
	}
	if v.Mintable, err = r.ReadBool(); err != nil {
		return v, errors.WithPath(err, "mintable")
	}
	if v.Owner, err = r.ReadAddress(); err != nil {
		return v, errors.WithPath(err, "owner")
	}
	if v.Content, err = r.ReadCellOpt(); err != nil {
		return v, errors.WithPath(err, "content")
	}
	if v.WalletCode, err = r.ReadCell(); err != nil {
		return v, errors.WithPath(err, "walletCode")
	}
	return v, nil
}

func DictValueJettonData() dict.ValueCodec[JettonData] {
	return tact.DictValue(StoreJettonData, LoadJettonData)
}

// JettonWalletData is the result of a wallet's get_wallet_data.
type JettonWalletData struct {
	Balance    *big.Int
	Owner      *cell.Address
	Master     *cell.Address
	WalletCode *cell.Cell
}

func StoreJettonWalletData(v JettonWalletData) func(*cell.Builder) error {
	return func(b *cell.Builder) error {
		if err := b.StoreBigInt(v.Balance, 257); err != nil {
			return errors.WithPath(err, "balance")
		}
		if err := b.StoreAddress(v.Owner); err != nil {
			return errors.WithPath(err, "owner")
		}
		if err := b.StoreAddress(v.Master); err != nil {
			return errors.WithPath(err, "master")
		}
		if err := b.StoreRef(v.WalletCode); err != nil {
			return errors.WithPath(err, "walletCode")
		}
		return nil
	}
}

func LoadJettonWalletData(s *cell.Slice) (JettonWalletData, error) {
	var v JettonWalletData
	var err error
	if v.Balance, err = s.LoadBigInt(257); err != nil {
		return v, errors.WithPath(err, "balance")
	}
	if v.Owner, err = s.LoadAddress(); err != nil {
		return v, errors.WithPath(err, "owner")
	}
	if v.Master, err = s.LoadAddress(); err != nil {
		return v, errors.WithPath(err, "master")
	}
	if v.WalletCode, err = s.LoadRef(); err != nil {
		return v, errors.WithPath(err, "walletCode")
	}
	return v, nil
}

func StoreTupleJettonWalletData(v JettonWalletData) ([]tuple.Item, error) {
	b := tuple.NewBuilder()
	b.WriteNumber(v.Balance)
	b.WriteAddress(v.Owner)
	b.WriteAddress(v.Master)
	b.WriteCell(v.WalletCode)
	return b.Build()
}

func LoadTupleJettonWalletData(r *tuple.Reader) (JettonWalletData, error) {
	var v JettonWalletData
	var err error
	if v.Balance, err = r.ReadBigNumber(); err != nil {
		return v, errors.WithPath(err, "balance")
	}
	if v.Owner, err = r.ReadAddress(); err != nil {
		return v, errors.WithPath(err, "owner")
	}
	if v.Master, err = r.ReadAddress(); err != nil {
		return v, errors.WithPath(err, "master")
	}
	if v.WalletCode, err = r.ReadCell(); err != nil {
		return v, errors.WithPath(err, "walletCode")
	}
	return v, nil
}

func DictValueJettonWalletData() dict.ValueCodec[JettonWalletData] {
	return tact.DictValue(StoreJettonWalletData, LoadJettonWalletData)
}
