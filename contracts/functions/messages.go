package functions

import (
	"math/big"

	"github.com/wippyai/tvm-cells/cell"
	"github.com/wippyai/tvm-cells/dict"
	"github.com/wippyai/tvm-cells/errors"
	"github.com/wippyai/tvm-cells/tact"
	"github.com/wippyai/tvm-cells/tuple"
)

const (
	OpAdd uint32 = 831841332
	OpSub uint32 = 2640337643
)

// Add increments the counter by Value.
type Add struct {
	Value *big.Int
}

// Sub decrements the counter by Value.
type Sub struct {
	Value *big.Int
}

func storeAmount(op uint32, v *big.Int) func(*cell.Builder) error {
	return func(b *cell.Builder) error {
		if err := b.StoreUint(uint64(op), 32); err != nil {
			return err
		}
		if err := b.StoreBigInt(v, 257); err != nil {
			return errors.WithPath(err, "value")
		}
		return nil
	}
}

func loadAmount(s *cell.Slice, op uint32, typeName string) (*big.Int, error) {
	if err := tact.LoadOpcode(s, op, typeName); err != nil {
		return nil, err
	}
	v, err := s.LoadBigInt(257)
	if err != nil {
		return nil, errors.WithPath(err, "value")
	}
	return v, nil
}

func storeTupleAmount(v *big.Int) ([]tuple.Item, error) {
	b := tuple.NewBuilder()
	b.WriteNumber(v)
	return b.Build()
}

func loadTupleAmount(r *tuple.Reader) (*big.Int, error) {
	v, err := r.ReadBigNumber()
	if err != nil {
		return nil, errors.WithPath(err, "value")
	}
	return v, nil
}

func StoreAdd(v Add) func(*cell.Builder) error {
	return storeAmount(OpAdd, v.Value)
}

func LoadAdd(s *cell.Slice) (Add, error) {
	v, err := loadAmount(s, OpAdd, "Add")
	return Add{Value: v}, err
}

func StoreTupleAdd(v Add) ([]tuple.Item, error) {
	return storeTupleAmount(v.Value)
}

func LoadTupleAdd(r *tuple.Reader) (Add, error) {
	v, err := loadTupleAmount(r)
	return Add{Value: v}, err
}

func DictValueAdd() dict.ValueCodec[Add] {
	return tact.DictValue(StoreAdd, LoadAdd)
}

func StoreSub(v Sub) func(*cell.Builder) error {
	return storeAmount(OpSub, v.Value)
}

func LoadSub(s *cell.Slice) (Sub, error) {
	v, err := loadAmount(s, OpSub, "Sub")
	return Sub{Value: v}, err
}

func StoreTupleSub(v Sub) ([]tuple.Item, error) {
	return storeTupleAmount(v.Value)
}

func LoadTupleSub(r *tuple.Reader) (Sub, error) {
	v, err := loadTupleAmount(r)
	return Sub{Value: v}, err
}

func DictValueSub() dict.ValueCodec[Sub] {
	return tact.DictValue(StoreSub, LoadSub)
}
