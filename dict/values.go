package dict

import (
	"math/big"

	"github.com/wippyai/tvm-cells/cell"
)

// ValueCodec writes and reads one dictionary value in place.
type ValueCodec[V any] interface {
	Serialize(V, *cell.Builder) error
	Parse(*cell.Slice) (V, error)
}

// FuncCodec adapts a pair of functions to ValueCodec.
type FuncCodec[V any] struct {
	SerializeFunc func(V, *cell.Builder) error
	ParseFunc     func(*cell.Slice) (V, error)
}

// Serialize implements ValueCodec.
func (f FuncCodec[V]) Serialize(v V, b *cell.Builder) error {
	return f.SerializeFunc(v, b)
}

// Parse implements ValueCodec.
func (f FuncCodec[V]) Parse(s *cell.Slice) (V, error) {
	return f.ParseFunc(s)
}

// ValueUint stores unsigned integers of the given width (at most 64).
func ValueUint(bits uint) ValueCodec[uint64] {
	return FuncCodec[uint64]{
		SerializeFunc: func(v uint64, b *cell.Builder) error { return b.StoreUint(v, bits) },
		ParseFunc:     func(s *cell.Slice) (uint64, error) { return s.LoadUint(bits) },
	}
}

// ValueInt stores signed integers of the given width (at most 64).
func ValueInt(bits uint) ValueCodec[int64] {
	return FuncCodec[int64]{
		SerializeFunc: func(v int64, b *cell.Builder) error { return b.StoreInt(v, bits) },
		ParseFunc:     func(s *cell.Slice) (int64, error) { return s.LoadInt(bits) },
	}
}

// ValueBigUint stores unsigned integers up to 256 bits.
func ValueBigUint(bits uint) ValueCodec[*big.Int] {
	return FuncCodec[*big.Int]{
		SerializeFunc: func(v *big.Int, b *cell.Builder) error { return b.StoreBigUint(v, bits) },
		ParseFunc:     func(s *cell.Slice) (*big.Int, error) { return s.LoadBigUint(bits) },
	}
}

// ValueBigInt stores signed integers up to 257 bits.
func ValueBigInt(bits uint) ValueCodec[*big.Int] {
	return FuncCodec[*big.Int]{
		SerializeFunc: func(v *big.Int, b *cell.Builder) error { return b.StoreBigInt(v, bits) },
		ParseFunc:     func(s *cell.Slice) (*big.Int, error) { return s.LoadBigInt(bits) },
	}
}

// ValueBool stores a single bit.
func ValueBool() ValueCodec[bool] {
	return FuncCodec[bool]{
		SerializeFunc: func(v bool, b *cell.Builder) error { return b.StoreBit(v) },
		ParseFunc:     func(s *cell.Slice) (bool, error) { return s.LoadBit() },
	}
}

// ValueCoins stores variable-length amounts.
func ValueCoins() ValueCodec[*big.Int] {
	return FuncCodec[*big.Int]{
		SerializeFunc: func(v *big.Int, b *cell.Builder) error { return b.StoreBigCoins(v) },
		ParseFunc:     func(s *cell.Slice) (*big.Int, error) { return s.LoadBigCoins() },
	}
}

// ValueAddress stores standard addresses; nil is addr_none.
func ValueAddress() ValueCodec[*cell.Address] {
	return FuncCodec[*cell.Address]{
		SerializeFunc: func(v *cell.Address, b *cell.Builder) error { return b.StoreAddress(v) },
		ParseFunc:     func(s *cell.Slice) (*cell.Address, error) { return s.LoadMaybeAddress() },
	}
}

// ValueCell stores a cell by reference.
func ValueCell() ValueCodec[*cell.Cell] {
	return FuncCodec[*cell.Cell]{
		SerializeFunc: func(v *cell.Cell, b *cell.Builder) error { return b.StoreRef(v) },
		ParseFunc:     func(s *cell.Slice) (*cell.Cell, error) { return s.LoadRef() },
	}
}

// ValueDict stores a nested dictionary as a maybe-reference.
func ValueDict[K, V any](keys KeyCodec[K], values ValueCodec[V]) ValueCodec[*Dictionary[K, V]] {
	return FuncCodec[*Dictionary[K, V]]{
		SerializeFunc: func(d *Dictionary[K, V], b *cell.Builder) error { return d.Store(b) },
		ParseFunc: func(s *cell.Slice) (*Dictionary[K, V], error) {
			return Load(s, keys, values)
		},
	}
}

// ValueRef stores each value in its own cell, referenced from the leaf.
func ValueRef[V any](inner ValueCodec[V]) ValueCodec[V] {
	return FuncCodec[V]{
		SerializeFunc: func(v V, b *cell.Builder) error {
			nb := cell.BeginCell()
			if err := inner.Serialize(v, nb); err != nil {
				return err
			}
			return b.StoreRef(nb.EndCell())
		},
		ParseFunc: func(s *cell.Slice) (V, error) {
			c, err := s.LoadRef()
			if err != nil {
				var zero V
				return zero, err
			}
			return inner.Parse(c.BeginParse())
		},
	}
}
