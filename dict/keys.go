package dict

import (
	"math/big"

	"github.com/wippyai/tvm-cells/cell"
	"github.com/wippyai/tvm-cells/errors"
)

// KeyCodec maps keys to fixed-width bit strings. Encode returns the key bits
// MSB-first in ceil(Bits/8) bytes.
type KeyCodec[K any] interface {
	Bits() uint
	Encode(K) ([]byte, error)
	Decode([]byte) (K, error)
}

type keyCodec[K any] struct {
	bits  uint
	store func(*cell.Builder, K) error
	load  func(*cell.Slice) (K, error)
}

func (k keyCodec[K]) Bits() uint {
	return k.bits
}

func (k keyCodec[K]) Encode(key K) ([]byte, error) {
	b := cell.BeginCell()
	if err := k.store(b, key); err != nil {
		return nil, err
	}
	if b.BitsUsed() != k.bits {
		return nil, errors.InvalidData(errors.PhaseDict, nil, "key encoding has wrong width")
	}
	return b.EndCell().Data(), nil
}

func (k keyCodec[K]) Decode(data []byte) (K, error) {
	c, err := cell.New(data, k.bits)
	if err != nil {
		var zero K
		return zero, err
	}
	return k.load(c.BeginParse())
}

// KeyUint keys by unsigned integers of the given width (at most 64 bits).
func KeyUint(bits uint) KeyCodec[uint64] {
	return keyCodec[uint64]{
		bits:  bits,
		store: func(b *cell.Builder, v uint64) error { return b.StoreUint(v, bits) },
		load:  func(s *cell.Slice) (uint64, error) { return s.LoadUint(bits) },
	}
}

// KeyInt keys by signed integers of the given width (at most 64 bits).
func KeyInt(bits uint) KeyCodec[int64] {
	return keyCodec[int64]{
		bits:  bits,
		store: func(b *cell.Builder, v int64) error { return b.StoreInt(v, bits) },
		load:  func(s *cell.Slice) (int64, error) { return s.LoadInt(bits) },
	}
}

// KeyBigUint keys by unsigned integers up to 256 bits wide.
func KeyBigUint(bits uint) KeyCodec[*big.Int] {
	return keyCodec[*big.Int]{
		bits:  bits,
		store: func(b *cell.Builder, v *big.Int) error { return b.StoreBigUint(v, bits) },
		load:  func(s *cell.Slice) (*big.Int, error) { return s.LoadBigUint(bits) },
	}
}

// KeyBigInt keys by signed integers up to 257 bits wide.
func KeyBigInt(bits uint) KeyCodec[*big.Int] {
	return keyCodec[*big.Int]{
		bits:  bits,
		store: func(b *cell.Builder, v *big.Int) error { return b.StoreBigInt(v, bits) },
		load:  func(s *cell.Slice) (*big.Int, error) { return s.LoadBigInt(bits) },
	}
}

// KeyAddress keys by standard addresses in their 267-bit stored form.
func KeyAddress() KeyCodec[*cell.Address] {
	return keyCodec[*cell.Address]{
		bits: cell.AddressBits,
		store: func(b *cell.Builder, a *cell.Address) error {
			if a == nil {
				return errors.InvalidData(errors.PhaseDict, nil, "nil address key")
			}
			return b.StoreAddress(a)
		},
		load: func(s *cell.Slice) (*cell.Address, error) { return s.LoadAddress() },
	}
}
