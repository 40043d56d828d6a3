package cell

import (
	"math/big"
	mbits "math/bits"

	"github.com/wippyai/tvm-cells/cell/internal/bits"
	"github.com/wippyai/tvm-cells/errors"
)

const (
	maxUintBits  = 256
	maxIntBits   = 257
	maxCoinBytes = 15
)

// Builder accumulates bits and references for a new cell. A Builder has a
// single owner; it is not safe for concurrent use.
//
// Every Store method either applies completely or returns an error and leaves
// the builder untouched.
type Builder struct {
	bits *bits.String
	refs []*Cell
}

// BeginCell starts an empty builder.
func BeginCell() *Builder {
	return &Builder{bits: bits.New(MaxBits)}
}

// BitsUsed returns the number of bits written so far.
func (b *Builder) BitsUsed() uint {
	return b.bits.Len()
}

// RefsUsed returns the number of references written so far.
func (b *Builder) RefsUsed() int {
	return len(b.refs)
}

// BitsLeft returns the remaining bit capacity.
func (b *Builder) BitsLeft() uint {
	return MaxBits - b.bits.Len()
}

// RefsLeft returns the remaining reference capacity.
func (b *Builder) RefsLeft() int {
	return MaxRefs - len(b.refs)
}

func (b *Builder) reserve(nbits uint, nrefs int) error {
	if nbits > b.BitsLeft() {
		return errors.CapacityExceeded("cell bits", int(nbits), int(b.BitsLeft()))
	}
	if nrefs > b.RefsLeft() {
		return errors.CapacityExceeded("cell refs", nrefs, b.RefsLeft())
	}
	return nil
}

// StoreBit appends a single bit.
func (b *Builder) StoreBit(v bool) error {
	if err := b.reserve(1, 0); err != nil {
		return err
	}
	b.bits.AppendBit(v)
	return nil
}

// StoreUint appends v as an unsigned big-endian integer of width bits (at
// most 64).
func (b *Builder) StoreUint(v uint64, width uint) error {
	if width > 64 {
		return errors.InvalidWidth(errors.PhaseStore, width, 64)
	}
	if width < 64 && v>>width != 0 {
		return errors.IntegerOutOfRange(errors.PhaseStore, v, width, false)
	}
	if err := b.reserve(width, 0); err != nil {
		return err
	}
	b.bits.AppendUint(v, width)
	return nil
}

// StoreInt appends v as a two's-complement integer of width bits (at most 64).
func (b *Builder) StoreInt(v int64, width uint) error {
	if width > 64 {
		return errors.InvalidWidth(errors.PhaseStore, width, 64)
	}
	if !intFits(v, width) {
		return errors.IntegerOutOfRange(errors.PhaseStore, v, width, true)
	}
	if err := b.reserve(width, 0); err != nil {
		return err
	}
	b.bits.AppendUint(uint64(v), width)
	return nil
}

func intFits(v int64, width uint) bool {
	switch {
	case width == 0:
		return v == 0
	case width >= 64:
		return true
	}
	limit := int64(1) << (width - 1)
	return v >= -limit && v < limit
}

// StoreBigUint appends a non-negative integer of width bits (at most 256).
func (b *Builder) StoreBigUint(v *big.Int, width uint) error {
	if width > maxUintBits {
		return errors.InvalidWidth(errors.PhaseStore, width, maxUintBits)
	}
	if v == nil || v.Sign() < 0 || uint(v.BitLen()) > width {
		return errors.IntegerOutOfRange(errors.PhaseStore, v, width, false)
	}
	if err := b.reserve(width, 0); err != nil {
		return err
	}
	b.appendBig(v, width)
	return nil
}

// StoreBigInt appends a two's-complement integer of width bits (at most 257).
func (b *Builder) StoreBigInt(v *big.Int, width uint) error {
	if width > maxIntBits {
		return errors.InvalidWidth(errors.PhaseStore, width, maxIntBits)
	}
	if !bigIntFits(v, width) {
		return errors.IntegerOutOfRange(errors.PhaseStore, v, width, true)
	}
	if err := b.reserve(width, 0); err != nil {
		return err
	}
	if v.Sign() < 0 {
		u := new(big.Int).Lsh(big.NewInt(1), width)
		b.appendBig(u.Add(u, v), width)
		return nil
	}
	b.appendBig(v, width)
	return nil
}

func bigIntFits(v *big.Int, width uint) bool {
	if v == nil {
		return false
	}
	if width == 0 {
		return v.Sign() == 0
	}
	if v.Sign() >= 0 {
		return uint(v.BitLen()) <= width-1
	}
	// -2^(w-1) <= v  <=>  |v|-1 < 2^(w-1)
	m := new(big.Int).Neg(v)
	m.Sub(m, big.NewInt(1))
	return uint(m.BitLen()) <= width-1
}

// appendBig writes the low width bits of a non-negative v.
func (b *Builder) appendBig(v *big.Int, width uint) {
	n := (width + 7) / 8
	buf := v.FillBytes(make([]byte, n))
	b.bits.AppendBits(buf, n*8-width, width)
}

// StoreCoins appends a variable-length amount: a 4-bit byte count followed by
// that many big-endian bytes. Zero is stored as a bare 0000.
func (b *Builder) StoreCoins(v uint64) error {
	n := uint(mbits.Len64(v)+7) / 8
	if err := b.reserve(4+n*8, 0); err != nil {
		return err
	}
	b.bits.AppendUint(uint64(n), 4)
	b.bits.AppendUint(v, n*8)
	return nil
}

// StoreBigCoins is StoreCoins for amounts up to 2^120-1.
func (b *Builder) StoreBigCoins(v *big.Int) error {
	if v == nil || v.Sign() < 0 || v.BitLen() > maxCoinBytes*8 {
		return errors.IntegerOutOfRange(errors.PhaseStore, v, maxCoinBytes*8, false)
	}
	n := uint(v.BitLen()+7) / 8
	if err := b.reserve(4+n*8, 0); err != nil {
		return err
	}
	b.bits.AppendUint(uint64(n), 4)
	b.appendBig(v, n*8)
	return nil
}

// StoreAddress appends a standard address, or addr_none for nil.
func (b *Builder) StoreAddress(a *Address) error {
	if a == nil {
		if err := b.reserve(2, 0); err != nil {
			return err
		}
		b.bits.AppendUint(0b00, 2)
		return nil
	}
	if err := b.reserve(AddressBits, 0); err != nil {
		return err
	}
	// addr_std$10 anycast:nothing$0
	b.bits.AppendUint(0b100, 3)
	b.bits.AppendUint(uint64(uint8(a.Workchain)), 8)
	b.bits.AppendBits(a.Hash[:], 0, 256)
	return nil
}

// StoreRef appends a child reference.
func (b *Builder) StoreRef(c *Cell) error {
	if c == nil {
		return errors.InvalidData(errors.PhaseStore, nil, "nil reference")
	}
	if err := b.reserve(0, 1); err != nil {
		return err
	}
	b.refs = append(b.refs, c)
	return nil
}

// StoreMaybeRef appends a presence bit and, when c is non-nil, the reference.
func (b *Builder) StoreMaybeRef(c *Cell) error {
	if c == nil {
		return b.StoreBit(false)
	}
	if err := b.reserve(1, 1); err != nil {
		return err
	}
	b.bits.AppendBit(true)
	b.refs = append(b.refs, c)
	return nil
}

// StoreBuilder splices the pending bits and references of o inline.
func (b *Builder) StoreBuilder(o *Builder) error {
	if err := b.reserve(o.bits.Len(), len(o.refs)); err != nil {
		return err
	}
	b.bits.Append(o.bits)
	b.refs = append(b.refs, o.refs...)
	return nil
}

// StoreSlice splices the unread remainder of s inline. s is not advanced.
func (b *Builder) StoreSlice(s *Slice) error {
	nbits, nrefs := s.BitsLeft(), s.RefsLeft()
	if err := b.reserve(nbits, nrefs); err != nil {
		return err
	}
	b.bits.AppendBits(s.cell.data, s.bitPos, nbits)
	b.refs = append(b.refs, s.cell.refs[s.refPos:]...)
	return nil
}

// StoreBits appends the first n bits of data.
func (b *Builder) StoreBits(data []byte, n uint) error {
	if uint(len(data))*8 < n {
		return errors.InvalidData(errors.PhaseStore, nil, "data shorter than bit length")
	}
	if err := b.reserve(n, 0); err != nil {
		return err
	}
	b.bits.AppendBits(data, 0, n)
	return nil
}

// StoreBytes appends whole bytes.
func (b *Builder) StoreBytes(p []byte) error {
	return b.StoreBits(p, uint(len(p))*8)
}

// StoreStringTail appends s in snake format: as many bytes as fit here, the
// rest in a chain of single references.
func (b *Builder) StoreStringTail(s string) error {
	return b.Store(func(b *Builder) error {
		return storeSnake(b, []byte(s))
	})
}

func storeSnake(b *Builder, p []byte) error {
	fit := int(b.BitsLeft() / 8)
	if len(p) <= fit {
		return b.StoreBytes(p)
	}
	if b.RefsLeft() < 1 {
		return errors.CapacityExceeded("cell refs", 1, 0)
	}
	tail := BeginCell()
	if err := storeSnake(tail, p[fit:]); err != nil {
		return err
	}
	if err := b.StoreBytes(p[:fit]); err != nil {
		return err
	}
	return b.StoreRef(tail.EndCell())
}

// Store applies a composer that writes a group of fields. When the composer
// fails, everything it wrote is discarded.
func (b *Builder) Store(f func(*Builder) error) error {
	n, r := b.bits.Len(), len(b.refs)
	if err := f(b); err != nil {
		b.bits.Truncate(n)
		clear(b.refs[r:])
		b.refs = b.refs[:r]
		return err
	}
	return nil
}

// EndCell finalizes the builder. The returned cell owns a copy of the data,
// so later writes to b cannot affect it.
func (b *Builder) EndCell() *Cell {
	return newCell(b.bits.Clone(), append([]*Cell(nil), b.refs...))
}
