package cell

import (
	"math/big"

	"go.uber.org/zap"

	"github.com/wippyai/tvm-cells/cell/internal/bits"
	"github.com/wippyai/tvm-cells/errors"
)

// Slice is a read cursor over a cell. Reads must mirror the order in which the
// cell was written. A failed read never moves the cursor.
//
// Slices are cheap values; many slices may read the same cell concurrently.
type Slice struct {
	cell   *Cell
	bitPos uint
	refPos int
}

// Cell returns the underlying cell.
func (s *Slice) Cell() *Cell {
	return s.cell
}

// Copy returns an independent cursor at the same position.
func (s *Slice) Copy() *Slice {
	cp := *s
	return &cp
}

// BitsLeft returns the number of unread bits.
func (s *Slice) BitsLeft() uint {
	return s.cell.bits - s.bitPos
}

// RefsLeft returns the number of unread references.
func (s *Slice) RefsLeft() int {
	return len(s.cell.refs) - s.refPos
}

// Empty reports whether both bits and references are exhausted.
func (s *Slice) Empty() bool {
	return s.BitsLeft() == 0 && s.RefsLeft() == 0
}

func (s *Slice) need(n uint) error {
	if n > s.BitsLeft() {
		return errors.CellUnderflow(n, s.BitsLeft())
	}
	return nil
}

// LoadBit reads one bit.
func (s *Slice) LoadBit() (bool, error) {
	if err := s.need(1); err != nil {
		return false, err
	}
	v := bits.Bit(s.cell.data, s.bitPos)
	s.bitPos++
	return v, nil
}

// PreloadUint reads width bits (at most 64) without advancing.
func (s *Slice) PreloadUint(width uint) (uint64, error) {
	if width > 64 {
		return 0, errors.InvalidWidth(errors.PhaseLoad, width, 64)
	}
	if err := s.need(width); err != nil {
		return 0, err
	}
	return bits.ReadUint(s.cell.data, s.bitPos, width), nil
}

// LoadUint reads an unsigned integer of width bits (at most 64).
func (s *Slice) LoadUint(width uint) (uint64, error) {
	v, err := s.PreloadUint(width)
	if err != nil {
		return 0, err
	}
	s.bitPos += width
	return v, nil
}

// LoadInt reads a two's-complement integer of width bits (at most 64).
func (s *Slice) LoadInt(width uint) (int64, error) {
	v, err := s.LoadUint(width)
	if err != nil {
		return 0, err
	}
	if width > 0 && width < 64 && v>>(width-1)&1 == 1 {
		v |= ^uint64(0) << width
	}
	return int64(v), nil
}

// readBig reads width bits as a non-negative integer without advancing.
func (s *Slice) readBig(width uint) *big.Int {
	pad := (8 - width%8) % 8
	tmp := bits.New(width + pad)
	tmp.AppendUint(0, pad)
	tmp.AppendBits(s.cell.data, s.bitPos, width)
	return new(big.Int).SetBytes(tmp.Bytes())
}

// LoadBigUint reads an unsigned integer of width bits (at most 256).
func (s *Slice) LoadBigUint(width uint) (*big.Int, error) {
	if width > maxUintBits {
		return nil, errors.InvalidWidth(errors.PhaseLoad, width, maxUintBits)
	}
	if err := s.need(width); err != nil {
		return nil, err
	}
	v := s.readBig(width)
	s.bitPos += width
	return v, nil
}

// LoadBigInt reads a two's-complement integer of width bits (at most 257).
func (s *Slice) LoadBigInt(width uint) (*big.Int, error) {
	if width > maxIntBits {
		return nil, errors.InvalidWidth(errors.PhaseLoad, width, maxIntBits)
	}
	if err := s.need(width); err != nil {
		return nil, err
	}
	v := s.readBig(width)
	if width > 0 && v.Bit(int(width-1)) == 1 {
		v.Sub(v, new(big.Int).Lsh(big.NewInt(1), width))
	}
	s.bitPos += width
	return v, nil
}

// LoadBigCoins reads a variable-length amount.
func (s *Slice) LoadBigCoins() (*big.Int, error) {
	n, err := s.PreloadUint(4)
	if err != nil {
		return nil, err
	}
	if err := s.need(4 + uint(n)*8); err != nil {
		return nil, err
	}
	s.bitPos += 4
	v := s.readBig(uint(n) * 8)
	s.bitPos += uint(n) * 8
	return v, nil
}

// LoadCoins reads a variable-length amount that must fit in 64 bits.
func (s *Slice) LoadCoins() (uint64, error) {
	n, err := s.PreloadUint(4)
	if err != nil {
		return 0, err
	}
	if n > 8 {
		return 0, errors.IntegerOutOfRange(errors.PhaseLoad, n*8, 64, false)
	}
	if err := s.need(4 + uint(n)*8); err != nil {
		return 0, err
	}
	v := bits.ReadUint(s.cell.data, s.bitPos+4, uint(n)*8)
	s.bitPos += 4 + uint(n)*8
	return v, nil
}

// LoadMaybeAddress reads a standard address or addr_none (returned as nil).
func (s *Slice) LoadMaybeAddress() (*Address, error) {
	tag, err := s.PreloadUint(2)
	if err != nil {
		return nil, err
	}
	switch tag {
	case 0b00:
		s.bitPos += 2
		return nil, nil
	case 0b10:
	case 0b01:
		return nil, errors.Unsupported(errors.PhaseLoad, "addr_extern")
	default:
		return nil, errors.Unsupported(errors.PhaseLoad, "addr_var")
	}
	if err := s.need(AddressBits); err != nil {
		return nil, err
	}
	if bits.Bit(s.cell.data, s.bitPos+2) {
		return nil, errors.Unsupported(errors.PhaseLoad, "anycast address")
	}
	a := &Address{Workchain: int8(bits.ReadUint(s.cell.data, s.bitPos+3, 8))}
	tmp := bits.New(256)
	tmp.AppendBits(s.cell.data, s.bitPos+11, 256)
	copy(a.Hash[:], tmp.Bytes())
	s.bitPos += AddressBits
	return a, nil
}

// LoadAddress reads a standard address; addr_none is an error.
func (s *Slice) LoadAddress() (*Address, error) {
	tag, err := s.PreloadUint(2)
	if err != nil {
		return nil, err
	}
	if tag == 0b00 {
		return nil, errors.New(errors.PhaseLoad, errors.KindInvalidData).
			Type("Address").
			Detail("addr_none where an address is required").
			Build()
	}
	return s.LoadMaybeAddress()
}

// LoadRef pops the next child reference.
func (s *Slice) LoadRef() (*Cell, error) {
	if s.refPos >= len(s.cell.refs) {
		return nil, errors.NoMoreReferences(s.refPos, len(s.cell.refs))
	}
	c := s.cell.refs[s.refPos]
	s.refPos++
	return c, nil
}

// LoadMaybeRef reads a presence bit and, when set, the next reference.
func (s *Slice) LoadMaybeRef() (*Cell, error) {
	if err := s.need(1); err != nil {
		return nil, err
	}
	if !bits.Bit(s.cell.data, s.bitPos) {
		s.bitPos++
		return nil, nil
	}
	if s.refPos >= len(s.cell.refs) {
		return nil, errors.NoMoreReferences(s.refPos, len(s.cell.refs))
	}
	s.bitPos++
	return s.LoadRef()
}

// LoadBits reads n bits, returned left-aligned in ceil(n/8) bytes.
func (s *Slice) LoadBits(n uint) ([]byte, error) {
	if err := s.need(n); err != nil {
		return nil, err
	}
	tmp := bits.New(n)
	tmp.AppendBits(s.cell.data, s.bitPos, n)
	s.bitPos += n
	return tmp.Bytes(), nil
}

// LoadBytes reads n whole bytes.
func (s *Slice) LoadBytes(n int) ([]byte, error) {
	return s.LoadBits(uint(n) * 8)
}

// Skip advances past n bits.
func (s *Slice) Skip(n uint) error {
	if err := s.need(n); err != nil {
		return err
	}
	s.bitPos += n
	return nil
}

// LoadStringTail reads a snake-encoded string: the remaining bytes of this
// cell followed by those of a chain of single references.
func (s *Slice) LoadStringTail() (string, error) {
	var out []byte
	cur := s.Copy()
	for {
		if cur.BitsLeft()%8 != 0 {
			return "", errors.InvalidData(errors.PhaseLoad, nil, "string tail is not byte aligned")
		}
		p, err := cur.LoadBytes(int(cur.BitsLeft() / 8))
		if err != nil {
			return "", err
		}
		out = append(out, p...)
		switch cur.RefsLeft() {
		case 0:
			if cur.cell == s.cell {
				*s = *cur
			} else {
				s.bitPos = s.cell.bits
				s.refPos++
			}
			return string(out), nil
		case 1:
			next, _ := cur.LoadRef()
			cur = next.BeginParse()
		default:
			return "", errors.InvalidData(errors.PhaseLoad, nil, "string tail with more than one reference")
		}
	}
}

// LoadOpcode consumes the 32-bit message prefix when it equals op. On a
// mismatch the cursor is left unmoved.
func (s *Slice) LoadOpcode(op uint32) error {
	got, err := s.PreloadUint(32)
	if err != nil {
		return err
	}
	if got != uint64(op) {
		Logger().Debug("prefix mismatch",
			zap.Uint32("want", op),
			zap.Uint64("got", got))
		return errors.InvalidDiscriminator("", uint64(op), got)
	}
	s.bitPos += 32
	return nil
}

// ToCell returns the unread remainder as a standalone cell. The cursor is not
// advanced; a slice at the start of its cell returns that cell itself.
func (s *Slice) ToCell() *Cell {
	if s.bitPos == 0 && s.refPos == 0 {
		return s.cell
	}
	return s.ToBuilder().EndCell()
}

// LoadRemainder returns the unread remainder as a cell and consumes it.
func (s *Slice) LoadRemainder() *Cell {
	c := s.ToCell()
	s.bitPos = s.cell.bits
	s.refPos = len(s.cell.refs)
	return c
}

// ToBuilder returns a builder holding the unread remainder.
func (s *Slice) ToBuilder() *Builder {
	b := BeginCell()
	b.bits.AppendBits(s.cell.data, s.bitPos, s.BitsLeft())
	b.refs = append(b.refs, s.cell.refs[s.refPos:]...)
	return b
}
