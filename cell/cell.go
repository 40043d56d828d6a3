package cell

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"strings"

	"github.com/wippyai/tvm-cells/cell/internal/bits"
	"github.com/wippyai/tvm-cells/errors"
)

const (
	// MaxBits is the data capacity of a single cell.
	MaxBits = 1023
	// MaxRefs is the number of children a cell may reference.
	MaxRefs = 4
	// MaxDepth bounds the height of a cell tree accepted from the wire.
	MaxDepth = 1024
)

// Cell is an immutable node of up to 1023 data bits and up to 4 child
// references. Cells form a DAG: the same *Cell may be referenced from many
// parents and is never copied when shared.
type Cell struct {
	data  []byte
	refs  []*Cell
	bits  uint
	depth uint16
	hash  [32]byte
}

var emptyCell = newCell(bits.New(0), nil)

// Empty returns the shared cell with no bits and no references.
func Empty() *Cell {
	return emptyCell
}

// New builds a cell from the first bitLen bits of data and the given
// children. data and refs are copied.
func New(data []byte, bitLen uint, refs ...*Cell) (*Cell, error) {
	if bitLen > MaxBits {
		return nil, errors.CapacityExceeded("cell bits", int(bitLen), MaxBits)
	}
	if len(refs) > MaxRefs {
		return nil, errors.CapacityExceeded("cell refs", len(refs), MaxRefs)
	}
	if uint(len(data))*8 < bitLen {
		return nil, errors.InvalidData(errors.PhaseStore, nil, "data shorter than bit length")
	}
	for _, r := range refs {
		if r == nil {
			return nil, errors.InvalidData(errors.PhaseStore, nil, "nil reference")
		}
	}
	return newCell(bits.FromBytes(data, bitLen), append([]*Cell(nil), refs...)), nil
}

// newCell takes ownership of s and refs.
func newCell(s *bits.String, refs []*Cell) *Cell {
	c := &Cell{
		data: s.Bytes(),
		bits: s.Len(),
		refs: refs,
	}
	for _, r := range refs {
		if r.depth+1 > c.depth {
			c.depth = r.depth + 1
		}
	}
	c.hash = sha256.Sum256(c.representation())
	return c
}

// Descriptors returns the two descriptor bytes of an ordinary cell.
func (c *Cell) Descriptors() (d1, d2 byte) {
	d1 = byte(len(c.refs))
	d2 = byte(c.bits/8 + (c.bits+7)/8)
	return d1, d2
}

// representation is the standard cell representation that is hashed.
func (c *Cell) representation() []byte {
	d1, d2 := c.Descriptors()
	buf := make([]byte, 0, 2+(c.bits+7)/8+uint(len(c.refs))*34)
	buf = append(buf, d1, d2)
	buf = append(buf, bits.Padded(c.data, c.bits)...)
	for _, r := range c.refs {
		buf = binary.BigEndian.AppendUint16(buf, r.depth)
	}
	for _, r := range c.refs {
		buf = append(buf, r.hash[:]...)
	}
	return buf
}

// BitsSize returns the number of data bits.
func (c *Cell) BitsSize() uint {
	return c.bits
}

// RefsNum returns the number of child references.
func (c *Cell) RefsNum() int {
	return len(c.refs)
}

// Ref returns the i-th child.
func (c *Cell) Ref(i int) (*Cell, error) {
	if i < 0 || i >= len(c.refs) {
		return nil, errors.NoMoreReferences(i, len(c.refs))
	}
	return c.refs[i], nil
}

// Refs returns a copy of the child list.
func (c *Cell) Refs() []*Cell {
	return append([]*Cell(nil), c.refs...)
}

// Data returns a copy of the data bytes. Bits past BitsSize are zero.
func (c *Cell) Data() []byte {
	return append([]byte(nil), c.data...)
}

// PaddedData returns the data bytes with the completion tag applied, as they
// appear on the wire.
func (c *Cell) PaddedData() []byte {
	return bits.Padded(c.data, c.bits)
}

// Hash returns the representation hash.
func (c *Cell) Hash() []byte {
	h := c.hash
	return h[:]
}

// Depth returns the height of the tree below this cell.
func (c *Cell) Depth() uint16 {
	return c.depth
}

// Equal reports structural equality.
func (c *Cell) Equal(o *Cell) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c == o || c.hash == o.hash
}

// BeginParse returns a cursor at the start of the cell.
func (c *Cell) BeginParse() *Slice {
	return &Slice{cell: c}
}

// ToBuilder returns a builder preloaded with the cell's bits and references.
func (c *Cell) ToBuilder() *Builder {
	b := BeginCell()
	b.bits.AppendBits(c.data, 0, c.bits)
	b.refs = append(b.refs, c.refs...)
	return b
}

// String renders the cell data in the x{...} notation.
func (c *Cell) String() string {
	return "x{" + bitsHex(c.data, c.bits) + "}"
}

// Dump renders the whole tree, one cell per line, children indented.
func (c *Cell) Dump() string {
	var b strings.Builder
	c.dump(&b, "")
	return b.String()
}

func (c *Cell) dump(b *strings.Builder, indent string) {
	b.WriteString(indent)
	b.WriteString(c.String())
	b.WriteByte('\n')
	for _, r := range c.refs {
		r.dump(b, indent+" ")
	}
}

// bitsHex encodes bits as upper-case hex. A length that is not a multiple of
// four is completed with a 1 bit and zeros and marked with a trailing '_'.
func bitsHex(data []byte, n uint) string {
	if n%4 == 0 {
		return strings.ToUpper(hex.EncodeToString(data)[:n/4])
	}
	s := bits.FromBytes(data, n)
	s.AppendBit(true)
	for s.Len()%4 != 0 {
		s.AppendBit(false)
	}
	return strings.ToUpper(hex.EncodeToString(s.Bytes())[:s.Len()/4]) + "_"
}

// Compare orders cells by hash; used to make output deterministic.
func Compare(a, b *Cell) int {
	return bytes.Compare(a.hash[:], b.hash[:])
}
