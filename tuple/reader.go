package tuple

import (
	"math/big"

	"github.com/wippyai/tvm-cells/cell"
	"github.com/wippyai/tvm-cells/errors"
)

// Reader consumes stack items in order. A read of the wrong type fails with
// a type mismatch and does not consume the item.
type Reader struct {
	items []Item
	pos   int
}

// NewReader creates a reader over items.
func NewReader(items []Item) *Reader {
	return &Reader{items: items}
}

// Remaining returns the number of unread items.
func (r *Reader) Remaining() int {
	return len(r.items) - r.pos
}

// Peek returns the next item without consuming it.
func (r *Reader) Peek() (Item, error) {
	if r.pos >= len(r.items) {
		return nil, errors.OutOfBounds(errors.PhaseTuple, nil, r.pos, len(r.items))
	}
	return r.items[r.pos], nil
}

// Pop consumes the next item.
func (r *Reader) Pop() (Item, error) {
	it, err := r.Peek()
	if err != nil {
		return nil, err
	}
	r.pos++
	return it, nil
}

// Skip consumes n items.
func (r *Reader) Skip(n int) error {
	if n > r.Remaining() {
		return errors.OutOfBounds(errors.PhaseTuple, nil, r.pos+n, len(r.items))
	}
	r.pos += n
	return nil
}

func mismatch(want string, got Item) error {
	return errors.TypeMismatch(errors.PhaseTuple, want, got.Kind().String())
}

// ReadBigNumber reads an integer.
func (r *Reader) ReadBigNumber() (*big.Int, error) {
	it, err := r.Peek()
	if err != nil {
		return nil, err
	}
	v, ok := it.(Int)
	if !ok {
		return nil, mismatch("int", it)
	}
	r.pos++
	return new(big.Int).Set(v.Value), nil
}

// ReadBigNumberOpt reads an integer or null (returned as nil).
func (r *Reader) ReadBigNumberOpt() (*big.Int, error) {
	if r.nextIsNull() {
		r.pos++
		return nil, nil
	}
	return r.ReadBigNumber()
}

// ReadNumber reads an integer that must fit in int64.
func (r *Reader) ReadNumber() (int64, error) {
	it, err := r.Peek()
	if err != nil {
		return 0, err
	}
	v, ok := it.(Int)
	if !ok {
		return 0, mismatch("int", it)
	}
	if !v.Value.IsInt64() {
		return 0, errors.IntegerOutOfRange(errors.PhaseTuple, v.Value, 64, true)
	}
	r.pos++
	return v.Value.Int64(), nil
}

// ReadUint64 reads an integer that must fit in uint64.
func (r *Reader) ReadUint64() (uint64, error) {
	it, err := r.Peek()
	if err != nil {
		return 0, err
	}
	v, ok := it.(Int)
	if !ok {
		return 0, mismatch("int", it)
	}
	if !v.Value.IsUint64() {
		return 0, errors.IntegerOutOfRange(errors.PhaseTuple, v.Value, 64, false)
	}
	r.pos++
	return v.Value.Uint64(), nil
}

// ReadBool reads an integer as a boolean: zero is false.
func (r *Reader) ReadBool() (bool, error) {
	v, err := r.ReadBigNumber()
	if err != nil {
		return false, err
	}
	return v.Sign() != 0, nil
}

// ReadCell reads a cell, slice or builder item as a cell.
func (r *Reader) ReadCell() (*cell.Cell, error) {
	it, err := r.Peek()
	if err != nil {
		return nil, err
	}
	var c *cell.Cell
	switch v := it.(type) {
	case CellItem:
		c = v.Cell
	case SliceItem:
		c = v.Cell
	case BuilderItem:
		c = v.Cell
	default:
		return nil, mismatch("cell", it)
	}
	r.pos++
	return c, nil
}

// ReadCellOpt reads a cell or null (returned as nil).
func (r *Reader) ReadCellOpt() (*cell.Cell, error) {
	if r.nextIsNull() {
		r.pos++
		return nil, nil
	}
	return r.ReadCell()
}

// ReadAddress reads a slice holding a standard address.
func (r *Reader) ReadAddress() (*cell.Address, error) {
	start := r.pos
	c, err := r.ReadCell()
	if err != nil {
		return nil, err
	}
	a, err := c.BeginParse().LoadAddress()
	if err != nil {
		r.pos = start
		return nil, err
	}
	return a, nil
}

// ReadAddressOpt reads an address, null, or addr_none. The last two return
// nil.
func (r *Reader) ReadAddressOpt() (*cell.Address, error) {
	if r.nextIsNull() {
		r.pos++
		return nil, nil
	}
	start := r.pos
	c, err := r.ReadCell()
	if err != nil {
		return nil, err
	}
	a, err := c.BeginParse().LoadMaybeAddress()
	if err != nil {
		r.pos = start
		return nil, err
	}
	return a, nil
}

// ReadTuple reads a nested tuple and returns a reader over its items.
func (r *Reader) ReadTuple() (*Reader, error) {
	it, err := r.Peek()
	if err != nil {
		return nil, err
	}
	t, ok := it.(Tuple)
	if !ok {
		return nil, mismatch("tuple", it)
	}
	r.pos++
	return NewReader(t.Items), nil
}

// ReadTupleOpt reads a nested tuple or null (returned as nil).
func (r *Reader) ReadTupleOpt() (*Reader, error) {
	if r.nextIsNull() {
		r.pos++
		return nil, nil
	}
	return r.ReadTuple()
}

func (r *Reader) nextIsNull() bool {
	if r.pos >= len(r.items) {
		return false
	}
	_, ok := r.items[r.pos].(Null)
	return ok
}
