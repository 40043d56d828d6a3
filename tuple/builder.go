package tuple

import (
	"math/big"

	"github.com/wippyai/tvm-cells/cell"
)

var (
	trueValue  = big.NewInt(-1)
	falseValue = big.NewInt(0)
)

// Builder accumulates stack items in call order. The first write error is
// kept and reported by Build; later writes are ignored.
type Builder struct {
	items []Item
	err   error
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Err returns the first write error.
func (b *Builder) Err() error {
	return b.err
}

func (b *Builder) push(it Item) {
	if b.err == nil {
		b.items = append(b.items, it)
	}
}

// WriteNumber pushes an integer; nil pushes null.
func (b *Builder) WriteNumber(v *big.Int) {
	if v == nil {
		b.push(Null{})
		return
	}
	b.push(Int{Value: new(big.Int).Set(v)})
}

// WriteNumberOpt pushes an optional integer. It is WriteNumber under the name
// generated code uses for nullable fields.
func (b *Builder) WriteNumberOpt(v *big.Int) {
	b.WriteNumber(v)
}

// WriteInt pushes a small integer.
func (b *Builder) WriteInt(v int64) {
	b.push(Int{Value: big.NewInt(v)})
}

// WriteUint64 pushes an unsigned integer.
func (b *Builder) WriteUint64(v uint64) {
	b.push(Int{Value: new(big.Int).SetUint64(v)})
}

// WriteBool pushes -1 for true and 0 for false.
func (b *Builder) WriteBool(v bool) {
	if v {
		b.WriteNumber(trueValue)
		return
	}
	b.WriteNumber(falseValue)
}

// WriteAddress pushes a slice holding the stored address; nil pushes null.
func (b *Builder) WriteAddress(a *cell.Address) {
	if a == nil {
		b.push(Null{})
		return
	}
	cb := cell.BeginCell()
	if err := cb.StoreAddress(a); err != nil {
		b.fail(err)
		return
	}
	b.push(SliceItem{Cell: cb.EndCell()})
}

// WriteCell pushes a cell; nil pushes null.
func (b *Builder) WriteCell(c *cell.Cell) {
	if c == nil {
		b.push(Null{})
		return
	}
	b.push(CellItem{Cell: c})
}

// WriteSlice pushes a slice over c; nil pushes null.
func (b *Builder) WriteSlice(c *cell.Cell) {
	if c == nil {
		b.push(Null{})
		return
	}
	b.push(SliceItem{Cell: c})
}

// WriteBuilder pushes a builder holding c; nil pushes null.
func (b *Builder) WriteBuilder(c *cell.Cell) {
	if c == nil {
		b.push(Null{})
		return
	}
	b.push(BuilderItem{Cell: c})
}

// WriteTuple pushes nested items; nil pushes null.
func (b *Builder) WriteTuple(items []Item) {
	if items == nil {
		b.push(Null{})
		return
	}
	b.push(Tuple{Items: items})
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Build returns the accumulated items or the first write error.
func (b *Builder) Build() ([]Item, error) {
	if b.err != nil {
		return nil, b.err
	}
	return append([]Item{}, b.items...), nil
}
