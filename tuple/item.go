package tuple

import (
	"math/big"

	"github.com/wippyai/tvm-cells/cell"
)

// Kind identifies the type of a stack item.
type Kind uint8

const (
	KindNull Kind = iota
	KindInt
	KindNaN
	KindCell
	KindSlice
	KindBuilder
	KindTuple
)

var kindNames = [...]string{
	KindNull:    "null",
	KindInt:     "int",
	KindNaN:     "nan",
	KindCell:    "cell",
	KindSlice:   "slice",
	KindBuilder: "builder",
	KindTuple:   "tuple",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Item is a single loosely-typed stack value. The set of implementations is
// closed.
type Item interface {
	Kind() Kind
	isItem()
}

// Null is the null stack value.
type Null struct{}

// Int is a 257-bit signed integer.
type Int struct {
	Value *big.Int
}

// NaN is the integer not-a-number produced by overflowing arithmetic.
type NaN struct{}

// CellItem holds a cell.
type CellItem struct {
	Cell *cell.Cell
}

// SliceItem holds a slice, carried as the cell of its remaining data.
type SliceItem struct {
	Cell *cell.Cell
}

// BuilderItem holds a builder, carried as the cell of its contents.
type BuilderItem struct {
	Cell *cell.Cell
}

// Tuple holds nested items.
type Tuple struct {
	Items []Item
}

func (Null) Kind() Kind        { return KindNull }
func (Int) Kind() Kind         { return KindInt }
func (NaN) Kind() Kind         { return KindNaN }
func (CellItem) Kind() Kind    { return KindCell }
func (SliceItem) Kind() Kind   { return KindSlice }
func (BuilderItem) Kind() Kind { return KindBuilder }
func (Tuple) Kind() Kind       { return KindTuple }

func (Null) isItem() {}
func (Int) isItem() {}
func (NaN) isItem() {}
func (CellItem) isItem() {}
func (SliceItem) isItem() {}
func (BuilderItem) isItem() {}
func (Tuple) isItem() {}

// Equal reports whether two items hold the same value. Cells compare by hash.
func Equal(a, b Item) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case Null, NaN:
		return true
	case Int:
		return av.Value.Cmp(b.(Int).Value) == 0
	case CellItem:
		return av.Cell.Equal(b.(CellItem).Cell)
	case SliceItem:
		return av.Cell.Equal(b.(SliceItem).Cell)
	case BuilderItem:
		return av.Cell.Equal(b.(BuilderItem).Cell)
	case Tuple:
		bt := b.(Tuple)
		if len(av.Items) != len(bt.Items) {
			return false
		}
		for i := range av.Items {
			if !Equal(av.Items[i], bt.Items[i]) {
				return false
			}
		}
		return true
	}
	return false
}
