package tuple

import (
	"math/big"
	"slices"

	"go.uber.org/zap"

	"github.com/wippyai/tvm-cells/cell"
	"github.com/wippyai/tvm-cells/errors"
)

// Stack entry tags of the VmStackValue scheme.
const (
	tagNull    = 0x00
	tagTinyInt = 0x01
	tagInt     = 0x02
	tagCell    = 0x03
	tagSlice   = 0x04
	tagBuilder = 0x05
	tagTuple   = 0x07
)

const (
	stackDepthBits = 24
	tupleLenBits   = 16
	maxTupleLen    = 255

	// preallocItems caps capacity reserved from a declared length.
	preallocItems = 64
)

// Serialize encodes items as a VM stack cell. The last item is the top of the
// stack.
func Serialize(items []Item) (*cell.Cell, error) {
	b := cell.BeginCell()
	if err := b.StoreUint(uint64(len(items)), stackDepthBits); err != nil {
		return nil, errors.WithPath(err, "depth")
	}
	if err := storeList(b, items); err != nil {
		return nil, err
	}
	Logger().Debug("stack serialized", zap.Int("depth", len(items)))
	return b.EndCell(), nil
}

// storeList writes rest:^(VmStackList n-1) tos:VmStackValue.
func storeList(b *cell.Builder, items []Item) error {
	if len(items) == 0 {
		return nil
	}
	rest := cell.BeginCell()
	if err := storeList(rest, items[:len(items)-1]); err != nil {
		return err
	}
	if err := b.StoreRef(rest.EndCell()); err != nil {
		return err
	}
	return StoreItem(b, items[len(items)-1])
}

// StoreItem writes a single VmStackValue.
func StoreItem(b *cell.Builder, it Item) error {
	return b.Store(func(b *cell.Builder) error {
		switch v := it.(type) {
		case Null:
			return b.StoreUint(tagNull, 8)
		case Int:
			if v.Value == nil {
				return errors.InvalidData(errors.PhaseTuple, nil, "nil integer")
			}
			if v.Value.IsInt64() {
				if err := b.StoreUint(tagTinyInt, 8); err != nil {
					return err
				}
				return b.StoreInt(v.Value.Int64(), 64)
			}
			// vm_stk_int$0000001 value:int257
			if err := b.StoreUint(0x0100, 15); err != nil {
				return err
			}
			return b.StoreBigInt(v.Value, 257)
		case NaN:
			return b.StoreUint(0x02ff, 16)
		case CellItem:
			if err := b.StoreUint(tagCell, 8); err != nil {
				return err
			}
			return b.StoreRef(v.Cell)
		case SliceItem:
			if v.Cell == nil {
				return errors.InvalidData(errors.PhaseTuple, nil, "nil slice")
			}
			if err := b.StoreUint(tagSlice, 8); err != nil {
				return err
			}
			if err := b.StoreUint(0, 10); err != nil {
				return err
			}
			if err := b.StoreUint(uint64(v.Cell.BitsSize()), 10); err != nil {
				return err
			}
			if err := b.StoreUint(0, 3); err != nil {
				return err
			}
			if err := b.StoreUint(uint64(v.Cell.RefsNum()), 3); err != nil {
				return err
			}
			return b.StoreRef(v.Cell)
		case BuilderItem:
			if err := b.StoreUint(tagBuilder, 8); err != nil {
				return err
			}
			return b.StoreRef(v.Cell)
		case Tuple:
			return storeTuple(b, v.Items)
		case nil:
			return errors.InvalidData(errors.PhaseTuple, nil, "nil item")
		}
		return errors.Unsupported(errors.PhaseTuple, "stack item "+it.Kind().String())
	})
}

// storeTuple writes vm_stk_tuple: the items are chained left-nested so that
// the last item always hangs off the outermost cell.
func storeTuple(b *cell.Builder, items []Item) error {
	if len(items) > maxTupleLen {
		return errors.CapacityExceeded("tuple items", len(items), maxTupleLen)
	}
	var head, tail *cell.Cell
	for i, it := range items {
		head, tail = tail, head
		if i > 1 {
			nb := cell.BeginCell()
			if err := nb.StoreRef(tail); err != nil {
				return err
			}
			if err := nb.StoreRef(head); err != nil {
				return err
			}
			head = nb.EndCell()
		}
		ib := cell.BeginCell()
		if err := StoreItem(ib, it); err != nil {
			return errors.WithPath(err, "tuple")
		}
		tail = ib.EndCell()
	}
	if err := b.StoreUint(tagTuple, 8); err != nil {
		return err
	}
	if err := b.StoreUint(uint64(len(items)), tupleLenBits); err != nil {
		return err
	}
	if head != nil {
		if err := b.StoreRef(head); err != nil {
			return err
		}
	}
	if tail != nil {
		return b.StoreRef(tail)
	}
	return nil
}

// Parse decodes a VM stack cell. The returned slice ends with the top of the
// stack.
func Parse(c *cell.Cell) ([]Item, error) {
	s := c.BeginParse()
	n, err := s.LoadUint(stackDepthBits)
	if err != nil {
		return nil, errors.WithPath(err, "depth")
	}
	// The depth is untrusted; grow as entries are actually found.
	items := make([]Item, 0, min(n, preallocItems))
	for i := uint64(0); i < n; i++ {
		next, err := s.LoadRef()
		if err != nil {
			return nil, errors.WithPath(err, "rest")
		}
		it, err := LoadItem(s)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
		s = next.BeginParse()
	}
	slices.Reverse(items)
	return items, nil
}

// LoadItem reads a single VmStackValue.
func LoadItem(s *cell.Slice) (Item, error) {
	tag, err := s.LoadUint(8)
	if err != nil {
		return nil, err
	}
	switch tag {
	case tagNull:
		return Null{}, nil
	case tagTinyInt:
		v, err := s.LoadInt(64)
		if err != nil {
			return nil, err
		}
		return Int{Value: big.NewInt(v)}, nil
	case tagInt:
		sub, err := s.LoadUint(7)
		if err != nil {
			return nil, err
		}
		if sub == 0 {
			v, err := s.LoadBigInt(257)
			if err != nil {
				return nil, err
			}
			return Int{Value: v}, nil
		}
		if _, err := s.LoadBit(); err != nil {
			return nil, err
		}
		return NaN{}, nil
	case tagCell:
		c, err := s.LoadRef()
		if err != nil {
			return nil, err
		}
		return CellItem{Cell: c}, nil
	case tagSlice:
		return loadSlice(s)
	case tagBuilder:
		c, err := s.LoadRef()
		if err != nil {
			return nil, err
		}
		return BuilderItem{Cell: c}, nil
	case tagTuple:
		return loadTuple(s)
	}
	return nil, errors.New(errors.PhaseTuple, errors.KindInvalidDiscriminator).
		Type("VmStackValue").
		Value(tag).
		Detail("unknown stack value tag 0x%02x", tag).
		Build()
}

func loadSlice(s *cell.Slice) (Item, error) {
	var bounds [4]uint64
	for i, w := range [4]uint{10, 10, 3, 3} {
		v, err := s.LoadUint(w)
		if err != nil {
			return nil, err
		}
		bounds[i] = v
	}
	stBits, endBits, stRef, endRef := bounds[0], bounds[1], bounds[2], bounds[3]
	if endBits < stBits || endRef < stRef {
		return nil, errors.InvalidData(errors.PhaseTuple, nil, "slice bounds are reversed")
	}
	c, err := s.LoadRef()
	if err != nil {
		return nil, err
	}
	rs := c.BeginParse()
	if err := rs.Skip(uint(stBits)); err != nil {
		return nil, err
	}
	data, err := rs.LoadBits(uint(endBits - stBits))
	if err != nil {
		return nil, err
	}
	b := cell.BeginCell()
	if err := b.StoreBits(data, uint(endBits-stBits)); err != nil {
		return nil, err
	}
	for i := uint64(0); i < endRef; i++ {
		r, err := rs.LoadRef()
		if err != nil {
			return nil, err
		}
		if i >= stRef {
			if err := b.StoreRef(r); err != nil {
				return nil, err
			}
		}
	}
	return SliceItem{Cell: b.EndCell()}, nil
}

func loadTuple(s *cell.Slice) (Item, error) {
	n, err := s.LoadUint(tupleLenBits)
	if err != nil {
		return nil, err
	}
	switch n {
	case 0:
		return Tuple{Items: []Item{}}, nil
	case 1:
		c, err := s.LoadRef()
		if err != nil {
			return nil, err
		}
		it, err := LoadItem(c.BeginParse())
		if err != nil {
			return nil, err
		}
		return Tuple{Items: []Item{it}}, nil
	}

	head, err := s.LoadRef()
	if err != nil {
		return nil, err
	}
	tail, err := s.LoadRef()
	if err != nil {
		return nil, err
	}
	// Items come last to first; the length is untrusted.
	items := make([]Item, 0, min(n, preallocItems))
	for i := int(n) - 1; i > 0; i-- {
		it, err := LoadItem(tail.BeginParse())
		if err != nil {
			return nil, err
		}
		items = append(items, it)
		if i == 1 {
			break
		}
		hs := head.BeginParse()
		if head, err = hs.LoadRef(); err != nil {
			return nil, err
		}
		if tail, err = hs.LoadRef(); err != nil {
			return nil, err
		}
	}
	it, err := LoadItem(head.BeginParse())
	if err != nil {
		return nil, err
	}
	items = append(items, it)
	slices.Reverse(items)
	return Tuple{Items: items}, nil
}
