package dict

import (
	mbits "math/bits"

	"github.com/wippyai/tvm-cells/cell"
	"github.com/wippyai/tvm-cells/errors"
)

// Trie layout (HashmapE n X):
//
//	hme_empty$0 | hme_root$1 ^(Hashmap n X)
//	hm_edge label:(HmLabel ~l n) node:(HashmapNode (n-l) X)
//	hmn_leaf value:X            when n-l = 0
//	hmn_fork left:^ right:^     otherwise, children keyed by n-l-1 bits
//	hml_short$0 len:(Unary ~l) s:(l * Bit)
//	hml_long$10 l:(#<= n) s:(l * Bit)
//	hml_same$11 v:Bit l:(#<= n)

func bitAt(key []byte, i uint) bool {
	return key[i/8]&(0x80>>(i%8)) != 0
}

func setBit(key []byte, i uint, v bool) {
	if v {
		key[i/8] |= 0x80 >> (i % 8)
	} else {
		key[i/8] &^= 0x80 >> (i % 8)
	}
}

// lenBits is the width of a #<= m field.
func lenBits(m uint) uint {
	return uint(mbits.Len(m))
}

// buildTrie encodes entries already sorted by key bits.
func buildTrie[K, V any](entries []entry[K, V], width uint, values ValueCodec[V]) (*cell.Cell, error) {
	return buildEdge(entries, 0, width, values)
}

// buildEdge encodes entries whose keys agree on every bit before offset;
// m key bits remain.
func buildEdge[K, V any](entries []entry[K, V], offset, m uint, values ValueCodec[V]) (*cell.Cell, error) {
	first, last := entries[0].bits, entries[len(entries)-1].bits
	l := uint(0)
	for l < m && bitAt(first, offset+l) == bitAt(last, offset+l) {
		l++
	}

	b := cell.BeginCell()
	if err := storeLabel(b, first, offset, l, m); err != nil {
		return nil, err
	}

	if l == m {
		if len(entries) != 1 {
			return nil, errors.InvalidData(errors.PhaseDict, nil, "duplicate key")
		}
		if err := values.Serialize(entries[0].value, b); err != nil {
			return nil, errors.WithPath(err, "value")
		}
		return b.EndCell(), nil
	}

	split := offset + l
	mid := 0
	for mid < len(entries) && !bitAt(entries[mid].bits, split) {
		mid++
	}
	left, err := buildEdge(entries[:mid], split+1, m-l-1, values)
	if err != nil {
		return nil, err
	}
	right, err := buildEdge(entries[mid:], split+1, m-l-1, values)
	if err != nil {
		return nil, err
	}
	if err := b.StoreRef(left); err != nil {
		return nil, err
	}
	if err := b.StoreRef(right); err != nil {
		return nil, err
	}
	return b.EndCell(), nil
}

// storeLabel writes key[offset:offset+l] using the shortest label form.
// Ties prefer short, then long.
func storeLabel(b *cell.Builder, key []byte, offset, l, m uint) error {
	k := lenBits(m)
	shortLen := 2*l + 2
	longLen := 2 + k + l
	sameLen := 3 + k

	same := true
	for i := uint(1); i < l; i++ {
		if bitAt(key, offset+i) != bitAt(key, offset) {
			same = false
			break
		}
	}

	kind, size := "short", shortLen
	if longLen < size {
		kind, size = "long", longLen
	}
	if same && sameLen < size {
		kind = "same"
	}

	return b.Store(func(b *cell.Builder) error {
		switch kind {
		case "same":
			if err := b.StoreUint(0b11, 2); err != nil {
				return err
			}
			if err := b.StoreBit(l > 0 && bitAt(key, offset)); err != nil {
				return err
			}
			return b.StoreUint(uint64(l), k)
		case "long":
			if err := b.StoreUint(0b10, 2); err != nil {
				return err
			}
			if err := b.StoreUint(uint64(l), k); err != nil {
				return err
			}
		default:
			if err := b.StoreBit(false); err != nil {
				return err
			}
			for i := uint(0); i < l; i++ {
				if err := b.StoreBit(true); err != nil {
					return err
				}
			}
			if err := b.StoreBit(false); err != nil {
				return err
			}
		}
		for i := uint(0); i < l; i++ {
			if err := b.StoreBit(bitAt(key, offset+i)); err != nil {
				return err
			}
		}
		return nil
	})
}

// parseTrie walks the trie under s, calling leaf with each full key and a
// slice positioned at its value.
func parseTrie(s *cell.Slice, width uint, leaf func([]byte, *cell.Slice) error) error {
	key := make([]byte, (width+7)/8)
	return parseEdge(s, key, 0, width, leaf)
}

func parseEdge(s *cell.Slice, key []byte, offset, m uint, leaf func([]byte, *cell.Slice) error) error {
	l, err := loadLabel(s, key, offset, m)
	if err != nil {
		return err
	}
	if l == m {
		kb := append([]byte(nil), key...)
		return leaf(kb, s)
	}

	split := offset + l
	for _, v := range []bool{false, true} {
		child, err := s.LoadRef()
		if err != nil {
			return errors.WithPath(err, "fork")
		}
		setBit(key, split, v)
		if err := parseEdge(child.BeginParse(), key, split+1, m-l-1, leaf); err != nil {
			return err
		}
	}
	return nil
}

// loadLabel reads a label into key[offset:] and returns its length.
func loadLabel(s *cell.Slice, key []byte, offset, m uint) (uint, error) {
	tag, err := s.LoadBit()
	if err != nil {
		return 0, err
	}

	if !tag {
		l := uint(0)
		for {
			one, err := s.LoadBit()
			if err != nil {
				return 0, err
			}
			if !one {
				break
			}
			l++
			if l > m {
				return 0, errors.InvalidData(errors.PhaseDict, nil, "label longer than remaining key")
			}
		}
		return l, loadLabelBits(s, key, offset, l)
	}

	second, err := s.LoadBit()
	if err != nil {
		return 0, err
	}
	if !second {
		n, err := s.LoadUint(lenBits(m))
		if err != nil {
			return 0, err
		}
		if uint(n) > m {
			return 0, errors.InvalidData(errors.PhaseDict, nil, "label longer than remaining key")
		}
		return uint(n), loadLabelBits(s, key, offset, uint(n))
	}

	v, err := s.LoadBit()
	if err != nil {
		return 0, err
	}
	n, err := s.LoadUint(lenBits(m))
	if err != nil {
		return 0, err
	}
	if uint(n) > m {
		return 0, errors.InvalidData(errors.PhaseDict, nil, "label longer than remaining key")
	}
	for i := uint(0); i < uint(n); i++ {
		setBit(key, offset+i, v)
	}
	return uint(n), nil
}

func loadLabelBits(s *cell.Slice, key []byte, offset, l uint) error {
	for i := uint(0); i < l; i++ {
		v, err := s.LoadBit()
		if err != nil {
			return err
		}
		setBit(key, offset+i, v)
	}
	return nil
}
