package dict

import (
	"bytes"
	"slices"

	"github.com/wippyai/tvm-cells/cell"
	"github.com/wippyai/tvm-cells/errors"
)

type entry[K, V any] struct {
	key   K
	bits  []byte
	value V
}

// Dictionary is an in-memory mapping with fixed-width keys that serializes
// as a HashmapE trie. Iteration follows key-bit order. A Dictionary is not
// safe for concurrent mutation.
type Dictionary[K, V any] struct {
	keys    KeyCodec[K]
	values  ValueCodec[V]
	entries map[string]entry[K, V]
}

// New creates an empty dictionary.
func New[K, V any](keys KeyCodec[K], values ValueCodec[V]) *Dictionary[K, V] {
	return &Dictionary[K, V]{
		keys:    keys,
		values:  values,
		entries: make(map[string]entry[K, V]),
	}
}

// KeyCodec returns the key codec.
func (d *Dictionary[K, V]) KeyCodec() KeyCodec[K] {
	return d.keys
}

// ValueCodec returns the value codec.
func (d *Dictionary[K, V]) ValueCodec() ValueCodec[V] {
	return d.values
}

// Set inserts or replaces the value for k.
func (d *Dictionary[K, V]) Set(k K, v V) error {
	kb, err := d.keys.Encode(k)
	if err != nil {
		return errors.WithPath(err, "key")
	}
	d.entries[string(kb)] = entry[K, V]{key: k, bits: kb, value: v}
	return nil
}

// Get returns the value stored for k.
func (d *Dictionary[K, V]) Get(k K) (V, bool) {
	kb, err := d.keys.Encode(k)
	if err != nil {
		var zero V
		return zero, false
	}
	e, ok := d.entries[string(kb)]
	return e.value, ok
}

// Delete removes k and reports whether it was present.
func (d *Dictionary[K, V]) Delete(k K) bool {
	kb, err := d.keys.Encode(k)
	if err != nil {
		return false
	}
	if _, ok := d.entries[string(kb)]; !ok {
		return false
	}
	delete(d.entries, string(kb))
	return true
}

// Len returns the number of entries.
func (d *Dictionary[K, V]) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

func (d *Dictionary[K, V]) sorted() []entry[K, V] {
	out := make([]entry[K, V], 0, d.Len())
	if d == nil {
		return out
	}
	for _, e := range d.entries {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b entry[K, V]) int {
		return bytes.Compare(a.bits, b.bits)
	})
	return out
}

// Keys returns the keys in key-bit order.
func (d *Dictionary[K, V]) Keys() []K {
	es := d.sorted()
	out := make([]K, len(es))
	for i, e := range es {
		out[i] = e.key
	}
	return out
}

// Range calls f for each entry in key-bit order until f returns false.
func (d *Dictionary[K, V]) Range(f func(K, V) bool) {
	for _, e := range d.sorted() {
		if !f(e.key, e.value) {
			return
		}
	}
}

// Equal reports whether both dictionaries hold the same keys with values
// equal under eq.
func (d *Dictionary[K, V]) Equal(o *Dictionary[K, V], eq func(a, b V) bool) bool {
	if d.Len() != o.Len() {
		return false
	}
	if d.Len() == 0 {
		return true
	}
	for k, e := range d.entries {
		oe, ok := o.entries[k]
		if !ok || !eq(e.value, oe.value) {
			return false
		}
	}
	return true
}

// Store writes the dictionary as a maybe-reference: a single 0 bit when
// empty, otherwise a 1 bit and a reference to the trie root.
func (d *Dictionary[K, V]) Store(b *cell.Builder) error {
	root, err := d.StoreDirect()
	if err != nil {
		return err
	}
	return b.StoreMaybeRef(root)
}

// StoreDirect returns the trie root cell, or nil for an empty dictionary.
func (d *Dictionary[K, V]) StoreDirect() (*cell.Cell, error) {
	if d.Len() == 0 {
		return nil, nil
	}
	return buildTrie(d.sorted(), d.keys.Bits(), d.values)
}

// Load reads a maybe-reference dictionary written by Store.
func Load[K, V any](s *cell.Slice, keys KeyCodec[K], values ValueCodec[V]) (*Dictionary[K, V], error) {
	root, err := s.LoadMaybeRef()
	if err != nil {
		return nil, err
	}
	return LoadDirect(keys, values, root)
}

// LoadDirect decodes a trie root cell. A nil root yields an empty dictionary.
func LoadDirect[K, V any](keys KeyCodec[K], values ValueCodec[V], root *cell.Cell) (*Dictionary[K, V], error) {
	d := New(keys, values)
	if root == nil {
		return d, nil
	}
	err := parseTrie(root.BeginParse(), keys.Bits(), func(kb []byte, s *cell.Slice) error {
		k, err := keys.Decode(kb)
		if err != nil {
			return err
		}
		v, err := values.Parse(s)
		if err != nil {
			return err
		}
		d.entries[string(kb)] = entry[K, V]{key: k, bits: kb, value: v}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}
