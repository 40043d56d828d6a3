package tact

import (
	"go.uber.org/zap"

	"github.com/wippyai/tvm-cells/cell"
	"github.com/wippyai/tvm-cells/dict"
	"github.com/wippyai/tvm-cells/errors"
)

// Composer writes a group of fields into a builder.
type Composer = func(*cell.Builder) error

// BuildCell runs f on a fresh builder and finalizes it.
func BuildCell(f Composer) (*cell.Cell, error) {
	b := cell.BeginCell()
	if err := b.Store(f); err != nil {
		return nil, err
	}
	return b.EndCell(), nil
}

// StoreInline splices the bits and references of c into b. A nil cell
// stores nothing.
func StoreInline(b *cell.Builder, c *cell.Cell) error {
	if c == nil {
		return nil
	}
	return b.StoreSlice(c.BeginParse())
}

// Inline returns c, or the empty cell for nil.
func Inline(c *cell.Cell) *cell.Cell {
	if c == nil {
		return cell.Empty()
	}
	return c
}

// DictValue adapts a record's store/load pair to a dictionary value codec.
// The record is kept in its own cell and referenced from the leaf.
func DictValue[V any](store func(V) Composer, load func(*cell.Slice) (V, error)) dict.ValueCodec[V] {
	return dict.ValueRef[V](dict.FuncCodec[V]{
		SerializeFunc: func(v V, b *cell.Builder) error {
			return b.Store(store(v))
		},
		ParseFunc: load,
	})
}

// LoadOpcode consumes op and tags a mismatch with the record name.
func LoadOpcode(s *cell.Slice, op uint32, typeName string) error {
	if err := s.LoadOpcode(op); err != nil {
		if e, ok := err.(*errors.Error); ok && e.Kind == errors.KindInvalidDiscriminator {
			cp := *e
			cp.Type = typeName
			return &cp
		}
		return err
	}
	return nil
}

// PeekOpcode returns the leading 32-bit op code without consuming it.
func PeekOpcode(s *cell.Slice) (uint32, error) {
	v, err := s.PreloadUint(32)
	if err != nil {
		return 0, errors.WithPath(err, "opcode")
	}
	return uint32(v), nil
}

// UnknownOpcode reports a body none of a contract's receivers accept.
func UnknownOpcode(contract string, op uint32) error {
	Logger().Debug("no receiver for op code",
		zap.String("contract", contract),
		zap.Uint32("op", op))
	return errors.New(errors.PhaseLoad, errors.KindInvalidDiscriminator).
		Type(contract).
		Value(op).
		Detail("no receiver for op code 0x%08x", op).
		Build()
}
