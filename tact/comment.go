package tact

import (
	"github.com/wippyai/tvm-cells/cell"
	"github.com/wippyai/tvm-cells/errors"
)

// CommentOpcode prefixes a text comment body.
const CommentOpcode = 0

// StoreComment writes a text comment: a zero op code followed by the text in
// snake format.
func StoreComment(text string) Composer {
	return func(b *cell.Builder) error {
		if err := b.StoreUint(CommentOpcode, 32); err != nil {
			return err
		}
		return b.StoreStringTail(text)
	}
}

// LoadComment reads a text comment body.
func LoadComment(s *cell.Slice) (string, error) {
	start := s.Copy()
	if err := LoadOpcode(s, CommentOpcode, "comment"); err != nil {
		return "", err
	}
	text, err := s.LoadStringTail()
	if err != nil {
		*s = *start
		return "", errors.WithPath(err, "text")
	}
	return text, nil
}

// Comment builds a standalone text comment cell.
func Comment(text string) (*cell.Cell, error) {
	return BuildCell(StoreComment(text))
}
