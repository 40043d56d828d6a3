package binary

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ErrWidth is returned when a fixed-width integer is wider than 8 bytes.
var ErrWidth = errors.New("boc: integer wider than 8 bytes")

// Reader wraps a byte slice with position tracking and big-endian
// fixed-width reads.
type Reader struct {
	r   *bytes.Reader
	pos int
}

// NewReader creates a new Reader over data.
func NewReader(data []byte) *Reader {
	return &Reader{r: bytes.NewReader(data)}
}

// Position returns the current byte position.
func (r *Reader) Position() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return r.r.Len()
}

// ReadByte reads a single byte and advances the position.
func (r *Reader) ReadByte() (byte, error) {
	b, err := r.r.ReadByte()
	if err != nil {
		return 0, err
	}
	r.pos++
	return b, nil
}

// ReadBytes reads exactly n bytes.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || n > r.r.Len() {
		return nil, io.ErrUnexpectedEOF
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.r, buf); err != nil {
		return nil, err
	}
	r.pos += n
	return buf, nil
}

// ReadUint reads an n-byte big-endian unsigned integer.
func (r *Reader) ReadUint(n int) (uint64, error) {
	if n > 8 {
		return 0, r.WrapError("", ErrWidth)
	}
	buf, err := r.ReadBytes(n)
	if err != nil {
		return 0, err
	}
	var v uint64
	for _, b := range buf {
		v = v<<8 | uint64(b)
	}
	return v, nil
}

// Skip advances past n bytes.
func (r *Reader) Skip(n int) error {
	_, err := r.ReadBytes(n)
	return err
}

// ParseError represents an error during bag-of-cells parsing with position
// information.
type ParseError struct {
	Err      error
	Section  string
	Position int
}

func (e *ParseError) Error() string {
	if e.Section != "" {
		return fmt.Sprintf("boc: %s at position %d: %v", e.Section, e.Position, e.Err)
	}
	return fmt.Sprintf("boc: at position %d: %v", e.Position, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// WrapError creates a ParseError with the current position.
func (r *Reader) WrapError(section string, err error) error {
	return &ParseError{
		Position: r.pos,
		Section:  section,
		Err:      err,
	}
}
