package binary

import (
	"bytes"
)

// Writer provides buffered big-endian writing for bag-of-cells encoding.
type Writer struct {
	buf *bytes.Buffer
}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{buf: &bytes.Buffer{}}
}

// Bytes returns the written bytes.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Byte writes a single byte.
func (w *Writer) Byte(b byte) {
	w.buf.WriteByte(b)
}

// WriteBytes writes a byte slice.
func (w *Writer) WriteBytes(data []byte) {
	w.buf.Write(data)
}

// WriteUint writes the low n bytes of v, most significant first.
func (w *Writer) WriteUint(v uint64, n int) {
	for i := n - 1; i >= 0; i-- {
		w.buf.WriteByte(byte(v >> (uint(i) * 8)))
	}
}

// BytesFor returns the minimal number of bytes able to hold v, at least 1.
func BytesFor(v uint64) int {
	n := 1
	for v > 0xFF {
		v >>= 8
		n++
	}
	return n
}
