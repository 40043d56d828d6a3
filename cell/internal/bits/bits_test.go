package bits

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendUint_CrossesBytes(t *testing.T) {
	s := New(16)
	s.AppendUint(0b101, 3)
	s.AppendUint(0xFF, 8)
	assert.Equal(t, uint(11), s.Len())
	assert.Equal(t, []byte{0b10111111, 0b11100000}, s.Bytes())
	assert.Equal(t, uint64(0xFF), ReadUint(s.Bytes(), 3, 8))
}

func TestAppendBits_Unaligned(t *testing.T) {
	s := New(20)
	s.AppendBit(true)
	s.AppendBits([]byte{0xAB, 0xCD}, 4, 12)
	assert.Equal(t, uint(13), s.Len())
	assert.Equal(t, uint64(0xBCD), ReadUint(s.Bytes(), 1, 12))
}

func TestTruncate(t *testing.T) {
	s := FromBytes([]byte{0xFF, 0xFF}, 16)
	s.Truncate(5)
	assert.Equal(t, uint(5), s.Len())
	assert.Equal(t, []byte{0xF8}, s.Bytes())
	s.AppendBit(false)
	assert.Equal(t, []byte{0xF8}, s.Bytes())

	cp := s.Clone()
	cp.AppendBit(true)
	assert.Equal(t, uint(6), s.Len())
}

func TestPadded(t *testing.T) {
	assert.Equal(t, []byte{0b10110000}, Padded([]byte{0b10100000}, 3))
	assert.Equal(t, []byte{0xAB}, Padded([]byte{0xAB}, 8))
	assert.Empty(t, Padded(nil, 0))
	assert.True(t, Bit([]byte{0x01}, 7))
}
