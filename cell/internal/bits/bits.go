// Package bits implements a packed, MSB-first bit string.
//
// Bit 0 is the most significant bit of byte 0. Bits past Len are always zero
// in the backing array, so the bytes can be handed out as-is for hashing once
// the completion tag is added.
package bits

// String is an append-only bit buffer.
type String struct {
	data []byte
	n    uint
}

// New creates an empty bit string with room for capBits bits.
func New(capBits uint) *String {
	return &String{data: make([]byte, 0, (capBits+7)/8)}
}

// FromBytes wraps the first n bits of data. The input is copied.
func FromBytes(data []byte, n uint) *String {
	s := New(n)
	s.AppendBits(data, 0, n)
	return s
}

// Len returns the number of bits written.
func (s *String) Len() uint {
	return s.n
}

// Bytes returns ceil(Len/8) bytes; unused low bits of the last byte are zero.
func (s *String) Bytes() []byte {
	return s.data
}

// Clone returns an independent copy.
func (s *String) Clone() *String {
	cp := make([]byte, len(s.data))
	copy(cp, s.data)
	return &String{data: cp, n: s.n}
}

// Truncate shrinks the string to n bits, clearing everything after.
func (s *String) Truncate(n uint) {
	if n >= s.n {
		return
	}
	s.data = s.data[:(n+7)/8]
	if r := n % 8; r != 0 {
		s.data[len(s.data)-1] &= byte(0xFF << (8 - r))
	}
	s.n = n
}

// AppendBit appends a single bit.
func (s *String) AppendBit(b bool) {
	if s.n%8 == 0 {
		s.data = append(s.data, 0)
	}
	if b {
		s.data[s.n/8] |= 0x80 >> (s.n % 8)
	}
	s.n++
}

// AppendUint appends the low width bits of v, most significant first.
// width must be at most 64.
func (s *String) AppendUint(v uint64, width uint) {
	for width > 0 {
		if s.n%8 == 0 {
			s.data = append(s.data, 0)
		}
		free := 8 - s.n%8
		take := free
		if take > width {
			take = width
		}
		chunk := byte((v >> (width - take)) & (1<<take - 1))
		s.data[s.n/8] |= chunk << (free - take)
		s.n += take
		width -= take
	}
}

// AppendBits appends n bits of src starting at bit offset from.
func (s *String) AppendBits(src []byte, from, n uint) {
	if s.n%8 == 0 && from%8 == 0 {
		start := from / 8
		whole := n / 8
		s.data = append(s.data, src[start:start+whole]...)
		s.n += whole * 8
		from += whole * 8
		n -= whole * 8
	}
	for n > 0 {
		take := n
		if take > 56 {
			take = 56
		}
		s.AppendUint(ReadUint(src, from, take), take)
		from += take
		n -= take
	}
}

// Append appends another bit string.
func (s *String) Append(o *String) {
	s.AppendBits(o.data, 0, o.n)
}

// Bit returns the bit at index i.
func Bit(data []byte, i uint) bool {
	return data[i/8]&(0x80>>(i%8)) != 0
}

// ReadUint reads width bits (at most 64) starting at off.
func ReadUint(data []byte, off, width uint) uint64 {
	var v uint64
	for width > 0 {
		avail := 8 - off%8
		take := avail
		if take > width {
			take = width
		}
		b := uint64(data[off/8]>>(avail-take)) & (1<<take - 1)
		v = v<<take | b
		off += take
		width -= take
	}
	return v
}

// Padded returns ceil(n/8) bytes of data with the completion tag applied: when
// n is not a multiple of 8, a single 1 bit is set right after the last data
// bit. The input is not modified.
func Padded(data []byte, n uint) []byte {
	out := make([]byte, (n+7)/8)
	copy(out, data[:len(out)])
	if r := n % 8; r != 0 {
		out[len(out)-1] &= byte(0xFF << (8 - r))
		out[len(out)-1] |= 0x80 >> r
	}
	return out
}
