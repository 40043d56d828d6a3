package dict

import (
	"bytes"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/tvm-cells/cell"
	"github.com/wippyai/tvm-cells/errors"
)

func bigEq(a, b *big.Int) bool { return a.Cmp(b) == 0 }

func TestStore_SingleEntry(t *testing.T) {
	d := New(KeyUint(8), ValueUint(8))
	require.NoError(t, d.Set(0x05, 0xFF))

	root, err := d.StoreDirect()
	require.NoError(t, err)
	// hml_long$10 len=8 (4 bits) 00000101, value 11111111
	assert.Equal(t, "x{A017FE_}", root.String())
}

func TestStore_Fork(t *testing.T) {
	d := New(KeyUint(4), ValueUint(4))
	require.NoError(t, d.Set(0b1000, 2))
	require.NoError(t, d.Set(0b0000, 1))

	root, err := d.StoreDirect()
	require.NoError(t, err)
	// empty short label at the fork, hml_same$11 0 len=3 on each leaf
	assert.Equal(t, "x{2_}\n x{D8C_}\n x{D94_}\n", root.Dump())

	back, err := LoadDirect(KeyUint(4), ValueUint(4), root)
	require.NoError(t, err)
	assert.Equal(t, []uint64{0b0000, 0b1000}, back.Keys())
}

func TestEmpty(t *testing.T) {
	d := New(KeyUint(32), ValueBool())

	root, err := d.StoreDirect()
	require.NoError(t, err)
	assert.Nil(t, root)

	b := cell.BeginCell()
	require.NoError(t, d.Store(b))
	c := b.EndCell()
	assert.Equal(t, uint(1), c.BitsSize())
	assert.Equal(t, 0, c.RefsNum())

	back, err := Load(c.BeginParse(), KeyUint(32), ValueBool())
	require.NoError(t, err)
	assert.Equal(t, 0, back.Len())

	back, err = LoadDirect(KeyUint(32), ValueBool(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, back.Len())

	var nilDict *Dictionary[uint64, bool]
	b = cell.BeginCell()
	require.NoError(t, nilDict.Store(b))
	assert.Equal(t, uint(1), b.BitsUsed())
}

func TestRoundTrip_Uint(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	d := New(KeyUint(32), ValueUint(64))
	for i := 0; i < 300; i++ {
		require.NoError(t, d.Set(uint64(rng.Uint32()), rng.Uint64()))
	}

	b := cell.BeginCell()
	require.NoError(t, d.Store(b))
	back, err := Load(b.EndCell().BeginParse(), KeyUint(32), ValueUint(64))
	require.NoError(t, err)

	assert.Equal(t, d.Len(), back.Len())
	assert.True(t, d.Equal(back, func(a, b uint64) bool { return a == b }))

	keys := back.Keys()
	for i := 1; i < len(keys); i++ {
		assert.Less(t, keys[i-1], keys[i])
	}
}

func TestRoundTrip_Deterministic(t *testing.T) {
	a := New(KeyUint(16), ValueUint(8))
	b := New(KeyUint(16), ValueUint(8))
	for i := uint64(0); i < 50; i++ {
		require.NoError(t, a.Set(i*37%1000, i))
	}
	for i := uint64(49); ; i-- {
		require.NoError(t, b.Set(i*37%1000, i))
		if i == 0 {
			break
		}
	}

	ca, err := a.StoreDirect()
	require.NoError(t, err)
	cb, err := b.StoreDirect()
	require.NoError(t, err)
	assert.True(t, ca.Equal(cb))
}

func TestRoundTrip_SignedKeys(t *testing.T) {
	d := New(KeyInt(16), ValueInt(32))
	for _, k := range []int64{-1, 0, 1, -32768, 32767} {
		require.NoError(t, d.Set(k, -k))
	}

	root, err := d.StoreDirect()
	require.NoError(t, err)
	back, err := LoadDirect(KeyInt(16), ValueInt(32), root)
	require.NoError(t, err)

	// key-bit order puts negative keys after positive ones
	assert.Equal(t, []int64{0, 1, 32767, -32768, -1}, back.Keys())
	v, ok := back.Get(-32768)
	require.True(t, ok)
	assert.Equal(t, int64(32768), v)
}

func TestRoundTrip_AddressKeys(t *testing.T) {
	d := New(KeyAddress(), ValueBigInt(257))
	for i := 0; i < 5; i++ {
		a := &cell.Address{Workchain: int8(i % 2)}
		copy(a.Hash[:], bytes.Repeat([]byte{byte(i * 40)}, 32))
		require.NoError(t, d.Set(a, big.NewInt(int64(i*10-20))))
	}

	b := cell.BeginCell()
	require.NoError(t, d.Store(b))
	back, err := Load(b.EndCell().BeginParse(), KeyAddress(), ValueBigInt(257))
	require.NoError(t, err)
	assert.True(t, d.Equal(back, bigEq))

	probe := &cell.Address{Workchain: 1}
	copy(probe.Hash[:], bytes.Repeat([]byte{40}, 32))
	v, ok := back.Get(probe)
	require.True(t, ok)
	assert.Equal(t, int64(-10), v.Int64())

	require.ErrorIs(t, d.Set(nil, big.NewInt(1)), errors.ErrInvalidData)
}

func TestRoundTrip_BigKeys(t *testing.T) {
	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	d := New(KeyBigUint(256), ValueCoins())
	require.NoError(t, d.Set(max, big.NewInt(5)))
	require.NoError(t, d.Set(big.NewInt(0), big.NewInt(0)))
	require.NoError(t, d.Set(big.NewInt(1), new(big.Int).Lsh(big.NewInt(1), 100)))

	root, err := d.StoreDirect()
	require.NoError(t, err)
	back, err := LoadDirect(KeyBigUint(256), ValueCoins(), root)
	require.NoError(t, err)
	assert.True(t, d.Equal(back, bigEq))

	keys := back.Keys()
	require.Len(t, keys, 3)
	assert.Equal(t, 0, keys[2].Cmp(max))

	s := New(KeyBigInt(257), ValueBool())
	require.NoError(t, s.Set(new(big.Int).Neg(max), true))
	root, err = s.StoreDirect()
	require.NoError(t, err)
	sb, err := LoadDirect(KeyBigInt(257), ValueBool(), root)
	require.NoError(t, err)
	assert.Equal(t, 0, sb.Keys()[0].Cmp(new(big.Int).Neg(max)))
}

func TestRoundTrip_NestedAndRef(t *testing.T) {
	inner := New(KeyUint(8), ValueBool())
	require.NoError(t, inner.Set(3, true))

	outer := New(KeyUint(8), ValueDict(KeyUint(8), ValueBool()))
	require.NoError(t, outer.Set(1, inner))
	require.NoError(t, outer.Set(2, New(KeyUint(8), ValueBool())))

	root, err := outer.StoreDirect()
	require.NoError(t, err)
	back, err := LoadDirect(KeyUint(8), ValueDict(KeyUint(8), ValueBool()), root)
	require.NoError(t, err)

	got, ok := back.Get(1)
	require.True(t, ok)
	v, ok := got.Get(3)
	require.True(t, ok)
	assert.True(t, v)

	empty, ok := back.Get(2)
	require.True(t, ok)
	assert.Equal(t, 0, empty.Len())

	cells := New(KeyUint(16), ValueRef(ValueAddress()))
	addr := &cell.Address{Workchain: -1}
	require.NoError(t, cells.Set(7, addr))
	require.NoError(t, cells.Set(8, nil))
	root, err = cells.StoreDirect()
	require.NoError(t, err)
	cb, err := LoadDirect(KeyUint(16), ValueRef(ValueAddress()), root)
	require.NoError(t, err)
	a, _ := cb.Get(7)
	assert.True(t, addr.Equal(a))
	n, ok := cb.Get(8)
	assert.True(t, ok)
	assert.Nil(t, n)
}

func TestSetGetDelete(t *testing.T) {
	d := New(KeyUint(8), ValueCell())
	require.ErrorIs(t, d.Set(256, cell.Empty()), errors.ErrIntegerOutOfRange)

	require.NoError(t, d.Set(1, cell.Empty()))
	_, ok := d.Get(1)
	assert.True(t, ok)
	_, ok = d.Get(999)
	assert.False(t, ok)

	assert.True(t, d.Delete(1))
	assert.False(t, d.Delete(1))
	assert.Equal(t, 0, d.Len())

	require.NoError(t, d.Set(4, cell.Empty()))
	require.NoError(t, d.Set(2, cell.Empty()))
	var seen []uint64
	d.Range(func(k uint64, _ *cell.Cell) bool {
		seen = append(seen, k)
		return false
	})
	assert.Equal(t, []uint64{2}, seen)
}

func TestLoad_Malformed(t *testing.T) {
	// short label claiming 3 bits for a 2-bit key
	b := cell.BeginCell()
	require.NoError(t, b.StoreUint(0b01110, 5))
	_, err := LoadDirect(KeyUint(2), ValueBool(), b.EndCell())
	require.ErrorIs(t, err, errors.ErrInvalidData)

	// long label length past the key width
	b = cell.BeginCell()
	require.NoError(t, b.StoreUint(0b10, 2))
	require.NoError(t, b.StoreUint(7, 3))
	_, err = LoadDirect(KeyUint(4), ValueBool(), b.EndCell())
	require.ErrorIs(t, err, errors.ErrInvalidData)

	// fork without children
	b = cell.BeginCell()
	require.NoError(t, b.StoreUint(0b00, 2))
	_, err = LoadDirect(KeyUint(4), ValueBool(), b.EndCell())
	require.ErrorIs(t, err, errors.ErrNoMoreReferences)

	// leaf without its value
	b = cell.BeginCell()
	require.NoError(t, b.StoreUint(0b11, 2))
	require.NoError(t, b.StoreBit(true))
	require.NoError(t, b.StoreUint(4, 3))
	_, err = LoadDirect(KeyUint(4), ValueBool(), b.EndCell())
	require.ErrorIs(t, err, errors.ErrCellUnderflow)
}

func TestStore_ValueTooLarge(t *testing.T) {
	d := New(KeyUint(8), ValueBigUint(256))
	require.NoError(t, d.Set(1, big.NewInt(1)))
	require.NoError(t, d.Set(2, big.NewInt(2)))
	_, err := d.StoreDirect()
	require.NoError(t, err)

	huge := New(KeyUint(8), FuncCodec[int]{
		SerializeFunc: func(_ int, b *cell.Builder) error { return b.StoreBits(make([]byte, 128), 1023) },
		ParseFunc:     func(*cell.Slice) (int, error) { return 0, nil },
	})
	require.NoError(t, huge.Set(1, 0))
	_, err = huge.StoreDirect()
	require.ErrorIs(t, err, errors.ErrCapacityExceeded)
}
