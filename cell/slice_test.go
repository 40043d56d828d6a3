package cell

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/tvm-cells/errors"
)

func testAddress(wc int8, fill byte) *Address {
	a := &Address{Workchain: wc}
	copy(a.Hash[:], bytes.Repeat([]byte{fill}, 32))
	return a
}

func TestSlice_RoundTrip(t *testing.T) {
	big257 := new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 256))
	addr := testAddress(-1, 0x5A)

	b := BeginCell()
	require.NoError(t, b.StoreBit(true))
	require.NoError(t, b.StoreUint(0xDEADBEEF, 32))
	require.NoError(t, b.StoreInt(-5, 7))
	require.NoError(t, b.StoreBigInt(big257, 257))
	require.NoError(t, b.StoreCoins(1000))
	require.NoError(t, b.StoreAddress(addr))
	require.NoError(t, b.StoreAddress(nil))
	require.NoError(t, b.StoreMaybeRef(nil))
	require.NoError(t, b.StoreMaybeRef(Empty()))
	c := b.EndCell()

	s := c.BeginParse()
	bit, err := s.LoadBit()
	require.NoError(t, err)
	assert.True(t, bit)

	u, err := s.LoadUint(32)
	require.NoError(t, err)
	assert.Equal(t, uint64(0xDEADBEEF), u)

	i, err := s.LoadInt(7)
	require.NoError(t, err)
	assert.Equal(t, int64(-5), i)

	bi, err := s.LoadBigInt(257)
	require.NoError(t, err)
	assert.Equal(t, 0, bi.Cmp(big257))

	coins, err := s.LoadCoins()
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), coins)

	got, err := s.LoadAddress()
	require.NoError(t, err)
	assert.True(t, addr.Equal(got))

	none, err := s.LoadMaybeAddress()
	require.NoError(t, err)
	assert.Nil(t, none)

	r, err := s.LoadMaybeRef()
	require.NoError(t, err)
	assert.Nil(t, r)

	r, err = s.LoadMaybeRef()
	require.NoError(t, err)
	assert.True(t, r.Equal(Empty()))

	assert.True(t, s.Empty())
}

func TestSlice_UnderflowDoesNotAdvance(t *testing.T) {
	s := Empty().BeginParse()

	_, err := s.LoadBit()
	require.ErrorIs(t, err, errors.ErrCellUnderflow)
	_, err = s.LoadUint(8)
	require.ErrorIs(t, err, errors.ErrCellUnderflow)
	_, err = s.LoadBigInt(257)
	require.ErrorIs(t, err, errors.ErrCellUnderflow)
	_, err = s.LoadCoins()
	require.ErrorIs(t, err, errors.ErrCellUnderflow)
	_, err = s.LoadMaybeAddress()
	require.ErrorIs(t, err, errors.ErrCellUnderflow)
	_, err = s.LoadRef()
	require.ErrorIs(t, err, errors.ErrNoMoreReferences)

	assert.Equal(t, uint(0), s.BitsLeft())
	assert.Equal(t, 0, s.RefsLeft())

	b := BeginCell()
	require.NoError(t, b.StoreUint(0b101, 3))
	s = b.EndCell().BeginParse()
	_, err = s.LoadUint(4)
	require.ErrorIs(t, err, errors.ErrCellUnderflow)
	assert.Equal(t, uint(3), s.BitsLeft())

	// coins length prefix says 2 bytes but only 4 bits follow
	b = BeginCell()
	require.NoError(t, b.StoreUint(2, 4))
	require.NoError(t, b.StoreUint(0xF, 4))
	s = b.EndCell().BeginParse()
	_, err = s.LoadCoins()
	require.ErrorIs(t, err, errors.ErrCellUnderflow)
	assert.Equal(t, uint(8), s.BitsLeft())
}

func TestSlice_LoadMaybeRefMissingRef(t *testing.T) {
	b := BeginCell()
	require.NoError(t, b.StoreBit(true))
	s := b.EndCell().BeginParse()

	_, err := s.LoadMaybeRef()
	require.ErrorIs(t, err, errors.ErrNoMoreReferences)
	assert.Equal(t, uint(1), s.BitsLeft())
}

func TestSlice_LoadCoinsTooLarge(t *testing.T) {
	b := BeginCell()
	require.NoError(t, b.StoreBigCoins(new(big.Int).Lsh(big.NewInt(1), 100)))
	s := b.EndCell().BeginParse()

	_, err := s.LoadCoins()
	require.ErrorIs(t, err, errors.ErrIntegerOutOfRange)
	assert.Equal(t, uint(4+13*8), s.BitsLeft())

	v, err := s.LoadBigCoins()
	require.NoError(t, err)
	assert.Equal(t, 101, v.BitLen())
}

func TestSlice_LoadAddressErrors(t *testing.T) {
	b := BeginCell()
	require.NoError(t, b.StoreAddress(nil))
	s := b.EndCell().BeginParse()
	_, err := s.LoadAddress()
	require.ErrorIs(t, err, errors.ErrInvalidData)
	assert.Equal(t, uint(2), s.BitsLeft())

	tests := []struct {
		name string
		tag  uint64
	}{
		{"extern", 0b01},
		{"var", 0b11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := BeginCell()
			require.NoError(t, b.StoreUint(tt.tag, 2))
			require.NoError(t, b.StoreBits(make([]byte, 34), 265))
			s := b.EndCell().BeginParse()
			_, err := s.LoadMaybeAddress()
			require.ErrorIs(t, err, errors.ErrUnsupported)
			assert.Equal(t, uint(267), s.BitsLeft())
		})
	}

	t.Run("anycast", func(t *testing.T) {
		b := BeginCell()
		require.NoError(t, b.StoreUint(0b101, 3))
		require.NoError(t, b.StoreBits(make([]byte, 33), 264))
		_, err := b.EndCell().BeginParse().LoadAddress()
		require.ErrorIs(t, err, errors.ErrUnsupported)
	})
}

func TestSlice_LoadOpcode(t *testing.T) {
	b := BeginCell()
	require.NoError(t, b.StoreUint(260734629, 32))
	require.NoError(t, b.StoreUint(7, 64))
	c := b.EndCell()

	s := c.BeginParse()
	err := s.LoadOpcode(1499400124)
	require.ErrorIs(t, err, errors.ErrInvalidDiscriminator)
	assert.Equal(t, uint(96), s.BitsLeft())

	require.NoError(t, s.LoadOpcode(260734629))
	q, err := s.LoadUint(64)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), q)
}

func TestSlice_Remainder(t *testing.T) {
	payload := BeginCell()
	require.NoError(t, payload.StoreUint(0xCAFE, 16))
	require.NoError(t, payload.StoreRef(Empty()))

	b := BeginCell()
	require.NoError(t, b.StoreUint(0xFF, 8))
	require.NoError(t, b.StoreBuilder(payload))
	c := b.EndCell()

	s := c.BeginParse()
	assert.Same(t, c, s.ToCell())

	require.NoError(t, s.Skip(8))
	rest := s.ToCell()
	assert.True(t, rest.Equal(payload.EndCell()))
	assert.Equal(t, uint(16), s.BitsLeft())
	assert.Equal(t, 1, s.RefsLeft())

	rb := s.ToBuilder()
	assert.Equal(t, uint(16), rb.BitsUsed())
	assert.Equal(t, 1, rb.RefsUsed())
}

func TestSlice_CopyIsIndependent(t *testing.T) {
	b := BeginCell()
	require.NoError(t, b.StoreUint(0x1234, 16))
	s := b.EndCell().BeginParse()

	cp := s.Copy()
	_, err := cp.LoadUint(8)
	require.NoError(t, err)
	assert.Equal(t, uint(16), s.BitsLeft())
	assert.Equal(t, uint(8), cp.BitsLeft())

	v, err := s.PreloadUint(8)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x12), v)
	assert.Equal(t, uint(16), s.BitsLeft())
}

func TestSlice_LoadStringTailErrors(t *testing.T) {
	b := BeginCell()
	require.NoError(t, b.StoreUint(1, 3))
	_, err := b.EndCell().BeginParse().LoadStringTail()
	require.ErrorIs(t, err, errors.ErrInvalidData)

	b = BeginCell()
	require.NoError(t, b.StoreRef(Empty()))
	require.NoError(t, b.StoreRef(Empty()))
	_, err = b.EndCell().BeginParse().LoadStringTail()
	require.ErrorIs(t, err, errors.ErrInvalidData)
}

func TestSlice_LoadRemainder(t *testing.T) {
	b := BeginCell()
	require.NoError(t, b.StoreUint(0xAB, 8))
	require.NoError(t, b.StoreUint(0xC, 4))
	require.NoError(t, b.StoreRef(Empty()))
	s := b.EndCell().BeginParse()

	_, err := s.LoadUint(8)
	require.NoError(t, err)
	rest := s.LoadRemainder()
	assert.Equal(t, "x{C}", rest.String())
	assert.Equal(t, 1, rest.RefsNum())
	assert.True(t, s.Empty())
}
