package cell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/tvm-cells/errors"
)

func TestParseAddress_Raw(t *testing.T) {
	raw := "-1:" + strings.Repeat("ab", 32)
	a, err := ParseAddress(raw)
	require.NoError(t, err)
	assert.Equal(t, int8(-1), a.Workchain)
	assert.Equal(t, byte(0xAB), a.Hash[31])
	assert.Equal(t, raw, a.String())
}

func TestParseAddress_Invalid(t *testing.T) {
	tests := []string{
		"0:abcd",
		"x:" + strings.Repeat("00", 32),
		"0:" + strings.Repeat("zz", 32),
		"not an address",
	}
	for _, s := range tests {
		_, err := ParseAddress(s)
		require.ErrorIs(t, err, errors.ErrInvalidData, s)
	}
}

func TestAddress_Friendly(t *testing.T) {
	a := testAddress(0, 0x11)

	f := a.Friendly(true, false)
	assert.Len(t, f, 48)

	back, err := ParseAddress(f)
	require.NoError(t, err)
	assert.True(t, a.Equal(back))

	assert.NotEqual(t, f, a.Friendly(false, false))
	assert.NotEqual(t, f, a.Friendly(true, true))
}

func TestNewAddress(t *testing.T) {
	_, err := NewAddress(0, make([]byte, 31))
	require.ErrorIs(t, err, errors.ErrInvalidData)

	a, err := NewAddress(0, make([]byte, 32))
	require.NoError(t, err)
	assert.True(t, a.Equal(&Address{}))
	assert.False(t, a.Equal(nil))
	assert.True(t, (*Address)(nil).Equal(nil))
}
