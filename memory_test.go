package tvmcells

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/tvm-cells/cell"
	"github.com/wippyai/tvm-cells/errors"
	"github.com/wippyai/tvm-cells/tuple"
)

func TestMemoryProvider_Internal(t *testing.T) {
	ctx := context.Background()
	p := NewMemoryProvider()

	b := cell.BeginCell()
	require.NoError(t, b.StoreUint(0x12345678, 32))
	require.NoError(t, b.StoreRef(cell.Empty()))
	body := b.EndCell()

	value := big.NewInt(5)
	require.NoError(t, p.Internal(ctx, SendArgs{Value: value, Bounce: true}, body))
	value.SetInt64(6)

	sent := p.Sent()
	require.Len(t, sent, 1)
	assert.True(t, body.Equal(sent[0].Body))
	assert.Equal(t, int64(5), sent[0].Value.Int64())
	assert.True(t, sent[0].Bounce)

	p.Reset()
	assert.Empty(t, p.Sent())
}

func TestMemoryProvider_InternalErrors(t *testing.T) {
	p := NewMemoryProvider()
	err := p.Internal(context.Background(), SendArgs{}, nil)
	assert.ErrorIs(t, err, errors.ErrInvalidData)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = p.Internal(ctx, SendArgs{}, cell.Empty())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, p.Sent())
}

func TestMemoryProvider_Get(t *testing.T) {
	ctx := context.Background()
	p := NewMemoryProvider()
	require.NoError(t, p.RegisterGetter("sum", func(_ context.Context, args []tuple.Item) ([]tuple.Item, error) {
		r := tuple.NewReader(args)
		a, err := r.ReadBigNumber()
		if err != nil {
			return nil, err
		}
		b, err := r.ReadBigNumber()
		if err != nil {
			return nil, err
		}
		tb := tuple.NewBuilder()
		tb.WriteNumber(new(big.Int).Add(a, b))
		return tb.Build()
	}))

	tb := tuple.NewBuilder()
	tb.WriteInt(40)
	tb.WriteInt(2)
	args, err := tb.Build()
	require.NoError(t, err)

	res, err := p.Get(ctx, "sum", args)
	require.NoError(t, err)
	v, err := tuple.NewReader(res).ReadNumber()
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)
}

func TestMemoryProvider_UnknownMethod(t *testing.T) {
	p := NewMemoryProvider()
	_, err := p.Get(context.Background(), "missing", nil)
	require.ErrorIs(t, err, &errors.ContractError{Code: 32})
}

func TestMemoryProvider_RegisterErrors(t *testing.T) {
	p := NewMemoryProvider()
	assert.Error(t, p.RegisterGetter("", func(context.Context, []tuple.Item) ([]tuple.Item, error) { return nil, nil }))
	assert.Error(t, p.RegisterGetter("x", nil))
}
