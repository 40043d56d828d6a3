package functions

import (
	"context"
	"encoding/base64"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcell "github.com/xssnick/tonutils-go/tvm/cell"

	tvmcells "github.com/wippyai/tvm-cells"
	"github.com/wippyai/tvm-cells/cell"
	"github.com/wippyai/tvm-cells/dict"
	"github.com/wippyai/tvm-cells/errors"
	"github.com/wippyai/tvm-cells/tact"
	"github.com/wippyai/tvm-cells/tuple"
)

func oracle(t *testing.T, b64 string) *tcell.Cell {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(b64)
	require.NoError(t, err)
	c, err := tcell.FromBOC(raw)
	require.NoError(t, err)
	return c
}

func value(m Message) *big.Int {
	switch v := m.(type) {
	case Add:
		return v.Value
	case Sub:
		return v.Value
	}
	return nil
}

func TestAdd_MatchesTonutils(t *testing.T) {
	v := Add{Value: big.NewInt(-7)}
	c, err := tact.BuildCell(StoreAdd(v))
	require.NoError(t, err)
	assert.Equal(t, uint(32+257), c.BitsSize())

	want := tcell.BeginCell().
		MustStoreUInt(uint64(OpAdd), 32).
		MustStoreBigInt(big.NewInt(-7), 257).
		EndCell()
	assert.Equal(t, want.Hash(), c.Hash())
}

func TestMessages_RoundTrip(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 255)
	for _, m := range []Message{
		Add{Value: big.NewInt(1)},
		Sub{Value: big.NewInt(0)},
		Add{Value: huge},
		Sub{Value: new(big.Int).Neg(huge)},
	} {
		c, err := StoreMessage(m)
		require.NoError(t, err)
		s := c.BeginParse()
		got, err := LoadMessage(s)
		require.NoError(t, err)
		assert.True(t, s.Empty())
		assert.IsType(t, m, got)
		assert.Zero(t, value(m).Cmp(value(got)))
	}
}

func TestStore_ValueOutOfRange(t *testing.T) {
	_, err := tact.BuildCell(StoreSub(Sub{Value: new(big.Int).Lsh(big.NewInt(1), 256)}))
	require.ErrorIs(t, err, errors.ErrIntegerOutOfRange)
	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, []string{"value"}, e.Path)

	_, err = StoreMessage(nil)
	assert.ErrorIs(t, err, errors.ErrInvalidData)
}

func TestLoad_WrongOpcode(t *testing.T) {
	c, err := tact.BuildCell(StoreAdd(Add{Value: big.NewInt(3)}))
	require.NoError(t, err)
	_, err = LoadSub(c.BeginParse())
	assert.ErrorIs(t, err, errors.ErrInvalidDiscriminator)

	c, err = tact.Comment("Add")
	require.NoError(t, err)
	_, err = LoadMessage(c.BeginParse())
	assert.ErrorIs(t, err, errors.ErrInvalidDiscriminator)
}

func TestTuple_RoundTrip(t *testing.T) {
	items, err := StoreTupleSub(Sub{Value: big.NewInt(42)})
	require.NoError(t, err)
	got, err := LoadTupleSub(tuple.NewReader(items))
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.Value.Int64())

	b := tuple.NewBuilder()
	b.WriteCell(cell.Empty())
	items, err = b.Build()
	require.NoError(t, err)
	_, err = LoadTupleAdd(tuple.NewReader(items))
	assert.ErrorIs(t, err, errors.ErrTypeMismatch)
}

func TestDictValue(t *testing.T) {
	d := dict.New(dict.KeyInt(16), DictValueAdd())
	require.NoError(t, d.Set(-1, Add{Value: big.NewInt(9)}))
	root, err := d.StoreDirect()
	require.NoError(t, err)
	back, err := dict.LoadDirect(dict.KeyInt(16), DictValueAdd(), root)
	require.NoError(t, err)
	v, ok := back.Get(-1)
	require.True(t, ok)
	assert.Equal(t, int64(9), v.Value.Int64())
}

func TestInit(t *testing.T) {
	ctx := context.Background()
	var booted *cell.Cell
	start := func(_ context.Context, code, data *cell.Cell) (tvmcells.Getter, error) {
		booted = code
		assert.Equal(t, 0, data.RefsNum())
		p := tvmcells.NewMemoryProvider()
		err := p.RegisterGetter("init", func(_ context.Context, args []tuple.Item) ([]tuple.Item, error) {
			system, err := tuple.NewReader(args).ReadCell()
			if err != nil {
				return nil, err
			}
			out := cell.BeginCell()
			if err := out.StoreRef(system); err != nil {
				return nil, err
			}
			if err := out.StoreBit(false); err != nil {
				return nil, err
			}
			if err := out.StoreBigInt(big.NewInt(0), 257); err != nil {
				return nil, err
			}
			b := tuple.NewBuilder()
			b.WriteCell(out.EndCell())
			return b.Build()
		})
		return p, err
	}

	si, err := Init(ctx, start)
	require.NoError(t, err)
	assert.Equal(t, oracle(t, initBOC).Hash(), booted.Hash())
	assert.Equal(t, oracle(t, codeBOC).Hash(), si.Code.Hash())

	system, err := si.Data.Ref(0)
	require.NoError(t, err)
	assert.Equal(t, oracle(t, systemBOC).Hash(), system.Hash())
	assert.Equal(t, uint(1+257), si.Data.BitsSize())
}

func TestInit_ExitCode(t *testing.T) {
	start := func(context.Context, *cell.Cell, *cell.Cell) (tvmcells.Getter, error) {
		p := tvmcells.NewMemoryProvider()
		err := p.RegisterGetter("init", func(context.Context, []tuple.Item) ([]tuple.Item, error) {
			return nil, &errors.ContractError{Code: ExitValueNotPositive}
		})
		return p, err
	}
	_, err := Init(context.Background(), start)
	var ce *errors.ContractError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "Value must be greater than 0", ce.Message)

	_, err = Init(context.Background(), nil)
	assert.ErrorIs(t, err, errors.ErrInvalidData)
}

func TestContract_Send(t *testing.T) {
	ctx := context.Background()
	p := tvmcells.NewMemoryProvider()
	c := FromAddress(cell.MustParseAddress("0:" + strings.Repeat("ab", 32)))
	require.NoError(t, c.Send(ctx, p, tvmcells.SendArgs{Value: big.NewInt(10)}, Add{Value: big.NewInt(5)}))
	sent := p.Sent()
	require.Len(t, sent, 1)
	m, err := LoadMessage(sent[0].Body.BeginParse())
	require.NoError(t, err)
	assert.Zero(t, big.NewInt(5).Cmp(value(m)))
	assert.Equal(t, int64(10), sent[0].Value.Int64())
}
