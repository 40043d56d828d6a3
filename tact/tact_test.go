package tact

import (
	"bytes"
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tvmcells "github.com/wippyai/tvm-cells"
	"github.com/wippyai/tvm-cells/cell"
	"github.com/wippyai/tvm-cells/dict"
	"github.com/wippyai/tvm-cells/errors"
	"github.com/wippyai/tvm-cells/tuple"
)

func testAddress(fill byte) *cell.Address {
	a, err := cell.NewAddress(0, bytes.Repeat([]byte{fill}, 32))
	if err != nil {
		panic(err)
	}
	return a
}

func leaf(t *testing.T, v uint64) *cell.Cell {
	t.Helper()
	b := cell.BeginCell()
	require.NoError(t, b.StoreUint(v, 8))
	return b.EndCell()
}

func TestStateInit_RoundTrip(t *testing.T) {
	v := StateInit{Code: leaf(t, 1), Data: leaf(t, 2)}

	c, err := BuildCell(StoreStateInit(v))
	require.NoError(t, err)
	assert.Equal(t, uint(0), c.BitsSize())
	assert.Equal(t, 2, c.RefsNum())

	got, err := LoadStateInit(c.BeginParse())
	require.NoError(t, err)
	assert.True(t, v.Code.Equal(got.Code))
	assert.True(t, v.Data.Equal(got.Data))

	items, err := StoreTupleStateInit(v)
	require.NoError(t, err)
	got, err = LoadTupleStateInit(tuple.NewReader(items))
	require.NoError(t, err)
	assert.True(t, v.Data.Equal(got.Data))
}

func TestStateInit_MissingRef(t *testing.T) {
	_, err := BuildCell(StoreStateInit(StateInit{Code: leaf(t, 1)}))
	require.ErrorIs(t, err, errors.ErrInvalidData)
	assert.Contains(t, err.Error(), "data")
}

func TestContext_RoundTrip(t *testing.T) {
	v := Context{
		Bounced: true,
		Sender:  testAddress(0x33),
		Value:   big.NewInt(-12345),
		Raw:     leaf(t, 7),
	}
	c, err := BuildCell(StoreContext(v))
	require.NoError(t, err)
	assert.Equal(t, uint(1+cell.AddressBits+257), c.BitsSize())

	got, err := LoadContext(c.BeginParse())
	require.NoError(t, err)
	assert.Equal(t, v.Bounced, got.Bounced)
	assert.True(t, v.Sender.Equal(got.Sender))
	assert.Equal(t, 0, v.Value.Cmp(got.Value))
	assert.True(t, v.Raw.Equal(got.Raw))

	items, err := StoreTupleContext(v)
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, tuple.KindSlice, items[3].Kind())
	got, err = LoadTupleContext(tuple.NewReader(items))
	require.NoError(t, err)
	assert.True(t, v.Sender.Equal(got.Sender))
	assert.True(t, v.Raw.Equal(got.Raw))
}

func TestSendParameters_Optionals(t *testing.T) {
	v := SendParameters{
		Bounce: false,
		To:     testAddress(0x44),
		Value:  big.NewInt(1_000_000_000),
		Mode:   big.NewInt(64),
		Body:   leaf(t, 9),
	}
	c, err := BuildCell(StoreSendParameters(v))
	require.NoError(t, err)
	assert.Equal(t, 1, c.RefsNum())
	assert.Equal(t, uint(1+cell.AddressBits+257+257+3), c.BitsSize())

	got, err := LoadSendParameters(c.BeginParse())
	require.NoError(t, err)
	assert.True(t, v.Body.Equal(got.Body))
	assert.Nil(t, got.Code)
	assert.Nil(t, got.Data)
	assert.Equal(t, int64(64), got.Mode.Int64())

	items, err := StoreTupleSendParameters(v)
	require.NoError(t, err)
	assert.Equal(t, tuple.KindNull, items[5].Kind())
	got, err = LoadTupleSendParameters(tuple.NewReader(items))
	require.NoError(t, err)
	assert.Nil(t, got.Code)
	assert.True(t, v.To.Equal(got.To))
}

func TestSendParameters_NoneAddress(t *testing.T) {
	c, err := BuildCell(StoreSendParameters(SendParameters{Value: big.NewInt(0), Mode: big.NewInt(0)}))
	require.NoError(t, err)
	_, err = LoadSendParameters(c.BeginParse())
	require.ErrorIs(t, err, errors.ErrInvalidData)
	assert.Contains(t, err.Error(), "to")
}

func TestDictValue_StateInit(t *testing.T) {
	d := dict.New(dict.KeyUint(8), DictValueStateInit())
	v := StateInit{Code: leaf(t, 1), Data: leaf(t, 2)}
	require.NoError(t, d.Set(5, v))

	root, err := d.StoreDirect()
	require.NoError(t, err)
	back, err := dict.LoadDirect(dict.KeyUint(8), DictValueStateInit(), root)
	require.NoError(t, err)
	got, ok := back.Get(5)
	require.True(t, ok)
	assert.True(t, v.Code.Equal(got.Code))
}

func TestComment(t *testing.T) {
	c, err := Comment("Mint!")
	require.NoError(t, err)
	assert.Equal(t, "x{000000004D696E7421}", c.String())

	s := c.BeginParse()
	text, err := LoadComment(s)
	require.NoError(t, err)
	assert.Equal(t, "Mint!", text)
	assert.True(t, s.Empty())
}

func TestComment_Long(t *testing.T) {
	text := string(bytes.Repeat([]byte("abc"), 200))
	c, err := Comment(text)
	require.NoError(t, err)
	assert.Equal(t, 1, c.RefsNum())

	got, err := LoadComment(c.BeginParse())
	require.NoError(t, err)
	assert.Equal(t, text, got)
}

func TestLoadComment_WrongOpcode(t *testing.T) {
	b := cell.BeginCell()
	require.NoError(t, b.StoreUint(1, 32))
	s := b.EndCell().BeginParse()

	_, err := LoadComment(s)
	require.ErrorIs(t, err, errors.ErrInvalidDiscriminator)
	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "comment", e.Type)
	assert.Equal(t, uint(32), s.BitsLeft())
}

func TestPeekOpcode(t *testing.T) {
	b := cell.BeginCell()
	require.NoError(t, b.StoreUint(0xCAFEBABE, 32))
	s := b.EndCell().BeginParse()

	op, err := PeekOpcode(s)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xCAFEBABE), op)
	assert.Equal(t, uint(32), s.BitsLeft())

	_, err = PeekOpcode(cell.Empty().BeginParse())
	assert.ErrorIs(t, err, errors.ErrCellUnderflow)

	err = UnknownOpcode("Jetton", op)
	assert.ErrorIs(t, err, errors.ErrInvalidDiscriminator)
}

func TestExitCodes(t *testing.T) {
	table := ExitCodes(map[int]string{4429: "Invalid sender", 2: "custom"})
	assert.Equal(t, "Invalid sender", table[4429])
	assert.Equal(t, "custom", table[2])
	assert.Equal(t, "Stack undeflow", StandardExitCodes[2])
	assert.Equal(t, "Access denied", table[132])
}

func TestNewStateInit(t *testing.T) {
	code, system := leaf(t, 0xC0), leaf(t, 0x5A)
	owner := testAddress(0x01)

	si, err := NewStateInit(code, system, func(b *cell.Builder) error {
		if err := b.StoreUint(0, 1); err != nil {
			return err
		}
		return b.StoreAddress(owner)
	})
	require.NoError(t, err)
	assert.Same(t, code, si.Code)

	s := si.Data.BeginParse()
	ref, err := s.LoadRef()
	require.NoError(t, err)
	assert.True(t, system.Equal(ref))
	bit, err := s.LoadBit()
	require.NoError(t, err)
	assert.False(t, bit)
	a, err := s.LoadAddress()
	require.NoError(t, err)
	assert.True(t, owner.Equal(a))
}

func TestSendAndCall(t *testing.T) {
	ctx := context.Background()
	p := tvmcells.NewMemoryProvider()

	body, err := Comment("hi")
	require.NoError(t, err)
	require.NoError(t, Send(ctx, p, tvmcells.SendArgs{Value: big.NewInt(10)}, body))
	require.Len(t, p.Sent(), 1)

	err = Send(ctx, p, tvmcells.SendArgs{Value: big.NewInt(-1)}, body)
	assert.ErrorIs(t, err, errors.ErrIntegerOutOfRange)
	err = Send(ctx, p, tvmcells.SendArgs{}, nil)
	assert.ErrorIs(t, err, errors.ErrInvalidData)

	require.NoError(t, p.RegisterGetter("seqno", func(context.Context, []tuple.Item) ([]tuple.Item, error) {
		b := tuple.NewBuilder()
		b.WriteInt(7)
		return b.Build()
	}))
	r, err := Call(ctx, p, "seqno", nil, StandardExitCodes)
	require.NoError(t, err)
	n, err := r.ReadNumber()
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)

	_, err = Call(ctx, p, "missing", nil, StandardExitCodes)
	var ce *errors.ContractError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 32, ce.Code)
	assert.Equal(t, "Method ID not found", ce.Message)
}
