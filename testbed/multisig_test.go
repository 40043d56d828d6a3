package testbed

import (
	"context"
	"math/big"
	"testing"

	tvmcells "github.com/wippyai/tvm-cells"
	"github.com/wippyai/tvm-cells/boc"
	"github.com/wippyai/tvm-cells/cell"
	"github.com/wippyai/tvm-cells/contracts/multisig"
	"github.com/wippyai/tvm-cells/dict"
	"github.com/wippyai/tvm-cells/tuple"
)

// TestMultisig_PendingRequests queues signed requests the way a wallet
// indexer would: bodies from the outbox go into a dictionary keyed by
// timeout, which is persisted as a bag-of-cells and read back.
func TestMultisig_PendingRequests(t *testing.T) {
	ctx := context.Background()
	p := tvmcells.NewMemoryProvider()
	wallet := multisig.FromAddress(address(t, 0x10))

	for i := 0; i < 5; i++ {
		req := multisig.Request{
			Requested: address(t, 0x11),
			To:        address(t, byte(0x20+i)),
			Value:     big.NewInt(int64(i+1) * 1_000),
			Timeout:   uint32(1_700_000_000 + i),
			Mode:      1,
		}
		if err := wallet.Send(ctx, p, tvmcells.SendArgs{Value: big.NewInt(1)}, multisig.Signed{Request: req}); err != nil {
			t.Fatalf("send %d: %v", i, err)
		}
	}

	pending := dict.New(dict.KeyUint(32), multisig.DictValueRequest())
	for _, m := range p.Sent() {
		msg, err := multisig.LoadMessage(m.Body.BeginParse())
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		signed, ok := msg.(multisig.Signed)
		if !ok {
			t.Fatalf("message type %T, want Signed", msg)
		}
		if err := pending.Set(uint64(signed.Request.Timeout), signed.Request); err != nil {
			t.Fatalf("set: %v", err)
		}
	}

	b := cell.BeginCell()
	if err := pending.Store(b); err != nil {
		t.Fatalf("store: %v", err)
	}
	raw, err := boc.Serialize(b.EndCell(), boc.Options{CRC32C: true, Index: true})
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	root, err := boc.ParseOne(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	back, err := dict.Load(root.BeginParse(), dict.KeyUint(32), multisig.DictValueRequest())
	if err != nil {
		t.Fatalf("load dict: %v", err)
	}

	if back.Len() != 5 {
		t.Fatalf("len = %d, want 5", back.Len())
	}
	keys := back.Keys()
	for i, k := range keys {
		if k != uint64(1_700_000_000+i) {
			t.Errorf("key %d = %d", i, k)
		}
	}
	req, ok := back.Get(1_700_000_003)
	if !ok {
		t.Fatal("request 3 missing")
	}
	if req.Value.Int64() != 4_000 || !req.To.Equal(address(t, 0x23)) {
		t.Errorf("request 3 = %+v", req)
	}
}

func TestMultisig_Members(t *testing.T) {
	ctx := context.Background()
	p := tvmcells.NewMemoryProvider()
	wallet := multisig.FromAddress(address(t, 0x10))

	members := multisig.NewMembers()
	for i := 0; i < 3; i++ {
		if err := members.Set(address(t, byte(0x30+i)), big.NewInt(int64(i+1))); err != nil {
			t.Fatalf("set member: %v", err)
		}
	}
	si, err := multisig.Init(members, big.NewInt(6), big.NewInt(4))
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	wallet.Init = &si

	if err := p.RegisterGetter("members", func(context.Context, []tuple.Item) ([]tuple.Item, error) {
		s := si.Data.BeginParse()
		if _, err := s.LoadRef(); err != nil {
			return nil, err
		}
		if err := s.Skip(1); err != nil {
			return nil, err
		}
		root, err := s.LoadMaybeRef()
		if err != nil {
			return nil, err
		}
		b := tuple.NewBuilder()
		b.WriteCell(root)
		return b.Build()
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	got, err := wallet.GetMembers(ctx, p)
	if err != nil {
		t.Fatalf("members: %v", err)
	}
	if !got.Equal(members, func(a, b *big.Int) bool { return a.Cmp(b) == 0 }) {
		t.Errorf("members differ: got %d entries", got.Len())
	}
}
