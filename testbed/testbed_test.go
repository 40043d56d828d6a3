package testbed

import (
	"context"
	"math/big"
	"sync"

	tvmcells "github.com/wippyai/tvm-cells"
	"github.com/wippyai/tvm-cells/cell"
	"github.com/wippyai/tvm-cells/contracts/jetton"
	"github.com/wippyai/tvm-cells/errors"
	"github.com/wippyai/tvm-cells/tuple"
)

// mintTextAmount is what a "Mint!" comment credits.
var mintTextAmount = big.NewInt(1_000_000_000)

// MasterHost emulates a jetton master on top of a MemoryProvider. Bodies are
// taken from the provider outbox, so every message it applies has been
// through a bag-of-cells round trip.
type MasterHost struct {
	*tvmcells.MemoryProvider

	owner   *cell.Address
	supply  *big.Int
	content *cell.Cell
	applied int
	mu      sync.Mutex
}

func NewMasterHost(owner *cell.Address) (*MasterHost, error) {
	h := &MasterHost{
		MemoryProvider: tvmcells.NewMemoryProvider(),
		owner:          owner,
		supply:         new(big.Int),
	}
	if err := h.RegisterGetter("get_jetton_data", h.jettonData); err != nil {
		return nil, err
	}
	if err := h.RegisterGetter("owner", h.ownerGetter); err != nil {
		return nil, err
	}
	return h, nil
}

// Process applies every message sent since the last call.
func (h *MasterHost) Process() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	sent := h.Sent()
	for _, m := range sent[h.applied:] {
		msg, err := jetton.LoadMessage(m.Body.BeginParse())
		if err != nil {
			return err
		}
		switch v := msg.(type) {
		case jetton.Mint:
			h.supply.Add(h.supply, v.Amount)
		case jetton.Text:
			h.supply.Add(h.supply, mintTextAmount)
		case jetton.TokenUpdateContent:
			h.content = v.Content
		case jetton.TokenBurnNotification:
			if h.supply.Cmp(v.Amount) < 0 {
				return &errors.ContractError{Code: jetton.ExitInvalidBalance}
			}
			h.supply.Sub(h.supply, v.Amount)
		}
		h.applied++
	}
	return nil
}

func (h *MasterHost) jettonData(context.Context, []tuple.Item) ([]tuple.Item, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return jetton.StoreTupleJettonData(jetton.JettonData{
		TotalSupply: new(big.Int).Set(h.supply),
		Mintable:    true,
		Owner:       h.owner,
		Content:     h.content,
		WalletCode:  cell.Empty(),
	})
}

func (h *MasterHost) ownerGetter(context.Context, []tuple.Item) ([]tuple.Item, error) {
	b := tuple.NewBuilder()
	b.WriteAddress(h.owner)
	return b.Build()
}
