package jetton

import (
	"context"
	"sync"

	"go.uber.org/zap"

	tvmcells "github.com/wippyai/tvm-cells"
	"github.com/wippyai/tvm-cells/boc"
	"github.com/wippyai/tvm-cells/cell"
	"github.com/wippyai/tvm-cells/errors"
	"github.com/wippyai/tvm-cells/tact"
	"github.com/wippyai/tvm-cells/tuple"
)

// Contract-specific exit codes.
const (
	ExitInvalidSender         = 4429
	ExitInvalidBouncedMessage = 13650
	ExitInvalidValue          = 16059
	ExitInvalidBalance        = 62972
)

// ExitCodes maps every exit code the contract may raise to its message.
var ExitCodes = tact.ExitCodes(map[int]string{
	ExitInvalidSender:         "Invalid sender",
	ExitInvalidBouncedMessage: "Invalid bounced message",
	ExitInvalidValue:          "Invalid value",
	ExitInvalidBalance:        "Invalid balance",
})

// Message is a body the jetton master accepts.
type Message interface {
	isMessage()
}

// Text is a text comment receiver.
type Text string

// MintText mints to the sender without an explicit amount.
const MintText Text = "Mint!"

func (Mint) isMessage()                  {}
func (Text) isMessage()                  {}
func (TokenUpdateContent) isMessage()    {}
func (TokenBurnNotification) isMessage() {}

// StoreMessage encodes a message body.
func StoreMessage(m Message) (*cell.Cell, error) {
	switch v := m.(type) {
	case Mint:
		return tact.BuildCell(StoreMint(v))
	case Text:
		if v != MintText {
			return nil, errors.Unsupported(errors.PhaseStore, "text receiver "+string(v))
		}
		return tact.Comment(string(v))
	case TokenUpdateContent:
		return tact.BuildCell(StoreTokenUpdateContent(v))
	case TokenBurnNotification:
		return tact.BuildCell(StoreTokenBurnNotification(v))
	}
	return nil, errors.InvalidData(errors.PhaseStore, nil, "invalid message type")
}

// LoadMessage decodes a body by its op code.
func LoadMessage(s *cell.Slice) (Message, error) {
	op, err := tact.PeekOpcode(s)
	if err != nil {
		return nil, err
	}
	switch op {
	case OpMint:
		return LoadMint(s)
	case tact.CommentOpcode:
		start := s.Copy()
		text, err := tact.LoadComment(s)
		if err != nil {
			return nil, err
		}
		if Text(text) != MintText {
			*s = *start
			return nil, errors.Unsupported(errors.PhaseLoad, "text receiver "+text)
		}
		return MintText, nil
	case OpTokenUpdateContent:
		return LoadTokenUpdateContent(s)
	case OpTokenBurnNotification:
		return LoadTokenBurnNotification(s)
	}
	return nil, tact.UnknownOpcode("Jetton", op)
}

var (
	codeOnce sync.Once
	code     *cell.Cell
	system   *cell.Cell
	codeErr  error
)

func compiled() (*cell.Cell, *cell.Cell, error) {
	codeOnce.Do(func() {
		if code, codeErr = boc.FromBase64(codeBOC); codeErr != nil {
			return
		}
		system, codeErr = boc.FromBase64(systemBOC)
	})
	return code, system, codeErr
}

// Code returns the compiled contract code.
func Code() (*cell.Cell, error) {
	c, _, err := compiled()
	return c, err
}

func storeInitArgs(owner *cell.Address, content *cell.Cell) tact.Composer {
	return func(b *cell.Builder) error {
		if err := b.StoreUint(0, 1); err != nil {
			return err
		}
		if err := b.StoreAddress(owner); err != nil {
			return errors.WithPath(err, "owner")
		}
		if err := b.StoreMaybeRef(content); err != nil {
			return errors.WithPath(err, "content")
		}
		return nil
	}
}

// Init builds the deploy state for a master owned by owner.
func Init(owner *cell.Address, content *cell.Cell) (tact.StateInit, error) {
	if owner == nil {
		return tact.StateInit{}, errors.InvalidData(errors.PhaseStore, []string{"owner"}, "owner is required")
	}
	c, sys, err := compiled()
	if err != nil {
		return tact.StateInit{}, err
	}
	return tact.NewStateInit(c, sys, storeInitArgs(owner, content))
}

// Contract is a handle to a deployed jetton master.
type Contract struct {
	Address *cell.Address
	Init    *tact.StateInit
}

// FromAddress returns a handle to an existing contract.
func FromAddress(addr *cell.Address) *Contract {
	return &Contract{Address: addr}
}

// Send encodes m and hands it to the sender.
func (c *Contract) Send(ctx context.Context, s tvmcells.Sender, args tvmcells.SendArgs, m Message) error {
	body, err := StoreMessage(m)
	if err != nil {
		return err
	}
	tact.Logger().Debug("jetton send", zap.Stringer("to", c.Address))
	return tact.Send(ctx, s, args, body)
}

func (c *Contract) GetWalletAddress(ctx context.Context, g tvmcells.Getter, owner *cell.Address) (*cell.Address, error) {
	b := tuple.NewBuilder()
	b.WriteAddress(owner)
	args, err := b.Build()
	if err != nil {
		return nil, err
	}
	r, err := tact.Call(ctx, g, "get_wallet_address", args, ExitCodes)
	if err != nil {
		return nil, err
	}
	a, err := r.ReadAddress()
	if err != nil {
		return nil, errors.WithPath(err, "get_wallet_address")
	}
	return a, nil
}

func (c *Contract) GetJettonData(ctx context.Context, g tvmcells.Getter) (JettonData, error) {
	r, err := tact.Call(ctx, g, "get_jetton_data", nil, ExitCodes)
	if err != nil {
		return JettonData{}, err
	}
	v, err := LoadTupleJettonData(r)
	if err != nil {
		return JettonData{}, errors.WithPath(err, "get_jetton_data")
	}
	return v, nil
}

func (c *Contract) GetOwner(ctx context.Context, g tvmcells.Getter) (*cell.Address, error) {
	r, err := tact.Call(ctx, g, "owner", nil, ExitCodes)
	if err != nil {
		return nil, err
	}
	a, err := r.ReadAddress()
	if err != nil {
		return nil, errors.WithPath(err, "owner")
	}
	return a, nil
}
