package multisig

import (
	"context"
	"math/big"
	"sync"

	"go.uber.org/zap"

	tvmcells "github.com/wippyai/tvm-cells"
	"github.com/wippyai/tvm-cells/boc"
	"github.com/wippyai/tvm-cells/cell"
	"github.com/wippyai/tvm-cells/dict"
	"github.com/wippyai/tvm-cells/errors"
	"github.com/wippyai/tvm-cells/tact"
	"github.com/wippyai/tvm-cells/tuple"
)

// Contract-specific exit codes.
const (
	ExitInvalidSender = 4429
	ExitTimeout       = 4755
	ExitCompleted     = 40810
	ExitNotAMember    = 46307
)

// ExitCodes maps every exit code the contract may raise to its message.
var ExitCodes = tact.ExitCodes(map[int]string{
	ExitInvalidSender: "Invalid sender",
	ExitTimeout:       "Timeout",
	ExitCompleted:     "Completed",
	ExitNotAMember:    "Not a member",
})

// Members maps member addresses to their voting weight.
type Members = dict.Dictionary[*cell.Address, *big.Int]

// NewMembers creates an empty member table.
func NewMembers() *Members {
	return dict.New(dict.KeyAddress(), dict.ValueBigInt(257))
}

// Message is a body the multisig accepts.
type Message interface {
	isMessage()
}

func (Request) isMessage() {}
func (Signed) isMessage()  {}

// StoreMessage encodes a message body.
func StoreMessage(m Message) (*cell.Cell, error) {
	switch v := m.(type) {
	case Request:
		return tact.BuildCell(StoreRequest(v))
	case Signed:
		return tact.BuildCell(StoreSigned(v))
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
	case OpRequest:
		return LoadRequest(s)
	case OpSigned:
		return LoadSigned(s)
	}
	return nil, tact.UnknownOpcode("Multisig", op)
}

var compiled = sync.OnceValues(func() ([2]*cell.Cell, error) {
	code, err := boc.FromBase64(codeBOC)
	if err != nil {
		return [2]*cell.Cell{}, err
	}
	system, err := boc.FromBase64(systemBOC)
	if err != nil {
		return [2]*cell.Cell{}, err
	}
	return [2]*cell.Cell{code, system}, nil
})

// Code returns the compiled contract code.
func Code() (*cell.Cell, error) {
	c, err := compiled()
	return c[0], err
}

// Init builds the deploy state for a multisig with the given members.
func Init(members *Members, totalWeight, requiredWeight *big.Int) (tact.StateInit, error) {
	c, err := compiled()
	if err != nil {
		return tact.StateInit{}, err
	}
	return tact.NewStateInit(c[0], c[1], func(b *cell.Builder) error {
		if err := b.StoreUint(0, 1); err != nil {
			return err
		}
		if members == nil {
			members = NewMembers()
		}
		if err := members.Store(b); err != nil {
			return errors.WithPath(err, "members")
		}
		if err := b.StoreBigInt(totalWeight, 257); err != nil {
			return errors.WithPath(err, "totalWeight")
		}
		if err := b.StoreBigInt(requiredWeight, 257); err != nil {
			return errors.WithPath(err, "requiredWeight")
		}
		return nil
	})
}

// Contract is a handle to a deployed multisig.
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
	tact.Logger().Debug("multisig send", zap.Stringer("to", c.Address))
	return tact.Send(ctx, s, args, body)
}

// GetMember returns the weight of address, or nil when it is not a member.
func (c *Contract) GetMember(ctx context.Context, g tvmcells.Getter, address *cell.Address) (*big.Int, error) {
	b := tuple.NewBuilder()
	b.WriteAddress(address)
	args, err := b.Build()
	if err != nil {
		return nil, err
	}
	r, err := tact.Call(ctx, g, "member", args, ExitCodes)
	if err != nil {
		return nil, err
	}
	w, err := r.ReadBigNumberOpt()
	if err != nil {
		return nil, errors.WithPath(err, "member")
	}
	return w, nil
}

func (c *Contract) GetMembers(ctx context.Context, g tvmcells.Getter) (*Members, error) {
	r, err := tact.Call(ctx, g, "members", nil, ExitCodes)
	if err != nil {
		return nil, err
	}
	root, err := r.ReadCellOpt()
	if err != nil {
		return nil, errors.WithPath(err, "members")
	}
	m, err := dict.LoadDirect(dict.KeyAddress(), dict.ValueBigInt(257), root)
	if err != nil {
		return nil, errors.WithPath(err, "members")
	}
	return m, nil
}
