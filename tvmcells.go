package tvmcells

import (
	"context"
	"math/big"

	"github.com/wippyai/tvm-cells/cell"
	"github.com/wippyai/tvm-cells/tuple"
)

// SendArgs carries the parameters of an internal message other than its body.
type SendArgs struct {
	// Value is the attached amount in nanotons.
	Value *big.Int
	// Bounce requests the message be returned if processing fails.
	Bounce bool
}

// Sender transmits a finalized message body to a contract.
type Sender interface {
	Internal(ctx context.Context, args SendArgs, body *cell.Cell) error
}

// Getter runs a contract get-method.
// A non-zero exit code is reported as *errors.ContractError.
type Getter interface {
	Get(ctx context.Context, method string, args []tuple.Item) ([]tuple.Item, error)
}

// Provider is the connection to a single deployed contract.
type Provider interface {
	Sender
	Getter
}

// GetFunc implements a get-method for MemoryProvider.
type GetFunc func(ctx context.Context, args []tuple.Item) ([]tuple.Item, error)
