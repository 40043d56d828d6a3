package tact

import (
	"context"
	stderrors "errors"
	"math/big"

	"go.uber.org/zap"

	tvmcells "github.com/wippyai/tvm-cells"
	"github.com/wippyai/tvm-cells/cell"
	"github.com/wippyai/tvm-cells/errors"
	"github.com/wippyai/tvm-cells/tuple"
)

// Send hands a finalized body to the sender.
func Send(ctx context.Context, s tvmcells.Sender, args tvmcells.SendArgs, body *cell.Cell) error {
	if body == nil {
		return errors.InvalidData(errors.PhaseSend, nil, "nil body")
	}
	if args.Value != nil && args.Value.Sign() < 0 {
		return errors.IntegerOutOfRange(errors.PhaseSend, args.Value, 120, false)
	}
	Logger().Debug("send",
		zap.String("body", body.String()),
		zap.Stringer("value", valueOrZero(args.Value)),
		zap.Bool("bounce", args.Bounce))
	return s.Internal(ctx, args, body)
}

func valueOrZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}

// Call runs a get-method and returns a reader over its results. A contract
// exit code is resolved against table.
func Call(ctx context.Context, g tvmcells.Getter, method string, args []tuple.Item, table map[int]string) (*tuple.Reader, error) {
	Logger().Debug("get", zap.String("method", method), zap.Int("args", len(args)))
	res, err := g.Get(ctx, method, args)
	if err != nil {
		var ce *errors.ContractError
		if stderrors.As(err, &ce) && ce.Message == "" {
			return nil, errors.ExitCode(ce.Code, table)
		}
		return nil, err
	}
	return tuple.NewReader(res), nil
}

// NewStateInit builds the deploy state of a contract: the code as given and
// a data cell holding a reference to the system cell followed by the init
// arguments.
func NewStateInit(code, system *cell.Cell, args Composer) (StateInit, error) {
	data, err := BuildCell(func(b *cell.Builder) error {
		if err := b.StoreRef(system); err != nil {
			return errors.WithPath(err, "system")
		}
		return args(b)
	})
	if err != nil {
		return StateInit{}, err
	}
	return StateInit{Code: code, Data: data}, nil
}
