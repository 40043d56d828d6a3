package tvmcells

import (
	"context"
	"math/big"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/tvm-cells/boc"
	"github.com/wippyai/tvm-cells/cell"
	"github.com/wippyai/tvm-cells/errors"
	"github.com/wippyai/tvm-cells/tuple"
)

// exitMethodNotFound is the exit code of a call to an unknown get-method.
const exitMethodNotFound = 32

// Message is an internal message recorded by MemoryProvider.
type Message struct {
	Body   *cell.Cell
	Value  *big.Int
	Bounce bool
}

// MemoryProvider is an in-process Provider. Sent bodies and get-method
// stacks pass through their wire encodings, so anything that reaches a
// handler or the outbox has survived a bag-of-cells or VM stack round trip.
type MemoryProvider struct {
	getters map[string]GetFunc
	outbox  []Message
	mu      sync.RWMutex
}

// NewMemoryProvider creates a provider with no get-methods.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{
		getters: make(map[string]GetFunc),
	}
}

// RegisterGetter installs the handler for a get-method, replacing any
// previous one.
func (p *MemoryProvider) RegisterGetter(method string, fn GetFunc) error {
	if method == "" {
		return errors.InvalidData(errors.PhaseGet, nil, "method name cannot be empty")
	}
	if fn == nil {
		return errors.InvalidData(errors.PhaseGet, []string{method}, "nil handler")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.getters[method] = fn
	return nil
}

// Internal records a message after a bag-of-cells round trip of its body.
func (p *MemoryProvider) Internal(ctx context.Context, args SendArgs, body *cell.Cell) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(errors.PhaseSend, errors.KindInvalidData, err, "context")
	}
	if body == nil {
		return errors.InvalidData(errors.PhaseSend, nil, "nil body")
	}
	raw, err := boc.Serialize(body, boc.Options{CRC32C: true})
	if err != nil {
		return errors.Wrap(errors.PhaseSend, errors.KindInvalidData, err, "serialize body")
	}
	wire, err := boc.ParseOne(raw)
	if err != nil {
		return errors.Wrap(errors.PhaseSend, errors.KindInvalidData, err, "parse body")
	}

	msg := Message{Body: wire, Bounce: args.Bounce}
	if args.Value != nil {
		msg.Value = new(big.Int).Set(args.Value)
	}
	p.mu.Lock()
	p.outbox = append(p.outbox, msg)
	p.mu.Unlock()

	Logger().Debug("internal message",
		zap.Int("bytes", len(raw)),
		zap.Bool("bounce", args.Bounce))
	return nil
}

// Get runs a registered handler. Arguments and results are serialized as VM
// stacks and parsed back on either side of the call.
func (p *MemoryProvider) Get(ctx context.Context, method string, args []tuple.Item) ([]tuple.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.PhaseGet, errors.KindInvalidData, err, "context")
	}
	p.mu.RLock()
	fn, ok := p.getters[method]
	p.mu.RUnlock()
	if !ok {
		Logger().Debug("unknown get-method", zap.String("method", method))
		return nil, &errors.ContractError{Code: exitMethodNotFound}
	}

	in, err := wireStack(args)
	if err != nil {
		return nil, errors.WithPath(err, method, "args")
	}
	out, err := fn(ctx, in)
	if err != nil {
		return nil, err
	}
	res, err := wireStack(out)
	if err != nil {
		return nil, errors.WithPath(err, method, "result")
	}
	return res, nil
}

func wireStack(items []tuple.Item) ([]tuple.Item, error) {
	c, err := tuple.Serialize(items)
	if err != nil {
		return nil, err
	}
	return tuple.Parse(c)
}

// Sent returns the recorded messages in send order.
func (p *MemoryProvider) Sent() []Message {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]Message(nil), p.outbox...)
}

// Reset discards recorded messages.
func (p *MemoryProvider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.outbox = nil
}
