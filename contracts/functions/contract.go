package functions

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

// ExitValueNotPositive is raised when Add or Sub carries a value <= 0.
const ExitValueNotPositive = 55789

// ExitCodes maps every exit code the contract may raise to its message.
var ExitCodes = tact.ExitCodes(map[int]string{
	ExitValueNotPositive: "Value must be greater than 0",
})

// Message is a body the contract accepts.
type Message interface {
	isMessage()
}

func (Add) isMessage() {}
func (Sub) isMessage() {}

// StoreMessage encodes a message body.
func StoreMessage(m Message) (*cell.Cell, error) {
	switch v := m.(type) {
	case Add:
		return tact.BuildCell(StoreAdd(v))
	case Sub:
		return tact.BuildCell(StoreSub(v))
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
	case OpAdd:
		return LoadAdd(s)
	case OpSub:
		return LoadSub(s)
	}
	return nil, tact.UnknownOpcode("Functions", op)
}

type cells struct {
	init, code, system *cell.Cell
}

var compiled = sync.OnceValues(func() (cells, error) {
	var c cells
	var err error
	if c.init, err = boc.FromBase64(initBOC); err != nil {
		return c, errors.WithPath(err, "init")
	}
	if c.code, err = boc.FromBase64(codeBOC); err != nil {
		return c, errors.WithPath(err, "code")
	}
	if c.system, err = boc.FromBase64(systemBOC); err != nil {
		return c, errors.WithPath(err, "system")
	}
	return c, nil
})

// Code returns the compiled contract code.
func Code() (*cell.Cell, error) {
	c, err := compiled()
	return c.code, err
}

// Starter boots a contract from code and data and returns a handle that
// runs its get-methods.
type Starter func(ctx context.Context, code, data *cell.Cell) (tvmcells.Getter, error)

// Init computes the deploy state. The initial data is produced by the
// contract's own "init" get-method, so an executor is required.
func Init(ctx context.Context, start Starter) (tact.StateInit, error) {
	if start == nil {
		return tact.StateInit{}, errors.InvalidData(errors.PhaseGet, nil, "nil starter")
	}
	c, err := compiled()
	if err != nil {
		return tact.StateInit{}, err
	}
	exec, err := start(ctx, c.init, cell.Empty())
	if err != nil {
		return tact.StateInit{}, errors.Wrap(errors.PhaseGet, errors.KindInvalidData, err, "start init executor")
	}

	b := tuple.NewBuilder()
	b.WriteCell(c.system)
	args, err := b.Build()
	if err != nil {
		return tact.StateInit{}, err
	}
	r, err := tact.Call(ctx, exec, "init", args, ExitCodes)
	if err != nil {
		return tact.StateInit{}, err
	}
	data, err := r.ReadCell()
	if err != nil {
		return tact.StateInit{}, errors.WithPath(err, "init")
	}
	tact.Logger().Debug("functions init",
		zap.Binary("data_hash", data.Hash()))
	return tact.StateInit{Code: c.code, Data: data}, nil
}

// Contract is a handle to a deployed Functions contract.
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
	return tact.Send(ctx, s, args, body)
}
