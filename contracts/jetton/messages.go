package jetton

import (
	"math/big"

	"github.com/wippyai/tvm-cells/cell"
	"github.com/wippyai/tvm-cells/dict"
	"github.com/wippyai/tvm-cells/errors"
	"github.com/wippyai/tvm-cells/tact"
	"github.com/wippyai/tvm-cells/tuple"
)

// Op codes of the tagged messages.
const (
	OpChangeOwner           uint32 = 256331011
	OpTokenTransfer         uint32 = 260734629
	OpTokenTransferInternal uint32 = 395134233
	OpTokenNotification     uint32 = 1935855772
	OpTokenBurn             uint32 = 1499400124
	OpTokenBurnNotification uint32 = 2078119902
	OpTokenExcesses         uint32 = 3576854235
	OpTokenUpdateContent    uint32 = 201882270
	OpMint                  uint32 = 33240155
)

type ChangeOwner struct {
	NewOwner *cell.Address
}

func StoreChangeOwner(v ChangeOwner) func(*cell.Builder) error {
	return func(b *cell.Builder) error {
		if err := b.StoreUint(uint64(OpChangeOwner), 32); err != nil {
			return err
		}
		if err := b.StoreAddress(v.NewOwner); err != nil {
			return errors.WithPath(err, "newOwner")
		}
		return nil
	}
}

func LoadChangeOwner(s *cell.Slice) (ChangeOwner, error) {
	var v ChangeOwner
	var err error
	if err = tact.LoadOpcode(s, OpChangeOwner, "ChangeOwner"); err != nil {
		return v, err
	}
	if v.NewOwner, err = s.LoadAddress(); err != nil {
		return v, errors.WithPath(err, "newOwner")
	}
	return v, nil
}

func StoreTupleChangeOwner(v ChangeOwner) ([]tuple.Item, error) {
	b := tuple.NewBuilder()
	b.WriteAddress(v.NewOwner)
	return b.Build()
}

func LoadTupleChangeOwner(r *tuple.Reader) (ChangeOwner, error) {
	var v ChangeOwner
	var err error
	if v.NewOwner, err = r.ReadAddress(); err != nil {
		return v, errors.WithPath(err, "newOwner")
	}
	return v, nil
}

func DictValueChangeOwner() dict.ValueCodec[ChangeOwner] {
	return tact.DictValue(StoreChangeOwner, LoadChangeOwner)
}

// TokenTransfer asks a wallet to move tokens to another owner.
type TokenTransfer struct {
	QueryID             uint64
	Amount              *big.Int
	Destination         *cell.Address
	ResponseDestination *cell.Address
	CustomPayload       *cell.Cell
	ForwardTonAmount    *big.Int
	// ForwardPayload is inlined after the fixed fields. A nil payload is
	// stored as an empty one and loads back as cell.Empty().
	ForwardPayload *cell.Cell
}

func StoreTokenTransfer(v TokenTransfer) func(*cell.Builder) error {
	return func(b *cell.Builder) error {
		if err := b.StoreUint(uint64(OpTokenTransfer), 32); err != nil {
			return err
		}
		if err := b.StoreUint(v.QueryID, 64); err != nil {
			return errors.WithPath(err, "queryId")
		}
		if err := b.StoreBigCoins(v.Amount); err != nil {
			return errors.WithPath(err, "amount")
		}
		if err := b.StoreAddress(v.Destination); err != nil {
			return errors.WithPath(err, "destination")
		}
		if err := b.StoreAddress(v.ResponseDestination); err != nil {
			return errors.WithPath(err, "responseDestination")
		}
		if err := b.StoreMaybeRef(v.CustomPayload); err != nil {
			return errors.WithPath(err, "customPayload")
		}
		if err := b.StoreBigCoins(v.ForwardTonAmount); err != nil {
			return errors.WithPath(err, "forwardTonAmount")
		}
		if err := tact.StoreInline(b, v.ForwardPayload); err != nil {
			return errors.WithPath(err, "forwardPayload")
		}
		return nil
	}
}

func LoadTokenTransfer(s *cell.Slice) (TokenTransfer, error) {
	var v TokenTransfer
	var err error
	if err = tact.LoadOpcode(s, OpTokenTransfer, "TokenTransfer"); err != nil {
		return v, err
	}
	if v.QueryID, err = s.LoadUint(64); err != nil {
		return v, errors.WithPath(err, "queryId")
	}
	if v.Amount, err = s.LoadBigCoins(); err != nil {
		return v, errors.WithPath(err, "amount")
	}
	if v.Destination, err = s.LoadAddress(); err != nil {
		return v, errors.WithPath(err, "destination")
	}
	if v.ResponseDestination, err = s.LoadMaybeAddress(); err != nil {
		return v, errors.WithPath(err, "responseDestination")
	}
	if v.CustomPayload, err = s.LoadMaybeRef(); err != nil {
		return v, errors.WithPath(err, "customPayload")
	}
	if v.ForwardTonAmount, err = s.LoadBigCoins(); err != nil {
		return v, errors.WithPath(err, "forwardTonAmount")
	}
	v.ForwardPayload = s.LoadRemainder()
	return v, nil
}

func StoreTupleTokenTransfer(v TokenTransfer) ([]tuple.Item, error) {
	b := tuple.NewBuilder()
	b.WriteUint64(v.QueryID)
	b.WriteNumber(v.Amount)
	b.WriteAddress(v.Destination)
	b.WriteAddress(v.ResponseDestination)
	b.WriteCell(v.CustomPayload)
	b.WriteNumber(v.ForwardTonAmount)
	b.WriteSlice(tact.Inline(v.ForwardPayload))
	return b.Build()
}

func LoadTupleTokenTransfer(r *tuple.Reader) (TokenTransfer, error) {
	var v TokenTransfer
	var err error
	if v.QueryID, err = r.ReadUint64(); err != nil {
		return v, errors.WithPath(err, "queryId")
	}
	if v.Amount, err = r.ReadBigNumber(); err != nil {
		return v, errors.WithPath(err, "amount")
	}
	if v.Destination, err = r.ReadAddress(); err != nil {
		return v, errors.WithPath(err, "destination")
	}
	if v.ResponseDestination, err = r.ReadAddressOpt(); err != nil {
		return v, errors.WithPath(err, "responseDestination")
	}
	if v.CustomPayload, err = r.ReadCellOpt(); err != nil {
		return v, errors.WithPath(err, "customPayload")
	}
	if v.ForwardTonAmount, err = r.ReadBigNumber(); err != nil {
		return v, errors.WithPath(err, "forwardTonAmount")
	}
	if v.ForwardPayload, err = r.ReadCell(); err != nil {
		return v, errors.WithPath(err, "forwardPayload")
	}
	return v, nil
}

func DictValueTokenTransfer() dict.ValueCodec[TokenTransfer] {
	return tact.DictValue(StoreTokenTransfer, LoadTokenTransfer)
}

// TokenTransferInternal moves tokens between two wallets.
// ForwardPayload is inlined as in TokenTransfer; nil stores an empty
// payload and loads back as cell.Empty().
type TokenTransferInternal struct {
	QueryID          uint64
	Amount           *big.Int
	From             *cell.Address
	ResponseAddress  *cell.Address
	ForwardTonAmount *big.Int
	ForwardPayload   *cell.Cell
}

func StoreTokenTransferInternal(v TokenTransferInternal) func(*cell.Builder) error {
	return func(b *cell.Builder) error {
		if err := b.StoreUint(uint64(OpTokenTransferInternal), 32); err != nil {
			return err
		}
		if err := b.StoreUint(v.QueryID, 64); err != nil {
			return errors.WithPath(err, "queryId")
		}
		if err := b.StoreBigCoins(v.Amount); err != nil {
			return errors.WithPath(err, "amount")
		}
		if err := b.StoreAddress(v.From); err != nil {
			return errors.WithPath(err, "from")
		}
		if err := b.StoreAddress(v.ResponseAddress); err != nil {
			return errors.WithPath(err, "responseAddress")
		}
		if err := b.StoreBigCoins(v.ForwardTonAmount); err != nil {
			return errors.WithPath(err, "forwardTonAmount")
		}
		if err := tact.StoreInline(b, v.ForwardPayload); err != nil {
			return errors.WithPath(err, "forwardPayload")
		}
		return nil
	}
}

func LoadTokenTransferInternal(s *cell.Slice) (TokenTransferInternal, error) {
	var v TokenTransferInternal
	var err error
	if err = tact.LoadOpcode(s, OpTokenTransferInternal, "TokenTransferInternal"); err != nil {
		return v, err
	}
	if v.QueryID, err = s.LoadUint(64); err != nil {
		return v, errors.WithPath(err, "queryId")
	}
	if v.Amount, err = s.LoadBigCoins(); err != nil {
		return v, errors.WithPath(err, "amount")
	}
	if v.From, err = s.LoadAddress(); err != nil {
		return v, errors.WithPath(err, "from")
	}
	if v.ResponseAddress, err = s.LoadMaybeAddress(); err != nil {
		return v, errors.WithPath(err, "responseAddress")
	}
	if v.ForwardTonAmount, err = s.LoadBigCoins(); err != nil {
		return v, errors.WithPath(err, "forwardTonAmount")
	}
	v.ForwardPayload = s.LoadRemainder()
	return v, nil
}

func StoreTupleTokenTransferInternal(v TokenTransferInternal) ([]tuple.Item, error) {
	b := tuple.NewBuilder()
	b.WriteUint64(v.QueryID)
	b.WriteNumber(v.Amount)
	b.WriteAddress(v.From)
	b.WriteAddress(v.ResponseAddress)
	b.WriteNumber(v.ForwardTonAmount)
	b.WriteSlice(tact.Inline(v.ForwardPayload))
	return b.Build()
}

func LoadTupleTokenTransferInternal(r *tuple.Reader) (TokenTransferInternal, error) {
	var v TokenTransferInternal
	var err error
	if v.QueryID, err = r.ReadUint64(); err != nil {
		return v, errors.WithPath(err, "queryId")
	}
	if v.Amount, err = r.ReadBigNumber(); err != nil {
		return v, errors.WithPath(err, "amount")
	}
	if v.From, err = r.ReadAddress(); err != nil {
		return v, errors.WithPath(err, "from")
	}
	if v.ResponseAddress, err = r.ReadAddressOpt(); err != nil {
		return v, errors.WithPath(err, "responseAddress")
	}
	if v.ForwardTonAmount, err = r.ReadBigNumber(); err != nil {
		return v, errors.WithPath(err, "forwardTonAmount")
	}
	if v.ForwardPayload, err = r.ReadCell(); err != nil {
		return v, errors.WithPath(err, "forwardPayload")
	}
	return v, nil
}

func DictValueTokenTransferInternal() dict.ValueCodec[TokenTransferInternal] {
	return tact.DictValue(StoreTokenTransferInternal, LoadTokenTransferInternal)
}

// TokenNotification tells the new owner that tokens arrived. ForwardPayload
// is inlined; nil stores an empty payload and loads back as cell.Empty().
type TokenNotification struct {
	QueryID        uint64
	Amount         *big.Int
	From           *cell.Address
	ForwardPayload *cell.Cell
}

func StoreTokenNotification(v TokenNotification) func(*cell.Builder) error {
	return func(b *cell.Builder) error {
		if err := b.StoreUint(uint64(OpTokenNotification), 32); err != nil {
			return err
		}
		if err := b.StoreUint(v.QueryID, 64); err != nil {
			return errors.WithPath(err, "queryId")
		}
		if err := b.StoreBigCoins(v.Amount); err != nil {
			return errors.WithPath(err, "amount")
		}
		if err := b.StoreAddress(v.From); err != nil {
			return errors.WithPath(err, "from")
		}
		if err := tact.StoreInline(b, v.ForwardPayload); err != nil {
			return errors.WithPath(err, "forwardPayload")
		}
		return nil
	}
}

func LoadTokenNotification(s *cell.Slice) (TokenNotification, error) {
	var v TokenNotification
	var err error
	if err = tact.LoadOpcode(s, OpTokenNotification, "TokenNotification"); err != nil {
		return v, err
	}
	if v.QueryID, err = s.LoadUint(64); err != nil {
		return v, errors.WithPath(err, "queryId")
	}
	if v.Amount, err = s.LoadBigCoins(); err != nil {
		return v, errors.WithPath(err, "amount")
	}
	if v.From, err = s.LoadAddress(); err != nil {
		return v, errors.WithPath(err, "from")
	}
	v.ForwardPayload = s.LoadRemainder()
	return v, nil
}

func StoreTupleTokenNotification(v TokenNotification) ([]tuple.Item, error) {
	b := tuple.NewBuilder()
	b.WriteUint64(v.QueryID)
	b.WriteNumber(v.Amount)
	b.WriteAddress(v.From)
	b.WriteSlice(tact.Inline(v.ForwardPayload))
	return b.Build()
}

func LoadTupleTokenNotification(r *tuple.Reader) (TokenNotification, error) {
	var v TokenNotification
	var err error
	if v.QueryID, err = r.ReadUint64(); err != nil {
		return v, errors.WithPath(err, "queryId")
	}
	if v.Amount, err = r.ReadBigNumber(); err != nil {
		return v, errors.WithPath(err, "amount")
	}
	if v.From, err = r.ReadAddress(); err != nil {
		return v, errors.WithPath(err, "from")
	}
	if v.ForwardPayload, err = r.ReadCell(); err != nil {
		return v, errors.WithPath(err, "forwardPayload")
	}
	return v, nil
}

func DictValueTokenNotification() dict.ValueCodec[TokenNotification] {
	return tact.DictValue(StoreTokenNotification, LoadTokenNotification)
}

// TokenBurn asks a wallet to destroy tokens.
type TokenBurn struct {
	QueryID         uint64
	Amount          *big.Int
	Owner           *cell.Address
	ResponseAddress *cell.Address
}

func StoreTokenBurn(v TokenBurn) func(*cell.Builder) error {
	return storeBurn(OpTokenBurn, v.QueryID, v.Amount, v.Owner, v.ResponseAddress)
}

func LoadTokenBurn(s *cell.Slice) (TokenBurn, error) {
	var v TokenBurn
	err := loadBurn(s, OpTokenBurn, "TokenBurn", &v.QueryID, &v.Amount, &v.Owner, &v.ResponseAddress)
	return v, err
}

func StoreTupleTokenBurn(v TokenBurn) ([]tuple.Item, error) {
	return storeTupleBurn(v.QueryID, v.Amount, v.Owner, v.ResponseAddress)
}

func LoadTupleTokenBurn(r *tuple.Reader) (TokenBurn, error) {
	var v TokenBurn
	err := loadTupleBurn(r, &v.QueryID, &v.Amount, &v.Owner, &v.ResponseAddress)
	return v, err
}

func DictValueTokenBurn() dict.ValueCodec[TokenBurn] {
	return tact.DictValue(StoreTokenBurn, LoadTokenBurn)
}

// TokenBurnNotification reports a burn to the jetton master.
type TokenBurnNotification struct {
	QueryID         uint64
	Amount          *big.Int
	Owner           *cell.Address
	ResponseAddress *cell.Address
}

func StoreTokenBurnNotification(v TokenBurnNotification) func(*cell.Builder) error {
	return storeBurn(OpTokenBurnNotification, v.QueryID, v.Amount, v.Owner, v.ResponseAddress)
}

func LoadTokenBurnNotification(s *cell.Slice) (TokenBurnNotification, error) {
	var v TokenBurnNotification
	err := loadBurn(s, OpTokenBurnNotification, "TokenBurnNotification", &v.QueryID, &v.Amount, &v.Owner, &v.ResponseAddress)
	return v, err
}

func StoreTupleTokenBurnNotification(v TokenBurnNotification) ([]tuple.Item, error) {
	return storeTupleBurn(v.QueryID, v.Amount, v.Owner, v.ResponseAddress)
}

func LoadTupleTokenBurnNotification(r *tuple.Reader) (TokenBurnNotification, error) {
	var v TokenBurnNotification
	err := loadTupleBurn(r, &v.QueryID, &v.Amount, &v.Owner, &v.ResponseAddress)
	return v, err
}

func DictValueTokenBurnNotification() dict.ValueCodec[TokenBurnNotification] {
	return tact.DictValue(StoreTokenBurnNotification, LoadTokenBurnNotification)
}

// TokenBurn and TokenBurnNotification share a layout behind different op codes.

func storeBurn(op uint32, queryID uint64, amount *big.Int, owner, response *cell.Address) func(*cell.Builder) error {
	return func(b *cell.Builder) error {
		if err := b.StoreUint(uint64(op), 32); err != nil {
			return err
		}
		if err := b.StoreUint(queryID, 64); err != nil {
			return errors.WithPath(err, "queryId")
		}
		if err := b.StoreBigCoins(amount); err != nil {
			return errors.WithPath(err, "amount")
		}
		if err := b.StoreAddress(owner); err != nil {
			return errors.WithPath(err, "owner")
		}
		if err := b.StoreAddress(response); err != nil {
			return errors.WithPath(err, "responseAddress")
		}
		return nil
	}
}

func loadBurn(s *cell.Slice, op uint32, name string, queryID *uint64, amount **big.Int, owner, response **cell.Address) error {
	var err error
	if err = tact.LoadOpcode(s, op, name); err != nil {
		return err
	}
	if *queryID, err = s.LoadUint(64); err != nil {
		return errors.WithPath(err, "queryId")
	}
	if *amount, err = s.LoadBigCoins(); err != nil {
		return errors.WithPath(err, "amount")
	}
	if *owner, err = s.LoadAddress(); err != nil {
		return errors.WithPath(err, "owner")
	}
	if *response, err = s.LoadMaybeAddress(); err != nil {
		return errors.WithPath(err, "responseAddress")
	}
	return nil
}

func storeTupleBurn(queryID uint64, amount *big.Int, owner, response *cell.Address) ([]tuple.Item, error) {
	b := tuple.NewBuilder()
	b.WriteUint64(queryID)
	b.WriteNumber(amount)
	b.WriteAddress(owner)
	b.WriteAddress(response)
	return b.Build()
}

func loadTupleBurn(r *tuple.Reader, queryID *uint64, amount **big.Int, owner, response **cell.Address) error {
	var err error
	if *queryID, err = r.ReadUint64(); err != nil {
		return errors.WithPath(err, "queryId")
	}
	if *amount, err = r.ReadBigNumber(); err != nil {
		return errors.WithPath(err, "amount")
	}
	if *owner, err = r.ReadAddress(); err != nil {
		return errors.WithPath(err, "owner")
	}
	if *response, err = r.ReadAddressOpt(); err != nil {
		return errors.WithPath(err, "responseAddress")
	}
	return nil
}

// TokenExcesses returns unused value to the response address.
type TokenExcesses struct {
	QueryID uint64
}

func StoreTokenExcesses(v TokenExcesses) func(*cell.Builder) error {
	return func(b *cell.Builder) error {
		if err := b.StoreUint(uint64(OpTokenExcesses), 32); err != nil {
			return err
		}
		if err := b.StoreUint(v.QueryID, 64); err != nil {
			return errors.WithPath(err, "queryId")
		}
		return nil
	}
}

func LoadTokenExcesses(s *cell.Slice) (TokenExcesses, error) {
	var v TokenExcesses
	var err error
	if err = tact.LoadOpcode(s, OpTokenExcesses, "TokenExcesses"); err != nil {
		return v, err
	}
	if v.QueryID, err = s.LoadUint(64); err != nil {
		return v, errors.WithPath(err, "queryId")
	}
	return v, nil
}

func StoreTupleTokenExcesses(v TokenExcesses) ([]tuple.Item, error) {
	b := tuple.NewBuilder()
	b.WriteUint64(v.QueryID)
	return b.Build()
}

func LoadTupleTokenExcesses(r *tuple.Reader) (TokenExcesses, error) {
	var v TokenExcesses
	var err error
	if v.QueryID, err = r.ReadUint64(); err != nil {
		return v, errors.WithPath(err, "queryId")
	}
	return v, nil
}

func DictValueTokenExcesses() dict.ValueCodec[TokenExcesses] {
	return tact.DictValue(StoreTokenExcesses, LoadTokenExcesses)
}

// TokenUpdateContent replaces the jetton metadata.
type TokenUpdateContent struct {
	Content *cell.Cell
}

func StoreTokenUpdateContent(v TokenUpdateContent) func(*cell.Builder) error {
	return func(b *cell.Builder) error {
		if err := b.StoreUint(uint64(OpTokenUpdateContent), 32); err != nil {
			return err
		}
		if err := b.StoreMaybeRef(v.Content); err != nil {
			return errors.WithPath(err, "content")
		}
		return nil
	}
}

func LoadTokenUpdateContent(s *cell.Slice) (TokenUpdateContent, error) {
	var v TokenUpdateContent
	var err error
	if err = tact.LoadOpcode(s, OpTokenUpdateContent, "TokenUpdateContent"); err != nil {
		return v, err
	}
	if v.Content, err = s.LoadMaybeRef(); err != nil {
		return v, errors.WithPath(err, "content")
	}
	return v, nil
}

func StoreTupleTokenUpdateContent(v TokenUpdateContent) ([]tuple.Item, error) {
	b := tuple.NewBuilder()
	b.WriteCell(v.Content)
	return b.Build()
}

func LoadTupleTokenUpdateContent(r *tuple.Reader) (TokenUpdateContent, error) {
	var v TokenUpdateContent
	var err error
	if v.Content, err = r.ReadCellOpt(); err != nil {
		return v, errors.WithPath(err, "content")
	}
	return v, nil
}

func DictValueTokenUpdateContent() dict.ValueCodec[TokenUpdateContent] {
	return tact.DictValue(StoreTokenUpdateContent, LoadTokenUpdateContent)
}

// Mint asks the master to mint tokens to the sender.
type Mint struct {
	Amount *big.Int
}

func StoreMint(v Mint) func(*cell.Builder) error {
	return func(b *cell.Builder) error {
		if err := b.StoreUint(uint64(OpMint), 32); err != nil {
			return err
		}
		if err := b.StoreBigInt(v.Amount, 257); err != nil {
			return errors.WithPath(err, "amount")
		}
		return nil
	}
}

func LoadMint(s *cell.Slice) (Mint, error) {
	var v Mint
	var err error
	if err = tact.LoadOpcode(s, OpMint, "Mint"); err != nil {
		return v, err
	}
	if v.Amount, err = s.LoadBigInt(257); err != nil {
		return v, errors.WithPath(err, "amount")
	}
	return v, nil
}

func StoreTupleMint(v Mint) ([]tuple.Item, error) {
	b := tuple.NewBuilder()
	b.WriteNumber(v.Amount)
	return b.Build()
}

func LoadTupleMint(r *tuple.Reader) (Mint, error) {
	var v Mint
	var err error
	if v.Amount, err = r.ReadBigNumber(); err != nil {
		return v, errors.WithPath(err, "amount")
	}
	return v, nil
}

func DictValueMint() dict.ValueCodec[Mint] {
	return tact.DictValue(StoreMint, LoadMint)
}
