package cell

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/xssnick/tonutils-go/address"

	"github.com/wippyai/tvm-cells/errors"
)

// AddressBits is the encoded size of a standard address:
// tag (2) + anycast flag (1) + workchain (8) + account hash (256).
const AddressBits = 267

// Address is a standard internal account address.
type Address struct {
	Workchain int8
	Hash      [32]byte
}

// NewAddress builds an address from a workchain and a 32-byte account hash.
func NewAddress(workchain int8, hash []byte) (*Address, error) {
	if len(hash) != 32 {
		return nil, errors.InvalidData(errors.PhaseStore, nil,
			fmt.Sprintf("account hash is %d bytes, want 32", len(hash)))
	}
	a := &Address{Workchain: workchain}
	copy(a.Hash[:], hash)
	return a, nil
}

// ParseAddress accepts either the raw "wc:hex" form or the 48-character
// user-friendly base64 form.
func ParseAddress(s string) (*Address, error) {
	if wc, h, ok := strings.Cut(s, ":"); ok {
		n, err := strconv.ParseInt(wc, 10, 8)
		if err != nil {
			return nil, errors.Wrap(errors.PhaseLoad, errors.KindInvalidData, err, "address workchain")
		}
		raw, err := hex.DecodeString(h)
		if err != nil {
			return nil, errors.Wrap(errors.PhaseLoad, errors.KindInvalidData, err, "address hash")
		}
		return NewAddress(int8(n), raw)
	}
	fa, err := address.ParseAddr(s)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseLoad, errors.KindInvalidData, err, "friendly address")
	}
	return NewAddress(int8(fa.Workchain()), fa.Data())
}

// MustParseAddress is ParseAddress that panics on error. Intended for
// constants and tests.
func MustParseAddress(s string) *Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// String returns the raw "wc:hex" form.
func (a *Address) String() string {
	return strconv.Itoa(int(a.Workchain)) + ":" + hex.EncodeToString(a.Hash[:])
}

// Friendly returns the user-friendly base64url form.
func (a *Address) Friendly(bounceable, testnet bool) string {
	fa := address.NewAddress(0, byte(a.Workchain), a.Hash[:])
	fa.SetBounce(bounceable)
	fa.SetTestnetOnly(testnet)
	return fa.String()
}

// Equal reports whether both addresses name the same account.
func (a *Address) Equal(o *Address) bool {
	if a == nil || o == nil {
		return a == o
	}
	return a.Workchain == o.Workchain && a.Hash == o.Hash
}
