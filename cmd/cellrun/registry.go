package main

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/wippyai/tvm-cells/cell"
	"github.com/wippyai/tvm-cells/contracts/functions"
	"github.com/wippyai/tvm-cells/contracts/jetton"
	"github.com/wippyai/tvm-cells/contracts/multisig"
	"github.com/wippyai/tvm-cells/tact"
)

// messageType is the pseudo record name that dispatches on the op code.
const messageType = "message"

type decodeFunc func(*cell.Slice) (any, error)

func decoder[T any](load func(*cell.Slice) (T, error)) decodeFunc {
	return func(s *cell.Slice) (any, error) {
		return load(s)
	}
}

var registry = map[string]map[string]decodeFunc{
	"tact": {
		"StateInit":      decoder(tact.LoadStateInit),
		"Context":        decoder(tact.LoadContext),
		"SendParameters": decoder(tact.LoadSendParameters),
		"Comment":        decoder(tact.LoadComment),
	},
	"jetton": {
		messageType:             decoder(jetton.LoadMessage),
		"ChangeOwner":           decoder(jetton.LoadChangeOwner),
		"TokenTransfer":         decoder(jetton.LoadTokenTransfer),
		"TokenTransferInternal": decoder(jetton.LoadTokenTransferInternal),
		"TokenNotification":     decoder(jetton.LoadTokenNotification),
		"TokenBurn":             decoder(jetton.LoadTokenBurn),
		"TokenBurnNotification": decoder(jetton.LoadTokenBurnNotification),
		"TokenExcesses":         decoder(jetton.LoadTokenExcesses),
		"TokenUpdateContent":    decoder(jetton.LoadTokenUpdateContent),
		"Mint":                  decoder(jetton.LoadMint),
		"JettonData":            decoder(jetton.LoadJettonData),
		"JettonWalletData":      decoder(jetton.LoadJettonWalletData),
	},
	"multisig": {
		messageType: decoder(multisig.LoadMessage),
		"Request":   decoder(multisig.LoadRequest),
		"Signed":    decoder(multisig.LoadSigned),
	},
	"functions": {
		messageType: decoder(functions.LoadMessage),
		"Add":       decoder(functions.LoadAdd),
		"Sub":       decoder(functions.LoadSub),
	},
}

func contractNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func typeNames(contract string) []string {
	types := registry[contract]
	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookup(contract, typeName string) (decodeFunc, error) {
	types, ok := registry[contract]
	if !ok {
		return nil, fmt.Errorf("unknown contract %q", contract)
	}
	if typeName == "" {
		typeName = messageType
	}
	f, ok := types[typeName]
	if !ok {
		return nil, fmt.Errorf("contract %s has no type %q", contract, typeName)
	}
	return f, nil
}

// decode reads root as typeName and reports how much of the cell was left
// unread.
func decode(contract, typeName string, root *cell.Cell) (any, *cell.Slice, error) {
	f, err := lookup(contract, typeName)
	if err != nil {
		return nil, nil, err
	}
	s := root.BeginParse()
	v, err := f(s)
	if err != nil {
		return nil, s, err
	}
	return v, s, nil
}

// formatRecord renders a decoded record as {Field:value ...}. Numbers are
// printed plainly and nested records recurse.
func formatRecord(v any) string {
	var b strings.Builder
	writeValue(&b, reflect.ValueOf(v))
	return b.String()
}

func writeValue(b *strings.Builder, rv reflect.Value) {
	switch {
	case !rv.IsValid():
		b.WriteString("<nil>")
	case rv.Kind() == reflect.Struct:
		t := rv.Type()
		b.WriteByte('{')
		for i := 0; i < rv.NumField(); i++ {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(t.Field(i).Name)
			b.WriteByte(':')
			writeValue(b, rv.Field(i))
		}
		b.WriteByte('}')
	case rv.Kind() == reflect.Pointer && rv.IsNil():
		b.WriteString("<nil>")
	case rv.CanInterface():
		fmt.Fprintf(b, "%v", rv.Interface())
	default:
		b.WriteString(rv.String())
	}
}
