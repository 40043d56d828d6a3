// Package tvmcells is a Go implementation of the TVM tree-of-cells format and
// the typed message bindings built on it.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	tvmcells/            Root package with the Provider interfaces and an in-memory provider
//	├── cell/            Cells, the bit-level Builder and Slice, addresses
//	├── dict/            HashmapE dictionaries over fixed-width keys
//	├── tuple/           Get-method stack values and the VM stack encoding
//	├── boc/             Bag-of-cells wire bytes
//	├── tact/            Records and helpers shared by generated bindings
//	├── contracts/       Bindings for the jetton, multisig and functions contracts
//	├── errors/          Structured error types for debugging
//	├── cmd/cellrun/     Inspector for encoded cells and messages
//	├── testbed/         End-to-end scenarios over MemoryProvider
//	└── examples/        Runnable usage examples
//
// # Quick Start
//
// Build a message body and send it:
//
//	body, err := jetton.StoreMessage(jetton.Mint{Amount: big.NewInt(1000)})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = provider.Internal(ctx, tvmcells.SendArgs{Value: fee, Bounce: true}, body)
//
// Or through a contract wrapper:
//
//	c := jetton.FromAddress(addr)
//	err := c.Send(ctx, provider, tvmcells.SendArgs{Value: fee}, jetton.MintText)
//	data, err := c.GetJettonData(ctx, provider)
//
// Decode a body received from the network:
//
//	root, err := boc.FromBase64(payload)
//	msg, err := jetton.LoadTokenTransfer(root.BeginParse())
//
// # Encodings
//
// Every record has two independent encodings. The cell form packs fields
// bit by bit behind a 32-bit op code and is what travels in messages. The
// tuple form is a flat list of stack values used for get-method arguments
// and results. Both follow the same field order.
//
// # Providers
//
// Network access is outside this module. Contract wrappers talk to a
// Provider; MemoryProvider serves tests and tools by recording sent messages
// and answering get-methods from registered Go functions.
//
// # Error Handling
//
// All packages return *errors.Error values carrying the phase, kind, and the
// field path that failed:
//
//	if errors.Is(err, tvmerrors.ErrInvalidDiscriminator) {
//	    // not a TokenTransfer
//	}
//
// Contract exit codes surface as *errors.ContractError with the message
// from the contract's error table.
package tvmcells
