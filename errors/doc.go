// Package errors provides structured error types for the tvm-cells library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, record type name, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseLoad, errors.KindInvalidData).
//		Path("TokenTransfer", "destination").
//		Type("Address").
//		Detail("addr_none where an address is required").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.CellUnderflow(64, 12)
//	err := errors.InvalidDiscriminator("TokenBurn", 0x595f07bc, 0)
//
// The Err* sentinels match on Kind regardless of Phase:
//
//	if errors.Is(err, tvmerrors.ErrCellUnderflow) { ... }
package errors
