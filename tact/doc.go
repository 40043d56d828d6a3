// Package tact holds the pieces shared by the generated contract bindings:
// the untagged system records, text comments, op code checks, exit code
// tables, and the send and get-method helpers that sit on top of a
// tvmcells.Provider.
//
// Each record R comes with five functions that the contract packages follow
// as well:
//
//	StoreR(R) func(*cell.Builder) error
//	LoadR(*cell.Slice) (R, error)
//	StoreTupleR(R) ([]tuple.Item, error)
//	LoadTupleR(*tuple.Reader) (R, error)
//	DictValueR() dict.ValueCodec[R]
//
// The store function returns a composer so records nest inline through
// cell.Builder.Store. The tuple pair is a separate encoding used only for
// get-method arguments and results; it follows the same field order.
package tact
