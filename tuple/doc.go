// Package tuple implements the loosely-typed VM stack values exchanged with
// get-methods, and their cell encoding.
//
// Arguments are written with a Builder and results consumed with a Reader in
// the same order the contract declares them:
//
//	b := tuple.NewBuilder()
//	b.WriteAddress(owner)
//	args, err := b.Build()
//
//	r := tuple.NewReader(results)
//	supply, err := r.ReadBigNumber()
//	mintable, err := r.ReadBool()
//
// A nested record is carried as a Tuple item and read with ReadTuple. Cell,
// slice and builder items are interchangeable for ReadCell.
//
// Serialize and Parse convert a stack to and from the VmStack cell layout
// used by liteservers: a 24-bit depth followed by a chain of entries whose
// last element is the top of the stack.
package tuple
