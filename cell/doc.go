// Package cell implements TVM cells and the bit-level Builder and Slice used
// to write and read them.
//
// A cell holds up to 1023 data bits and up to 4 references to other cells.
// Cells are immutable once built and are shared by pointer, so a tree of
// cells is really a DAG. Each cell carries its representation hash and depth,
// computed once at construction.
//
// Writing:
//
//	b := cell.BeginCell()
//	if err := b.StoreUint(0x0f8a7ea5, 32); err != nil { ... }
//	if err := b.StoreCoins(1_000_000_000); err != nil { ... }
//	c := b.EndCell()
//
// Reading mirrors writing:
//
//	s := c.BeginParse()
//	op, err := s.LoadUint(32)
//	amount, err := s.LoadCoins()
//
// Builder writes are atomic: a failing Store leaves the builder unchanged.
// Builder.Store groups several writes into one atomic step. Slice reads that
// fail never move the cursor.
//
// Bits are numbered MSB-first: bit 0 is the high bit of the first byte.
package cell
