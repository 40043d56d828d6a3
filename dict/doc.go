// Package dict implements the dictionary codec: mappings from fixed-width
// keys to values, stored in cells as a binary Patricia trie (HashmapE).
//
// A Dictionary is parameterized by a KeyCodec, which fixes the key width and
// maps keys to bits, and a ValueCodec, which writes and reads a value in the
// leaf cell:
//
//	members := dict.New(dict.KeyAddress(), dict.ValueBigInt(257))
//	_ = members.Set(addr, big.NewInt(10))
//
//	b := cell.BeginCell()
//	_ = members.Store(b) // 0 bit when empty, else 1 bit + ^root
//
// Decoding materializes the whole mapping:
//
//	members, err := dict.LoadDirect(dict.KeyAddress(), dict.ValueBigInt(257), root)
//
// Each edge label uses the shortest of the three label forms, so equal
// mappings always serialize to the same cells.
package dict
