// Package boc reads and writes the bag-of-cells byte format, the standard
// way a cell DAG travels over the wire and is embedded as base64 text.
//
// Layout of the generic form:
//
//	magic      b5ee9c72
//	flags      has_idx:1 has_crc32c:1 has_cache_bits:1 flags:2 size:3
//	off_bytes  1 byte
//	cells, roots, absent   size bytes each
//	tot_cells_size         off_bytes
//	root_list  roots * size bytes
//	index      cells * off_bytes (when has_idx)
//	cell_data  d1 d2 data refs... per cell, parents before children
//	crc32c     4 bytes little-endian (when has_crc32c)
//
// Serialize writes each distinct cell once, keyed by its hash. Parse accepts
// the generic form and the two legacy indexed forms; exotic cells and absent
// cells are rejected.
package boc
