package boc

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash/crc32"
	"strings"

	"go.uber.org/zap"

	bin "github.com/wippyai/tvm-cells/boc/internal/binary"
	"github.com/wippyai/tvm-cells/cell"
	"github.com/wippyai/tvm-cells/errors"
)

const (
	magicGeneric    = 0xb5ee9c72
	magicIndexed    = 0x68ff65f3
	magicIndexedCRC = 0xacc3a728

	flagIndex     = 0x80
	flagCRC32C    = 0x40
	flagCacheBits = 0x20
	sizeMask      = 0x07

	descExotic    = 0x08
	descHashes    = 0x10
	descLevelMask = 0xe0
	descRefsMask  = 0x07
)

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// Options controls the optional parts of the serialized form.
type Options struct {
	// CRC32C appends a CRC-32C checksum of everything before it.
	CRC32C bool
	// Index writes the per-cell offset table.
	Index bool
}

// Serialize encodes the DAG under root. Shared subtrees are written once.
func Serialize(root *cell.Cell, opts Options) ([]byte, error) {
	return SerializeAll([]*cell.Cell{root}, opts)
}

// SerializeAll encodes several roots into a single bag.
func SerializeAll(roots []*cell.Cell, opts Options) ([]byte, error) {
	if len(roots) == 0 {
		return nil, errors.InvalidData(errors.PhaseBOC, nil, "no root cells")
	}
	for _, r := range roots {
		if r == nil {
			return nil, errors.InvalidData(errors.PhaseBOC, nil, "nil root cell")
		}
	}

	order, index := topoSort(roots)

	sizeBytes := bin.BytesFor(uint64(len(order)))
	var total uint64
	offsets := make([]uint64, len(order))
	for i, c := range order {
		total += uint64(2 + (c.BitsSize()+7)/8 + uint(c.RefsNum()*sizeBytes))
		offsets[i] = total
	}
	offBytes := bin.BytesFor(total)

	flags := byte(sizeBytes)
	if opts.Index {
		flags |= flagIndex
	}
	if opts.CRC32C {
		flags |= flagCRC32C
	}

	w := bin.NewWriter()
	w.WriteUint(magicGeneric, 4)
	w.Byte(flags)
	w.Byte(byte(offBytes))
	w.WriteUint(uint64(len(order)), sizeBytes)
	w.WriteUint(uint64(len(roots)), sizeBytes)
	w.WriteUint(0, sizeBytes)
	w.WriteUint(total, offBytes)
	for _, r := range roots {
		w.WriteUint(uint64(index[keyOf(r)]), sizeBytes)
	}
	if opts.Index {
		for _, off := range offsets {
			w.WriteUint(off, offBytes)
		}
	}
	for _, c := range order {
		d1, d2 := c.Descriptors()
		w.Byte(d1)
		w.Byte(d2)
		w.WriteBytes(c.PaddedData())
		for _, r := range c.Refs() {
			w.WriteUint(uint64(index[keyOf(r)]), sizeBytes)
		}
	}
	if opts.CRC32C {
		w.WriteBytes(binary.LittleEndian.AppendUint32(nil, crc32.Checksum(w.Bytes(), castagnoli)))
	}

	Logger().Debug("serialized bag of cells",
		zap.Int("cells", len(order)),
		zap.Int("roots", len(roots)),
		zap.Int("bytes", w.Len()))
	return w.Bytes(), nil
}

type cellKey = [32]byte

func keyOf(c *cell.Cell) cellKey {
	return [32]byte(c.Hash())
}

// topoSort orders unique cells so that every parent precedes its children.
func topoSort(roots []*cell.Cell) ([]*cell.Cell, map[cellKey]int) {
	visited := make(map[cellKey]bool)
	var post []*cell.Cell

	var visit func(c *cell.Cell)
	visit = func(c *cell.Cell) {
		k := keyOf(c)
		if visited[k] {
			return
		}
		visited[k] = true
		for _, r := range c.Refs() {
			visit(r)
		}
		post = append(post, c)
	}
	for i := len(roots) - 1; i >= 0; i-- {
		visit(roots[i])
	}

	order := make([]*cell.Cell, len(post))
	index := make(map[cellKey]int, len(post))
	for i, c := range post {
		j := len(post) - 1 - i
		order[j] = c
		index[keyOf(c)] = j
	}
	return order, index
}

type rawCell struct {
	data []byte
	bits uint
	refs []int
}

// Parse decodes every root of a serialized bag.
func Parse(data []byte) ([]*cell.Cell, error) {
	r := bin.NewReader(data)
	magic, err := r.ReadUint(4)
	if err != nil {
		return nil, wrapIO(r, "magic", err)
	}

	var (
		hasIndex, hasCRC, hasCache bool
		sizeBytes                  int
	)
	switch magic {
	case magicGeneric:
		flags, err := r.ReadByte()
		if err != nil {
			return nil, wrapIO(r, "header", err)
		}
		hasIndex = flags&flagIndex != 0
		hasCRC = flags&flagCRC32C != 0
		hasCache = flags&flagCacheBits != 0
		sizeBytes = int(flags & sizeMask)
	case magicIndexed, magicIndexedCRC:
		b, err := r.ReadByte()
		if err != nil {
			return nil, wrapIO(r, "header", err)
		}
		hasIndex = true
		hasCRC = magic == magicIndexedCRC
		sizeBytes = int(b)
	default:
		return nil, errors.New(errors.PhaseBOC, errors.KindInvalidData).
			Value(magic).
			Detail("unknown magic 0x%08x", magic).
			Build()
	}
	if sizeBytes < 1 || sizeBytes > 4 {
		return nil, errors.InvalidData(errors.PhaseBOC, nil, fmt.Sprintf("reference size %d bytes", sizeBytes))
	}
	if hasCache && !hasIndex {
		return nil, errors.InvalidData(errors.PhaseBOC, nil, "cache bits without index")
	}

	if hasCRC {
		if len(data) < 4 {
			return nil, errors.InvalidData(errors.PhaseBOC, nil, "truncated checksum")
		}
		body, sum := data[:len(data)-4], binary.LittleEndian.Uint32(data[len(data)-4:])
		if got := crc32.Checksum(body, castagnoli); got != sum {
			return nil, errors.New(errors.PhaseBOC, errors.KindInvalidData).
				Detail("crc32c mismatch: stored %08x, computed %08x", sum, got).
				Build()
		}
	}

	ob, err := r.ReadByte()
	if err != nil {
		return nil, wrapIO(r, "header", err)
	}
	offBytes := int(ob)
	if offBytes < 1 || offBytes > 8 {
		return nil, errors.InvalidData(errors.PhaseBOC, nil, fmt.Sprintf("offset size %d bytes", offBytes))
	}

	cells, err := r.ReadUint(sizeBytes)
	if err != nil {
		return nil, wrapIO(r, "header", err)
	}
	roots, err := r.ReadUint(sizeBytes)
	if err != nil {
		return nil, wrapIO(r, "header", err)
	}
	absent, err := r.ReadUint(sizeBytes)
	if err != nil {
		return nil, wrapIO(r, "header", err)
	}
	total, err := r.ReadUint(offBytes)
	if err != nil {
		return nil, wrapIO(r, "header", err)
	}
	if absent != 0 {
		return nil, errors.Unsupported(errors.PhaseBOC, "absent cells")
	}
	if roots == 0 || roots > cells {
		return nil, errors.InvalidData(errors.PhaseBOC, nil, fmt.Sprintf("%d roots for %d cells", roots, cells))
	}
	// every cell takes at least two descriptor bytes
	if cells*2 > uint64(r.Remaining()) {
		return nil, errors.InvalidData(errors.PhaseBOC, nil, fmt.Sprintf("%d cells cannot fit %d bytes", cells, r.Remaining()))
	}

	rootIdx := make([]int, roots)
	if magic == magicGeneric {
		for i := range rootIdx {
			v, err := r.ReadUint(sizeBytes)
			if err != nil {
				return nil, wrapIO(r, "root list", err)
			}
			if v >= cells {
				return nil, errors.OutOfBounds(errors.PhaseBOC, []string{"roots"}, int(v), int(cells))
			}
			rootIdx[i] = int(v)
		}
	} else if roots != 1 {
		return nil, errors.Unsupported(errors.PhaseBOC, "multiple roots in legacy indexed format")
	}

	if hasIndex {
		if err := r.Skip(int(cells) * offBytes); err != nil {
			return nil, wrapIO(r, "index", err)
		}
	}

	start := r.Position()
	raws := make([]rawCell, cells)
	for i := range raws {
		rc, err := readCell(r, sizeBytes, i, int(cells))
		if err != nil {
			return nil, err
		}
		raws[i] = rc
	}
	if uint64(r.Position()-start) != total {
		return nil, errors.InvalidData(errors.PhaseBOC, nil,
			fmt.Sprintf("cell data is %d bytes, header says %d", r.Position()-start, total))
	}

	built := make([]*cell.Cell, cells)
	for i := len(raws) - 1; i >= 0; i-- {
		refs := make([]*cell.Cell, len(raws[i].refs))
		for j, ri := range raws[i].refs {
			refs[j] = built[ri]
		}
		c, err := cell.New(raws[i].data, raws[i].bits, refs...)
		if err != nil {
			return nil, errors.WithPath(err, fmt.Sprintf("cell[%d]", i))
		}
		if c.Depth() > cell.MaxDepth {
			return nil, errors.InvalidData(errors.PhaseBOC, nil, fmt.Sprintf("cell[%d] depth %d exceeds %d", i, c.Depth(), cell.MaxDepth))
		}
		built[i] = c
	}

	out := make([]*cell.Cell, roots)
	for i, ri := range rootIdx {
		out[i] = built[ri]
	}

	Logger().Debug("parsed bag of cells",
		zap.Uint64("cells", cells),
		zap.Uint64("roots", roots),
		zap.Bool("crc32c", hasCRC),
		zap.Int("bytes", len(data)))
	return out, nil
}

func readCell(r *bin.Reader, sizeBytes, i, cells int) (rawCell, error) {
	d1, err := r.ReadByte()
	if err != nil {
		return rawCell{}, wrapIO(r, "cell descriptor", err)
	}
	d2, err := r.ReadByte()
	if err != nil {
		return rawCell{}, wrapIO(r, "cell descriptor", err)
	}
	if d1&descExotic != 0 {
		return rawCell{}, errors.Unsupported(errors.PhaseBOC, fmt.Sprintf("exotic cell[%d]", i))
	}
	if d1&descLevelMask != 0 {
		return rawCell{}, errors.Unsupported(errors.PhaseBOC, fmt.Sprintf("cell[%d] with non-zero level", i))
	}
	nrefs := int(d1 & descRefsMask)
	if nrefs > cell.MaxRefs {
		return rawCell{}, errors.InvalidData(errors.PhaseBOC, nil, fmt.Sprintf("cell[%d] has %d refs", i, nrefs))
	}
	if d1&descHashes != 0 {
		if err := r.Skip(32 + 2); err != nil {
			return rawCell{}, wrapIO(r, "cell hashes", err)
		}
	}

	n := (int(d2) + 1) / 2
	data, err := r.ReadBytes(n)
	if err != nil {
		return rawCell{}, wrapIO(r, "cell data", err)
	}
	bits := uint(n) * 8
	if d2%2 == 1 {
		var ok bool
		bits, ok = unpad(data)
		if !ok {
			return rawCell{}, errors.InvalidData(errors.PhaseBOC, nil, fmt.Sprintf("cell[%d] missing completion tag", i))
		}
	}

	refs := make([]int, nrefs)
	for j := range refs {
		v, err := r.ReadUint(sizeBytes)
		if err != nil {
			return rawCell{}, wrapIO(r, "cell refs", err)
		}
		if int(v) <= i || int(v) >= cells {
			return rawCell{}, errors.New(errors.PhaseBOC, errors.KindInvalidData).
				Path(fmt.Sprintf("cell[%d]", i)).
				Value(v).
				Detail("reference %d is not a later cell", v).
				Build()
		}
		refs[j] = int(v)
	}
	return rawCell{data: data, bits: bits, refs: refs}, nil
}

// unpad strips the completion tag from the last byte.
func unpad(data []byte) (uint, bool) {
	if len(data) == 0 {
		return 0, false
	}
	last := data[len(data)-1]
	if last == 0 {
		return 0, false
	}
	n := uint(len(data)) * 8
	for last&1 == 0 {
		last >>= 1
		n--
	}
	return n - 1, true
}

func wrapIO(r *bin.Reader, section string, err error) error {
	return errors.Wrap(errors.PhaseBOC, errors.KindInvalidData, r.WrapError(section, err), "truncated input")
}

// ParseOne decodes a bag that must hold exactly one root.
func ParseOne(data []byte) (*cell.Cell, error) {
	roots, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if len(roots) != 1 {
		return nil, errors.InvalidData(errors.PhaseBOC, nil, fmt.Sprintf("expected one root, got %d", len(roots)))
	}
	return roots[0], nil
}

// FromBase64 decodes a single-root bag from standard or URL-safe base64.
func FromBase64(s string) (*cell.Cell, error) {
	s = strings.TrimSpace(s)
	enc := base64.StdEncoding
	if strings.ContainsAny(s, "-_") {
		enc = base64.URLEncoding
	}
	if !strings.HasSuffix(s, "=") && len(s)%4 != 0 {
		enc = enc.WithPadding(base64.NoPadding)
	}
	data, err := enc.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseBOC, errors.KindInvalidData, err, "base64")
	}
	return ParseOne(data)
}

// FromHex decodes a single-root bag from hex.
func FromHex(s string) (*cell.Cell, error) {
	data, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, errors.Wrap(errors.PhaseBOC, errors.KindInvalidData, err, "hex")
	}
	return ParseOne(data)
}

// ToBase64 serializes root and encodes it as standard base64.
func ToBase64(root *cell.Cell, opts Options) (string, error) {
	data, err := Serialize(root, opts)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// MustFromBase64 is FromBase64 that panics on error. Intended for embedded
// contract code.
func MustFromBase64(s string) *cell.Cell {
	c, err := FromBase64(s)
	if err != nil {
		panic(err)
	}
	return c
}
