package chunk

import (
	"fmt"

	"voxelmesh/pkg/blockmodel"
)

const (
	// Size is the edge length of a chunk in blocks.
	Size = 32
	// SizeSquared is the number of blocks in one chunk plane.
	SizeSquared = Size * Size
	// SizeCubed is the number of blocks in a chunk.
	SizeCubed = Size * Size * Size
)

// Pos is a chunk position in chunk-grid units.
type Pos struct {
	X, Y, Z int
}

// Sub returns the componentwise difference p - o.
func (p Pos) Sub(o Pos) [3]int {
	return [3]int{p.X - o.X, p.Y - o.Y, p.Z - o.Z}
}

// LocalPos is a block position local to one chunk, valid in [0, Size) per axis.
type LocalPos struct {
	X, Y, Z int
}

// InBounds reports whether every component lies in [0, Size).
func (p LocalPos) InBounds() bool {
	return p.X >= 0 && p.X < Size &&
		p.Y >= 0 && p.Y < Size &&
		p.Z >= 0 && p.Z < Size
}

// Index converts the position to its flat array index (x fastest-varying).
func (p LocalPos) Index() int {
	return p.X + Size*p.Y + SizeSquared*p.Z
}

// BlockStorage is the linearly indexed block array of one chunk, ordered by
// z, then y, then x.
type BlockStorage struct {
	blocks []blockmodel.BlockID
}

// NewBlockStorage wraps an initial block array. The storage takes ownership
// of the slice. A wrong-length array is a caller bug: silently accepting it
// would corrupt every index computation afterwards.
func NewBlockStorage(blocks []blockmodel.BlockID) *BlockStorage {
	if len(blocks) != SizeCubed {
		panic(fmt.Sprintf("chunk: block array has %d cells, want %d", len(blocks), SizeCubed))
	}
	return &BlockStorage{blocks: blocks}
}

// Get returns the block at the given local position.
// Panics if the position is out of bounds.
func (s *BlockStorage) Get(p LocalPos) blockmodel.BlockID {
	s.check(p)
	return s.blocks[p.Index()]
}

// Set stores the block at the given local position.
// Panics if the position is out of bounds.
func (s *BlockStorage) Set(p LocalPos, id blockmodel.BlockID) {
	s.check(p)
	s.blocks[p.Index()] = id
}

// Blocks returns the backing block array. Callers must treat it as
// read-only; mutation goes through Set so derived state stays consistent.
func (s *BlockStorage) Blocks() []blockmodel.BlockID {
	return s.blocks
}

// Snapshot returns a copy of the block array, suitable for handing to a
// mesh worker while the original remains mutable.
func (s *BlockStorage) Snapshot() []blockmodel.BlockID {
	out := make([]blockmodel.BlockID, SizeCubed)
	copy(out, s.blocks)
	return out
}

func (s *BlockStorage) check(p LocalPos) {
	if !p.InBounds() {
		panic(fmt.Sprintf("chunk: local position (%d,%d,%d) out of bounds", p.X, p.Y, p.Z))
	}
}
