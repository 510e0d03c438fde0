package chunk

import "voxelmesh/pkg/blockmodel"

// Chunk owns the block storage for one 32x32x32 cube of the world together
// with its derived visibility graph. The graph is recomputed on
// construction and on every SetBlock, so it is always consistent with the
// block contents. Construction runs on worker goroutines for freshly
// generated chunks, so the O(volume) derivation cost is acceptable here.
type Chunk struct {
	pos    Pos
	blocks *BlockStorage
	vis    VisibilityGraph
	reg    *blockmodel.Registry
}

// New creates a chunk from an initial block array of exactly SizeCubed
// cells (z-major, y-mid, x-minor order) and derives its visibility graph.
func New(pos Pos, blocks []blockmodel.BlockID, reg *blockmodel.Registry) *Chunk {
	storage := NewBlockStorage(blocks)
	return &Chunk{
		pos:    pos,
		blocks: storage,
		vis:    ComputeVisibility(storage.Blocks(), reg),
		reg:    reg,
	}
}

// Position returns the chunk's position in chunk-grid units.
func (c *Chunk) Position() Pos {
	return c.pos
}

// Block returns the block at the given local position.
// Panics if the position is out of bounds.
func (c *Chunk) Block(p LocalPos) blockmodel.BlockID {
	return c.blocks.Get(p)
}

// SetBlock mutates one block and re-derives the visibility graph. This is
// the only mutation entry point, which keeps the graph from going stale.
func (c *Chunk) SetBlock(p LocalPos, id blockmodel.BlockID) {
	c.blocks.Set(p, id)
	c.vis = ComputeVisibility(c.blocks.Blocks(), c.reg)
}

// Visibility returns the chunk's visibility graph.
func (c *Chunk) Visibility() VisibilityGraph {
	return c.vis
}

// Storage returns the chunk's block storage.
func (c *Chunk) Storage() *BlockStorage {
	return c.blocks
}

// Registry returns the block registry the chunk was built against.
func (c *Chunk) Registry() *blockmodel.Registry {
	return c.reg
}
