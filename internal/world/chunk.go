package world

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// ChunkSize is the edge length of a chunk in blocks
	ChunkSize = 16

	// ChunkVolume is the number of cells in a chunk
	ChunkVolume = ChunkSize * ChunkSize * ChunkSize
)

// Chunk is a fixed-size occupancy grid of blocks. Chunks are stacked
// vertically: Index selects the chunk's height slot and Kind the
// material every solid cell is stamped with.
type Chunk struct {
	Index  int
	Kind   BlockType
	blocks []BlockType
}

// NewChunk creates an empty (all air) chunk for the given height index
func NewChunk(index int, kind BlockType) *Chunk {
	return &Chunk{
		Index:  index,
		Kind:   kind,
		blocks: make([]BlockType, ChunkVolume),
	}
}

// blockIndex converts local coordinates (x, y, z) → flat index
func blockIndex(x, y, z int) int {
	return x*ChunkSize*ChunkSize + y*ChunkSize + z
}

// GetBlock returns the block type at the specified local coordinates.
// Out-of-bounds coordinates are air: the chunk boundary acts as an
// implicit air neighbor, so the culler never looks across chunks.
func (c *Chunk) GetBlock(x, y, z int) BlockType {
	if x < 0 || x >= ChunkSize || y < 0 || y >= ChunkSize || z < 0 || z >= ChunkSize {
		return BlockTypeAir
	}
	return c.blocks[blockIndex(x, y, z)]
}

// SetBlock sets the block type at the specified local coordinates
func (c *Chunk) SetBlock(x, y, z int, t BlockType) {
	if x < 0 || x >= ChunkSize || y < 0 || y >= ChunkSize || z < 0 || z >= ChunkSize {
		return
	}
	c.blocks[blockIndex(x, y, z)] = t
}

// IsAir checks if the block at the specified local coordinates is air
func (c *Chunk) IsAir(x, y, z int) bool {
	return c.GetBlock(x, y, z) == BlockTypeAir
}

// SolidCount returns the number of non-air cells
func (c *Chunk) SolidCount() int {
	n := 0
	for _, b := range c.blocks {
		if b != BlockTypeAir {
			n++
		}
	}
	return n
}

// Origin returns the world-space center of the chunk's (0,0,0) block
func (c *Chunk) Origin() mgl32.Vec3 {
	return mgl32.Vec3{0, float32(c.Index * ChunkSize), 0}
}

// Bounds returns the world-space AABB enclosing every block cube of the
// chunk. Blocks are unit cubes centered on integer grid coordinates, so
// the box extends half a block past the outermost centers.
func (c *Chunk) Bounds() (mgl32.Vec3, mgl32.Vec3) {
	o := c.Origin()
	half := float32(BlockSize) / 2
	span := float32(ChunkSize-1) + half
	min := mgl32.Vec3{o.X() - half, o.Y() - half, o.Z() - half}
	max := mgl32.Vec3{o.X() + span, o.Y() + span, o.Z() + span}
	return min, max
}
