package meshing

import (
	"math/bits"

	"chunkview/internal/world"
)

// FaceMask is a bitset over world.BlockFace: bit f is set when face f of a
// block borders air and should be drawn.
type FaceMask uint8

// Has reports whether face f is set in the mask.
func (m FaceMask) Has(f world.BlockFace) bool {
	return m&(1<<uint(f)) != 0
}

// Count returns the number of faces set in the mask.
func (m FaceMask) Count() int {
	return bits.OnesCount8(uint8(m))
}

// BlockFaces pairs a block position (chunk-local coordinates) with the mask
// of its visible faces. Blocks with an empty mask are never emitted.
type BlockFaces struct {
	X, Y, Z int
	Faces   FaceMask
}

// VisibleFaces computes the visible-face mask for the block at (x,y,z) in c.
// A face is visible when the neighboring cell along its normal is air.
// GetBlock treats out-of-bounds cells as air, so blocks on the chunk boundary
// expose their outward faces. Air cells have no faces.
func VisibleFaces(c *world.Chunk, x, y, z int) FaceMask {
	if c.IsAir(x, y, z) {
		return 0
	}
	var mask FaceMask
	for f := world.FaceNegX; f < world.FaceCount; f++ {
		off := world.FaceOffsets[f]
		if c.IsAir(x+off[0], y+off[1], z+off[2]) {
			mask |= 1 << uint(f)
		}
	}
	return mask
}

// ChunkFaces scans every cell of c in x, then y, then z order and returns the
// visible-face set of each block that exposes at least one face. Fully
// enclosed blocks and air cells contribute nothing, so the result is exactly
// the draw list for the chunk.
func ChunkFaces(c *world.Chunk) []BlockFaces {
	out := make([]BlockFaces, 0, 1024)
	for x := 0; x < world.ChunkSize; x++ {
		for y := 0; y < world.ChunkSize; y++ {
			for z := 0; z < world.ChunkSize; z++ {
				mask := VisibleFaces(c, x, y, z)
				if mask == 0 {
					continue
				}
				out = append(out, BlockFaces{X: x, Y: y, Z: z, Faces: mask})
			}
		}
	}
	return out
}
