package world

// ShellOccupancy returns a size×size×size occupancy grid (x·S²+y·S+z
// indexing) where a cell is solid iff at least one of its coordinates
// is 0 or size-1: the outer shell is solid, the interior hollow.
// Pure function of size; the solid count is always size³-(size-2)³.
func ShellOccupancy(size int) []bool {
	occ := make([]bool, size*size*size)
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			for z := 0; z < size; z++ {
				if x == 0 || x == size-1 || y == 0 || y == size-1 || z == 0 || z == size-1 {
					occ[x*size*size+y*size+z] = true
				}
			}
		}
	}
	return occ
}

// GenerateShell stamps the hollow-shell occupancy into a chunk using
// its material kind. Deterministic: regenerating a chunk always yields
// identical contents.
func GenerateShell(c *Chunk) {
	occ := ShellOccupancy(ChunkSize)
	for x := 0; x < ChunkSize; x++ {
		for y := 0; y < ChunkSize; y++ {
			for z := 0; z < ChunkSize; z++ {
				if occ[blockIndex(x, y, z)] {
					c.SetBlock(x, y, z, c.Kind)
				} else {
					c.SetBlock(x, y, z, BlockTypeAir)
				}
			}
		}
	}
}

// KindForIndex returns the material for a chunk by height slot: the top
// chunk is grass, the two below it dirt, everything deeper stone.
func KindForIndex(index, count int) BlockType {
	switch {
	case index >= count-1:
		return BlockTypeGrass
	case index >= count-3:
		return BlockTypeDirt
	default:
		return BlockTypeStone
	}
}
