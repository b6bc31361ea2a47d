package world

import (
	"crypto/sha256"
	"testing"
)

func TestShellOccupancySolidRule(t *testing.T) {
	for _, size := range []int{3, 4, 5, 16} {
		occ := ShellOccupancy(size)
		for x := 0; x < size; x++ {
			for y := 0; y < size; y++ {
				for z := 0; z < size; z++ {
					want := x == 0 || x == size-1 || y == 0 || y == size-1 || z == 0 || z == size-1
					got := occ[x*size*size+y*size+z]
					if got != want {
						t.Errorf("size %d: occupancy(%d,%d,%d) = %v, want %v", size, x, y, z, got, want)
					}
				}
			}
		}
	}
}

func TestShellOccupancyCount(t *testing.T) {
	for size := 3; size <= 16; size++ {
		occ := ShellOccupancy(size)
		solid := 0
		for _, s := range occ {
			if s {
				solid++
			}
		}
		inner := size - 2
		want := size*size*size - inner*inner*inner
		if solid != want {
			t.Errorf("size %d: %d solid cells, want %d", size, solid, want)
		}
	}
}

func TestGenerateShellBlockCount(t *testing.T) {
	c := NewChunk(0, BlockTypeStone)
	GenerateShell(c)

	if got, want := c.SolidCount(), 1352; got != want {
		t.Errorf("SolidCount = %d, want %d", got, want)
	}
}

func TestGenerateShellHollowInterior(t *testing.T) {
	c := NewChunk(0, BlockTypeStone)
	GenerateShell(c)

	if b := c.GetBlock(8, 8, 8); b != BlockTypeAir {
		t.Errorf("interior block (8,8,8) = %v, want air", b)
	}
	if b := c.GetBlock(0, 8, 8); b != BlockTypeStone {
		t.Errorf("boundary block (0,8,8) = %v, want stone", b)
	}
	if b := c.GetBlock(15, 15, 15); b != BlockTypeStone {
		t.Errorf("corner block (15,15,15) = %v, want stone", b)
	}
}

// hashChunkBlocks computes a SHA-256 hash of all blocks in a chunk
func hashChunkBlocks(c *Chunk) [32]byte {
	h := sha256.New()
	for y := 0; y < ChunkSize; y++ {
		for x := 0; x < ChunkSize; x++ {
			for z := 0; z < ChunkSize; z++ {
				b := c.GetBlock(x, y, z)
				h.Write([]byte{byte(b), byte(b >> 8)})
			}
		}
	}
	var result [32]byte
	copy(result[:], h.Sum(nil))
	return result
}

func TestGenerateShellDeterministic(t *testing.T) {
	c1 := NewChunk(2, BlockTypeDirt)
	GenerateShell(c1)
	c2 := NewChunk(2, BlockTypeDirt)
	GenerateShell(c2)

	if hashChunkBlocks(c1) != hashChunkBlocks(c2) {
		t.Error("regenerating the same chunk produced different contents")
	}
}

func TestKindForIndex(t *testing.T) {
	tests := []struct {
		index, count int
		want         BlockType
	}{
		{0, 4, BlockTypeStone},
		{1, 4, BlockTypeDirt},
		{2, 4, BlockTypeDirt},
		{3, 4, BlockTypeGrass},
		{0, 1, BlockTypeGrass},
		{0, 2, BlockTypeDirt},
		{1, 2, BlockTypeGrass},
		{5, 10, BlockTypeStone},
	}
	for _, tt := range tests {
		if got := KindForIndex(tt.index, tt.count); got != tt.want {
			t.Errorf("KindForIndex(%d, %d) = %v, want %v", tt.index, tt.count, got, tt.want)
		}
	}
}

func BenchmarkGenerateShell(b *testing.B) {
	c := NewChunk(0, BlockTypeStone)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GenerateShell(c)
	}
}
