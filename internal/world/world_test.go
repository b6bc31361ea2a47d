package world

import "testing"

func TestNewWorldStacksChunks(t *testing.T) {
	w := New(4)
	chunks := w.Chunks()
	if len(chunks) != 4 {
		t.Fatalf("len(Chunks) = %d, want 4", len(chunks))
	}

	for i, c := range chunks {
		if c.Index != i {
			t.Errorf("chunk %d has Index %d", i, c.Index)
		}
		origin := c.Origin()
		if origin.X() != 0 || origin.Z() != 0 {
			t.Errorf("chunk %d origin = %v, want X=0 Z=0", i, origin)
		}
		if want := float32(i * ChunkSize); origin.Y() != want {
			t.Errorf("chunk %d origin Y = %v, want %v", i, origin.Y(), want)
		}
	}
}

func TestNewWorldMaterialBands(t *testing.T) {
	w := New(4)
	chunks := w.Chunks()

	wants := []BlockType{BlockTypeStone, BlockTypeDirt, BlockTypeDirt, BlockTypeGrass}
	for i, c := range chunks {
		if c.Kind != wants[i] {
			t.Errorf("chunk %d kind = %v, want %v", i, c.Kind, wants[i])
		}
	}
}

func TestWorldSolidCount(t *testing.T) {
	w := New(4)

	// Each hollow 16-shell holds 16^3 - 14^3 blocks.
	if got, want := w.SolidCount(), 4*1352; got != want {
		t.Errorf("SolidCount = %d, want %d", got, want)
	}
}

func TestNewWorldClampsCount(t *testing.T) {
	w := New(0)
	if got := len(w.Chunks()); got != 1 {
		t.Errorf("New(0) produced %d chunks, want 1", got)
	}
}

func TestChunkBoundsWrapBlockVolume(t *testing.T) {
	c := NewChunk(1, BlockTypeStone)
	min, max := c.Bounds()

	// Block centers sit on integer coordinates, so the box extends half
	// a block beyond the outermost centers.
	if min.X() != -0.5 || min.Z() != -0.5 {
		t.Errorf("min = %v, want X=Z=-0.5", min)
	}
	if min.Y() != 15.5 {
		t.Errorf("min Y = %v, want 15.5", min.Y())
	}
	if max.X() != 15.5 || max.Z() != 15.5 {
		t.Errorf("max = %v, want X=Z=15.5", max)
	}
	if max.Y() != 31.5 {
		t.Errorf("max Y = %v, want 31.5", max.Y())
	}
}
