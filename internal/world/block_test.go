package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestFaceOffsetsAreUnitSteps(t *testing.T) {
	for f := FaceNegX; f < FaceCount; f++ {
		off := FaceOffsets[f]
		nonzero := 0
		for a := 0; a < 3; a++ {
			switch off[a] {
			case -1, 1:
				nonzero++
			case 0:
			default:
				t.Errorf("face %d offset component %d = %d", f, a, off[a])
			}
		}
		if nonzero != 1 {
			t.Errorf("face %d offset %v has %d nonzero components, want 1", f, off, nonzero)
		}
	}
}

// Each face's six indices must reference exactly the four cube corners
// lying on that face's plane.
func TestCubeIndicesFaceSubRanges(t *testing.T) {
	if len(CubeIndices) != 36 {
		t.Fatalf("len(CubeIndices) = %d, want 36", len(CubeIndices))
	}

	for f := FaceNegX; f < FaceCount; f++ {
		off := FaceOffsets[f]
		axis, sign := 0, 0
		for a := 0; a < 3; a++ {
			if off[a] != 0 {
				axis, sign = a, off[a]
			}
		}
		want := float32(sign) * 0.5

		corners := make(map[uint32]bool)
		for i := int(f) * 6; i < int(f)*6+6; i++ {
			vi := CubeIndices[i]
			if vi >= 8 {
				t.Fatalf("face %d index %d out of range", f, vi)
			}
			corners[vi] = true
			if got := CubeVertices[int(vi)*3+axis]; got != want {
				t.Errorf("face %d corner %d: axis %d = %v, want %v", f, vi, axis, got, want)
			}
		}
		if len(corners) != 4 {
			t.Errorf("face %d references %d distinct corners, want 4", f, len(corners))
		}
	}
}

func TestBlockColorTopFaceBrightest(t *testing.T) {
	for _, kind := range []BlockType{BlockTypeStone, BlockTypeDirt, BlockTypeGrass} {
		top := GetBlockColor(kind, FacePosY)
		for f := FaceNegX; f < FaceCount; f++ {
			c := GetBlockColor(kind, f)
			for i := 0; i < 3; i++ {
				if c[i] > top[i] {
					t.Errorf("kind %v face %d component %d = %v brighter than top %v", kind, f, i, c[i], top[i])
				}
			}
		}
	}
}

func TestBlockColorStoneShading(t *testing.T) {
	if got, want := GetBlockColor(BlockTypeStone, FacePosY), (mgl32.Vec3{0.5, 0.5, 0.5}); got != want {
		t.Errorf("stone top = %v, want %v", got, want)
	}
	if got, want := GetBlockColor(BlockTypeStone, FaceNegY), (mgl32.Vec3{0.25, 0.25, 0.25}); got != want {
		t.Errorf("stone bottom = %v, want %v", got, want)
	}
}

func TestBlockColorSideFacesMatch(t *testing.T) {
	for _, kind := range []BlockType{BlockTypeStone, BlockTypeDirt, BlockTypeGrass} {
		if a, b := GetBlockColor(kind, FaceNegX), GetBlockColor(kind, FacePosX); a != b {
			t.Errorf("kind %v: -X %v != +X %v", kind, a, b)
		}
	}
}

func TestBlockColorUnknownKind(t *testing.T) {
	got := GetBlockColor(BlockType(999), FacePosY)
	if got != (mgl32.Vec3{1, 0, 1}) {
		t.Errorf("unknown kind top color = %v, want magenta", got)
	}
}
