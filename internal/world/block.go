package world

import (
	"github.com/go-gl/mathgl/mgl32"
)

type BlockType uint16

const (
	BlockTypeAir BlockType = iota
	BlockTypeStone
	BlockTypeDirt
	BlockTypeGrass
)

// Block data
const (
	BlockSize = 1.0
)

// BlockFace identifies a face of a block. The order is the neighbor
// evaluation order of the face culler: -X, +X, -Y, +Y, -Z, +Z.
type BlockFace int

const (
	FaceNegX BlockFace = iota
	FacePosX
	FaceNegY
	FacePosY
	FaceNegZ
	FacePosZ

	FaceCount = 6
)

// FaceOffsets maps each face to its neighbor coordinate offset
var FaceOffsets = [FaceCount][3]int{
	{-1, 0, 0},
	{1, 0, 0},
	{0, -1, 0},
	{0, 1, 0},
	{0, 0, -1},
	{0, 0, 1},
}

var (
	// CubeVertices holds the 8 shared corner positions of a unit cube
	// centered on the origin.
	CubeVertices = []float32{
		-0.5, -0.5, -0.5, // 0
		0.5, -0.5, -0.5, // 1
		0.5, 0.5, -0.5, // 2
		-0.5, 0.5, -0.5, // 3
		-0.5, -0.5, 0.5, // 4
		0.5, -0.5, 0.5, // 5
		0.5, 0.5, 0.5, // 6
		-0.5, 0.5, 0.5, // 7
	}

	// CubeIndices is the per-face element buffer over CubeVertices:
	// 6 contiguous indices per face, grouped in BlockFace order, so
	// face f occupies indices [6f, 6f+6).
	CubeIndices = []uint32{
		0, 3, 7, 7, 4, 0, // -X
		1, 2, 6, 6, 5, 1, // +X
		0, 1, 5, 5, 4, 0, // -Y
		2, 3, 7, 7, 6, 2, // +Y
		0, 1, 2, 2, 3, 0, // -Z
		4, 5, 6, 6, 7, 4, // +Z
	}
)

// faceShade scales the base color by face direction: top brightest,
// bottom darkest.
var faceShade = [FaceCount]float32{0.8, 0.8, 0.5, 1.0, 0.6, 0.7}

func baseColor(t BlockType) mgl32.Vec3 {
	switch t {
	case BlockTypeStone:
		return mgl32.Vec3{0.5, 0.5, 0.5}
	case BlockTypeDirt:
		return mgl32.Vec3{0.6, 0.4, 0.25}
	case BlockTypeGrass:
		return mgl32.Vec3{0.3, 0.9, 0.3}
	default:
		return mgl32.Vec3{1.0, 0.0, 1.0} // Magenta (unknown)
	}
}

// GetBlockColor returns the draw color for one face of a block type
func GetBlockColor(t BlockType, face BlockFace) mgl32.Vec3 {
	c := baseColor(t)
	s := faceShade[face]
	return mgl32.Vec3{c.X() * s, c.Y() * s, c.Z() * s}
}
