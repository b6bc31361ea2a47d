package blocks

import (
	"github.com/go-gl/mathgl/mgl32"
)

// chunkInFrustum reports whether the axis-aligned box [min, max] may be
// visible under the combined projection*view matrix. It transforms the
// eight box corners to clip space and accepts the box as soon as one
// corner lands inside the clip volume (-w < x,y,z < w).
//
// This is a corner approximation, not an exact box/frustum
// intersection: a box whose corners all fall outside the clip volume is
// rejected even if its interior crosses the frustum. Chunk-sized boxes
// only hit that case when they enclose the camera or straddle an edge
// at very close range.
func chunkInFrustum(min, max mgl32.Vec3, clip mgl32.Mat4) bool {
	corners := [8]mgl32.Vec3{
		{min.X(), min.Y(), min.Z()},
		{max.X(), min.Y(), min.Z()},
		{min.X(), max.Y(), min.Z()},
		{max.X(), max.Y(), min.Z()},
		{min.X(), min.Y(), max.Z()},
		{max.X(), min.Y(), max.Z()},
		{min.X(), max.Y(), max.Z()},
		{max.X(), max.Y(), max.Z()},
	}
	for _, c := range corners {
		p := clip.Mul4x1(mgl32.Vec4{c.X(), c.Y(), c.Z(), 1})
		w := p.W()
		if p.X() > -w && p.X() < w &&
			p.Y() > -w && p.Y() < w &&
			p.Z() > -w && p.Z() < w {
			return true
		}
	}
	return false
}
