package graphics

import (
	"chunkview/internal/config"

	"github.com/go-gl/mathgl/mgl32"
)

// Projection holds the perspective projection parameters. The field of view
// is owned by the camera (scroll zoom) and passed in per frame.
type Projection struct {
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32
}

// NewProjection returns projection parameters for the given viewport size.
func NewProjection(width, height int) *Projection {
	return &Projection{
		AspectRatio: float32(width) / float32(height),
		NearPlane:   config.GetNearPlane(),
		FarPlane:    config.GetFarPlane(),
	}
}

// Matrix builds the perspective matrix for the given field of view in degrees.
func (p *Projection) Matrix(fovDegrees float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(fovDegrees), p.AspectRatio, p.NearPlane, p.FarPlane)
}

// SetViewport updates the aspect ratio after a resize.
func (p *Projection) SetViewport(width, height int) {
	if height <= 0 {
		return
	}
	p.AspectRatio = float32(width) / float32(height)
}
