package renderer

import (
	"chunkview/internal/config"
	"chunkview/internal/graphics"
	"chunkview/internal/player"
	"chunkview/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	projection  *graphics.Projection
}

// NewRenderer creates a new renderer with the given renderables
func NewRenderer(rs ...Renderable) (*Renderer, error) {
	// Depth testing only. Face culling stays off: the shared-vertex cube
	// index buffer mixes winding between faces, so culling would drop half
	// of them.
	gl.Enable(gl.DEPTH_TEST)

	width, height := config.GetWindowSize()
	renderer := &Renderer{
		renderables: rs,
		projection:  graphics.NewProjection(width, height),
	}

	// Initialize all renderables
	for _, r := range rs {
		if err := r.Init(); err != nil {
			return nil, err
		}
	}

	return renderer, nil
}

// Render executes one frame across all renderables
func (r *Renderer) Render(w *world.World, cam *player.Camera, dt float64) {
	gl.ClearColor(0.2, 0.3, 0.3, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	view := cam.GetViewMatrix()
	projection := r.projection.Matrix(cam.FOV)

	ctx := RenderContext{
		World:  w,
		Camera: cam,
		DT:     dt,
		View:   view,
		Proj:   projection,
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// UpdateViewport updates the projection aspect ratio and fans the new size
// out to all renderables. The caller owns the gl.Viewport call since window
// and framebuffer sizes differ on high-DPI displays.
func (r *Renderer) UpdateViewport(width, height int) {
	r.projection.SetViewport(width, height)
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}
