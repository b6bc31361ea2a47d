package wireframe

import (
	"path/filepath"

	"chunkview/internal/graphics"
	"chunkview/internal/graphics/renderer"
	"chunkview/internal/profiling"
	"chunkview/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	ShadersDir = "assets/shaders/wireframe"
)

var (
	WireframeVertShader = filepath.Join(ShadersDir, "wireframe.vert")
	WireframeFragShader = filepath.Join(ShadersDir, "wireframe.frag")
)

// Wireframe outlines the bounding box of every chunk. The boxes are the
// same ones the frustum test culls against. Hidden until toggled.
type Wireframe struct {
	world  *world.World
	shader *graphics.Shader
	vao    uint32
	vbo    uint32

	enabled bool
}

// NewWireframe creates a new chunk bounds renderable
func NewWireframe(w *world.World) *Wireframe {
	return &Wireframe{world: w}
}

// Init initializes the wireframe rendering system
func (w *Wireframe) Init() error {
	var err error
	w.shader, err = graphics.NewShader(WireframeVertShader, WireframeFragShader)
	if err != nil {
		return err
	}

	w.setupWireframeVAO()

	return nil
}

// Toggle flips outline visibility.
func (w *Wireframe) Toggle() {
	w.enabled = !w.enabled
}

// Render draws one box outline per chunk.
func (w *Wireframe) Render(ctx renderer.RenderContext) {
	if !w.enabled {
		return
	}
	defer profiling.Track("wireframe.Render")()

	w.shader.Use()
	w.shader.SetMatrix4("view", &ctx.View[0])
	w.shader.SetMatrix4("projection", &ctx.Proj[0])
	w.shader.SetVector3("color", 1.0, 0.85, 0.2)

	gl.BindVertexArray(w.vao)
	gl.LineWidth(1.0)

	for _, c := range w.world.Chunks() {
		min, max := c.Bounds()
		center := min.Add(max).Mul(0.5)
		size := max.Sub(min)
		model := mgl32.Translate3D(center.X(), center.Y(), center.Z()).
			Mul4(mgl32.Scale3D(size.X(), size.Y(), size.Z()))
		w.shader.SetMatrix4("model", &model[0])
		gl.DrawArrays(gl.LINES, 0, 24)
	}
}

// Dispose cleans up OpenGL resources
func (w *Wireframe) Dispose() {
	if w.vao != 0 {
		gl.DeleteVertexArrays(1, &w.vao)
	}
	if w.vbo != 0 {
		gl.DeleteBuffers(1, &w.vbo)
	}
	if w.shader != nil {
		w.shader.Delete()
	}
}

// SetViewport is a no-op; the outlines share the scene projection.
func (w *Wireframe) SetViewport(width, height int) {}

func (w *Wireframe) setupWireframeVAO() {
	gl.GenVertexArrays(1, &w.vao)
	gl.BindVertexArray(w.vao)

	gl.GenBuffers(1, &w.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, w.vbo)

	// 12 edges of a unit cube as line segments
	vertices := []float32{
		// Front face
		-0.5, -0.5, 0.5, 0.5, -0.5, 0.5,
		0.5, -0.5, 0.5, 0.5, 0.5, 0.5,
		0.5, 0.5, 0.5, -0.5, 0.5, 0.5,
		-0.5, 0.5, 0.5, -0.5, -0.5, 0.5,

		// Back face
		-0.5, -0.5, -0.5, 0.5, -0.5, -0.5,
		0.5, -0.5, -0.5, 0.5, 0.5, -0.5,
		0.5, 0.5, -0.5, -0.5, 0.5, -0.5,
		-0.5, 0.5, -0.5, -0.5, -0.5, -0.5,

		// Connecting edges
		-0.5, -0.5, 0.5, -0.5, -0.5, -0.5,
		0.5, -0.5, 0.5, 0.5, -0.5, -0.5,
		0.5, 0.5, 0.5, 0.5, 0.5, -0.5,
		-0.5, 0.5, 0.5, -0.5, 0.5, -0.5,
	}

	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
}
