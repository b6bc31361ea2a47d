package blocks

import (
	"chunkview/internal/graphics"
	"chunkview/internal/graphics/renderer"
	"chunkview/internal/meshing"
	"chunkview/internal/profiling"
	"chunkview/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Blocks implements block rendering feature
type Blocks struct {
	world      *world.World
	mainShader *graphics.Shader

	vao uint32
	vbo uint32
	ebo uint32

	// Exposed-face lists per chunk, parallel to world.Chunks(). The
	// scene never changes after startup, so these are computed once.
	chunkFaces [][]meshing.BlockFaces

	blocksDrawn int
	facesDrawn  int
}

// NewBlocks creates a new blocks renderable for the given world.
func NewBlocks(w *world.World) *Blocks {
	return &Blocks{world: w}
}

// Init compiles the blocks shader, uploads the shared cube geometry and
// precomputes the exposed faces of every chunk.
func (b *Blocks) Init() error {
	var err error
	b.mainShader, err = graphics.NewShader(MainVertShader, MainFragShader)
	if err != nil {
		return err
	}

	// One VAO shared by every block draw: 8 corner positions plus the
	// per-face index buffer. Each face is a 6-index sub-range, so a
	// single face draws as an offset into the same EBO.
	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(world.CubeVertices)*4, gl.Ptr(world.CubeVertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &b.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(world.CubeIndices)*4, gl.Ptr(world.CubeIndices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))

	gl.BindVertexArray(0)

	chunks := b.world.Chunks()
	b.chunkFaces = make([][]meshing.BlockFaces, len(chunks))
	for i, c := range chunks {
		b.chunkFaces[i] = meshing.ChunkFaces(c)
	}

	return nil
}

// Render draws every visible chunk of the column.
func (b *Blocks) Render(ctx renderer.RenderContext) {
	defer profiling.Track("blocks.Render")()
	b.renderBlocksInternal(ctx)
}

func (b *Blocks) renderBlocksInternal(ctx renderer.RenderContext) {
	b.blocksDrawn = 0
	b.facesDrawn = 0

	b.mainShader.Use()
	b.mainShader.SetMatrix4("view", &ctx.View[0])
	b.mainShader.SetMatrix4("projection", &ctx.Proj[0])

	gl.BindVertexArray(b.vao)

	clip := ctx.Proj.Mul4(ctx.View)

	for i, c := range b.world.Chunks() {
		min, max := c.Bounds()
		if !chunkInFrustum(min, max, clip) {
			continue
		}

		origin := c.Origin()
		color := [world.FaceCount]mgl32.Vec3{}
		for f := world.FaceNegX; f < world.FaceCount; f++ {
			color[f] = world.GetBlockColor(c.Kind, f)
		}

		for _, bf := range b.chunkFaces[i] {
			model := mgl32.Translate3D(
				origin.X()+float32(bf.X),
				origin.Y()+float32(bf.Y),
				origin.Z()+float32(bf.Z),
			)
			b.mainShader.SetMatrix4("model", &model[0])

			for f := world.FaceNegX; f < world.FaceCount; f++ {
				if !bf.Faces.Has(f) {
					continue
				}
				b.mainShader.SetVector3("color", color[f].X(), color[f].Y(), color[f].Z())
				gl.DrawElements(gl.TRIANGLES, 6, gl.UNSIGNED_INT, gl.PtrOffset(int(f)*6*4))
				b.facesDrawn++
			}
			b.blocksDrawn++
		}
	}

	gl.BindVertexArray(0)
}

// BlocksDrawn returns how many blocks submitted at least one face last frame.
func (b *Blocks) BlocksDrawn() int {
	return b.blocksDrawn
}

// FacesDrawn returns how many faces were drawn last frame.
func (b *Blocks) FacesDrawn() int {
	return b.facesDrawn
}

// Dispose cleans up OpenGL resources
func (b *Blocks) Dispose() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
	if b.ebo != 0 {
		gl.DeleteBuffers(1, &b.ebo)
		b.ebo = 0
	}
	if b.mainShader != nil {
		b.mainShader.Delete()
		b.mainShader = nil
	}
}

// SetViewport is a no-op: block rendering reads the viewport only
// through the projection matrix handed in per frame.
func (b *Blocks) SetViewport(width, height int) {}
