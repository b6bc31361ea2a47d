package hud

import (
	"fmt"
	"os"

	"chunkview/internal/config"
	"chunkview/internal/graphics"
	"chunkview/internal/graphics/renderer"
	"chunkview/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font/gofont/goregular"
)

// HUD draws the frame statistics text overlay.
type HUD struct {
	fontRenderer *graphics.FontRenderer

	fps    float64
	blocks int

	showDebug    bool
	debugFaces   int
	debugTimings string
}

// NewHUD creates a new HUD renderable
func NewHUD() *HUD {
	return &HUD{}
}

// Init loads the overlay font and prepares the text renderer.
func (h *HUD) Init() error {
	ttf := goregular.TTF
	if path := config.GetFontPath(); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		ttf = data
	}

	atlas, err := graphics.BuildFontAtlas(ttf, config.GetFontPixels())
	if err != nil {
		return err
	}

	fontRenderer, err := graphics.NewFontRenderer(atlas)
	if err != nil {
		return err
	}
	h.fontRenderer = fontRenderer

	return nil
}

// SetStats updates the values shown by the overlay. The stats window
// rolls slower than the frame rate, so values hold between updates.
func (h *HUD) SetStats(fps float64, blocks int) {
	h.fps = fps
	h.blocks = blocks
}

// Render draws the FPS and block count lines at the top-left corner.
func (h *HUD) Render(ctx renderer.RenderContext) {
	defer profiling.Track("hud.Render")()

	lines := []string{
		fmt.Sprintf("FPS: %.1f", h.fps),
		fmt.Sprintf("Blocks: %d", h.blocks),
	}
	white := mgl32.Vec3{1.0, 1.0, 1.0}
	// The atlas is rasterized at twice the on-screen glyph size.
	h.fontRenderer.RenderLines(lines, 10, 30, 30, 0.5, white)

	if h.showDebug {
		h.renderDebug(ctx)
	}
}

// Dispose cleans up font resources.
func (h *HUD) Dispose() {
	if h.fontRenderer != nil {
		h.fontRenderer.Dispose()
		h.fontRenderer = nil
	}
}

// SetViewport rebuilds the text projection for a resized window.
func (h *HUD) SetViewport(width, height int) {
	if h.fontRenderer != nil {
		h.fontRenderer.SetViewport(width, height)
	}
}
