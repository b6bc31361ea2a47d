package hud

import (
	"fmt"
	"strings"

	"chunkview/internal/graphics/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

// Debug overlay: camera pose, culling counters and per-section frame
// timings, drawn under the base stats block while enabled.

// SetDebug updates the values shown by the debug overlay. The timings
// string comes from the profiler and covers the previous frame.
func (h *HUD) SetDebug(faces int, timings string) {
	h.debugFaces = faces
	h.debugTimings = timings
}

// ToggleDebug toggles debug overlay visibility
func (h *HUD) ToggleDebug() {
	h.showDebug = !h.showDebug
}

// ShowDebug returns whether the debug overlay is enabled
func (h *HUD) ShowDebug() bool {
	return h.showDebug
}

func (h *HUD) renderDebug(ctx renderer.RenderContext) {
	cam := ctx.Camera
	lines := []string{
		fmt.Sprintf("Pos: %.1f, %.1f, %.1f", cam.Position.X(), cam.Position.Y(), cam.Position.Z()),
		fmt.Sprintf("Yaw: %.1f | Pitch: %.1f | FOV: %.0f", cam.Yaw, cam.Pitch, cam.FOV),
		fmt.Sprintf("Faces: %d", h.debugFaces),
	}
	for entry := range strings.SplitSeq(h.debugTimings, ", ") {
		if entry != "" {
			lines = append(lines, entry)
		}
	}

	textColor := mgl32.Vec3{1.0, 1.0, 1.0}
	h.fontRenderer.RenderLines(lines, 10, 96, 20, 0.35, textColor)
}
