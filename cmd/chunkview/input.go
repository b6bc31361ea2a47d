package main

import (
	"chunkview/internal/graphics/renderer"
	"chunkview/internal/input"
	"chunkview/internal/player"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func setupInputHandlers(window *glfw.Window, gameLoop *GameLoop, r *renderer.Renderer, cam *player.Camera, im *input.InputManager) {
	// Mouse position callback; ignored while the cursor is released
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if w.GetInputMode(glfw.CursorMode) == glfw.CursorDisabled {
			cam.HandleMouseMovement(xpos, ypos)
		}
	})

	// Scroll wheel zooms by narrowing the field of view
	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		cam.HandleMouseScroll(yoff)
	})

	im.SetKeyCallback(window)

	// Framebuffer size callback. The GL viewport tracks the framebuffer
	// size, which differs from the window size on HiDPI displays;
	// projection and text layout work in window coordinates.
	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
		winW, winH := w.GetSize()
		r.UpdateViewport(winW, winH)
	})

	// Window size callback
	window.SetSizeCallback(func(w *glfw.Window, width, height int) {
		r.UpdateViewport(width, height)
	})

	// Refresh callback (called during window resize to prevent visual glitches)
	window.SetRefreshCallback(func(w *glfw.Window) {
		gameLoop.RefreshRender()
	})
}
