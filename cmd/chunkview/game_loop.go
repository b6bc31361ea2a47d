package main

import (
	"fmt"
	"time"

	"chunkview/internal/config"
	"chunkview/internal/game"
	"chunkview/internal/graphics/renderables/blocks"
	"chunkview/internal/graphics/renderables/hud"
	"chunkview/internal/graphics/renderables/wireframe"
	"chunkview/internal/graphics/renderer"
	"chunkview/internal/input"
	"chunkview/internal/player"
	"chunkview/internal/profiling"
	"chunkview/internal/world"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// GameLoop manages the main frame loop state
type GameLoop struct {
	window         *glfw.Window
	renderer       *renderer.Renderer
	blocksRenderer *blocks.Blocks
	boundsRenderer *wireframe.Wireframe
	hudRenderer    *hud.HUD
	camera         *player.Camera
	world          *world.World
	inputManager   *input.InputManager

	stats      *game.FrameStats
	fpsLimiter *game.FPSLimiter

	// Timing
	frames           int
	lastFPSCheckTime time.Time
	lastTime         time.Time
}

// NewGameLoop creates a new game loop with all components
func NewGameLoop(window *glfw.Window, r *renderer.Renderer, b *blocks.Blocks, wf *wireframe.Wireframe, h *hud.HUD, cam *player.Camera, w *world.World, im *input.InputManager) *GameLoop {
	return &GameLoop{
		window:         window,
		renderer:       r,
		blocksRenderer: b,
		boundsRenderer: wf,
		hudRenderer:    h,
		camera:         cam,
		world:          w,
		inputManager:   im,
		stats:          game.NewFrameStats(),
		fpsLimiter:     game.NewFPSLimiter(),

		lastFPSCheckTime: time.Now(),
		lastTime:         time.Now(),
	}
}

// Run drives the frame loop until the window is closed.
func (g *GameLoop) Run() {
	for !g.window.ShouldClose() {
		g.tick()
	}
}

func (g *GameLoop) tick() {
	// Timings shown by the debug overlay cover the frame that just ended.
	if g.hudRenderer.ShowDebug() {
		g.hudRenderer.SetDebug(g.blocksRenderer.FacesDrawn(), profiling.TopN(6))
	}

	profiling.ResetFrame()
	now := time.Now()
	dt := now.Sub(g.lastTime).Seconds()
	g.lastTime = now

	// Poll events at start
	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	g.handleInputActions()

	func() { defer profiling.Track("camera.Update")(); g.camera.Update(dt, g.inputManager) }()

	// Stats feed off the previous frame's draw counters so the overlay
	// text for this frame is already final when the HUD renders.
	if rolled := g.stats.Frame(now, g.blocksRenderer.BlocksDrawn()); rolled {
		g.window.SetTitle(g.stats.Title())
	}
	g.hudRenderer.SetStats(g.stats.FPS(), g.stats.Blocks())

	g.renderFrame(dt)

	// Present and pump events
	func() { defer profiling.Track("glfw.SwapBuffers")(); g.window.SwapBuffers() }()

	// Clear edge flags at end of frame
	g.inputManager.PostUpdate()

	g.fpsLimiter.Wait()
}

func (g *GameLoop) handleInputActions() {
	if g.inputManager.JustPressed(input.ActionToggleFullscreen) {
		g.toggleFullscreen()
	}

	if g.inputManager.JustPressed(input.ActionToggleCursor) {
		if g.window.GetInputMode(glfw.CursorMode) == glfw.CursorDisabled {
			g.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		} else {
			g.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
			g.camera.ResetMouse()
		}
	}

	if g.inputManager.JustPressed(input.ActionToggleBounds) {
		g.boundsRenderer.Toggle()
	}

	if g.inputManager.JustPressed(input.ActionToggleDebug) {
		g.hudRenderer.ToggleDebug()
	}

	if g.inputManager.JustPressed(input.ActionQuit) {
		g.window.SetShouldClose(true)
	}
}

func (g *GameLoop) toggleFullscreen() {
	if g.window.GetMonitor() == nil {
		monitor := glfw.GetPrimaryMonitor()
		mode := monitor.GetVideoMode()
		g.window.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
	} else {
		width, height := config.GetWindowSize()
		g.window.SetMonitor(nil, 100, 100, width, height, 0)
	}
}

func (g *GameLoop) renderFrame(dt float64) {
	g.renderer.Render(g.world, g.camera, dt)
	g.frames++

	if time.Since(g.lastFPSCheckTime) >= time.Second {
		fmt.Printf("FPS: %d | %s\n", g.frames, profiling.TopN(3))
		g.frames = 0
		g.lastFPSCheckTime = time.Now()
	}
}

// RefreshRender renders a frame without updating game state (used during window resize)
func (g *GameLoop) RefreshRender() {
	g.renderer.Render(g.world, g.camera, 0)
	g.window.SwapBuffers()
}
