package main

import (
	"runtime"

	"chunkview/internal/config"
	"chunkview/internal/graphics/renderables/blocks"
	"chunkview/internal/graphics/renderables/hud"
	"chunkview/internal/graphics/renderables/wireframe"
	"chunkview/internal/graphics/renderer"
	"chunkview/internal/input"
	"chunkview/internal/player"
	"chunkview/internal/world"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	closer.Init(closer.Config{ExitCodeErr: -1})
	defer closer.Close()

	if err := config.Load("config.yaml"); err != nil {
		closer.Fatalln("config:", err)
	}

	if err := glfw.Init(); err != nil {
		closer.Fatalln("glfw init:", err)
	}
	closer.Bind(glfw.Terminate)

	window, err := setupWindow()
	if err != nil {
		closer.Fatalln("window setup:", err)
	}

	// Scene: a vertical column of hollow chunks and a camera framing it.
	gameWorld := world.New(config.GetChunkCount())
	camera := player.NewCamera(mgl32.Vec3{7.5, 20, 44})
	im := input.NewInputManager()

	// Renderable features
	blocksRenderer := blocks.NewBlocks(gameWorld)
	boundsRenderer := wireframe.NewWireframe(gameWorld)
	hudRenderer := hud.NewHUD()

	r, err := renderer.NewRenderer(
		blocksRenderer,
		boundsRenderer,
		hudRenderer,
	)
	if err != nil {
		closer.Fatalln("renderer init:", err)
	}
	closer.Bind(r.Dispose)

	gameLoop := NewGameLoop(window, r, blocksRenderer, boundsRenderer, hudRenderer, camera, gameWorld, im)

	setupInputHandlers(window, gameLoop, r, camera, im)

	gameLoop.Run()
}
