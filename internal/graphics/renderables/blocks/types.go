package blocks

import (
	"path/filepath"
)

const (
	ShadersDir = "assets/shaders/blocks"
)

var (
	MainVertShader = filepath.Join(ShadersDir, "main.vert")
	MainFragShader = filepath.Join(ShadersDir, "main.frag")
)
