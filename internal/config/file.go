package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileSettings mirrors the YAML layout of an on-disk config file.
// Fields are seeded with the current values before unmarshalling so
// omitted keys keep their defaults.
type fileSettings struct {
	Window struct {
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		Title  string `yaml:"title"`
	} `yaml:"window"`
	Camera struct {
		FOV         float32 `yaml:"fov"`
		Sensitivity float32 `yaml:"sensitivity"`
		MoveSpeed   float32 `yaml:"move_speed"`
		SprintMult  float32 `yaml:"sprint_multiplier"`
	} `yaml:"camera"`
	Scene struct {
		ChunkCount int `yaml:"chunk_count"`
	} `yaml:"scene"`
	HUD struct {
		FontPath   string  `yaml:"font_path"`
		FontPixels float32 `yaml:"font_pixels"`
	} `yaml:"hud"`
	FPSLimit int `yaml:"fps_limit"`
}

func currentFileSettings() fileSettings {
	var fs fileSettings
	fs.Window.Width, fs.Window.Height = GetWindowSize()
	fs.Window.Title = GetWindowTitle()
	fs.Camera.FOV = GetFOV()
	fs.Camera.Sensitivity = GetMouseSensitivity()
	fs.Camera.MoveSpeed = GetMoveSpeed()
	fs.Camera.SprintMult = GetSprintMultiplier()
	fs.Scene.ChunkCount = GetChunkCount()
	fs.HUD.FontPath = GetFontPath()
	fs.HUD.FontPixels = GetFontPixels()
	fs.FPSLimit = GetFPSLimit()
	return fs
}

// Load applies settings from a YAML file. A missing file leaves the
// defaults untouched; a malformed file is an error. All values pass
// through the clamped setters.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	fs := currentFileSettings()
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}

	SetWindowSize(fs.Window.Width, fs.Window.Height)
	SetWindowTitle(fs.Window.Title)
	SetFOV(fs.Camera.FOV)
	SetMouseSensitivity(fs.Camera.Sensitivity)
	SetMoveSpeed(fs.Camera.MoveSpeed)
	SetSprintMultiplier(fs.Camera.SprintMult)
	SetChunkCount(fs.Scene.ChunkCount)
	SetFontPath(fs.HUD.FontPath)
	SetFontPixels(fs.HUD.FontPixels)
	SetFPSLimit(fs.FPSLimit)

	return nil
}
