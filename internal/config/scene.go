package config

import "sync"

// SceneSettings holds demo scene configuration
type SceneSettings struct {
	mu         sync.RWMutex
	chunkCount int
}

var globalSceneSettings = &SceneSettings{
	chunkCount: 4, // vertical column height in chunks
}

// GetChunkCount returns the number of stacked chunks in the scene
func GetChunkCount() int {
	globalSceneSettings.mu.RLock()
	defer globalSceneSettings.mu.RUnlock()
	return globalSceneSettings.chunkCount
}

// SetChunkCount sets the number of stacked chunks
func SetChunkCount(count int) {
	globalSceneSettings.mu.Lock()
	defer globalSceneSettings.mu.Unlock()

	if count < 1 {
		count = 1
	}
	if count > 32 {
		count = 32
	}

	globalSceneSettings.chunkCount = count
}

// HUDSettings holds text overlay configuration
type HUDSettings struct {
	mu         sync.RWMutex
	fontPath   string
	fontPixels float32
}

var globalHUDSettings = &HUDSettings{
	fontPath:   "", // empty = built-in typeface
	fontPixels: 48.0,
}

// GetFontPath returns the overlay font file path, empty for the built-in face
func GetFontPath() string {
	globalHUDSettings.mu.RLock()
	defer globalHUDSettings.mu.RUnlock()
	return globalHUDSettings.fontPath
}

// SetFontPath sets the overlay font file path
func SetFontPath(path string) {
	globalHUDSettings.mu.Lock()
	defer globalHUDSettings.mu.Unlock()
	globalHUDSettings.fontPath = path
}

// GetFontPixels returns the glyph rasterization size in pixels
func GetFontPixels() float32 {
	globalHUDSettings.mu.RLock()
	defer globalHUDSettings.mu.RUnlock()
	return globalHUDSettings.fontPixels
}

// SetFontPixels sets the glyph rasterization size
func SetFontPixels(px float32) {
	globalHUDSettings.mu.Lock()
	defer globalHUDSettings.mu.Unlock()

	if px < 8.0 {
		px = 8.0
	}
	if px > 128.0 {
		px = 128.0
	}

	globalHUDSettings.fontPixels = px
}
