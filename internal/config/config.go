package config

import "sync"

// DisplaySettings holds window and projection configuration
type DisplaySettings struct {
	mu           sync.RWMutex
	windowWidth  int
	windowHeight int
	windowTitle  string
	fov          float32
	nearPlane    float32
	farPlane     float32
	fpsLimit     int
}

var globalDisplaySettings = &DisplaySettings{
	windowWidth:  800,
	windowHeight: 600,
	windowTitle:  "chunkview",
	fov:          45.0,
	nearPlane:    0.1,
	farPlane:     500.0,
	fpsLimit:     0, // 0 = uncapped
}

// GetWindowSize returns the configured window dimensions
func GetWindowSize() (int, int) {
	globalDisplaySettings.mu.RLock()
	defer globalDisplaySettings.mu.RUnlock()
	return globalDisplaySettings.windowWidth, globalDisplaySettings.windowHeight
}

// SetWindowSize sets the window dimensions
func SetWindowSize(width, height int) {
	globalDisplaySettings.mu.Lock()
	defer globalDisplaySettings.mu.Unlock()

	if width < 320 {
		width = 320
	}
	if height < 240 {
		height = 240
	}

	globalDisplaySettings.windowWidth = width
	globalDisplaySettings.windowHeight = height
}

// GetWindowTitle returns the window title
func GetWindowTitle() string {
	globalDisplaySettings.mu.RLock()
	defer globalDisplaySettings.mu.RUnlock()
	return globalDisplaySettings.windowTitle
}

// SetWindowTitle sets the window title
func SetWindowTitle(title string) {
	globalDisplaySettings.mu.Lock()
	defer globalDisplaySettings.mu.Unlock()
	if title == "" {
		return
	}
	globalDisplaySettings.windowTitle = title
}

// GetFOV returns the default vertical field of view in degrees
func GetFOV() float32 {
	globalDisplaySettings.mu.RLock()
	defer globalDisplaySettings.mu.RUnlock()
	return globalDisplaySettings.fov
}

// SetFOV sets the default field of view, clamped to the zoom range
func SetFOV(fov float32) {
	globalDisplaySettings.mu.Lock()
	defer globalDisplaySettings.mu.Unlock()

	if fov < 1.0 {
		fov = 1.0
	}
	if fov > 90.0 {
		fov = 90.0
	}

	globalDisplaySettings.fov = fov
}

// GetNearPlane returns the near clip plane distance
func GetNearPlane() float32 {
	globalDisplaySettings.mu.RLock()
	defer globalDisplaySettings.mu.RUnlock()
	return globalDisplaySettings.nearPlane
}

// GetFarPlane returns the far clip plane distance
func GetFarPlane() float32 {
	globalDisplaySettings.mu.RLock()
	defer globalDisplaySettings.mu.RUnlock()
	return globalDisplaySettings.farPlane
}

// GetFPSLimit returns the frame rate cap (0 = uncapped)
func GetFPSLimit() int {
	globalDisplaySettings.mu.RLock()
	defer globalDisplaySettings.mu.RUnlock()
	return globalDisplaySettings.fpsLimit
}

// SetFPSLimit sets the frame rate cap
func SetFPSLimit(limit int) {
	globalDisplaySettings.mu.Lock()
	defer globalDisplaySettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}

	globalDisplaySettings.fpsLimit = limit
}
