package config

import "sync"

// ControlSettings holds camera input configuration
type ControlSettings struct {
	mu               sync.RWMutex
	mouseSensitivity float32
	moveSpeed        float32
	sprintMultiplier float32
}

var globalControlSettings = &ControlSettings{
	mouseSensitivity: 0.1,
	moveSpeed:        10.0,
	sprintMultiplier: 2.0,
}

// GetMouseSensitivity returns the mouse look sensitivity
func GetMouseSensitivity() float32 {
	globalControlSettings.mu.RLock()
	defer globalControlSettings.mu.RUnlock()
	return globalControlSettings.mouseSensitivity
}

// SetMouseSensitivity sets the mouse look sensitivity
func SetMouseSensitivity(sensitivity float32) {
	globalControlSettings.mu.Lock()
	defer globalControlSettings.mu.Unlock()

	if sensitivity < 0.01 {
		sensitivity = 0.01
	}
	if sensitivity > 2.0 {
		sensitivity = 2.0
	}

	globalControlSettings.mouseSensitivity = sensitivity
}

// GetMoveSpeed returns the camera translation speed in units per second
func GetMoveSpeed() float32 {
	globalControlSettings.mu.RLock()
	defer globalControlSettings.mu.RUnlock()
	return globalControlSettings.moveSpeed
}

// SetMoveSpeed sets the camera translation speed
func SetMoveSpeed(speed float32) {
	globalControlSettings.mu.Lock()
	defer globalControlSettings.mu.Unlock()

	if speed < 0.5 {
		speed = 0.5
	}
	if speed > 100.0 {
		speed = 100.0
	}

	globalControlSettings.moveSpeed = speed
}

// GetSprintMultiplier returns the speed multiplier applied while sprinting
func GetSprintMultiplier() float32 {
	globalControlSettings.mu.RLock()
	defer globalControlSettings.mu.RUnlock()
	return globalControlSettings.sprintMultiplier
}

// SetSprintMultiplier sets the sprint speed multiplier
func SetSprintMultiplier(mult float32) {
	globalControlSettings.mu.Lock()
	defer globalControlSettings.mu.Unlock()

	if mult < 1.0 {
		mult = 1.0
	}
	if mult > 10.0 {
		mult = 10.0
	}

	globalControlSettings.sprintMultiplier = mult
}
