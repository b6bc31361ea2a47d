package config

import (
	"os"
	"path/filepath"
	"testing"
)

func restoreDefaults() {
	SetWindowSize(800, 600)
	SetWindowTitle("chunkview")
	SetFOV(45)
	SetMouseSensitivity(0.1)
	SetMoveSpeed(10)
	SetSprintMultiplier(2)
	SetChunkCount(4)
	SetFontPath("")
	SetFontPixels(48)
	SetFPSLimit(0)
}

func TestSetFOVClamps(t *testing.T) {
	defer restoreDefaults()

	SetFOV(0.5)
	if got := GetFOV(); got != 1.0 {
		t.Errorf("FOV after SetFOV(0.5) = %v, want 1", got)
	}
	SetFOV(120)
	if got := GetFOV(); got != 90.0 {
		t.Errorf("FOV after SetFOV(120) = %v, want 90", got)
	}
	SetFOV(45)
	if got := GetFOV(); got != 45.0 {
		t.Errorf("FOV after SetFOV(45) = %v, want 45", got)
	}
}

func TestSetWindowSizeEnforcesMinimum(t *testing.T) {
	defer restoreDefaults()

	SetWindowSize(10, 10)
	w, h := GetWindowSize()
	if w != 320 || h != 240 {
		t.Errorf("window size = %dx%d, want 320x240", w, h)
	}
}

func TestSetWindowTitleIgnoresEmpty(t *testing.T) {
	defer restoreDefaults()

	SetWindowTitle("demo")
	SetWindowTitle("")
	if got := GetWindowTitle(); got != "demo" {
		t.Errorf("title = %q, want %q", got, "demo")
	}
}

func TestSetFPSLimitClamps(t *testing.T) {
	defer restoreDefaults()

	SetFPSLimit(-5)
	if got := GetFPSLimit(); got != 0 {
		t.Errorf("fps limit after SetFPSLimit(-5) = %d, want 0", got)
	}
	SetFPSLimit(2000)
	if got := GetFPSLimit(); got != 1000 {
		t.Errorf("fps limit after SetFPSLimit(2000) = %d, want 1000", got)
	}
}

func TestSetChunkCountClamps(t *testing.T) {
	defer restoreDefaults()

	SetChunkCount(0)
	if got := GetChunkCount(); got != 1 {
		t.Errorf("chunk count after SetChunkCount(0) = %d, want 1", got)
	}
	SetChunkCount(100)
	if got := GetChunkCount(); got != 32 {
		t.Errorf("chunk count after SetChunkCount(100) = %d, want 32", got)
	}
}

func TestControlClamps(t *testing.T) {
	defer restoreDefaults()

	SetMouseSensitivity(0)
	if got := GetMouseSensitivity(); got != 0.01 {
		t.Errorf("sensitivity = %v, want 0.01", got)
	}
	SetMoveSpeed(1000)
	if got := GetMoveSpeed(); got != 100.0 {
		t.Errorf("move speed = %v, want 100", got)
	}
	SetSprintMultiplier(0.1)
	if got := GetSprintMultiplier(); got != 1.0 {
		t.Errorf("sprint multiplier = %v, want 1", got)
	}
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	defer restoreDefaults()

	if err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
	w, h := GetWindowSize()
	if w != 800 || h != 600 {
		t.Errorf("window size = %dx%d after missing file, want 800x600", w, h)
	}
}

func TestLoadAppliesValues(t *testing.T) {
	defer restoreDefaults()

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
window:
  width: 1024
  height: 768
  title: another
camera:
  fov: 60
scene:
  chunk_count: 8
fps_limit: 144
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	w, h := GetWindowSize()
	if w != 1024 || h != 768 {
		t.Errorf("window size = %dx%d, want 1024x768", w, h)
	}
	if got := GetWindowTitle(); got != "another" {
		t.Errorf("title = %q, want %q", got, "another")
	}
	if got := GetFOV(); got != 60.0 {
		t.Errorf("fov = %v, want 60", got)
	}
	if got := GetChunkCount(); got != 8 {
		t.Errorf("chunk count = %d, want 8", got)
	}
	if got := GetFPSLimit(); got != 144 {
		t.Errorf("fps limit = %d, want 144", got)
	}

	// Keys absent from the file keep their current values.
	if got := GetMoveSpeed(); got != 10.0 {
		t.Errorf("move speed = %v, want 10", got)
	}
}

func TestLoadClampsFileValues(t *testing.T) {
	defer restoreDefaults()

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
camera:
  fov: 500
fps_limit: -3
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := GetFOV(); got != 90.0 {
		t.Errorf("fov = %v, want clamped to 90", got)
	}
	if got := GetFPSLimit(); got != 0 {
		t.Errorf("fps limit = %d, want clamped to 0", got)
	}
}

func TestLoadMalformedFileFails(t *testing.T) {
	defer restoreDefaults()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{nope: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Load(path); err == nil {
		t.Error("Load on malformed yaml returned nil error")
	}
}
