package game

import (
	"fmt"
	"time"

	"chunkview/internal/config"
)

// statsWindow is how often the FPS value is recomputed.
const statsWindow = 100 * time.Millisecond

// FrameStats tracks the frame rate over a short rolling window plus the
// block count of the most recent frame. The FPS value holds steady
// between window rolls so the overlay does not flicker.
type FrameStats struct {
	windowStart time.Time
	frames      int

	fps    float64
	blocks int
}

// NewFrameStats creates an empty stats tracker.
func NewFrameStats() *FrameStats {
	return &FrameStats{}
}

// Frame records a completed frame and reports whether the stats window
// rolled over, meaning FPS was recomputed this call.
func (s *FrameStats) Frame(now time.Time, blocksDrawn int) bool {
	if s.windowStart.IsZero() {
		s.windowStart = now
	}
	s.frames++
	s.blocks = blocksDrawn

	elapsed := now.Sub(s.windowStart)
	if elapsed < statsWindow {
		return false
	}

	s.fps = float64(s.frames) / elapsed.Seconds()
	s.frames = 0
	s.windowStart = now
	return true
}

// FPS returns the frame rate measured over the last completed window.
func (s *FrameStats) FPS() float64 {
	return s.fps
}

// Blocks returns the block count of the most recent frame.
func (s *FrameStats) Blocks() int {
	return s.blocks
}

// Title formats the window title line shown on each stats roll.
func (s *FrameStats) Title() string {
	return fmt.Sprintf("%s (%.1f FPS) - Blocks: %d", config.GetWindowTitle(), s.fps, s.blocks)
}
