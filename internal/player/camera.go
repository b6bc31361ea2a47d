package player

import (
	"math"

	"chunkview/internal/config"
	"chunkview/internal/input"

	"github.com/go-gl/mathgl/mgl32"
)

// worldUp is the fixed up axis; vertical movement and the view matrix use it.
var worldUp = mgl32.Vec3{0, 1, 0}

// Camera is a free-fly camera. Mouse movement steers yaw and pitch, the
// scroll wheel zooms by narrowing the field of view, and movement keys
// translate the position along the look direction. There is no collision.
type Camera struct {
	Position mgl32.Vec3

	Yaw   float64 // degrees; -90 looks toward -Z
	Pitch float64 // degrees; kept within +/-89 to avoid gimbal flip
	FOV   float32 // degrees; scroll zoom clamps to [1, 90]

	LastMouseX float64
	LastMouseY float64
	FirstMouse bool
}

// NewCamera returns a free-fly camera at position looking toward -Z.
func NewCamera(position mgl32.Vec3) *Camera {
	return &Camera{
		Position:   position,
		Yaw:        -90.0,
		Pitch:      0.0,
		FOV:        config.GetFOV(),
		FirstMouse: true,
	}
}

// HandleMouseMovement steers yaw and pitch from an absolute cursor sample.
// The first sample only seeds the last position, so capturing the cursor
// never produces a jump.
func (c *Camera) HandleMouseMovement(xpos, ypos float64) {
	if c.FirstMouse {
		c.LastMouseX = xpos
		c.LastMouseY = ypos
		c.FirstMouse = false
		return
	}

	xoffset := xpos - c.LastMouseX
	yoffset := c.LastMouseY - ypos // screen Y grows downward
	c.LastMouseX = xpos
	c.LastMouseY = ypos

	sensitivity := float64(config.GetMouseSensitivity())
	c.Yaw += xoffset * sensitivity
	c.Pitch += yoffset * sensitivity

	// Constrain pitch
	if c.Pitch > 89.0 {
		c.Pitch = 89.0
	}
	if c.Pitch < -89.0 {
		c.Pitch = -89.0
	}
}

// HandleMouseScroll zooms by narrowing the field of view.
func (c *Camera) HandleMouseScroll(yoffset float64) {
	c.FOV -= float32(yoffset)
	if c.FOV < 1.0 {
		c.FOV = 1.0
	}
	if c.FOV > 90.0 {
		c.FOV = 90.0
	}
}

// ResetMouse discards the last cursor sample so the next one seeds again.
// Call after re-capturing the cursor.
func (c *Camera) ResetMouse() {
	c.FirstMouse = true
}

// Front returns the unit look direction derived from yaw and pitch.
func (c *Camera) Front() mgl32.Vec3 {
	y := mgl32.DegToRad(float32(c.Yaw))
	pt := mgl32.DegToRad(float32(c.Pitch))
	fx := float32(math.Cos(float64(y)) * math.Cos(float64(pt)))
	fy := float32(math.Sin(float64(pt)))
	fz := float32(math.Sin(float64(y)) * math.Cos(float64(pt)))
	return mgl32.Vec3{fx, fy, fz}.Normalize()
}

// Right returns the unit strafe axis.
func (c *Camera) Right() mgl32.Vec3 {
	return c.Front().Cross(worldUp).Normalize()
}

// Update applies held movement actions to the position. Speed scales with
// the frame delta and doubles while sprint is held; forward, strafe and
// vertical contributions sum independently within one frame.
func (c *Camera) Update(dt float64, im *input.InputManager) {
	speed := config.GetMoveSpeed() * float32(dt)
	if im.IsActive(input.ActionSprint) {
		speed *= config.GetSprintMultiplier()
	}

	front := c.Front()
	right := c.Right()

	if im.IsActive(input.ActionMoveForward) {
		c.Position = c.Position.Add(front.Mul(speed))
	}
	if im.IsActive(input.ActionMoveBackward) {
		c.Position = c.Position.Sub(front.Mul(speed))
	}
	if im.IsActive(input.ActionMoveLeft) {
		c.Position = c.Position.Sub(right.Mul(speed))
	}
	if im.IsActive(input.ActionMoveRight) {
		c.Position = c.Position.Add(right.Mul(speed))
	}
	if im.IsActive(input.ActionMoveUp) {
		c.Position = c.Position.Add(worldUp.Mul(speed))
	}
	if im.IsActive(input.ActionMoveDown) {
		c.Position = c.Position.Sub(worldUp.Mul(speed))
	}
}

// GetViewMatrix returns the look-at view matrix for the current pose.
func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front()), worldUp)
}
