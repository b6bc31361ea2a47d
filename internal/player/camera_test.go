package player

import (
	"math"
	"testing"

	"chunkview/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

func almostEqual(a, b mgl32.Vec3) bool {
	const eps = 1e-4
	d := a.Sub(b)
	return math.Abs(float64(d.X())) < eps &&
		math.Abs(float64(d.Y())) < eps &&
		math.Abs(float64(d.Z())) < eps
}

func TestDefaultLooksTowardNegZ(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 0, 3})
	if got, want := c.Front(), (mgl32.Vec3{0, 0, -1}); !almostEqual(got, want) {
		t.Fatalf("front: got %v, want %v", got, want)
	}
	if got, want := c.Right(), (mgl32.Vec3{1, 0, 0}); !almostEqual(got, want) {
		t.Fatalf("right: got %v, want %v", got, want)
	}
}

func TestFrontVectorFormula(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	c.Yaw = 0
	if got, want := c.Front(), (mgl32.Vec3{1, 0, 0}); !almostEqual(got, want) {
		t.Fatalf("yaw 0: got %v, want %v", got, want)
	}
	c.Pitch = 89
	front := c.Front()
	if got, want := float64(front.Y()), math.Sin(89*math.Pi/180); math.Abs(got-want) > 1e-4 {
		t.Fatalf("pitch 89: front.Y got %v, want %v", got, want)
	}
}

func TestFirstMouseSampleOnlySeeds(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	c.HandleMouseMovement(400, 300)
	if c.Yaw != -90.0 || c.Pitch != 0.0 {
		t.Fatalf("first sample rotated camera: yaw %v pitch %v", c.Yaw, c.Pitch)
	}
	if c.LastMouseX != 400 || c.LastMouseY != 300 {
		t.Fatalf("first sample not seeded: last (%v, %v)", c.LastMouseX, c.LastMouseY)
	}

	// Second sample produces a delta against the seed.
	c.HandleMouseMovement(410, 300)
	if got, want := c.Yaw, -89.0; math.Abs(got-want) > 1e-9 {
		t.Fatalf("yaw after 10px: got %v, want %v", got, want)
	}
}

func TestResetMouseSeedsAgain(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	c.HandleMouseMovement(100, 100)
	c.HandleMouseMovement(110, 100)
	yaw := c.Yaw

	// After a reset the next sample must not produce a jump even if the
	// cursor warped while uncaptured.
	c.ResetMouse()
	c.HandleMouseMovement(5000, 5000)
	if c.Yaw != yaw {
		t.Fatalf("sample after reset rotated camera: yaw %v, want %v", c.Yaw, yaw)
	}
}

func TestPitchClampUnderUnboundedInput(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	c.HandleMouseMovement(0, 0)
	c.HandleMouseMovement(0, -1e7) // sweep up
	if got, want := c.Pitch, 89.0; got != want {
		t.Fatalf("pitch after upward sweep: got %v, want %v", got, want)
	}
	c.HandleMouseMovement(0, 1e7) // sweep down
	if got, want := c.Pitch, -89.0; got != want {
		t.Fatalf("pitch after downward sweep: got %v, want %v", got, want)
	}
}

func TestFOVClampUnderUnboundedScroll(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	c.HandleMouseScroll(5)
	if got, want := c.FOV, float32(40.0); got != want {
		t.Fatalf("fov after scroll 5: got %v, want %v", got, want)
	}
	c.HandleMouseScroll(1e6)
	if got, want := c.FOV, float32(1.0); got != want {
		t.Fatalf("fov floor: got %v, want %v", got, want)
	}
	c.HandleMouseScroll(-1e6)
	if got, want := c.FOV, float32(90.0); got != want {
		t.Fatalf("fov ceiling: got %v, want %v", got, want)
	}
}

func TestMovementAxes(t *testing.T) {
	cases := []struct {
		key  glfw.Key
		want mgl32.Vec3 // displacement for dt=0.1 at default speed 10
	}{
		{glfw.KeyW, mgl32.Vec3{0, 0, -1}},
		{glfw.KeyS, mgl32.Vec3{0, 0, 1}},
		{glfw.KeyA, mgl32.Vec3{-1, 0, 0}},
		{glfw.KeyD, mgl32.Vec3{1, 0, 0}},
		{glfw.KeySpace, mgl32.Vec3{0, 1, 0}},
		{glfw.KeyLeftControl, mgl32.Vec3{0, -1, 0}},
	}
	for _, tc := range cases {
		c := NewCamera(mgl32.Vec3{})
		im := input.NewInputManager()
		im.HandleKeyEvent(tc.key, glfw.Press)
		c.Update(0.1, im)
		if !almostEqual(c.Position, tc.want) {
			t.Errorf("key %d: got %v, want %v", tc.key, c.Position, tc.want)
		}
	}
}

func TestOpposingKeysCancel(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	im := input.NewInputManager()
	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	im.HandleKeyEvent(glfw.KeyS, glfw.Press)
	c.Update(0.1, im)
	if !almostEqual(c.Position, mgl32.Vec3{}) {
		t.Fatalf("opposing keys moved camera to %v", c.Position)
	}
}

func TestSprintDoublesDisplacement(t *testing.T) {
	walk := NewCamera(mgl32.Vec3{})
	im := input.NewInputManager()
	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	walk.Update(0.25, im)

	sprint := NewCamera(mgl32.Vec3{})
	im.HandleKeyEvent(glfw.KeyLeftShift, glfw.Press)
	sprint.Update(0.25, im)

	if !almostEqual(sprint.Position, walk.Position.Mul(2)) {
		t.Fatalf("sprint displacement %v, want twice %v", sprint.Position, walk.Position)
	}
}

func TestViewMatrixLooksDownNegZ(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 0, 3})
	view := c.GetViewMatrix()
	p := view.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if got, want := p, (mgl32.Vec4{0, 0, -3, 1}); !almostEqual(
		mgl32.Vec3{got.X(), got.Y(), got.Z()},
		mgl32.Vec3{want.X(), want.Y(), want.Z()},
	) {
		t.Fatalf("origin in view space: got %v, want %v", got, want)
	}
}
