// Package camera provides the fly camera used to explore the scene.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Direction is a camera-relative movement direction.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

// MinMovementSpeed is the floor for the scroll-adjusted movement speed.
const MinMovementSpeed = 0.5

// Defaults for a freshly constructed camera.
const (
	DefaultSpeed       = 2.5
	DefaultSensitivity = 0.1
	DefaultZoom        = 80.0

	pitchLimit = 89.0
)

// FlyCamera is a first-person camera: continuous keyboard translation plus
// mouse-driven look direction.
type FlyCamera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	// Euler angles in degrees
	Yaw   float32
	Pitch float32

	// Field of view in degrees for the perspective projection
	Zoom float32

	MovementSpeed    float32
	MouseSensitivity float32
	InvertY          bool
}

// NewFlyCamera returns a camera with the default scene viewpoint.
func NewFlyCamera() *FlyCamera {
	c := &FlyCamera{
		Position:         mgl32.Vec3{0, 5.5, 8},
		WorldUp:          mgl32.Vec3{0, 1, 0},
		Zoom:             DefaultZoom,
		MovementSpeed:    DefaultSpeed,
		MouseSensitivity: DefaultSensitivity,
	}
	c.SetOrientation(mgl32.Vec3{0, -0.5, -2}, mgl32.Vec3{0, 1, 0})
	return c
}

// SetOrientation sets the look direction and up vector directly, keeping the
// yaw/pitch angles in sync so mouse look continues from the new direction.
func (c *FlyCamera) SetOrientation(front, up mgl32.Vec3) {
	c.Front = front
	c.Up = up

	f := front.Normalize()
	c.Pitch = float32(gomath.Asin(float64(f.Y()))) * 180 / gomath.Pi
	c.Yaw = float32(gomath.Atan2(float64(f.Z()), float64(f.X()))) * 180 / gomath.Pi
	c.Right = f.Cross(c.WorldUp).Normalize()
}

// ViewMatrix returns the look-at view matrix for the current state.
func (c *FlyCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// ProcessKeyboard translates the camera in the given direction.
// dt is the raw frame delta in seconds; the distance covered is
// MovementSpeed * dt.
func (c *FlyCamera) ProcessKeyboard(dir Direction, dt float32) {
	velocity := c.MovementSpeed * dt
	front := c.Front.Normalize()

	switch dir {
	case Forward:
		c.Position = c.Position.Add(front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	case Up:
		c.Position = c.Position.Add(c.Up.Mul(velocity))
	case Down:
		c.Position = c.Position.Sub(c.Up.Mul(velocity))
	}
}

// ProcessMouseMovement steers the look direction from a mouse delta.
// Pitch is clamped to ±89° to avoid flipping over the vertical.
func (c *FlyCamera) ProcessMouseMovement(dx, dy float32) {
	if c.InvertY {
		dy = -dy
	}

	c.Yaw += dx * c.MouseSensitivity
	c.Pitch += dy * c.MouseSensitivity

	if c.Pitch > pitchLimit {
		c.Pitch = pitchLimit
	}
	if c.Pitch < -pitchLimit {
		c.Pitch = -pitchLimit
	}

	c.updateVectors()
}

// ProcessMouseScroll adjusts the movement speed in 0.5 steps.
// The speed never drops below MinMovementSpeed.
func (c *FlyCamera) ProcessMouseScroll(dy float32) {
	if dy > 0 {
		c.MovementSpeed += 0.5
	} else if dy < 0 {
		c.MovementSpeed -= 0.5
		if c.MovementSpeed < MinMovementSpeed {
			c.MovementSpeed = MinMovementSpeed
		}
	}
}

// updateVectors recomputes the basis vectors from the yaw/pitch angles.
func (c *FlyCamera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))

	front := mgl32.Vec3{
		float32(gomath.Cos(yaw) * gomath.Cos(pitch)),
		float32(gomath.Sin(pitch)),
		float32(gomath.Sin(yaw) * gomath.Cos(pitch)),
	}

	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}
