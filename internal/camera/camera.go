// Package camera implements the free-flying viewer camera and its projection.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Direction is a keyboard movement direction.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

// Default camera values
const (
	DefaultYaw         float32 = -90.0
	DefaultPitch       float32 = 0.0
	DefaultSpeed       float32 = 2.5
	DefaultSensitivity float32 = 0.1
	DefaultZoom        float32 = 45.0

	// MaxPitch keeps the view from flipping over the poles
	MaxPitch float32 = 89.0
)

// FlyCamera handles yaw/pitch mouse look and WASD movement.
// Front, Right and Up are always derived from Yaw and Pitch.
type FlyCamera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	// Euler angles in degrees
	Yaw   float32
	Pitch float32

	MovementSpeed    float32
	MouseSensitivity float32
	Zoom             float32
}

// Option customizes a FlyCamera at construction time.
type Option func(*FlyCamera)

// WithOrientation sets the initial yaw and pitch in degrees.
func WithOrientation(yaw, pitch float32) Option {
	return func(c *FlyCamera) {
		c.Yaw = yaw
		c.Pitch = pitch
	}
}

// WithSpeed sets the initial movement speed in units per second.
func WithSpeed(speed float32) Option {
	return func(c *FlyCamera) { c.MovementSpeed = speed }
}

// WithSensitivity sets the mouse offset to degrees factor.
func WithSensitivity(sensitivity float32) Option {
	return func(c *FlyCamera) { c.MouseSensitivity = sensitivity }
}

// WithZoom sets the vertical field of view in degrees.
func WithZoom(zoom float32) Option {
	return func(c *FlyCamera) { c.Zoom = zoom }
}

// New creates a camera at position looking down -Z by default.
func New(position mgl32.Vec3, opts ...Option) *FlyCamera {
	c := &FlyCamera{
		Position:         position,
		Front:            mgl32.Vec3{0, 0, -1},
		WorldUp:          mgl32.Vec3{0, 1, 0},
		Yaw:              DefaultYaw,
		Pitch:            DefaultPitch,
		MovementSpeed:    DefaultSpeed,
		MouseSensitivity: DefaultSensitivity,
		Zoom:             DefaultZoom,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.updateVectors()
	return c
}

// ViewMatrix returns the look-at matrix for the current pose.
func (c *FlyCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// ProcessKeyboard moves the camera by MovementSpeed*dt in the given direction.
func (c *FlyCamera) ProcessKeyboard(dir Direction, dt float32) {
	velocity := c.MovementSpeed * dt
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	case Up:
		c.Position = c.Position.Add(c.WorldUp.Mul(velocity))
	case Down:
		c.Position = c.Position.Sub(c.WorldUp.Mul(velocity))
	}
}

// ProcessMouseMovement turns the camera by the given cursor offsets.
func (c *FlyCamera) ProcessMouseMovement(xOffset, yOffset float32, constrainPitch bool) {
	c.Yaw += xOffset * c.MouseSensitivity
	c.Pitch += yOffset * c.MouseSensitivity

	if constrainPitch {
		if c.Pitch > MaxPitch {
			c.Pitch = MaxPitch
		}
		if c.Pitch < -MaxPitch {
			c.Pitch = -MaxPitch
		}
	}

	c.updateVectors()
}

// ProcessMouseScroll adjusts movement speed, not zoom.
// Speed has no lower bound and may go negative, which reverses movement.
func (c *FlyCamera) ProcessMouseScroll(yOffset float32) {
	c.MovementSpeed += yOffset
}

// SetOrientation replaces yaw and pitch and rebuilds the basis.
func (c *FlyCamera) SetOrientation(yaw, pitch float32) {
	c.Yaw = yaw
	c.Pitch = pitch
	c.updateVectors()
}

func (c *FlyCamera) updateVectors() {
	c.Front = FrontVector(c.Yaw, c.Pitch)
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}

// FrontVector returns the unit view direction for yaw and pitch in degrees.
func FrontVector(yaw, pitch float32) mgl32.Vec3 {
	y := float64(mgl32.DegToRad(yaw))
	p := float64(mgl32.DegToRad(pitch))
	return mgl32.Vec3{
		float32(math.Cos(y) * math.Cos(p)),
		float32(math.Sin(p)),
		float32(math.Sin(y) * math.Cos(p)),
	}.Normalize()
}
