// Package camera provides the free-fly camera driven by mouse and keyboard.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/deskview/internal/engine/input"
)

// ProjectionMode selects how the scene is projected.
type ProjectionMode int

const (
	Perspective ProjectionMode = iota
	Orthographic
)

func (m ProjectionMode) String() string {
	switch m {
	case Perspective:
		return "perspective"
	case Orthographic:
		return "orthographic"
	}
	return "unknown"
}

// Settings holds the initial camera state and its limits.
// Angles are in degrees.
type Settings struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Yaw      float32
	Pitch    float32
	Speed    float32

	Sensitivity float32
	PitchLimit  float32 // Pitch stays within [-PitchLimit, PitchLimit]
	MinSpeed    float32 // Scrolling never takes Speed below this

	FOV    float32
	Aspect float32 // Fixed at the initial window aspect
	Near   float32
	Far    float32

	OrthoHalfExtent float32
	OrthoEye        mgl32.Vec3 // Orthographic view looks from here toward -Z
}

// DefaultSettings returns the desk viewer's starting camera.
func DefaultSettings() Settings {
	return Settings{
		Position:        mgl32.Vec3{5, 5, 10},
		Front:           mgl32.Vec3{-0.5, -0.5, -1},
		Up:              mgl32.Vec3{0, 1, 0},
		Yaw:             -90,
		Pitch:           0,
		Speed:           2.5,
		Sensitivity:     0.1,
		PitchLimit:      89,
		MinSpeed:        1,
		FOV:             45,
		Aspect:          800.0 / 600.0,
		Near:            0.1,
		Far:             100,
		OrthoHalfExtent: 5,
		OrthoEye:        mgl32.Vec3{0, 0, 10},
	}
}

// State is a snapshot of the camera.
type State struct {
	Position      mgl32.Vec3
	Front         mgl32.Vec3
	Up            mgl32.Vec3
	Yaw           float32
	Pitch         float32
	MovementSpeed float32
	Mode          ProjectionMode
}

// Controller owns the camera state and applies input to it.
type Controller struct {
	settings Settings

	position mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	yaw      float32
	pitch    float32
	speed    float32
	mode     ProjectionMode

	// Cursor baseline for mouse deltas
	lastX, lastY float64
	firstMouse   bool
}

// NewController creates a controller in its initial state.
func NewController(s Settings) *Controller {
	c := &Controller{settings: s}
	c.Reset()
	return c
}

// Reset restores the initial state. The next cursor event only seeds the baseline.
func (c *Controller) Reset() {
	s := c.settings
	c.position = s.Position
	c.front = s.Front.Normalize()
	c.up = s.Up
	c.yaw = s.Yaw
	c.pitch = s.Pitch
	c.speed = s.Speed
	c.mode = Perspective
	c.firstMouse = true
}

// State returns the current camera state.
func (c *Controller) State() State {
	return State{
		Position:      c.position,
		Front:         c.front,
		Up:            c.up,
		Yaw:           c.yaw,
		Pitch:         c.pitch,
		MovementSpeed: c.speed,
		Mode:          c.mode,
	}
}

// Mode returns the active projection mode.
func (c *Controller) Mode() ProjectionMode {
	return c.mode
}

// SetMode selects a projection mode.
func (c *Controller) SetMode(m ProjectionMode) {
	c.mode = m
}

// HandleMouseMove turns cursor movement into yaw and pitch.
// Screen Y grows downward, so moving the cursor up raises pitch.
func (c *Controller) HandleMouseMove(x, y float64) {
	if c.firstMouse {
		c.lastX, c.lastY = x, y
		c.firstMouse = false
		return
	}

	dx := float32(x-c.lastX) * c.settings.Sensitivity
	dy := float32(c.lastY-y) * c.settings.Sensitivity
	c.lastX, c.lastY = x, y

	c.yaw += dx
	c.pitch += dy

	limit := c.settings.PitchLimit
	if c.pitch > limit {
		c.pitch = limit
	}
	if c.pitch < -limit {
		c.pitch = -limit
	}

	c.updateFront()
}

func (c *Controller) updateFront() {
	yaw := mgl32.DegToRad(c.yaw)
	pitch := mgl32.DegToRad(c.pitch)
	c.front = mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()
}

// HandleScroll adjusts movement speed by the vertical scroll offset.
func (c *Controller) HandleScroll(xoff, yoff float64) {
	c.speed += float32(yoff)
	if c.speed < c.settings.MinSpeed {
		c.speed = c.settings.MinSpeed
	}
}

// ProcessKeys applies held movement and mode keys for a frame lasting dt seconds.
// Mode keys are level-triggered: holding P or O re-selects the same mode.
func (c *Controller) ProcessKeys(keys input.KeyState, dt float32) {
	velocity := c.speed * dt
	right := c.front.Cross(c.up).Normalize()

	if keys.Pressed(input.KeyW) {
		c.position = c.position.Add(c.front.Mul(velocity))
	}
	if keys.Pressed(input.KeyS) {
		c.position = c.position.Sub(c.front.Mul(velocity))
	}
	if keys.Pressed(input.KeyA) {
		c.position = c.position.Sub(right.Mul(velocity))
	}
	if keys.Pressed(input.KeyD) {
		c.position = c.position.Add(right.Mul(velocity))
	}
	if keys.Pressed(input.KeyQ) {
		c.position = c.position.Add(c.up.Mul(velocity))
	}
	if keys.Pressed(input.KeyE) {
		c.position = c.position.Sub(c.up.Mul(velocity))
	}

	if keys.Pressed(input.KeyP) {
		c.mode = Perspective
	}
	if keys.Pressed(input.KeyO) {
		c.mode = Orthographic
	}
}

// ViewMatrix returns the view matrix for the active mode. The orthographic
// view is fixed and ignores the free-fly position.
func (c *Controller) ViewMatrix() mgl32.Mat4 {
	if c.mode == Orthographic {
		eye := c.settings.OrthoEye
		return mgl32.LookAtV(eye, eye.Add(mgl32.Vec3{0, 0, -1}), mgl32.Vec3{0, 1, 0})
	}
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// ProjectionMatrix returns the projection matrix for the active mode.
func (c *Controller) ProjectionMatrix() mgl32.Mat4 {
	s := c.settings
	if c.mode == Orthographic {
		h := s.OrthoHalfExtent
		return mgl32.Ortho(-h, h, -h, h, s.Near, s.Far)
	}
	return mgl32.Perspective(mgl32.DegToRad(s.FOV), s.Aspect, s.Near, s.Far)
}

// EyePosition returns the free-fly camera position used for specular lighting.
func (c *Controller) EyePosition() mgl32.Vec3 {
	return c.position
}
