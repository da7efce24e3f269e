// Package view owns the camera and projection state for the viewer.
package view

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/stillroom/deskscene/internal/engine/camera"
	"github.com/stillroom/deskscene/internal/engine/input"
	"github.com/stillroom/deskscene/internal/engine/shader"
)

// Projection clipping planes and the ortho half-extent, shared by both
// projection modes.
const (
	NearPlane = 0.1
	FarPlane  = 100.0
	OrthoSize = 5.0
)

// Manager translates input into camera movement and publishes the
// view/projection uniforms each frame.
type Manager struct {
	Camera *camera.FlyCamera

	width         int
	height        int
	orthographic  bool
	quitRequested bool
}

// NewManager creates a view manager for a window of the given size.
// The camera starts in the perspective preset.
func NewManager(width, height int) *Manager {
	m := &Manager{
		Camera: camera.NewFlyCamera(),
		width:  width,
		height: height,
	}
	m.UsePerspective()
	return m
}

// Resize updates the aspect ratio used for projection.
func (m *Manager) Resize(width, height int) {
	m.width = width
	m.height = height
}

// Orthographic reports whether the orthographic preset is active.
func (m *Manager) Orthographic() bool {
	return m.orthographic
}

// QuitRequested reports whether the user asked to close the viewer.
func (m *Manager) QuitRequested() bool {
	return m.quitRequested
}

// UsePerspective snaps the camera to the front-of-desk perspective view.
func (m *Manager) UsePerspective() {
	m.orthographic = false
	m.Camera.Position = mgl32.Vec3{0.0, 5.5, 8.0}
	m.Camera.SetOrientation(mgl32.Vec3{0.0, -0.5, -2.0}, mgl32.Vec3{0.0, 1.0, 0.0})
	m.Camera.Zoom = 80.0
}

// UseOrthographic snaps the camera to the straight-on orthographic view.
func (m *Manager) UseOrthographic() {
	m.orthographic = true
	m.Camera.Position = mgl32.Vec3{0.0, 5.0, 10.0}
	m.Camera.SetOrientation(mgl32.Vec3{0.0, 0.0, -1.0}, mgl32.Vec3{0.0, 1.0, 0.0})
	m.Camera.Zoom = 1.0
}

// Update processes the frame's input: mouse look, scroll speed, view
// presets, and held movement keys. dt is the frame time in seconds.
func (m *Manager) Update(in *input.Input, dt float32) {
	for _, e := range in.Events() {
		switch e.Type {
		case input.EventQuit:
			m.quitRequested = true
		case input.EventWindowResize:
			m.Resize(e.Width, e.Height)
		case input.EventMouseMove:
			// SDL reports Y growing downward
			m.Camera.ProcessMouseMovement(float32(e.MouseX), float32(-e.MouseY))
		case input.EventMouseWheel:
			m.Camera.ProcessMouseScroll(float32(e.WheelY))
		case input.EventKeyDown:
			switch e.Key {
			case sdl.SCANCODE_ESCAPE:
				m.quitRequested = true
			case sdl.SCANCODE_P:
				m.UsePerspective()
			case sdl.SCANCODE_O:
				m.UseOrthographic()
			}
		}
	}

	m.moveCamera(in, dt)
}

// moveCamera applies held movement keys for this frame.
func (m *Manager) moveCamera(in *input.Input, dt float32) {
	if in.IsKeyHeld(sdl.SCANCODE_W) {
		m.Camera.ProcessKeyboard(camera.Forward, dt)
	}
	if in.IsKeyHeld(sdl.SCANCODE_S) {
		m.Camera.ProcessKeyboard(camera.Backward, dt)
	}
	if in.IsKeyHeld(sdl.SCANCODE_A) {
		m.Camera.ProcessKeyboard(camera.Left, dt)
	}
	if in.IsKeyHeld(sdl.SCANCODE_D) {
		m.Camera.ProcessKeyboard(camera.Right, dt)
	}
	if in.IsKeyHeld(sdl.SCANCODE_Q) {
		m.Camera.ProcessKeyboard(camera.Up, dt)
	}
	if in.IsKeyHeld(sdl.SCANCODE_E) {
		m.Camera.ProcessKeyboard(camera.Down, dt)
	}
}

// ProjectionMatrix returns the projection for the active preset.
// Orthographic keeps a fixed world height (or width, in portrait) so
// resizing the window never stretches the scene.
func (m *Manager) ProjectionMatrix() mgl32.Mat4 {
	aspect := float32(m.width) / float32(m.height)

	if !m.orthographic {
		return mgl32.Perspective(mgl32.DegToRad(m.Camera.Zoom), aspect, NearPlane, FarPlane)
	}

	if aspect >= 1 {
		return mgl32.Ortho(-OrthoSize*aspect, OrthoSize*aspect, -OrthoSize, OrthoSize, NearPlane, FarPlane)
	}
	return mgl32.Ortho(-OrthoSize, OrthoSize, -OrthoSize/aspect, OrthoSize/aspect, NearPlane, FarPlane)
}

// Apply publishes the frame's view, projection, and camera position.
func (m *Manager) Apply(s shader.UniformSetter) {
	s.SetMat4("view", m.Camera.ViewMatrix())
	s.SetMat4("projection", m.ProjectionMatrix())
	s.SetVec3("viewPosition", m.Camera.Position)
}
