package view

import (
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/stillroom/deskscene/internal/engine/input"
)

type fakeShader struct {
	vec3s map[string]mgl32.Vec3
	mat4s map[string]mgl32.Mat4
}

func newFakeShader() *fakeShader {
	return &fakeShader{
		vec3s: make(map[string]mgl32.Vec3),
		mat4s: make(map[string]mgl32.Mat4),
	}
}

func (f *fakeShader) SetBool(name string, v bool)        {}
func (f *fakeShader) SetInt(name string, v int32)        {}
func (f *fakeShader) SetFloat(name string, v float32)    {}
func (f *fakeShader) SetVec2(name string, v mgl32.Vec2)  {}
func (f *fakeShader) SetVec3(name string, v mgl32.Vec3)  { f.vec3s[name] = v }
func (f *fakeShader) SetVec4(name string, v mgl32.Vec4)  {}
func (f *fakeShader) SetMat4(name string, v mgl32.Mat4)  { f.mat4s[name] = v }
func (f *fakeShader) SetSampler(name string, unit int32) {}

func approx(a, b, eps float32) bool {
	return float32(gomath.Abs(float64(a-b))) <= eps
}

func TestPerspectivePreset(t *testing.T) {
	m := NewManager(1000, 800)

	if m.Orthographic() {
		t.Error("new manager should start in perspective")
	}
	if m.Camera.Position != (mgl32.Vec3{0, 5.5, 8}) {
		t.Errorf("position: got %v, want (0, 5.5, 8)", m.Camera.Position)
	}
	if m.Camera.Front != (mgl32.Vec3{0, -0.5, -2}) {
		t.Errorf("front: got %v, want (0, -0.5, -2)", m.Camera.Front)
	}
	if m.Camera.Zoom != 80.0 {
		t.Errorf("zoom: got %f, want 80", m.Camera.Zoom)
	}
}

func TestOrthographicPreset(t *testing.T) {
	m := NewManager(1000, 800)
	m.UseOrthographic()

	if !m.Orthographic() {
		t.Error("UseOrthographic should switch the mode")
	}
	if m.Camera.Position != (mgl32.Vec3{0, 5, 10}) {
		t.Errorf("position: got %v, want (0, 5, 10)", m.Camera.Position)
	}
	if m.Camera.Front != (mgl32.Vec3{0, 0, -1}) {
		t.Errorf("front: got %v, want (0, 0, -1)", m.Camera.Front)
	}
	if m.Camera.Zoom != 1.0 {
		t.Errorf("zoom: got %f, want 1", m.Camera.Zoom)
	}
}

func TestPresetsRoundTrip(t *testing.T) {
	m := NewManager(1000, 800)
	m.Camera.Position = mgl32.Vec3{3, 3, 3}
	m.UseOrthographic()
	m.UsePerspective()

	if m.Camera.Position != (mgl32.Vec3{0, 5.5, 8}) {
		t.Errorf("position after round trip: got %v, want (0, 5.5, 8)", m.Camera.Position)
	}
	if m.Orthographic() {
		t.Error("mode after round trip should be perspective")
	}
}

func TestOrthoProjectionLandscape(t *testing.T) {
	m := NewManager(1000, 800) // aspect 1.25
	m.UseOrthographic()

	proj := m.ProjectionMatrix()

	// The visible world spans ±5 vertically and ±5*aspect horizontally.
	p := proj.Mul4x1(mgl32.Vec4{6.25, 5, -1, 1})
	if !approx(p.X(), 1, 1e-5) || !approx(p.Y(), 1, 1e-5) {
		t.Errorf("corner point in NDC: got (%f, %f), want (1, 1)", p.X(), p.Y())
	}
}

func TestOrthoProjectionPortrait(t *testing.T) {
	m := NewManager(800, 1000) // aspect 0.8
	m.UseOrthographic()

	proj := m.ProjectionMatrix()

	// In portrait the horizontal span is fixed and the vertical grows.
	p := proj.Mul4x1(mgl32.Vec4{5, 6.25, -1, 1})
	if !approx(p.X(), 1, 1e-5) || !approx(p.Y(), 1, 1e-5) {
		t.Errorf("corner point in NDC: got (%f, %f), want (1, 1)", p.X(), p.Y())
	}
}

func TestPerspectiveProjectionFOV(t *testing.T) {
	m := NewManager(1000, 1000) // square, aspect 1

	proj := m.ProjectionMatrix()

	// With an 80 degree vertical FOV, a point 40 degrees above the axis
	// lands on the top edge of the frustum.
	d := float32(10.0)
	y := d * float32(gomath.Tan(gomath.Pi*40.0/180.0))
	p := proj.Mul4x1(mgl32.Vec4{0, y, -d, 1})
	if !approx(p.Y()/p.W(), 1, 1e-4) {
		t.Errorf("top edge in NDC: got %f, want 1", p.Y()/p.W())
	}
}

func TestResizeChangesAspect(t *testing.T) {
	m := NewManager(1000, 800)
	m.UseOrthographic()
	before := m.ProjectionMatrix()

	m.Resize(800, 800)
	after := m.ProjectionMatrix()

	if before == after {
		t.Error("resize should change the projection")
	}
}

func TestUpdateKeySwitchesPresets(t *testing.T) {
	m := NewManager(1000, 800)

	in := input.New()
	in.Inject(input.Event{Type: input.EventKeyDown, Key: sdl.SCANCODE_O})
	m.Update(in, 0.016)

	if !m.Orthographic() {
		t.Error("O key should select the orthographic preset")
	}

	in = input.New()
	in.Inject(input.Event{Type: input.EventKeyDown, Key: sdl.SCANCODE_P})
	m.Update(in, 0.016)

	if m.Orthographic() {
		t.Error("P key should select the perspective preset")
	}
	if m.Camera.Position != (mgl32.Vec3{0, 5.5, 8}) {
		t.Errorf("position after P: got %v, want (0, 5.5, 8)", m.Camera.Position)
	}
}

func TestUpdateEscapeRequestsQuit(t *testing.T) {
	m := NewManager(1000, 800)

	in := input.New()
	in.Inject(input.Event{Type: input.EventKeyDown, Key: sdl.SCANCODE_ESCAPE})
	m.Update(in, 0.016)

	if !m.QuitRequested() {
		t.Error("Escape should request quit")
	}
}

func TestUpdateWheelAdjustsSpeed(t *testing.T) {
	m := NewManager(1000, 800)
	start := m.Camera.MovementSpeed

	in := input.New()
	in.Inject(input.Event{Type: input.EventMouseWheel, WheelY: -1})
	m.Update(in, 0.016)

	if !approx(m.Camera.MovementSpeed, start-0.5, 1e-6) {
		t.Errorf("speed after scroll down: got %f, want %f", m.Camera.MovementSpeed, start-0.5)
	}
}

func TestUpdateResizeChangesProjection(t *testing.T) {
	m := NewManager(1000, 800)
	m.UseOrthographic()
	before := m.ProjectionMatrix()

	in := input.New()
	in.Inject(input.Event{Type: input.EventWindowResize, Width: 500, Height: 500})
	m.Update(in, 0.016)

	if before == m.ProjectionMatrix() {
		t.Error("resize event should change the projection")
	}
}

func TestApplyPublishesUniforms(t *testing.T) {
	m := NewManager(1000, 800)
	f := newFakeShader()

	m.Apply(f)

	if _, ok := f.mat4s["view"]; !ok {
		t.Error("view uniform not published")
	}
	if _, ok := f.mat4s["projection"]; !ok {
		t.Error("projection uniform not published")
	}
	if got := f.vec3s["viewPosition"]; got != m.Camera.Position {
		t.Errorf("viewPosition: got %v, want %v", got, m.Camera.Position)
	}
}
