package lighting

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// fakeSetter records published uniforms by name.
type fakeSetter struct {
	bools  map[string]bool
	floats map[string]float32
	vec3s  map[string]mgl32.Vec3
}

func newFakeSetter() *fakeSetter {
	return &fakeSetter{
		bools:  make(map[string]bool),
		floats: make(map[string]float32),
		vec3s:  make(map[string]mgl32.Vec3),
	}
}

func (f *fakeSetter) SetBool(name string, v bool)        { f.bools[name] = v }
func (f *fakeSetter) SetInt(name string, v int32)        {}
func (f *fakeSetter) SetFloat(name string, v float32)    { f.floats[name] = v }
func (f *fakeSetter) SetVec2(name string, v mgl32.Vec2)  {}
func (f *fakeSetter) SetVec3(name string, v mgl32.Vec3)  { f.vec3s[name] = v }
func (f *fakeSetter) SetVec4(name string, v mgl32.Vec4)  {}
func (f *fakeSetter) SetMat4(name string, v mgl32.Mat4)  {}
func (f *fakeSetter) SetSampler(name string, unit int32) {}

func TestApplyEnablesLighting(t *testing.T) {
	s := newFakeSetter()
	Apply(s, DeskLights())

	if !s.bools["bUseLighting"] {
		t.Error("Apply should enable bUseLighting")
	}
}

func TestApplyPublishesAllLights(t *testing.T) {
	s := newFakeSetter()
	lights := DeskLights()
	Apply(s, lights)

	if got := lights[0].Position; got != (mgl32.Vec3{10, 10, 10}) {
		t.Errorf("light 0 position: got %v", got)
	}

	// One vec3 uniform per color/position field, per light
	wantVec3s := MaxLights * 4
	if len(s.vec3s) != wantVec3s {
		t.Errorf("published %d vec3 uniforms, want %d", len(s.vec3s), wantVec3s)
	}
	wantFloats := MaxLights * 2
	if len(s.floats) != wantFloats {
		t.Errorf("published %d float uniforms, want %d", len(s.floats), wantFloats)
	}

	if got := s.vec3s["lightSources[2].position"]; got != (mgl32.Vec3{0, 10, 0}) {
		t.Errorf("lightSources[2].position: got %v, want (0, 10, 0)", got)
	}
	if got := s.floats["lightSources[2].focalStrength"]; got != 54.0 {
		t.Errorf("lightSources[2].focalStrength: got %f, want 54", got)
	}
	if got := s.vec3s["lightSources[1].specularColor"]; got != (mgl32.Vec3{0.3, 0.3, 1.0}) {
		t.Errorf("lightSources[1].specularColor: got %v", got)
	}
	if got := s.floats["lightSources[3].specularIntensity"]; got != 0.015 {
		t.Errorf("lightSources[3].specularIntensity: got %f, want 0.015", got)
	}
}
