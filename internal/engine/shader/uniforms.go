package shader

import "github.com/go-gl/mathgl/mgl32"

// UniformSetter is the uniform-publishing contract the scene and view
// managers depend on. *Program implements it against the live GL program;
// tests substitute a recording fake.
type UniformSetter interface {
	SetBool(name string, value bool)
	SetInt(name string, value int32)
	SetFloat(name string, value float32)
	SetVec2(name string, value mgl32.Vec2)
	SetVec3(name string, value mgl32.Vec3)
	SetVec4(name string, value mgl32.Vec4)
	SetMat4(name string, value mgl32.Mat4)
	SetSampler(name string, unit int32)
}

var _ UniformSetter = (*Program)(nil)
