// Package shader provides OpenGL shader compilation and uniform management.
package shader

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// CompileProgram compiles vertex and fragment shaders and links them into a program.
// Returns the program ID or an error if compilation/linking fails.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen)
		gl.GetProgramInfoLog(program, logLen, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", string(log))
	}

	return program, nil
}

// compileShader compiles a single shader of the given type.
func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen)
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", name, string(log))
	}

	return shader, nil
}

// Program wraps a linked shader program with a uniform location cache.
// It implements the uniform-setting contract the scene and view managers
// depend on: set scalar/vector/matrix/sampler values by name.
type Program struct {
	id        uint32
	locations map[string]int32
}

// NewProgram compiles and links a program from the given sources.
func NewProgram(vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	return &Program{
		id:        id,
		locations: make(map[string]int32),
	}, nil
}

// ID returns the underlying OpenGL program object.
func (p *Program) ID() uint32 {
	return p.id
}

// Use makes this program the active one.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// Destroy deletes the program object.
func (p *Program) Destroy() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

// location returns the cached uniform location for name.
// Unknown or inactive uniforms resolve to -1, which OpenGL ignores on set.
func (p *Program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.locations[name] = loc
	return loc
}

// SetBool sets a bool uniform (as int 0/1).
func (p *Program) SetBool(name string, value bool) {
	v := int32(0)
	if value {
		v = 1
	}
	gl.Uniform1i(p.location(name), v)
}

// SetInt sets an int uniform.
func (p *Program) SetInt(name string, value int32) {
	gl.Uniform1i(p.location(name), value)
}

// SetFloat sets a float uniform.
func (p *Program) SetFloat(name string, value float32) {
	gl.Uniform1f(p.location(name), value)
}

// SetVec2 sets a vec2 uniform.
func (p *Program) SetVec2(name string, value mgl32.Vec2) {
	gl.Uniform2f(p.location(name), value.X(), value.Y())
}

// SetVec3 sets a vec3 uniform.
func (p *Program) SetVec3(name string, value mgl32.Vec3) {
	gl.Uniform3f(p.location(name), value.X(), value.Y(), value.Z())
}

// SetVec4 sets a vec4 uniform.
func (p *Program) SetVec4(name string, value mgl32.Vec4) {
	gl.Uniform4f(p.location(name), value.X(), value.Y(), value.Z(), value.W())
}

// SetMat4 sets a mat4 uniform.
func (p *Program) SetMat4(name string, value mgl32.Mat4) {
	gl.UniformMatrix4fv(p.location(name), 1, false, &value[0])
}

// SetSampler binds a sampler uniform to the given texture unit.
func (p *Program) SetSampler(name string, unit int32) {
	gl.Uniform1i(p.location(name), unit)
}
