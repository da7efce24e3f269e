// Package mesh provides the primitive meshes the scene is built from:
// plane, box, cylinder and torus.
package mesh

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Mesh is an uploaded primitive ready for drawing.
type Mesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// upload creates GL buffer objects for the given interleaved vertex data.
// Layout must match geometry.go: position (3), normal (3), uv (2).
func upload(vertices []float32, indices []uint32) *Mesh {
	m := &Mesh{indexCount: int32(len(indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, vertexStride, nil)
	gl.EnableVertexAttribArray(0)

	// Normal attribute (location = 1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, vertexStride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	// UV attribute (location = 2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, vertexStride, gl.PtrOffset(6*4))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	return m
}

// Draw issues the indexed draw call for this mesh.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Destroy releases the GL objects.
func (m *Mesh) Destroy() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	*m = Mesh{}
}

// Default tessellation for the curved primitives.
const (
	CylinderSegments = 36
	TorusRings       = 32
	TorusSides       = 16
	TorusTubeRadius  = 0.25
)

// Library holds one uploaded instance of each primitive. A primitive is
// uploaded once no matter how many times it is drawn per frame.
type Library struct {
	plane    *Mesh
	box      *Mesh
	cylinder *Mesh
	torus    *Mesh
}

// NewLibrary returns an empty mesh library. Load the primitives the scene
// needs before drawing; Draw* calls on unloaded primitives are no-ops.
func NewLibrary() *Library {
	return &Library{}
}

// LoadPlane uploads the plane primitive.
func (l *Library) LoadPlane() {
	if l.plane == nil {
		l.plane = upload(PlaneGeometry())
	}
}

// LoadBox uploads the box primitive.
func (l *Library) LoadBox() {
	if l.box == nil {
		l.box = upload(BoxGeometry())
	}
}

// LoadCylinder uploads the cylinder primitive.
func (l *Library) LoadCylinder() {
	if l.cylinder == nil {
		l.cylinder = upload(CylinderGeometry(CylinderSegments))
	}
}

// LoadTorus uploads the torus primitive.
func (l *Library) LoadTorus() {
	if l.torus == nil {
		l.torus = upload(TorusGeometry(TorusRings, TorusSides, TorusTubeRadius))
	}
}

// DrawPlane draws the plane primitive.
func (l *Library) DrawPlane() {
	if l.plane != nil {
		l.plane.Draw()
	}
}

// DrawBox draws the box primitive.
func (l *Library) DrawBox() {
	if l.box != nil {
		l.box.Draw()
	}
}

// DrawCylinder draws the cylinder primitive.
func (l *Library) DrawCylinder() {
	if l.cylinder != nil {
		l.cylinder.Draw()
	}
}

// DrawTorus draws the torus primitive.
func (l *Library) DrawTorus() {
	if l.torus != nil {
		l.torus.Draw()
	}
}

// Destroy releases all uploaded primitives.
func (l *Library) Destroy() {
	for _, m := range []*Mesh{l.plane, l.box, l.cylinder, l.torus} {
		if m != nil {
			m.Destroy()
		}
	}
	l.plane, l.box, l.cylinder, l.torus = nil, nil, nil, nil
}
