// Package material defines surface materials and the tag-keyed material list.
package material

import "github.com/go-gl/mathgl/mgl32"

// Material holds the Phong lighting parameters for a surface.
type Material struct {
	Tag             string
	AmbientColor    mgl32.Vec3
	AmbientStrength float32
	DiffuseColor    mgl32.Vec3
	SpecularColor   mgl32.Vec3
	Shininess       float32
}

// Registry is an append-only material list looked up by tag with a linear
// scan. Tag uniqueness is not enforced; with duplicate tags the first
// entry wins.
type Registry struct {
	materials []Material
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends a material to the list.
func (r *Registry) Add(m Material) {
	r.materials = append(r.materials, m)
}

// Find returns the first material registered under tag.
func (r *Registry) Find(tag string) (Material, bool) {
	for _, m := range r.materials {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

// Len returns the number of registered materials.
func (r *Registry) Len() int {
	return len(r.materials)
}
