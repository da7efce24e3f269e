// Package texture provides texture loading and the tag-keyed texture registry.
package texture

import "fmt"

// MaxTextures is the number of texture slots available to a scene.
const MaxTextures = 16

// Entry associates a GL texture object with its scene tag.
type Entry struct {
	ID  uint32
	Tag string
}

// Registry is a fixed-capacity table of loaded textures, looked up by tag
// with a linear scan. Tag uniqueness is not enforced; with duplicate tags
// the first entry wins.
type Registry struct {
	entries []Entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make([]Entry, 0, MaxTextures),
	}
}

// Add registers a texture under the given tag.
// Fails when all slots are taken.
func (r *Registry) Add(id uint32, tag string) error {
	if len(r.entries) >= MaxTextures {
		return fmt.Errorf("texture registry full (%d slots), cannot add %q", MaxTextures, tag)
	}
	r.entries = append(r.entries, Entry{ID: id, Tag: tag})
	return nil
}

// FindID returns the GL texture object registered under tag.
func (r *Registry) FindID(tag string) (uint32, bool) {
	for _, e := range r.entries {
		if e.Tag == tag {
			return e.ID, true
		}
	}
	return 0, false
}

// FindSlot returns the texture unit index for the given tag, or -1 when
// the tag is unknown. Slots are assigned in registration order.
func (r *Registry) FindSlot(tag string) int {
	for i, e := range r.entries {
		if e.Tag == tag {
			return i
		}
	}
	return -1
}

// Len returns the number of registered textures.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Entries returns the registered entries in slot order.
func (r *Registry) Entries() []Entry {
	return r.entries
}
