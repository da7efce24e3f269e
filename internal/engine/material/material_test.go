package material

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestFindUnknown(t *testing.T) {
	r := NewRegistry()

	if _, ok := r.Find("missing"); ok {
		t.Error("Find should fail on an empty registry")
	}

	r.Add(Material{Tag: "wood"})
	if _, ok := r.Find("missing"); ok {
		t.Error("Find should fail for unknown tag")
	}
}

func TestFindReturnsFullMaterial(t *testing.T) {
	r := NewRegistry()
	want := Material{
		Tag:             "gold",
		AmbientColor:    mgl32.Vec3{0.2, 0.2, 0.1},
		AmbientStrength: 0.4,
		DiffuseColor:    mgl32.Vec3{0.3, 0.3, 0.2},
		SpecularColor:   mgl32.Vec3{0.6, 0.5, 0.4},
		Shininess:       22.0,
	}
	r.Add(want)

	got, ok := r.Find("gold")
	if !ok {
		t.Fatal("Find(gold) failed")
	}
	if got != want {
		t.Errorf("Find(gold): got %+v, want %+v", got, want)
	}
}

func TestFindDuplicateTagShadows(t *testing.T) {
	r := NewRegistry()
	r.Add(Material{Tag: "wood", Shininess: 0.5})
	r.Add(Material{Tag: "wood", Shininess: 99})

	got, ok := r.Find("wood")
	if !ok {
		t.Fatal("Find(wood) failed")
	}
	// First match wins
	if got.Shininess != 0.5 {
		t.Errorf("Find(wood) shininess: got %f, want 0.5 (first entry)", got.Shininess)
	}
}

func TestLen(t *testing.T) {
	r := NewRegistry()
	if r.Len() != 0 {
		t.Errorf("empty registry Len: got %d, want 0", r.Len())
	}
	r.Add(Material{Tag: "a"})
	r.Add(Material{Tag: "b"})
	if r.Len() != 2 {
		t.Errorf("Len: got %d, want 2", r.Len())
	}
}
