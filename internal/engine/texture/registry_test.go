package texture

import "testing"

func TestRegistryFindUnknown(t *testing.T) {
	r := NewRegistry()

	if _, ok := r.FindID("missing"); ok {
		t.Error("FindID should fail for unknown tag")
	}
	if slot := r.FindSlot("missing"); slot != -1 {
		t.Errorf("FindSlot for unknown tag: got %d, want -1", slot)
	}

	if err := r.Add(7, "wood"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, ok := r.FindID("missing"); ok {
		t.Error("FindID should still fail for unknown tag after adds")
	}
}

func TestRegistryFindFirstMatch(t *testing.T) {
	r := NewRegistry()
	if err := r.Add(10, "wood"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := r.Add(20, "screen"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	id, ok := r.FindID("screen")
	if !ok || id != 20 {
		t.Errorf("FindID(screen): got (%d, %v), want (20, true)", id, ok)
	}
	if slot := r.FindSlot("screen"); slot != 1 {
		t.Errorf("FindSlot(screen): got %d, want 1", slot)
	}
	if slot := r.FindSlot("wood"); slot != 0 {
		t.Errorf("FindSlot(wood): got %d, want 0", slot)
	}
}

func TestRegistryDuplicateTagShadows(t *testing.T) {
	r := NewRegistry()
	if err := r.Add(1, "wood"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := r.Add(2, "wood"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	// First match wins; the later entry is silently shadowed.
	id, ok := r.FindID("wood")
	if !ok || id != 1 {
		t.Errorf("FindID(wood): got (%d, %v), want (1, true)", id, ok)
	}
	if slot := r.FindSlot("wood"); slot != 0 {
		t.Errorf("FindSlot(wood): got %d, want 0", slot)
	}
}

func TestRegistryCapacity(t *testing.T) {
	r := NewRegistry()
	for i := 0; i < MaxTextures; i++ {
		if err := r.Add(uint32(i+1), "tex"); err != nil {
			t.Fatalf("Add %d failed: %v", i, err)
		}
	}
	if r.Len() != MaxTextures {
		t.Fatalf("expected %d entries, got %d", MaxTextures, r.Len())
	}
	if err := r.Add(99, "overflow"); err == nil {
		t.Error("expected error adding past capacity")
	}
	if r.Len() != MaxTextures {
		t.Errorf("failed Add should not grow registry: got %d entries", r.Len())
	}
}

func TestRegistrySlotOrder(t *testing.T) {
	r := NewRegistry()
	tags := []string{"floor", "plank", "desk", "bDrop"}
	for i, tag := range tags {
		if err := r.Add(uint32(100+i), tag); err != nil {
			t.Fatalf("Add(%s) failed: %v", tag, err)
		}
	}
	for i, tag := range tags {
		if slot := r.FindSlot(tag); slot != i {
			t.Errorf("FindSlot(%s): got %d, want %d", tag, slot, i)
		}
	}
}
