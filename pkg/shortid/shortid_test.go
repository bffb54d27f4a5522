package shortid

import (
	"strings"
	"testing"
)

func TestNew_LengthAndAlphabet(t *testing.T) {
	id := New()
	if len(id) != length {
		t.Fatalf("length: got %d, want %d", len(id), length)
	}
	for _, c := range id {
		if !strings.ContainsRune(alphabet, c) {
			t.Errorf("character %q outside alphabet", c)
		}
	}
}

func TestNew_NoImmediateCollisions(t *testing.T) {
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		id := New()
		if _, ok := seen[id]; ok {
			t.Fatalf("collision after %d ids: %s", i, id)
		}
		seen[id] = struct{}{}
	}
}
