package shaders

import (
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	vs, err := Lookup(PyramidVertex)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"aPosition", "aColor", "uModelViewProjectionMatrix"} {
		if !strings.Contains(vs, name) {
			t.Errorf("vertex shader does not declare %s", name)
		}
	}
	fs, err := Lookup(PyramidFragment)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(fs, "#version 330 core") {
		t.Errorf("fragment shader version line missing: %q", fs[:20])
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("skybox"); err == nil {
		t.Fatal("expected error for unknown id")
	}
}

func TestIDs(t *testing.T) {
	got := IDs()
	if len(got) != 2 || got[0] != PyramidFragment || got[1] != PyramidVertex {
		t.Fatalf("IDs() = %v", got)
	}
}
