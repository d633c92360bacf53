package world

import (
	"testing"

	"github.com/elyrion/platsat/pkg/geom"
	"gopkg.in/yaml.v3"
)

func TestWorldYAMLRoundTrip(t *testing.T) {
	w := NewWorld(geom.NewDimensions(3, 2))
	w.SetTerrain(geom.NewPoint(0, 0), true)
	w.SetTerrain(geom.NewPoint(2, 1), true)

	out, err := yaml.Marshal(w)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var back World
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if back.Dims() != w.Dims() {
		t.Fatalf("dims = %v, want %v", back.Dims(), w.Dims())
	}
	for _, p := range []geom.Point{geom.NewPoint(0, 0), geom.NewPoint(2, 1), geom.NewPoint(1, 0)} {
		if back.IsTerrain(p) != w.IsTerrain(p) {
			t.Fatalf("IsTerrain(%v) = %v, want %v", p, back.IsTerrain(p), w.IsTerrain(p))
		}
	}
}

func TestWorldRowLengthMismatch(t *testing.T) {
	var w World
	err := yaml.Unmarshal([]byte("- \"XX\"\n- \"X\"\n"), &w)
	if err == nil {
		t.Fatal("expected error for mismatched row lengths")
	}
}

func TestWorldInvalidCharacter(t *testing.T) {
	var w World
	err := yaml.Unmarshal([]byte("- \"XY\"\n"), &w)
	if err == nil {
		t.Fatal("expected error for invalid character")
	}
}
