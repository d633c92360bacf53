package validate

import (
	"testing"

	"github.com/elyrion/platsat/pkg/cnf"
	"github.com/elyrion/platsat/pkg/encvars"
	"github.com/elyrion/platsat/pkg/geom"
	"github.com/elyrion/platsat/pkg/layout"
	"github.com/elyrion/platsat/pkg/platform"
	"github.com/elyrion/platsat/pkg/world"
)

func buildWorld(w, h int, terrain ...[2]int) *world.World {
	wo := world.NewWorld(geom.NewDimensions(uint(w), uint(h)))
	for _, t := range terrain {
		wo.SetTerrain(geom.NewPoint(t[0], t[1]), true)
	}
	return wo
}

// layoutFromPlatforms builds a PlatformLayout containing exactly the given
// platforms, by constructing a matching catalog and a synthetic assignment
// and decoding it through the real decoder. This keeps the validator's
// tests independent of anything the encoder itself emits.
func layoutFromPlatforms(t *testing.T, wo *world.World, platforms ...platform.Platform) *layout.PlatformLayout {
	t.Helper()

	seen := make(map[platform.Def]bool)
	var defs []platform.Def
	for _, p := range platforms {
		if !seen[p.Def] {
			seen[p.Def] = true
			defs = append(defs, p.Def)
		}
	}
	cat := platform.NewCatalog(defs...)

	alloc := cnf.NewVarAllocator(0)
	ev, err := encvars.New(cat, wo, alloc)
	if err != nil {
		t.Fatalf("encvars.New: %v", err)
	}

	assignment := cnf.NewAssignment()
	for _, p := range platforms {
		v, ok := ev.ForDimsAt(p.Origin, p.EffectiveDims())
		if !ok {
			t.Fatalf("platform %+v has no variable in this world/catalog", p)
		}
		assignment.Set(v, cnf.True)
	}

	l, err := layout.FromAssignment(assignment, ev)
	if err != nil {
		t.Fatalf("FromAssignment: %v", err)
	}
	return l
}

func TestValidateDetectsOutOfBoundsPlatform(t *testing.T) {
	wo := buildWorld(2, 2)
	l := layoutFromPlatforms(t, wo, platform.NewPlatform(geom.NewPoint(1, 1), platform.NewDef(2, 2), false))

	result := Validate(l, wo)
	if result.IsValid() {
		t.Fatal("expected an out-of-bounds finding")
	}
	if len(result.OutOfBoundsPlatforms) != 1 {
		t.Fatalf("OutOfBoundsPlatforms = %d, want 1", len(result.OutOfBoundsPlatforms))
	}
}

func TestValidateDetectsOverlap(t *testing.T) {
	wo := buildWorld(3, 1)
	a := platform.NewPlatform(geom.NewPoint(0, 0), platform.NewDef(2, 1), false)
	b := platform.NewPlatform(geom.NewPoint(1, 0), platform.NewDef(2, 1), false)
	l := layoutFromPlatforms(t, wo, a, b)

	result := Validate(l, wo)
	if len(result.OverlappingPlatforms) != 2 {
		t.Fatalf("OverlappingPlatforms = %d, want 2", len(result.OverlappingPlatforms))
	}
}

func TestValidateDetectsUnsupportedTerrainBeyondDiffusionDistance(t *testing.T) {
	// An 8-long terrain corridor, directly supported only at x=0. With
	// TerrainSupportDistance=4, three diffusion rounds reach x=1..3; x=4..7
	// never become supported.
	corridor := [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}, {6, 0}, {7, 0}}
	wo := buildWorld(8, 1, corridor...)
	l := layoutFromPlatforms(t, wo, platform.NewPlatform(geom.NewPoint(0, 0), platform.NewDef(1, 1), false))

	result := Validate(l, wo)
	want := []geom.Point{geom.NewPoint(4, 0), geom.NewPoint(5, 0), geom.NewPoint(6, 0), geom.NewPoint(7, 0)}
	if len(result.UnsupportedTerrain) != len(want) {
		t.Fatalf("UnsupportedTerrain = %v, want %v", result.UnsupportedTerrain, want)
	}
	for i, p := range want {
		if result.UnsupportedTerrain[i] != p {
			t.Fatalf("UnsupportedTerrain = %v, want %v", result.UnsupportedTerrain, want)
		}
	}
}

func TestValidateSupportsTerrainWithinDiffusionDistance(t *testing.T) {
	// A 4-long terrain corridor, directly supported only at x=0; three
	// diffusion rounds exactly reach the far end at x=3.
	corridor := [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
	wo := buildWorld(4, 1, corridor...)
	l := layoutFromPlatforms(t, wo, platform.NewPlatform(geom.NewPoint(0, 0), platform.NewDef(1, 1), false))

	result := Validate(l, wo)
	if !result.IsValid() {
		t.Fatalf("expected a valid result, got %+v", result)
	}
}

func TestIterErrorPrintoutsOmitsEmptyCategories(t *testing.T) {
	wo := buildWorld(2, 2)
	l := layoutFromPlatforms(t, wo, platform.NewPlatform(geom.NewPoint(0, 0), platform.NewDef(1, 1), false))

	result := Validate(l, wo)
	if printouts := result.IterErrorPrintouts(); len(printouts) != 0 {
		t.Fatalf("expected no printouts for a valid result, got %v", printouts)
	}
}
