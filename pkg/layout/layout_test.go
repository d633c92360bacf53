package layout

import (
	"errors"
	"testing"

	"github.com/elyrion/platsat/pkg/cnf"
	"github.com/elyrion/platsat/pkg/encvars"
	"github.com/elyrion/platsat/pkg/geom"
	"github.com/elyrion/platsat/pkg/platform"
	"github.com/elyrion/platsat/pkg/world"
)

func buildWorld(w, h int) *world.World {
	return world.NewWorld(geom.NewDimensions(uint(w), uint(h)))
}

func TestFromAssignmentKeepsLargestAtOrigin(t *testing.T) {
	cat := platform.NewCatalog(platform.NewDef(1, 1), platform.NewDef(1, 2))
	wo := buildWorld(2, 2)
	alloc := cnf.NewVarAllocator(0)
	ev, err := encvars.New(cat, wo, alloc)
	if err != nil {
		t.Fatalf("encvars.New: %v", err)
	}

	origin := geom.NewPoint(0, 0)
	small, _ := ev.ForDimsAt(origin, geom.NewDimensions(1, 1))
	large, _ := ev.ForDimsAt(origin, geom.NewDimensions(1, 2))

	assignment := cnf.NewAssignment()
	assignment.Set(small, cnf.True)
	assignment.Set(large, cnf.True)

	got, err := FromAssignment(assignment, ev)
	if err != nil {
		t.Fatalf("FromAssignment: %v", err)
	}
	if got.PlatformCount() != 1 {
		t.Fatalf("PlatformCount = %d, want 1", got.PlatformCount())
	}
	p, ok := got.GetPlatform(origin)
	if !ok {
		t.Fatal("expected a platform at origin")
	}
	if p.EffectiveDims() != geom.NewDimensions(1, 2) {
		t.Fatalf("decoded dims = %v, want 1x2", p.EffectiveDims())
	}
}

func TestFromAssignmentRejectsIncomparableActivePair(t *testing.T) {
	cat := platform.NewCatalog(platform.NewDef(1, 2), platform.NewDef(2, 2))
	wo := buildWorld(2, 2)
	alloc := cnf.NewVarAllocator(0)
	ev, err := encvars.New(cat, wo, alloc)
	if err != nil {
		t.Fatalf("encvars.New: %v", err)
	}

	origin := geom.NewPoint(0, 0)
	a, _ := ev.ForDimsAt(origin, geom.NewDimensions(1, 2))
	b, _ := ev.ForDimsAt(origin, geom.NewDimensions(2, 1))

	assignment := cnf.NewAssignment()
	assignment.Set(a, cnf.True)
	assignment.Set(b, cnf.True)

	_, err = FromAssignment(assignment, ev)
	if err == nil {
		t.Fatal("expected a DecodeInvariantViolation for two incomparable active platforms")
	}
	var violation *ErrDecodeInvariantViolation
	if !errors.As(err, &violation) {
		t.Fatalf("error = %v, want *ErrDecodeInvariantViolation", err)
	}
}

func TestPlatformStatsAndWeightSum(t *testing.T) {
	cat := platform.NewCatalog(platform.NewDef(1, 1))
	wo := buildWorld(2, 1)
	alloc := cnf.NewVarAllocator(0)
	ev, err := encvars.New(cat, wo, alloc)
	if err != nil {
		t.Fatalf("encvars.New: %v", err)
	}

	v0, _ := ev.ForDimsAt(geom.NewPoint(0, 0), geom.NewDimensions(1, 1))
	v1, _ := ev.ForDimsAt(geom.NewPoint(1, 0), geom.NewDimensions(1, 1))
	assignment := cnf.NewAssignment()
	assignment.Set(v0, cnf.True)
	assignment.Set(v1, cnf.True)

	got, err := FromAssignment(assignment, ev)
	if err != nil {
		t.Fatalf("FromAssignment: %v", err)
	}
	if got.PlatformCount() != 2 {
		t.Fatalf("PlatformCount = %d, want 2", got.PlatformCount())
	}

	def := cat.Defs()[0]
	stats := got.PlatformStats()
	if stats[def] != 2 {
		t.Fatalf("stats[%v] = %d, want 2", def, stats[def])
	}

	weights := map[platform.Def]int{def: 3}
	if sum := got.PlatformWeightSum(weights); sum != 6 {
		t.Fatalf("PlatformWeightSum = %d, want 6", sum)
	}
}
