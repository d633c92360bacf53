package encoder

import (
	"testing"

	"github.com/elyrion/platsat/pkg/cnf"
)

// hornSatisfiable checks satisfiability of clauses under a partial base
// assignment by forward unit propagation to a fixpoint. It only needs to
// be sound for the clause shapes encodeSequentialAtMost emits (each
// auxiliary variable has at most one defining implication chain), where
// propagation never stalls on more than one unresolved literal per
// reachable clause.
func hornSatisfiable(clauses []cnf.Clause, base map[cnf.Var]bool) bool {
	state := make(map[cnf.Var]bool, len(base))
	for v, b := range base {
		state[v] = b
	}

	for changed := true; changed; {
		changed = false
		for _, c := range clauses {
			satisfied := false
			numUnknown := 0
			var unknownLit cnf.Lit
			for _, lit := range c {
				val, known := state[lit.Var()]
				if !known {
					numUnknown++
					unknownLit = lit
					continue
				}
				if val != lit.Negated() {
					satisfied = true
					break
				}
			}
			if satisfied {
				continue
			}
			if numUnknown == 0 {
				return false
			}
			if numUnknown == 1 {
				v := unknownLit.Var()
				newVal := !unknownLit.Negated()
				if cur, known := state[v]; known {
					if cur != newVal {
						return false
					}
				} else {
					state[v] = newVal
					changed = true
				}
			}
		}
	}
	return true
}

func TestSequentialAtMostMatchesWeightedSum(t *testing.T) {
	in := cnf.NewInstance()
	var base []cnf.Var
	for i := 0; i < 3; i++ {
		v, err := in.Vars.New()
		if err != nil {
			t.Fatalf("allocating base var: %v", err)
		}
		base = append(base, v)
	}
	weights := []int{1, 2, 2}
	bound := 2

	lits := make([]cnf.Lit, len(base))
	for i, v := range base {
		lits[i] = cnf.PosLit(v)
	}
	if err := encodeSequentialAtMost(in, lits, weights, bound); err != nil {
		t.Fatalf("encodeSequentialAtMost: %v", err)
	}

	for mask := 0; mask < 1<<len(base); mask++ {
		assignment := make(map[cnf.Var]bool, len(base))
		sum := 0
		for i, v := range base {
			on := mask&(1<<i) != 0
			assignment[v] = on
			if on {
				sum += weights[i]
			}
		}
		want := sum <= bound
		got := hornSatisfiable(in.Clauses, assignment)
		if got != want {
			t.Fatalf("mask %03b: sum=%d bound=%d hornSatisfiable=%v, want %v", mask, sum, bound, got, want)
		}
	}
}

func TestSequentialAtMostUnweightedIsCardinality(t *testing.T) {
	in := cnf.NewInstance()
	var base []cnf.Var
	for i := 0; i < 4; i++ {
		v, err := in.Vars.New()
		if err != nil {
			t.Fatalf("allocating base var: %v", err)
		}
		base = append(base, v)
	}
	weights := make([]int, len(base))
	for i := range weights {
		weights[i] = 1
	}
	bound := 2

	lits := make([]cnf.Lit, len(base))
	for i, v := range base {
		lits[i] = cnf.PosLit(v)
	}
	if err := encodeSequentialAtMost(in, lits, weights, bound); err != nil {
		t.Fatalf("encodeSequentialAtMost: %v", err)
	}

	for mask := 0; mask < 1<<len(base); mask++ {
		assignment := make(map[cnf.Var]bool, len(base))
		count := 0
		for i, v := range base {
			on := mask&(1<<i) != 0
			assignment[v] = on
			if on {
				count++
			}
		}
		want := count <= bound
		got := hornSatisfiable(in.Clauses, assignment)
		if got != want {
			t.Fatalf("mask %04b: count=%d bound=%d hornSatisfiable=%v, want %v", mask, count, bound, got, want)
		}
	}
}

func TestExpandLimitsHandlesNegativeWeights(t *testing.T) {
	in := cnf.NewInstance()
	var base []cnf.Var
	for i := 0; i < 3; i++ {
		v, err := in.Vars.New()
		if err != nil {
			t.Fatalf("allocating base var: %v", err)
		}
		base = append(base, v)
	}
	lits := make([]cnf.Lit, len(base))
	for i, v := range base {
		lits[i] = cnf.PosLit(v)
	}
	// One negative weight: a true literal here should relax the budget,
	// not tighten it.
	weights := []int{3, -2, 1}
	bound := 1
	in.AddWeightAtMost(lits, weights, bound)

	if err := ExpandLimits(in); err != nil {
		t.Fatalf("ExpandLimits: %v", err)
	}
	if len(in.Weights) != 0 {
		t.Fatal("ExpandLimits should clear recorded weight constraints")
	}

	for mask := 0; mask < 1<<len(base); mask++ {
		assignment := make(map[cnf.Var]bool, len(base))
		sum := 0
		for i, v := range base {
			on := mask&(1<<i) != 0
			assignment[v] = on
			if on {
				sum += weights[i]
			}
		}
		want := sum <= bound
		got := hornSatisfiable(in.Clauses, assignment)
		if got != want {
			t.Fatalf("mask %03b: sum=%d bound=%d hornSatisfiable=%v, want %v", mask, sum, bound, got, want)
		}
	}
}

func TestSequentialAtMostNegativeBoundForbidsAll(t *testing.T) {
	in := cnf.NewInstance()
	v, err := in.Vars.New()
	if err != nil {
		t.Fatalf("allocating var: %v", err)
	}
	if err := encodeSequentialAtMost(in, []cnf.Lit{cnf.PosLit(v)}, []int{1}, -1); err != nil {
		t.Fatalf("encodeSequentialAtMost: %v", err)
	}
	if hornSatisfiable(in.Clauses, map[cnf.Var]bool{v: true}) {
		t.Fatal("literal should be forbidden under a negative bound")
	}
	if hornSatisfiable(in.Clauses, map[cnf.Var]bool{v: false}) {
		t.Fatal("literal false should also be unsatisfiable: a sum of 0 exceeds a negative bound")
	}
}
