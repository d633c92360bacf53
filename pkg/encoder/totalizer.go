package encoder

import (
	"fmt"

	"github.com/elyrion/platsat/pkg/cnf"
)

// ExpandLimits lowers instance's recorded cardinality and weight
// constraints into plain CNF clauses, drawing fresh variables from
// instance.Vars, then clears the constraint lists so a second call is a
// no-op. Call this once, after Encode, before handing instance to a
// Solver.
//
// The lowering is a sequential (Sinz-style) weighted counter,
// generalizing the unweighted sequential at-most-k encoding to integer
// weights: it tracks, after each literal, whether the running sum has
// reached each threshold up to bound+1, and forbids the final threshold.
// The underlying counter only handles non-negative weights, so a
// negative-weight term w*[lit] is first rewritten using
// w*[lit] = w + (-w)*[~lit]: a positive-weight term over the negated
// literal, plus a constant w folded into the bound. A zero-weight term
// contributes nothing and is dropped outright.
func ExpandLimits(instance *cnf.Instance) error {
	for _, c := range instance.Cardinalities {
		weights := make([]int, len(c.Lits))
		for i := range weights {
			weights[i] = 1
		}
		if err := encodeSequentialAtMost(instance, c.Lits, weights, c.Bound); err != nil {
			return fmt.Errorf("encoder: expanding cardinality constraint: %w", err)
		}
	}
	for _, c := range instance.Weights {
		lits := make([]cnf.Lit, 0, len(c.Lits))
		weights := make([]int, 0, len(c.Lits))
		bound := c.Bound
		for i, w := range c.Weights {
			switch {
			case w == 0:
				continue
			case w > 0:
				lits = append(lits, c.Lits[i])
				weights = append(weights, w)
			default:
				lits = append(lits, c.Lits[i].Negate())
				weights = append(weights, -w)
				bound -= w
			}
		}
		if err := encodeSequentialAtMost(instance, lits, weights, bound); err != nil {
			return fmt.Errorf("encoder: expanding weight constraint: %w", err)
		}
	}
	instance.Cardinalities = nil
	instance.Weights = nil
	return nil
}

// encodeSequentialAtMost emits clauses forcing
// sum(weights[i] for lits[i] true) <= bound. Every weight must be
// strictly positive; callers are expected to have already folded out
// zero and negative weights (see ExpandLimits).
//
// It introduces register variables reg[i][v], 1 <= v <= capVal (capVal =
// bound+1), meaning "the running weighted sum after literal i is >= v",
// and forbids reg[n][capVal]. Only the forward (monotonic) implications are
// needed for an upper bound, not a full iff, which keeps the encoding to
// O(n*capVal) clauses and auxiliary variables.
func encodeSequentialAtMost(instance *cnf.Instance, lits []cnf.Lit, weights []int, bound int) error {
	if bound < 0 {
		// A sum of strictly positive weights is never negative, so no
		// assignment meets this bound: emit the empty clause.
		instance.AddClause()
		return nil
	}
	if len(lits) == 0 {
		return nil
	}

	capVal := bound + 1
	prev := make([]cnf.Var, capVal+1) // prev[v], 1<=v<=capVal; prev[0] unused
	for i, lit := range lits {
		w := weights[i]
		cur := make([]cnf.Var, capVal+1)
		for v := 1; v <= capVal; v++ {
			need := false
			if prev[v] != 0 {
				need = true
			}
			rem := v - w
			if rem <= 0 || (rem <= capVal && prev[rem] != 0) {
				need = true
			}
			if !need {
				continue
			}
			reg, err := instance.Vars.New()
			if err != nil {
				return fmt.Errorf("allocating register var: %w", err)
			}
			cur[v] = reg

			if prev[v] != 0 {
				instance.AddImplication(cnf.PosLit(prev[v]), cnf.PosLit(reg))
			}
			switch {
			case rem <= 0:
				instance.AddImplication(lit, cnf.PosLit(reg))
			case rem <= capVal && prev[rem] != 0:
				instance.AddClause(lit.Negate(), cnf.NegLit(prev[rem]), cnf.PosLit(reg))
			}
		}
		prev = cur
	}

	if prev[capVal] != 0 {
		instance.AddUnit(cnf.NegLit(prev[capVal]))
	}
	return nil
}
