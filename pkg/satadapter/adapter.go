package satadapter

import (
	"context"
	"fmt"

	"github.com/irifrance/gini"
	"github.com/irifrance/gini/z"

	"github.com/elyrion/platsat/pkg/cnf"
)

// Adapter is a pkg/cnf.Solver backed by a single gini.Gini instance. Its
// Var/Lit encoding is DIMACS-style on both sides, so translation is a
// direct conversion with no remapping table.
//
// An Adapter is meant to be used for one Load/Solve pair. Load must
// complete before Solve is called; Interrupter's handle is safe to call
// concurrently with Solve, including before Solve starts or after it
// returns.
type Adapter struct {
	g      *gini.Gini
	maxVar cnf.Var
}

var _ cnf.Solver = (*Adapter)(nil)

// New returns an unloaded Adapter.
func New() *Adapter {
	return &Adapter{}
}

// Load translates instance's CNF clauses into gini's literal space.
//
// Load returns an error if instance still carries unexpanded cardinality
// or weight constraints: gini only understands plain CNF, so
// encoder.ExpandLimits must run first.
func (a *Adapter) Load(instance *cnf.Instance) error {
	if len(instance.Cardinalities) > 0 || len(instance.Weights) > 0 {
		return fmt.Errorf("satadapter: instance has %d unexpanded cardinality and %d unexpanded weight constraints; call encoder.ExpandLimits first", len(instance.Cardinalities), len(instance.Weights))
	}

	g := gini.New()
	for _, c := range instance.Clauses {
		for _, lit := range c {
			g.Add(dimacsLit(lit))
		}
		g.Add(0)
	}

	a.g = g
	a.maxVar = instance.Vars.Count()
	return nil
}

// Solve runs gini on a worker goroutine so it can answer to whichever
// comes first: gini deciding the instance, ctx being canceled, or
// Interrupter().Interrupt being called from elsewhere. Both of the latter
// two stop gini the same way, by calling its Stop method from outside the
// solving goroutine; gini's own doc promises that is safe.
func (a *Adapter) Solve(ctx context.Context) (cnf.Result, error) {
	if a.g == nil {
		return cnf.Result{}, fmt.Errorf("satadapter: Solve called before Load")
	}

	done := make(chan int, 1)
	go func() {
		done <- a.g.Solve()
	}()

	var code int
	select {
	case code = <-done:
	case <-ctx.Done():
		a.g.Stop()
		code = <-done
	}

	switch code {
	case 1:
		return cnf.Result{Outcome: cnf.Sat, Assignment: a.readAssignment()}, nil
	case -1:
		return cnf.Result{Outcome: cnf.Unsat}, nil
	default:
		return cnf.Result{Outcome: cnf.Interrupted}, nil
	}
}

func (a *Adapter) readAssignment() *cnf.Assignment {
	assignment := cnf.NewAssignment()
	for v := cnf.Var(1); v <= a.maxVar; v++ {
		state := cnf.False
		if a.g.Value(dimacsLit(cnf.PosLit(v))) {
			state = cnf.True
		}
		assignment.Set(v, state)
	}
	return assignment
}

// Interrupter returns a handle that calls Stop on the loaded gini
// instance. It is nil-safe: requesting it before Load, or calling
// Interrupt after Solve has already returned, is a no-op.
func (a *Adapter) Interrupter() cnf.Interrupter {
	return interrupter{g: a.g}
}

type interrupter struct {
	g *gini.Gini
}

func (i interrupter) Interrupt() {
	if i.g != nil {
		i.g.Stop()
	}
}

// dimacsLit converts a cnf.Lit, itself a signed DIMACS-style integer,
// into gini's z.Lit via gini's own DIMACS constructor.
func dimacsLit(lit cnf.Lit) z.Lit {
	return z.Dimacs2Lit(int(lit))
}
