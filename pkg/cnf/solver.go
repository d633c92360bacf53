package cnf

import "context"

// Outcome is the result category of a solver run.
type Outcome int

const (
	// Sat means a satisfying Assignment was found.
	Sat Outcome = iota
	// Unsat means the instance has no satisfying assignment.
	Unsat
	// Interrupted means the solver was asked to stop before deciding.
	Interrupted
)

// Result bundles a solver run's Outcome with its Assignment, which is
// only meaningful when Outcome is Sat.
type Result struct {
	Outcome    Outcome
	Assignment *Assignment
}

// Interrupter lets a caller on a different goroutine than the one running
// Solve ask the solver to stop. Signaling a completed or never-started
// solve is a harmless no-op.
type Interrupter interface {
	Interrupt()
}

// Solver is the external SAT/PB solver boundary: the core emits an
// Instance, hands it to a Solver, and reads back a Result. The core makes
// no assumption about how long Solve blocks, only that it is safe to call
// Interrupt from another goroutine while Solve is running, and that Solve
// honors context cancellation as an alternate path to Interrupted.
type Solver interface {
	// Load accepts the instance to solve. It must be called before Solve.
	Load(instance *Instance) error

	// Solve blocks until a Result is ready, ctx is canceled, or
	// Interrupter.Interrupt is called from another goroutine. Errors are
	// opaque pass-through solver failures.
	Solve(ctx context.Context) (Result, error)

	// Interrupter returns a handle usable to cancel an in-flight Solve
	// from another goroutine.
	Interrupter() Interrupter
}
