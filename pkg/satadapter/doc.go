// Package satadapter is a reference Solver implementation: it wires
// github.com/irifrance/gini behind pkg/cnf.Solver, translating the shared
// DIMACS-style Var/Lit encoding directly into gini's literal space and
// running Solve on a worker goroutine so it can honor both context
// cancellation and an Interrupter signaled from another goroutine.
//
// The core package never imports satadapter: pkg/cnf.Solver is the
// boundary, and this package is one concrete collaborator behind it, kept
// separate so the encoder and decoder stay solver-agnostic.
package satadapter
