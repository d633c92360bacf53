// Package cnf defines the SAT/PB instance representation platsat's
// encoder emits into, and the solver-adapter boundary contract both sides
// of that boundary agree on. The actual solver is an external
// collaborator; this package only fixes the shared vocabulary (variables,
// literals, clauses, cardinality constraints, assignments).
package cnf
