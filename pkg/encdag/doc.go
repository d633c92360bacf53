// Package encdag builds the world-independent partial-order DAG over
// footprint dimensions and offset points that the clause generator walks
// to emit the size-implication chain and soundness disjunctions. It
// stores the DAG's transitive reduction and transitive closure, both
// indexed in the DAG's topological order, on top of
// github.com/katalvlaran/lvlath for graph storage and topological sort.
package encdag
