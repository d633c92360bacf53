// Package encoder turns a World, a platform Catalog (via EncodingVars and
// its EncodingDag) into a cnf.Instance: the size-implication chain, the
// incomparable-pair soundness disjunctions, terrain-support diffusion,
// platform-terrain binding, and optional cardinality/weight limits.
package encoder
