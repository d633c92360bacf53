package cnf

// Clause is a disjunction of literals.
type Clause []Lit

// CardinalityConstraint bounds the number of true literals among Lits to
// at most Bound: an "at most k" constraint over a footprint's placement
// or auxiliary variables.
type CardinalityConstraint struct {
	Lits  []Lit
	Bound int
}

// WeightConstraint bounds a weighted sum of literals: sum(Weights[i] *
// (Lits[i] is true)) <= Bound. Used for a global weight budget across
// footprint types.
type WeightConstraint struct {
	Lits    []Lit
	Weights []int
	Bound   int
}

// Instance is the full SAT/PB problem the encoder builds: a CNF clause
// set plus optional cardinality/weight side constraints, all sharing one
// variable namespace via Vars.
type Instance struct {
	Vars          *VarAllocator
	Clauses       []Clause
	Cardinalities []CardinalityConstraint
	Weights       []WeightConstraint
}

// NewInstance builds an empty Instance backed by a fresh, unbounded
// VarAllocator.
func NewInstance() *Instance {
	return &Instance{Vars: NewVarAllocator(0)}
}

// AddClause appends a clause made of the given literals.
func (in *Instance) AddClause(lits ...Lit) {
	c := make(Clause, len(lits))
	copy(c, lits)
	in.Clauses = append(in.Clauses, c)
}

// AddUnit appends a unit clause forcing lit to be true.
func (in *Instance) AddUnit(lit Lit) {
	in.AddClause(lit)
}

// AddImplication appends the clause equivalent to "a implies b":
// (~a | b).
func (in *Instance) AddImplication(a, b Lit) {
	in.AddClause(a.Negate(), b)
}

// AddImplicationClause appends the clause equivalent to "a implies (b1 |
// b2 | ... )": (~a | b1 | b2 | ...). If disjuncts is empty, this reduces
// to the unit clause (~a), forcing a false.
func (in *Instance) AddImplicationClause(a Lit, disjuncts []Lit) {
	lits := make([]Lit, 0, len(disjuncts)+1)
	lits = append(lits, a.Negate())
	lits = append(lits, disjuncts...)
	in.AddClause(lits...)
}

// AddCardinalityAtMost records an "at most Bound of lits are true"
// constraint for later expansion into plain CNF by a cardinality encoder
// (see pkg/encoder's totalizer).
func (in *Instance) AddCardinalityAtMost(lits []Lit, bound int) {
	c := CardinalityConstraint{Lits: append([]Lit(nil), lits...), Bound: bound}
	in.Cardinalities = append(in.Cardinalities, c)
}

// AddWeightAtMost records a weighted-sum-at-most-Bound constraint.
func (in *Instance) AddWeightAtMost(lits []Lit, weights []int, bound int) {
	w := WeightConstraint{
		Lits:    append([]Lit(nil), lits...),
		Weights: append([]int(nil), weights...),
		Bound:   bound,
	}
	in.Weights = append(in.Weights, w)
}
