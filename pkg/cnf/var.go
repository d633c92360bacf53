package cnf

import "errors"

// ErrAllocatorExhausted is returned when a VarAllocator cannot produce any
// further variable ids.
var ErrAllocatorExhausted = errors.New("cnf: variable allocator exhausted")

// Var is a Boolean variable identifier. The zero value is never a valid
// allocated variable.
type Var uint32

// Lit is a signed literal over a Var: positive for the variable itself,
// negative for its negation. Lit 0 is never valid.
type Lit int32

// PosLit returns the positive literal of v.
func PosLit(v Var) Lit {
	return Lit(v)
}

// NegLit returns the negative literal of v.
func NegLit(v Var) Lit {
	return -Lit(v)
}

// Var returns the variable this literal refers to.
func (l Lit) Var() Var {
	if l < 0 {
		return Var(-l)
	}
	return Var(l)
}

// Negated reports whether l is the negative literal of its variable.
func (l Lit) Negated() bool {
	return l < 0
}

// Negate returns the complementary literal.
func (l Lit) Negate() Lit {
	return -l
}

// VarAllocator hands out fresh, strictly increasing Var ids, optionally
// capped at a maximum. It is the "var_source" the variable index and the
// cardinality/PB encoder both draw from, so that every Var in an Instance
// lives in one shared namespace.
type VarAllocator struct {
	next Var
	max  Var // 0 means unbounded
}

// NewVarAllocator builds an allocator. A max of 0 means unbounded.
func NewVarAllocator(max Var) *VarAllocator {
	return &VarAllocator{next: 1, max: max}
}

// New allocates and returns the next Var, or ErrAllocatorExhausted if the
// allocator has reached its configured maximum.
func (a *VarAllocator) New() (Var, error) {
	if a.max != 0 && a.next > a.max {
		return 0, ErrAllocatorExhausted
	}
	v := a.next
	a.next++
	return v, nil
}

// Count returns the number of variables allocated so far.
func (a *VarAllocator) Count() Var {
	return a.next - 1
}
