package cnf

import "testing"

func TestVarAllocatorExhaustion(t *testing.T) {
	a := NewVarAllocator(2)

	v1, err := a.New()
	if err != nil || v1 != 1 {
		t.Fatalf("New() = %v, %v, want 1, nil", v1, err)
	}
	v2, err := a.New()
	if err != nil || v2 != 2 {
		t.Fatalf("New() = %v, %v, want 2, nil", v2, err)
	}
	if _, err := a.New(); err != ErrAllocatorExhausted {
		t.Fatalf("New() after max should return ErrAllocatorExhausted, got %v", err)
	}
}

func TestLitNegation(t *testing.T) {
	v := Var(5)
	pos := PosLit(v)
	neg := NegLit(v)

	if pos.Var() != v || neg.Var() != v {
		t.Fatalf("Var() mismatch: %v, %v want %v", pos.Var(), neg.Var(), v)
	}
	if pos.Negated() || !neg.Negated() {
		t.Fatalf("Negated() mismatch: pos=%v neg=%v", pos.Negated(), neg.Negated())
	}
	if pos.Negate() != neg || neg.Negate() != pos {
		t.Fatal("Negate() should round-trip")
	}
}

func TestAssignmentLitTrue(t *testing.T) {
	a := NewAssignment()
	a.Set(1, True)
	a.Set(2, False)

	if !a.LitTrue(PosLit(1)) {
		t.Fatal("pos lit of True var should be true")
	}
	if a.LitTrue(NegLit(1)) {
		t.Fatal("neg lit of True var should be false")
	}
	if !a.LitTrue(NegLit(2)) {
		t.Fatal("neg lit of False var should be true")
	}
	if a.LitTrue(PosLit(3)) {
		t.Fatal("lit of Unknown var should be false")
	}
}

func TestImplicationClauseEmptyDisjunctsForcesUnit(t *testing.T) {
	in := NewInstance()
	a := Lit(1)
	in.AddImplicationClause(a, nil)

	if len(in.Clauses) != 1 || len(in.Clauses[0]) != 1 || in.Clauses[0][0] != a.Negate() {
		t.Fatalf("expected unit clause (~a), got %v", in.Clauses)
	}
}
