package handlers

import (
	"testing"

	"github.com/cognicore/entail/pkg/entail/assume"
	"github.com/cognicore/entail/pkg/entail/expr"
	"github.com/cognicore/entail/pkg/entail/ternary"
)

func TestNumericParity(t *testing.T) {
	even := NewNumeric(assume.KeyEven)
	odd := NewNumeric(assume.KeyOdd)

	tests := []struct {
		n         int64
		even, odd ternary.Value
	}{
		{0, ternary.True, ternary.False},
		{1, ternary.False, ternary.True},
		{2, ternary.True, ternary.False},
		{-3, ternary.False, ternary.True},
		{-4, ternary.True, ternary.False},
	}
	for _, tt := range tests {
		if got := even.Evaluate([]expr.Expr{expr.Int(tt.n)}, nil); got != tt.even {
			t.Errorf("even(%d) = %v, want %v", tt.n, got, tt.even)
		}
		if got := odd.Evaluate([]expr.Expr{expr.Int(tt.n)}, nil); got != tt.odd {
			t.Errorf("odd(%d) = %v, want %v", tt.n, got, tt.odd)
		}
	}
}

func TestNumericPrimality(t *testing.T) {
	prime := NewNumeric(assume.KeyPrime)
	composite := NewNumeric(assume.KeyComposite)

	tests := []struct {
		n                int64
		prime, composite ternary.Value
	}{
		{-7, ternary.False, ternary.False},
		{0, ternary.False, ternary.False},
		{1, ternary.False, ternary.False},
		{2, ternary.True, ternary.False},
		{3, ternary.True, ternary.False},
		{4, ternary.False, ternary.True},
		{17, ternary.True, ternary.False},
		{25, ternary.False, ternary.True},
		{97, ternary.True, ternary.False},
	}
	for _, tt := range tests {
		if got := prime.Evaluate([]expr.Expr{expr.Int(tt.n)}, nil); got != tt.prime {
			t.Errorf("prime(%d) = %v, want %v", tt.n, got, tt.prime)
		}
		if got := composite.Evaluate([]expr.Expr{expr.Int(tt.n)}, nil); got != tt.composite {
			t.Errorf("composite(%d) = %v, want %v", tt.n, got, tt.composite)
		}
	}
}

func TestNumericSign(t *testing.T) {
	tests := []struct {
		key  string
		n    int64
		want ternary.Value
	}{
		{assume.KeyPositive, 5, ternary.True},
		{assume.KeyPositive, 0, ternary.False},
		{assume.KeyPositive, -5, ternary.False},
		{assume.KeyNegative, -5, ternary.True},
		{assume.KeyNegative, 0, ternary.False},
		{assume.KeyZero, 0, ternary.True},
		{assume.KeyZero, 3, ternary.False},
		{assume.KeyNonzero, 3, ternary.True},
		{assume.KeyNonzero, 0, ternary.False},
		{assume.KeyNonpositive, 0, ternary.True},
		{assume.KeyNonpositive, 1, ternary.False},
		{assume.KeyNonnegative, 0, ternary.True},
		{assume.KeyNonnegative, -1, ternary.False},
	}
	for _, tt := range tests {
		h := NewNumeric(tt.key)
		if got := h.Evaluate([]expr.Expr{expr.Int(tt.n)}, nil); got != tt.want {
			t.Errorf("%s(%d) = %v, want %v", tt.key, tt.n, got, tt.want)
		}
	}
}

func TestNumericKinds(t *testing.T) {
	arg := []expr.Expr{expr.Int(5)}

	for _, key := range []string{
		assume.KeyInteger, assume.KeyRational, assume.KeyReal,
		assume.KeyComplex, assume.KeyFinite, assume.KeyAlgebraic,
	} {
		if got := NewNumeric(key).Evaluate(arg, nil); got != ternary.True {
			t.Errorf("%s(5) = %v, want true", key, got)
		}
	}
	for _, key := range []string{
		assume.KeyIrrational, assume.KeyImaginary, assume.KeyInfinite,
		assume.KeyTranscendental,
	} {
		if got := NewNumeric(key).Evaluate(arg, nil); got != ternary.False {
			t.Errorf("%s(5) = %v, want false", key, got)
		}
	}
}

func TestNumericPassesOnSymbols(t *testing.T) {
	h := NewNumeric(assume.KeyEven)
	if got := h.Evaluate([]expr.Expr{expr.Symbol("x")}, nil); got != ternary.Unknown {
		t.Fatalf("even(x) = %v, want unknown", got)
	}
}

func TestNumericPassesOnArity(t *testing.T) {
	h := NewNumeric(assume.KeyEven)
	got := h.Evaluate([]expr.Expr{expr.Int(2), expr.Int(4)}, nil)
	if got != ternary.Unknown {
		t.Fatalf("even(2, 4) = %v, want unknown", got)
	}
}

func TestRegisterIdempotent(t *testing.T) {
	r := assume.NewRegistry()
	Register(r)
	Register(r)

	for _, key := range numericKeys {
		p, ok := r.Lookup(key)
		if !ok {
			t.Fatalf("predicate %q not registered", key)
		}
		if n := len(p.Handlers()); n != 1 {
			t.Errorf("predicate %q has %d handlers, want 1", key, n)
		}
	}
}
