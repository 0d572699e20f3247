package prop

import (
	"testing"

	"github.com/cognicore/entail/pkg/entail/expr"
	"github.com/cognicore/entail/pkg/entail/ternary"
)

type constHandler struct {
	v ternary.Value
}

func (h constHandler) Evaluate(args []expr.Expr, assumptions Prop) ternary.Value {
	return h.v
}

func TestPredicateOf(t *testing.T) {
	even := NewPredicate("even")
	ap := even.Of(expr.Symbol("x"))
	if ap.String() != "even(x)" {
		t.Errorf("applied string = %q, want even(x)", ap.String())
	}
	if ap.Pred != even {
		t.Error("application should keep the predicate pointer")
	}
}

func TestAppliedArgKey(t *testing.T) {
	p := NewPredicate("between")
	ap := p.Of(expr.Symbol("x"), expr.Int(1), expr.Int(10))
	if ap.ArgKey() != "x,1,10" {
		t.Errorf("ArgKey = %q, want x,1,10", ap.ArgKey())
	}
}

func TestHandlerAddRemove(t *testing.T) {
	p := NewPredicate("even")
	h1 := constHandler{v: ternary.True}
	h2 := constHandler{v: ternary.False}
	p.AddHandler(h1)
	p.AddHandler(h2)
	if len(p.Handlers()) != 2 {
		t.Fatalf("handler count = %d, want 2", len(p.Handlers()))
	}
	if !p.RemoveHandler(h1) {
		t.Error("removing a registered handler should report true")
	}
	if p.RemoveHandler(h1) {
		t.Error("removing twice should report false")
	}
	if len(p.Handlers()) != 1 || p.Handlers()[0] != Handler(h2) {
		t.Error("remaining handler should be h2")
	}
}

func TestStringForms(t *testing.T) {
	even := NewPredicate("even")
	odd := NewPredicate("odd")
	x := expr.Symbol("x")
	cases := []struct {
		p    Prop
		want string
	}{
		{even.Of(x), "even(x)"},
		{&Not{X: even.Of(x)}, "~even(x)"},
		{&And{Args: []Prop{even.Of(x), odd.Of(x)}}, "(even(x) & odd(x))"},
		{&Or{Args: []Prop{even.Of(x), odd.Of(x)}}, "(even(x) | odd(x))"},
		{&Implies{If: even, Then: odd}, "(even -> odd)"},
		{&Equivalent{Args: []Prop{even, odd}}, "(even <-> odd)"},
		{True, "true"},
		{False, "false"},
		{&Not{X: &And{Args: []Prop{even, odd}}}, "~(even & odd)"},
	}
	for _, c := range cases {
		if got := c.p.String(); got != c.want {
			t.Errorf("String = %q, want %q", got, c.want)
		}
	}
}

func TestEqualNormalizesCommutativeOrder(t *testing.T) {
	even := NewPredicate("even")
	pos := NewPredicate("positive")
	x, y := expr.Symbol("x"), expr.Symbol("y")

	a := &And{Args: []Prop{even.Of(x), pos.Of(y)}}
	b := &And{Args: []Prop{pos.Of(y), even.Of(x)}}
	if !Equal(a, b) {
		t.Error("conjunction order should not affect equality")
	}

	c := &Implies{If: even.Of(x), Then: pos.Of(y)}
	d := &Implies{If: pos.Of(y), Then: even.Of(x)}
	if Equal(c, d) {
		t.Error("implication direction matters")
	}

	if !Equal(nil, nil) || Equal(a, nil) {
		t.Error("nil handling in Equal")
	}
}
