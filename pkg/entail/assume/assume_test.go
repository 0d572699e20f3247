package assume

import (
	"errors"
	"testing"

	"github.com/cognicore/entail/pkg/entail/expr"
	"github.com/cognicore/entail/pkg/entail/internalerr"
	"github.com/cognicore/entail/pkg/entail/prop"
	"github.com/cognicore/entail/pkg/entail/ternary"
)

type nopHandler struct {
	id int
}

func (nopHandler) Evaluate(args []expr.Expr, assumptions prop.Prop) ternary.Value {
	return ternary.Unknown
}

func TestRegistryIdentity(t *testing.T) {
	r := NewRegistry()
	a := r.Get("even")
	b := r.Get("even")
	if a != b {
		t.Fatal("repeated Get for the same name must return the identical object")
	}
	if a.Name() != "even" {
		t.Errorf("name = %q", a.Name())
	}
	if c := r.Get("odd"); c == a {
		t.Error("different names must get different predicates")
	}
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Lookup("even"); ok {
		t.Error("Lookup should not create predicates")
	}
	p := r.Get("even")
	if got, ok := r.Lookup("even"); !ok || got != p {
		t.Error("Lookup should find the created predicate")
	}
}

func TestRegisterHandlerAutoVivifies(t *testing.T) {
	r := NewRegistry()
	h := nopHandler{id: 1}
	p := r.RegisterHandler("shiny", h)
	if p == nil || p.Name() != "shiny" {
		t.Fatal("RegisterHandler should create the predicate")
	}
	if same := r.Get("shiny"); same != p {
		t.Error("auto-vivified predicate should be the cached singleton")
	}
	if len(p.Handlers()) != 1 {
		t.Errorf("handler count = %d, want 1", len(p.Handlers()))
	}
}

func TestRemoveHandlerNotFound(t *testing.T) {
	r := NewRegistry()
	h := nopHandler{id: 1}
	if err := r.RemoveHandler("missing", h); !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("removing from unknown predicate: err = %v, want ErrNotFound", err)
	}
	r.Get("even")
	if err := r.RemoveHandler("even", h); !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("removing unattached handler: err = %v, want ErrNotFound", err)
	}
	r.RegisterHandler("even", h)
	if err := r.RemoveHandler("even", h); err != nil {
		t.Errorf("removing attached handler: err = %v", err)
	}
}

func TestKeysBoundToOneRegistry(t *testing.T) {
	r := NewRegistry()
	k := NewKeys(r)
	if k.Even != r.Get(KeyEven) {
		t.Error("Keys.Even should be the registry singleton")
	}
	if k.PositiveDefinite.Name() != "positive_definite" {
		t.Errorf("PositiveDefinite name = %q", k.PositiveDefinite.Name())
	}
	all := k.All()
	if len(all) != 42 {
		t.Fatalf("vocabulary size = %d, want 42", len(all))
	}
	seen := make(map[string]bool, len(all))
	for _, p := range all {
		if p == nil {
			t.Fatal("nil predicate in vocabulary")
		}
		if seen[p.Name()] {
			t.Errorf("duplicate key %q", p.Name())
		}
		seen[p.Name()] = true
	}
}

func TestContextAddRemove(t *testing.T) {
	r := NewRegistry()
	k := NewKeys(r)
	x := expr.Symbol("x")

	c := NewContext()
	if c.Len() != 0 {
		t.Fatal("new context should be empty")
	}
	rev := c.Rev()
	c.Add(k.Even.Of(x), k.Positive.Of(x))
	if c.Len() != 2 || c.Rev() == rev {
		t.Fatal("Add should grow the context and bump the revision")
	}
	if !c.Remove(k.Even.Of(x)) {
		t.Error("Remove should find a structurally equal assumption")
	}
	if c.Remove(k.Even.Of(x)) {
		t.Error("Remove should report false when nothing matches")
	}
	got := c.All()
	if len(got) != 1 || !prop.Equal(got[0], k.Positive.Of(x)) {
		t.Errorf("remaining context = %v", got)
	}
	c.Clear()
	if c.Len() != 0 {
		t.Error("Clear should empty the context")
	}
}

func TestContextAllIsACopy(t *testing.T) {
	r := NewRegistry()
	k := NewKeys(r)
	c := NewContext(k.Even.Of(expr.Symbol("x")))
	got := c.All()
	got[0] = nil
	if c.All()[0] == nil {
		t.Error("mutating the returned slice must not affect the context")
	}
}

func TestDefaultRegistrySingleton(t *testing.T) {
	if DefaultRegistry() != DefaultRegistry() {
		t.Error("default registry should be a process singleton")
	}
	if DefaultKeys() != DefaultKeys() {
		t.Error("default keys should be a process singleton")
	}
	if Global() != Global() {
		t.Error("global context should be a process singleton")
	}
}
