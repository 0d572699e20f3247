// Package prop defines the proposition language the engine reasons over:
// named predicates, predicate applications, and the Boolean combinators
// joining them. Nodes are plain exported structs so other packages can
// type-switch over them, in the style of go/ast.
package prop

import (
	"sort"
	"strings"

	"github.com/cognicore/entail/pkg/entail/expr"
	"github.com/cognicore/entail/pkg/entail/ternary"
)

// Prop is a Boolean-valued proposition node. The set of implementations is
// closed; consumers may type-switch exhaustively.
type Prop interface {
	String() string
	prop()
}

// Handler evaluates an applied predicate structurally, from the shape of
// its arguments rather than from the knowledge base. Returning Unknown
// passes the question along. Handler failures are programmer errors and
// propagate as panics.
type Handler interface {
	Evaluate(args []expr.Expr, assumptions Prop) ternary.Value
}

// Predicate is an immutable named tag for a relation over expressions.
// Identity is by name: the registry guarantees one object per name for the
// process lifetime, so pointer comparison works after lookup. The handler
// list is append-only and callers serialize access to it.
//
// A bare Predicate is a valid atom inside knowledge-base formulas but not
// a valid query proposition; queries require an application.
type Predicate struct {
	name     string
	handlers []Handler
}

// NewPredicate constructs a predicate tag. Use a registry to get shared
// singletons; direct construction is for tests and registry internals.
func NewPredicate(name string) *Predicate {
	return &Predicate{name: name}
}

// Name returns the predicate's identity key
func (p *Predicate) Name() string { return p.name }

// Of applies the predicate to argument expressions: Even.Of(x)
func (p *Predicate) Of(args ...expr.Expr) *Applied {
	return &Applied{Pred: p, Args: args}
}

// AddHandler appends a structural-evaluation handler
func (p *Predicate) AddHandler(h Handler) {
	p.handlers = append(p.handlers, h)
}

// RemoveHandler detaches a previously added handler, reporting whether it
// was present. Comparison is interface equality.
func (p *Predicate) RemoveHandler(h Handler) bool {
	for i, have := range p.handlers {
		if have == h {
			p.handlers = append(p.handlers[:i], p.handlers[i+1:]...)
			return true
		}
	}
	return false
}

// Handlers returns the registered handlers in registration order.
// The returned slice is shared; callers must not mutate it.
func (p *Predicate) Handlers() []Handler { return p.handlers }

func (p *Predicate) String() string { return p.name }
func (p *Predicate) prop()          {}

// Applied is a predicate bound to concrete arguments, e.g. even(x).
// Equality is by predicate name and argument keys.
type Applied struct {
	Pred *Predicate
	Args []expr.Expr
}

// ArgKey returns the canonical joined key of the arguments
func (a *Applied) ArgKey() string {
	keys := make([]string, len(a.Args))
	for i, arg := range a.Args {
		keys[i] = arg.Key()
	}
	return strings.Join(keys, ",")
}

func (a *Applied) String() string {
	return a.Pred.Name() + "(" + a.ArgKey() + ")"
}
func (a *Applied) prop() {}

// Bool is a constant proposition
type Bool bool

const (
	True  Bool = true
	False Bool = false
)

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}
func (Bool) prop() {}

// Not negates a proposition
type Not struct {
	X Prop
}

func (n *Not) String() string { return "~" + n.X.String() }
func (n *Not) prop()          {}

// And is an n-ary conjunction
type And struct {
	Args []Prop
}

func (a *And) String() string { return join(a.Args, " & ") }
func (a *And) prop()          {}

// Or is an n-ary disjunction
type Or struct {
	Args []Prop
}

func (o *Or) String() string { return join(o.Args, " | ") }
func (o *Or) prop()          {}

// Implies is material implication: If entails Then
type Implies struct {
	If, Then Prop
}

func (im *Implies) String() string { return "(" + im.If.String() + " -> " + im.Then.String() + ")" }
func (im *Implies) prop()          {}

// Equivalent asserts all members share one truth value
type Equivalent struct {
	Args []Prop
}

func (e *Equivalent) String() string { return join(e.Args, " <-> ") }
func (e *Equivalent) prop()          {}

// Equal reports structural equality of two propositions. And/Or/Equivalent
// argument order is normalized, so even(x) & odd(y) equals odd(y) & even(x).
func Equal(a, b Prop) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return Canonical(a) == Canonical(b)
}

// Canonical renders a proposition with commutative arguments sorted, giving
// a stable key for maps and caches
func Canonical(p Prop) string {
	switch v := p.(type) {
	case *Not:
		return "~(" + Canonical(v.X) + ")"
	case *And:
		return "(" + strings.Join(sortedCanon(v.Args), " & ") + ")"
	case *Or:
		return "(" + strings.Join(sortedCanon(v.Args), " | ") + ")"
	case *Equivalent:
		return "(" + strings.Join(sortedCanon(v.Args), " <-> ") + ")"
	case *Implies:
		return "(" + Canonical(v.If) + " -> " + Canonical(v.Then) + ")"
	case nil:
		return ""
	}
	return p.String()
}

func sortedCanon(args []Prop) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = Canonical(a)
	}
	sort.Strings(out)
	return out
}

func join(args []Prop, sep string) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return "(" + strings.Join(parts, sep) + ")"
}
