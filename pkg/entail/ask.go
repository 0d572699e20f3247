package entail

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/cognicore/entail/pkg/entail/cnf"
	"github.com/cognicore/entail/pkg/entail/expr"
	"github.com/cognicore/entail/pkg/entail/internalerr"
	"github.com/cognicore/entail/pkg/entail/prop"
	"github.com/cognicore/entail/pkg/entail/sat"
	"github.com/cognicore/entail/pkg/entail/ternary"
)

// Verdict reports a resolved query together with the path that decided it.
// Method is one of "lookup", "tautology", "handler", "satask".
type Verdict struct {
	Value  ternary.Value
	Method string
	Detail string // for lookups, the deciding fact
}

// Ask resolves whether proposition holds under the given assumptions plus
// the engine's ambient context. The answer is three-valued; Unknown means
// the knowledge at hand does not decide the question either way. Errors
// are reserved for invalid input, assumptions that contradict the
// knowledge base, and infrastructure failures.
//
// A non-applied proposition is answered as a three-valued tautology check
// of the whole formula. Resolved answers are memoized per engine.
func (e *Engine) Ask(ctx context.Context, proposition prop.Prop, assumptions ...prop.Prop) (ternary.Value, error) {
	if err := validate(proposition); err != nil {
		return ternary.Unknown, err
	}
	for _, a := range assumptions {
		if err := validate(a); err != nil {
			return ternary.Unknown, err
		}
	}
	key := e.answerKey(proposition, assumptions)
	if v, ok := e.answers.Get(key); ok {
		return v, nil
	}
	verdict, err := e.resolve(ctx, proposition, assumptions)
	if err != nil {
		return ternary.Unknown, err
	}
	e.answers.Add(key, verdict.Value)
	return verdict.Value, nil
}

// Inspect resolves like Ask but bypasses the answer cache and reports
// which path decided the query
func (e *Engine) Inspect(ctx context.Context, proposition prop.Prop, assumptions ...prop.Prop) (Verdict, error) {
	if err := validate(proposition); err != nil {
		return Verdict{}, err
	}
	for _, a := range assumptions {
		if err := validate(a); err != nil {
			return Verdict{}, err
		}
	}
	return e.resolve(ctx, proposition, assumptions)
}

// validate rejects inputs that cannot carry a truth value on their own
func validate(p prop.Prop) error {
	switch p.(type) {
	case nil:
		return fmt.Errorf("nil proposition: %w", internalerr.ErrInvalidInput)
	case *prop.Predicate:
		return fmt.Errorf("bare predicate %s needs arguments: %w", p, internalerr.ErrInvalidInput)
	}
	return nil
}

func (e *Engine) resolve(ctx context.Context, proposition prop.Prop, assumptions []prop.Prop) (Verdict, error) {
	compiled, err := e.Compiled(ctx)
	if err != nil {
		return Verdict{}, err
	}

	pred, args := e.split(proposition)
	queryKey := pred.Name()

	// Local facts: per-query assumptions plus the ambient context,
	// projected onto the query's argument expressions.
	local := cnf.FromProps(assumptions...)
	for _, p := range e.context.All() {
		local.ExtendProp(p)
	}
	facts := extractAllFacts(local, args)

	if facts.Len() > 0 {
		st, err := e.oracle.Satisfiable(ctx, cnf.Encode(compiled.CNF, facts).Clauses)
		if err != nil {
			return Verdict{}, fmt.Errorf("consistency check: %w", err)
		}
		if st == sat.Unsat {
			return Verdict{}, fmt.Errorf("assumptions contradict the knowledge base: %w", internalerr.ErrInconsistent)
		}
	}

	// Table lookup over single-literal facts; the first hit wins. A key
	// missing from the table, registered after compilation, simply never
	// hits and falls through to the slower paths.
	for _, cl := range facts.Clauses() {
		if len(cl) != 1 {
			continue
		}
		f := cl[0]
		if !f.Negated {
			if compiled.Implies(f.Key, cnf.Literal{Key: queryKey}) {
				return Verdict{Value: ternary.True, Method: "lookup", Detail: f.Key + " implies " + queryKey}, nil
			}
			if compiled.Implies(f.Key, cnf.Literal{Key: queryKey, Negated: true}) {
				return Verdict{Value: ternary.False, Method: "lookup", Detail: f.Key + " implies ~" + queryKey}, nil
			}
			continue
		}
		// A refuted fact denies every key that would force it.
		if compiled.Implies(queryKey, cnf.Literal{Key: f.Key}) {
			return Verdict{Value: ternary.False, Method: "lookup", Detail: queryKey + " implies " + f.Key + ", known false"}, nil
		}
	}

	// Structural evaluation: wrapped Boolean propositions evaluate as
	// three-valued tautologies, everything else goes through handlers.
	assumed := conj(assumptions)
	if wrapped, ok := wrappedProp(args); ok && pred == e.keys.IsTrue {
		v, err := e.evalProp(ctx, wrapped, assumptions)
		if err != nil {
			return Verdict{}, err
		}
		if v.Known() {
			return Verdict{Value: v, Method: "tautology"}, nil
		}
	} else {
		for _, h := range pred.Handlers() {
			if v := h.Evaluate(args, assumed); v.Known() {
				return Verdict{Value: v, Method: "handler"}, nil
			}
		}
	}

	v, err := e.satask(ctx, proposition, assumed, e.context)
	if err != nil {
		return Verdict{}, err
	}
	return Verdict{Value: v, Method: "satask"}, nil
}

// split breaks a query into its predicate and argument expressions,
// wrapping non-applied propositions as is_true of the whole formula
func (e *Engine) split(p prop.Prop) (*prop.Predicate, []expr.Expr) {
	if ap, ok := p.(*prop.Applied); ok {
		return ap.Pred, ap.Args
	}
	return e.keys.IsTrue, []expr.Expr{propArg{p: p}}
}

// propArg lets a Boolean proposition stand where an argument expression is
// expected, backing the is_true wrapping of non-applied queries
type propArg struct {
	p prop.Prop
}

func (a propArg) Key() string { return "bool:" + prop.Canonical(a.p) }

// wrappedProp unwraps the sole argument of an is_true application when it
// is a wrapped proposition rather than a real expression
func wrappedProp(args []expr.Expr) (prop.Prop, bool) {
	if len(args) != 1 {
		return nil, false
	}
	w, ok := args[0].(propArg)
	if !ok {
		return nil, false
	}
	return w.p, true
}

// evalProp evaluates a Boolean combination three-valuedly, resolving each
// applied predicate leaf with a nested Ask under the same assumptions
func (e *Engine) evalProp(ctx context.Context, p prop.Prop, assumptions []prop.Prop) (ternary.Value, error) {
	switch v := p.(type) {
	case prop.Bool:
		return ternary.FromBool(bool(v)), nil
	case *prop.Applied:
		return e.Ask(ctx, v, assumptions...)
	case *prop.Not:
		in, err := e.evalProp(ctx, v.X, assumptions)
		if err != nil {
			return ternary.Unknown, err
		}
		return in.Not(), nil
	case *prop.And:
		vs, err := e.evalAll(ctx, v.Args, assumptions)
		if err != nil {
			return ternary.Unknown, err
		}
		return ternary.And(vs...), nil
	case *prop.Or:
		vs, err := e.evalAll(ctx, v.Args, assumptions)
		if err != nil {
			return ternary.Unknown, err
		}
		return ternary.Or(vs...), nil
	case *prop.Implies:
		return e.evalProp(ctx, &prop.Or{Args: []prop.Prop{&prop.Not{X: v.If}, v.Then}}, assumptions)
	case *prop.Equivalent:
		vs, err := e.evalAll(ctx, v.Args, assumptions)
		if err != nil {
			return ternary.Unknown, err
		}
		return equivalence(vs), nil
	}
	return ternary.Unknown, nil
}

func (e *Engine) evalAll(ctx context.Context, args []prop.Prop, assumptions []prop.Prop) ([]ternary.Value, error) {
	out := make([]ternary.Value, len(args))
	for i, a := range args {
		v, err := e.evalProp(ctx, a, assumptions)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// equivalence is the n-ary biconditional: True when all members definitely
// agree, False when two definite members disagree, Unknown otherwise
func equivalence(vs []ternary.Value) ternary.Value {
	sawTrue, sawFalse, sawUnknown := false, false, false
	for _, v := range vs {
		switch v {
		case ternary.True:
			sawTrue = true
		case ternary.False:
			sawFalse = true
		default:
			sawUnknown = true
		}
	}
	if sawTrue && sawFalse {
		return ternary.False
	}
	if sawUnknown {
		return ternary.Unknown
	}
	return ternary.True
}

// conj folds per-query assumptions into a single proposition
func conj(ps []prop.Prop) prop.Prop {
	switch len(ps) {
	case 0:
		return prop.True
	case 1:
		return ps[0]
	}
	return &prop.And{Args: ps}
}

// answerKey builds the memo key for a resolved query. Context and registry
// revisions are part of the key, so mutating either leaves stale answers
// behind instead of serving them.
func (e *Engine) answerKey(p prop.Prop, assumptions []prop.Prop) string {
	parts := make([]string, len(assumptions))
	for i, a := range assumptions {
		parts[i] = prop.Canonical(a)
	}
	sort.Strings(parts)
	var b strings.Builder
	b.WriteString(prop.Canonical(p))
	b.WriteByte(0)
	b.WriteString(strings.Join(parts, "\x01"))
	b.WriteByte(0)
	b.WriteString(strconv.FormatUint(e.context.Rev(), 10))
	b.WriteByte(0)
	b.WriteString(strconv.FormatUint(e.registry.Rev(), 10))
	return b.String()
}
