package entail

import (
	"context"
	"sort"

	"github.com/cognicore/entail/pkg/entail/assume"
	"github.com/cognicore/entail/pkg/entail/cnf"
	"github.com/cognicore/entail/pkg/entail/kb"
	"github.com/cognicore/entail/pkg/entail/prop"
	"github.com/cognicore/entail/pkg/entail/ternary"
)

// defaultSatAsk is the built-in general fallback. It instantiates every
// compiled axiom clause for each argument expression the query or the
// assumptions mention, then runs the two-call entailment check at the
// applied level. Expression structure stays opaque to it: the assumptions
// decide everything it can know about an argument.
func (e *Engine) defaultSatAsk(ctx context.Context, proposition, assumptions prop.Prop, global *assume.Context) (ternary.Value, error) {
	compiled, err := e.Compiled(ctx)
	if err != nil {
		return ternary.Unknown, err
	}

	all := append([]prop.Prop{assumptions}, global.All()...)
	assumed := conj(all)

	seen := make(map[string]struct{})
	collectArgs(cnf.FromProp(proposition), seen)
	collectArgs(cnf.FromProps(all...), seen)
	args := make([]string, 0, len(seen))
	for a := range seen {
		args = append(args, a)
	}
	sort.Strings(args)

	instantiated := cnf.New()
	for _, arg := range args {
		for _, cl := range compiled.CNF.Clauses() {
			lits := make([]cnf.Literal, len(cl))
			for i, l := range cl {
				lits[i] = cnf.Literal{Key: l.Key, Arg: arg, Negated: l.Negated}
			}
			instantiated.AddClause(lits...)
		}
	}

	return kb.Infer(ctx, proposition, assumed, instantiated, e.oracle)
}

func collectArgs(c *cnf.CNF, into map[string]struct{}) {
	for _, cl := range c.Clauses() {
		for _, l := range cl {
			if l.Arg != "" {
				into[l.Arg] = struct{}{}
			}
		}
	}
}
