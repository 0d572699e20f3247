package entail

import (
	"github.com/cognicore/entail/pkg/entail/cnf"
	"github.com/cognicore/entail/pkg/entail/expr"
	"github.com/cognicore/entail/pkg/entail/prop"
)

// ExtractFacts rewrites a Boolean combination of applied predicates into
// the facts it states about target alone, as bare predicates. Returns nil
// when the combination says nothing usable about target.
//
// Negations over And and Or are pushed inward first. A conjunction keeps
// whichever children survive extraction; every other combinator only
// survives when all of its children do, since dropping a disjunct or an
// implication side would strengthen the claim. When target is a relational
// comparison its mirror-image form is tried after the direct form fails,
// one reversal only.
func ExtractFacts(p prop.Prop, target expr.Expr) prop.Prop {
	if res := extractFacts(p, target); res != nil {
		return res
	}
	if rel, ok := target.(expr.Relational); ok {
		return extractFacts(p, rel.Reversed())
	}
	return nil
}

func extractFacts(p prop.Prop, target expr.Expr) prop.Prop {
	switch v := p.(type) {
	case *prop.Applied:
		if len(v.Args) == 1 && expr.Equal(v.Args[0], target) {
			return v.Pred
		}
		return nil
	case *prop.Not:
		switch inner := v.X.(type) {
		case *prop.And:
			return extractFacts(&prop.Or{Args: negateAll(inner.Args)}, target)
		case *prop.Or:
			return extractFacts(&prop.And{Args: negateAll(inner.Args)}, target)
		}
		res := extractFacts(v.X, target)
		if res == nil {
			return nil
		}
		return &prop.Not{X: res}
	case *prop.And:
		kept := make([]prop.Prop, 0, len(v.Args))
		for _, a := range v.Args {
			if res := extractFacts(a, target); res != nil {
				kept = append(kept, res)
			}
		}
		switch len(kept) {
		case 0:
			return nil
		case 1:
			return kept[0]
		}
		return &prop.And{Args: kept}
	case *prop.Or:
		kept, ok := extractAll(v.Args, target)
		if !ok {
			return nil
		}
		return &prop.Or{Args: kept}
	case *prop.Implies:
		kept, ok := extractAll([]prop.Prop{v.If, v.Then}, target)
		if !ok {
			return nil
		}
		return &prop.Implies{If: kept[0], Then: kept[1]}
	case *prop.Equivalent:
		kept, ok := extractAll(v.Args, target)
		if !ok {
			return nil
		}
		return &prop.Equivalent{Args: kept}
	}
	return nil
}

// extractAll extracts from every child, failing as soon as one child has
// nothing to say about target
func extractAll(args []prop.Prop, target expr.Expr) ([]prop.Prop, bool) {
	out := make([]prop.Prop, len(args))
	for i, a := range args {
		res := extractFacts(a, target)
		if res == nil {
			return nil, false
		}
		out[i] = res
	}
	return out, true
}

func negateAll(args []prop.Prop) []prop.Prop {
	out := make([]prop.Prop, len(args))
	for i, a := range args {
		out[i] = &prop.Not{X: a}
	}
	return out
}

// extractAllFacts projects a clause set onto the target expressions,
// producing key-level clauses for the resolver's table lookup and
// consistency check. A clause survives only when every literal in it is an
// applied predicate over one of the targets; a clause with a stray literal
// weakened by projection would claim more than was assumed. A single
// relational target also matches through its mirror-image form.
func extractAllFacts(c *cnf.CNF, targets []expr.Expr) *cnf.CNF {
	keys := make(map[string]struct{}, len(targets)+1)
	for _, t := range targets {
		keys[t.Key()] = struct{}{}
	}
	if len(targets) == 1 {
		if rel, ok := targets[0].(expr.Relational); ok {
			keys[rel.Reversed().Key()] = struct{}{}
		}
	}

	out := cnf.New()
	for _, cl := range c.Clauses() {
		kept := make([]cnf.Literal, 0, len(cl))
		ok := true
		for _, l := range cl {
			if l.Arg == "" {
				ok = false
				break
			}
			if _, match := keys[l.Arg]; !match {
				ok = false
				break
			}
			kept = append(kept, cnf.Literal{Key: l.Key, Negated: l.Negated})
		}
		if ok && len(kept) > 0 {
			out.AddClause(kept...)
		}
	}
	return out
}
