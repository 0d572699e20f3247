// Package gini adapts the gini solver as an alternate oracle. Unlike the
// gophersat backend it honors context deadlines mid-solve through gini's
// asynchronous solve handle.
package gini

import (
	"context"
	"time"

	gogini "github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/cognicore/entail/pkg/entail/sat"
)

// Oracle implements sat.Oracle over gini. The zero value is ready to use.
type Oracle struct{}

// New returns a gini-backed oracle
func New() *Oracle { return &Oracle{} }

// Satisfiable reports whether the clause set has a model. With a context
// deadline the solve runs on gini's background handle and is cut off at
// the deadline, yielding Indet.
func (Oracle) Satisfiable(ctx context.Context, clauses [][]int) (sat.Status, error) {
	if st, ok := sat.Trivial(clauses); ok {
		return st, nil
	}
	if ctx.Err() != nil {
		return sat.Indet, nil
	}
	g := gogini.New()
	for _, cl := range clauses {
		for _, m := range cl {
			g.Add(lit(m))
		}
		g.Add(z.LitNull)
	}
	if dl, ok := ctx.Deadline(); ok {
		d := time.Until(dl)
		if d <= 0 {
			return sat.Indet, nil
		}
		return status(g.GoSolve().Try(d)), nil
	}
	return status(g.Solve()), nil
}

// lit converts a DIMACS-style signed integer to a gini literal
func lit(m int) z.Lit {
	if m < 0 {
		return z.Var(-m).Neg()
	}
	return z.Var(m).Pos()
}

func status(res int) sat.Status {
	switch res {
	case 1:
		return sat.Sat
	case -1:
		return sat.Unsat
	}
	return sat.Indet
}
