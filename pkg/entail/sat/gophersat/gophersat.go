// Package gophersat adapts the gophersat CDCL solver as the engine's
// default oracle. It is pure Go and solves the engine's small key-level
// instances in microseconds.
package gophersat

import (
	"context"

	"github.com/crillab/gophersat/solver"

	"github.com/cognicore/entail/pkg/entail/sat"
)

// Oracle implements sat.Oracle over gophersat. The zero value is ready to
// use; each call builds a fresh solver, so instances never leak state into
// one another.
type Oracle struct{}

// New returns a gophersat-backed oracle
func New() *Oracle { return &Oracle{} }

// Satisfiable reports whether the clause set has a model. gophersat solves
// synchronously, so the context is only consulted before the solve starts;
// an expired deadline yields Indet per the oracle contract.
func (Oracle) Satisfiable(ctx context.Context, clauses [][]int) (sat.Status, error) {
	if st, ok := sat.Trivial(clauses); ok {
		return st, nil
	}
	if ctx.Err() != nil {
		return sat.Indet, nil
	}
	pb := solver.ParseSlice(clauses)
	switch solver.New(pb).Solve() {
	case solver.Sat:
		return sat.Sat, nil
	case solver.Unsat:
		return sat.Unsat, nil
	}
	return sat.Indet, nil
}
