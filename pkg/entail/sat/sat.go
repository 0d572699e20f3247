// Package sat defines the satisfiability oracle the engine calls through.
// This interface allows swapping solver backends (gophersat, gini, an
// external DIMACS process, a stub in tests) without touching the inference
// code.
package sat

import "context"

// Status is a solver verdict
type Status int8

const (
	Indet Status = iota // solver gave up or timed out, not an error
	Sat
	Unsat
)

func (s Status) String() string {
	switch s {
	case Sat:
		return "sat"
	case Unsat:
		return "unsat"
	}
	return "indet"
}

// Oracle decides satisfiability of a clause set in DIMACS-style integer
// form: each clause is a slice of non-zero literals, negative meaning
// negated. A context deadline bounds the solve; hitting it yields Indet,
// not an error. Errors are reserved for malformed instances and backend
// faults.
type Oracle interface {
	Satisfiable(ctx context.Context, clauses [][]int) (Status, error)
}

// Trivial short-circuits the two degenerate instances every backend would
// otherwise hand to its solver: no clauses is satisfiable, an empty clause
// is not. Returns ok=false when a real solve is needed.
func Trivial(clauses [][]int) (Status, bool) {
	if len(clauses) == 0 {
		return Sat, true
	}
	for _, cl := range clauses {
		if len(cl) == 0 {
			return Unsat, true
		}
	}
	return Indet, false
}
