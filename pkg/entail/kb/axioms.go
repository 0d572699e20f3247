// Package kb holds the static knowledge base relating the built-in
// predicates and compiles it into the forms the resolver consumes: a CNF
// clause set and a per-key implication table. Compilation is expensive
// (quadratic in the vocabulary) and runs once; the result can be persisted
// through a cache store and reloaded by fingerprint.
package kb

import (
	"github.com/cognicore/entail/pkg/entail/assume"
	"github.com/cognicore/entail/pkg/entail/prop"
)

func implies(a, b prop.Prop) prop.Prop { return &prop.Implies{If: a, Then: b} }
func equiv(ps ...prop.Prop) prop.Prop  { return &prop.Equivalent{Args: ps} }
func and(ps ...prop.Prop) prop.Prop    { return &prop.And{Args: ps} }
func or(ps ...prop.Prop) prop.Prop     { return &prop.Or{Args: ps} }
func not(p prop.Prop) prop.Prop        { return &prop.Not{X: p} }

// KnownFacts returns the axiom set over the built-in vocabulary: the
// numeric-kind hierarchy and the matrix-property hierarchy. This list is
// the single source of truth; everything else in the package is derived
// from it. Axioms may be reformulated freely as long as the semantic
// closure is preserved.
func KnownFacts(k *assume.Keys) []prop.Prop {
	return []prop.Prop{
		// finiteness and the real/complex tower
		implies(k.Infinite, not(k.Finite)),
		implies(k.Real, k.Complex),
		implies(k.Real, k.Hermitian),
		equiv(k.ExtendedReal, or(k.Real, k.Infinite)),

		// parity
		equiv(or(k.Even, k.Odd), k.Integer),
		implies(k.Even, not(k.Odd)),

		// primality
		implies(k.Prime, and(k.Integer, k.Positive, not(k.Composite))),

		// rational tower
		implies(k.Integer, k.Rational),
		implies(k.Rational, k.Algebraic),
		implies(k.Algebraic, k.Complex),
		implies(k.Algebraic, k.Finite),
		equiv(or(k.Transcendental, k.Algebraic), and(k.Complex, k.Finite)),
		implies(k.Transcendental, not(k.Algebraic)),
		implies(k.Transcendental, k.Finite),

		// imaginary and hermitian structure
		implies(k.Imaginary, and(k.Complex, not(k.Real))),
		implies(k.Imaginary, k.Antihermitian),
		implies(k.Antihermitian, not(k.Hermitian)),

		// irrationality
		equiv(or(k.Irrational, k.Rational), and(k.Real, k.Finite)),
		implies(k.Irrational, not(k.Rational)),

		// parity of zero
		implies(k.Zero, k.Even),

		// sign trichotomy
		equiv(k.Real, or(k.Negative, k.Zero, k.Positive)),
		implies(k.Zero, and(not(k.Negative), not(k.Positive))),
		implies(k.Negative, not(k.Positive)),
		equiv(k.Nonnegative, or(k.Zero, k.Positive)),
		equiv(k.Nonpositive, or(k.Zero, k.Negative)),
		equiv(k.Nonzero, or(k.Negative, k.Positive)),

		// matrix factorization structure
		implies(k.Orthogonal, k.PositiveDefinite),
		implies(k.Orthogonal, k.Unitary),
		implies(and(k.Unitary, k.RealElements), k.Orthogonal),
		implies(k.Unitary, k.Normal),
		implies(k.Unitary, k.Invertible),
		implies(k.Normal, k.Square),
		implies(k.Diagonal, k.Normal),
		implies(k.PositiveDefinite, k.Invertible),

		// triangularity
		implies(k.Diagonal, k.UpperTriangular),
		implies(k.Diagonal, k.LowerTriangular),
		implies(k.LowerTriangular, k.Triangular),
		implies(k.UpperTriangular, k.Triangular),
		implies(k.Triangular, or(k.UpperTriangular, k.LowerTriangular)),
		implies(and(k.UpperTriangular, k.LowerTriangular), k.Diagonal),
		implies(k.Diagonal, k.Symmetric),
		implies(k.UnitTriangular, k.Triangular),

		// invertibility
		implies(k.Invertible, k.FullRank),
		implies(k.Invertible, k.Square),
		implies(k.Symmetric, k.Square),
		implies(and(k.FullRank, k.Square), k.Invertible),
		equiv(k.Invertible, not(k.Singular)),

		// element types
		implies(k.IntegerElements, k.RealElements),
		implies(k.RealElements, k.ComplexElements),
	}
}
