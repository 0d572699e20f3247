package assume

import (
	"sync"

	"github.com/cognicore/entail/pkg/entail/prop"
)

// Predicate names of the built-in vocabulary. The knowledge base in kb is
// written over exactly these keys.
const (
	KeyHermitian        = "hermitian"
	KeyAntihermitian    = "antihermitian"
	KeyReal             = "real"
	KeyExtendedReal     = "extended_real"
	KeyImaginary        = "imaginary"
	KeyComplex          = "complex"
	KeyAlgebraic        = "algebraic"
	KeyTranscendental   = "transcendental"
	KeyInteger          = "integer"
	KeyRational         = "rational"
	KeyIrrational       = "irrational"
	KeyFinite           = "finite"
	KeyInfinite         = "infinite"
	KeyPositive         = "positive"
	KeyNegative         = "negative"
	KeyZero             = "zero"
	KeyNonzero          = "nonzero"
	KeyNonpositive      = "nonpositive"
	KeyNonnegative      = "nonnegative"
	KeyEven             = "even"
	KeyOdd              = "odd"
	KeyPrime            = "prime"
	KeyComposite        = "composite"
	KeyCommutative      = "commutative"
	KeyIsTrue           = "is_true"
	KeySymmetric        = "symmetric"
	KeyInvertible       = "invertible"
	KeyOrthogonal       = "orthogonal"
	KeyUnitary          = "unitary"
	KeyPositiveDefinite = "positive_definite"
	KeyUpperTriangular  = "upper_triangular"
	KeyLowerTriangular  = "lower_triangular"
	KeyDiagonal         = "diagonal"
	KeyFullRank         = "fullrank"
	KeySquare           = "square"
	KeyIntegerElements  = "integer_elements"
	KeyRealElements     = "real_elements"
	KeyComplexElements  = "complex_elements"
	KeySingular         = "singular"
	KeyNormal           = "normal"
	KeyTriangular       = "triangular"
	KeyUnitTriangular   = "unit_triangular"
)

// Keys binds the built-in vocabulary to predicate singletons from one
// registry, so callers can write k.Even.Of(x) instead of going through
// string lookups
type Keys struct {
	// scalar kinds
	Hermitian      *prop.Predicate
	Antihermitian  *prop.Predicate
	Real           *prop.Predicate
	ExtendedReal   *prop.Predicate
	Imaginary      *prop.Predicate
	Complex        *prop.Predicate
	Algebraic      *prop.Predicate
	Transcendental *prop.Predicate
	Integer        *prop.Predicate
	Rational       *prop.Predicate
	Irrational     *prop.Predicate
	Finite         *prop.Predicate
	Infinite       *prop.Predicate

	// order and sign
	Positive    *prop.Predicate
	Negative    *prop.Predicate
	Zero        *prop.Predicate
	Nonzero     *prop.Predicate
	Nonpositive *prop.Predicate
	Nonnegative *prop.Predicate

	// integer structure
	Even      *prop.Predicate
	Odd       *prop.Predicate
	Prime     *prop.Predicate
	Composite *prop.Predicate

	// misc
	Commutative *prop.Predicate
	IsTrue      *prop.Predicate

	// matrix properties
	Symmetric        *prop.Predicate
	Invertible       *prop.Predicate
	Orthogonal       *prop.Predicate
	Unitary          *prop.Predicate
	PositiveDefinite *prop.Predicate
	UpperTriangular  *prop.Predicate
	LowerTriangular  *prop.Predicate
	Diagonal         *prop.Predicate
	FullRank         *prop.Predicate
	Square           *prop.Predicate
	IntegerElements  *prop.Predicate
	RealElements     *prop.Predicate
	ComplexElements  *prop.Predicate
	Singular         *prop.Predicate
	Normal           *prop.Predicate
	Triangular       *prop.Predicate
	UnitTriangular   *prop.Predicate
}

// NewKeys resolves the full vocabulary through the registry
func NewKeys(r *Registry) *Keys {
	return &Keys{
		Hermitian:        r.Get(KeyHermitian),
		Antihermitian:    r.Get(KeyAntihermitian),
		Real:             r.Get(KeyReal),
		ExtendedReal:     r.Get(KeyExtendedReal),
		Imaginary:        r.Get(KeyImaginary),
		Complex:          r.Get(KeyComplex),
		Algebraic:        r.Get(KeyAlgebraic),
		Transcendental:   r.Get(KeyTranscendental),
		Integer:          r.Get(KeyInteger),
		Rational:         r.Get(KeyRational),
		Irrational:       r.Get(KeyIrrational),
		Finite:           r.Get(KeyFinite),
		Infinite:         r.Get(KeyInfinite),
		Positive:         r.Get(KeyPositive),
		Negative:         r.Get(KeyNegative),
		Zero:             r.Get(KeyZero),
		Nonzero:          r.Get(KeyNonzero),
		Nonpositive:      r.Get(KeyNonpositive),
		Nonnegative:      r.Get(KeyNonnegative),
		Even:             r.Get(KeyEven),
		Odd:              r.Get(KeyOdd),
		Prime:            r.Get(KeyPrime),
		Composite:        r.Get(KeyComposite),
		Commutative:      r.Get(KeyCommutative),
		IsTrue:           r.Get(KeyIsTrue),
		Symmetric:        r.Get(KeySymmetric),
		Invertible:       r.Get(KeyInvertible),
		Orthogonal:       r.Get(KeyOrthogonal),
		Unitary:          r.Get(KeyUnitary),
		PositiveDefinite: r.Get(KeyPositiveDefinite),
		UpperTriangular:  r.Get(KeyUpperTriangular),
		LowerTriangular:  r.Get(KeyLowerTriangular),
		Diagonal:         r.Get(KeyDiagonal),
		FullRank:         r.Get(KeyFullRank),
		Square:           r.Get(KeySquare),
		IntegerElements:  r.Get(KeyIntegerElements),
		RealElements:     r.Get(KeyRealElements),
		ComplexElements:  r.Get(KeyComplexElements),
		Singular:         r.Get(KeySingular),
		Normal:           r.Get(KeyNormal),
		Triangular:       r.Get(KeyTriangular),
		UnitTriangular:   r.Get(KeyUnitTriangular),
	}
}

// All returns the full vocabulary in declaration order
func (k *Keys) All() []*prop.Predicate {
	return []*prop.Predicate{
		k.Hermitian, k.Antihermitian, k.Real, k.ExtendedReal, k.Imaginary,
		k.Complex, k.Algebraic, k.Transcendental, k.Integer, k.Rational,
		k.Irrational, k.Finite, k.Infinite, k.Positive, k.Negative, k.Zero,
		k.Nonzero, k.Nonpositive, k.Nonnegative, k.Even, k.Odd, k.Prime,
		k.Composite, k.Commutative, k.IsTrue, k.Symmetric, k.Invertible,
		k.Orthogonal, k.Unitary, k.PositiveDefinite, k.UpperTriangular,
		k.LowerTriangular, k.Diagonal, k.FullRank, k.Square,
		k.IntegerElements, k.RealElements, k.ComplexElements, k.Singular,
		k.Normal, k.Triangular, k.UnitTriangular,
	}
}

var (
	defaultKeys     *Keys
	defaultKeysOnce sync.Once
)

// DefaultKeys returns the vocabulary bound to the default registry
func DefaultKeys() *Keys {
	defaultKeysOnce.Do(func() {
		defaultKeys = NewKeys(DefaultRegistry())
	})
	return defaultKeys
}
