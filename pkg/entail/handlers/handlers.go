// Package handlers provides the built-in structural handlers: predicate
// evaluation from the shape of the arguments alone, with no SAT call. The
// stock set decides the numeric predicates for concrete integer literals,
// so even(4) is true whatever the assumptions say.
package handlers

import (
	"github.com/cognicore/entail/pkg/entail/assume"
	"github.com/cognicore/entail/pkg/entail/expr"
	"github.com/cognicore/entail/pkg/entail/prop"
	"github.com/cognicore/entail/pkg/entail/ternary"
)

// numericKeys are the predicates Numeric can decide for integer literals
var numericKeys = []string{
	assume.KeyHermitian,
	assume.KeyAntihermitian,
	assume.KeyReal,
	assume.KeyExtendedReal,
	assume.KeyImaginary,
	assume.KeyComplex,
	assume.KeyAlgebraic,
	assume.KeyTranscendental,
	assume.KeyInteger,
	assume.KeyRational,
	assume.KeyIrrational,
	assume.KeyFinite,
	assume.KeyInfinite,
	assume.KeyPositive,
	assume.KeyNegative,
	assume.KeyZero,
	assume.KeyNonzero,
	assume.KeyNonpositive,
	assume.KeyNonnegative,
	assume.KeyEven,
	assume.KeyOdd,
	assume.KeyPrime,
	assume.KeyComposite,
	assume.KeyCommutative,
}

// Numeric decides one numeric predicate for concrete integer arguments.
// The zero-field-plus-key shape keeps instances comparable, so handler
// removal and duplicate detection work by plain equality.
type Numeric struct {
	key string
}

// NewNumeric returns the handler for one of the numeric predicate keys
func NewNumeric(key string) Numeric { return Numeric{key: key} }

// Evaluate decides the predicate when the single argument is an integer
// literal, and passes otherwise
func (h Numeric) Evaluate(args []expr.Expr, _ prop.Prop) ternary.Value {
	if len(args) != 1 {
		return ternary.Unknown
	}
	n, ok := args[0].(expr.Int)
	if !ok {
		return ternary.Unknown
	}
	return evalInt(h.key, int64(n))
}

func evalInt(key string, n int64) ternary.Value {
	switch key {
	case assume.KeyInteger, assume.KeyRational, assume.KeyReal,
		assume.KeyExtendedReal, assume.KeyComplex, assume.KeyAlgebraic,
		assume.KeyFinite, assume.KeyCommutative, assume.KeyHermitian:
		return ternary.True
	case assume.KeyIrrational, assume.KeyImaginary, assume.KeyInfinite,
		assume.KeyTranscendental:
		return ternary.False
	case assume.KeyEven:
		return ternary.FromBool(n%2 == 0)
	case assume.KeyOdd:
		return ternary.FromBool(n%2 != 0)
	case assume.KeyZero:
		return ternary.FromBool(n == 0)
	case assume.KeyNonzero:
		return ternary.FromBool(n != 0)
	case assume.KeyPositive:
		return ternary.FromBool(n > 0)
	case assume.KeyNegative:
		return ternary.FromBool(n < 0)
	case assume.KeyNonpositive:
		return ternary.FromBool(n <= 0)
	case assume.KeyNonnegative:
		return ternary.FromBool(n >= 0)
	case assume.KeyPrime:
		return ternary.FromBool(isPrime(n))
	case assume.KeyComposite:
		return ternary.FromBool(n > 1 && !isPrime(n))
	case assume.KeyAntihermitian:
		// zero is the only real number that is also antihermitian
		return ternary.FromBool(n == 0)
	}
	return ternary.Unknown
}

func isPrime(n int64) bool {
	if n < 2 {
		return false
	}
	for d := int64(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// Register attaches the stock numeric handlers to the registry. Calling it
// again on the same registry is a no-op, so every engine construction can
// run it unconditionally.
func Register(r *assume.Registry) {
	for _, key := range numericKeys {
		h := NewNumeric(key)
		if hasHandler(r.Get(key), h) {
			continue
		}
		r.RegisterHandler(key, h)
	}
}

func hasHandler(p *prop.Predicate, h prop.Handler) bool {
	for _, have := range p.Handlers() {
		if have == h {
			return true
		}
	}
	return false
}
