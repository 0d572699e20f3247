// Package expr holds the expression values predicates are applied to. The
// engine treats expressions as opaque: all it ever needs is a stable
// identity key, plus reversal for relational comparisons. Richer symbolic
// types can be plugged in by implementing Expr.
package expr

import "strconv"

// Expr is any value a predicate can be applied to.
// Two expressions are the same expression iff their keys are equal.
type Expr interface {
	Key() string
}

// Relational is an expression with a mirror-image form describing the same
// relationship, e.g. a < b and b > a
type Relational interface {
	Expr
	Reversed() Expr
}

// container is implemented by compound expressions that can report whether
// they mention a sub-expression
type container interface {
	Has(Expr) bool
}

// Equal reports whether two expressions are the same expression
func Equal(a, b Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Key() == b.Key()
}

// Contains reports whether e is target or mentions target
func Contains(e, target Expr) bool {
	if e == nil || target == nil {
		return false
	}
	if Equal(e, target) {
		return true
	}
	if c, ok := e.(container); ok {
		return c.Has(target)
	}
	return false
}

// Symbol is a free variable such as x or n
type Symbol string

func (s Symbol) Key() string { return string(s) }

// Int is a concrete integer literal. Structural handlers use it to decide
// predicates numerically.
type Int int64

func (n Int) Key() string { return strconv.FormatInt(int64(n), 10) }

// RelOp identifies a comparison operator
type RelOp int8

const (
	Lt RelOp = iota // <
	Le              // <=
	Gt              // >
	Ge              // >=
	Eq              // ==
	Ne              // !=
)

func (op RelOp) String() string {
	switch op {
	case Lt:
		return "lt"
	case Le:
		return "le"
	case Gt:
		return "gt"
	case Ge:
		return "ge"
	case Eq:
		return "eq"
	case Ne:
		return "ne"
	}
	return "rel?"
}

// flipped returns the operator of the mirror-image comparison
func (op RelOp) flipped() RelOp {
	switch op {
	case Lt:
		return Gt
	case Le:
		return Ge
	case Gt:
		return Lt
	case Ge:
		return Le
	}
	// Eq and Ne are symmetric
	return op
}

// Rel is a binary comparison between two expressions
type Rel struct {
	Op       RelOp
	Lhs, Rhs Expr
}

func (r Rel) Key() string {
	return r.Op.String() + "(" + r.Lhs.Key() + "," + r.Rhs.Key() + ")"
}

// Reversed returns the mirror-image comparison: a < b becomes b > a.
// The two keys differ even though the facts are identical, so extraction
// tries both forms.
func (r Rel) Reversed() Expr {
	return Rel{Op: r.Op.flipped(), Lhs: r.Rhs, Rhs: r.Lhs}
}

// Has reports whether either side is or mentions target
func (r Rel) Has(target Expr) bool {
	return Contains(r.Lhs, target) || Contains(r.Rhs, target)
}
