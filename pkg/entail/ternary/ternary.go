// Package ternary provides the three-valued truth type used throughout the
// engine. Unknown is a first-class answer: a query that cannot be decided
// returns Unknown, it does not fail.
package ternary

// Value is a three-valued truth value
type Value int8

const (
	Unknown Value = iota // undetermined, the zero value
	True
	False
)

// FromBool lifts a two-valued result into a definite Value
func FromBool(b bool) Value {
	if b {
		return True
	}
	return False
}

// Known reports whether v is a definite answer (True or False)
func (v Value) Known() bool {
	return v == True || v == False
}

// Bool returns the underlying boolean and whether the value is definite
func (v Value) Bool() (value, known bool) {
	switch v {
	case True:
		return true, true
	case False:
		return false, true
	}
	return false, false
}

// Not negates a definite value and leaves Unknown alone
func (v Value) Not() Value {
	switch v {
	case True:
		return False
	case False:
		return True
	}
	return Unknown
}

// And combines conjunctively: any False wins, all True gives True,
// otherwise Unknown
func And(vs ...Value) Value {
	out := True
	for _, v := range vs {
		switch v {
		case False:
			return False
		case Unknown:
			out = Unknown
		}
	}
	return out
}

// Or combines disjunctively: any True wins, all False gives False,
// otherwise Unknown
func Or(vs ...Value) Value {
	out := False
	for _, v := range vs {
		switch v {
		case True:
			return True
		case Unknown:
			out = Unknown
		}
	}
	return out
}

func (v Value) String() string {
	switch v {
	case True:
		return "true"
	case False:
		return "false"
	}
	return "unknown"
}
