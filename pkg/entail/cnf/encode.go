package cnf

// Encoded maps the literals of one or more clause sets onto ±integers for
// a SAT oracle. The atom-to-variable mapping is bijective and stable for
// the lifetime of the instance, so clause sets added later share variables
// with clause sets added earlier.
type Encoded struct {
	Clauses [][]int
	vars    map[Literal]int
	names   []Literal // 1-based: names[v-1] is the atom of variable v
}

// NewEncoded returns an empty encoding
func NewEncoded() *Encoded {
	return &Encoded{vars: make(map[Literal]int)}
}

// Encode builds an encoding of the given clause sets in order
func Encode(sets ...*CNF) *Encoded {
	e := NewEncoded()
	for _, s := range sets {
		e.Add(s)
	}
	return e
}

// Add appends every clause of the set to the instance
func (e *Encoded) Add(c *CNF) {
	if c == nil {
		return
	}
	for _, cl := range c.Clauses() {
		e.AddClause(cl)
	}
}

// AddClause appends one clause to the instance
func (e *Encoded) AddClause(cl Clause) {
	enc := make([]int, len(cl))
	for i, l := range cl {
		enc[i] = e.Lit(l)
	}
	e.Clauses = append(e.Clauses, enc)
}

// Lit returns the signed integer for a literal, assigning a fresh variable
// to an unseen atom
func (e *Encoded) Lit(l Literal) int {
	v := e.Var(l.Atom())
	if l.Negated {
		return -v
	}
	return v
}

// Var returns the positive variable id for an atom
func (e *Encoded) Var(atom Literal) int {
	if v, ok := e.vars[atom]; ok {
		return v
	}
	v := len(e.names) + 1
	e.vars[atom] = v
	e.names = append(e.names, atom)
	return v
}

// NumVars returns how many distinct atoms have been assigned variables
func (e *Encoded) NumVars() int { return len(e.names) }

// Name returns the atom behind a positive variable id
func (e *Encoded) Name(v int) (Literal, bool) {
	if v < 1 || v > len(e.names) {
		return Literal{}, false
	}
	return e.names[v-1], true
}
