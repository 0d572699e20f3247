// Package cnf converts propositions to conjunctive normal form and holds
// the clause-set types the compiler and resolver share. Conversion is the
// classic distribution method: implications and equivalences rewrite to
// disjunctions, negations push down to literals by De Morgan, and OR
// distributes over AND. The result is logically equivalent to the input,
// which the implication compiler depends on.
package cnf

import (
	"sort"
	"strings"

	"github.com/cognicore/entail/pkg/entail/prop"
)

// Literal is one possibly-negated predicate occurrence inside a clause.
// Arg is the canonical argument key for applied literals and empty for
// bare-predicate (key-level) literals, as used in the knowledge base.
type Literal struct {
	Key     string
	Arg     string
	Negated bool
}

// Atom returns the unsigned form of the literal
func (l Literal) Atom() Literal {
	l.Negated = false
	return l
}

// Complement returns the literal with opposite sign
func (l Literal) Complement() Literal {
	l.Negated = !l.Negated
	return l
}

func (l Literal) String() string {
	s := l.Key
	if l.Arg != "" {
		s += "(" + l.Arg + ")"
	}
	if l.Negated {
		return "~" + s
	}
	return s
}

// Signed renders a key-level literal as "even" or "~even", the form used
// in persisted snapshots
func (l Literal) Signed() string {
	if l.Negated {
		return "~" + l.Key
	}
	return l.Key
}

// FromSigned parses the Signed form back into a key-level literal
func FromSigned(s string) Literal {
	if rest, ok := strings.CutPrefix(s, "~"); ok {
		return Literal{Key: rest, Negated: true}
	}
	return Literal{Key: s}
}

// Clause is a disjunction of literals, duplicate-free in first-seen order.
// An empty clause is unsatisfiable.
type Clause []Literal

func (c Clause) String() string {
	if len(c) == 0 {
		return "(false)"
	}
	parts := make([]string, len(c))
	for i, l := range c {
		parts[i] = l.String()
	}
	return "(" + strings.Join(parts, " | ") + ")"
}

// key is the order-independent identity of the clause, for deduplication
func (c Clause) key() string {
	parts := make([]string, len(c))
	for i, l := range c {
		parts[i] = l.String()
	}
	sort.Strings(parts)
	return strings.Join(parts, "|")
}

// normalize drops duplicate literals and reports whether the clause is a
// tautology (contains a complementary pair). Tautologies are trivially
// satisfied and never stored.
func normalize(lits []Literal) (Clause, bool) {
	seen := make(map[Literal]struct{}, len(lits))
	out := make(Clause, 0, len(lits))
	for _, l := range lits {
		if _, dup := seen[l]; dup {
			continue
		}
		if _, compl := seen[l.Complement()]; compl {
			return nil, true
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out, false
}

// CNF is a conjunction of clauses with insertion order preserved and
// duplicates removed. From records the proposition the clauses came from,
// when there was one.
type CNF struct {
	From    prop.Prop
	clauses []Clause
	index   map[string]struct{}
}

// New returns an empty CNF, which is trivially satisfiable
func New() *CNF {
	return &CNF{index: make(map[string]struct{})}
}

// FromProp converts a proposition to CNF
func FromProp(p prop.Prop) *CNF {
	c := New()
	c.From = p
	for _, cl := range clausesOf(p, false) {
		c.add(cl)
	}
	return c
}

// FromProps converts the conjunction of several propositions to CNF
func FromProps(ps ...prop.Prop) *CNF {
	c := New()
	for _, p := range ps {
		for _, cl := range clausesOf(p, false) {
			c.add(cl)
		}
	}
	return c
}

// AddClause appends a clause built from the given literals, skipping
// duplicates and tautologies
func (c *CNF) AddClause(lits ...Literal) {
	cl, taut := normalize(lits)
	if taut {
		return
	}
	c.add(cl)
}

// add stores an already-normalized clause
func (c *CNF) add(cl Clause) {
	k := cl.key()
	if _, dup := c.index[k]; dup {
		return
	}
	c.index[k] = struct{}{}
	c.clauses = append(c.clauses, cl)
}

// Extend merges another CNF's clauses into this one
func (c *CNF) Extend(other *CNF) {
	if other == nil {
		return
	}
	for _, cl := range other.clauses {
		c.add(cl)
	}
}

// ExtendProp converts a proposition and merges its clauses in
func (c *CNF) ExtendProp(p prop.Prop) {
	for _, cl := range clausesOf(p, false) {
		c.add(cl)
	}
}

// Clauses returns the stored clauses in insertion order. The slice is
// shared; callers must not mutate it.
func (c *CNF) Clauses() []Clause { return c.clauses }

// Len returns the clause count
func (c *CNF) Len() int { return len(c.clauses) }

// Copy returns an independent clause-set copy sharing the provenance Prop
func (c *CNF) Copy() *CNF {
	out := New()
	out.From = c.From
	for _, cl := range c.clauses {
		out.add(cl)
	}
	return out
}

func (c *CNF) String() string {
	parts := make([]string, len(c.clauses))
	for i, cl := range c.clauses {
		parts[i] = cl.String()
	}
	return strings.Join(parts, " & ")
}

// clausesOf is the conversion core. negated tracks a pending negation being
// pushed toward the literals, so De Morgan happens structurally: a negated
// AND distributes like an OR of negated children and vice versa.
func clausesOf(p prop.Prop, negated bool) []Clause {
	switch v := p.(type) {
	case prop.Bool:
		if bool(v) != negated {
			return nil // true: no constraint
		}
		return []Clause{{}} // false: the empty clause

	case *prop.Predicate:
		return []Clause{{Literal{Key: v.Name(), Negated: negated}}}

	case *prop.Applied:
		return []Clause{{Literal{Key: v.Pred.Name(), Arg: v.ArgKey(), Negated: negated}}}

	case *prop.Not:
		return clausesOf(v.X, !negated)

	case *prop.And:
		if negated {
			return distribute(negatedAll(v.Args))
		}
		return concat(v.Args, false)

	case *prop.Or:
		if negated {
			return concat(v.Args, true)
		}
		var sets [][]Clause
		for _, arg := range v.Args {
			sets = append(sets, clausesOf(arg, false))
		}
		return distribute(sets)

	case *prop.Implies:
		or := &prop.Or{Args: []prop.Prop{&prop.Not{X: v.If}, v.Then}}
		return clausesOf(or, negated)

	case *prop.Equivalent:
		// a <-> b <-> c becomes the implication ring a->b, b->c, c->a
		if len(v.Args) < 2 {
			return clausesOf(prop.True, negated)
		}
		ring := make([]prop.Prop, len(v.Args))
		for i, a := range v.Args {
			b := v.Args[(i+1)%len(v.Args)]
			ring[i] = &prop.Implies{If: a, Then: b}
		}
		return clausesOf(&prop.And{Args: ring}, negated)
	}
	return nil
}

func concat(args []prop.Prop, negated bool) []Clause {
	var out []Clause
	for _, a := range args {
		out = append(out, clausesOf(a, negated)...)
	}
	return out
}

func negatedAll(args []prop.Prop) [][]Clause {
	sets := make([][]Clause, len(args))
	for i, a := range args {
		sets[i] = clausesOf(a, true)
	}
	return sets
}

// distribute computes the OR of clause sets by cross product: one clause
// from each set, literals merged. Tautological merges are dropped.
func distribute(sets [][]Clause) []Clause {
	acc := []Clause{{}}
	for _, set := range sets {
		next := make([]Clause, 0, len(acc)*len(set))
		for _, a := range acc {
			for _, b := range set {
				merged, taut := normalize(append(append([]Literal{}, a...), b...))
				if taut {
					continue
				}
				next = append(next, merged)
			}
		}
		acc = next
	}
	return acc
}
