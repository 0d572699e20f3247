package kb

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"time"

	"github.com/cognicore/entail/pkg/entail/assume"
	"github.com/cognicore/entail/pkg/entail/cache"
	"github.com/cognicore/entail/pkg/entail/cnf"
	"github.com/cognicore/entail/pkg/entail/prop"
	"github.com/cognicore/entail/pkg/entail/sat"
	"github.com/cognicore/entail/pkg/entail/ternary"
)

// ImpliedSet holds the signed key-level literals a single key provably
// forces: a positive entry means the key implies that key, a negated entry
// means it implies its negation
type ImpliedSet map[cnf.Literal]struct{}

// Compiled is the queryable form of the knowledge base: the axioms as one
// key-level clause set and the implication table behind the resolver's
// fast path. Build it with Compile or load it from a cache.Snapshot.
type Compiled struct {
	CNF          *cnf.CNF
	Implications map[string]ImpliedSet
	Keys         []string
	Fingerprint  string
	SnapshotID   string
	CreatedAt    time.Time
}

// Compile converts the axioms over the given vocabulary into CNF and
// builds the implication table: for every ordered key pair (k1, k2) one
// Infer call decides whether k1 forces k2 or its negation. Quadratic in
// the vocabulary, so callers cache the result; each key's implied set
// contains the key itself.
func Compile(ctx context.Context, keys *assume.Keys, oracle sat.Oracle) (*Compiled, error) {
	axioms := KnownFacts(keys)
	axCNF := cnf.FromProps(axioms...)
	axCNF.From = &prop.And{Args: axioms}

	all := keys.All()
	names := make([]string, len(all))
	table := make(map[string]ImpliedSet, len(all))
	for i, k1 := range all {
		names[i] = k1.Name()
		implied := ImpliedSet{cnf.Literal{Key: k1.Name()}: {}}
		for _, k2 := range all {
			if k2 == k1 {
				continue
			}
			v, err := Infer(ctx, k2, k1, axCNF, oracle)
			if err != nil {
				return nil, fmt.Errorf("implication table %s -> %s: %w", k1.Name(), k2.Name(), err)
			}
			switch v {
			case ternary.True:
				implied[cnf.Literal{Key: k2.Name()}] = struct{}{}
			case ternary.False:
				implied[cnf.Literal{Key: k2.Name(), Negated: true}] = struct{}{}
			}
		}
		table[k1.Name()] = implied
	}

	return &Compiled{
		CNF:          axCNF,
		Implications: table,
		Keys:         names,
		Fingerprint:  fingerprint(axioms),
		SnapshotID:   cache.NewID(),
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// Fingerprint returns the axiom fingerprint for a vocabulary without
// compiling, for probing a cache store
func Fingerprint(keys *assume.Keys) string {
	return fingerprint(KnownFacts(keys))
}

// fingerprint hashes the canonical axiom renderings, so any semantic edit
// to the knowledge base invalidates persisted snapshots
func fingerprint(axioms []prop.Prop) string {
	h := sha256.New()
	for _, a := range axioms {
		h.Write([]byte(prop.Canonical(a)))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Clauses returns the flattened clause set of the compiled axioms
func (c *Compiled) Clauses() []cnf.Clause {
	return c.CNF.Clauses()
}

// Implied returns the implication-table entry for a key
func (c *Compiled) Implied(key string) (ImpliedSet, bool) {
	set, ok := c.Implications[key]
	return set, ok
}

// Implies reports whether key's table entry contains the signed literal
func (c *Compiled) Implies(key string, lit cnf.Literal) bool {
	set, ok := c.Implications[key]
	if !ok {
		return false
	}
	_, ok = set[lit]
	return ok
}

// HasKey reports whether the key was part of the compiled vocabulary.
// Predicates registered after compilation are absent and resolve through
// the slower paths.
func (c *Compiled) HasKey(key string) bool {
	_, ok := c.Implications[key]
	return ok
}

// Snapshot converts the compiled knowledge to its serializable form
func (c *Compiled) Snapshot() *cache.Snapshot {
	clauses := make([][]string, 0, c.CNF.Len())
	for _, cl := range c.CNF.Clauses() {
		lits := make([]string, len(cl))
		for i, l := range cl {
			lits[i] = l.Signed()
		}
		clauses = append(clauses, lits)
	}

	implications := make(map[string][]string, len(c.Implications))
	for key, set := range c.Implications {
		entries := make([]string, 0, len(set))
		for l := range set {
			entries = append(entries, l.Signed())
		}
		sort.Strings(entries)
		implications[key] = entries
	}

	return &cache.Snapshot{
		ID:           c.SnapshotID,
		Fingerprint:  c.Fingerprint,
		CreatedAt:    c.CreatedAt,
		Keys:         append([]string(nil), c.Keys...),
		Clauses:      clauses,
		Implications: implications,
	}
}

// FromSnapshot rebuilds compiled knowledge from its serialized form. The
// provenance proposition is not persisted, so CNF.From is nil on the
// reloaded copy.
func FromSnapshot(snap *cache.Snapshot) (*Compiled, error) {
	if snap.Fingerprint == "" {
		return nil, fmt.Errorf("snapshot has no fingerprint")
	}
	axCNF := cnf.New()
	for _, lits := range snap.Clauses {
		cl := make([]cnf.Literal, len(lits))
		for i, s := range lits {
			cl[i] = cnf.FromSigned(s)
		}
		axCNF.AddClause(cl...)
	}

	table := make(map[string]ImpliedSet, len(snap.Implications))
	for key, entries := range snap.Implications {
		set := make(ImpliedSet, len(entries))
		for _, s := range entries {
			set[cnf.FromSigned(s)] = struct{}{}
		}
		table[key] = set
	}

	return &Compiled{
		CNF:          axCNF,
		Implications: table,
		Keys:         append([]string(nil), snap.Keys...),
		Fingerprint:  snap.Fingerprint,
		SnapshotID:   snap.ID,
		CreatedAt:    snap.CreatedAt,
	}, nil
}
