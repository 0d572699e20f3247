// Package cache persists compiled knowledge so the quadratic implication
// build runs once across processes, not once per process. Snapshots are
// identified by the fingerprint of the axioms they were compiled from; a
// store returns a snapshot only for an exactly matching fingerprint, so a
// changed knowledge base never serves stale tables.
package cache

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// Snapshot is the serializable form of a compiled knowledge base.
// Clause literals and implication entries use the signed key form
// ("even", "~odd").
type Snapshot struct {
	ID           string              `yaml:"id"`
	Fingerprint  string              `yaml:"fingerprint"`
	CreatedAt    time.Time           `yaml:"created_at"`
	Keys         []string            `yaml:"keys"`
	Clauses      [][]string          `yaml:"clauses"`
	Implications map[string][]string `yaml:"implications"`
}

// Store persists snapshots keyed by fingerprint
type Store interface {
	// Load returns the snapshot compiled from the axioms with the given
	// fingerprint; ok is false when the store has none
	Load(ctx context.Context, fingerprint string) (snap *Snapshot, ok bool, err error)

	// Save persists a snapshot, replacing any previous one for the same
	// fingerprint
	Save(ctx context.Context, snap *Snapshot) error

	// Close releases store resources
	Close() error
}

var entropy = ulid.Monotonic(rand.Reader, 0)

// NewID returns a fresh snapshot identifier
func NewID() string {
	return ulid.MustNew(ulid.Now(), entropy).String()
}
