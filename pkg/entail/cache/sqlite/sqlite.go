package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/entail/pkg/entail/cache"
)

// snapshotStore implements cache.Store using SQLite
type snapshotStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite-backed snapshot store with WAL mode enabled,
// creating the database and schema as needed
func OpenSQLite(ctx context.Context, path string) (cache.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &snapshotStore{db: db}, nil
}

// Close closes the database connection
func (s *snapshotStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS snapshots (
	fingerprint TEXT PRIMARY KEY,
	id TEXT NOT NULL,
	created_at TEXT NOT NULL,
	keys TEXT NOT NULL,
	clauses TEXT NOT NULL,
	implications TEXT NOT NULL
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

func (s *snapshotStore) Load(ctx context.Context, fingerprint string) (*cache.Snapshot, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, keys, clauses, implications FROM snapshots WHERE fingerprint = ?`,
		fingerprint)

	var (
		snap             cache.Snapshot
		createdAt        string
		keysJSON         []byte
		clausesJSON      []byte
		implicationsJSON []byte
	)
	err := row.Scan(&snap.ID, &createdAt, &keysJSON, &clausesJSON, &implicationsJSON)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load snapshot: %w", err)
	}

	snap.Fingerprint = fingerprint
	if snap.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, false, fmt.Errorf("load snapshot: bad created_at: %w", err)
	}
	if err := json.Unmarshal(keysJSON, &snap.Keys); err != nil {
		return nil, false, fmt.Errorf("load snapshot: decode keys: %w", err)
	}
	if err := json.Unmarshal(clausesJSON, &snap.Clauses); err != nil {
		return nil, false, fmt.Errorf("load snapshot: decode clauses: %w", err)
	}
	if err := json.Unmarshal(implicationsJSON, &snap.Implications); err != nil {
		return nil, false, fmt.Errorf("load snapshot: decode implications: %w", err)
	}
	return &snap, true, nil
}

func (s *snapshotStore) Save(ctx context.Context, snap *cache.Snapshot) error {
	keysJSON, err := json.Marshal(snap.Keys)
	if err != nil {
		return fmt.Errorf("save snapshot: encode keys: %w", err)
	}
	clausesJSON, err := json.Marshal(snap.Clauses)
	if err != nil {
		return fmt.Errorf("save snapshot: encode clauses: %w", err)
	}
	implicationsJSON, err := json.Marshal(snap.Implications)
	if err != nil {
		return fmt.Errorf("save snapshot: encode implications: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
INSERT INTO snapshots (fingerprint, id, created_at, keys, clauses, implications)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(fingerprint) DO UPDATE SET
	id = excluded.id,
	created_at = excluded.created_at,
	keys = excluded.keys,
	clauses = excluded.clauses,
	implications = excluded.implications`,
		snap.Fingerprint, snap.ID, snap.CreatedAt.UTC().Format(time.RFC3339),
		keysJSON, clausesJSON, implicationsJSON)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
