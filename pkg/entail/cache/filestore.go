package cache

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// FileStore keeps one snapshot in a yaml file. It is the generated-artifact
// form of the compiled knowledge: build it offline with entail-compile,
// ship the file, and processes start without recompiling.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the yaml file at path. The file
// need not exist yet.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the file and returns its snapshot when the fingerprint
// matches. A missing file is a miss, not an error.
func (s *FileStore) Load(ctx context.Context, fingerprint string) (*Snapshot, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read snapshot %s: %w", s.path, err)
	}
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, false, fmt.Errorf("parse snapshot %s: %w", s.path, err)
	}
	if snap.Fingerprint != fingerprint {
		return nil, false, nil
	}
	return &snap, true, nil
}

// Save writes the snapshot to the file, replacing previous contents
func (s *FileStore) Save(ctx context.Context, snap *Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot %s: %w", s.path, err)
	}
	return nil
}

// Close is a no-op for file stores
func (s *FileStore) Close() error { return nil }
