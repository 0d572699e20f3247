package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/cognicore/entail/pkg/entail/cache"
)

func openTestStore(t *testing.T) cache.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "entail.db")
	s, err := OpenSQLite(context.Background(), path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleSnapshot(fp string) *cache.Snapshot {
	return &cache.Snapshot{
		ID:          cache.NewID(),
		Fingerprint: fp,
		CreatedAt:   time.Date(2026, 5, 2, 12, 0, 0, 0, time.UTC),
		Keys:        []string{"even", "odd", "integer"},
		Clauses:     [][]string{{"~even", "integer"}, {"~odd", "integer"}, {"~even", "~odd"}},
		Implications: map[string][]string{
			"even":    {"even", "integer", "~odd"},
			"odd":     {"integer", "odd", "~even"},
			"integer": {"integer"},
		},
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, ok, err := s.Load(ctx, "fp1"); err != nil || ok {
		t.Fatalf("fresh db should miss: ok=%v err=%v", ok, err)
	}

	want := sampleSnapshot("fp1")
	if err := s.Save(ctx, want); err != nil {
		t.Fatal(err)
	}
	got, ok, err := s.Load(ctx, "fp1")
	if err != nil || !ok {
		t.Fatalf("load after save: ok=%v err=%v", ok, err)
	}
	if got.ID != want.ID || got.Fingerprint != "fp1" {
		t.Errorf("identity fields mangled: %+v", got)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("created_at = %v, want %v", got.CreatedAt, want.CreatedAt)
	}
	if len(got.Keys) != 3 || got.Keys[2] != "integer" {
		t.Errorf("keys mangled: %v", got.Keys)
	}
	if len(got.Clauses) != 3 || got.Clauses[2][1] != "~odd" {
		t.Errorf("clauses mangled: %v", got.Clauses)
	}
	if len(got.Implications["even"]) != 3 {
		t.Errorf("implications mangled: %v", got.Implications)
	}
}

func TestSQLiteUpsert(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	first := sampleSnapshot("fp1")
	if err := s.Save(ctx, first); err != nil {
		t.Fatal(err)
	}
	second := sampleSnapshot("fp1")
	second.Keys = append(second.Keys, "prime")
	if err := s.Save(ctx, second); err != nil {
		t.Fatalf("saving same fingerprint twice should upsert: %v", err)
	}
	got, ok, err := s.Load(ctx, "fp1")
	if err != nil || !ok {
		t.Fatal(err)
	}
	if got.ID != second.ID || len(got.Keys) != 4 {
		t.Error("upsert should replace the stored snapshot")
	}
}

func TestSQLiteSeparateFingerprints(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	if err := s.Save(ctx, sampleSnapshot("fp1")); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, sampleSnapshot("fp2")); err != nil {
		t.Fatal(err)
	}
	for _, fp := range []string{"fp1", "fp2"} {
		got, ok, err := s.Load(ctx, fp)
		if err != nil || !ok {
			t.Fatalf("load %s: ok=%v err=%v", fp, ok, err)
		}
		if got.Fingerprint != fp {
			t.Errorf("fingerprint = %q, want %q", got.Fingerprint, fp)
		}
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entail.db")
	ctx := context.Background()
	s, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	want := sampleSnapshot("fp1")
	if err := s.Save(ctx, want); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s2, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()
	got, ok, err := s2.Load(ctx, "fp1")
	if err != nil || !ok {
		t.Fatalf("reopened db should keep the snapshot: ok=%v err=%v", ok, err)
	}
	if got.ID != want.ID {
		t.Error("snapshot should survive reopen")
	}
}
