package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cognicore/entail/pkg/entail/internalerr"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "entail.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
solver:
  backend: gini
  timeout: 250ms
cache:
  backend: sqlite
  path: /tmp/entail.db
query:
  answer_cache_size: 64
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Solver.Backend != "gini" {
		t.Errorf("solver backend = %q, want gini", cfg.Solver.Backend)
	}
	if time.Duration(cfg.Solver.Timeout) != 250*time.Millisecond {
		t.Errorf("timeout = %v, want 250ms", time.Duration(cfg.Solver.Timeout))
	}
	if cfg.Cache.Backend != "sqlite" || cfg.Cache.Path != "/tmp/entail.db" {
		t.Errorf("cache = %+v", cfg.Cache)
	}
	if cfg.Query.AnswerCacheSize != 64 {
		t.Errorf("answer cache size = %d, want 64", cfg.Query.AnswerCacheSize)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "cache:\n  backend: none\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Default()
	if cfg.Solver.Backend != def.Solver.Backend {
		t.Errorf("solver backend = %q, want default %q", cfg.Solver.Backend, def.Solver.Backend)
	}
	if cfg.Query.AnswerCacheSize != def.Query.AnswerCacheSize {
		t.Errorf("answer cache size = %d, want default %d", cfg.Query.AnswerCacheSize, def.Query.AnswerCacheSize)
	}
}

func TestLoadRejectsUnknownBackends(t *testing.T) {
	for _, body := range []string{
		"solver:\n  backend: minisat\n",
		"cache:\n  backend: redis\n  path: x\n",
	} {
		_, err := Load(writeConfig(t, body))
		if !errors.Is(err, internalerr.ErrInvalidConfig) {
			t.Errorf("config %q: err = %v, want ErrInvalidConfig", body, err)
		}
	}
}

func TestLoadRequiresCachePath(t *testing.T) {
	_, err := Load(writeConfig(t, "cache:\n  backend: file\n"))
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	if _, err := Load(writeConfig(t, "solver:\n  backend: gini\n  timeout: soon\n")); err == nil {
		t.Fatal("expected an error for an unparsable duration")
	}
}

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}
