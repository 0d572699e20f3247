package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/cognicore/entail/pkg/entail/assume"
	"github.com/cognicore/entail/pkg/entail/cache"
	"github.com/cognicore/entail/pkg/entail/cache/sqlite"
	"github.com/cognicore/entail/pkg/entail/config"
	"github.com/cognicore/entail/pkg/entail/kb"
	"github.com/cognicore/entail/pkg/entail/sat"
	"github.com/cognicore/entail/pkg/entail/sat/gini"
	"github.com/cognicore/entail/pkg/entail/sat/gophersat"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to YAML config (optional)")
		dimacsPath = flag.String("dimacs", "", "Also dump the compiled clauses in DIMACS format to this path")
		force      = flag.Bool("force", false, "Recompile even when the store already holds a current snapshot")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	ctx := context.Background()
	oracle := newOracle(cfg)
	store := openStore(ctx, cfg)
	if store != nil {
		defer store.Close()
	}

	keys := assume.DefaultKeys()
	fp := kb.Fingerprint(keys)

	if store != nil && !*force {
		snap, ok, err := store.Load(ctx, fp)
		if err != nil {
			log.Fatalf("probe store: %v", err)
		}
		if ok {
			log.Printf("Snapshot %s is current (fingerprint %.12s), nothing to do", snap.ID, snap.Fingerprint)
			return
		}
	}

	start := time.Now()
	compiled, err := kb.Compile(ctx, keys, oracle)
	if err != nil {
		log.Fatalf("compile: %v", err)
	}
	entries := 0
	for _, set := range compiled.Implications {
		entries += len(set)
	}
	log.Printf("Compiled %d keys into %d clauses and %d table entries in %v",
		len(compiled.Keys), compiled.CNF.Len(), entries, time.Since(start).Round(time.Millisecond))

	if store != nil {
		if err := store.Save(ctx, compiled.Snapshot()); err != nil {
			log.Fatalf("save snapshot: %v", err)
		}
		log.Printf("Saved snapshot %s to %s store", compiled.SnapshotID, cfg.Cache.Backend)
	}

	if *dimacsPath != "" {
		f, err := os.Create(*dimacsPath)
		if err != nil {
			log.Fatalf("create dimacs file: %v", err)
		}
		if err := kb.WriteDIMACS(f, compiled); err != nil {
			f.Close()
			log.Fatalf("write dimacs: %v", err)
		}
		if err := f.Close(); err != nil {
			log.Fatalf("close dimacs file: %v", err)
		}
		log.Printf("Wrote DIMACS dump to %s", *dimacsPath)
	}

	fmt.Printf("Knowledge base fingerprint %.12s ready\n", compiled.Fingerprint)
}

func newOracle(cfg *config.Config) sat.Oracle {
	if cfg.Solver.Backend == "gini" {
		return gini.New()
	}
	return gophersat.New()
}

func openStore(ctx context.Context, cfg *config.Config) cache.Store {
	switch cfg.Cache.Backend {
	case "file":
		return cache.NewFileStore(cfg.Cache.Path)
	case "sqlite":
		store, err := sqlite.OpenSQLite(ctx, cfg.Cache.Path)
		if err != nil {
			log.Fatalf("open sqlite store: %v", err)
		}
		return store
	}
	return nil
}
