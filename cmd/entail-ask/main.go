package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/cognicore/entail/pkg/entail"
	"github.com/cognicore/entail/pkg/entail/cache"
	"github.com/cognicore/entail/pkg/entail/cache/sqlite"
	"github.com/cognicore/entail/pkg/entail/config"
	"github.com/cognicore/entail/pkg/entail/prop"
	"github.com/cognicore/entail/pkg/entail/sat"
	"github.com/cognicore/entail/pkg/entail/sat/gini"
	"github.com/cognicore/entail/pkg/entail/sat/gophersat"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to YAML config (optional)")
		query      = flag.String("q", "", "One-shot query (non-interactive mode)")
		under      = flag.String("assume", "", "Assumptions for the one-shot query, separated by ';'")
		explain    = flag.Bool("explain", false, "Show which resolution path decided each answer")
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
	engine, cleanup := buildEngine(ctx, cfg)
	defer cleanup()

	// One-shot query mode
	if *query != "" {
		if err := runQuery(ctx, engine, *query, *under, *explain); err != nil {
			log.Fatal(err)
		}
		return
	}

	// Interactive mode
	fmt.Println("===========================================")
	fmt.Println("  Entail Query CLI")
	fmt.Println("  Three-valued reasoning over assumptions")
	fmt.Println("===========================================")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  <proposition>          ask under the current context")
	fmt.Println("  explain <proposition>  ask and show the resolution path")
	fmt.Println("  assume <proposition>   add an assumption to the context")
	fmt.Println("  retract <proposition>  remove an assumption")
	fmt.Println("  facts                  list the current context")
	fmt.Println("  clear                  drop all assumptions")
	fmt.Println()
	fmt.Println("Type a proposition like even(x) or integer(x) (Ctrl+D to exit):")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		if err := runCommand(ctx, engine, line); err != nil {
			fmt.Println("Error:", err)
		}
	}

	fmt.Println("\nGoodbye!")
}

func runCommand(ctx context.Context, engine *entail.Engine, line string) error {
	switch {
	case line == "facts":
		facts := engine.Context().All()
		if len(facts) == 0 {
			fmt.Println("No assumptions in context.")
			return nil
		}
		for _, f := range facts {
			fmt.Println("  •", f)
		}
		return nil

	case line == "clear":
		engine.Context().Clear()
		fmt.Println("Context cleared.")
		return nil

	case strings.HasPrefix(line, "assume "):
		p, err := parseProp(engine.Registry(), strings.TrimPrefix(line, "assume "))
		if err != nil {
			return err
		}
		engine.Context().Add(p)
		fmt.Printf("Assuming %s.\n", p)
		return nil

	case strings.HasPrefix(line, "retract "):
		p, err := parseProp(engine.Registry(), strings.TrimPrefix(line, "retract "))
		if err != nil {
			return err
		}
		if engine.Context().Remove(p) {
			fmt.Printf("Retracted %s.\n", p)
		} else {
			fmt.Printf("%s was not assumed.\n", p)
		}
		return nil

	case strings.HasPrefix(line, "explain "):
		return askOne(ctx, engine, strings.TrimPrefix(line, "explain "), nil, true)

	default:
		return askOne(ctx, engine, line, nil, false)
	}
}

func runQuery(ctx context.Context, engine *entail.Engine, query, under string, explain bool) error {
	assumptions, err := parseAssumptions(engine.Registry(), under)
	if err != nil {
		return fmt.Errorf("parse assumptions: %w", err)
	}
	return askOne(ctx, engine, query, assumptions, explain)
}

func askOne(ctx context.Context, engine *entail.Engine, query string, assumptions []prop.Prop, explain bool) error {
	p, err := parseProp(engine.Registry(), query)
	if err != nil {
		return fmt.Errorf("parse query: %w", err)
	}

	if explain {
		verdict, err := engine.Inspect(ctx, p, assumptions...)
		if err != nil {
			return err
		}
		if verdict.Detail != "" {
			fmt.Printf("%s  (%s: %s)\n", verdict.Value, verdict.Method, verdict.Detail)
		} else {
			fmt.Printf("%s  (%s)\n", verdict.Value, verdict.Method)
		}
		return nil
	}

	v, err := engine.Ask(ctx, p, assumptions...)
	if err != nil {
		return err
	}
	fmt.Println(v)
	return nil
}

// buildEngine wires the configured oracle and snapshot store and warms the
// knowledge base so the first query does not pay for compilation
func buildEngine(ctx context.Context, cfg *config.Config) (*entail.Engine, func()) {
	engine := entail.New(entail.Options{
		Oracle:       newOracle(cfg),
		Cache:        openStore(ctx, cfg),
		CacheSize:    cfg.Query.AnswerCacheSize,
		SolveTimeout: time.Duration(cfg.Solver.Timeout),
	})

	start := time.Now()
	if _, err := engine.Compiled(ctx); err != nil {
		log.Fatalf("compile knowledge: %v", err)
	}
	log.Printf("Knowledge base ready in %v", time.Since(start).Round(time.Millisecond))

	cleanup := func() {
		if err := engine.Close(); err != nil {
			log.Printf("close: %v", err)
		}
	}
	return engine, cleanup
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
