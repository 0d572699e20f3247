// Package entail is an assumption-reasoning engine: given a proposition
// about expressions and a set of assumed facts, it answers true, false, or
// unknown. A static knowledge base over the built-in predicates is
// compiled once into CNF and a per-key implication table; queries combine
// that compiled knowledge with per-query local facts and resolve through
// table lookup, structural handlers, and a SAT fallback, in that order.
package entail

import (
	"context"
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/cognicore/entail/pkg/entail/assume"
	"github.com/cognicore/entail/pkg/entail/cache"
	"github.com/cognicore/entail/pkg/entail/handlers"
	"github.com/cognicore/entail/pkg/entail/kb"
	"github.com/cognicore/entail/pkg/entail/prop"
	"github.com/cognicore/entail/pkg/entail/sat"
	"github.com/cognicore/entail/pkg/entail/sat/gophersat"
	"github.com/cognicore/entail/pkg/entail/ternary"
)

// SatAskFunc is the general satisfiability-based fallback consulted when
// table lookup and structural handlers are inconclusive. assumptions is
// the conjunction of the per-query assumptions; global holds the ambient
// context. Unknown is a valid outcome.
type SatAskFunc func(ctx context.Context, proposition, assumptions prop.Prop, global *assume.Context) (ternary.Value, error)

// Engine is the main reasoning facade
type Engine struct {
	registry *assume.Registry
	keys     *assume.Keys
	context  *assume.Context
	oracle   sat.Oracle
	store    cache.Store
	satask   SatAskFunc

	mu       sync.Mutex
	compiled *kb.Compiled

	answers *lru.Cache[string, ternary.Value]
}

// Options configures an Engine instance
type Options struct {
	Registry     *assume.Registry // predicate vocabulary; default: process-wide registry
	Context      *assume.Context  // ambient assumptions; default: assume.Global()
	Oracle       sat.Oracle       // satisfiability backend; default: gophersat
	Cache        cache.Store      // compiled-knowledge store; nil means compile in-process
	SatAsk       SatAskFunc       // general fallback; default: knowledge-instantiating SAT check
	CacheSize    int              // resolved-query LRU entries; default 512
	SolveTimeout time.Duration    // per-solve deadline, hit means unknown; 0 disables
}

// New creates an Engine with the given dependencies. The knowledge base is
// compiled lazily on first query; construction is cheap.
func New(opts Options) *Engine {
	e := &Engine{
		registry: opts.Registry,
		context:  opts.Context,
		oracle:   opts.Oracle,
		store:    opts.Cache,
		satask:   opts.SatAsk,
	}
	if e.registry == nil {
		e.registry = assume.DefaultRegistry()
	}
	if e.context == nil {
		e.context = assume.Global()
	}
	if e.oracle == nil {
		e.oracle = gophersat.New()
	}
	if opts.SolveTimeout > 0 {
		e.oracle = timeboxed{inner: e.oracle, d: opts.SolveTimeout}
	}
	e.keys = assume.NewKeys(e.registry)
	handlers.Register(e.registry)
	if e.satask == nil {
		e.satask = e.defaultSatAsk
	}
	size := opts.CacheSize
	if size <= 0 {
		size = 512
	}
	// lru.New only fails on a non-positive size
	e.answers, _ = lru.New[string, ternary.Value](size)
	return e
}

// Close cleanly shuts down the engine
func (e *Engine) Close() error {
	if e.store != nil {
		return e.store.Close()
	}
	return nil
}

// Keys returns the built-in vocabulary bound to this engine's registry
func (e *Engine) Keys() *assume.Keys { return e.keys }

// Registry returns the engine's predicate registry
func (e *Engine) Registry() *assume.Registry { return e.registry }

// Context returns the engine's ambient assumption context
func (e *Engine) Context() *assume.Context { return e.context }

// Compiled returns the compiled knowledge base, building or loading it on
// first use. Successful compilation happens at most once per engine; a
// failed attempt may be retried by a later call.
func (e *Engine) Compiled(ctx context.Context) (*kb.Compiled, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.compiled != nil {
		return e.compiled, nil
	}

	fp := kb.Fingerprint(e.keys)
	if e.store != nil {
		snap, ok, err := e.store.Load(ctx, fp)
		if err != nil {
			return nil, fmt.Errorf("load compiled knowledge: %w", err)
		}
		if ok {
			compiled, err := kb.FromSnapshot(snap)
			if err != nil {
				return nil, fmt.Errorf("load compiled knowledge: %w", err)
			}
			e.compiled = compiled
			return e.compiled, nil
		}
	}

	compiled, err := kb.Compile(ctx, e.keys, e.oracle)
	if err != nil {
		return nil, fmt.Errorf("compile knowledge: %w", err)
	}
	if e.store != nil {
		if err := e.store.Save(ctx, compiled.Snapshot()); err != nil {
			return nil, fmt.Errorf("save compiled knowledge: %w", err)
		}
	}
	e.compiled = compiled
	return e.compiled, nil
}

// timeboxed wraps an oracle with a per-call deadline
type timeboxed struct {
	inner sat.Oracle
	d     time.Duration
}

func (t timeboxed) Satisfiable(ctx context.Context, clauses [][]int) (sat.Status, error) {
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()
	return t.inner.Satisfiable(ctx, clauses)
}

var (
	defaultEngine *Engine
	defaultOnce   sync.Once
)

// Default returns the shared engine over the process-wide registry and
// global assumption context
func Default() *Engine {
	defaultOnce.Do(func() {
		defaultEngine = New(Options{})
	})
	return defaultEngine
}

// Ask resolves a proposition with the shared engine
func Ask(ctx context.Context, proposition prop.Prop, assumptions ...prop.Prop) (ternary.Value, error) {
	return Default().Ask(ctx, proposition, assumptions...)
}
