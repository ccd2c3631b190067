package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"lukechampine.com/frand"

	"github.com/matzehuels/beurling/pkg/beurling"
	"github.com/matzehuels/beurling/pkg/cache"
	"github.com/matzehuels/beurling/pkg/diagonal"
	errs "github.com/matzehuels/beurling/pkg/errors"
	snapio "github.com/matzehuels/beurling/pkg/io"
	"github.com/matzehuels/beurling/pkg/observability"
	"github.com/matzehuels/beurling/pkg/order"
)

// Runner executes engine operations with caching.
//
// The Runner holds no results, only the cache and logger, so multiple
// goroutines can use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	TTL    time.Duration // Lifetime of cache entries; 0 uses cache.DefaultTTL
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Build grows a tree, reusing a cached snapshot when one exists.
func (r *Runner) Build(ctx context.Context, opts BuildOptions) (*Result, error) {
	opts.SetDefaults()
	engineOpts, err := opts.Engine()
	if err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	key := r.Keyer.BuildKey(opts.KeyOpts())
	if !opts.Refresh {
		if t, ok := r.loadTree(ctx, key, "build"); ok {
			res := &Result{Tree: t, CacheHit: true, Stats: treeStats(t, time.Since(start))}
			r.Logger.Info("loaded tree from cache",
				"policy", opts.Policy,
				"height", opts.Height,
				"nodes", res.Stats.Nodes)
			return res, nil
		}
	}

	observability.Engine().OnBuildStart(ctx, opts.Policy, opts.Height)
	t, err := beurling.Build(engineOpts)
	elapsed := time.Since(start)
	nodes := 0
	if t != nil {
		nodes = t.Len()
	}
	observability.Engine().OnBuildComplete(ctx, opts.Policy, nodes, elapsed, err)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}

	res := &Result{Tree: t, Stats: treeStats(t, elapsed)}
	r.Logger.Info("built tree",
		"policy", opts.Policy,
		"height", opts.Height,
		"nodes", res.Stats.Nodes,
		"leaves", res.Stats.Leaves,
		"duration", elapsed)

	r.storeTree(ctx, key, "build", t)
	return res, nil
}

// Walk samples opts.Runs paths and averages their statistics per depth.
func (r *Runner) Walk(ctx context.Context, opts WalkOptions) (*WalkResult, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	var rng *frand.RNG
	if opts.Seed != 0 {
		rng = beurling.NewSeededRNG(opts.Seed)
	} else {
		rng = frand.New()
	}

	start := time.Now()
	res := &WalkResult{Paths: make([]*beurling.Path, 0, opts.Runs)}
	var err error
	for i := 0; i < opts.Runs; i++ {
		if err = ctx.Err(); err != nil {
			break
		}
		var p *beurling.Path
		p, err = beurling.Walk(beurling.WalkOptions{
			Height:    opts.Height,
			MaxPrimes: opts.MaxPrimes,
			Rand:      rng,
		})
		if err != nil {
			err = fmt.Errorf("walk %d: %w", i+1, err)
			break
		}
		res.Paths = append(res.Paths, p)
	}
	res.Duration = time.Since(start)
	observability.Engine().OnWalkComplete(ctx, len(res.Paths), res.Duration, err)
	if err != nil {
		return nil, err
	}

	res.Depths = summarize(res.Paths)
	r.Logger.Info("sampled paths",
		"runs", opts.Runs,
		"height", opts.Height,
		"duration", res.Duration)
	return res, nil
}

// Diagonal extracts the formula of diagonal opts.D. The restricted tree it
// is derived from is cached like any build.
func (r *Runner) Diagonal(ctx context.Context, opts DiagonalOptions) (*DiagonalResult, error) {
	if err := errs.ValidateDiagonal(opts.D); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	key := r.Keyer.DiagonalKey(opts.D)
	res := &DiagonalResult{}

	var t *beurling.Tree
	var hit bool
	if !opts.Refresh {
		t, hit = r.loadTree(ctx, key, "diagonal")
	}
	if !hit {
		policy := string(beurling.PolicyRestricted)
		observability.Engine().OnBuildStart(ctx, policy, 2*opts.D-2)
		var err error
		t, err = beurling.Restricted(opts.D-1, opts.D-1, 2*opts.D-2)
		nodes := 0
		if t != nil {
			nodes = t.Len()
		}
		observability.Engine().OnBuildComplete(ctx, policy, nodes, time.Since(start), err)
		if err != nil {
			return nil, fmt.Errorf("diagonal %d: %w", opts.D, err)
		}
		r.storeTree(ctx, key, "diagonal", t)
	}

	f, err := diagonal.FromTree(opts.D, t)
	if err != nil {
		return nil, err
	}
	res.Formula = f
	res.CacheHit = hit
	res.Duration = time.Since(start)
	r.Logger.Info("extracted diagonal",
		"d", opts.D,
		"terms", len(f.Terms),
		"cached", hit,
		"duration", res.Duration)
	return res, nil
}

// Check decides whether opts.Candidate may follow opts.Current.
func (r *Runner) Check(ctx context.Context, opts CheckOptions) (*CheckResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	checker := order.NewChecker()
	if opts.Epsilon > 0 {
		checker.Epsilon = opts.Epsilon
	}

	start := time.Now()
	ok, err := checker.Feasible(opts.Current, opts.Candidate, opts.Others)
	elapsed := time.Since(start)
	observability.Engine().OnCheckComplete(ctx, ok, elapsed, err)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("checked order",
		"candidate", opts.Candidate.String(),
		"feasible", ok,
		"duration", elapsed)
	return &CheckResult{Feasible: ok, Duration: elapsed}, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// loadTree decodes a cached snapshot. Unreadable entries count as misses.
func (r *Runner) loadTree(ctx context.Context, key, kind string) (*beurling.Tree, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "key", key, "error", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, kind)
		return nil, false
	}
	t, err := snapio.ReadSnapshot(bytes.NewReader(data))
	if err != nil {
		r.Logger.Warn("discarding cached snapshot", "key", key, "error", err)
		_ = r.Cache.Delete(ctx, key)
		observability.Cache().OnCacheMiss(ctx, kind)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, kind)
	return t, true
}

// storeTree writes a snapshot. Failures are logged, never returned.
func (r *Runner) storeTree(ctx context.Context, key, kind string, t *beurling.Tree) {
	var buf bytes.Buffer
	if err := snapio.WriteSnapshot(&buf, t); err != nil {
		r.Logger.Warn("encode snapshot for cache", "error", err)
		return
	}
	ttl := r.TTL
	if ttl == 0 {
		ttl = cache.DefaultTTL
	}
	if err := r.Cache.Set(ctx, key, buf.Bytes(), ttl); err != nil {
		r.Logger.Warn("cache write failed", "key", key, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, kind, buf.Len())
}

func treeStats(t *beurling.Tree, d time.Duration) Stats {
	return Stats{Nodes: t.Len(), Leaves: len(t.Leaves()), Duration: d}
}
