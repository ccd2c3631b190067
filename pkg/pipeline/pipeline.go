// Package pipeline runs the engine on behalf of the CLI.
//
// The engine packages (beurling, diagonal, order) are pure: they take
// parameters and return values. This package adds what a command needs around
// them, namely defaults, option validation, snapshot caching, timing, logging
// and observability hooks. Entry points that share a [Runner] share its cache.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	res, err := runner.Build(ctx, pipeline.BuildOptions{
//	    Policy: "restricted",
//	    Height: 8,
//	    MaxPrimes: 3,
//	    MaxComposites: beurling.Unlimited,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(beurling.Triangle(res.Tree))
//
// Stages can also run alone:
//
//	path, err := runner.Walk(ctx, pipeline.WalkOptions{Height: 40, Runs: 100})
//	formula, err := runner.Diagonal(ctx, pipeline.DiagonalOptions{D: 4})
//	ok, err := runner.Check(ctx, pipeline.CheckOptions{Current: seq, Candidate: c})
package pipeline

import (
	"time"

	"github.com/matzehuels/beurling/pkg/beurling"
	"github.com/matzehuels/beurling/pkg/cache"
	"github.com/matzehuels/beurling/pkg/diagonal"
	errs "github.com/matzehuels/beurling/pkg/errors"
	"github.com/matzehuels/beurling/pkg/factor"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Config
// =============================================================================

const (
	// DefaultHeight is the build height when none is given.
	DefaultHeight = 6

	// DefaultWalkHeight is the length of sampled paths.
	DefaultWalkHeight = 40

	// DefaultWalkRuns is the number of paths averaged by a walk.
	DefaultWalkRuns = 100

	// DefaultDiagonalValues is how many values of a formula are printed.
	DefaultDiagonalValues = 8
)

// DefaultPolicy is the build policy when none is given.
const DefaultPolicy = beurling.PolicyExhaustive

// =============================================================================
// Options
// =============================================================================

// BuildOptions configures [Runner.Build]. Budgets follow [beurling.Options]:
// negative is unlimited, so a restricted build with zero budgets admits only
// the root.
type BuildOptions struct {
	Policy        string `json:"policy,omitempty"`
	Height        int    `json:"height"`
	MaxPrimes     int    `json:"max_primes,omitempty"`
	MaxComposites int    `json:"max_composites,omitempty"`

	// Refresh skips the cache lookup but still stores the result.
	Refresh bool `json:"-"`
}

// SetDefaults fills the policy when empty.
func (o *BuildOptions) SetDefaults() {
	if o.Policy == "" {
		o.Policy = string(DefaultPolicy)
	}
}

// Engine converts to engine options, validating them.
func (o BuildOptions) Engine() (beurling.Options, error) {
	policy, err := beurling.ParsePolicy(o.Policy)
	if err != nil {
		return beurling.Options{}, err
	}
	opts := beurling.Options{
		Policy:        policy,
		Height:        o.Height,
		MaxPrimes:     o.MaxPrimes,
		MaxComposites: o.MaxComposites,
	}
	return opts, opts.Validate()
}

// KeyOpts returns the cache key parameters. Budgets are dropped for policies
// that ignore them, and every negative budget keys as [beurling.Unlimited],
// so equivalent builds share an entry.
func (o BuildOptions) KeyOpts() cache.BuildKeyOpts {
	k := cache.BuildKeyOpts{
		Policy:        o.Policy,
		Height:        o.Height,
		MaxPrimes:     beurling.Unlimited,
		MaxComposites: beurling.Unlimited,
	}
	if o.Policy == string(beurling.PolicyRestricted) {
		k.MaxPrimes = max(o.MaxPrimes, beurling.Unlimited)
		k.MaxComposites = max(o.MaxComposites, beurling.Unlimited)
	}
	return k
}

// WalkOptions configures [Runner.Walk].
type WalkOptions struct {
	Height    int    `json:"height"`
	Runs      int    `json:"runs"`
	MaxPrimes int    `json:"max_primes,omitempty"`
	Seed      uint64 `json:"seed,omitempty"` // 0 draws from the system entropy source
}

// SetDefaults fills a negative height and zero runs. A height of 0 is a
// valid request for the root alone.
func (o *WalkOptions) SetDefaults() {
	if o.Height < 0 {
		o.Height = DefaultWalkHeight
	}
	if o.Runs == 0 {
		o.Runs = DefaultWalkRuns
	}
}

// Validate checks the walk parameters.
func (o WalkOptions) Validate() error {
	if err := errs.ValidateHeight(o.Height); err != nil {
		return err
	}
	if o.Runs < 1 {
		return errs.New(errs.ErrCodeInvalidInput, "runs must be positive, got %d", o.Runs)
	}
	return errs.ValidateBudget("prime", o.MaxPrimes)
}

// DiagonalOptions configures [Runner.Diagonal].
type DiagonalOptions struct {
	D       int  `json:"d"`
	Refresh bool `json:"-"`
}

// CheckOptions configures [Runner.Check].
type CheckOptions struct {
	Current   []factor.Factorization
	Candidate factor.Factorization
	Others    []factor.Factorization
	Epsilon   float64 // 0 uses order.DefaultEpsilon
}

// =============================================================================
// Results
// =============================================================================

// Result is the outcome of [Runner.Build].
type Result struct {
	Tree     *beurling.Tree
	Stats    Stats
	CacheHit bool
}

// Stats describes a built tree.
type Stats struct {
	Nodes    int
	Leaves   int
	Duration time.Duration
}

// WalkResult aggregates [WalkOptions.Runs] sampled paths.
type WalkResult struct {
	Paths []*beurling.Path

	// Depths[i] averages the statistics of step i over all paths.
	Depths   []DepthStats
	Duration time.Duration
}

// DepthStats are per-depth averages over a set of walks.
type DepthStats struct {
	Depth    int
	Primes   float64
	Omega    float64
	Distinct float64
	Choices  float64
}

// DiagonalResult is the outcome of [Runner.Diagonal].
type DiagonalResult struct {
	Formula  *diagonal.Formula
	CacheHit bool
	Duration time.Duration
}

// CheckResult is the outcome of [Runner.Check].
type CheckResult struct {
	Feasible bool
	Duration time.Duration
}

// summarize averages walk statistics per depth.
func summarize(paths []*beurling.Path) []DepthStats {
	if len(paths) == 0 {
		return nil
	}
	n := paths[0].Len()
	out := make([]DepthStats, n)
	for i := range out {
		out[i].Depth = i
	}
	for _, p := range paths {
		for i, s := range p.Steps {
			out[i].Primes += float64(s.Primes)
			out[i].Omega += float64(s.Omega)
			out[i].Distinct += float64(s.Distinct)
			out[i].Choices += float64(s.Choices)
		}
	}
	runs := float64(len(paths))
	for i := range out {
		out[i].Primes /= runs
		out[i].Omega /= runs
		out[i].Distinct /= runs
		out[i].Choices /= runs
	}
	return out
}
