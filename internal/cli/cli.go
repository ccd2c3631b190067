// Package cli implements the beurling command-line interface.
//
// Commands build factorization trees under the supported policies, sample
// random branches, extract diagonal formulas, test candidate orders, and
// render stored snapshots. Built trees are cached on disk between runs.
//
// # Commands
//
//   - build: grow a tree and optionally save it as a snapshot
//   - walk: average statistics over random branches
//   - diagonal: print the binomial formula of a diagonal
//   - check: test whether a value can come next in a sequence
//   - stats: print the triangle of a stored snapshot
//   - render: export a snapshot as DOT, SVG or JSON
//   - cache: inspect or clear the snapshot cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/beurling/pkg/buildinfo"
	"github.com/matzehuels/beurling/pkg/cache"
	"github.com/matzehuels/beurling/pkg/observability"
	"github.com/matzehuels/beurling/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "beurling"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config

	configFile string
	out        io.Writer
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: DefaultConfig(),
		out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetOutput redirects command output, which defaults to stdout.
func (c *CLI) SetOutput(w io.Writer) {
	c.out = w
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Explore orderings of Beurling generalized integers",
		Long: `beurling enumerates the ways a multiplicative sequence of generalized
integers can be ordered, one admitted value at a time, and analyses the
resulting trees.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			hooks := &logHooks{logger: c.Logger}
			observability.SetEngineHooks(hooks)
			observability.SetCacheHooks(hooks)
			c.Logger.Debug("starting", "version", buildinfo.Short(), "command", cmd.Name())
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (default $XDG_CONFIG_HOME/beurling/config.toml)")

	root.AddCommand(c.buildCommand())
	root.AddCommand(c.walkCommand())
	root.AddCommand(c.diagonalCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the --config file or the default location.
func (c *CLI) loadConfig() error {
	path := c.configFile
	if path == "" {
		p, err := configPath()
		if err != nil {
			c.Logger.Debug("no config location", "error", err)
			return nil
		}
		path = p
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}
	c.Logger.Debug("loaded config", "path", path)
	c.Config = cfg
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cc, err := newCache(noCache || c.Config.Cache.Disabled)
	if err != nil {
		return nil, err
	}
	r := pipeline.NewRunner(cc, nil, c.Logger)
	r.TTL = c.Config.Cache.TTL.Duration
	return r, nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/beurling/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
