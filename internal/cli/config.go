package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/beurling/pkg/beurling"
	"github.com/matzehuels/beurling/pkg/cache"
	"github.com/matzehuels/beurling/pkg/pipeline"
)

// Config is the on-disk configuration. Command-line flags override it.
//
//	[build]
//	policy = "restricted"
//	height = 8
//	max_primes = 3
//
//	[walk]
//	height = 60
//	runs = 500
//	seed = 42
//
//	[cache]
//	disabled = false
//	ttl = "72h"
type Config struct {
	Build BuildConfig `toml:"build"`
	Walk  WalkConfig  `toml:"walk"`
	Cache CacheConfig `toml:"cache"`
}

// BuildConfig holds defaults for the build command.
type BuildConfig struct {
	Policy        string `toml:"policy"`
	Height        int    `toml:"height"`
	MaxPrimes     int    `toml:"max_primes"`
	MaxComposites int    `toml:"max_composites"`
}

// WalkConfig holds defaults for the walk command.
type WalkConfig struct {
	Height    int    `toml:"height"`
	Runs      int    `toml:"runs"`
	MaxPrimes int    `toml:"max_primes"`
	Seed      uint64 `toml:"seed"`
}

// CacheConfig controls the snapshot cache.
type CacheConfig struct {
	Disabled bool     `toml:"disabled"`
	TTL      Duration `toml:"ttl"`
}

// Duration is a time.Duration written as a Go duration string in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText parses strings such as "36h" or "90m".
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// MarshalText writes the duration in Go syntax.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Build: BuildConfig{
			Policy:        string(pipeline.DefaultPolicy),
			Height:        pipeline.DefaultHeight,
			MaxPrimes:     beurling.Unlimited,
			MaxComposites: beurling.Unlimited,
		},
		Walk: WalkConfig{
			Height: pipeline.DefaultWalkHeight,
			Runs:   pipeline.DefaultWalkRuns,
		},
		Cache: CacheConfig{
			TTL: Duration{cache.DefaultTTL},
		},
	}
}

// LoadConfig reads path over the defaults. A missing file is not an error.
// Keys absent from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return DefaultConfig(), fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return DefaultConfig(), fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// configPath returns the config file path using XDG standard
// (~/.config/beurling/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
