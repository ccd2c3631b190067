package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/beurling/pkg/beurling"
	"github.com/matzehuels/beurling/pkg/cache"
	"github.com/matzehuels/beurling/pkg/pipeline"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Build.Policy != string(pipeline.DefaultPolicy) || cfg.Build.Height != pipeline.DefaultHeight {
		t.Errorf("unexpected build defaults: %+v", cfg.Build)
	}
	if cfg.Build.MaxPrimes != beurling.Unlimited || cfg.Build.MaxComposites != beurling.Unlimited {
		t.Errorf("budgets should default to unlimited, got %+v", cfg.Build)
	}
	if cfg.Walk.Runs != pipeline.DefaultWalkRuns {
		t.Errorf("unexpected walk defaults: %+v", cfg.Walk)
	}
	if cfg.Cache.TTL.Duration != cache.DefaultTTL || cfg.Cache.Disabled {
		t.Errorf("unexpected cache defaults: %+v", cfg.Cache)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestLoadConfigPartial(t *testing.T) {
	path := writeFile(t, `
[walk]
runs = 500
seed = 42

[cache]
ttl = "90m"
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Walk.Runs != 500 || cfg.Walk.Seed != 42 {
		t.Errorf("walk section not applied: %+v", cfg.Walk)
	}
	if cfg.Walk.Height != pipeline.DefaultWalkHeight {
		t.Errorf("absent key should keep its default, got height %d", cfg.Walk.Height)
	}
	if cfg.Cache.TTL.Duration != 90*time.Minute {
		t.Errorf("ttl = %v, want 90m", cfg.Cache.TTL.Duration)
	}
	if cfg.Build != DefaultConfig().Build {
		t.Errorf("absent section should keep defaults, got %+v", cfg.Build)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown key", "[build]\ndepth = 3\n", "unknown key"},
		{"bad duration", "[cache]\nttl = \"soon\"\n", "invalid duration"},
		{"bad syntax", "[build\n", "load config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeFile(t, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("LoadConfig error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestConfigPathXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/custom-config")
	path, err := configPath()
	if err != nil {
		t.Fatalf("configPath: %v", err)
	}
	if want := filepath.Join("/tmp/custom-config", appName, "config.toml"); path != want {
		t.Errorf("configPath() = %q, want %q", path, want)
	}
}

func TestParseSerials(t *testing.T) {
	got, err := parseSerials("0,0; 0,1 1,1\t0,1|1,1")
	if err != nil {
		t.Fatalf("parseSerials: %v", err)
	}
	want := []string{"0,0", "0,1", "1,1", "0,1|1,1"}
	if len(got) != len(want) {
		t.Fatalf("got %d values, want %d", len(got), len(want))
	}
	for i, v := range got {
		if v.String() != want[i] {
			t.Errorf("value %d = %s, want %s", i, v, want[i])
		}
	}

	if _, err := parseSerials("0,1; nope"); err == nil {
		t.Error("invalid serial should fail")
	}
	if vals, err := parseSerials(""); err != nil || len(vals) != 0 {
		t.Errorf("empty input should yield nothing, got %v, %v", vals, err)
	}
}

func TestRenderTriangle(t *testing.T) {
	out := renderTriangle([][]int{{1}, {1, 1}, {1, 2, 1}})
	for _, s := range []string{"depth", "1", "2"} {
		if !strings.Contains(out, s) {
			t.Errorf("triangle table missing %q:\n%s", s, out)
		}
	}
	if renderTriangle(nil) != "" {
		t.Error("empty triangle should render nothing")
	}
}

func TestExampleConfig(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("..", "..", "examples", "config.toml"))
	if err != nil {
		t.Fatalf("example config should load: %v", err)
	}
	if cfg.Build.Policy != "restricted" || cfg.Walk.Seed != 42 || cfg.Cache.TTL.Duration != 72*time.Hour {
		t.Errorf("unexpected example config: %+v", cfg)
	}
}
