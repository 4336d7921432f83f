package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	errs "github.com/matzehuels/planegraph/pkg/errors"
	"github.com/matzehuels/planegraph/pkg/pipeline"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	if cfg.Radius != pipeline.DefaultRadius {
		t.Errorf("Radius = %g, want %g", cfg.Radius, pipeline.DefaultRadius)
	}
	if cfg.HitTolerance != defaultHitTolerance {
		t.Errorf("HitTolerance = %g, want %g", cfg.HitTolerance, defaultHitTolerance)
	}
	if cfg.CacheTTL.Duration != pipeline.DefaultCacheTTL {
		t.Errorf("CacheTTL = %s, want %s", cfg.CacheTTL, pipeline.DefaultCacheTTL)
	}
	if !cfg.HighlightFree {
		t.Error("HighlightFree should default to true")
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing default file", func(t *testing.T) {
		cfg, err := loadConfig(filepath.Join(dir, "absent.toml"), false)
		if err != nil {
			t.Fatalf("loadConfig: %v", err)
		}
		if cfg != defaultConfig() {
			t.Errorf("cfg = %+v, want defaults", cfg)
		}
	})

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := loadConfig(filepath.Join(dir, "absent.toml"), true)
		if !errs.Is(err, errs.ErrCodeInvalidInput) {
			t.Errorf("err = %v, want INVALID_INPUT", err)
		}
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := writeFile(t, dir, "partial.toml", "radius = 2.5\ncache_ttl = \"1h\"\n")
		cfg, err := loadConfig(path, true)
		if err != nil {
			t.Fatalf("loadConfig: %v", err)
		}
		if cfg.Radius != 2.5 {
			t.Errorf("Radius = %g, want 2.5", cfg.Radius)
		}
		if cfg.CacheTTL.Duration != time.Hour {
			t.Errorf("CacheTTL = %s, want 1h", cfg.CacheTTL)
		}
		if cfg.HitTolerance != defaultHitTolerance {
			t.Errorf("HitTolerance = %g, want default", cfg.HitTolerance)
		}
	})

	tests := []struct {
		name    string
		content string
		code    errs.Code
	}{
		{"unknown key", "radius = 1.0\ncolour = \"red\"\n", errs.ErrCodeInvalidInput},
		{"bad syntax", "radius = \n", errs.ErrCodeInvalidInput},
		{"bad duration", "cache_ttl = \"soon\"\n", errs.ErrCodeInvalidInput},
		{"zero radius", "radius = 0.0\n", errs.ErrCodeInvalidArgument},
		{"negative tolerance", "hit_tolerance = -1.0\n", errs.ErrCodeInvalidArgument},
		{"negative ttl", "cache_ttl = \"-1h\"\n", errs.ErrCodeInvalidArgument},
		{"zero scale", "scale = 0.0\n", errs.ErrCodeInvalidArgument},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, "bad"+string(rune('a'+i))+".toml", tt.content)
			_, err := loadConfig(path, true)
			if !errs.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestConfigPipelineOptions(t *testing.T) {
	cfg := defaultConfig()
	cfg.Radius = 3
	cfg.MaxIntersectPoints = -1
	cfg.HighlightFree = false

	opts := cfg.pipelineOptions()
	if opts.Radius != 3 || opts.MaxIntersectPoints != -1 || opts.HighlightFree {
		t.Errorf("pipelineOptions() = %+v", opts)
	}
	if opts.CacheTTL != pipeline.DefaultCacheTTL {
		t.Errorf("CacheTTL = %s", opts.CacheTTL)
	}
}

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
	path, err := configPath()
	if err != nil {
		t.Fatalf("configPath: %v", err)
	}
	want := filepath.Join("/tmp/xdg-config", appName, "config.toml")
	if path != want {
		t.Errorf("configPath() = %q, want %q", path, want)
	}
}
