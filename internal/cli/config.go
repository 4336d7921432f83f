package cli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/planegraph/pkg/errors"
	"github.com/matzehuels/planegraph/pkg/pipeline"
)

// defaultHitTolerance is how far from a vertex or edge a query point may lie
// and still hit it, in plane units.
const defaultHitTolerance = 0.07

// Config holds user preferences read from config.toml.
//
//	radius = 1.0
//	hit_tolerance = 0.07
//	cache_ttl = "720h"
//	highlight_free = true
//	max_intersect_points = 60
//	scale = 72.0
type Config struct {
	Radius             float64  `toml:"radius"`
	HitTolerance       float64  `toml:"hit_tolerance"`
	CacheTTL           duration `toml:"cache_ttl"`
	HighlightFree      bool     `toml:"highlight_free"`
	MaxIntersectPoints int      `toml:"max_intersect_points"`
	Scale              float64  `toml:"scale"`
}

// duration lets TOML values like "720h" decode into a time.Duration.
type duration struct{ time.Duration }

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// defaultConfig returns the configuration used when no file exists.
func defaultConfig() Config {
	return Config{
		Radius:             pipeline.DefaultRadius,
		HitTolerance:       defaultHitTolerance,
		CacheTTL:           duration{pipeline.DefaultCacheTTL},
		HighlightFree:      true,
		MaxIntersectPoints: pipeline.DefaultMaxIntersectPoints,
		Scale:              pipeline.DefaultScale,
	}
}

// loadConfig reads the config file at path on top of the defaults.
// A missing file is not an error unless the path was given explicitly.
func loadConfig(path string, explicit bool) (Config, error) {
	cfg := defaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return defaultConfig(), nil
		}
		return cfg, errs.Wrap(errs.ErrCodeInvalidInput, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errs.New(errs.ErrCodeInvalidInput, "config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if err := errs.ValidateRadius(c.Radius); err != nil {
		return err
	}
	if err := errs.ValidateTolerance(c.HitTolerance); err != nil {
		return err
	}
	if c.CacheTTL.Duration < 0 {
		return errs.New(errs.ErrCodeInvalidArgument, "cache_ttl must not be negative, got %s", c.CacheTTL)
	}
	if c.Scale <= 0 {
		return errs.New(errs.ErrCodeInvalidArgument, "scale must be positive, got %g", c.Scale)
	}
	return nil
}

// pipelineOptions converts the config into pipeline options.
func (c Config) pipelineOptions() pipeline.Options {
	return pipeline.Options{
		Radius:             c.Radius,
		MaxIntersectPoints: c.MaxIntersectPoints,
		CacheTTL:           c.CacheTTL.Duration,
		HighlightFree:      c.HighlightFree,
		Scale:              c.Scale,
	}
}

// configPath returns the default config file location using the XDG standard
// (~/.config/planegraph/config.toml).
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
