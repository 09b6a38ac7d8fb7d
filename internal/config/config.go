// Package config loads pathwise settings from defaults, the environment and
// an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/abhisek/pathwise/internal/roadmap"
)

// Environment variable names.
const (
	EnvTopK          = "PATHWISE_TOP_K"
	EnvTiebreakSeed  = "PATHWISE_TIEBREAK_SEED"
	EnvTiebreakNoise = "PATHWISE_TIEBREAK_NOISE"
	EnvScorer        = "PATHWISE_SCORER"
	EnvCatalog       = "PATHWISE_CATALOG"
	EnvHTTPAddr      = "PATHWISE_HTTP_ADDR"
	EnvLogLevel      = "PATHWISE_LOG_LEVEL"
	EnvLogFormat     = "PATHWISE_LOG_FORMAT"
)

// Config holds all runtime settings.
type Config struct {
	// TopK caps recommendation lists. Default: 5.
	TopK int

	// TiebreakSeed seeds the roadmap jitter source. Default: 123.
	TiebreakSeed uint64

	// TiebreakNoise bounds the roadmap jitter. Default: 0.01.
	TiebreakNoise float64

	// Scorer names the roadmap scoring strategy.
	// Values: "tiny-network", "linear"
	Scorer string

	// CatalogPath points at a YAML catalog. Empty uses the embedded seed.
	CatalogPath string

	// HTTPAddr is the listen address for `pathwise serve`. Default: ":8080".
	HTTPAddr string

	LogLevel  string // Default: "info"
	LogFormat string // "console" or "json". Default: "console"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		TopK:          5,
		TiebreakSeed:  123,
		TiebreakNoise: roadmap.DefaultNoise,
		Scorer:        roadmap.ScorerTinyNetwork,
		HTTPAddr:      ":8080",
		LogLevel:      "info",
		LogFormat:     "console",
	}
}

// LoadEnvFile loads variables from a .env file without overriding variables
// already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv(EnvTopK); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvTopK, err)
		}
		cfg.TopK = n
	}
	if v := os.Getenv(EnvTiebreakSeed); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvTiebreakSeed, err)
		}
		cfg.TiebreakSeed = n
	}
	if v := os.Getenv(EnvTiebreakNoise); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvTiebreakNoise, err)
		}
		cfg.TiebreakNoise = f
	}
	if v := os.Getenv(EnvScorer); v != "" {
		cfg.Scorer = v
	}
	if v := os.Getenv(EnvCatalog); v != "" {
		cfg.CatalogPath = v
	}
	if v := os.Getenv(EnvHTTPAddr); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
	}

	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if c.TopK < 0 {
		return fmt.Errorf("%s must be >= 0, got %d", EnvTopK, c.TopK)
	}
	if c.TiebreakNoise < 0 || c.TiebreakNoise > 0.1 {
		return fmt.Errorf("%s must be within [0, 0.1], got %g", EnvTiebreakNoise, c.TiebreakNoise)
	}
	if _, err := roadmap.ScorerByName(c.Scorer); err != nil {
		return fmt.Errorf("%s: %w", EnvScorer, err)
	}
	if strings.TrimSpace(c.HTTPAddr) == "" {
		return fmt.Errorf("%s is required", EnvHTTPAddr)
	}
	switch strings.ToLower(c.LogFormat) {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log format: %q", c.LogFormat)
	}
	return nil
}

// RoadmapOptions converts the roadmap settings into scheduler options.
func (c Config) RoadmapOptions() (roadmap.Options, error) {
	scorer, err := roadmap.ScorerByName(c.Scorer)
	if err != nil {
		return roadmap.Options{}, err
	}
	return roadmap.Options{
		Scorer: scorer,
		Seed:   c.TiebreakSeed,
		Noise:  c.TiebreakNoise,
	}, nil
}
