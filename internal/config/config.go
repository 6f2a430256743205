// Package config provides unified configuration loading for legisim.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/jstigall/legisim/internal/legislature"
)

// DefaultConfigFile is looked up in the working directory when no explicit
// path is given.
const DefaultConfigFile = "legisim.yaml"

// Config contains all legisim settings: the simulation parameters, the
// driver parameters, and the ambient output/logging surface.
type Config struct {
	// Reps is the number of repetitions per configuration value.
	Reps int `yaml:"reps"`

	// Seats is the fixed chamber size shared by both parties.
	Seats int `yaml:"seats"`

	// MajoritySize is the requested majority party size; the minority is
	// sized to fill the remaining seats.
	MajoritySize int `yaml:"majority_size"`

	// Distance is the separation between the two party means; the parties
	// sit at ±Distance/2.
	Distance float64 `yaml:"distance"`

	Majority PartyConfig `yaml:"majority"`
	Minority PartyConfig `yaml:"minority"`

	// Seed is the base random seed; repetition i derives its generator
	// from (Seed, i).
	Seed uint64 `yaml:"seed"`

	// MaxRounds aborts a repetition after this many failed votes.
	// Zero disables the cap.
	MaxRounds int `yaml:"max_rounds"`

	// Workers sizes the sweep worker pool. Zero means one worker per CPU.
	Workers int `yaml:"workers"`

	// LegacyClip reproduces the historical asymmetric ideal-point clipping.
	LegacyClip bool `yaml:"legacy_clip"`

	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
}

// PartyConfig holds one party's distribution and fatigue parameters.
type PartyConfig struct {
	// Sigma is the standard deviation of members' ideal points.
	Sigma float64 `yaml:"sigma"`

	// Err is the initial acceptance radius assigned to every member.
	Err float64 `yaml:"error"`

	// Adj is the per-vote fatigue increment.
	Adj float64 `yaml:"adjustment"`
}

// LoggingConfig configures legisim's logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	// "debug" enables round tracing to <output dir>/rounds.jsonl.
	// "trace" additionally logs every voting round to stderr.
	Level string `yaml:"level"`
}

// OutputConfig configures where results are written.
type OutputConfig struct {
	// Dir is the directory CSV files and round traces are written to.
	Dir string `yaml:"dir"`

	// Database is an optional SQLite archive path. Empty disables the
	// archive.
	Database string `yaml:"database,omitempty"`
}

// Default returns a Config matching the canonical simulation: a 101-seat
// chamber with a 51-seat majority, party means one unit apart, sigma 0.1,
// initial window 0.02 and fatigue increment 0.01.
func Default() *Config {
	return &Config{
		Reps:         1000,
		Seats:        101,
		MajoritySize: 51,
		Distance:     1.0,
		Majority:     PartyConfig{Sigma: 0.1, Err: 0.02, Adj: 0.01},
		Minority:     PartyConfig{Sigma: 0.1, Err: 0.02, Adj: 0.01},
		Seed:         0,
		MaxRounds:    legislature.DefaultMaxRounds,
		Workers:      0,
		Logging:      LoggingConfig{Level: "info"},
		Output:       OutputConfig{Dir: "simulation_output"},
	}
}

// Load loads configuration from path (or ./legisim.yaml when path is empty)
// and applies environment variable overrides.
// Order: defaults -> file -> environment variables.
func Load(path string) (*Config, error) {
	config := Default()

	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			path = DefaultConfigFile
		}
	}
	if path != "" {
		fileConfig, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		config = fileConfig
	}

	applyEnvOverrides(config)

	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return config, nil
}

// Validate checks that the configuration is valid before any repetition
// begins.
func (c *Config) Validate() error {
	if c.Reps < 1 {
		return fmt.Errorf("reps must be at least 1, got %d", c.Reps)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Workers)
	}

	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}

	return c.Simulation().Validate()
}

// Simulation projects the app config down to the core repetition config.
func (c *Config) Simulation() legislature.Config {
	return legislature.Config{
		Seats:        c.Seats,
		MajoritySize: c.MajoritySize,
		Distance:     c.Distance,
		Majority:     legislature.PartyParams{Sigma: c.Majority.Sigma, Err: c.Majority.Err, Adj: c.Majority.Adj},
		Minority:     legislature.PartyParams{Sigma: c.Minority.Sigma, Err: c.Minority.Err, Adj: c.Minority.Adj},
		Seed:         c.Seed,
		MaxRounds:    c.MaxRounds,
		LegacyClip:   c.LegacyClip,
	}
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("LEGISIM_REPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Reps = n
		}
	}

	if v := os.Getenv("LEGISIM_SEED"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			config.Seed = n
		}
	}

	if v := os.Getenv("LEGISIM_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Workers = n
		}
	}

	if v := os.Getenv("LEGISIM_MAX_ROUNDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.MaxRounds = n
		}
	}

	if v := os.Getenv("LEGISIM_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}

	if v := os.Getenv("LEGISIM_OUTPUT_DIR"); v != "" {
		config.Output.Dir = v
	}

	if v := os.Getenv("LEGISIM_DATABASE"); v != "" {
		config.Output.Database = v
	}
}
