package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jstigall/legisim/internal/config"
	"github.com/jstigall/legisim/internal/logging"
)

// loadConfig builds the effective configuration for a command:
// defaults -> config file -> environment -> command-line flags.
func loadConfig(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Logging.Level = lvl
	}
	applyFlagOverrides(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, logging.NewLogger(cfg.Logging.Level, os.Stderr), nil
}

// applyFlagOverrides copies explicitly set flags into the config. Only flags
// the command actually defines and the user actually changed are applied, so
// file and environment values survive untouched defaults.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	set := func(name string, apply func()) {
		if f := flags.Lookup(name); f != nil && f.Changed {
			apply()
		}
	}

	set("reps", func() { cfg.Reps, _ = flags.GetInt("reps") })
	set("seats", func() { cfg.Seats, _ = flags.GetInt("seats") })
	set("majority", func() { cfg.MajoritySize, _ = flags.GetInt("majority") })
	set("distance", func() { cfg.Distance, _ = flags.GetFloat64("distance") })
	set("seed", func() { cfg.Seed, _ = flags.GetUint64("seed") })
	set("max-rounds", func() { cfg.MaxRounds, _ = flags.GetInt("max-rounds") })
	set("workers", func() { cfg.Workers, _ = flags.GetInt("workers") })
	set("legacy-clip", func() { cfg.LegacyClip, _ = flags.GetBool("legacy-clip") })
	set("maj-sigma", func() { cfg.Majority.Sigma, _ = flags.GetFloat64("maj-sigma") })
	set("maj-error", func() { cfg.Majority.Err, _ = flags.GetFloat64("maj-error") })
	set("maj-adj", func() { cfg.Majority.Adj, _ = flags.GetFloat64("maj-adj") })
	set("min-sigma", func() { cfg.Minority.Sigma, _ = flags.GetFloat64("min-sigma") })
	set("min-error", func() { cfg.Minority.Err, _ = flags.GetFloat64("min-error") })
	set("min-adj", func() { cfg.Minority.Adj, _ = flags.GetFloat64("min-adj") })
	set("out-dir", func() { cfg.Output.Dir, _ = flags.GetString("out-dir") })
	set("db", func() { cfg.Output.Database, _ = flags.GetString("db") })
}
