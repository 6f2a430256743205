package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jstigall/legisim/internal/legislature"
	"github.com/jstigall/legisim/internal/logging"
	"github.com/jstigall/legisim/internal/results"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a batch of repetitions for one configuration",
		Long: `Run a batch of repetitions for a single configuration and write the
outcome table as CSV.

Examples:
  legisim run                            # default 101-seat chamber, 1000 reps
  legisim run --reps 10000               # the original study's repetition count
  legisim run --distance 0.5 --seed 42   # closer parties, different seed
  legisim run --db results.db            # additionally archive rows to SQLite`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			jsonOut, _ := cmd.Flags().GetBool("json")
			outFile, _ := cmd.Flags().GetString("out")
			if outFile == "" {
				outFile = filepath.Join(cfg.Output.Dir, "output.csv")
			}

			trace := logging.NewTraceLogger(cfg.Output.Dir, cfg.Logging.Level)
			defer trace.Close()

			logger.Info("simulation running", "reps", cfg.Reps, "seats", cfg.Seats,
				"majority", cfg.MajoritySize, "distance", cfg.Distance, "seed", cfg.Seed)
			start := time.Now()

			outcomes, err := legislature.RunBatch(cfg.Simulation(), cfg.Reps, logger, trace)
			if err != nil {
				return err
			}

			if err := results.WriteCSVFile(outFile, outcomes); err != nil {
				return err
			}

			if cfg.Output.Database != "" {
				if err := archive(cfg.Output.Database, "default", outcomes); err != nil {
					return err
				}
			}

			logger.Info("simulation complete", "rows", len(outcomes),
				"output", outFile, "duration", time.Since(start))

			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(outcomes)
			}
			fmt.Printf("Wrote %d repetitions to %s\n", len(outcomes), outFile)
			return nil
		},
	}

	cmd.Flags().Int("reps", 0, "Number of repetitions")
	cmd.Flags().Int("seats", 0, "Total chamber seat count")
	cmd.Flags().Int("majority", 0, "Majority party size")
	cmd.Flags().Float64("distance", 0, "Distance between party means")
	cmd.Flags().Uint64("seed", 0, "Base random seed")
	cmd.Flags().Int("max-rounds", 0, "Round cap per repetition (0 disables)")
	cmd.Flags().Bool("legacy-clip", false, "Use the historical asymmetric ideal-point clipping")
	cmd.Flags().Float64("maj-sigma", 0, "Majority ideal-point standard deviation")
	cmd.Flags().Float64("maj-error", 0, "Majority initial acceptance radius")
	cmd.Flags().Float64("maj-adj", 0, "Majority per-vote fatigue increment")
	cmd.Flags().Float64("min-sigma", 0, "Minority ideal-point standard deviation")
	cmd.Flags().Float64("min-error", 0, "Minority initial acceptance radius")
	cmd.Flags().Float64("min-adj", 0, "Minority per-vote fatigue increment")
	cmd.Flags().String("out", "", "Output CSV path (default <out-dir>/output.csv)")
	cmd.Flags().String("out-dir", "", "Output directory")
	cmd.Flags().String("db", "", "SQLite archive path (empty disables)")

	return cmd
}

// archive appends outcomes to the SQLite archive under the given label.
func archive(path, label string, outcomes []legislature.Outcome) error {
	db, err := results.OpenArchive(path)
	if err != nil {
		return err
	}
	defer db.Close()
	return db.AppendBatch(context.Background(), label, outcomes)
}
