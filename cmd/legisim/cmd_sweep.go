package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jstigall/legisim/internal/results"
	"github.com/jstigall/legisim/internal/sweep"
)

// sweepOutputName maps a sweep name to its default CSV filename.
func sweepOutputName(name string) string {
	switch name {
	case "party-size":
		return "output_party_size.csv"
	case "distance":
		return "output_party_distance.csv"
	case "intraparty":
		return "output_intraparty.csv"
	default:
		return "output.csv"
	}
}

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep {party-size|distance|intraparty}",
		Short: "Run repetitions across a parameter grid on a worker pool",
		Long: `Run a batch of repetitions for every value in a parameter grid and write
the concatenated outcome table as CSV. Grid points are dispatched across a
fixed-size worker pool; rows keep grid order regardless of completion order.

Grids:
  party-size   majority size 51..99 in steps of 2
  distance     party-mean separation 0.00..2.00 in steps of 0.05
  intraparty   both parties' sigma 0.01..0.99 in steps of 0.02

Examples:
  legisim sweep distance
  legisim sweep party-size --reps 10000 --workers 8
  legisim sweep intraparty --db results.db`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"party-size", "distance", "intraparty"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			jsonOut, _ := cmd.Flags().GetBool("json")
			outFile, _ := cmd.Flags().GetString("out")

			name := args[0]
			base := cfg.Simulation()

			var points []sweep.Point
			switch name {
			case "party-size":
				points = sweep.PartySizeGrid(base)
			case "distance":
				points = sweep.DistanceGrid(base)
			case "intraparty":
				points = sweep.IntrapartyGrid(base)
			default:
				return fmt.Errorf("unknown sweep %q (valid: party-size, distance, intraparty)", name)
			}

			if outFile == "" {
				outFile = filepath.Join(cfg.Output.Dir, sweepOutputName(name))
			}

			logger.Info("sweep running", "sweep", name, "points", len(points),
				"reps", cfg.Reps, "workers", cfg.Workers)
			start := time.Now()

			outcomes, err := sweep.Run(points, cfg.Reps, cfg.Workers, logger)
			if err != nil {
				return err
			}

			if err := results.WriteCSVFile(outFile, outcomes); err != nil {
				return err
			}

			if cfg.Output.Database != "" {
				if err := archive(cfg.Output.Database, name, outcomes); err != nil {
					return err
				}
			}

			logger.Info("sweep complete", "rows", len(outcomes),
				"output", outFile, "duration", time.Since(start))

			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(outcomes)
			}
			fmt.Printf("Wrote %d repetitions across %d grid points to %s\n",
				len(outcomes), len(points), outFile)
			return nil
		},
	}

	cmd.Flags().Int("reps", 0, "Repetitions per grid point")
	cmd.Flags().Int("workers", 0, "Worker pool size (0 = one per CPU)")
	cmd.Flags().Uint64("seed", 0, "Base random seed")
	cmd.Flags().Int("max-rounds", 0, "Round cap per repetition (0 disables)")
	cmd.Flags().String("out", "", "Output CSV path (default depends on sweep)")
	cmd.Flags().String("out-dir", "", "Output directory")
	cmd.Flags().String("db", "", "SQLite archive path (empty disables)")

	return cmd
}
