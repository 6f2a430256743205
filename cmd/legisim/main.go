package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "legisim",
		Short: "Agent-based legislative voting simulator",
		Long: `legisim simulates a one-dimensional spatial-voting legislature.

Legislators in a majority and minority party draw ideal points from normal
distributions and vote on proposals until one passes a simple majority.
Every failed round widens each legislator's acceptance window, modeling
voting fatigue. Batches of repetitions can be swept across party size,
inter-party distance, and intraparty spread, with results written to CSV
and optionally archived in SQLite.`,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON (for agent consumption)")
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (default ./legisim.yaml when present)")
	rootCmd.PersistentFlags().String("log-level", "", "Log verbosity: info, debug, or trace")

	// Add subcommands
	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newSweepCmd(),
		newMCPServerCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				json.NewEncoder(os.Stdout).Encode(map[string]string{"version": version})
			} else {
				fmt.Printf("legisim version %s\n", version)
			}
		},
	}
}
