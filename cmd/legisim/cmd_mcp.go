package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jstigall/legisim/internal/mcp"
)

func newMCPServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp-server",
		Short: "Start an MCP server exposing the simulator over stdio",
		Long: `Start a Model Context Protocol server that exposes legisim_run and
legisim_sweep as tools. The server speaks MCP over stdio and blocks until
the client disconnects.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			server, err := mcp.NewServer(&mcp.Options{
				Name:    "legisim",
				Version: version,
				Config:  cfg,
				Logger:  logger,
			})
			if err != nil {
				return err
			}

			logger.Info("mcp server starting", "version", version)
			return server.Run(context.Background())
		},
	}
}
