// Package mcp provides an MCP (Model Context Protocol) server for legisim.
package mcp

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jstigall/legisim/internal/config"
)

// Server wraps the MCP SDK server and exposes the simulator as tools.
type Server struct {
	server *sdk.Server
	cfg    *config.Config
	logger *slog.Logger
}

// Options holds server configuration.
type Options struct {
	Name    string // Server name (e.g., "legisim")
	Version string // Server version
	Config  *config.Config
	Logger  *slog.Logger
}

// NewServer creates a new MCP server with the simulation tools registered.
func NewServer(opts *Options) (*Server, error) {
	mcpServer := sdk.NewServer(&sdk.Implementation{
		Name:    opts.Name,
		Version: opts.Version,
	}, &sdk.ServerOptions{
		InitializedHandler: func(ctx context.Context, req *sdk.InitializedRequest) {
			// Client initialized, ready to serve
		},
	})

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		server: mcpServer,
		cfg:    opts.Config,
		logger: logger,
	}
	s.registerTools()

	return s, nil
}

// registerTools registers all legisim MCP tools with the server.
func (s *Server) registerTools() {
	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "legisim_run",
		Description: "Run a batch of legislature repetitions for one configuration and return the outcome rows",
	}, s.handleRun)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "legisim_sweep",
		Description: "Run a named parameter sweep (party-size, distance, or intraparty) and return the concatenated outcome rows",
	}, s.handleSweep)
}

// Run starts the MCP server over stdio transport.
// This blocks until the client disconnects or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return s.server.Run(ctx, &sdk.StdioTransport{})
}
