package mcp

import (
	"context"
	"fmt"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jstigall/legisim/internal/legislature"
	"github.com/jstigall/legisim/internal/sweep"
)

func (s *Server) handleRun(ctx context.Context, req *sdk.CallToolRequest, args RunInput) (*sdk.CallToolResult, RunOutput, error) {
	cfg := s.cfg.Simulation()
	reps := s.cfg.Reps

	if args.Reps > 0 {
		reps = args.Reps
	}
	if reps > maxToolReps {
		return nil, RunOutput{}, fmt.Errorf("reps %d exceeds tool limit %d", reps, maxToolReps)
	}
	if args.MajoritySize > 0 {
		cfg.MajoritySize = args.MajoritySize
	}
	if args.Distance > 0 {
		cfg.Distance = args.Distance
	}
	if args.Sigma > 0 {
		cfg.Majority.Sigma = args.Sigma
		cfg.Minority.Sigma = args.Sigma
	}
	if args.Seed > 0 {
		cfg.Seed = args.Seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, RunOutput{}, fmt.Errorf("invalid configuration: %w", err)
	}

	s.logger.Debug("mcp run", "reps", reps, "majority", cfg.MajoritySize, "distance", cfg.Distance)

	outcomes, err := legislature.RunBatch(cfg, reps, s.logger, nil)
	if err != nil {
		return nil, RunOutput{}, err
	}

	return nil, RunOutput{Outcomes: toItems(outcomes), Count: len(outcomes)}, nil
}

func (s *Server) handleSweep(ctx context.Context, req *sdk.CallToolRequest, args SweepInput) (*sdk.CallToolResult, SweepOutput, error) {
	base := s.cfg.Simulation()

	var points []sweep.Point
	switch args.Sweep {
	case "party-size":
		points = sweep.PartySizeGrid(base)
	case "distance":
		points = sweep.DistanceGrid(base)
	case "intraparty":
		points = sweep.IntrapartyGrid(base)
	default:
		return nil, SweepOutput{}, fmt.Errorf("unknown sweep %q (valid: party-size, distance, intraparty)", args.Sweep)
	}

	reps := args.Reps
	if reps <= 0 {
		reps = 10
	}
	if reps*len(points) > maxToolReps {
		return nil, SweepOutput{}, fmt.Errorf("%d reps across %d points exceeds tool limit %d rows",
			reps, len(points), maxToolReps)
	}

	s.logger.Debug("mcp sweep", "sweep", args.Sweep, "points", len(points), "reps", reps)

	outcomes, err := sweep.Run(points, reps, s.cfg.Workers, s.logger)
	if err != nil {
		return nil, SweepOutput{}, err
	}

	return nil, SweepOutput{
		Sweep:    args.Sweep,
		Points:   len(points),
		Outcomes: toItems(outcomes),
		Count:    len(outcomes),
	}, nil
}
