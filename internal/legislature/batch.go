package legislature

import (
	"log/slog"

	"github.com/jstigall/legisim/internal/logging"
)

// RunRepetition runs repetition rep of cfg to convergence and returns its
// outcome with Rep set to rep+1. This is the single entry point the sweep
// driver and the MCP tools build on.
func RunRepetition(cfg Config, rep int, logger *slog.Logger, trace *logging.TraceLogger) (Outcome, error) {
	out, err := NewSession(cfg, rep, logger, trace).Run()
	if err != nil {
		return Outcome{}, err
	}
	out.Rep = rep + 1
	return out, nil
}

// RunBatch runs reps repetitions of cfg sequentially and returns one outcome
// per repetition, numbered 1-based. It fails fast on the first repetition
// that diverges.
func RunBatch(cfg Config, reps int, logger *slog.Logger, trace *logging.TraceLogger) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, reps)
	for rep := 0; rep < reps; rep++ {
		out, err := RunRepetition(cfg, rep, logger, trace)
		if err != nil {
			return nil, err
		}
		outcomes = append(outcomes, out)
	}
	return outcomes, nil
}
