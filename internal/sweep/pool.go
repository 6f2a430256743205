package sweep

import (
	"log/slog"
	"runtime"
	"sync"

	"github.com/jstigall/legisim/internal/legislature"
)

// Run executes reps repetitions for every grid point on a fixed-size worker
// pool and returns the concatenated outcomes in grid order, renumbered
// 1-based across the whole sweep. workers <= 0 sizes the pool to the host's
// core count. Workers share nothing but the task channel; each point's batch
// is fully independent.
//
// If any point diverges, the first error (in grid order) is returned after
// all workers drain.
func Run(points []Point, reps, workers int, logger *slog.Logger) ([]legislature.Outcome, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(points) {
		workers = len(points)
	}
	if logger == nil {
		logger = slog.Default()
	}

	batches := make([][]legislature.Outcome, len(points))
	errs := make([]error, len(points))
	tasks := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range tasks {
				batches[i], errs[i] = legislature.RunBatch(points[i].Config, reps, logger, nil)
				if errs[i] != nil {
					logger.Warn("sweep point failed", "point", points[i].Name, "error", errs[i])
				}
			}
		}()
	}

	for i := range points {
		tasks <- i
	}
	close(tasks)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	// Concatenate in grid order and renumber across the sweep.
	var outcomes []legislature.Outcome
	for _, batch := range batches {
		outcomes = append(outcomes, batch...)
	}
	for i := range outcomes {
		outcomes[i].Rep = i + 1
	}
	return outcomes, nil
}
