// Package sweep runs batches of repetitions across parameter grids on a
// fixed-size worker pool and assembles the results into one table.
package sweep

import (
	"fmt"

	"github.com/jstigall/legisim/internal/legislature"
)

// A Point is one configuration in a sweep grid.
type Point struct {
	Name   string
	Config legislature.Config
}

// PartySizeGrid varies the majority party size from 51 to 99 seats in steps
// of two, holding everything else at the base configuration.
func PartySizeGrid(base legislature.Config) []Point {
	var points []Point
	for size := 51; size < 101; size += 2 {
		cfg := base
		cfg.MajoritySize = size
		points = append(points, Point{
			Name:   fmt.Sprintf("majority=%d", size),
			Config: cfg,
		})
	}
	return points
}

// DistanceGrid varies the separation between party means from 0.0 to 2.0 in
// steps of 0.05.
func DistanceGrid(base legislature.Config) []Point {
	var points []Point
	for i := 0; i <= 40; i++ {
		cfg := base
		cfg.Distance = 0.05 * float64(i)
		points = append(points, Point{
			Name:   fmt.Sprintf("distance=%.2f", cfg.Distance),
			Config: cfg,
		})
	}
	return points
}

// IntrapartyGrid varies both parties' ideal-point spread from 0.01 to 0.99
// in steps of 0.02.
func IntrapartyGrid(base legislature.Config) []Point {
	var points []Point
	for i := 0; i < 50; i++ {
		cfg := base
		sigma := 0.01 + 0.02*float64(i)
		cfg.Majority.Sigma = sigma
		cfg.Minority.Sigma = sigma
		points = append(points, Point{
			Name:   fmt.Sprintf("sigma=%.2f", sigma),
			Config: cfg,
		})
	}
	return points
}
