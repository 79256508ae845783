// Package generator produces grid.World maps for demos, benchmarks, and the
// CLI: seeded random obstacle fields, perfect mazes, and warehouse layouts.
//
// All generation is deterministic under an explicit seed; validation is
// delegated to grid.NewWorld so a returned world is always well-formed.
//
// Errors:
//
//   - ErrBadDimensions: non-positive width or height.
//   - ErrBadRatio: obstacle ratio outside [0, 1].
//   - ErrBadAisle: warehouse aisle spacing below 2.
package generator

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/A-D-Alamdari/single-agent-pathfinding/grid"
)

// Sentinel errors for generation parameters.
var (
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("generator: dimensions must be positive")

	// ErrBadRatio indicates an obstacle ratio outside [0, 1].
	ErrBadRatio = errors.New("generator: obstacle ratio must be within [0, 1]")

	// ErrBadAisle indicates a warehouse aisle spacing below 2.
	ErrBadAisle = errors.New("generator: aisle spacing must be at least 2")
)

// Random generates a width×height world with approximately ratio×cells
// obstacles, start at the top-left corner and goal at the bottom-right.
// The endpoints are never blocked. The same seed always yields the same map.
// Random does not guarantee the goal is reachable; pair it with a search run
// when solvability matters.
func Random(width, height int, ratio float64, seed int64) (*grid.World, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}
	if ratio < 0 || ratio > 1 {
		return nil, fmt.Errorf("%w: %g", ErrBadRatio, ratio)
	}

	start := grid.Coord{X: 0, Y: 0}
	goal := grid.Coord{X: width - 1, Y: height - 1}

	cells := make([]grid.Coord, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := grid.Coord{X: x, Y: y}
			if c == start || c == goal {
				continue
			}
			cells = append(cells, c)
		}
	}

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})
	count := int(float64(len(cells))*ratio + 0.5)
	obstacles := cells[:count]

	opts := []grid.Option{grid.WithObstacles(obstacles...)}
	if start != goal {
		opts = append(opts, grid.WithStart(start), grid.WithGoal(goal))
	}

	return grid.NewWorld(width, height, opts...)
}
