package generator

import (
	"fmt"

	"github.com/A-D-Alamdari/single-agent-pathfinding/grid"
)

// Warehouse generates a shelving layout: alternating free rows and shelf
// rows, with vertical aisles cutting through the shelves every aisle
// columns (the first and last columns are always aisles). The layout is
// deterministic and fully connected: every free cell is reachable, since
// each shelf row is pierced by at least the two border aisles.
//
// Start is the top-left corner; goal is the bottom-right corner, which both
// lie on free rows or aisle columns by construction.
func Warehouse(width, height, aisle int) (*grid.World, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}
	if aisle < 2 {
		return nil, fmt.Errorf("%w: %d", ErrBadAisle, aisle)
	}

	isAisleColumn := func(x int) bool {
		return x == 0 || x == width-1 || x%aisle == 0
	}

	var obstacles []grid.Coord
	for y := 1; y < height; y += 2 {
		for x := 0; x < width; x++ {
			if !isAisleColumn(x) {
				obstacles = append(obstacles, grid.Coord{X: x, Y: y})
			}
		}
	}

	start := grid.Coord{X: 0, Y: 0}
	goal := grid.Coord{X: width - 1, Y: height - 1}
	opts := []grid.Option{grid.WithObstacles(obstacles...)}
	if start != goal {
		opts = append(opts, grid.WithStart(start), grid.WithGoal(goal))
	}

	return grid.NewWorld(width, height, opts...)
}
