package generator

import (
	"fmt"
	"math/rand"

	"github.com/A-D-Alamdari/single-agent-pathfinding/grid"
)

// Maze generates a perfect maze (a tree: exactly one path between any two
// corridor cells) over a logical cellWidth×cellHeight cell grid, scaled to a
// (2·cellWidth+1)×(2·cellHeight+1) world. Corridor cells sit on odd
// coordinates; walls on even ones. Carving uses the recursive-backtracker
// walk driven by the seeded source, so the same seed reproduces the maze.
//
// Start is the top-left corridor cell (1,1); goal is the bottom-right one.
func Maze(cellWidth, cellHeight int, seed int64) (*grid.World, error) {
	if cellWidth <= 0 || cellHeight <= 0 {
		return nil, fmt.Errorf("%w: %dx%d cells", ErrBadDimensions, cellWidth, cellHeight)
	}

	width := 2*cellWidth + 1
	height := 2*cellHeight + 1

	// carved[c] marks corridor cells in scaled coordinates.
	carved := make(map[grid.Coord]struct{}, width*height/2)
	scale := func(cx, cy int) grid.Coord {
		return grid.Coord{X: 2*cx + 1, Y: 2*cy + 1}
	}

	rng := rand.New(rand.NewSource(seed))
	visited := make(map[[2]int]struct{}, cellWidth*cellHeight)
	stack := [][2]int{{0, 0}}
	visited[[2]int{0, 0}] = struct{}{}
	carved[scale(0, 0)] = struct{}{}

	dirs := [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		// Collect unvisited cell neighbors, then pick one at random.
		var next [][2]int
		for _, d := range dirs {
			n := [2]int{cur[0] + d[0], cur[1] + d[1]}
			if n[0] < 0 || n[0] >= cellWidth || n[1] < 0 || n[1] >= cellHeight {
				continue
			}
			if _, seen := visited[n]; !seen {
				next = append(next, n)
			}
		}
		if len(next) == 0 {
			stack = stack[:len(stack)-1]

			continue
		}
		n := next[rng.Intn(len(next))]
		visited[n] = struct{}{}
		carved[scale(n[0], n[1])] = struct{}{}
		// Knock out the wall cell between cur and n.
		wall := grid.Coord{
			X: (scale(cur[0], cur[1]).X + scale(n[0], n[1]).X) / 2,
			Y: (scale(cur[0], cur[1]).Y + scale(n[0], n[1]).Y) / 2,
		}
		carved[wall] = struct{}{}
		stack = append(stack, n)
	}

	// Everything not carved is a wall.
	obstacles := make([]grid.Coord, 0, width*height-len(carved))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := grid.Coord{X: x, Y: y}
			if _, open := carved[c]; !open {
				obstacles = append(obstacles, c)
			}
		}
	}

	start := scale(0, 0)
	goal := scale(cellWidth-1, cellHeight-1)
	opts := []grid.Option{grid.WithObstacles(obstacles...)}
	if start != goal {
		opts = append(opts, grid.WithStart(start), grid.WithGoal(goal))
	}

	return grid.NewWorld(width, height, opts...)
}
