package grid

import (
	"fmt"
	"sort"
)

// World is an immutable 2D grid map with obstacles and optional endpoints.
// Once constructed it is never mutated; concurrent readers need no locking.
type World struct {
	width, height int
	obstacles     map[Coord]struct{}
	start         *Coord
	goal          *Coord
}

// NewWorld constructs a World of the given dimensions.
// Invariants, checked here and never re-checked by consumers:
//
//   - width > 0 and height > 0
//   - every obstacle lies in bounds
//   - start and goal, if set, lie in bounds and are not obstacles
//   - start != goal when both are set
//
// Any violation returns an error wrapping ErrMapValidation with the
// offending coordinate. Complexity: O(W×H) worst case, O(|obstacles|) typical.
func NewWorld(width, height int, opts ...Option) (*World, error) {
	var cfg worldConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrMapValidation, width, height)
	}

	w := &World{
		width:     width,
		height:    height,
		obstacles: make(map[Coord]struct{}, len(cfg.obstacles)),
		start:     cfg.start,
		goal:      cfg.goal,
	}

	for _, c := range cfg.obstacles {
		if !w.InBounds(c) {
			return nil, fmt.Errorf("%w: obstacle %v out of bounds [0,%d)x[0,%d)", ErrMapValidation, c, width, height)
		}
		w.obstacles[c] = struct{}{}
	}

	if err := w.checkEndpoint(cfg.start, "start"); err != nil {
		return nil, err
	}
	if err := w.checkEndpoint(cfg.goal, "goal"); err != nil {
		return nil, err
	}
	if cfg.start != nil && cfg.goal != nil && *cfg.start == *cfg.goal {
		return nil, fmt.Errorf("%w: start and goal must differ, both %v", ErrMapValidation, *cfg.start)
	}

	return w, nil
}

// checkEndpoint validates a start/goal candidate against bounds and obstacles.
func (w *World) checkEndpoint(c *Coord, name string) error {
	if c == nil {
		return nil
	}
	if !w.InBounds(*c) {
		return fmt.Errorf("%w: %s %v out of bounds [0,%d)x[0,%d)", ErrMapValidation, name, *c, w.width, w.height)
	}
	if w.IsBlocked(*c) {
		return fmt.Errorf("%w: %s %v is an obstacle", ErrMapValidation, name, *c)
	}

	return nil
}

// Width returns the number of columns.
func (w *World) Width() int { return w.width }

// Height returns the number of rows.
func (w *World) Height() int { return w.height }

// Start returns the start cell and whether one is set.
func (w *World) Start() (Coord, bool) {
	if w.start == nil {
		return Coord{}, false
	}

	return *w.start, true
}

// Goal returns the goal cell and whether one is set.
func (w *World) Goal() (Coord, bool) {
	if w.goal == nil {
		return Coord{}, false
	}

	return *w.goal, true
}

// InBounds reports whether c lies within the grid boundaries. Complexity: O(1).
func (w *World) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < w.width && c.Y >= 0 && c.Y < w.height
}

// IsBlocked reports whether c is an obstacle cell. Complexity: O(1).
func (w *World) IsBlocked(c Coord) bool {
	_, blocked := w.obstacles[c]

	return blocked
}

// Obstacles returns a copy of the obstacle set in row-major order.
func (w *World) Obstacles() []Coord {
	out := make([]Coord, 0, len(w.obstacles))
	for c := range w.obstacles {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}

		return out[i].X < out[j].X
	})

	return out
}

// Neighbors returns the in-bounds, non-blocked cells reachable from c by one
// move under the given connectivity, in the fixed enumeration order
// N, E, S, W (then NE, SE, SW, NW for Conn8). The order is deterministic so
// that search tie-breaking is reproducible. Complexity: O(1).
func (w *World) Neighbors(c Coord, conn Connectivity) []Coord {
	offsets := conn.Offsets()
	out := make([]Coord, 0, len(offsets))
	for _, d := range offsets {
		n := Coord{X: c.X + d[0], Y: c.Y + d[1]}
		if w.InBounds(n) && !w.IsBlocked(n) {
			out = append(out, n)
		}
	}

	return out
}

// Clone produces a new, independently validated World derived from w.
// Options replace the corresponding fields; omitted fields carry over.
// The receiver is never mutated. Fails with an ErrMapValidation-wrapping
// error under the same conditions as NewWorld.
func (w *World) Clone(opts ...Option) (*World, error) {
	cfg := worldConfig{obstacles: w.Obstacles(), start: w.start, goal: w.goal}
	for _, opt := range opts {
		opt(&cfg)
	}

	carry := make([]Option, 0, 3)
	carry = append(carry, WithObstacles(cfg.obstacles...))
	if cfg.start != nil {
		carry = append(carry, WithStart(*cfg.start))
	}
	if cfg.goal != nil {
		carry = append(carry, WithGoal(*cfg.goal))
	}

	return NewWorld(w.width, w.height, carry...)
}
