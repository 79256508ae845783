// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/A-D-Alamdari/single-agent-pathfinding.
package grid

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMapValidation indicates an invalid world construction or edit.
// All constructor failures wrap this sentinel; use errors.Is to classify.
var ErrMapValidation = errors.New("grid: map validation failed")

// Coord identifies a single cell as an (x, y) pair.
// (0,0) is the top-left corner; x grows east, y grows south.
// Coord is a comparable value type and is used directly as a map/set key.
type Coord struct {
	X, Y int
}

// String renders the coordinate as "(x,y)" for error and log messages.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// MarshalJSON encodes the coordinate as a two-element array [x, y],
// the wire form used by map documents and the HTTP API.
func (c Coord) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("[%d,%d]", c.X, c.Y)), nil
}

// UnmarshalJSON decodes a two-element array [x, y].
func (c *Coord) UnmarshalJSON(data []byte) error {
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("%w: coordinate must be [x, y]: %v", ErrMapValidation, err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("%w: coordinate must have exactly 2 elements, got %d", ErrMapValidation, len(pair))
	}
	c.X, c.Y = pair[0], pair[1]

	return nil
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, E, S, W, NE, SE, SW, NW.
	Conn8
)

// conn4Offsets enumerates orthogonal moves in the fixed order N, E, S, W.
// conn8Offsets appends the diagonals NE, SE, SW, NW.
// The order is part of the contract: search tie-breaking depends on it.
var (
	conn4Offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	conn8Offsets = [][2]int{
		{0, -1}, {1, 0}, {0, 1}, {-1, 0},
		{1, -1}, {1, 1}, {-1, 1}, {-1, -1},
	}
)

// Offsets returns the neighbor offset table for the connectivity,
// in the fixed deterministic enumeration order.
// The returned slice must not be modified.
func (cn Connectivity) Offsets() [][2]int {
	if cn == Conn8 {
		return conn8Offsets
	}

	return conn4Offsets
}

// Valid reports whether cn is one of the defined connectivity modes.
func (cn Connectivity) Valid() bool {
	return cn == Conn4 || cn == Conn8
}

// Option configures World construction via functional arguments.
type Option func(*worldConfig)

// worldConfig collects construction parameters before validation.
type worldConfig struct {
	obstacles []Coord
	start     *Coord
	goal      *Coord
}

// WithObstacles sets the blocked cells of the world under construction,
// replacing any previously supplied set. Duplicate coordinates collapse.
func WithObstacles(cells ...Coord) Option {
	return func(cfg *worldConfig) {
		cfg.obstacles = append([]Coord(nil), cells...)
	}
}

// WithStart sets the start cell.
func WithStart(c Coord) Option {
	return func(cfg *worldConfig) {
		cfg.start = &c
	}
}

// WithGoal sets the goal cell.
func WithGoal(c Coord) Option {
	return func(cfg *worldConfig) {
		cfg.goal = &c
	}
}
