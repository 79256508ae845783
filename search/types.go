// Package search defines the step-event protocol, result container,
// options, and sentinel errors shared by all pathfinding engines.
package search

import (
	"errors"
	"fmt"

	"github.com/A-D-Alamdari/single-agent-pathfinding/grid"
)

// Sentinel errors for engine invocation.
var (
	// ErrWorldNil is returned if a nil world pointer is passed.
	ErrWorldNil = errors.New("search: world is nil")

	// ErrInvalidEndpoint is returned when start or goal is out of bounds or
	// blocked at invocation time, before the first step is produced.
	ErrInvalidEndpoint = errors.New("search: invalid endpoint")

	// ErrEndpointUnset is returned when a world-supplied endpoint is absent.
	ErrEndpointUnset = errors.New("search: endpoint not set on world")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Status is the discriminated progress state of a search run.
// Running appears only on intermediate step events; the other three are terminal.
type Status int

const (
	// StatusRunning marks an intermediate expansion step.
	StatusRunning Status = iota
	// StatusFound marks a terminal step: the goal was expanded.
	StatusFound
	// StatusNoPath marks a terminal step: the frontier drained without reaching the goal.
	StatusNoPath
	// StatusCancelled marks a run stopped by its consumer before termination.
	StatusCancelled
)

// statusNames holds the stable wire labels, shared by String and JSON codecs.
var statusNames = map[Status]string{
	StatusRunning:   "RUNNING",
	StatusFound:     "FOUND",
	StatusNoPath:    "NO_PATH",
	StatusCancelled: "CANCELLED",
}

// String returns the stable label for s ("RUNNING", "FOUND", "NO_PATH", "CANCELLED").
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}

	return fmt.Sprintf("Status(%d)", int(s))
}

// Terminal reports whether s ends a step sequence.
func (s Status) Terminal() bool {
	return s == StatusFound || s == StatusNoPath || s == StatusCancelled
}

// MarshalJSON encodes the status as its stable label.
func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON decodes a stable label back into a Status.
func (s *Status) UnmarshalJSON(data []byte) error {
	for st, name := range statusNames {
		if string(data) == `"`+name+`"` {
			*s = st

			return nil
		}
	}

	return fmt.Errorf("search: unknown status %s", data)
}

// StepEvent is one reported unit of algorithm progress.
// Open, Closed, and PathSoFar are snapshots: the engine never aliases its
// internal tables into an event.
type StepEvent struct {
	// Status of the run after this step.
	Status Status `json:"status"`
	// Current is the coordinate just expanded; nil on terminal events that
	// performed no expansion (NO_PATH, CANCELLED).
	Current *grid.Coord `json:"current,omitempty"`
	// Open is the frontier snapshot in frontier order (queue/stack order for
	// uninformed engines, ascending priority for heap-based ones).
	Open []grid.Coord `json:"open"`
	// Closed is the finalized-cell snapshot in row-major order.
	Closed []grid.Coord `json:"closed"`
	// PathSoFar is the best known path to Current (or to the goal on FOUND).
	PathSoFar []grid.Coord `json:"path_so_far,omitempty"`
	// Expansions is the running count of nodes expanded so far.
	// Strictly increasing across RUNNING events within one run.
	Expansions int `json:"expansions"`
}

// Result is the terminal summary of a run.
type Result struct {
	// Status is FOUND, NO_PATH, or CANCELLED; never RUNNING.
	Status Status `json:"status"`
	// Path runs from start to goal inclusive; empty unless Status is FOUND.
	Path []grid.Coord `json:"path"`
	// Expansions counts every node popped and finalized during the run.
	Expansions int `json:"expansions"`
	// RuntimeMS is wall-clock time between engine invocation and termination.
	RuntimeMS float64 `json:"runtime_ms"`
	// Cost is the total path cost; non-nil iff Status is FOUND.
	Cost *int `json:"cost,omitempty"`
	// Extra carries algorithm-specific metrics, documented per engine.
	Extra map[string]any `json:"extra,omitempty"`
}

// Node is the visualization-friendly projection of one explored cell.
// Parent is a coordinate lookup key into the run's own tables, never a
// back-reference to another node object.
type Node struct {
	Pos    grid.Coord  `json:"pos"`
	G      int         `json:"g"`
	H      int         `json:"h"`
	F      int         `json:"f"`
	Parent *grid.Coord `json:"parent,omitempty"`
}

// Heuristic estimates the remaining cost between two cells.
// It must be non-negative; admissibility is required for A* optimality.
type Heuristic func(a, b grid.Coord) int

// Manhattan is |dx| + |dy|: admissible and consistent under Conn4.
// It is NOT admissible under Conn8; use Chebyshev there.
func Manhattan(a, b grid.Coord) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Chebyshev is max(|dx|, |dy|): with unit-cost diagonal moves it equals the
// true Conn8 distance on an open grid, so it is admissible and consistent.
func Chebyshev(a, b grid.Coord) int {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	if dx > dy {
		return dx
	}

	return dy
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// Option configures engine behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as an
// ErrOptionViolation-wrapping error when the engine is invoked.
type Option func(*Options)

// Options holds parameters shared by every engine.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity. Default Conn4.
	Conn grid.Connectivity

	// H overrides the heuristic for informed engines. Uninformed engines
	// ignore it. Default: Manhattan under Conn4, Chebyshev under Conn8.
	H Heuristic

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with Conn4 connectivity and no heuristic
// override.
func DefaultOptions() Options {
	return Options{Conn: grid.Conn4}
}

// WithConnectivity selects the move set. An undefined connectivity value is
// recorded and surfaced as ErrOptionViolation at invocation.
func WithConnectivity(cn grid.Connectivity) Option {
	return func(o *Options) {
		if !cn.Valid() {
			o.err = fmt.Errorf("%w: connectivity %d", ErrOptionViolation, cn)

			return
		}
		o.Conn = cn
	}
}

// WithHeuristic overrides the heuristic used by informed engines.
// Passing nil has no effect (the default is retained).
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.H = h
		}
	}
}

// WorldEndpoints extracts the start and goal stored on w.
// Returns an ErrEndpointUnset-wrapping error naming the missing endpoint.
func WorldEndpoints(w *grid.World) (start, goal grid.Coord, err error) {
	if w == nil {
		return grid.Coord{}, grid.Coord{}, ErrWorldNil
	}
	start, ok := w.Start()
	if !ok {
		return grid.Coord{}, grid.Coord{}, fmt.Errorf("%w: start", ErrEndpointUnset)
	}
	goal, ok = w.Goal()
	if !ok {
		return grid.Coord{}, grid.Coord{}, fmt.Errorf("%w: goal", ErrEndpointUnset)
	}

	return start, goal, nil
}
