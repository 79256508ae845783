package search

import (
	"fmt"

	"github.com/A-D-Alamdari/single-agent-pathfinding/grid"
)

// Engine is the shared contract across BFS, DFS, Dijkstra, and A*.
//
// Run executes to completion and returns only the terminal outcome; it is
// equivalent to draining Steps and taking the final event's payload.
// Steps returns a fresh Stepper for step-by-step consumption. Both validate
// endpoints before the first step is produced. Engines hold no per-run state:
// every invocation owns its own tables, so one Engine value may serve many
// logically interleaved runs.
type Engine interface {
	// Name returns the stable engine key ("bfs", "dfs", "dijkstra", "astar").
	Name() string

	// Run executes the search to completion over w from start to goal.
	Run(w *grid.World, start, goal grid.Coord) (*Result, error)

	// Steps returns the step-mode state machine for the same search.
	Steps(w *grid.World, start, goal grid.Coord) (*Stepper, error)
}

// policy captures what distinguishes one engine from another: the frontier
// structure, whether cost improvements reopen queued cells, and whether a
// heuristic applies.
type policy struct {
	newFrontier func() frontier
	reopen      bool
	informed    bool
}

type engine struct {
	name string
	pol  policy
	opts Options
}

// NewBFS returns a breadth-first engine: FIFO frontier, insertion-order
// tie-break, unit edge cost. Optimal on unweighted grids.
func NewBFS(opts ...Option) Engine {
	return newEngine("bfs", policy{
		newFrontier: func() frontier { return &fifoFrontier{} },
	}, opts)
}

// NewDFS returns a depth-first engine: LIFO frontier. Complete but not
// optimal; provided for teaching and frontier-shape visualization.
func NewDFS(opts ...Option) Engine {
	return newEngine("dfs", policy{
		newFrontier: func() frontier { return &lifoFrontier{} },
	}, opts)
}

// NewDijkstra returns a uniform-cost engine: min-heap frontier ordered by g,
// ties broken by insertion order. Optimal for non-negative edge weights.
func NewDijkstra(opts ...Option) Engine {
	return newEngine("dijkstra", policy{
		newFrontier: func() frontier { return newHeapFrontier() },
		reopen:      true,
	}, opts)
}

// NewAStar returns an A* engine: min-heap frontier ordered by f = g + h,
// ties broken by lower h then insertion order. Optimal iff the heuristic is
// admissible; the default is Manhattan under Conn4 and Chebyshev under Conn8.
func NewAStar(opts ...Option) Engine {
	return newEngine("astar", policy{
		newFrontier: func() frontier { return newHeapFrontier() },
		reopen:      true,
		informed:    true,
	}, opts)
}

func newEngine(name string, pol policy, opts []Option) Engine {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &engine{name: name, pol: pol, opts: o}
}

func (e *engine) Name() string { return e.name }

func (e *engine) Run(w *grid.World, start, goal grid.Coord) (*Result, error) {
	st, err := e.Steps(w, start, goal)
	if err != nil {
		return nil, err
	}
	for {
		if _, ok := st.Next(); !ok {
			break
		}
	}

	return st.Result(), nil
}

func (e *engine) Steps(w *grid.World, start, goal grid.Coord) (*Stepper, error) {
	if e.opts.err != nil {
		return nil, e.opts.err
	}
	if w == nil {
		return nil, ErrWorldNil
	}
	if err := validateEndpoint(w, start, "start"); err != nil {
		return nil, err
	}
	if err := validateEndpoint(w, goal, "goal"); err != nil {
		return nil, err
	}

	var h Heuristic
	if e.pol.informed {
		h = e.opts.H
		if h == nil {
			h = defaultHeuristic(e.opts.Conn)
		}
	}

	return newStepper(e.name, w, start, goal, e.opts, e.pol.newFrontier(), h, e.pol.reopen), nil
}

// validateEndpoint checks one endpoint once, before any step is produced.
func validateEndpoint(w *grid.World, c grid.Coord, name string) error {
	if !w.InBounds(c) {
		return fmt.Errorf("%w: %s %v out of bounds [0,%d)x[0,%d)", ErrInvalidEndpoint, name, c, w.Width(), w.Height())
	}
	if w.IsBlocked(c) {
		return fmt.Errorf("%w: %s %v is an obstacle", ErrInvalidEndpoint, name, c)
	}

	return nil
}

// defaultHeuristic picks the admissible default for the move set.
func defaultHeuristic(cn grid.Connectivity) Heuristic {
	if cn == grid.Conn8 {
		return Chebyshev
	}

	return Manhattan
}
