package search

import (
	"sort"
	"time"

	"github.com/A-D-Alamdari/single-agent-pathfinding/grid"
)

// Stepper is the pull-based state machine driving one search run.
//
// Each call to Next performs at most one node expansion and reports it as a
// StepEvent; the final event carries a terminal status and no further events
// follow. A Stepper is single-pass and non-restartable: its open/closed
// tables are mutated in place, so replaying a run requires a fresh Stepper
// from the same Engine. The caller owns the Stepper exclusively; no
// background goroutine advances it, and ceasing to call Next stops all work.
type Stepper struct {
	algorithm string
	world     *grid.World
	start     grid.Coord
	goal      grid.Coord
	conn      grid.Connectivity
	h         Heuristic // nil for uninformed engines
	reopen    bool      // allow strict cost improvements to update open nodes

	front      frontier
	gScore     map[grid.Coord]int
	parent     map[grid.Coord]grid.Coord
	closed     map[grid.Coord]struct{}
	open       map[grid.Coord]*searchNode
	expansions int
	seq        int
	peakOpen   int
	began      time.Time
	trivial    bool // start == goal: emit a single FOUND event
	result     *Result
}

// newStepper seeds the run state. Endpoint validation happens in the engine
// before this is called.
func newStepper(algorithm string, w *grid.World, start, goal grid.Coord, o Options, front frontier, h Heuristic, reopen bool) *Stepper {
	s := &Stepper{
		algorithm: algorithm,
		world:     w,
		start:     start,
		goal:      goal,
		conn:      o.Conn,
		h:         h,
		reopen:    reopen,
		front:     front,
		gScore:    make(map[grid.Coord]int),
		parent:    make(map[grid.Coord]grid.Coord),
		closed:    make(map[grid.Coord]struct{}),
		open:      make(map[grid.Coord]*searchNode),
		began:     time.Now(),
		trivial:   start == goal,
	}
	if s.trivial {
		return s
	}
	s.gScore[start] = 0
	root := &searchNode{pos: start, g: 0, h: s.estimate(start), seq: s.nextSeq()}
	s.open[start] = root
	s.front.push(root)
	s.peakOpen = 1

	return s
}

// estimate applies the heuristic toward the goal, or 0 for uninformed engines.
func (s *Stepper) estimate(c grid.Coord) int {
	if s.h == nil {
		return 0
	}

	return s.h(c, s.goal)
}

func (s *Stepper) nextSeq() int {
	s.seq++

	return s.seq
}

// Next advances the run by one expansion and reports it.
// The second return is false once the sequence is exhausted (a terminal
// event was already produced, or the run was cancelled).
func (s *Stepper) Next() (StepEvent, bool) {
	if s.result != nil {
		return StepEvent{}, false
	}
	if s.trivial {
		return s.finishTrivial(), true
	}

	for {
		n, ok := s.front.pop()
		if !ok {
			return s.finish(StatusNoPath, nil), true
		}
		if _, done := s.closed[n.pos]; done {
			// Stale frontier entry: the cell was finalized after this entry
			// was queued. Expanding it again would corrupt parent links.
			continue
		}
		delete(s.open, n.pos)
		s.closed[n.pos] = struct{}{}
		s.expansions++

		if n.pos == s.goal {
			return s.finish(StatusFound, &n.pos), true
		}

		for _, nb := range s.world.Neighbors(n.pos, s.conn) {
			s.relax(n.pos, nb)
		}
		if s.front.len() > s.peakOpen {
			s.peakOpen = s.front.len()
		}

		cur := n.pos

		return StepEvent{
			Status:     StatusRunning,
			Current:    &cur,
			Open:       s.front.snapshot(),
			Closed:     s.closedSnapshot(),
			PathSoFar:  s.pathTo(cur),
			Expansions: s.expansions,
		}, true
	}
}

// relax computes the tentative cost to nb through from and updates the
// open structures on first discovery or, for reopening engines, on strict
// improvement. Unit edge cost applies to every move in the current scope.
func (s *Stepper) relax(from, nb grid.Coord) {
	tentative := s.gScore[from] + 1
	old, seen := s.gScore[nb]
	if !seen {
		s.gScore[nb] = tentative
		s.parent[nb] = from
		n := &searchNode{pos: nb, g: tentative, h: s.estimate(nb), seq: s.nextSeq()}
		s.open[nb] = n
		s.front.push(n)

		return
	}
	if !s.reopen || tentative >= old {
		return
	}
	if _, done := s.closed[nb]; done {
		// Unreachable with consistent heuristics; a finalized cell already
		// holds its optimal cost.
		return
	}
	s.gScore[nb] = tentative
	s.parent[nb] = from
	if n, inOpen := s.open[nb]; inOpen {
		n.g = tentative
		s.front.improve(n)
	}
}

// finishTrivial emits the single FOUND event for a start == goal run.
func (s *Stepper) finishTrivial() StepEvent {
	cost := 0
	s.result = &Result{
		Status:     StatusFound,
		Path:       []grid.Coord{s.start},
		Expansions: 0,
		RuntimeMS:  s.elapsedMS(),
		Cost:       &cost,
		Extra:      map[string]any{"algorithm": s.algorithm, "max_frontier": 0},
	}
	cur := s.start

	return StepEvent{
		Status:     StatusFound,
		Current:    &cur,
		Open:       []grid.Coord{},
		Closed:     []grid.Coord{},
		PathSoFar:  []grid.Coord{s.start},
		Expansions: 0,
	}
}

// finish produces the terminal event and freezes the Result.
func (s *Stepper) finish(st Status, current *grid.Coord) StepEvent {
	var path []grid.Coord
	var cost *int
	if st == StatusFound {
		path = s.pathTo(s.goal)
		c := s.gScore[s.goal]
		cost = &c
	}
	s.result = &Result{
		Status:     st,
		Path:       path,
		Expansions: s.expansions,
		RuntimeMS:  s.elapsedMS(),
		Cost:       cost,
		Extra:      map[string]any{"algorithm": s.algorithm, "max_frontier": s.peakOpen},
	}

	return StepEvent{
		Status:     st,
		Current:    current,
		Open:       s.front.snapshot(),
		Closed:     s.closedSnapshot(),
		PathSoFar:  path,
		Expansions: s.expansions,
	}
}

// Cancel marks the run as cancelled and freezes a CANCELLED Result.
// It is a no-op after a terminal event. No cancellation event is emitted;
// subsequent Next calls report exhaustion.
func (s *Stepper) Cancel() {
	if s.result != nil {
		return
	}
	s.result = &Result{
		Status:     StatusCancelled,
		Expansions: s.expansions,
		RuntimeMS:  s.elapsedMS(),
		Extra:      map[string]any{"algorithm": s.algorithm, "max_frontier": s.peakOpen},
	}
}

// Result returns the terminal summary, or nil while the run is in progress.
// After the terminal StepEvent has been produced (or Cancel was called),
// the result is stable and repeated calls return the same value.
func (s *Stepper) Result() *Result {
	return s.result
}

// NodeAt projects the run's bookkeeping for c into an exported Node.
// The second return is false if c was never discovered in this run.
func (s *Stepper) NodeAt(c grid.Coord) (Node, bool) {
	g, seen := s.gScore[c]
	if !seen {
		if s.trivial && c == s.start {
			return Node{Pos: c}, true
		}

		return Node{}, false
	}
	h := s.estimate(c)
	n := Node{Pos: c, G: g, H: h, F: g + h}
	if p, ok := s.parent[c]; ok {
		n.Parent = &p
	}

	return n, true
}

func (s *Stepper) elapsedMS() float64 {
	return float64(time.Since(s.began)) / float64(time.Millisecond)
}

// pathTo follows parent links from c back to the start and reverses.
// Parent links form a tree rooted at start, so the walk terminates.
func (s *Stepper) pathTo(c grid.Coord) []grid.Coord {
	path := []grid.Coord{c}
	for c != s.start {
		p, ok := s.parent[c]
		if !ok {
			break
		}
		c = p
		path = append(path, c)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// closedSnapshot copies the closed set in row-major order.
func (s *Stepper) closedSnapshot() []grid.Coord {
	out := make([]grid.Coord, 0, len(s.closed))
	for c := range s.closed {
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
