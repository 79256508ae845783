package search_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/A-D-Alamdari/single-agent-pathfinding/grid"
	"github.com/A-D-Alamdari/single-agent-pathfinding/search"
)

// mustWorld builds a test world or fails the test.
func mustWorld(t *testing.T, width, height int, obstacles ...grid.Coord) *grid.World {
	t.Helper()
	w, err := grid.NewWorld(width, height, grid.WithObstacles(obstacles...))
	if err != nil {
		t.Fatalf("world construction: %v", err)
	}

	return w
}

// diagWorld is a 5x5 map with three diagonal obstacles that do not lengthen
// the optimal (0,0)->(4,4) route: cost 8 survives along the border.
func diagWorld(t *testing.T) *grid.World {
	t.Helper()

	return mustWorld(t, 5, 5,
		grid.Coord{X: 1, Y: 1}, grid.Coord{X: 2, Y: 2}, grid.Coord{X: 3, Y: 3})
}

// checkContiguous asserts every consecutive pair in path is one legal move.
func checkContiguous(t *testing.T, w *grid.World, path []grid.Coord, conn grid.Connectivity) {
	t.Helper()
	for i := 1; i < len(path); i++ {
		legal := false
		for _, nb := range w.Neighbors(path[i-1], conn) {
			if nb == path[i] {
				legal = true

				break
			}
		}
		if !legal {
			t.Fatalf("path step %v -> %v is not a legal move", path[i-1], path[i])
		}
	}
}

// TestOptimalEngines_ShortestPath verifies BFS, Dijkstra, and A* all find a
// cost-8 route on the diagonal map, and that the path is well formed.
func TestOptimalEngines_ShortestPath(t *testing.T) {
	w := diagWorld(t)
	start := grid.Coord{X: 0, Y: 0}
	goal := grid.Coord{X: 4, Y: 4}

	engines := []search.Engine{search.NewBFS(), search.NewDijkstra(), search.NewAStar()}
	for _, e := range engines {
		t.Run(e.Name(), func(t *testing.T) {
			res, err := e.Run(w, start, goal)
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if res.Status != search.StatusFound {
				t.Fatalf("status = %v; want FOUND", res.Status)
			}
			if res.Cost == nil || *res.Cost != 8 {
				t.Errorf("cost = %v; want 8", res.Cost)
			}
			if len(res.Path) != 9 {
				t.Errorf("path length = %d; want 9", len(res.Path))
			}
			if res.Path[0] != start || res.Path[len(res.Path)-1] != goal {
				t.Errorf("path endpoints = %v .. %v", res.Path[0], res.Path[len(res.Path)-1])
			}
			checkContiguous(t, w, res.Path, grid.Conn4)
			if res.Expansions <= 0 {
				t.Errorf("expansions = %d; want > 0", res.Expansions)
			}
		})
	}
}

// TestDFS_FindsSomePath verifies completeness without an optimality claim.
func TestDFS_FindsSomePath(t *testing.T) {
	w := diagWorld(t)
	start := grid.Coord{X: 0, Y: 0}
	goal := grid.Coord{X: 4, Y: 4}

	res, err := search.NewDFS().Run(w, start, goal)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Status != search.StatusFound {
		t.Fatalf("status = %v; want FOUND", res.Status)
	}
	if res.Path[0] != start || res.Path[len(res.Path)-1] != goal {
		t.Errorf("path endpoints = %v .. %v", res.Path[0], res.Path[len(res.Path)-1])
	}
	checkContiguous(t, w, res.Path, grid.Conn4)
	if res.Cost == nil || *res.Cost != len(res.Path)-1 {
		t.Errorf("cost = %v; want %d (path length - 1)", res.Cost, len(res.Path)-1)
	}
}

// TestAStar_ExpandsNoMoreThanBFS: with an admissible heuristic A* should not
// explore more nodes than uninformed BFS on the same map.
func TestAStar_ExpandsNoMoreThanBFS(t *testing.T) {
	w := diagWorld(t)
	start := grid.Coord{X: 0, Y: 0}
	goal := grid.Coord{X: 4, Y: 4}

	bfsRes, err := search.NewBFS().Run(w, start, goal)
	if err != nil {
		t.Fatal(err)
	}
	astarRes, err := search.NewAStar().Run(w, start, goal)
	if err != nil {
		t.Fatal(err)
	}
	if astarRes.Expansions > bfsRes.Expansions {
		t.Errorf("astar expansions = %d > bfs expansions = %d", astarRes.Expansions, bfsRes.Expansions)
	}
}

// TestNoPath_WallColumn: a full-height wall splits the map; the run reports
// NO_PATH after exhausting exactly the reachable component.
func TestNoPath_WallColumn(t *testing.T) {
	wall := make([]grid.Coord, 0, 5)
	for y := 0; y < 5; y++ {
		wall = append(wall, grid.Coord{X: 2, Y: y})
	}
	w := mustWorld(t, 5, 5, wall...)
	start := grid.Coord{X: 0, Y: 0}
	goal := grid.Coord{X: 4, Y: 0}

	engines := []search.Engine{search.NewBFS(), search.NewDFS(), search.NewDijkstra(), search.NewAStar()}
	for _, e := range engines {
		t.Run(e.Name(), func(t *testing.T) {
			res, err := e.Run(w, start, goal)
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if res.Status != search.StatusNoPath {
				t.Fatalf("status = %v; want NO_PATH", res.Status)
			}
			if len(res.Path) != 0 {
				t.Errorf("path = %v; want empty", res.Path)
			}
			if res.Cost != nil {
				t.Errorf("cost = %d; want nil", *res.Cost)
			}
			// the left component is the two full columns x=0 and x=1
			if res.Expansions != 10 {
				t.Errorf("expansions = %d; want 10", res.Expansions)
			}
		})
	}
}

// TestNoPath_EnclosedStart: a start walled in on all sides expands only itself.
func TestNoPath_EnclosedStart(t *testing.T) {
	w := mustWorld(t, 4, 4,
		grid.Coord{X: 1, Y: 0}, grid.Coord{X: 0, Y: 1}, grid.Coord{X: 1, Y: 1})

	res, err := search.NewBFS().Run(w, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 3, Y: 3})
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != search.StatusNoPath {
		t.Fatalf("status = %v; want NO_PATH", res.Status)
	}
	if res.Expansions != 1 {
		t.Errorf("expansions = %d; want 1 (start only)", res.Expansions)
	}
}

// TestConn8_DiagonalShortcut: under 8-connectivity with unit diagonal cost
// the open 5x5 grid is crossed in 4 moves.
func TestConn8_DiagonalShortcut(t *testing.T) {
	w := mustWorld(t, 5, 5)
	res, err := search.NewAStar(search.WithConnectivity(grid.Conn8)).
		Run(w, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 4, Y: 4})
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != search.StatusFound {
		t.Fatalf("status = %v; want FOUND", res.Status)
	}
	if res.Cost == nil || *res.Cost != 4 {
		t.Errorf("cost = %v; want 4", res.Cost)
	}
	if len(res.Path) != 5 {
		t.Errorf("path length = %d; want 5", len(res.Path))
	}
	checkContiguous(t, w, res.Path, grid.Conn8)
}

// TestDeterminism: identical input must reproduce the identical path and
// expansion count, run after run.
func TestDeterminism(t *testing.T) {
	w := diagWorld(t)
	start := grid.Coord{X: 0, Y: 0}
	goal := grid.Coord{X: 4, Y: 4}

	for _, e := range []search.Engine{search.NewBFS(), search.NewDFS(), search.NewAStar()} {
		first, err := e.Run(w, start, goal)
		if err != nil {
			t.Fatal(err)
		}
		second, err := e.Run(w, start, goal)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(first.Path, second.Path) {
			t.Errorf("%s: paths differ across runs: %v vs %v", e.Name(), first.Path, second.Path)
		}
		if first.Expansions != second.Expansions {
			t.Errorf("%s: expansions differ: %d vs %d", e.Name(), first.Expansions, second.Expansions)
		}
	}
}

// TestRunMatchesStepDrain: Run must equal manually draining Steps.
func TestRunMatchesStepDrain(t *testing.T) {
	w := diagWorld(t)
	start := grid.Coord{X: 0, Y: 0}
	goal := grid.Coord{X: 4, Y: 4}
	e := search.NewDijkstra()

	ran, err := e.Run(w, start, goal)
	if err != nil {
		t.Fatal(err)
	}
	stepper, err := e.Steps(w, start, goal)
	if err != nil {
		t.Fatal(err)
	}
	for {
		if _, ok := stepper.Next(); !ok {
			break
		}
	}
	stepped := stepper.Result()
	if stepped == nil {
		t.Fatal("stepped result is nil after drain")
	}
	if ran.Status != stepped.Status || !reflect.DeepEqual(ran.Path, stepped.Path) || ran.Expansions != stepped.Expansions {
		t.Errorf("run/step divergence: run=%+v step=%+v", ran, stepped)
	}
}

// TestTrivialRun: explicit start == goal succeeds immediately without
// expanding anything.
func TestTrivialRun(t *testing.T) {
	w := mustWorld(t, 3, 3)
	c := grid.Coord{X: 1, Y: 1}

	for _, e := range []search.Engine{search.NewBFS(), search.NewDFS(), search.NewDijkstra(), search.NewAStar()} {
		res, err := e.Run(w, c, c)
		if err != nil {
			t.Fatalf("%s: %v", e.Name(), err)
		}
		if res.Status != search.StatusFound {
			t.Errorf("%s: status = %v; want FOUND", e.Name(), res.Status)
		}
		if !reflect.DeepEqual(res.Path, []grid.Coord{c}) {
			t.Errorf("%s: path = %v; want [%v]", e.Name(), res.Path, c)
		}
		if res.Cost == nil || *res.Cost != 0 {
			t.Errorf("%s: cost = %v; want 0", e.Name(), res.Cost)
		}
		if res.Expansions != 0 {
			t.Errorf("%s: expansions = %d; want 0", e.Name(), res.Expansions)
		}
	}
}

// TestEngine_Errors verifies invocation-time validation.
func TestEngine_Errors(t *testing.T) {
	w := mustWorld(t, 3, 3, grid.Coord{X: 2, Y: 2})
	e := search.NewBFS()

	if _, err := e.Run(nil, grid.Coord{}, grid.Coord{X: 1, Y: 1}); !errors.Is(err, search.ErrWorldNil) {
		t.Errorf("nil world: want ErrWorldNil, got %v", err)
	}
	if _, err := e.Run(w, grid.Coord{X: 9, Y: 0}, grid.Coord{X: 1, Y: 1}); !errors.Is(err, search.ErrInvalidEndpoint) {
		t.Errorf("out-of-bounds start: want ErrInvalidEndpoint, got %v", err)
	}
	if _, err := e.Run(w, grid.Coord{}, grid.Coord{X: 2, Y: 2}); !errors.Is(err, search.ErrInvalidEndpoint) {
		t.Errorf("blocked goal: want ErrInvalidEndpoint, got %v", err)
	}

	bad := search.NewAStar(search.WithConnectivity(grid.Connectivity(7)))
	if _, err := bad.Run(w, grid.Coord{}, grid.Coord{X: 1, Y: 1}); !errors.Is(err, search.ErrOptionViolation) {
		t.Errorf("bad connectivity: want ErrOptionViolation, got %v", err)
	}
}

// TestWorldEndpoints covers extraction of world-stored endpoints.
func TestWorldEndpoints(t *testing.T) {
	w, err := grid.NewWorld(3, 3,
		grid.WithStart(grid.Coord{X: 0, Y: 0}), grid.WithGoal(grid.Coord{X: 2, Y: 2}))
	if err != nil {
		t.Fatal(err)
	}
	start, goal, err := search.WorldEndpoints(w)
	if err != nil {
		t.Fatal(err)
	}
	if start != (grid.Coord{X: 0, Y: 0}) || goal != (grid.Coord{X: 2, Y: 2}) {
		t.Errorf("endpoints = %v, %v", start, goal)
	}

	bare := mustWorld(t, 3, 3)
	if _, _, err := search.WorldEndpoints(bare); !errors.Is(err, search.ErrEndpointUnset) {
		t.Errorf("bare world: want ErrEndpointUnset, got %v", err)
	}
	if _, _, err := search.WorldEndpoints(nil); !errors.Is(err, search.ErrWorldNil) {
		t.Errorf("nil world: want ErrWorldNil, got %v", err)
	}
}

// TestHeuristics pins the metric definitions.
func TestHeuristics(t *testing.T) {
	a := grid.Coord{X: 1, Y: 2}
	b := grid.Coord{X: 4, Y: 0}
	if got := search.Manhattan(a, b); got != 5 {
		t.Errorf("Manhattan = %d; want 5", got)
	}
	if got := search.Chebyshev(a, b); got != 3 {
		t.Errorf("Chebyshev = %d; want 3", got)
	}
	if got := search.Manhattan(a, a); got != 0 {
		t.Errorf("Manhattan identity = %d; want 0", got)
	}
}

// TestWithHeuristic_Override: a custom admissible heuristic still yields the
// optimal cost.
func TestWithHeuristic_Override(t *testing.T) {
	w := diagWorld(t)
	zero := func(a, b grid.Coord) int { return 0 }
	res, err := search.NewAStar(search.WithHeuristic(zero)).
		Run(w, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 4, Y: 4})
	if err != nil {
		t.Fatal(err)
	}
	if res.Cost == nil || *res.Cost != 8 {
		t.Errorf("cost with zero heuristic = %v; want 8", res.Cost)
	}
}
