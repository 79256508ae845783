package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/A-D-Alamdari/single-agent-pathfinding/grid"
	"github.com/A-D-Alamdari/single-agent-pathfinding/gridio"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()

	return buf.String(), err
}

// TestListCommand prints the built-in algorithm keys.
func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, key := range []string{"bfs", "dfs", "dijkstra", "astar"} {
		if !bytes.Contains([]byte(out), []byte(key)) {
			t.Errorf("list output missing %q:\n%s", key, out)
		}
	}
}

// TestGenerateRunConvert drives the maze generator, the solver, and the
// format converter end to end through temp files.
func TestGenerateRunConvert(t *testing.T) {
	dir := t.TempDir()
	mazePath := filepath.Join(dir, "maze.json")

	out, err := execute(t, "generate", "maze", "--width", "6", "--height", "6", "--seed", "11", "--out", mazePath)
	if err != nil {
		t.Fatalf("generate: %v\n%s", err, out)
	}

	out, err = execute(t, "run", "--map", mazePath, "--algo", "bfs")
	if err != nil {
		t.Fatalf("run: %v\n%s", err, out)
	}
	if !bytes.Contains([]byte(out), []byte("FOUND")) {
		t.Errorf("run output missing FOUND:\n%s", out)
	}

	gobPath := filepath.Join(dir, "maze.gob")
	if _, err := execute(t, "convert", "--in", mazePath, "--out", gobPath); err != nil {
		t.Fatalf("convert: %v", err)
	}
	out, err = execute(t, "validate", gobPath)
	if err != nil {
		t.Fatalf("validate: %v\n%s", err, out)
	}
	if !bytes.Contains([]byte(out), []byte("valid 13x13 map")) {
		t.Errorf("validate output unexpected:\n%s", out)
	}
}

// TestRunCommand_NoPath surfaces the dedicated sentinel for exit-code mapping.
func TestRunCommand_NoPath(t *testing.T) {
	dir := t.TempDir()
	mapPath := filepath.Join(dir, "walled.json")

	w, err := grid.NewWorld(3, 3,
		grid.WithObstacles(grid.Coord{X: 1, Y: 0}, grid.Coord{X: 1, Y: 1}, grid.Coord{X: 1, Y: 2}),
		grid.WithStart(grid.Coord{X: 0, Y: 0}),
		grid.WithGoal(grid.Coord{X: 2, Y: 0}),
	)
	if err != nil {
		t.Fatal(err)
	}
	if err := gridio.Save(w, mapPath); err != nil {
		t.Fatal(err)
	}

	_, err = execute(t, "run", "--map", mapPath, "--algo", "dijkstra")
	if !errors.Is(err, errNoPath) {
		t.Errorf("want errNoPath, got %v", err)
	}
}

// TestRunCommand_BadAlgorithm propagates the registry error.
func TestRunCommand_BadAlgorithm(t *testing.T) {
	dir := t.TempDir()
	mapPath := filepath.Join(dir, "m.json")
	w, err := grid.NewWorld(3, 3,
		grid.WithStart(grid.Coord{X: 0, Y: 0}), grid.WithGoal(grid.Coord{X: 2, Y: 2}))
	if err != nil {
		t.Fatal(err)
	}
	if err := gridio.Save(w, mapPath); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, "run", "--map", mapPath, "--algo", "jps"); err == nil {
		t.Error("unknown algorithm accepted")
	}
}
