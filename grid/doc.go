// Package grid models a 2D grid world for single-agent pathfinding.
//
// What:
//
//   - Coord: value-type (x,y) cell identifier, usable as a map/set key.
//   - World: immutable-after-construction map with obstacles and optional
//     start/goal endpoints, validated once at construction.
//   - Connectivity: Conn4 (N, E, S, W) or Conn8 (adds NE, SE, SW, NW),
//     with a fixed neighbor enumeration order for reproducible tie-breaking.
//
// Why:
//
//   - Search engines consume a World read-only; immutability makes concurrent
//     runs over the same map safe without locking.
//   - Map loaders and generators hand over an already-validated World, so the
//     search core performs no secondary validation.
//
// Construction:
//
//	w, err := grid.NewWorld(10, 8,
//	    grid.WithObstacles(grid.Coord{X: 3, Y: 2}, grid.Coord{X: 3, Y: 3}),
//	    grid.WithStart(grid.Coord{X: 0, Y: 0}),
//	    grid.WithGoal(grid.Coord{X: 9, Y: 7}),
//	)
//
// Editing flows derive new worlds via Clone, which re-validates:
//
//	edited, err := w.Clone(grid.WithGoal(grid.Coord{X: 5, Y: 5}))
//
// Errors:
//
//   - ErrMapValidation: non-positive dimensions, out-of-bounds obstacle,
//     endpoint out of bounds or on an obstacle, or start == goal.
package grid
