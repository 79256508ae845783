// Package sapf is a single-agent pathfinding toolkit for rectangular
// 2D grid maps: build and validate worlds, run BFS, DFS, Dijkstra, or A*
// in one shot or step by step, and inspect every expansion along the way.
//
// 🚀 What does it offer?
//
//	A small, composable library organized per concern:
//		• Worlds: immutable validated grids with obstacles and endpoints
//		• Engines: BFS, DFS, Dijkstra, A* behind one Engine interface
//		• Stepping: per-expansion events with open/closed/path snapshots
//		• Registry: name-keyed engine construction for CLIs and services
//		• IO: JSON and gob map documents, MovingAI .map/.scen parsing
//		• Generators: random fields, perfect mazes, warehouse layouts
//
// ✨ Why this layout?
//
//   - One walker, four policies – frontier discipline is the only thing
//     that distinguishes the algorithms, so they share one engine core
//   - Deterministic by contract – fixed neighbor order, stable tie-breaks,
//     seeded generation; the same input always yields the same trace
//   - Boundary-ready – the same step-event protocol feeds the CLI printer
//     and the HTTP API's trace responses
//
// Under the hood, everything is organized under focused subpackages:
//
//	grid/      — Coord, Connectivity, the validated World value
//	search/    — engines, stepper, frontier policies, heuristics
//	registry/  — name-to-constructor engine registry
//	gridio/    — load/save dispatch, JSON, gob, MovingAI formats
//	generator/ — random, maze, and warehouse map generation
//	server/    — gin HTTP API over the registry
//	cmd/sapf/  — the command-line front end
//
// Quick ASCII example:
//
//	S . . #
//	. # . #
//	. # . G
//
//	a 4x3 world where '#' cells are blocked; A* under Conn4 routes
//	S(0,0) to G(3,2) around both walls.
//
//	go get github.com/A-D-Alamdari/single-agent-pathfinding
package sapf
