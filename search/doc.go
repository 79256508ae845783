// Package search runs classical pathfinding algorithms over a grid.World
// and reports their progress through a uniform step-event protocol.
//
// What:
//
//   - Engine: the shared contract of BFS, DFS, Dijkstra, and A*. Run executes
//     to completion; Steps hands back a Stepper for one-expansion-at-a-time
//     consumption (visualization, metrics, test harnesses).
//   - StepEvent: one expansion with open/closed snapshots and a best-known
//     path; Result: the terminal summary with path, cost, expansion count,
//     and runtime.
//   - All four engines share one expansion walker; only the frontier policy
//     differs (FIFO, LIFO, min-heap by g, min-heap by f with h tie-break).
//
// Expansion accounting: every RUNNING event represents exactly one expansion,
// and a FOUND terminal event accounts for one more (the goal pop). Expansions
// is therefore monotonically non-decreasing across a run and the terminal
// Result matches the final event's tally.
//
// Concurrency: single-threaded and cooperative. A Stepper suspends between
// expansions and resumes only when the consumer calls Next; ceasing to call
// Next cancels the run with zero further CPU work. Worlds are read-only, so
// any number of runs may interleave over the same map without locking.
//
// Errors:
//
//   - ErrWorldNil, ErrInvalidEndpoint, ErrEndpointUnset: surfaced before the
//     first step is produced.
//   - ErrOptionViolation: invalid functional option, surfaced at invocation.
//
// Optimality (unit edge costs): BFS and Dijkstra are optimal; A* is optimal
// with the default heuristics (Manhattan for Conn4, Chebyshev for Conn8);
// DFS is complete but not optimal.
package search
