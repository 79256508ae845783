// Command sapf is the command-line front end for the single-agent
// pathfinding library: solve maps, generate benchmark worlds, convert
// between map formats, and serve the HTTP API.
//
// Exit codes:
//
//   - 0: success (a path was found, or the command has no search outcome)
//   - 2: the search completed but no path exists
//   - 1: any other failure
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
)

const (
	exitOK     = 0
	exitError  = 1
	exitNoPath = 2
)

// errNoPath signals a completed search with no route; main maps it to
// exitNoPath instead of the generic failure code.
var errNoPath = errors.New("no path exists between start and goal")

func main() {
	os.Exit(run())
}

func run() int {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, errNoPath) {
			return exitNoPath
		}
		fmt.Fprintln(os.Stderr, "error:", err)

		return exitError
	}

	return exitOK
}
