package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/A-D-Alamdari/single-agent-pathfinding/grid"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sapf",
		Short: "Single-agent pathfinding on 2D grid maps",
		Long: "sapf solves single-agent pathfinding problems on rectangular grid maps\n" +
			"with BFS, DFS, Dijkstra, and A*, and ships helpers to generate, convert,\n" +
			"and serve maps.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newRunCmd(),
		newBenchCmd(),
		newGenerateCmd(),
		newConvertCmd(),
		newValidateCmd(),
		newListCmd(),
		newServeCmd(),
	)

	return root
}

// connFlag maps the --conn flag value to a connectivity mode.
func connFlag(v int) (grid.Connectivity, error) {
	switch v {
	case 4:
		return grid.Conn4, nil
	case 8:
		return grid.Conn8, nil
	default:
		return grid.Conn4, fmt.Errorf("invalid --conn %d: must be 4 or 8", v)
	}
}
