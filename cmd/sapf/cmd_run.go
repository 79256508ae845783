package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/A-D-Alamdari/single-agent-pathfinding/grid"
	"github.com/A-D-Alamdari/single-agent-pathfinding/gridio"
	"github.com/A-D-Alamdari/single-agent-pathfinding/registry"
	"github.com/A-D-Alamdari/single-agent-pathfinding/search"
)

// newRunCmd builds "sapf run": load a map, solve it, print the outcome.
func newRunCmd() *cobra.Command {
	var (
		mapPath string
		algo    string
		conn    int
		steps   bool
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Solve a map with the chosen algorithm",
		RunE: func(cmd *cobra.Command, args []string) error {
			world, err := gridio.Load(mapPath)
			if err != nil {
				return err
			}
			c, err := connFlag(conn)
			if err != nil {
				return err
			}
			engine, err := registry.NewDefault().New(algo, search.WithConnectivity(c))
			if err != nil {
				return err
			}
			start, goal, err := search.WorldEndpoints(world)
			if err != nil {
				return err
			}

			var result *search.Result
			if steps {
				result, err = runPrintingSteps(cmd, engine, world, start, goal)
			} else {
				result, err = engine.Run(world, start, goal)
			}
			if err != nil {
				return err
			}

			printSummary(cmd, engine.Name(), result)
			if outPath != "" {
				if err := writeResult(outPath, result); err != nil {
					return err
				}
			}
			if result.Status == search.StatusNoPath {
				return errNoPath
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&mapPath, "map", "", "map file (.json, .gob, or MovingAI .map)")
	cmd.Flags().StringVar(&algo, "algo", "astar", "algorithm key (see \"sapf list\")")
	cmd.Flags().IntVar(&conn, "conn", 4, "grid connectivity: 4 or 8")
	cmd.Flags().BoolVar(&steps, "steps", false, "print one JSON step event per expansion")
	cmd.Flags().StringVar(&outPath, "out", "", "write the full result as JSON to this file")
	_ = cmd.MarkFlagRequired("map")

	return cmd
}

// runPrintingSteps drives the stepper to completion, emitting each event as a
// JSON line on stdout.
func runPrintingSteps(cmd *cobra.Command, engine search.Engine, w *grid.World, start, goal grid.Coord) (*search.Result, error) {
	stepper, err := engine.Steps(w, start, goal)
	if err != nil {
		return nil, err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	for {
		ev, more := stepper.Next()
		if !more {
			break
		}
		if err := enc.Encode(ev); err != nil {
			return nil, err
		}
	}

	return stepper.Result(), nil
}

// printSummary writes the human-readable outcome of one search.
func printSummary(cmd *cobra.Command, algo string, r *search.Result) {
	out := cmd.OutOrStdout()
	switch r.Status {
	case search.StatusFound:
		fmt.Fprintf(out, "%s: FOUND cost=%d length=%d expansions=%d runtime=%.3fms\n",
			algo, *r.Cost, len(r.Path), r.Expansions, r.RuntimeMS)
		fmt.Fprintln(out, "path:", formatPath(r.Path))
	case search.StatusNoPath:
		fmt.Fprintf(out, "%s: NO_PATH expansions=%d runtime=%.3fms\n",
			algo, r.Expansions, r.RuntimeMS)
	default:
		fmt.Fprintf(out, "%s: %s expansions=%d\n", algo, r.Status, r.Expansions)
	}
}

func formatPath(path []grid.Coord) string {
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = c.String()
	}

	return strings.Join(parts, " -> ")
}

// writeResult dumps the result as indented JSON to path.
func writeResult(path string, r *search.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}
