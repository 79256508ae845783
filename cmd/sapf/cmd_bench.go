package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/A-D-Alamdari/single-agent-pathfinding/grid"
	"github.com/A-D-Alamdari/single-agent-pathfinding/gridio"
	"github.com/A-D-Alamdari/single-agent-pathfinding/registry"
	"github.com/A-D-Alamdari/single-agent-pathfinding/search"
)

// newBenchCmd builds "sapf bench": run every entry of a MovingAI scenario
// file against its map and report aggregate statistics.
func newBenchCmd() *cobra.Command {
	var (
		mapPath  string
		scenPath string
		algo     string
		conn     int
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run a MovingAI scenario file and report statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			world, err := gridio.Load(mapPath)
			if err != nil {
				return err
			}
			f, err := os.Open(scenPath)
			if err != nil {
				return err
			}
			entries, err := gridio.DecodeScenario(f)
			f.Close()
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

			var solved, unsolved, skipped, expansions int
			var runtimeMS float64
			for i, e := range entries {
				if e.Start == e.Goal {
					skipped++

					continue
				}
				run, err := world.Clone(grid.WithStart(e.Start), grid.WithGoal(e.Goal))
				if err != nil {
					slog.Warn("skipping scenario entry", "index", i, "err", err)
					skipped++

					continue
				}
				result, err := engine.Run(run, e.Start, e.Goal)
				if err != nil {
					return fmt.Errorf("entry %d: %w", i, err)
				}
				expansions += result.Expansions
				runtimeMS += result.RuntimeMS
				if result.Status == search.StatusFound {
					solved++
				} else {
					unsolved++
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s on %s: %d entries\n", engine.Name(), scenPath, len(entries))
			fmt.Fprintf(out, "  solved=%d no_path=%d skipped=%d\n", solved, unsolved, skipped)
			fmt.Fprintf(out, "  expansions=%d runtime=%.1fms\n", expansions, runtimeMS)

			return nil
		},
	}

	cmd.Flags().StringVar(&mapPath, "map", "", "MovingAI .map file")
	cmd.Flags().StringVar(&scenPath, "scen", "", "MovingAI .scen scenario file")
	cmd.Flags().StringVar(&algo, "algo", "astar", "algorithm key (see \"sapf list\")")
	cmd.Flags().IntVar(&conn, "conn", 8, "grid connectivity: 4 or 8")
	_ = cmd.MarkFlagRequired("map")
	_ = cmd.MarkFlagRequired("scen")

	return cmd
}
