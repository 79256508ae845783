package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/A-D-Alamdari/single-agent-pathfinding/generator"
	"github.com/A-D-Alamdari/single-agent-pathfinding/grid"
	"github.com/A-D-Alamdari/single-agent-pathfinding/gridio"
)

// newGenerateCmd builds "sapf generate" with one subcommand per layout kind.
func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate grid maps (random, maze, warehouse)",
	}
	cmd.AddCommand(newGenerateRandomCmd(), newGenerateMazeCmd(), newGenerateWarehouseCmd())

	return cmd
}

func newGenerateRandomCmd() *cobra.Command {
	var (
		width, height int
		ratio         float64
		seed          int64
		outPath       string
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Random obstacle field (reachability not guaranteed)",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := generator.Random(width, height, ratio, seed)
			if err != nil {
				return err
			}

			return saveGenerated(cmd, w, outPath)
		},
	}

	cmd.Flags().IntVar(&width, "width", 32, "map width in cells")
	cmd.Flags().IntVar(&height, "height", 32, "map height in cells")
	cmd.Flags().Float64Var(&ratio, "ratio", 0.25, "obstacle ratio in [0, 1]")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed")
	cmd.Flags().StringVar(&outPath, "out", "", "output file (.json or .gob)")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func newGenerateMazeCmd() *cobra.Command {
	var (
		cellWidth, cellHeight int
		seed                  int64
		outPath               string
	)

	cmd := &cobra.Command{
		Use:   "maze",
		Short: "Perfect maze via recursive backtracking",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := generator.Maze(cellWidth, cellHeight, seed)
			if err != nil {
				return err
			}

			return saveGenerated(cmd, w, outPath)
		},
	}

	cmd.Flags().IntVar(&cellWidth, "width", 15, "maze width in logical cells")
	cmd.Flags().IntVar(&cellHeight, "height", 15, "maze height in logical cells")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed")
	cmd.Flags().StringVar(&outPath, "out", "", "output file (.json or .gob)")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func newGenerateWarehouseCmd() *cobra.Command {
	var (
		width, height int
		aisle         int
		outPath       string
	)

	cmd := &cobra.Command{
		Use:   "warehouse",
		Short: "Warehouse shelving layout with regular aisles",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := generator.Warehouse(width, height, aisle)
			if err != nil {
				return err
			}

			return saveGenerated(cmd, w, outPath)
		},
	}

	cmd.Flags().IntVar(&width, "width", 32, "map width in cells")
	cmd.Flags().IntVar(&height, "height", 16, "map height in cells")
	cmd.Flags().IntVar(&aisle, "aisle", 6, "aisle column spacing (>= 2)")
	cmd.Flags().StringVar(&outPath, "out", "", "output file (.json or .gob)")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func saveGenerated(cmd *cobra.Command, w *grid.World, outPath string) error {
	if err := gridio.Save(w, outPath); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %dx%d map with %d obstacles to %s\n",
		w.Width(), w.Height(), len(w.Obstacles()), outPath)

	return nil
}
