package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/A-D-Alamdari/single-agent-pathfinding/gridio"
	"github.com/A-D-Alamdari/single-agent-pathfinding/registry"
)

// newConvertCmd builds "sapf convert": re-encode a map between the formats
// the extension dispatch understands.
func newConvertCmd() *cobra.Command {
	var inPath, outPath string

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a map between formats (.json, .gob, MovingAI .map input)",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := gridio.Load(inPath)
			if err != nil {
				return err
			}
			if err := gridio.Save(w, outPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "converted %s -> %s\n", inPath, outPath)

			return nil
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "input map file")
	cmd.Flags().StringVar(&outPath, "out", "", "output map file (.json or .gob)")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

// newValidateCmd builds "sapf validate": load a map and report its shape.
// A non-zero exit means the file failed structural or semantic validation.
func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <map-file>",
		Short: "Validate a map file and print its dimensions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := gridio.Load(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: valid %dx%d map, %d obstacles\n",
				args[0], w.Width(), w.Height(), len(w.Obstacles()))
			if start, ok := w.Start(); ok {
				fmt.Fprintln(out, "start:", start)
			}
			if goal, ok := w.Goal(); ok {
				fmt.Fprintln(out, "goal:", goal)
			}

			return nil
		},
	}

	return cmd
}

// newListCmd builds "sapf list": print the registered algorithm keys.
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available algorithms",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range registry.NewDefault().Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}

			return nil
		},
	}
}
