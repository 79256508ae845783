package main

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/A-D-Alamdari/single-agent-pathfinding/registry"
	"github.com/A-D-Alamdari/single-agent-pathfinding/server"
)

// newServeCmd builds "sapf serve": run the HTTP API.
func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the pathfinding HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			gin.SetMode(gin.ReleaseMode)
			srv := server.New(registry.NewDefault(), slog.Default())
			slog.Info("listening", "addr", addr)

			return srv.Router().Run(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}
