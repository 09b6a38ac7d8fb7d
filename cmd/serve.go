package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathwise/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := deps.cfg.HTTPAddr
		if v, _ := cmd.Flags().GetString("addr"); v != "" {
			addr = v
		}

		app := server.New(deps.svc, deps.caps, server.Options{
			Logger:     deps.log,
			Registerer: deps.registry,
			Gatherer:   deps.registry,
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return server.Run(ctx, app, addr, deps.log)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides PATHWISE_HTTP_ADDR)")
}
