package main

import (
	"github.com/attclean/attclean-go/internal/config"
	"github.com/attclean/attclean-go/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the upload, preview and download endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if addr != "" {
				cfg.Addr = addr
			}
			return server.New(cfg).ListenAndServe()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default: $ATTCLEAN_ADDR or :8080)")
	return cmd
}
