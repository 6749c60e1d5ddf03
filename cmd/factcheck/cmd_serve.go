package main

import (
	"factcheck/internal/server"

	"github.com/spf13/cobra"
)

var serveAddr string

// serveCmd runs the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the verification API over HTTP",
	Long: `Starts an HTTP server exposing:
  POST /v1/verify   {"claim": "..."} -> verdict, confidence, sources
  GET  /v1/stats    aggregate verdict statistics
  GET  /healthz     liveness`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default: server.addr from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}

	tr := openTracker(cfg, logger)
	defer saveTracker(tr, logger)

	p, err := buildProvider(ctx, cfg, tr, logger)
	if err != nil {
		return err
	}

	var src server.StatsSource
	if tr != nil {
		src = tr
	}
	return server.New(cfg.Server, p, src, logger).ListenAndServe(ctx)
}
