package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/vango-dev/weave/pkg/live"
	"github.com/vango-dev/weave/pkg/metrics"
)

func serveCmd() *cobra.Command {
	var (
		port int
		host string
		name string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a demo live over WebSocket",
		Long: `Serve a demo. Every browser connection gets its own tree; clicks and
input are sent to the server and the new markup is sent back.

Prometheus metrics are served on /metrics unless disabled in weave.json.

Examples:
  weave serve
  weave serve --demo todo --port 8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Server.Port = port
			}
			if host != "" {
				cfg.Server.Host = host
			}
			if name != "" {
				cfg.Demo = name
			}

			opts := live.Options{
				Demo:        cfg.Demo,
				Logger:      cfg.NewLogger(os.Stderr),
				StrictOwner: cfg.Strict(),
			}
			if cfg.Metrics.Enabled {
				reg := prometheus.NewRegistry()
				reg.MustRegister(collectors.NewGoCollector())
				opts.Metrics = metrics.NewPrometheus(
					metrics.WithRegistry(reg),
					metrics.WithNamespace(cfg.Metrics.Namespace),
				)
				opts.Gatherer = reg
			} else {
				warn("Metrics disabled")
			}

			srv, err := live.New(opts)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			success("Serving %s on %s", cfg.Demo, cfg.URL())
			if p := cfg.Path(); p != "" {
				info("Config %s", p)
			}
			info("Press Ctrl+C to stop")
			if err := srv.ListenAndServe(ctx, cfg.Address()); err != nil {
				return err
			}
			fmt.Println("\n  Shut down")
			return nil
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from weave.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from weave.json)")
	cmd.Flags().StringVarP(&name, "demo", "d", "", "Demo to serve (default from weave.json)")

	return cmd
}
