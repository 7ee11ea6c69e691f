package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-barista/internal/platform/ops"
	"github.com/vovakirdan/tui-barista/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagMetricsAddr string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the barista SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own round with a tier menu.
Solves are stored per-server (all users share the same board).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.barista/host_key

With --metrics an HTTP endpoint serves /health, /metrics (Prometheus)
and /solves[/difficulty] as JSON.

Examples:
  barista serve                           # Listen on :23234 with auto-generated key
  barista serve --ssh :2222               # Listen on port 2222
  barista serve --metrics :9100           # Also serve metrics
  barista serve --db ./solves.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagMetricsAddr, "metrics", "", "HTTP address for health, metrics and solves (disabled if empty)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	warnConfig()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := ops.NewMetrics(reg)

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Logger:      logger.WithPrefix("barista-ssh"),
		Metrics:     metrics,
	})
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if flagMetricsAddr != "" {
		var solves ops.SolveLister
		if store := server.Store(); store != nil {
			solves = store
		}
		httpSrv := ops.NewServer(reg, solves, logger.WithPrefix("barista-http"))
		go func() {
			logger.Info("serving metrics", "address", flagMetricsAddr)
			if err := httpSrv.ListenAndServe(ctx, flagMetricsAddr); err != nil {
				logger.Error("metrics server error", "error", err)
			}
		}()
	}

	fmt.Printf("Starting barista SSH server on %s\n", server.Addr())
	if _, port, err := net.SplitHostPort(server.Addr()); err == nil {
		fmt.Printf("Connect with: ssh localhost -p %s\n", port)
	}
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
