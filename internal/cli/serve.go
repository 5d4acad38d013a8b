package cli

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpx "github.com/example/rcb/internal/infra/http"
	"github.com/example/rcb/internal/infra/logger"
	"github.com/example/rcb/internal/wire"
)

// ServeCmd returns the serve command.
func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the monitoring sidecar (health + metrics)",
		Long: `Run the station monitoring endpoint: /health for the supervisor and,
when enabled in config, /metrics with production counters and live pool
occupancy. Blocks until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := wire.Config()
			log := logger.New(cfg.App.Env)

			srv := httpx.New(cfg.HTTP.Addr, wire.MetricsRegistry(), cfg.Metrics.Enabled)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				if err := srv.Start(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()
			log.Info("monitoring server started", "addr", cfg.HTTP.Addr, "metrics", cfg.Metrics.Enabled)

			select {
			case err := <-errCh:
				log.Error("monitoring server error", "err", err)
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return err
			}
			log.Info("graceful shutdown complete")
			return nil
		},
	}
}
