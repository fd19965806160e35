package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/listforge/delimit/internal/config"
	"github.com/listforge/delimit/internal/httpapi"
	"github.com/listforge/delimit/internal/preset"
)

func newServeCommand(logger *slog.Logger) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the delimit HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if addr != "" {
				cfg.ListenAddr = addr
			}

			handler := httpapi.NewRouter(httpapi.Dependencies{
				Config:  cfg,
				Presets: preset.NewStore(cfg.PresetPath),
				Logger:  logger,
			})
			srv := &http.Server{
				Addr:              cfg.ListenAddr,
				Handler:           handler,
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.ListenAndServe()
			}()
			logger.Info("http api listening", "addr", cfg.ListenAddr)

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer shutdownCancel()
				logger.Info("shutting down")
				return srv.Shutdown(shutdownCtx)
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to DELIMIT_LISTEN_ADDR or :8080)")
	return cmd
}
