package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"foliopress/internal/server"
	"foliopress/pkg/templates"
)

// newServeCmd creates the serve command: the catalog HTTP API over a
// configurable store backend.
func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the catalog HTTP API",
		Long: `Serve starts the catalog HTTP API. Configuration comes from the
environment: FOLIOPRESS_ADDR, FOLIOPRESS_STORE (memory, file, mongo,
postgres, redis) and the backend connection variables, plus
FOLIOPRESS_TEMPLATE_DIR for extra templates.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := server.LoadConfig()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			st, err := server.OpenStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer st.Close(context.Background())

			tpls, err := templates.Load(cfg.TemplateDir)
			if err != nil {
				return err
			}

			srv := server.New(cfg, st, tpls, logger)
			logger.Info("store ready", "backend", cfg.Backend)

			errCh := make(chan error, 1)
			go func() { errCh <- srv.ListenAndServe() }()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
	return cmd
}
