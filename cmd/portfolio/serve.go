package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"folio.dev/internal/handlers"
	"folio.dev/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the project list as JSON over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return runServer(ctx)
	},
}

// revisionService picks the export directory when configured, otherwise the compiled-in content
func revisionService() (*services.RevisionService, error) {
	if cfg.DataPath == "" {
		logger.Info("serving compiled-in content")
		return services.NewContentRevisionService(), nil
	}
	logger.Info("serving exported content", zap.String("data_path", cfg.DataPath))
	return services.NewRevisionService(cfg.DataPath)
}

func runServer(ctx context.Context) error {
	rs, err := revisionService()
	if err != nil {
		return err
	}

	router, err := handlers.SetupRoutes(rs, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{Addr: cfg.ServerAddr, Handler: router}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			zap.String("addr", cfg.ServerAddr),
			zap.Int("revision", rs.LatestNumber()))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
