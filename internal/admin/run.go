package admin

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"resto-admin/internal/admin/api/http"
	"resto-admin/internal/xpkg/config"
	"resto-admin/internal/xpkg/logger"
)

// Execute starts the admin service and blocks until shutdown.
func Execute(ctx context.Context, cfg *config.Config, mylog logger.Logger) error {
	newCtx, stop := signal.NotifyContext(ctx, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := http.NewServer(newCtx, context.Background(), cfg, mylog)

	runErrCh := make(chan error, 1)
	go func() {
		runErrCh <- server.Run()
	}()

	select {
	case <-newCtx.Done():
		mylog.Action("shutdown_signal_received").Info("Shutdown signal received")
		return server.Stop(context.Background())
	case err := <-runErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			mylog.Action("admin_service_failed").Error("Server failed unexpectedly", err)
			return err
		}
		mylog.Action("server_stopped").Info("Server exited normally")
		return nil
	}
}
