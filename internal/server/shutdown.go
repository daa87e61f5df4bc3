package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// SignalContext is cancelled on SIGINT or SIGTERM. A second signal after
// stop has been called terminates the process immediately.
func SignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}

// Shutdown gives in-flight requests up to timeout to finish.
func Shutdown(logger *zap.Logger, timeout time.Duration, servers ...*http.Server) error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var errs []error
	for _, srv := range servers {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server forced to shutdown", zap.String("addr", srv.Addr), zap.Error(err))
			errs = append(errs, err)
		}
	}

	logger.Info("Server exiting")
	return errors.Join(errs...)
}
