package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/travelmind/internal/pkg/config"
)

const shutdownTimeout = 5 * time.Second

// Server holds the dependencies for the HTTP server
type Server struct {
	cfg    *config.Config
	logger *zap.Logger
	router http.Handler
}

// New creates a new Server instance
func New(cfg *config.Config, logger *zap.Logger) *Server {
	return &Server{
		cfg:    cfg,
		logger: logger,
	}
}

// HTTPServer creates and configures the HTTP server. WriteTimeout leaves
// room for slow completion calls.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:              ":" + s.cfg.Server.Port,
		Handler:           s.router,
		IdleTimeout:       time.Minute,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      s.cfg.Completion.Timeout*2 + 10*time.Second,
	}
}

// SetRouter sets the HTTP router/handler
func (s *Server) SetRouter(router http.Handler) {
	s.router = router
}

// Run serves the API, and pprof when configured, until ctx is cancelled or
// a listener fails. Servers are shut down gracefully either way.
func (s *Server) Run(ctx context.Context) error {
	servers := []*http.Server{s.HTTPServer()}
	if s.cfg.Server.PprofAddr != "" {
		servers = append(servers, PprofServer(s.cfg.Server.PprofAddr))
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		g.Go(func() error {
			s.logger.Info("Server starting", zap.String("addr", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("listen on %s: %w", srv.Addr, err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("Shutting down gracefully")
		return Shutdown(s.logger, shutdownTimeout, servers...)
	})

	return g.Wait()
}
