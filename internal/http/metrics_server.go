package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anylai/signup/internal/metrics"
)

// MetricsServer exposes the scrape endpoint on its own port so the public API
// never serves /metrics.
type MetricsServer struct {
	server *http.Server
	logger *slog.Logger
}

// NewMetricsServer mounts GET /metrics and a GET /health probe for the scrape port.
func NewMetricsServer(host string, port int, logger *slog.Logger, metricsProvider *metrics.Provider) *MetricsServer {
	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/metrics", gin.WrapH(metricsProvider.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	return &MetricsServer{
		server: newHTTPServer(host, port, router),
		logger: logger.With(slog.String("server", "metrics")),
	}
}

// GetHandler returns the http.Handler for testing purposes.
func (s *MetricsServer) GetHandler() http.Handler {
	return s.server.Handler
}

// Start blocks serving scrapes until Shutdown is called.
func (s *MetricsServer) Start(ctx context.Context) error {
	s.logger.InfoContext(ctx, "listening", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start metrics server: %w", err)
	}
	return nil
}

// Shutdown stops accepting scrapes and waits for in-flight ones.
func (s *MetricsServer) Shutdown(ctx context.Context) error {
	s.logger.InfoContext(ctx, "shutting down")
	return s.server.Shutdown(ctx)
}
