// Package http provides the HTTP server, router and shared middleware.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	brokerHTTP "github.com/anylai/signup/internal/broker/http"
	"github.com/anylai/signup/internal/config"
	documentHTTP "github.com/anylai/signup/internal/document/http"
	"github.com/anylai/signup/internal/metrics"
	registrationHTTP "github.com/anylai/signup/internal/registration/http"
)

// Handlers groups the module handlers mounted under /v1.
type Handlers struct {
	Document     *documentHTTP.DocumentHandler
	Registration *registrationHTTP.RegistrationHandler
	Broker       *brokerHTTP.BrokerHandler
}

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
	ready  atomic.Bool

	// ctx scopes background work started by middleware, such as limiter cleanup.
	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new HTTP server. Call SetupRouter before Start.
func NewServer(host string, port int, logger *slog.Logger) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		logger: logger,
		server: newHTTPServer(host, port, nil),
		ctx:    ctx,
		cancel: cancel,
	}
}

// newHTTPServer returns an http.Server with the timeouts shared by the API and metrics listeners.
func newHTTPServer(host string, port int, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", host, port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// SetupRouter builds the Gin router with middleware and every route.
// metricsProvider may be nil when metrics are disabled.
func (s *Server) SetupRouter(cfg *config.Config, handlers Handlers, metricsProvider *metrics.Provider) {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	if cfg.RateLimitEnabled {
		v1.Use(RateLimitMiddleware(s.ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}

	if handlers.Document != nil {
		v1.POST("/documents/format", handlers.Document.FormatHandler)
		v1.POST("/documents/validate", handlers.Document.ValidateHandler)
		v1.POST("/phones/format", handlers.Document.FormatPhoneHandler)
		v1.POST("/fields/format", handlers.Document.FormatFieldHandler)
	}

	if handlers.Registration != nil {
		registrations := v1.Group("/registrations")
		registrations.GET("/profiles", handlers.Registration.ListProfilesHandler)
		registrations.POST("/form", handlers.Registration.ApplyHandler)
		registrations.POST("/check", handlers.Registration.CheckHandler)
		registrations.POST("", handlers.Registration.RegisterHandler)
	}

	if handlers.Broker != nil {
		v1.POST("/brokers/card", handlers.Broker.CardHandler)
	}

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start serves requests until Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router not configured")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))
	s.ready.Store(true)

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.ready.Store(false)
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown marks the server as not ready, stops background work and drains connections.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	s.ready.Store(false)
	s.cancel()
	return s.server.Shutdown(ctx)
}

// healthHandler reports liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server accepts traffic. It turns
// unavailable as soon as shutdown begins.
func (s *Server) readinessHandler(c *gin.Context) {
	if !s.ready.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
