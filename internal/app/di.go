// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	brokerHTTP "github.com/anylai/signup/internal/broker/http"
	brokerUseCase "github.com/anylai/signup/internal/broker/usecase"
	"github.com/anylai/signup/internal/config"
	documentHTTP "github.com/anylai/signup/internal/document/http"
	documentUseCase "github.com/anylai/signup/internal/document/usecase"
	"github.com/anylai/signup/internal/http"
	"github.com/anylai/signup/internal/metrics"
	registrationHTTP "github.com/anylai/signup/internal/registration/http"
	registrationService "github.com/anylai/signup/internal/registration/service"
	registrationUseCase "github.com/anylai/signup/internal/registration/usecase"
)

// Container holds all application dependencies and provides methods to access them.
// Components are created on first access.
type Container struct {
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Document
	documentUseCase documentUseCase.DocumentUseCase
	documentHandler *documentHTTP.DocumentHandler

	// Registration
	passwordService     registrationService.PasswordService
	registrationUseCase registrationUseCase.RegistrationUseCase
	registrationHandler *registrationHTTP.RegistrationHandler

	// Broker
	brokerUseCase brokerUseCase.BrokerUseCase
	brokerHandler *brokerHTTP.BrokerHandler

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	mu                      sync.Mutex
	loggerInit              sync.Once
	metricsProviderInit     sync.Once
	businessMetricsInit     sync.Once
	documentUseCaseInit     sync.Once
	documentHandlerInit     sync.Once
	passwordServiceInit     sync.Once
	registrationUseCaseInit sync.Once
	registrationHandlerInit sync.Once
	brokerUseCaseInit       sync.Once
	brokerHandlerInit       sync.Once
	httpServerInit          sync.Once
	metricsServerInit       sync.Once
	initErrors              map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// MetricsProvider returns the OpenTelemetry metrics provider.
// It returns nil without error when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		c.metricsProvider, err = c.initMetricsProvider()
		if err != nil {
			c.setInitError("metricsProvider", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("metricsProvider"); storedErr != nil {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder, a no-op one when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, err = c.initBusinessMetrics()
		if err != nil {
			c.setInitError("businessMetrics", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("businessMetrics"); storedErr != nil {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// HTTPServer returns the API server with every route wired.
func (c *Container) HTTPServer() (*http.Server, error) {
	var err error
	c.httpServerInit.Do(func() {
		c.httpServer, err = c.initHTTPServer()
		if err != nil {
			c.setInitError("httpServer", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("httpServer"); storedErr != nil {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics server, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	var err error
	c.metricsServerInit.Do(func() {
		c.metricsServer, err = c.initMetricsServer()
		if err != nil {
			c.setInitError("metricsServer", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("metricsServer"); storedErr != nil {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

func (c *Container) setInitError(name string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initErrors[name] = err
}

func (c *Container) initError(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initErrors[name]
}

// initLogger creates a JSON logger at the configured level.
func (c *Container) initLogger() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: c.config.GetLogLevel(),
	})
	return slog.New(handler)
}

func (c *Container) initMetricsProvider() (*metrics.Provider, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}

	provider, err := metrics.NewProvider(c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics provider: %w", err)
	}
	return provider, nil
}

func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}
	if provider == nil {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}
	return businessMetrics, nil
}

// initHTTPServer creates the HTTP server with all its dependencies.
func (c *Container) initHTTPServer() (*http.Server, error) {
	logger := c.Logger()

	documentHandler, err := c.DocumentHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get document handler for http server: %w", err)
	}

	registrationHandler, err := c.RegistrationHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get registration handler for http server: %w", err)
	}

	brokerHandler, err := c.BrokerHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get broker handler for http server: %w", err)
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	server := http.NewServer(c.config.ServerHost, c.config.ServerPort, logger)
	server.SetupRouter(c.config, http.Handlers{
		Document:     documentHandler,
		Registration: registrationHandler,
		Broker:       brokerHandler,
	}, provider)

	return server, nil
}

func (c *Container) initMetricsServer() (*http.MetricsServer, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
	}
	if provider == nil {
		return nil, nil
	}

	return http.NewMetricsServer(c.config.ServerHost, c.config.MetricsPort, c.Logger(), provider), nil
}
