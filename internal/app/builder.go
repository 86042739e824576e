package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/netip"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/stacklok/descriptor-registry-server/internal/api"
	"github.com/stacklok/descriptor-registry-server/internal/app/storage"
	"github.com/stacklok/descriptor-registry-server/internal/config"
	"github.com/stacklok/descriptor-registry-server/internal/service"
	"github.com/stacklok/descriptor-registry-server/internal/telemetry"
)

const (
	defaultHTTPAddress    = ":8080"
	defaultRequestTimeout = 10 * time.Second
	defaultReadTimeout    = 10 * time.Second
	defaultWriteTimeout   = 15 * time.Second
	defaultIdleTimeout    = 60 * time.Second

	// StoreTracerName is the name of the tracer handed to the durable store
	StoreTracerName = "github.com/stacklok/descriptor-registry-server/store"
)

// RegistryAppOptions is a function that configures the registry app builder
type RegistryAppOptions func(*registryAppConfig) error

// registryAppConfig collects the options of NewRegistryApp.
// Component overrides are primarily used by tests.
type registryAppConfig struct {
	config *config.Config

	storageFactory storage.Factory

	// HTTP server options
	address        string
	middlewares    []func(http.Handler) http.Handler
	requestTimeout time.Duration
	readTimeout    time.Duration
	writeTimeout   time.Duration
	idleTimeout    time.Duration

	// Telemetry components
	meterProvider  metric.MeterProvider
	tracerProvider trace.TracerProvider
	metricsHandler http.Handler
}

func baseConfig(opts ...RegistryAppOptions) (*registryAppConfig, error) {
	cfg := &registryAppConfig{
		address:        defaultHTTPAddress,
		requestTimeout: defaultRequestTimeout,
		readTimeout:    defaultReadTimeout,
		writeTimeout:   defaultWriteTimeout,
		idleTimeout:    defaultIdleTimeout,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// NewRegistryApp creates a new registry application from the given options
func NewRegistryApp(
	ctx context.Context,
	opts ...RegistryAppOptions,
) (*RegistryApp, error) {
	cfg, err := baseConfig(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build base configuration: %w", err)
	}
	if cfg.config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	// Single decision point for database vs memory storage
	if cfg.storageFactory == nil {
		var factoryOpts []storage.DatabaseFactoryOption
		if cfg.tracerProvider != nil {
			factoryOpts = append(factoryOpts, storage.WithTracer(cfg.tracerProvider.Tracer(StoreTracerName)))
		}
		cfg.storageFactory, err = storage.NewStorageFactory(ctx, cfg.config, factoryOpts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage factory: %w", err)
		}
	}

	// Ensure cleanup happens on error
	cleanupNeeded := true
	defer func() {
		if cleanupNeeded {
			cfg.storageFactory.Cleanup()
		}
	}()

	components, err := buildServiceComponents(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build service components: %w", err)
	}

	httpServer, err := buildHTTPServer(ctx, cfg, components.RegistryService)
	if err != nil {
		return nil, fmt.Errorf("failed to build HTTP server: %w", err)
	}

	// Cleanup is now handled by the app
	cleanupNeeded = false

	return &RegistryApp{
		config:     cfg.config,
		components: components,
		httpServer: httpServer,
		ready:      make(chan struct{}),
		cleanup:    cfg.storageFactory.Cleanup,
	}, nil
}

// WithConfig sets the configuration
func WithConfig(c *config.Config) RegistryAppOptions {
	return func(cfg *registryAppConfig) error {
		cfg.config = c
		return nil
	}
}

// WithAddress sets the HTTP server address
func WithAddress(addr string) RegistryAppOptions {
	return func(cfg *registryAppConfig) error {
		if addr == "" {
			return fmt.Errorf("address cannot be empty")
		}

		host, port, found := strings.Cut(addr, ":")
		if !found || port == "" {
			return fmt.Errorf("address is not a valid port: %s", addr)
		}
		if host == "localhost" {
			host = "127.0.0.1"
		}
		if host == "" {
			host = "0.0.0.0"
		}

		if _, err := netip.ParseAddrPort(host + ":" + port); err != nil {
			return fmt.Errorf("address is not a valid port: %w", err)
		}

		cfg.address = addr
		return nil
	}
}

// WithMiddlewares replaces the default HTTP middlewares
func WithMiddlewares(mw ...func(http.Handler) http.Handler) RegistryAppOptions {
	return func(cfg *registryAppConfig) error {
		cfg.middlewares = mw
		return nil
	}
}

// WithRequestTimeout sets the per-request timeout of the default middlewares
func WithRequestTimeout(timeout time.Duration) RegistryAppOptions {
	return func(cfg *registryAppConfig) error {
		if timeout <= 0 {
			return fmt.Errorf("request timeout must be positive")
		}
		cfg.requestTimeout = timeout
		return nil
	}
}

// WithStorageFactory allows injecting a custom storage factory (for testing)
func WithStorageFactory(f storage.Factory) RegistryAppOptions {
	return func(cfg *registryAppConfig) error {
		cfg.storageFactory = f
		return nil
	}
}

// WithMeterProvider sets the OpenTelemetry meter provider for HTTP and operation metrics
func WithMeterProvider(mp metric.MeterProvider) RegistryAppOptions {
	return func(cfg *registryAppConfig) error {
		cfg.meterProvider = mp
		return nil
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider for HTTP, service and store spans
func WithTracerProvider(tp trace.TracerProvider) RegistryAppOptions {
	return func(cfg *registryAppConfig) error {
		cfg.tracerProvider = tp
		return nil
	}
}

// WithMetricsHandler serves the given handler on /metrics
func WithMetricsHandler(h http.Handler) RegistryAppOptions {
	return func(cfg *registryAppConfig) error {
		cfg.metricsHandler = h
		return nil
	}
}

// buildServiceComponents builds the repository and the registry service on top of it
func buildServiceComponents(
	ctx context.Context,
	b *registryAppConfig,
) (*AppComponents, error) {
	slog.Info("Initializing service components", "storage", b.config.GetStorageType())

	repo, err := b.storageFactory.CreateRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create repository: %w", err)
	}

	codec, err := service.NewIdentifierCodec(b.config.GetIdentifierEncoding())
	if err != nil {
		return nil, err
	}

	svcOpts := []service.RegistryOption{service.WithIdentifierCodec(codec)}

	if b.tracerProvider != nil {
		svcOpts = append(svcOpts, service.WithTracer(b.tracerProvider.Tracer(service.ServiceTracerName)))
	}

	if b.meterProvider != nil {
		registryMetrics, err := telemetry.NewRegistryMetrics(b.meterProvider)
		if err != nil {
			return nil, fmt.Errorf("failed to create registry metrics: %w", err)
		}
		svcOpts = append(svcOpts, service.WithMetrics(registryMetrics))
		slog.Info("Registry metrics enabled")
	}

	svc, err := service.NewRegistryService(repo, svcOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create registry service: %w", err)
	}

	slog.Info("Service components initialized successfully")
	return &AppComponents{
		Repository:      repo,
		RegistryService: svc,
	}, nil
}

// buildHTTPServer builds the HTTP server with router and middleware
//
//nolint:unparam // we prefer having a similar interface
func buildHTTPServer(
	_ context.Context,
	b *registryAppConfig,
	svc service.RegistryService,
) (*http.Server, error) {
	slog.Info("Initializing HTTP server")

	if b.middlewares == nil {
		b.middlewares = []func(http.Handler) http.Handler{
			middleware.RequestID,
			middleware.RealIP,
			middleware.Recoverer,
			middleware.Timeout(b.requestTimeout),
			api.LoggingMiddleware,
		}
	}

	// Telemetry middlewares go first so that every request is observed
	var outer []func(http.Handler) http.Handler
	if b.tracerProvider != nil {
		outer = append(outer, telemetry.TracingMiddleware(b.tracerProvider))
		slog.Info("HTTP tracing middleware enabled")
	}
	if b.meterProvider != nil {
		metricsMiddleware, err := telemetry.MetricsMiddleware(b.meterProvider)
		if err != nil {
			return nil, fmt.Errorf("failed to create metrics middleware: %w", err)
		}
		if metricsMiddleware != nil {
			outer = append(outer, metricsMiddleware)
			slog.Info("HTTP metrics middleware enabled")
		}
	}
	b.middlewares = append(outer, b.middlewares...)

	codec, err := service.NewIdentifierCodec(b.config.GetIdentifierEncoding())
	if err != nil {
		return nil, err
	}

	router := api.NewServer(svc,
		api.WithMiddlewares(b.middlewares...),
		api.WithMetricsHandler(b.metricsHandler),
		api.WithIdentifierCodec(codec),
	)

	server := &http.Server{
		Addr:              b.address,
		Handler:           router,
		ReadTimeout:       b.readTimeout,
		ReadHeaderTimeout: b.readTimeout,
		WriteTimeout:      b.writeTimeout,
		IdleTimeout:       b.idleTimeout,
	}

	slog.Info("HTTP server configured", "address", b.address)
	return server, nil
}
