// Package api provides the REST API server of the descriptor registry.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/stacklok/descriptor-registry-server/internal/api/common"
	"github.com/stacklok/descriptor-registry-server/internal/api/system"
	v3 "github.com/stacklok/descriptor-registry-server/internal/api/v3"
	"github.com/stacklok/descriptor-registry-server/internal/service"
)

// APIPrefix is the path below which the registry API v3.0 is served
const APIPrefix = "/api/v3.0"

// ServerOption configures the registry API server
type ServerOption func(*serverConfig)

// serverConfig holds the server configuration
type serverConfig struct {
	middlewares    []func(http.Handler) http.Handler
	metricsHandler http.Handler
	codec          service.IdentifierCodec
}

// WithMiddlewares adds middleware to the server
func WithMiddlewares(mw ...func(http.Handler) http.Handler) ServerOption {
	return func(cfg *serverConfig) {
		cfg.middlewares = append(cfg.middlewares, mw...)
	}
}

// WithMetricsHandler serves h on /metrics. A nil handler leaves the route unmounted.
func WithMetricsHandler(h http.Handler) ServerOption {
	return func(cfg *serverConfig) {
		cfg.metricsHandler = h
	}
}

// WithIdentifierCodec sets the codec used to encode identifiers in Location headers.
// It must be the codec the service decodes with. Defaults to base64url.
func WithIdentifierCodec(codec service.IdentifierCodec) ServerOption {
	return func(cfg *serverConfig) {
		cfg.codec = codec
	}
}

// NewServer creates and configures the HTTP router with the given service and options
func NewServer(svc service.RegistryService, opts ...ServerOption) *chi.Mux {
	cfg := &serverConfig{
		codec: service.Base64URLCodec{},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	r := chi.NewRouter()

	for _, mw := range cfg.middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		common.WriteErrorResponse(w, r, "resource not found", http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		common.WriteErrorResponse(w, r, "method not allowed", http.StatusMethodNotAllowed)
	})

	r.Mount("/", system.Router(svc))

	if cfg.metricsHandler != nil {
		r.Handle("/metrics", cfg.metricsHandler)
	}

	r.Mount(APIPrefix, v3.Router(svc, cfg.codec))

	return r
}

// LoggingMiddleware logs HTTP requests
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		slog.DebugContext(r.Context(), "HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
