// Package system provides the health, readiness and version endpoints of the registry.
package system

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stacklok/descriptor-registry-server/internal/api/common"
	"github.com/stacklok/descriptor-registry-server/internal/versions"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status string `json:"status"`
}

// ReadinessChecker reports whether the registry can serve requests
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Router creates a router for health check endpoints
func Router(checker ReadinessChecker) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", healthHandler)
	r.Get("/readiness", readinessHandler(checker))
	r.Get("/version", versionHandler)

	return r
}

// healthHandler handles health check requests
func healthHandler(w http.ResponseWriter, _ *http.Request) {
	common.WriteJSONResponse(w, HealthResponse{Status: "healthy"}, http.StatusOK)
}

// readinessHandler handles readiness check requests
func readinessHandler(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := checker.CheckReadiness(r.Context()); err != nil {
			slog.WarnContext(r.Context(), "Readiness check failed", "error", err)
			common.WriteErrorResponse(w, r, "registry not ready", http.StatusServiceUnavailable)
			return
		}

		common.WriteJSONResponse(w, HealthResponse{Status: "ready"}, http.StatusOK)
	}
}

// versionHandler handles version information requests
func versionHandler(w http.ResponseWriter, _ *http.Request) {
	common.WriteJSONResponse(w, versions.GetVersionInfo(), http.StatusOK)
}
