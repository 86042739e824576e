package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/stacklok/descriptor-registry-server/internal/api"
	"github.com/stacklok/descriptor-registry-server/internal/config"
)

func TestWithAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		addr    string
		wantErr bool
	}{
		{name: "port only", addr: ":8080"},
		{name: "ipv4 and port", addr: "127.0.0.1:9090"},
		{name: "localhost", addr: "localhost:3000"},
		{name: "ephemeral", addr: ":0"},
		{name: "empty", addr: "", wantErr: true},
		{name: "missing port", addr: "127.0.0.1:", wantErr: true},
		{name: "no colon", addr: "8080", wantErr: true},
		{name: "non numeric port", addr: ":http", wantErr: true},
		{name: "hostname", addr: "example.com:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := baseConfig(WithAddress(tt.addr))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.addr, cfg.address)
		})
	}
}

func TestBaseConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := baseConfig()
	require.NoError(t, err)
	assert.Equal(t, defaultHTTPAddress, cfg.address)
	assert.Equal(t, defaultRequestTimeout, cfg.requestTimeout)
	assert.Equal(t, defaultReadTimeout, cfg.readTimeout)
	assert.Equal(t, defaultWriteTimeout, cfg.writeTimeout)
	assert.Equal(t, defaultIdleTimeout, cfg.idleTimeout)
	assert.Nil(t, cfg.middlewares)

	cfg, err = baseConfig(WithRequestTimeout(time.Second))
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.requestTimeout)

	_, err = baseConfig(WithRequestTimeout(0))
	require.Error(t, err)
}

func TestNewRegistryApp_Errors(t *testing.T) {
	t.Parallel()

	_, err := NewRegistryApp(context.Background())
	require.ErrorContains(t, err, "config cannot be nil")

	_, err = NewRegistryApp(context.Background(), WithConfig(&config.Config{}), WithAddress("bad"))
	require.ErrorContains(t, err, "failed to build base configuration")

	factory := &fakeFactory{}
	_, err = NewRegistryApp(context.Background(),
		WithConfig(&config.Config{IdentifierEncoding: "rot13"}),
		WithStorageFactory(factory),
	)
	require.ErrorContains(t, err, "unknown identifier encoding")
	assert.Equal(t, int32(1), factory.cleanups.Load())
}

func TestNewRegistryApp_MemoryStorageFromConfig(t *testing.T) {
	t.Parallel()

	seed := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(seed, []byte(`{
		// comments are allowed
		"shells": [{"id": "urn:seeded"}],
	}`), 0600))

	app, err := NewRegistryApp(context.Background(),
		WithConfig(&config.Config{Memory: &config.MemoryConfig{SeedFile: seed}}),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Stop(time.Second) })

	rec := httptest.NewRecorder()
	app.GetHTTPServer().Handler.ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, api.APIPrefix+"/shell-descriptors", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "urn:seeded")
}

func TestNewRegistryApp_PlainIdentifiers(t *testing.T) {
	t.Parallel()

	app, err := NewRegistryApp(context.Background(),
		WithConfig(&config.Config{IdentifierEncoding: config.IdentifierEncodingPlain}),
		WithStorageFactory(&fakeFactory{}),
	)
	require.NoError(t, err)

	handler := app.GetHTTPServer().Handler
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, api.APIPrefix+"/submodel-descriptors",
		strings.NewReader(`{"id":"urn:plain"}`)))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, api.APIPrefix+"/submodel-descriptors/urn:plain", rec.Header().Get("Location"))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, api.APIPrefix+"/submodel-descriptors/urn:plain", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewRegistryApp_Telemetry(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	meterProvider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	exporter := tracetest.NewInMemoryExporter()
	tracerProvider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	metricsHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("scraped"))
	})

	app, err := NewRegistryApp(context.Background(),
		WithConfig(&config.Config{}),
		WithStorageFactory(&fakeFactory{}),
		WithMeterProvider(meterProvider),
		WithTracerProvider(tracerProvider),
		WithMetricsHandler(metricsHandler),
	)
	require.NoError(t, err)

	handler := app.GetHTTPServer().Handler

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, api.APIPrefix+"/shell-descriptors", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, "scraped", rec.Body.String())

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	names := map[string]bool{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			names[m.Name] = true
		}
	}
	assert.True(t, names["descriptor_registry_http_requests_total"])
	assert.True(t, names["descriptor_registry_operations_total"])

	var spanNames []string
	for _, span := range exporter.GetSpans() {
		spanNames = append(spanNames, span.Name)
	}
	assert.Contains(t, spanNames, "registryService.ListShells")
	assert.Contains(t, spanNames, "GET "+api.APIPrefix+"/shell-descriptors")
}
