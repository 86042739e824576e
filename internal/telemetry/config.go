// Package telemetry provides OpenTelemetry instrumentation for the descriptor registry.
// Traces are exported over OTLP/HTTP; metrics go to OTLP/HTTP, a Prometheus scrape
// endpoint, or both.
package telemetry

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

const (
	// DefaultServiceName is the default service name for telemetry
	DefaultServiceName = "descriptor-registry"

	// DefaultEndpoint is the default OTLP endpoint for telemetry
	DefaultEndpoint = "localhost:4318"

	// DefaultSampling is the default trace sampling rate (5%)
	DefaultSampling = 0.05

	// DefaultMetricsInterval is the default push interval of the OTLP metrics reader
	DefaultMetricsInterval = 60 * time.Second
)

// Metric exporter names accepted in MetricsConfig.Exporters
const (
	ExporterOTLP       = "otlp"
	ExporterPrometheus = "prometheus"
)

// Config represents the root telemetry configuration
type Config struct {
	// Enabled controls whether telemetry is enabled globally.
	// When false, no telemetry providers are initialized.
	Enabled bool `yaml:"enabled"`

	// ServiceName defaults to DefaultServiceName
	ServiceName string `yaml:"serviceName,omitempty"`

	// ServiceVersion defaults to the application version
	ServiceVersion string `yaml:"serviceVersion,omitempty"`

	// Endpoint is the OTLP collector endpoint in "host:port" form.
	// The /v1/traces and /v1/metrics paths are appended by the exporters.
	Endpoint string `yaml:"endpoint,omitempty"`

	// Insecure allows plain HTTP to the collector
	Insecure bool `yaml:"insecure,omitempty"`

	Tracing *TracingConfig `yaml:"tracing,omitempty"`
	Metrics *MetricsConfig `yaml:"metrics,omitempty"`
}

// TracingConfig defines tracing-specific configuration
type TracingConfig struct {
	Enabled bool `yaml:"enabled"`

	// Sampling is the trace sampling ratio between 0.0 and 1.0.
	// Zero means DefaultSampling.
	Sampling float64 `yaml:"sampling,omitempty"`
}

// MetricsConfig defines metrics-specific configuration
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`

	// Exporters lists the metric readers to install: "otlp", "prometheus" or both.
	// Defaults to ["otlp"].
	Exporters []string `yaml:"exporters,omitempty"`

	// Interval is the OTLP push interval. Defaults to DefaultMetricsInterval.
	Interval time.Duration `yaml:"interval,omitempty"`
}

// GetServiceName returns the service name, using default if not specified
func (c *Config) GetServiceName() string {
	if c.ServiceName == "" {
		return DefaultServiceName
	}
	return c.ServiceName
}

// GetServiceVersion returns the service version, using "unknown" if not specified
func (c *Config) GetServiceVersion() string {
	if c.ServiceVersion == "" {
		return "unknown"
	}
	return c.ServiceVersion
}

// GetEndpoint returns the endpoint, using default if not specified
func (c *Config) GetEndpoint() string {
	if c.Endpoint == "" {
		return DefaultEndpoint
	}
	return c.Endpoint
}

// GetSampling returns the sampling ratio.
// 0 is treated as unset since YAML cannot tell the two apart.
func (c *TracingConfig) GetSampling() float64 {
	if c.Sampling == 0.0 {
		return DefaultSampling
	}
	return c.Sampling
}

// GetExporters returns the configured metric exporters, defaulting to OTLP
func (c *MetricsConfig) GetExporters() []string {
	if len(c.Exporters) == 0 {
		return []string{ExporterOTLP}
	}
	return c.Exporters
}

// HasExporter reports whether the named exporter is configured
func (c *MetricsConfig) HasExporter(name string) bool {
	if c == nil || !c.Enabled {
		return false
	}
	return slices.Contains(c.GetExporters(), name)
}

// GetInterval returns the OTLP push interval
func (c *MetricsConfig) GetInterval() time.Duration {
	if c.Interval <= 0 {
		return DefaultMetricsInterval
	}
	return c.Interval
}

// Validate validates the telemetry configuration
func (c *Config) Validate() error {
	if c == nil || !c.Enabled {
		return nil
	}

	var errs []error

	if c.Tracing != nil {
		if err := c.Tracing.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("tracing: %w", err))
		}
	}

	if c.Metrics != nil {
		if err := c.Metrics.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("metrics: %w", err))
		}
	}

	return errors.Join(errs...)
}

// Validate validates the tracing configuration
func (c *TracingConfig) Validate() error {
	if c == nil || !c.Enabled {
		return nil
	}

	if c.Sampling < 0 || c.Sampling > 1.0 {
		return fmt.Errorf("sampling must be between 0.0 and 1.0, got %f", c.Sampling)
	}

	return nil
}

// Validate validates the metrics configuration
func (c *MetricsConfig) Validate() error {
	if c == nil || !c.Enabled {
		return nil
	}

	if c.Interval < 0 {
		return fmt.Errorf("interval must not be negative, got %s", c.Interval)
	}

	seen := make(map[string]bool, len(c.Exporters))
	for _, name := range c.Exporters {
		switch name {
		case ExporterOTLP, ExporterPrometheus:
		default:
			return fmt.Errorf("unknown exporter %q (supported: %s, %s)", name, ExporterOTLP, ExporterPrometheus)
		}
		if seen[name] {
			return fmt.Errorf("exporter %q listed more than once", name)
		}
		seen[name] = true
	}

	return nil
}
