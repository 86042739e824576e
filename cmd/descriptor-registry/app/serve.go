package app

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	registryapp "github.com/stacklok/descriptor-registry-server/internal/app"
	"github.com/stacklok/descriptor-registry-server/internal/config"
	"github.com/stacklok/descriptor-registry-server/internal/telemetry"
	"github.com/stacklok/descriptor-registry-server/internal/versions"
)

const (
	defaultGracefulTimeout = 30 * time.Second // Kubernetes-friendly shutdown time
	telemetryFlushTimeout  = 5 * time.Second
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the registry API server",
		Long: `Start the registry API server.

The configuration file (--config) selects the storage backend: with a database
section descriptors are kept in PostgreSQL, otherwise in memory, optionally
seeded from memory.seedFile. Apply migrations with 'migrate up' first when
using a database.`,
		RunE: runServe,
	}

	cmd.Flags().String("address", ":8080", "Address to listen on")
	cmd.Flags().String("config", "", "Path to configuration file (YAML format, required)")
	cmd.Flags().Duration("graceful-timeout", defaultGracefulTimeout, "Time allowed for in-flight requests on shutdown")

	if err := cmd.MarkFlagRequired("config"); err != nil {
		panic(err)
	}

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	v.SetEnvPrefix(config.EnvPrefix)
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	configPath := v.GetString("config")
	cfg, err := config.LoadConfig(config.WithConfigPath(configPath))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	slog.Info("Loaded configuration",
		"path", configPath,
		"registry", cfg.GetRegistryName(),
		"storage", cfg.GetStorageType())

	if cfg.Telemetry != nil && cfg.Telemetry.ServiceVersion == "" {
		cfg.Telemetry.ServiceVersion = versions.GetVersionInfo().Version
	}
	tel, err := telemetry.New(ctx, telemetry.WithTelemetryConfig(cfg.Telemetry))
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), telemetryFlushTimeout)
		defer cancel()
		if err := tel.Shutdown(shutdownCtx); err != nil {
			slog.Error("Failed to shut down telemetry", "error", err)
		}
	}()

	opts := []registryapp.RegistryAppOptions{
		registryapp.WithConfig(cfg),
		registryapp.WithAddress(v.GetString("address")),
	}
	if cfg.Telemetry != nil && cfg.Telemetry.Enabled {
		opts = append(opts,
			registryapp.WithMeterProvider(tel.MeterProvider()),
			registryapp.WithTracerProvider(tel.TracerProvider()),
			registryapp.WithMetricsHandler(tel.MetricsHandler()),
		)
	}

	registry, err := registryapp.NewRegistryApp(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create registry application: %w", err)
	}

	return registry.Run(ctx, v.GetDuration("graceful-timeout"))
}
