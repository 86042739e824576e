// Package main is the entry point for the descriptor registry server.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/trace"

	"github.com/stacklok/descriptor-registry-server/cmd/descriptor-registry/app"
	"github.com/stacklok/descriptor-registry-server/internal/config"
)

// logSettings is read from DESCRIPTOR_REGISTRY_LOG_LEVEL and DESCRIPTOR_REGISTRY_LOG_FORMAT,
// with the unprefixed LOG_LEVEL and LOG_FORMAT as fallbacks
type logSettings struct {
	level slog.Level
	text  bool
}

func readLogSettings() logSettings {
	v := viper.New()
	v.SetEnvPrefix(config.EnvPrefix)
	v.AutomaticEnv()

	lookup := func(key string) string {
		if value := v.GetString(key); value != "" {
			return value
		}
		return os.Getenv(key)
	}

	return logSettings{
		level: parseLogLevel(lookup("LOG_LEVEL")),
		text:  strings.EqualFold(lookup("LOG_FORMAT"), "text"),
	}
}

// parseLogLevel accepts the names understood by slog plus "warning".
// Anything else is reported and treated as info.
func parseLogLevel(s string) slog.Level {
	s = strings.TrimSpace(s)
	if s == "" {
		return slog.LevelInfo
	}
	if strings.EqualFold(s, "warning") {
		return slog.LevelWarn
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		slog.Warn("Invalid LOG_LEVEL, using INFO", "value", s)
		return slog.LevelInfo
	}
	return level
}

func newLogger(w io.Writer, settings logSettings) *slog.Logger {
	opts := &slog.HandlerOptions{Level: settings.level}

	var base slog.Handler = slog.NewJSONHandler(w, opts)
	if settings.text {
		base = slog.NewTextHandler(w, opts)
	}
	return slog.New(&traceHandler{Handler: base})
}

// traceHandler adds trace_id and span_id of the active span to every record
type traceHandler struct {
	slog.Handler
}

func (h *traceHandler) Handle(ctx context.Context, r slog.Record) error {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		r.AddAttrs(
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
		)
	}
	return h.Handler.Handle(ctx, r)
}

func (h *traceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &traceHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *traceHandler) WithGroup(name string) slog.Handler {
	return &traceHandler{Handler: h.Handler.WithGroup(name)}
}

func main() {
	// stdout is reserved for command output such as version --format json
	slog.SetDefault(newLogger(os.Stderr, readLogSettings()))

	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
