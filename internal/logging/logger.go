// Package logging provides structured logging configuration using log/slog.
//
// Each scan is tagged with a scan ID carried in its context, so all log
// entries written on behalf of one scan can be correlated.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Setup configures the global slog logger to write to w based on level and format.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
// Format values: "text", "json" (default: "text")
//
// The CLI passes stderr as w; stdout is reserved for scan results.
func Setup(w io.Writer, level, format string) {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type contextKey string

const ctxKeyScanID contextKey = "scan_id"

// NewScanID returns a fresh random scan ID.
func NewScanID() string {
	return uuid.NewString()
}

// ContextWithScanID adds a scan ID to ctx.
func ContextWithScanID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyScanID, id)
}

// ScanIDFromContext extracts the scan ID from ctx, or "" if none is set.
func ScanIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyScanID).(string); ok {
		return v
	}
	return ""
}

// FromContext returns the default logger enriched with the scan ID in ctx,
// if any.
//
// Usage:
//
//	ctx = logging.ContextWithScanID(ctx, logging.NewScanID())
//	logger := logging.FromContext(ctx)
//	logger.Info("scan started", "path", path)
func FromContext(ctx context.Context) *slog.Logger {
	logger := slog.Default()

	if id := ScanIDFromContext(ctx); id != "" {
		logger = logger.With("scan_id", id)
	}

	return logger
}

// WithFields returns a logger with additional structured fields.
func WithFields(ctx context.Context, args ...any) *slog.Logger {
	return FromContext(ctx).With(args...)
}
