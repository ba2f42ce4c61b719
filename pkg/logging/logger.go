// Package logging provides structured logging for go-empire. It wraps the
// standard slog package with JSON output, correlation IDs for tracing a
// request through the bridge and engine, and level control via environment.
package logging

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LevelEnvVar controls the log level: DEBUG, INFO, WARN, or ERROR.
const LevelEnvVar = "EMPIRE_LOG_LEVEL"

// Logger wraps slog.Logger with correlation ID support.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger writing JSON to stdout at the level given by
// EMPIRE_LOG_LEVEL (default INFO).
func NewLogger() *Logger {
	return NewLoggerTo(os.Stdout)
}

// NewLoggerTo creates a Logger writing JSON to the given writer. Tests use
// this to capture output.
func NewLoggerTo(w io.Writer) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: levelFromEnv(),
	})
	return &Logger{slog.New(handler)}
}

// Info logs an informational message, attaching the context's correlation ID
// when present.
func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelInfo, msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelWarn, msg, args...)
}

// Error logs an error message. A non-nil err is appended as an "error"
// attribute.
func (l *Logger) Error(ctx context.Context, msg string, err error, args ...any) {
	if err != nil {
		args = append(args, "error", err.Error())
	}
	l.log(ctx, slog.LevelError, msg, args...)
}

// Debug logs a debug message.
func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelDebug, msg, args...)
}

func (l *Logger) log(ctx context.Context, level slog.Level, msg string, args ...any) {
	if id := GetCorrelationID(ctx); id != "" {
		args = append(args, "correlation_id", id)
	}
	l.Log(ctx, level, msg, args...)
}

type correlationIDKey struct{}

// WithCorrelationID attaches a correlation ID to the context, generating one
// when id is empty.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = GenerateCorrelationID()
	}
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// GetCorrelationID returns the context's correlation ID or "".
func GetCorrelationID(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GenerateCorrelationID creates a new random correlation ID.
func GenerateCorrelationID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}

func levelFromEnv() slog.Level {
	switch strings.ToUpper(os.Getenv(LevelEnvVar)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WrapError adds context to an error, preserving the original for errors.Is.
func WrapError(err error, context string, args ...any) error {
	if err == nil {
		return nil
	}
	if len(args) > 0 {
		context = fmt.Sprintf(context, args...)
	}
	return fmt.Errorf("%s: %w", context, err)
}
