package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

var (
	// default logger instance
	defaultLogger *slog.Logger

	// level shared by every handler built here, so Setup can retune it
	levelVar = new(slog.LevelVar)
)

// initializes the logger with a safe default before Setup runs
func init() {
	levelVar.Set(slog.LevelInfo)
	defaultLogger = slog.New(newHandler())
}

// builds the handler for the current environment
func newHandler() slog.Handler {
	opts := &slog.HandlerOptions{
		Level: levelVar,
	}

	if os.Getenv("ENVIRONMENT") == "production" {
		// production: JSON output for structured logging
		return slog.NewJSONHandler(os.Stdout, opts)
	}

	// development: human-readable text output
	return slog.NewTextHandler(os.Stdout, opts)
}

// Setup configures the default logger from a level name (case-insensitive).
// Unrecognized names fall back to INFO with a single warning line.
func Setup(level string) *slog.Logger {
	parsed, ok := ParseLevel(level)
	if !ok {
		levelVar.Set(slog.LevelInfo)
		defaultLogger.Warn("unrecognized log level, falling back to INFO", "level", level)
		return defaultLogger
	}

	levelVar.Set(parsed)

	return defaultLogger
}

// maps a level name to a slog level
func ParseLevel(level string) (slog.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug, true
	case "INFO", "":
		return slog.LevelInfo, true
	case "WARNING", "WARN":
		return slog.LevelWarn, true
	case "ERROR", "CRITICAL":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// returns the default logger instance
func Default() *slog.Logger {
	return defaultLogger
}

// reports whether the default logger emits records at the given level
func Enabled(level slog.Level) bool {
	return defaultLogger.Enabled(context.Background(), level)
}

// creates a logger with additional context fields
func With(args ...any) *slog.Logger {
	return defaultLogger.With(args...)
}

// convenience functions for common log levels

// logs a debug message
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// logs an info message
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// logs a warning message
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

// logs an error message
func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

// logs an error with context
func ErrorErr(err error, msg string, args ...any) {
	args = append(args, "error", err)
	defaultLogger.Error(msg, args...)
}

// logs a fatal error and exits
func Fatal(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
	os.Exit(1)
}

// logs a fatal error with error and exits
func FatalErr(err error, msg string, args ...any) {
	args = append(args, "error", err)
	defaultLogger.Error(msg, args...)
	os.Exit(1)
}
