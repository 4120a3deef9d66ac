package container

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"
)

var packageLogger atomic.Pointer[slog.Logger]

// SetLogger sets a custom structured logger for all containers
func SetLogger(logger *slog.Logger) {
	if logger != nil {
		packageLogger.Store(logger.With("component", "container"))
	} else {
		packageLogger.Store(slog.Default().With("component", "container"))
	}
}

func logger() *slog.Logger {
	if l := packageLogger.Load(); l != nil {
		return l
	}
	return slog.Default().With("component", "container")
}

// logError logs a failed operation with structured logging
func logError(ctx context.Context, operation, path string, err error) {
	errorType := "unknown"
	var cerr *ContainerError
	if errors.As(err, &cerr) && cerr.Err != nil {
		errorType = cerr.Err.Error()
	}

	logger().ErrorContext(ctx, "container operation failed",
		slog.String("operation", operation),
		slog.String("path", sanitizePath(path)),
		slog.String("error", sanitizeError(err)),
		slog.String("error_type", errorType),
	)
}

// logDebug logs a routine event at debug level
func logDebug(ctx context.Context, msg, operation, path string, attrs ...slog.Attr) {
	l := logger()
	if !l.Enabled(ctx, slog.LevelDebug) {
		return
	}
	all := append([]slog.Attr{
		slog.String("operation", operation),
		slog.String("path", sanitizePath(path)),
	}, attrs...)
	l.LogAttrs(ctx, slog.LevelDebug, msg, all...)
}

// sanitizePath removes potentially sensitive information from paths
func sanitizePath(path string) string {
	if len(path) > 100 {
		return truncateString(path, 100)
	}
	lowerPath := strings.ToLower(path)
	sensitivePatterns := []string{
		"password", "passwd", "pwd",
		"token", "bearer",
		"apikey", "api_key", "api-key",
		"secret", "credential",
		"authorization",
		"session", "cookie",
	}
	for _, pattern := range sensitivePatterns {
		if strings.Contains(lowerPath, pattern) {
			return "[REDACTED_PATH]"
		}
	}
	return path
}

// sanitizeError truncates long error messages
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	errMsg := err.Error()
	if len(errMsg) > 200 {
		return truncateString(errMsg, 200)
	}
	return errMsg
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
