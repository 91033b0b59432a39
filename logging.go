package jsonmutator

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/cybergodev/jsonmutator/internal"
)

// logWarn records a lenient fallback that discarded data or output
func (d *Document) logWarn(operation, path string, err error) {
	logAt(d.config, slog.LevelWarn, operation, path, "operation degraded to default", err)
}

// logDebug records an expected fallback, such as decoding a malformed column value
func logDebug(cfg *Config, operation, path, message string, err error) {
	logAt(cfg, slog.LevelDebug, operation, path, message, err)
}

func logAt(cfg *Config, level slog.Level, operation, path, message string, err error) {
	if cfg == nil || cfg.Logger == nil {
		return
	}

	errorType := "unknown"
	var mutErr *MutatorError
	if errors.As(err, &mutErr) && mutErr.Err != nil {
		errorType = mutErr.Err.Error()
	}

	attrs := []slog.Attr{
		slog.String("operation", operation),
		slog.String("error", sanitizeError(err)),
		slog.String("error_type", errorType),
	}
	if path != "" {
		attrs = append(attrs, slog.String("path", sanitizePath(path)))
	}
	cfg.Logger.LogAttrs(context.Background(), level, message, attrs...)
}

var sensitivePatterns = []string{
	"password", "passwd", "pwd",
	"token", "bearer",
	"apikey", "api_key", "api-key",
	"secret", "credential",
	"authorization", "session", "cookie",
}

// sanitizePath hides paths that look like they address credentials
func sanitizePath(path string) string {
	lowerPath := strings.ToLower(path)
	for _, pattern := range sensitivePatterns {
		if strings.Contains(lowerPath, pattern) {
			return "[REDACTED_PATH]"
		}
	}
	return truncateString(path, internal.MaxLoggedPath)
}

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return truncateString(err.Error(), internal.MaxLoggedErrLen)
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
