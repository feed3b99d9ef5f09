package logger

import (
	"log/slog"
	"time"
)

// Setup installs the colored handler as the process-wide default logger.
func Setup(name string, level slog.Level) {
	slog.SetDefault(slog.New(NewHandler(name, level)))
}

// LogQuery logs database operations
func LogQuery(query string, duration time.Duration, err error) {
	attrs := []any{
		slog.String("type", "db"),
		slog.Duration("took", duration),
		slog.String("query", query),
	}

	if err != nil {
		slog.Error("Query failed", append(attrs, slog.Any("error", err))...)
		return
	}
	slog.Debug("Query executed", attrs...)
}

// LogSystem logs system events
func LogSystem(msg string, attrs ...any) {
	baseAttrs := []any{slog.String("type", "sys")}
	slog.Info(msg, append(baseAttrs, attrs...)...)
}

// LogEconomy logs balance, pack and market events
func LogEconomy(msg string, attrs ...any) {
	baseAttrs := []any{slog.String("type", "economy")}
	slog.Info(msg, append(baseAttrs, attrs...)...)
}

// LogError logs error events
func LogError(msg string, err error, attrs ...any) {
	baseAttrs := []any{
		slog.String("type", "error"),
		slog.Any("error", err),
	}
	slog.Error(msg, append(baseAttrs, attrs...)...)
}
