package logger

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/uptrace/bun"
)

// QueryHook logs every bun query. Successful queries go to debug, failures to error.
type QueryHook struct {
	slowThreshold time.Duration
}

var _ bun.QueryHook = (*QueryHook)(nil)

func NewQueryHook(slowThreshold time.Duration) *QueryHook {
	return &QueryHook{slowThreshold: slowThreshold}
}

func (h *QueryHook) BeforeQuery(ctx context.Context, _ *bun.QueryEvent) context.Context {
	return ctx
}

func (h *QueryHook) AfterQuery(_ context.Context, event *bun.QueryEvent) {
	duration := time.Since(event.StartTime)
	attrs := []any{
		slog.String("type", "db"),
		slog.String("operation", event.Operation()),
		slog.String("query", event.Query),
		slog.Duration("took", duration),
	}

	if event.Err != nil && !errors.Is(event.Err, sql.ErrNoRows) {
		slog.Error("Query failed", append(attrs, slog.Any("error", event.Err))...)
		return
	}

	if event.Result != nil {
		if rows, err := event.Result.RowsAffected(); err == nil {
			attrs = append(attrs, slog.Int64("affected_rows", rows))
		}
	}

	if h.slowThreshold > 0 && duration > h.slowThreshold {
		slog.Warn("Slow query", attrs...)
		return
	}
	slog.Debug("Query executed", attrs...)
}
