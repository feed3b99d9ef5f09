package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomHandler(t *testing.T) {
	tests := []struct {
		name     string
		level    slog.Level
		log      func(l *slog.Logger)
		contains []string
		excludes []string
	}{
		{
			name:  "info with type",
			level: slog.LevelInfo,
			log: func(l *slog.Logger) {
				l.Info("Pack opened", slog.String("type", "economy"), slog.String("pack_id", "premium"))
			},
			contains: []string{"[cardmarket]", "INFO", "ECO", "Pack opened", "pack_id=premium"},
			excludes: []string{"type=economy"},
		},
		{
			name:  "debug filtered by level",
			level: slog.LevelInfo,
			log: func(l *slog.Logger) {
				l.Debug("hidden")
			},
			excludes: []string{"hidden"},
		},
		{
			name:  "error carries details",
			level: slog.LevelDebug,
			log: func(l *slog.Logger) {
				l.Error("Trade failed", slog.String("type", "error"), slog.Any("error", errors.New("boom")))
			},
			contains: []string{"ERROR", "ERR", "Trade failed", ": boom"},
		},
		{
			name:  "handler attrs are kept",
			level: slog.LevelDebug,
			log: func(l *slog.Logger) {
				l.With(slog.String("user_id", "42")).Warn("Rate limit exceeded", slog.String("type", "http"))
			},
			contains: []string{"WARN", "HTTP", "user_id=42"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := slog.New(NewHandlerWithWriter(&buf, "cardmarket", tt.level))
			tt.log(l)

			out := buf.String()
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}
