package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorPurple = "\033[35m"
	colorCyan   = "\033[36m"
	colorWhite  = "\033[37m"
)

type LogType string

const (
	TypeHTTP    LogType = "HTTP"
	TypeDB      LogType = "DB"
	TypeSystem  LogType = "SYS"
	TypeEconomy LogType = "ECO"
	TypeError   LogType = "ERR"
)

// CustomHandler is a colored single-line slog handler.
type CustomHandler struct {
	name   string
	opts   *slog.HandlerOptions
	out    io.Writer
	mu     *sync.Mutex
	attrs  []slog.Attr
	groups []string
}

func NewHandler(name string, level slog.Leveler) *CustomHandler {
	return NewHandlerWithWriter(os.Stdout, name, level)
}

func NewHandlerWithWriter(out io.Writer, name string, level slog.Leveler) *CustomHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &CustomHandler{
		name:   name,
		opts:   &slog.HandlerOptions{Level: level},
		out:    out,
		mu:     &sync.Mutex{},
		attrs:  make([]slog.Attr, 0),
		groups: make([]string, 0),
	}
}

func (h *CustomHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *CustomHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &CustomHandler{
		name:   h.name,
		opts:   h.opts,
		out:    h.out,
		mu:     h.mu,
		attrs:  merged,
		groups: h.groups,
	}
}

func (h *CustomHandler) WithGroup(name string) slog.Handler {
	return &CustomHandler{
		name:   h.name,
		opts:   h.opts,
		out:    h.out,
		mu:     h.mu,
		attrs:  h.attrs,
		groups: append(append([]string{}, h.groups...), name),
	}
}

func (h *CustomHandler) Handle(_ context.Context, r slog.Record) error {
	timestamp := r.Time.Format("15:04:05")
	if r.Time.IsZero() {
		timestamp = time.Now().Format("15:04:05")
	}

	var levelColor, levelText string
	switch {
	case r.Level >= slog.LevelError:
		levelColor = colorRed
		levelText = "ERROR"
	case r.Level >= slog.LevelWarn:
		levelColor = colorYellow
		levelText = "WARN"
	case r.Level >= slog.LevelInfo:
		levelColor = colorGreen
		levelText = "INFO"
	default:
		levelColor = colorPurple
		levelText = "DEBUG"
	}

	all := make([]slog.Attr, 0, len(h.attrs)+r.NumAttrs())
	all = append(all, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		all = append(all, a)
		return true
	})

	message := r.Message
	if r.Level >= slog.LevelError {
		if location := errorLocation(all); location != "" {
			message = fmt.Sprintf("%s (%s)", message, location)
		}
		if details := attrValue(all, "error"); details != "" {
			message = fmt.Sprintf("%s: %s", message, details)
		}
	}

	if status := attrValue(all, "status"); status != "" {
		message = fmt.Sprintf("%s [Status: %s]", message, status)
	}

	var sb strings.Builder
	prefix := strings.Join(h.groups, ".")
	for _, attr := range all {
		if isInternalAttr(attr.Key) {
			continue
		}
		key := attr.Key
		if prefix != "" {
			key = prefix + "." + key
		}
		sb.WriteString(fmt.Sprintf(" %s=%v", key, attr.Value))
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintf(h.out, "%s[%s] [%s] [%s%s%s] [%s%s%s] %s%s%s\n",
		colorWhite,
		h.name,
		timestamp,
		levelColor,
		levelText,
		colorWhite,
		colorCyan,
		logType(all),
		colorWhite,
		message,
		sb.String(),
		colorReset,
	)
	return err
}

func logType(attrs []slog.Attr) LogType {
	switch attrValue(attrs, "type") {
	case "http":
		return TypeHTTP
	case "db":
		return TypeDB
	case "economy":
		return TypeEconomy
	case "error":
		return TypeError
	default:
		return TypeSystem
	}
}

func attrValue(attrs []slog.Attr, key string) string {
	// last write wins so record attrs override handler attrs
	for i := len(attrs) - 1; i >= 0; i-- {
		if attrs[i].Key == key {
			return attrs[i].Value.String()
		}
	}
	return ""
}

func isInternalAttr(key string) bool {
	switch key {
	case "type", "status", "error", "error_location":
		return true
	}
	return false
}

func errorLocation(attrs []slog.Attr) string {
	if location := attrValue(attrs, "error_location"); location != "" {
		return location
	}
	_, file, line, ok := runtime.Caller(4)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}
