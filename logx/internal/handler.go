// Package internal provides internal implementation details for logx.
package internal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Options configures the handler behavior.
type Options struct {
	Format           string     // Output format: logfmt or json
	Level            slog.Level // Minimum log level
	Color            bool       // Colorize the level field (logfmt only)
	DisableTimestamp bool       // Omit the time field
}

// Handler is a slog.Handler that writes logfmt with sorted fields, or
// delegates to slog's JSON handler when Format is "json".
type Handler struct {
	opts   Options
	mu     *sync.Mutex
	writer io.Writer
	attrs  []slog.Attr
	group  string
	json   slog.Handler
}

// NewHandler creates a new Handler writing to writer.
func NewHandler(opts Options, writer io.Writer) *Handler {
	h := &Handler{
		opts:   opts,
		mu:     &sync.Mutex{},
		writer: writer,
	}
	if opts.Format == "json" {
		h.json = slog.NewJSONHandler(writer, &slog.HandlerOptions{
			Level: opts.Level,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if opts.DisableTimestamp && len(groups) == 0 && a.Key == slog.TimeKey {
					return slog.Attr{}
				}
				return a
			},
		})
	}
	return h
}

// LogRecord writes a log record built from pre-converted attributes.
func (h *Handler) LogRecord(level slog.Level, msg string, attrs []slog.Attr) {
	if level < h.opts.Level {
		return
	}
	if h.json != nil {
		r := slog.NewRecord(time.Now(), level, msg, 0)
		r.AddAttrs(attrs...)
		_ = h.json.Handle(context.Background(), r)
		return
	}
	h.writeLogfmt(level, msg, attrs)
}

func (h *Handler) writeLogfmt(level slog.Level, msg string, attrs []slog.Attr) {
	var buf strings.Builder

	if !h.opts.DisableTimestamp {
		buf.WriteString("time=")
		buf.WriteString(time.Now().Format(time.RFC3339))
		buf.WriteString(" ")
	}

	levelStr := LevelString(level)
	buf.WriteString("level=")
	if h.opts.Color {
		buf.WriteString(ColorizeLevel(levelStr))
	} else {
		buf.WriteString(levelStr)
	}

	buf.WriteString(" msg=")
	buf.WriteString(strconv.Quote(msg))

	allAttrs := append([]slog.Attr{}, h.attrs...)
	allAttrs = append(allAttrs, attrs...)

	for _, attr := range SortAttrs(allAttrs) {
		key := attr.Key
		if h.group != "" {
			key = h.group + "." + key
		}
		buf.WriteString(" ")
		buf.WriteString(key)
		buf.WriteString("=")
		buf.WriteString(FormatValue(attr.Value))
	}
	buf.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, _ = io.WriteString(h.writer, buf.String())
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level
}

// Handle implements slog.Handler.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	attrs := make([]slog.Attr, 0, r.NumAttrs())
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, a)
		return true
	})
	h.LogRecord(r.Level, r.Message, attrs)
	return nil
}

// WithAttrs returns a new Handler with the given attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	if h.json != nil {
		clone.json = h.json.WithAttrs(attrs)
	}
	return &clone
}

// WithGroup returns a new Handler with the given group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.group = name
	if h.json != nil {
		clone.json = h.json.WithGroup(name)
	}
	return &clone
}

// KVToAttrs converts key-value pairs to slog.Attr slice. Pairs built with
// core/log helpers arrive as two-element []any and are flattened first.
func KVToAttrs(kv []any) []slog.Attr {
	flat := make([]any, 0, len(kv))
	for _, item := range kv {
		if pair, ok := item.([]any); ok && len(pair) == 2 {
			flat = append(flat, pair[0], pair[1])
			continue
		}
		flat = append(flat, item)
	}

	attrs := make([]slog.Attr, 0, len(flat)/2)
	for i := 0; i < len(flat)-1; i += 2 {
		attrs = append(attrs, slog.Any(fmt.Sprint(flat[i]), flat[i+1]))
	}
	return attrs
}

// SortAttrs returns a copy of attrs sorted by key.
func SortAttrs(attrs []slog.Attr) []slog.Attr {
	sorted := make([]slog.Attr, len(attrs))
	copy(sorted, attrs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Key < sorted[j].Key
	})
	return sorted
}

// FormatValue formats a slog.Value for logfmt output.
func FormatValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		return strconv.Quote(v.String())
	case slog.KindInt64:
		return strconv.FormatInt(v.Int64(), 10)
	case slog.KindUint64:
		return strconv.FormatUint(v.Uint64(), 10)
	case slog.KindFloat64:
		return strconv.FormatFloat(v.Float64(), 'g', -1, 64)
	case slog.KindBool:
		return strconv.FormatBool(v.Bool())
	case slog.KindDuration:
		return strconv.FormatInt(v.Duration().Milliseconds(), 10)
	case slog.KindTime:
		return strconv.Quote(v.Time().Format(time.RFC3339))
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			return strconv.Quote(err.Error())
		}
		if ss, ok := v.Any().([]string); ok {
			return strconv.Quote(strings.Join(ss, " "))
		}
		return strconv.Quote(fmt.Sprint(v.Any()))
	default:
		return strconv.Quote(v.String())
	}
}

// LevelString returns the string representation of a log level.
func LevelString(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "ERROR"
	default:
		return fmt.Sprintf("LEVEL(%d)", level)
	}
}

// ColorizeLevel adds ANSI color codes to the level value only.
func ColorizeLevel(level string) string {
	const (
		reset   = "\033[0m"
		red     = "\033[31m"
		yellow  = "\033[33m"
		cyan    = "\033[36m"
		magenta = "\033[35m"
	)

	switch level {
	case "DEBUG":
		return magenta + level + reset
	case "INFO":
		return cyan + level + reset
	case "WARN":
		return yellow + level + reset
	case "ERROR":
		return red + level + reset
	default:
		return level
	}
}
