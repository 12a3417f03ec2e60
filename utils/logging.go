package utils

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// NewLogger builds the logger of a command, writing to w. "json" produces structured records
// that GCP logging parses, anything else produces one colored line per record.
func NewLogger(format string, w io.Writer) *slog.Logger {
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{ReplaceAttr: gcpAttributeReplacer}))
	}
	return slog.New(&lineHandler{level: slog.LevelDebug, color: true, mu: &sync.Mutex{}, w: w})
}

// gcpAttributeReplacer renames the message and level keys to the ones GCP logging reads.
func gcpAttributeReplacer(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return a
	}
	switch a.Key {
	case slog.MessageKey:
		a.Key = "message"
	case slog.LevelKey:
		level, _ := a.Value.Any().(slog.Level)
		a.Key = "severity"
		a.Value = slog.StringValue(gcpSeverity(level))
	}
	return a
}

func gcpSeverity(level slog.Level) string {
	switch {
	case level < slog.LevelInfo:
		return "DEBUG"
	case level < slog.LevelWarn:
		return "INFO"
	case level < slog.LevelError:
		return "WARNING"
	default:
		return "ERROR"
	}
}

var levelColors = map[slog.Level]int{
	slog.LevelDebug: 35,
	slog.LevelInfo:  34,
	slog.LevelWarn:  33,
	slog.LevelError: 31,
}

// lineHandler writes "15:04:05.000 INFO message key=value" lines. Attributes of groups are
// prefixed with the group names, e.g. "kpi.name=cpa".
type lineHandler struct {
	level  slog.Leveler
	color  bool
	prefix string
	// attributes added with WithAttrs, already rendered
	attrs []byte

	mu *sync.Mutex
	w  io.Writer
}

func (h *lineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *lineHandler) Handle(_ context.Context, r slog.Record) error {
	buf := make([]byte, 0, 256)
	if !r.Time.IsZero() {
		buf = r.Time.AppendFormat(buf, "15:04:05.000")
		buf = append(buf, ' ')
	}
	buf = append(buf, h.levelLabel(r.Level)...)
	buf = append(buf, ' ')
	buf = append(buf, r.Message...)
	buf = append(buf, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		buf = appendAttr(buf, h.prefix, a)
		return true
	})
	buf = append(buf, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf)
	return err
}

func (h *lineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = slices.Clone(h.attrs)
	for _, a := range attrs {
		clone.attrs = appendAttr(clone.attrs, h.prefix, a)
	}
	return &clone
}

func (h *lineHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

func (h *lineHandler) levelLabel(level slog.Level) string {
	if !h.color {
		return level.String()
	}
	code, ok := levelColors[level]
	if !ok {
		code = levelColors[slog.LevelError]
	}
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", code, level.String())
}

func appendAttr(buf []byte, prefix string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return buf
	}
	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, member := range a.Value.Group() {
			buf = appendAttr(buf, prefix, member)
		}
		return buf
	}

	buf = append(buf, ' ')
	buf = append(buf, prefix...)
	buf = append(buf, a.Key...)
	buf = append(buf, '=')
	value := a.Value.String()
	if value == "" || strings.ContainsAny(value, " =\"\t\n") {
		return strconv.AppendQuote(buf, value)
	}
	return append(buf, value...)
}
