// Package logger implements a logging adapter using log/slog.
//
// The pretty handler renders one line per record: a level marker, the message
// and the record's attributes as key=value pairs qualified by their group path.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/stylecache/internal/ui/output"
	"go.trai.ch/stylecache/internal/ui/style"
)

// PrettyHandler is a slog.Handler that writes colored, human-readable lines.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	// fields holds attributes bound by WithAttrs, already rendered with the
	// group path that was open at the time.
	fields []string
	// prefix is the open group path, "" or dot-terminated.
	prefix string
}

// NewPrettyHandler creates a PrettyHandler writing to w, or to stderr when w
// is nil.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle renders the record as a single line.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	marker, color := levelStyle(r.Level)

	var b strings.Builder
	if marker != "" {
		b.WriteString(marker)
		b.WriteByte(' ')
	}
	b.WriteString(r.Message)

	for _, field := range h.fields {
		b.WriteByte(' ')
		b.WriteString(field)
	}

	fields := make([]string, 0, r.NumAttrs())
	r.Attrs(func(attr slog.Attr) bool {
		fields = appendAttr(fields, h.prefix, attr)
		return true
	})
	for _, field := range fields {
		b.WriteByte(' ')
		b.WriteString(field)
	}

	line := h.out.String(b.String()).Foreground(termenv.RGBColor(string(color)))
	_, err := h.out.WriteString(line.String() + "\n")

	return err
}

// WithAttrs binds attrs under the currently open group path.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	fields := make([]string, len(h.fields), len(h.fields)+len(attrs))
	copy(fields, h.fields)
	for _, attr := range attrs {
		fields = appendAttr(fields, h.prefix, attr)
	}

	clone := *h
	clone.fields = fields

	return &clone
}

// WithGroup opens a group nested inside any group already open.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	clone.prefix = h.prefix + name + "."

	return &clone
}

func levelStyle(level slog.Level) (string, lipgloss.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, style.Red
	case level >= slog.LevelWarn:
		return style.Warning, style.Yellow
	case level < slog.LevelInfo:
		return style.Dot, style.Mist
	default:
		return "", style.Slate
	}
}

// appendAttr renders attr as key=value under prefix. Group values are
// flattened, and a group with an empty key is inlined.
func appendAttr(fields []string, prefix string, attr slog.Attr) []string {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return fields
	}

	if attr.Value.Kind() == slog.KindGroup {
		members := attr.Value.Group()
		if len(members) == 0 {
			return fields
		}
		if attr.Key != "" {
			prefix += attr.Key + "."
		}
		for _, member := range members {
			fields = appendAttr(fields, prefix, member)
		}
		return fields
	}

	return append(fields, prefix+attr.Key+"="+attr.Value.String())
}
