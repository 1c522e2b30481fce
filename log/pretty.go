package log

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles of a pretty handler. Styles are bound to the
// handler's output, so colors degrade to plain text when it is not a
// terminal.
type palette struct {
	key, str, num, yes, no, span, when lipgloss.Style
	level                              map[Level]lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return palette{
		key:  fg("8"),
		str:  fg("6"),
		num:  fg("3"),
		yes:  fg("2"),
		no:   fg("1"),
		span: fg("5"),
		when: fg("4"),
		level: map[Level]lipgloss.Style{
			LevelTrace: fg("4"),
			LevelDebug: fg("4"),
			LevelInfo:  fg("2"),
			LevelWarn:  fg("3"),
			LevelError: fg("1").Bold(true),
		},
	}
}

func (p palette) levelStyle(l slog.Level) lipgloss.Style {
	best, style := LevelTrace, p.level[LevelTrace]

	for lv, s := range p.level {
		if lv <= Level(l) && lv >= best {
			best, style = lv, s
		}
	}

	return style
}

// value renders v unquoted with the style for its kind.
func (p palette) value(v slog.Value) (string, lipgloss.Style) {
	switch v.Kind() {
	case slog.KindString:
		return v.String(), p.str
	case slog.KindInt64:
		return strconv.FormatInt(v.Int64(), 10), p.num
	case slog.KindUint64:
		return strconv.FormatUint(v.Uint64(), 10), p.num
	case slog.KindFloat64:
		return strconv.FormatFloat(v.Float64(), 'g', -1, 64), p.num
	case slog.KindBool:
		if v.Bool() {
			return "true", p.yes
		}

		return "false", p.no
	case slog.KindDuration:
		return v.Duration().String(), p.span
	case slog.KindTime:
		return v.Time().Format(time.RFC3339Nano), p.when
	}

	switch a := v.Any().(type) {
	case nil:
		return "null", p.key
	case slog.Level:
		return Level(a).label(), p.levelStyle(a)
	}

	return v.String(), p.str
}

// field is a rendered key and value.
type field struct {
	key   string
	val   string
	style lipgloss.Style
}

// encoder lays out the fields of one record.
type encoder interface {
	encode(buf *bytes.Buffer, fields []field, key lipgloss.Style)
}

// lineEncoder writes key=value pairs on a single line.
type lineEncoder struct{}

func (lineEncoder) encode(buf *bytes.Buffer, fields []field, key lipgloss.Style) {
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(' ')
		}

		buf.WriteString(key.Render(f.key))
		buf.WriteByte('=')
		buf.WriteString(f.style.Render(f.val))
	}
}

// blockEncoder writes a brace-delimited block with one field per line.
type blockEncoder struct{}

func (blockEncoder) encode(buf *bytes.Buffer, fields []field, key lipgloss.Style) {
	buf.WriteString("{\n")

	for i, f := range fields {
		if i > 0 {
			buf.WriteString(",\n")
		}

		buf.WriteString("  ")
		buf.WriteString(key.Render(f.key))
		buf.WriteString(": ")
		buf.WriteString(f.style.Render(f.val))
	}

	buf.WriteString("\n}")
}

// prettyHandler is a colorized [slog.Handler]. Group names qualify keys
// with a dotted prefix.
type prettyHandler struct {
	enc     encoder
	palette palette
	stamp   FormatTime
	mu      *sync.Mutex
	w       io.Writer
	fields  []field
	prefix  string
	level   Level
	caller  bool
}

func newPrettyHandler(s settings, enc encoder) *prettyHandler {
	return &prettyHandler{
		enc:     enc,
		palette: newPalette(s.output),
		stamp:   s.stamp,
		mu:      &sync.Mutex{},
		w:       s.output,
		level:   s.level,
		caller:  s.caller,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.Level(h.level)
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make([]field, 0, 4+len(h.fields)+r.NumAttrs())

	if h.stamp != nil && !r.Time.IsZero() {
		fields = append(fields, field{slog.TimeKey, h.stamp(r.Time), h.palette.when})
	}

	fields = append(fields,
		field{slog.LevelKey, Level(r.Level).label(), h.palette.levelStyle(r.Level)})

	if h.caller {
		if src := r.Source(); src != nil {
			pos := src.File + ":" + strconv.Itoa(src.Line)
			fields = append(fields, field{slog.SourceKey, pos, h.palette.str})
		}
	}

	fields = append(fields, field{slog.MessageKey, r.Message, h.palette.str})
	fields = append(fields, h.fields...)

	r.Attrs(func(a slog.Attr) bool {
		fields = h.appendAttr(fields, h.prefix, a)

		return true
	})

	var buf bytes.Buffer

	h.enc.encode(&buf, fields, h.palette.key)
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.fields = h.fields[:len(h.fields):len(h.fields)]

	for _, a := range attrs {
		c.fields = h.appendAttr(c.fields, h.prefix, a)
	}

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.prefix = h.prefix + name + "."

	return &c
}

// appendAttr resolves a and appends its fields, flattening groups.
func (h *prettyHandler) appendAttr(fields []field, prefix string, a slog.Attr) []field {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return fields
	}

	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}

		for _, ga := range a.Value.Group() {
			fields = h.appendAttr(fields, prefix, ga)
		}

		return fields
	}

	val, style := h.palette.value(a.Value)

	return append(fields, field{prefix + a.Key, val, style})
}
