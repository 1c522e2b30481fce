package log

//go:generate go tool stringer --linecomment --type Level,Format --output config_string.go

import (
	"io"
	"iter"
	"log/slog"
	"slices"
	"strings"
	"time"
)

// Level is the severity of a log message.
type Level slog.Level

const (
	LevelTrace Level = Level(slog.LevelDebug - 4) // trace
	LevelDebug Level = Level(slog.LevelDebug)     // debug
	LevelInfo  Level = Level(slog.LevelInfo)      // info
	LevelWarn  Level = Level(slog.LevelWarn)      // warn
	LevelError Level = Level(slog.LevelError)     // error
)

var levels = []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError}

// label is the upper-case name printed in log records.
func (l Level) label() string { return strings.ToUpper(l.String()) }

// Levels returns the names of the defined levels, least severe first.
func Levels() iter.Seq[string] { return names(levels) }

// ParseLevel returns the level named by s, ignoring case. Besides the
// defined names it accepts anything [slog.Level.UnmarshalText] does, such as
// "warn+2". Unrecognized input yields [DefaultLevel].
func ParseLevel(s string) Level {
	s = strings.TrimSpace(s)

	if i := slices.IndexFunc(levels, func(l Level) bool {
		return strings.EqualFold(l.String(), s)
	}); i >= 0 {
		return levels[i]
	}

	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return DefaultLevel
	}

	return Level(l)
}

// Format selects the encoding of log records.
type Format int

const (
	FormatText Format = iota // text
	FormatJSON               // json
)

var formats = []Format{FormatJSON, FormatText}

// Formats returns the names of the defined formats.
func Formats() iter.Seq[string] { return names(formats) }

// ParseFormat returns the format named by s, ignoring case.
// Unrecognized input yields [DefaultFormat].
func ParseFormat(s string) Format {
	s = strings.TrimSpace(s)

	for _, f := range formats {
		if strings.EqualFold(f.String(), s) {
			return f
		}
	}

	return DefaultFormat
}

func names[T interface{ String() string }](list []T) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, v := range list {
			if !yield(v.String()) {
				return
			}
		}
	}
}

// Defaults applied by [Make] and [WithDefaults].
const (
	DefaultLevel      = LevelInfo
	DefaultFormat     = FormatJSON
	DefaultTimeLayout = time.RFC3339
	DefaultCaller     = false
	DefaultPretty     = true
)

// FormatTime renders a record timestamp.
type FormatTime func(time.Time) string

// settings is the immutable configuration behind a [Logger].
// A nil stamp omits timestamps.
type settings struct {
	output io.Writer
	stamp  FormatTime
	level  Level
	format Format
	caller bool
	pretty bool
}

// Option modifies the settings of a [Logger] under construction.
type Option func(*settings)

func defaults(w io.Writer) settings {
	if w == nil {
		w = io.Discard
	}

	return settings{
		output: w,
		stamp:  stampFunc(DefaultTimeLayout),
		level:  DefaultLevel,
		format: DefaultFormat,
		caller: DefaultCaller,
		pretty: DefaultPretty,
	}
}

// with returns a copy of s with opts applied in order.
func (s settings) with(opts ...Option) settings {
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	return s
}

// WithDefaults resets every setting to its default and directs output to w.
func WithDefaults(w io.Writer) Option {
	return func(s *settings) { *s = defaults(w) }
}

// WithOutput directs output to w. A nil w discards output.
func WithOutput(w io.Writer) Option {
	if w == nil {
		w = io.Discard
	}

	return func(s *settings) { s.output = w }
}

// WithLevel discards messages less severe than level.
func WithLevel(level Level) Option {
	return func(s *settings) { s.level = level }
}

// WithFormat selects the record encoding.
func WithFormat(format Format) Option {
	return func(s *settings) { s.format = format }
}

// WithCaller includes the source position of each call.
func WithCaller(enable bool) Option {
	return func(s *settings) { s.caller = enable }
}

// WithPretty enables colorized output. Text records print unquoted values;
// JSON records span multiple indented lines. Colors are only emitted when
// the output is a terminal.
func WithPretty(enable bool) Option {
	return func(s *settings) { s.pretty = enable }
}

// WithTimeLayout sets the timestamp layout.
//
// Names of the [time] package layouts are recognized regardless of case and
// punctuation ("RFC3339", "rfc-3339-nano", "Kitchen"), as are the shorthands
// "ms", "us" and "ns" for the stamp layouts. Any other string is used
// verbatim as a [time.Time.Format] layout. A blank layout or "none" omits
// timestamps.
func WithTimeLayout(layout string) Option {
	stamp := stampFunc(layout)

	return func(s *settings) { s.stamp = stamp }
}

var namedLayouts = func() map[string]string {
	aliases := map[string][]string{
		time.RFC3339:     {"rfc3339"},
		time.RFC3339Nano: {"rfc3339nano"},
		time.ANSIC:       {"ansic"},
		time.UnixDate:    {"unixdate"},
		time.RubyDate:    {"rubydate"},
		time.RFC822:      {"rfc822"},
		time.RFC822Z:     {"rfc822z"},
		time.RFC850:      {"rfc850"},
		time.RFC1123:     {"rfc1123"},
		time.RFC1123Z:    {"rfc1123z"},
		time.Kitchen:     {"kitchen"},
		time.DateTime:    {"datetime"},
		time.Stamp:       {"stamp"},
		time.StampMilli:  {"stampmilli", "milli", "millis", "ms"},
		time.StampMicro:  {"stampmicro", "micro", "micros", "us"},
		time.StampNano:   {"stampnano", "nano", "nanos", "ns"},
		"":               {"none"},
	}

	m := make(map[string]string)

	for layout, keys := range aliases {
		for _, k := range keys {
			m[k] = layout
		}
	}

	return m
}()

// layoutKey reduces a layout to lower-case letters and digits.
func layoutKey(layout string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + 'a' - 'A'
		}

		return -1
	}, layout)
}

func stampFunc(layout string) FormatTime {
	key := layoutKey(layout)
	if key == "" {
		return nil
	}

	if named, ok := namedLayouts[key]; ok {
		if named == "" {
			return nil
		}

		layout = named
	}

	return func(t time.Time) string { return t.Format(layout) }
}
