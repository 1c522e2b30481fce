package log

import (
	"log/slog"
	"time"
)

type handlerKey struct {
	format Format
	pretty bool
}

// handlers constructs the [slog.Handler] for each format and style.
var handlers = map[handlerKey]func(settings) slog.Handler{
	{FormatJSON, false}: func(s settings) slog.Handler {
		return slog.NewJSONHandler(s.output, s.handlerOptions())
	},
	{FormatText, false}: func(s settings) slog.Handler {
		return slog.NewTextHandler(s.output, s.handlerOptions())
	},
	{FormatJSON, true}: func(s settings) slog.Handler {
		return newPrettyHandler(s, blockEncoder{})
	},
	{FormatText, true}: func(s settings) slog.Handler {
		return newPrettyHandler(s, lineEncoder{})
	},
}

// handler returns the handler for s, discarding records if the format is
// unknown.
func (s settings) handler() slog.Handler {
	if build, ok := handlers[handlerKey{s.format, s.pretty}]; ok {
		return build(s)
	}

	return slog.DiscardHandler
}

func (s settings) handlerOptions() *slog.HandlerOptions {
	return &slog.HandlerOptions{
		AddSource:   s.caller,
		Level:       slog.Level(s.level),
		ReplaceAttr: s.replaceAttr,
	}
}

// replaceAttr applies the timestamp layout and prints levels by name, so
// that trace records read "TRACE" rather than "DEBUG-4".
func (s settings) replaceAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return a
	}

	switch a.Key {
	case slog.TimeKey:
		if s.stamp == nil {
			return slog.Attr{}
		}

		if t, ok := a.Value.Any().(time.Time); ok {
			a.Value = slog.StringValue(s.stamp(t))
		}

	case slog.LevelKey:
		if l, ok := a.Value.Any().(slog.Level); ok {
			a.Value = slog.StringValue(Level(l).label())
		}
	}

	return a
}
