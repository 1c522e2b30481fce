package cli

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/aconf/log"
)

// logFormat configures the default logger's format as a side effect of
// parsing, so that messages emitted while parsing use it.
type logFormat string

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(*f))))

	return nil
}

// logLevel configures the default logger's level as a side effect of
// parsing.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)
	log.Config(log.WithLevel(log.ParseLevel(string(*l))))

	return nil
}

type logConfig struct {
	Level      logLevel  `default:"info"    enum:"${logLevelEnum}"  help:"Set log level."`
	Format     logFormat `default:"json"    enum:"${logFormatEnum}" help:"Set log format."`
	TimeLayout string    `default:"RFC3339"                         help:"Set timestamp format."`
	Caller     bool      `default:"false"                           help:"Include caller information."       negatable:""`
	Pretty     bool      `default:"true"                            help:"Enable colorized pretty printing." negatable:""`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{
		"logLevelEnum":  strings.Join(slices.Collect(log.Levels()), ","),
		"logFormatEnum": strings.Join(slices.Collect(log.Formats()), ","),
	}
}

func (*logConfig) group() kong.Group {
	return kong.Group{Key: "log", Title: "Logging options"}
}

// start applies the parsed configuration to the default logger.
func (f *logConfig) start(ctx context.Context) {
	log.Config(
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)
}

// scan applies logger flags found in args before kong parses them, so the
// logger is configured regardless of flag position. Boolean flags never pass
// through encoding.TextUnmarshaler, so this is the only early hook for them.
func (f *logConfig) scan(args []string) {
	bools := map[string]func(bool){
		"pretty": func(v bool) { f.Pretty = v; log.Config(log.WithPretty(v)) },
		"caller": func(v bool) { f.Caller = v; log.Config(log.WithCaller(v)) },
	}

	for i := 0; i < len(args); i++ {
		arg, negated := strings.CutPrefix(args[i], "--no-log-")
		if !negated {
			var ok bool
			if arg, ok = strings.CutPrefix(args[i], "--log-"); !ok {
				continue
			}
		}

		name, value, assigned := strings.Cut(arg, "=")

		if set, ok := bools[name]; ok {
			v := true
			if assigned {
				b, err := strconv.ParseBool(value)
				if err != nil {
					continue
				}

				v = b
			}

			set(v != negated)

			continue
		}

		if negated {
			continue
		}

		// Valued flags consume the next argument unless assigned with '='.
		if !assigned && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			i++
			value = args[i]
		}

		switch name {
		case "level":
			_ = f.Level.UnmarshalText([]byte(value))
		case "format":
			_ = f.Format.UnmarshalText([]byte(value))
		}
	}
}
