// Package log is a small structured logger built on [log/slog].
//
// A [Logger] is an immutable value: its settings are fixed by [Make] and
// [Logger.Wrap], and [Logger.With] derives a logger that adds attributes to
// every record. Loggers are safe for concurrent use and the zero value
// discards everything.
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithTimeLayout("kitchen"))
//
//	logger.With(slog.String("input", "config.yaml")).Debug("parsed")
//
// Logging methods accept only [slog.Attr] values. Each has a variant taking
// a context; the others use [DefaultContextProvider].
//
// # Levels
//
// [LevelTrace] sits below [LevelDebug] and prints as "TRACE". Levels are
// parsed by name with [ParseLevel], which also accepts slog offsets such as
// "warn+2".
//
// # Formats
//
// [FormatJSON] and [FormatText] map to the slog JSON and text handlers.
// [WithPretty] replaces them with a colorized handler: text records print
// unquoted values on one line, JSON records print one field per line.
// Colors are emitted only when the output is a terminal.
//
// # Default logger
//
// The package-level functions write through a default logger that targets
// standard error, leaving standard output to command results. [Config]
// replaces it and [Default] returns it.
package log
