package log_test

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/aconf/log"
)

func Example_basic() {
	logger := log.Make(os.Stderr)
	logger.Info("translated", slog.String("input", "config.yaml"))
}

func Example_configuration() {
	logger := log.Make(os.Stderr,
		log.WithLevel(log.LevelTrace),
		log.WithTimeLayout("RFC3339Nano"),
		log.WithCaller(true))

	logger.Trace("constant", slog.String("name", "NUM"))
}

func Example_levels() {
	logger := log.Make(os.Stderr, log.WithLevel(log.LevelWarn))

	logger.Debug("parsed document")
	logger.Info("translated")
	logger.Warn("search path entry missing", slog.String("dir", "/etc/aconf"))
	logger.Error("translation failed", slog.String("error", "invalid name"))
}

func Example_textFormat() {
	logger := log.Make(os.Stderr, log.WithFormat(log.FormatText))
	logger.Info("text format message", slog.String("input", "-"))
}

func Example_withAttributes() {
	logger := log.Make(os.Stderr)
	logger = logger.With(slog.String("input", "config.yaml"))

	logger.Info("translating")
	logger.Debug("constant table", slog.Int("constants", 3))
}

func Example_withContext() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := log.Make(os.Stderr)

	logger.InfoContext(ctx, "translating with context")
	logger.DebugContext(ctx, "document details", slog.Int("entries", 4))
}

func Example_default() {
	log.Config(log.WithLevel(log.LevelDebug), log.WithFormat(log.FormatText))

	log.Debug("default logger writes to stderr")
}
