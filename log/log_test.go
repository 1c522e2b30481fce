package log

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestLogger_Make_DefaultConfiguration(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf)

	if logger.Level() != LevelInfo {
		t.Errorf("expected default level Info, got %v", logger.Level())
	}
	if logger.settings.caller {
		t.Error("expected caller disabled by default")
	}
	if logger.Format() != FormatJSON {
		t.Errorf("expected default format JSON, got %v", logger.Format())
	}
}

func TestLogger_ZeroValue_Defaults(t *testing.T) {
	var l Logger

	if l.Level() != DefaultLevel || l.Format() != DefaultFormat {
		t.Errorf("zero Logger reports level %v format %v", l.Level(), l.Format())
	}

	var buf bytes.Buffer

	w := l.Wrap(WithOutput(&buf), WithPretty(false))
	w.Info("wrapped")

	if !strings.Contains(buf.String(), `"msg":"wrapped"`) {
		t.Errorf("Wrap of zero Logger did not log: %q", buf.String())
	}
}

func TestLogger_Wrap_KeepsSettings(t *testing.T) {
	var buf bytes.Buffer

	base := Make(&buf, WithLevel(LevelWarn), WithFormat(FormatText))
	wrapped := base.Wrap(WithPretty(false))

	if wrapped.Level() != LevelWarn || wrapped.Format() != FormatText {
		t.Errorf("wrapped level %v format %v", wrapped.Level(), wrapped.Format())
	}

	wrapped.Info("dropped")
	wrapped.Warn("kept")

	if out := buf.String(); strings.Contains(out, "dropped") || !strings.Contains(out, "msg=kept") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestLogger_Caller_ReportsCallSite(t *testing.T) {
	tests := []struct {
		name string
		call func(Logger)
	}{
		{"method", func(l Logger) { l.Info("here") }},
		{"context method", func(l Logger) { l.InfoContext(t.Context(), "here") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			tt.call(Make(&buf, WithCaller(true), WithPretty(false)))

			var entry struct {
				Source struct {
					File string `json:"file"`
				} `json:"source"`
			}
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("decode %q: %v", buf.String(), err)
			}

			if !strings.HasSuffix(entry.Source.File, "log_test.go") {
				t.Errorf("source file = %q, want log_test.go", entry.Source.File)
			}
		})
	}
}

// decode parses one plain JSON record.
func decode(t *testing.T, data []byte) map[string]any {
	t.Helper()

	var entry map[string]any
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("decode %q: %v", data, err)
	}

	return entry
}

func TestLogger_Methods_FilterByLevel(t *testing.T) {
	methods := []struct {
		level Level
		plain func(Logger, string, ...slog.Attr)
		ctx   func(Logger, context.Context, string, ...slog.Attr)
	}{
		{LevelTrace, Logger.Trace, Logger.TraceContext},
		{LevelDebug, Logger.Debug, Logger.DebugContext},
		{LevelInfo, Logger.Info, Logger.InfoContext},
		{LevelWarn, Logger.Warn, Logger.WarnContext},
		{LevelError, Logger.Error, Logger.ErrorContext},
	}

	for _, floor := range levels {
		for _, m := range methods {
			t.Run(floor.String()+"/"+m.level.String(), func(t *testing.T) {
				var buf bytes.Buffer

				logger := Make(&buf, WithLevel(floor), WithPretty(false))
				m.plain(logger, "plain")
				m.ctx(logger, t.Context(), "ctx")

				wantLines := 0
				if m.level >= floor {
					wantLines = 2
				}

				if got := strings.Count(buf.String(), "\n"); got != wantLines {
					t.Fatalf("got %d records, want %d: %q", got, wantLines, buf.String())
				}

				if wantLines > 0 && !strings.Contains(buf.String(), `"level":"`+m.level.label()+`"`) {
					t.Errorf("level %s not named in %q", m.level.label(), buf.String())
				}
			})
		}
	}
}

func TestLogger_Formats(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer

		Make(&buf, WithPretty(false)).Info("translated", slog.String("input", "a.yaml"))

		entry := decode(t, buf.Bytes())
		if entry["msg"] != "translated" || entry["input"] != "a.yaml" || entry["level"] != "INFO" {
			t.Errorf("entry = %v", entry)
		}
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer

		Make(&buf, WithFormat(FormatText), WithPretty(false)).
			Info("translated", slog.String("input", "a.yaml"))

		if out := buf.String(); !strings.Contains(out, "msg=translated") ||
			!strings.Contains(out, "input=a.yaml") {
			t.Errorf("output = %q", out)
		}
	})
}

func TestLogger_TimeLayout(t *testing.T) {
	tests := []struct {
		layout string
		check  func(string) bool
	}{
		{"RFC3339Nano", func(s string) bool { return strings.Contains(s, ".") && strings.Contains(s, "T") }},
		{"kitchen", func(s string) bool { return strings.HasSuffix(s, "M") }},
	}

	for _, tt := range tests {
		t.Run(tt.layout, func(t *testing.T) {
			var buf bytes.Buffer

			Make(&buf, WithTimeLayout(tt.layout), WithPretty(false)).Info("stamped")

			stamp, _ := decode(t, buf.Bytes())["time"].(string)
			if !tt.check(stamp) {
				t.Errorf("time = %q", stamp)
			}
		})
	}

	t.Run("none", func(t *testing.T) {
		var buf bytes.Buffer

		Make(&buf, WithTimeLayout("none"), WithPretty(false)).Info("unstamped")

		if _, ok := decode(t, buf.Bytes())["time"]; ok {
			t.Errorf("time present in %q", buf.String())
		}
	})
}

func TestLogger_WithCaller(t *testing.T) {
	for _, enable := range []bool{true, false} {
		var buf bytes.Buffer

		Make(&buf, WithCaller(enable), WithPretty(false)).Info("caller")

		if _, ok := decode(t, buf.Bytes())["source"]; ok != enable {
			t.Errorf("WithCaller(%t): source present = %t", enable, ok)
		}
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer

	base := Make(&buf, WithPretty(false))
	scoped := base.With(slog.String("input", "a.yaml"))

	scoped.Info("scoped")

	if decode(t, buf.Bytes())["input"] != "a.yaml" {
		t.Errorf("attribute missing from %q", buf.String())
	}

	buf.Reset()
	base.Info("unscoped")

	if _, ok := decode(t, buf.Bytes())["input"]; ok {
		t.Errorf("With modified its receiver: %q", buf.String())
	}

	if scoped.Level() != base.Level() || scoped.Format() != base.Format() {
		t.Error("With changed settings")
	}
}

func TestLogger_With_Pretty(t *testing.T) {
	for _, format := range formats {
		t.Run(format.String(), func(t *testing.T) {
			var buf bytes.Buffer

			Make(&buf, WithFormat(format)).
				With(slog.String("input", "config.yaml")).
				Info("translated")

			if !strings.Contains(buf.String(), "config.yaml") {
				t.Errorf("attribute missing: %q", buf.String())
			}
		})
	}
}

type lazyValue struct{}

func (lazyValue) LogValue() slog.Value { return slog.StringValue("resolved") }

func TestLogger_ResolvesLogValuer(t *testing.T) {
	for _, pretty := range []bool{true, false} {
		var buf bytes.Buffer

		Make(&buf, WithFormat(FormatText), WithPretty(pretty)).
			Error("failed", slog.Any("error", lazyValue{}))

		if !strings.Contains(buf.String(), "resolved") {
			t.Errorf("pretty=%t: LogValuer not resolved: %q", pretty, buf.String())
		}
	}
}

func TestLogger_ZeroValue_Discards(t *testing.T) {
	var l Logger

	l.Trace("x")
	l.Info("x")
	l.ErrorContext(t.Context(), "x")

	if l.With(slog.String("k", "v")).Logger != nil {
		t.Error("With on zero Logger allocated a logger")
	}
}

func TestLogger_Concurrent(t *testing.T) {
	for _, pretty := range []bool{true, false} {
		var buf syncBuffer

		logger := Make(&buf, WithPretty(pretty), WithFormat(FormatText))

		var wg sync.WaitGroup
		for i := range 64 {
			wg.Go(func() {
				logger.With(slog.Int("worker", i)).Info("concurrent")
			})
		}
		wg.Wait()

		if got := strings.Count(buf.String(), "\n"); got != 64 {
			t.Errorf("pretty=%t: got %d records, want 64", pretty, got)
		}
	}
}

// syncBuffer serializes writes for handlers that share a writer.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func BenchmarkLogger_Info(b *testing.B) {
	for _, pretty := range []bool{false, true} {
		b.Run(map[bool]string{false: "plain", true: "pretty"}[pretty], func(b *testing.B) {
			logger := Make(io.Discard, WithPretty(pretty)).With(slog.String("input", "-"))

			for i := 0; b.Loop(); i++ {
				logger.Info("translated", slog.Int("n", i))
			}
		})
	}
}
