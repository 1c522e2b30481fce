package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/google/go-cmp/cmp"
)

// testContext returns a context whose commands read stdin from in and write
// to the returned buffer.
func testContext(t *testing.T, in string) (context.Context, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer

	return WithStreams(t.Context(), strings.NewReader(in), &out), &out
}

// writeFile writes content to name in dir and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func inputNames(inputs []input) []string {
	names := make([]string, len(inputs))
	for i, in := range inputs {
		names[i] = in.name
	}

	return names
}

func TestResolveInputs_Dedup(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.yaml", "A: 1\n")
	b := writeFile(t, dir, "b.yaml", "B: 2\n")

	link := filepath.Join(dir, "link.yaml")
	if err := os.Symlink(a, link); err != nil {
		t.Fatal(err)
	}

	ctx, _ := testContext(t, "")

	inputs, err := resolveInputs(ctx, []string{a, "-", b, link, "-", a})
	if err != nil {
		t.Fatalf("resolveInputs() error = %v", err)
	}

	want := []string{a, "-", b}
	if diff := cmp.Diff(want, inputNames(inputs)); diff != "" {
		t.Errorf("resolveInputs() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveInputs_SearchPath(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	missing := filepath.Join(first, "missing")

	writeFile(t, second, "only-second.yaml", "A: 1\n")
	writeFile(t, first, "both.yaml", "B: 1\n")
	writeFile(t, second, "both.yaml", "B: 2\n")

	ctx, _ := testContext(t, "")
	ctx = WithSearchPath(ctx, second+string(os.PathListSeparator)+missing, first)

	if diff := cmp.Diff([]string{first, second}, searchPathFrom(ctx)); diff != "" {
		t.Errorf("search path mismatch (-want +got):\n%s", diff)
	}

	inputs, err := resolveInputs(ctx, []string{"only-second.yaml", "both.yaml"})
	if err != nil {
		t.Fatalf("resolveInputs() error = %v", err)
	}

	want := []string{
		filepath.Join(second, "only-second.yaml"),
		filepath.Join(first, "both.yaml"),
	}

	got := []string{inputs[0].path, inputs[1].path}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("resolved paths mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveInputs_Missing(t *testing.T) {
	ctx, _ := testContext(t, "")

	for _, name := range []string{
		"no-such-input.yaml",
		filepath.Join(t.TempDir(), "absent.yaml"),
	} {
		_, err := resolveInputs(ctx, []string{name})
		if !errors.Is(err, ErrOpenInput) {
			t.Errorf("resolveInputs(%q) error = %v, want ErrOpenInput", name, err)
		}

		if err != nil && !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not name the input", err)
		}
	}
}

func TestInput_OpenStdin(t *testing.T) {
	ctx, _ := testContext(t, "A: 1\n")

	rc, err := input{name: "-", path: stdinSource}.open(ctx)
	if err != nil {
		t.Fatal(err)
	}

	data, _ := io.ReadAll(rc)
	if err := rc.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}

	if string(data) != "A: 1\n" {
		t.Errorf("read %q", data)
	}
}

func TestStreamsFrom_Default(t *testing.T) {
	s := streamsFrom(t.Context())
	if s.in != os.Stdin || s.out != os.Stdout {
		t.Errorf("default streams = %v, want stdin/stdout", s)
	}
}

func TestKongVar(t *testing.T) {
	if _, ok := kongVar(t.Context(), ConfigIdentifier); ok {
		t.Error("kongVar() found a variable without a kong context")
	}

	var cli struct{}

	parser, err := kong.New(&cli, kong.Vars{ConfigIdentifier: "/tmp/x.yaml"})
	if err != nil {
		t.Fatal(err)
	}

	ktx, err := parser.Parse(nil)
	if err != nil {
		t.Fatal(err)
	}

	v, ok := kongVar(WithContext(t.Context(), ktx), ConfigIdentifier)
	if !ok || v != "/tmp/x.yaml" {
		t.Errorf("kongVar() = %q, %v", v, ok)
	}
}

func TestError(t *testing.T) {
	err := ErrWriteConfig.With(slog.String("file", "c.yaml")).Wrap(ErrFileExists)

	if !errors.Is(err, ErrWriteConfig) || !errors.Is(err, ErrFileExists) {
		t.Errorf("errors.Is failed for %v", err)
	}

	if errors.Is(err, ErrOpenInput) {
		t.Error("unrelated sentinel matched")
	}

	want := "write configuration file (file=c.yaml): file exists (use --force to overwrite)"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
