package cmd

import (
	"bytes"
	"context"
	"io"
	"log/slog"

	"github.com/ardnew/aconf/lang"
	"github.com/ardnew/aconf/log"
)

// Translate prints the assignment-language translation of YAML input files.
//
// All inputs are translated in one session, so a file may reference the
// constants of any file before it. Nothing is printed unless every input
// translates.
type Translate struct {
	Inputs  []string `arg:"" help:"YAML input files or '-' for stdin" name:"input_file" default:"-"`
	NoCache bool     `       help:"Parse every input even if identical input was seen"`
}

// Run executes the translate command.
func (t *Translate) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	tr := newTranslator(t.NoCache)

	var buf bytes.Buffer

	err = eachInput(ctx, t.Inputs, func(name string, r io.Reader) error {
		out, err := tr.TranslateReader(ctx, r)
		if err != nil {
			return lang.WrapError(err).With(slog.String("input", name))
		}

		buf.WriteString(out)
		buf.WriteByte('\n')

		return nil
	})
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "translated inputs",
		slog.Int("inputs", len(t.Inputs)),
		slog.Int("constants", tr.Constants().Len()),
	)

	if _, err := buf.WriteTo(streamsFrom(ctx).out); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}

// langOptions configures parsing and translation to log to the default
// logger.
func langOptions(noCache bool) []lang.Option {
	return []lang.Option{lang.WithLogger(log.Default()), lang.WithCache(!noCache)}
}

func newTranslator(noCache bool) *lang.Translator {
	return lang.New(langOptions(noCache)...)
}

// eachInput resolves names and calls fn with each opened input in order.
func eachInput(
	ctx context.Context,
	names []string,
	fn func(name string, r io.Reader) error,
) error {
	inputs, err := resolveInputs(ctx, names)
	if err != nil {
		return err
	}

	for _, in := range inputs {
		if err := in.read(ctx, fn); err != nil {
			return err
		}
	}

	return nil
}

func (in input) read(ctx context.Context, fn func(name string, r io.Reader) error) error {
	rc, err := in.open(ctx)
	if err != nil {
		return err
	}
	defer rc.Close()

	log.TraceContext(ctx, "reading input",
		slog.String("input", in.name),
		slog.String("path", in.path),
	)

	return fn(in.name, rc)
}
