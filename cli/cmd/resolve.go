package cmd

import (
	"bytes"
	"context"
	"io"
	"log/slog"

	"github.com/ardnew/aconf/lang"
)

// Resolve prints a YAML input file with every constant reference replaced
// by the value it names.
type Resolve struct {
	Input   string `arg:"" help:"YAML input file or '-' for stdin" name:"input_file" default:"-"`
	Format  string `       help:"Output format"                    default:"yaml" enum:"yaml,json" short:"o"`
	Indent  int    `       help:"Indent width (0 for compact)"     default:"2"    short:"i"`
	NoCache bool   `       help:"Parse the input even if identical input was seen"`
}

// Run executes the resolve command.
func (c *Resolve) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	if c.Indent < 0 {
		return ErrInvalidFormat.With(slog.Int("indent", c.Indent))
	}

	tr := newTranslator(c.NoCache)

	var buf bytes.Buffer

	err = eachInput(ctx, []string{c.Input}, func(name string, r io.Reader) error {
		doc, err := lang.ParseReader(ctx, r, langOptions(c.NoCache)...)
		if err != nil {
			return lang.WrapError(err).With(slog.String("input", name))
		}

		resolved, err := tr.Resolve(ctx, doc)
		if err != nil {
			return lang.WrapError(err).With(slog.String("input", name))
		}

		return c.format(ctx, &buf, resolved)
	})
	if err != nil {
		return err
	}

	if _, err := buf.WriteTo(streamsFrom(ctx).out); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}

func (c *Resolve) format(ctx context.Context, w io.Writer, doc *lang.Map) error {
	var err error

	switch c.Format {
	case "json":
		err = doc.FormatJSON(ctx, w, c.Indent)
	case "yaml":
		err = doc.FormatYAML(ctx, w, c.Indent)
	default:
		return ErrInvalidFormat.With(slog.String("format", c.Format))
	}

	if err != nil {
		return ErrWriteOutput.With(slog.String("format", c.Format)).Wrap(err)
	}

	return nil
}
