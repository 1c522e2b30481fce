package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ardnew/aconf/lang"
)

// Eval prints the values of constants defined by a YAML input file.
type Eval struct {
	Input      string   `arg:"" help:"YAML input file or '-' for stdin"  name:"input_file"`
	References []string `arg:"" help:"Constant references, e.g. @[NUM]" name:"reference"`
	NoCache    bool     `       help:"Parse the input even if identical input was seen"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	tr := newTranslator(e.NoCache)

	err = eachInput(ctx, []string{e.Input}, func(name string, r io.Reader) error {
		if _, err := tr.TranslateReader(ctx, r); err != nil {
			return lang.WrapError(err).With(slog.String("input", name))
		}

		return nil
	})
	if err != nil {
		return err
	}

	var b strings.Builder

	for _, ref := range e.References {
		v, err := tr.Evaluate(ref)
		if err != nil {
			return lang.WrapError(err).With(slog.String("command", "eval"))
		}

		fmt.Fprintln(&b, lang.Render(v))
	}

	if _, err := io.WriteString(streamsFrom(ctx).out, b.String()); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}
