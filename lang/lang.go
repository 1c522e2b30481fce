package lang

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// Translator is a translation session.
//
// It owns the constant table used to resolve references. The table starts
// empty and grows with every successful [Translator.Translate]; it is only
// reset by creating a new Translator. A Translator is not safe for concurrent
// use; translate independent documents with independent Translators.
type Translator struct {
	opts   options
	consts *Constants
	eval   evalCache
}

// New returns a Translator with an empty constant table.
func New(opts ...Option) *Translator {
	return &Translator{
		opts:   makeOptions(opts...),
		consts: &Constants{},
	}
}

// Translate returns the assignment-language text of doc.
//
// The constant table is extended with the top-level constants of doc before
// any output is produced, so references may appear before the constant they
// name. On error the result is empty and the constant table is unchanged.
func (t *Translator) Translate(ctx context.Context, doc *Map) (string, error) {
	logger := t.opts.logger

	consts, err := buildConstants(ctx, t.consts, doc, logger)
	if err != nil {
		logger.TraceContext(ctx, "constant table failed", slog.Any("error", err))

		return "", err
	}

	lines, err := Emit(doc, consts)
	if err != nil {
		logger.TraceContext(ctx, "emit failed", slog.Any("error", err))

		return "", err
	}

	t.consts = consts

	logger.TraceContext(
		ctx,
		"translated",
		slog.Int("entries", doc.Len()),
		slog.Int("constants", consts.Len()),
		slog.Int("lines", len(lines)),
	)

	return strings.Join(lines, "\n"), nil
}

// TranslateString parses YAML source text and translates it.
func (t *Translator) TranslateString(
	ctx context.Context,
	source string,
) (string, error) {
	doc, err := ParseString(ctx, source, t.optionList()...)
	if err != nil {
		return "", err
	}

	return t.Translate(ctx, doc)
}

// TranslateReader parses YAML read from r and translates it.
func (t *Translator) TranslateReader(
	ctx context.Context,
	r io.Reader,
) (string, error) {
	doc, err := ParseReader(ctx, r, t.optionList()...)
	if err != nil {
		return "", err
	}

	return t.Translate(ctx, doc)
}

// Constants returns the session's constant table.
// The table must not be modified.
func (t *Translator) Constants() *Constants {
	return t.consts
}

// optionList returns the Translator's options for passing to the parser.
func (t *Translator) optionList() []Option {
	o := t.opts

	return []Option{func(p *options) { *p = o }}
}

// Translate is a convenience that translates doc with a new [Translator].
func Translate(ctx context.Context, doc *Map, opts ...Option) (string, error) {
	return New(opts...).Translate(ctx, doc)
}
