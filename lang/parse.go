package lang

import (
	"context"
	"errors"
	"log/slog"

	"github.com/goccy/go-yaml"
)

// ParseString parses YAML source text and returns its top-level mapping.
//
// Mappings keep their declaration order. Malformed YAML fails with
// [ErrParse]; well-formed YAML holding unsupported shapes fails with
// [ErrUnsupportedType] or [ErrInvalidName].
//
// ParseString never consults the parse cache; see [ParseReader].
func ParseString(ctx context.Context, source string, opts ...Option) (*Map, error) {
	return ParseBytes(ctx, []byte(source), opts...)
}

// ParseBytes is like [ParseString] but accepts a byte slice.
func ParseBytes(ctx context.Context, source []byte, opts ...Option) (*Map, error) {
	return parse(ctx, source, makeOptions(opts...))
}

func parse(ctx context.Context, source []byte, o options) (*Map, error) {
	var root any

	err := yaml.UnmarshalContext(ctx, source, &root, yaml.UseOrderedMap())
	if err != nil {
		return nil, parseError(err).
			With(slog.Int("source_bytes", len(source)))
	}

	doc, err := FromNative(root)
	if err != nil {
		return nil, err
	}

	o.logger.TraceContext(
		ctx,
		"parsed document",
		slog.Int("source_bytes", len(source)),
		slog.Int("entries", doc.Len()),
	)

	return doc, nil
}

// parseError wraps a YAML decoder error, formatted with its source context
// when the decoder provides one.
func parseError(err error) *Error {
	return ErrParse.Wrap(errors.New(yaml.FormatError(err, false, true)))
}
