package lang

import (
	"context"
	"iter"
	"log/slog"
	"maps"

	"github.com/ardnew/aconf/log"
)

// Constants is the table of top-level constants of one document.
//
// Only [Int] and [Seq] entries of the top-level mapping are stored. The zero
// value is an empty table ready to use.
type Constants struct {
	names  []string
	values map[string]Value
}

// BuildConstants returns the constant table of doc.
//
// Every top-level entry whose value is an [Int] or a [Seq] has its identifier
// validated and is added to the table; [Str] and [*Map] entries are skipped.
// Nested mappings never contribute constants.
func BuildConstants(doc *Map) (*Constants, error) {
	return buildConstants(context.Background(), nil, doc, log.Logger{})
}

// buildConstants returns a copy of base extended with the constants of doc.
// Entries of doc replace same-named entries of base in place.
func buildConstants(
	ctx context.Context,
	base *Constants,
	doc *Map,
	logger log.Logger,
) (*Constants, error) {
	c := base.clone()

	for _, e := range doc.entries() {
		switch v := e.Value.(type) {
		case Int, Seq:
			if err := ValidateName(e.Name); err != nil {
				return nil, err
			}

			if seq, ok := v.(Seq); ok {
				if err := seq.check(); err != nil {
					return nil, err
				}
			}

			c.add(e.Name, e.Value)

			logger.TraceContext(
				ctx,
				"constant",
				slog.String("name", e.Name),
				slog.String("kind", e.Value.Kind().String()),
			)

		case Str, *Map:
			// Emitted only.

		default:
			return nil, unsupportedType(typeName(e.Value))
		}
	}

	return c, nil
}

func (c *Constants) clone() *Constants {
	if c == nil {
		return &Constants{}
	}

	return &Constants{
		names:  append([]string(nil), c.names...),
		values: maps.Clone(c.values),
	}
}

func (c *Constants) add(name string, v Value) {
	if c.values == nil {
		c.values = make(map[string]Value)
	}

	if _, ok := c.values[name]; !ok {
		c.names = append(c.names, name)
	}

	c.values[name] = v
}

// Lookup returns the constant with the given name.
func (c *Constants) Lookup(name string) (Value, bool) {
	if c == nil {
		return nil, false
	}

	v, ok := c.values[name]

	return v, ok
}

// Len returns the number of constants in the table.
func (c *Constants) Len() int {
	if c == nil {
		return 0
	}

	return len(c.names)
}

// Names returns the constant names in declaration order.
func (c *Constants) Names() []string {
	if c == nil {
		return nil
	}

	return append([]string(nil), c.names...)
}

// All returns an iterator over the constants in declaration order.
func (c *Constants) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if c == nil {
			return
		}

		for _, name := range c.names {
			if !yield(name, c.values[name]) {
				return
			}
		}
	}
}

// env returns the table as an expression environment of native values.
func (c *Constants) env() map[string]any {
	env := make(map[string]any, c.Len())

	if c != nil {
		for name, v := range maps.All(c.values) {
			env[name] = v.Native()
		}
	}

	return env
}
