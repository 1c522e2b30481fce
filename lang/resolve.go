package lang

import "context"

// Resolve returns a copy of m in which every constant reference is replaced by
// the value of the constant it names.
//
// Identifiers are validated at every depth, as by [Emit]. The result shares
// no mappings with m.
func Resolve(m *Map, c *Constants) (*Map, error) {
	out := NewMap()
	out.Entries = make([]Entry, 0, m.Len())

	for _, e := range m.entries() {
		if err := ValidateName(e.Name); err != nil {
			return nil, err
		}

		var val Value

		switch v := e.Value.(type) {
		case Int:
			val = v

		case Seq:
			if err := v.check(); err != nil {
				return nil, err
			}

			val = v

		case Str:
			name, isRef := refName(string(v))
			if !isRef {
				val = v

				break
			}

			ref, ok := c.Lookup(name)
			if !ok {
				return nil, undefinedConstant(string(v))
			}

			val = ref

		case *Map:
			sub, err := Resolve(v, c)
			if err != nil {
				return nil, err
			}

			val = sub

		default:
			return nil, unsupportedType(typeName(e.Value))
		}

		out.Entries = append(out.Entries, Entry{Name: e.Name, Value: val})
	}

	return out, nil
}

// Resolve returns doc with its constant references replaced, after extending
// the session's constant table with the constants of doc.
func (t *Translator) Resolve(ctx context.Context, doc *Map) (*Map, error) {
	consts, err := buildConstants(ctx, t.consts, doc, t.opts.logger)
	if err != nil {
		return nil, err
	}

	out, err := Resolve(doc, consts)
	if err != nil {
		return nil, err
	}

	t.consts = consts

	return out, nil
}
