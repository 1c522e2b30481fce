package lang

import (
	"strings"
)

// Emit returns the assignment lines of mapping m, resolving constant
// references against c.
//
// Each entry produces one line, except nested mappings which produce a
// brace-delimited block spanning several lines:
//
//	NUM <- 10;
//	ARR <- array(1, 2, 3);
//	NAME <- "text";
//	REF <- 10;
//	SUB <- {
//	INNER <- 1;
//	};
//
// Emit does not modify m or c. On error no lines are returned.
func Emit(m *Map, c *Constants) ([]string, error) {
	lines := make([]string, 0, m.Len())

	for _, e := range m.entries() {
		if err := ValidateName(e.Name); err != nil {
			return nil, err
		}

		switch v := e.Value.(type) {
		case Int:
			lines = append(lines, assign(e.Name, Render(v)))

		case Seq:
			if err := v.check(); err != nil {
				return nil, err
			}

			lines = append(lines, assign(e.Name, Render(v)))

		case Str:
			text, err := renderStr(v, c)
			if err != nil {
				return nil, err
			}

			lines = append(lines, assign(e.Name, text))

		case *Map:
			body, err := Emit(v, c)
			if err != nil {
				return nil, err
			}

			lines = append(lines,
				assign(e.Name, "{\n"+strings.Join(body, "\n")+"\n}"),
			)

		default:
			return nil, unsupportedType(typeName(e.Value))
		}
	}

	return lines, nil
}

// Render returns the output-language text of an [Int] or [Seq]: decimal text
// for integers and an array literal for sequences. Strings render quoted.
func Render(v Value) string {
	switch v := v.(type) {
	case Int:
		return v.String()
	case Seq:
		return v.String()
	case Str:
		return quote(string(v))
	default:
		return ""
	}
}

// renderStr returns the text of a string value: the rendered constant for a
// reference, or the quoted literal otherwise.
func renderStr(s Str, c *Constants) (string, error) {
	name, isRef := refName(string(s))
	if !isRef {
		return quote(string(s)), nil
	}

	v, ok := c.Lookup(name)
	if !ok {
		return "", undefinedConstant(string(s))
	}

	return Render(v), nil
}

// quote wraps s in double quotes. Embedded quotes and backslashes are kept
// verbatim.
func quote(s string) string { return `"` + s + `"` }

func assign(name, value string) string {
	return name + " <- " + value + ";"
}
