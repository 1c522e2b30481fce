package lang

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// MarshalJSON implements json.Marshaler for Map, keeping declaration order.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, e := range m.entries() {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}

		var val []byte
		if sub, ok := e.Value.(*Map); ok {
			val, err = sub.MarshalJSON()
		} else {
			val, err = json.Marshal(e.Value.Native())
		}

		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// MarshalYAML implements yaml.InterfaceMarshaler for Map, keeping
// declaration order.
func (m *Map) MarshalYAML() (any, error) {
	return m.MapSlice(), nil
}

// FormatJSON writes m as JSON to the writer.
func (m *Map) FormatJSON(_ context.Context, w io.Writer, indent int) error {
	var (
		jsonData []byte
		err      error
	)

	if indent > 0 {
		jsonData, err = json.MarshalIndent(m, "", strings.Repeat(" ", indent))
	} else {
		jsonData, err = json.Marshal(m)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(jsonData))

	return err
}

// FormatYAML writes m as YAML to the writer.
func (m *Map) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	yamlData, err := yaml.MarshalContext(ctx, m.MapSlice(), opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(yamlData))

	return err
}
