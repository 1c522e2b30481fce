package lang

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func formatDoc() *Map {
	return NewMap(
		Entry{"B", Int(1)},
		Entry{"A", Seq{Int(1), Int(2)}},
		Entry{"S", Str("x")},
		Entry{"M", NewMap(Entry{"C", Str("y")})},
	)
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer

	if err := formatDoc().FormatJSON(t.Context(), &buf, 0); err != nil {
		t.Fatalf("FormatJSON() error = %v", err)
	}

	want := `{"B":1,"A":[1,2],"S":"x","M":{"C":"y"}}` + "\n"
	if got := buf.String(); got != want {
		t.Errorf("FormatJSON() = %q, want %q", got, want)
	}
}

func TestFormatJSON_Indent(t *testing.T) {
	var buf bytes.Buffer

	if err := formatDoc().FormatJSON(t.Context(), &buf, 2); err != nil {
		t.Fatalf("FormatJSON() error = %v", err)
	}

	got := buf.String()
	if !strings.HasPrefix(got, "{\n  \"B\": 1,\n") {
		t.Errorf("FormatJSON() = %q, want indented output", got)
	}

	if strings.Index(got, `"B"`) > strings.Index(got, `"A"`) {
		t.Errorf("FormatJSON() reordered keys: %q", got)
	}
}

func TestFormatYAML_RoundTrip(t *testing.T) {
	for _, indent := range []int{0, 2, 4} {
		var buf bytes.Buffer

		if err := formatDoc().FormatYAML(t.Context(), &buf, indent); err != nil {
			t.Fatalf("FormatYAML(indent=%d) error = %v", indent, err)
		}

		got, err := ParseString(t.Context(), buf.String())
		if err != nil {
			t.Fatalf("ParseString(%q) error = %v", buf.String(), err)
		}

		if diff := cmp.Diff(formatDoc(), got); diff != "" {
			t.Errorf("round trip (indent=%d) mismatch (-want +got):\n%s", indent, diff)
		}
	}
}
