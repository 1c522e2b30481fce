package cmd

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/aconf/lang"
)

const resolveDoc = "NUM: 10\nREF: '@NUM'\nSUB:\n  L: '@ARR'\nARR: [1, 2]\n"

func TestResolveRun_JSON(t *testing.T) {
	ctx, out := testContext(t, resolveDoc)

	if err := (&Resolve{Input: "-", Format: "json", NoCache: true}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := `{"NUM":10,"REF":10,"SUB":{"L":[1,2]},"ARR":[1,2]}` + "\n"
	if got := out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestResolveRun_YAML(t *testing.T) {
	want := lang.NewMap(
		lang.Entry{Name: "NUM", Value: lang.Int(10)},
		lang.Entry{Name: "REF", Value: lang.Int(10)},
		lang.Entry{Name: "SUB", Value: lang.NewMap(
			lang.Entry{Name: "L", Value: lang.Seq{lang.Int(1), lang.Int(2)}},
		)},
		lang.Entry{Name: "ARR", Value: lang.Seq{lang.Int(1), lang.Int(2)}},
	)

	for _, indent := range []int{0, 2, 4} {
		ctx, out := testContext(t, resolveDoc)

		cmd := &Resolve{Input: "-", Format: "yaml", Indent: indent, NoCache: true}
		if err := cmd.Run(ctx); err != nil {
			t.Fatalf("Run(indent=%d) error = %v", indent, err)
		}

		got, err := lang.ParseString(t.Context(), out.String())
		if err != nil {
			t.Fatalf("output is not YAML: %v\n%s", err, out)
		}

		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("indent=%d mismatch (-want +got):\n%s", indent, diff)
		}
	}
}

func TestResolveRun_Errors(t *testing.T) {
	tests := []struct {
		name    string
		cmd     Resolve
		stdin   string
		wantErr error
	}{
		{"undefined", Resolve{Format: "yaml"}, "REF: '@NOPE'\n", lang.ErrUndefinedConstant},
		{"bad_format", Resolve{Format: "toml"}, "A: 1\n", ErrInvalidFormat},
		{"negative_indent", Resolve{Format: "json", Indent: -1}, "A: 1\n", ErrInvalidFormat},
		{"parse", Resolve{Format: "json"}, "A: [1\n", lang.ErrParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := testContext(t, tt.stdin)

			tt.cmd.Input = "-"

			if err := tt.cmd.Run(ctx); !errors.Is(err, tt.wantErr) {
				t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
			}

			if out.Len() != 0 {
				t.Errorf("partial output written: %q", out.String())
			}
		})
	}
}
