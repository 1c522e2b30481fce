package cmd

import (
	"errors"
	"testing"

	"github.com/ardnew/aconf/lang"
)

func TestEvalRun(t *testing.T) {
	path := writeFile(t, t.TempDir(), "in.yaml", "NUM: 10\nARR: [1, 2, 3]\nSTR: text\n")

	tests := []struct {
		name    string
		refs    []string
		want    string
		wantErr error
	}{
		{"integer", []string{"@[NUM]"}, "10\n", nil},
		{"sequence", []string{"@[ARR]"}, "array(1, 2, 3)\n", nil},
		{"several", []string{"@NUM", "ARR"}, "10\narray(1, 2, 3)\n", nil},
		{"undefined", []string{"@[INVALID]"}, "", lang.ErrUndefinedConstant},
		{"string_is_not_constant", []string{"@[STR]"}, "", lang.ErrUndefinedConstant},
		{"partial_failure", []string{"@NUM", "@NOPE"}, "", lang.ErrUndefinedConstant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := testContext(t, "")

			err := (&Eval{Input: path, References: tt.refs}).Run(ctx)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
			}

			if got := out.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}
