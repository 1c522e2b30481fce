package cmd

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/ardnew/aconf/lang"
)

func TestTranslateRun(t *testing.T) {
	dir := t.TempDir()
	base := writeFile(t, dir, "base.yaml", "NUM: 10\nARR: [1, 2]\n")
	app := writeFile(t, dir, "app.yaml", "REF: '@NUM'\nSUB:\n  LIST: '@ARR'\n")

	tests := []struct {
		name   string
		stdin  string
		inputs []string
		want   string
	}{
		{
			name:   "single_file",
			inputs: []string{base},
			want:   "NUM <- 10;\nARR <- array(1, 2);\n",
		},
		{
			name:   "session_spans_files",
			inputs: []string{base, app},
			want:   "NUM <- 10;\nARR <- array(1, 2);\nREF <- 10;\nSUB <- {\nLIST <- array(1, 2);\n};\n",
		},
		{
			name:   "stdin",
			stdin:  `{"NUM": 10, "ARR": [1,2,3], "CONST": 20}`,
			inputs: []string{"-"},
			want:   "NUM <- 10;\nARR <- array(1, 2, 3);\nCONST <- 20;\n",
		},
		{
			name:   "duplicate_file_once",
			inputs: []string{base, filepath.Join(dir, ".", "base.yaml")},
			want:   "NUM <- 10;\nARR <- array(1, 2);\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := testContext(t, tt.stdin)

			if err := (&Translate{Inputs: tt.inputs, NoCache: true}).Run(ctx); err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			if got := out.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTranslateRun_Errors(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.yaml", "NUM: 1\n")
	bad := writeFile(t, dir, "bad.yaml", "REF: '@MISSING'\n")
	lower := writeFile(t, dir, "lower.yaml", "Invalid: 10\n")

	tests := []struct {
		name    string
		inputs  []string
		wantErr error
	}{
		{"undefined_reference", []string{good, bad}, lang.ErrUndefinedConstant},
		{"invalid_name", []string{lower}, lang.ErrInvalidName},
		{"missing_file", []string{good, filepath.Join(dir, "nope.yaml")}, ErrOpenInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := testContext(t, "")

			err := (&Translate{Inputs: tt.inputs}).Run(ctx)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
			}

			if out.Len() != 0 {
				t.Errorf("partial output written: %q", out.String())
			}
		})
	}
}
