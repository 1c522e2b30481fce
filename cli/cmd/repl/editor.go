package repl

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/ardnew/aconf/lang"
	"github.com/ardnew/aconf/log"
)

const (
	defaultEditor = "vi"
	editIndent    = 2
)

// editCommand implements [tea.ExecCommand] for the edit-translate-retry loop.
//
// It writes the current document as YAML to a temporary file, opens the
// user's editor on it, and translates the result with a new session. When
// translation fails the user is asked whether to edit again; declining
// returns [ErrEditDeclined].
type editCommand struct {
	doc     *lang.Map
	ctxFunc func() context.Context
	logger  log.Logger
	result  *session
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

// SetStdin sets the stdin reader for the command.
func (c *editCommand) SetStdin(r io.Reader) { c.stdin = r }

// SetStdout sets the stdout writer for the command.
func (c *editCommand) SetStdout(w io.Writer) { c.stdout = w }

// SetStderr sets the stderr writer for the command.
func (c *editCommand) SetStderr(w io.Writer) { c.stderr = w }

// Run executes the edit loop. A nil result with a nil error means the user
// emptied the file.
func (c *editCommand) Run() error {
	ctx := c.ctxFunc()

	var buf bytes.Buffer
	if err := c.doc.FormatYAML(ctx, &buf, editIndent); err != nil {
		return fmt.Errorf("format document: %w", err)
	}

	f, err := os.CreateTemp(os.TempDir(), "aconf-repl-*.yaml")
	if err != nil {
		return err
	}

	tmpPath := f.Name()

	defer os.Remove(tmpPath)

	if err := f.Chmod(0o600); err != nil {
		f.Close()

		return err
	}

	f.Close()

	content := buf.Bytes()

	for {
		if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
			return err
		}

		if err := runEditor(ctx, c.stdin, c.stdout, c.stderr, tmpPath); err != nil {
			return err
		}

		data, err := os.ReadFile(tmpPath)
		if err != nil {
			return err
		}

		if len(bytes.TrimSpace(data)) == 0 {
			return nil
		}

		s, err := translate(ctx, bytes.NewReader(data), c.logger, lang.WithCache(false))
		c.logger.TraceContext(
			ctx,
			"editor translate attempt",
			slog.Int("content_length", len(data)),
			slog.Bool("success", err == nil),
		)

		if err == nil {
			c.result = s

			return nil
		}

		fmt.Fprintf(c.stderr, "\nTranslation error: %s\n", err)
		fmt.Fprint(c.stdout, "Re-edit? [Y/n] ")

		scanner := bufio.NewScanner(c.stdin)
		if !scanner.Scan() {
			return ErrEditDeclined
		}

		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "n", "no":
			return ErrEditDeclined
		}

		content = data
	}
}

// runEditor runs $EDITOR (or vi) on path and waits for it to exit.
func runEditor(
	ctx context.Context,
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
	path string,
) error {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = defaultEditor
	}

	cmd := exec.CommandContext(ctx, editor, path)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	return cmd.Run()
}
