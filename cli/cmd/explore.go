package cmd

import (
	"context"
	"io"

	"github.com/ardnew/aconf/cli/cmd/repl"
	"github.com/ardnew/aconf/log"
)

// Repl starts an interactive session over the constants of a YAML input
// file.
type Repl struct {
	Input string `arg:"" help:"YAML input file" name:"input_file"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	cacheDir, _ := kongVar(ctx, CacheIdentifier)

	return eachInput(ctx, []string{r.Input}, func(_ string, in io.Reader) error {
		return repl.Run(ctx, in, cacheDir, log.Default())
	})
}
