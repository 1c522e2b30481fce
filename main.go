package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ardnew/aconf/cli"
	"github.com/ardnew/aconf/log"
)

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)
	if err != nil {
		log.Debug("run failed", slog.Any("error", err))
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
