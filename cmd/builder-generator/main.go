// Package main provides the CLI entrypoint for builder-generator.
//
// builder-generator reads Go structs marked with //builder:generate and
// writes a builder for each of them:
//   - gen    writes the builders next to the records
//   - check  fails when written builders are stale
//   - plan   prints how every field was classified
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
