// Package appshell owns the process-level glue for the aligner binary:
// signal wiring, argv defaulting, and exit-code normalization.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Exit code reported when the run ended because the process was interrupted.
const codeInterrupt = 130

// Run executes an app entry point under an interrupt-aware context and
// returns the process exit code for the caller to pass to os.Exit. SIGINT or
// SIGTERM cancels the context; a run that finished clean only because of
// that cancellation reports 130.
func Run(run func(context.Context, []string, io.Writer, io.Writer) int) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	argv := os.Args[1:]
	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	code := run(ctx, argv, os.Stdout, os.Stderr)
	if code == 0 && ctx.Err() != nil {
		code = codeInterrupt
	}
	return code
}
