// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/PyEED/aligner/core/scoring"
	"github.com/PyEED/aligner/core/seqs"
	"github.com/PyEED/aligner/internal/cli"
	"github.com/PyEED/aligner/internal/version"
	"github.com/PyEED/aligner/internal/writers"
)

// RunContext parses argv, loads the input collection, and runs the full
// alignment pipeline. It returns a process exit code: 0 success, 2 usage or
// configuration error, 3 runtime failure, 130 canceled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("aligner")
	fs.SetOutput(io.Discard)

	usage := func(code int) int {
		fs.SetOutput(outw)
		fs.Usage()
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return code
	}

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		return usage(0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return usage(0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return usage(2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "aligner version %s\n", version.Version)
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return 0
	}

	log := logrus.New()
	log.SetOutput(stderr)
	if opts.Quiet {
		log.SetLevel(logrus.WarnLevel)
	}

	// count >= 0 always holds, so this prefilter keeps every pair.
	if opts.Fraction > 0 && opts.MinMatches == 0 {
		log.Warn("--min-matches 0 never skips a pair; use --min-matches 1 or higher to actually filter")
	}

	score, err := resolveScoring(opts)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	input, err := seqs.Load(opts.Input, seqs.Format(opts.InputFormat))
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	return run(parent, opts, input, score, stdout, stderr, log)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// resolveScoring maps Options to a concrete scoring function.
func resolveScoring(o cli.Options) (scoring.Func, error) {
	if o.Scoring == cli.ScoringCustom {
		m, err := scoring.LoadMatrix(o.Matrix)
		if err != nil {
			return nil, err
		}
		return m.Func(), nil
	}
	return scoring.ByName(o.Scoring)
}
