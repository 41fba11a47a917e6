// internal/app/run.go
package app

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/PyEED/aligner/core/engine"
	"github.com/PyEED/aligner/core/pairs"
	"github.com/PyEED/aligner/core/scoring"
	"github.com/PyEED/aligner/core/seqs"
	"github.com/PyEED/aligner/internal/cli"
	"github.com/PyEED/aligner/internal/metrics"
	"github.com/PyEED/aligner/internal/progress"
	"github.com/PyEED/aligner/internal/writers"
)

// tickerGroup fans one Tick out to several sinks (progress bar, metrics).
type tickerGroup []engine.Ticker

func (g tickerGroup) Tick() {
	for _, t := range g {
		t.Tick()
	}
}

func run(parent context.Context, o cli.Options, input *seqs.Collection, score scoring.Func, stdout, stderr io.Writer, log *logrus.Logger) int {
	start := time.Now()

	dst := stdout
	if o.Output != "" {
		f, err := os.Create(o.Output)
		if err != nil {
			log.Error(err)
			return 3
		}
		defer func() { _ = f.Close() }()
		dst = f
	}
	outw := bufio.NewWriter(dst)

	thr := o.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	in, writeErr := writers.StartAlignmentWriter(outw, o.Format, o.Sort, o.Header, thr*4)

	var tickers tickerGroup

	var col *metrics.Collector
	if o.MetricsAddr != "" {
		col = metrics.NewCollector()
		tickers = append(tickers, col)
		go func() {
			if err := metrics.Serve(o.MetricsAddr); err != nil {
				log.WithField("addr", o.MetricsAddr).Warnf("metrics server: %v", err)
			}
		}()
	}

	var bar *progress.Bar
	if !o.Quiet && !o.NoProgress {
		bar = progress.Start(pairs.Count(input.Len()), stderr)
		tickers = append(tickers, bar)
	}

	var prog engine.Ticker
	if len(tickers) > 0 {
		prog = tickers
	}

	eng := engine.New(engine.Config{
		Fraction:   o.Fraction,
		MinMatches: o.MinMatches,
		Threads:    thr,
		Progress:   prog,
	}, score)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	total, rerr := eng.Run(ctx, input, func(r engine.Result) error {
		if col != nil {
			col.RecordResult(r)
		}
		select {
		case in <- r:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	if bar != nil {
		bar.Finish()
	}
	close(in)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		log.Error(werr)
		return 3
	}
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		log.Error(err)
		return 3
	}

	if rerr != nil {
		switch {
		case errors.Is(rerr, context.Canceled):
			return 130
		case errors.Is(rerr, engine.ErrFraction):
			log.Error(rerr)
			return 2
		default:
			log.Error(rerr)
			return 3
		}
	}

	log.Infof("processed %s alignments in %s",
		humanize.Comma(int64(total)), time.Since(start).Round(time.Millisecond))
	return 0
}
