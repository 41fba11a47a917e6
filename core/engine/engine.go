// core/engine/engine.go
package engine

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/PyEED/aligner/core/align"
	"github.com/PyEED/aligner/core/kmer"
	"github.com/PyEED/aligner/core/pairs"
	"github.com/PyEED/aligner/core/scoring"
)

// ErrFraction reports a prefilter fraction outside [0, 1].
var ErrFraction = errors.New("prefilter fraction must be within [0, 1]")

// Sequences is the minimal capability the engine needs from the input
// collection. Entries must not change for the duration of a run; the engine
// reads them concurrently from every worker.
type Sequences interface {
	Len() int
	ID(i int) string
	Seq(i int) string
}

// Ticker receives one Tick per processed pair, self-pairs and prefilter
// skips included. Implementations must be safe for concurrent use.
type Ticker interface {
	Tick()
}

// Config holds the run parameters. It is copied at construction and never
// mutated afterwards.
type Config struct {
	// Fraction enables the k-mer prefilter when inside (0, 1]: the k-mer
	// width is floor(len(shorter sequence) * Fraction). Zero disables the
	// prefilter and every pair is aligned.
	Fraction float64

	// MinMatches is the shared k-mer occurrence count a pair needs to be
	// aligned. Zero keeps every pair, since any count satisfies it; a
	// filter that should skip anything needs MinMatches >= 1.
	MinMatches int

	// Threads is the worker count; <= 0 means runtime.NumCPU().
	Threads int

	// Backlog is the capacity of the handoff channel between workers and
	// the consumer; <= 0 means twice the worker count. Workers block
	// pushing into a full channel.
	Backlog int

	// Progress, when non-nil, is ticked once per enumerated pair.
	Progress Ticker
}

// Engine binds a Config to a scoring function.
type Engine struct {
	cfg   Config
	score scoring.Func
}

// New returns an Engine for cfg. The scoring function must be pure; it is
// called from every worker without synchronization.
func New(cfg Config, score scoring.Func) *Engine {
	return &Engine{cfg: cfg, score: score}
}

// Run compares every unique pair of input and forwards each Result to visit
// in arrival order from a single consumer goroutine. It blocks until the
// full pair set is processed, the context is canceled, or visit fails.
//
// It returns the number of results visit accepted. The first visit error is
// returned after the pipeline drains; later results are discarded rather
// than visited, so a broken sink aborts the run without deadlocking the
// workers. A canceled context wins over a visit error.
func (e *Engine) Run(ctx context.Context, input Sequences, visit func(Result) error) (int, error) {
	if e.cfg.Fraction < 0 || e.cfg.Fraction > 1 {
		return 0, fmt.Errorf("%w: got %v", ErrFraction, e.cfg.Fraction)
	}

	threads := e.cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	backlog := e.cfg.Backlog
	if backlog <= 0 {
		backlog = 2 * threads
	}

	type pair struct{ i, j int }
	jobs := make(chan pair, threads*2)
	results := make(chan Result, backlog)

	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case p, ok := <-jobs:
					if !ok {
						return
					}
					r, emit := e.compare(input, p.i, p.j)
					if e.cfg.Progress != nil {
						e.cfg.Progress.Tick()
					}
					if !emit {
						continue
					}
					select {
					case results <- r:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Single consumer. After the first visit error the channel still
	// drains, otherwise workers would block on the full backlog forever.
	var (
		cwg       sync.WaitGroup
		delivered int
		verr      error
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for r := range results {
			if verr != nil {
				continue
			}
			if err := visit(r); err != nil {
				verr = err
				continue
			}
			delivered++
		}
	}()

	pairs.Visit(input.Len(), func(i, j int) bool {
		select {
		case <-ctx.Done():
			return false
		case jobs <- pair{i: i, j: j}:
			return true
		}
	})

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if err := ctx.Err(); err != nil {
		return delivered, err
	}
	return delivered, verr
}

// compare evaluates one enumerated pair. Self-pairs report emit == false and
// produce no Result.
func (e *Engine) compare(input Sequences, i, j int) (Result, bool) {
	if i == j {
		return Result{}, false
	}
	query, subject := input.Seq(i), input.Seq(j)
	r := Result{
		QueryID:   input.ID(i),
		SubjectID: input.ID(j),
		Seq1Len:   len(query),
		Seq2Len:   len(subject),
	}
	start := time.Now()
	if e.cfg.Fraction == 0 || kmer.WorthAligning(query, subject, e.cfg.Fraction, e.cfg.MinMatches) {
		score := align.Global(query, subject, e.score)
		r.Score = &score
	}
	r.Elapsed = time.Since(start)
	return r, true
}
