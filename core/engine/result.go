// core/engine/result.go
package engine

import "time"

// Result is the outcome of comparing one enumerated sequence pair.
//
// Score is nil exactly when the k-mer prefilter skipped the pair; with the
// prefilter disabled it is always set. Seq1Len and Seq2Len are the true
// input lengths either way.
type Result struct {
	QueryID   string
	SubjectID string
	Score     *int
	Seq1Len   int
	Seq2Len   int

	// Elapsed is the worker time spent on this pair (prefilter plus
	// alignment). Observability only; it never reaches serialized output.
	Elapsed time.Duration
}
