// Package engine drives all unique sequence pairs of an input collection
// through the k-mer prefilter and the global aligner on a bounded worker
// pool, streaming results to a single consumer as workers finish them.
//
// Contract:
//   - Every unordered pair of distinct input entries produces exactly one
//     Result, at most once, for any worker count. Self-pairs are enumerated
//     (they tick progress) but never compared.
//   - Result arrival order is whatever the workers produce; it is not the
//     enumeration order. Callers needing a stable order sort downstream.
//   - The handoff channel between workers and the consumer is bounded
//     (Config.Backlog); workers block when the consumer falls behind, so a
//     slow sink throttles the run instead of growing memory with O(n²)
//     buffered results.
//
// The package never imports app, cli, writers, or output; it stays
// domain-only. Serialized forms live in pkg/api.
package engine
