// core/kmer/kmer.go

// Package kmer implements the shared k-mer prefilter used to skip alignments
// between sequence pairs that cannot be meaningfully similar.
package kmer

// CountShared returns the number of shared k-mer occurrences between query
// and subject: every (query position, subject position) pair whose k-length
// windows are byte-identical counts once. k <= 0 or k longer than either
// sequence yields 0.
func CountShared(query, subject string, k int) int {
	if k <= 0 || k > len(query) || k > len(subject) {
		return 0
	}
	idx := make(map[string]int, len(query)-k+1)
	for i := 0; i+k <= len(query); i++ {
		idx[query[i:i+k]]++
	}
	n := 0
	for i := 0; i+k <= len(subject); i++ {
		n += idx[subject[i:i+k]]
	}
	return n
}

// WorthAligning reports whether a pair passes the prefilter. The shorter
// sequence is the query (seq1 on ties); k is floor(len(query) * fraction).
// A pair passes when the shared k-mer count is at least minMatches.
//
// Degenerate settings keep the filter permissive: k == 0 (tiny query or tiny
// fraction) passes everything, and minMatches == 0 makes the filter a no-op
// because every count satisfies the threshold.
func WorthAligning(seq1, seq2 string, fraction float64, minMatches int) bool {
	query, subject := seq1, seq2
	if len(seq2) < len(seq1) {
		query, subject = seq2, seq1
	}
	k := int(float64(len(query)) * fraction)
	if k <= 0 {
		return true
	}
	return CountShared(query, subject, k) >= minMatches
}
