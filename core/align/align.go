// core/align/align.go

// Package align implements global pairwise alignment scoring with affine gap
// penalties (Gotoh three-state recurrence). Only the optimal score is
// computed; no traceback is kept, so memory stays linear in the shorter
// sequence.
package align

import (
	"math"

	"github.com/PyEED/aligner/core/scoring"
)

// Affine gap penalties: a gap of length L costs GapOpen + (L-1)*GapExtend.
const (
	GapOpen   = -10
	GapExtend = -1
)

// Sentinel for unreachable DP states. Half of MinInt32 so that adding a
// residue score or gap penalty can never wrap.
const negInf = math.MinInt32 / 2

// Global returns the optimal global alignment score of s1 against s2 under
// the given scoring function.
//
// Three DP states per cell: mm ends in a residue pair, gx ends in a gap in
// s2 (s1 residue unpaired), gy ends in a gap in s1. A gap state extends
// itself or opens after a residue pair; gap-to-gap switches go through mm.
func Global(s1, s2 string, score scoring.Func) int {
	a, b := s1, s2
	if len(b) > len(a) {
		// Swap so the shorter sequence is the inner dimension. The score is
		// unchanged as long as the scoring function is transposed with it.
		a, b = b, a
		orig := score
		score = func(x, y byte) int { return orig(y, x) }
	}
	n, m := len(a), len(b)
	if m == 0 {
		if n == 0 {
			return 0
		}
		return GapOpen + (n-1)*GapExtend
	}

	// Row i-1 and row i of each state, swapped each iteration.
	mmPrev := make([]int, m+1)
	gxPrev := make([]int, m+1)
	gyPrev := make([]int, m+1)
	mmCur := make([]int, m+1)
	gxCur := make([]int, m+1)
	gyCur := make([]int, m+1)

	mmPrev[0] = 0
	gxPrev[0] = negInf
	gyPrev[0] = negInf
	for j := 1; j <= m; j++ {
		mmPrev[j] = negInf
		gxPrev[j] = negInf
		gyPrev[j] = GapOpen + (j-1)*GapExtend
	}

	for i := 1; i <= n; i++ {
		mmCur[0] = negInf
		gxCur[0] = GapOpen + (i-1)*GapExtend
		gyCur[0] = negInf
		ai := a[i-1]
		for j := 1; j <= m; j++ {
			s := score(ai, b[j-1])
			mmCur[j] = max3(mmPrev[j-1], gxPrev[j-1], gyPrev[j-1]) + s
			gxCur[j] = max2(mmPrev[j]+GapOpen, gxPrev[j]+GapExtend)
			gyCur[j] = max2(mmCur[j-1]+GapOpen, gyCur[j-1]+GapExtend)
		}
		mmPrev, mmCur = mmCur, mmPrev
		gxPrev, gxCur = gxCur, gxPrev
		gyPrev, gyCur = gyCur, gyPrev
	}
	return max3(mmPrev[m], gxPrev[m], gyPrev[m])
}

func max2(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func max3(a, b, c int) int {
	switch {
	case a >= b && a >= c:
		return a
	case b >= c:
		return b
	}
	return c
}
