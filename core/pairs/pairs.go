// core/pairs/pairs.go

// Package pairs enumerates the unique index pairs of an n-element set in a
// fixed order, so that runs over the same input always walk the same pairs.
package pairs

// Count returns the number of (i, j) pairs with 0 <= j <= i < n, self-pairs
// included: n*(n+1)/2.
func Count(n int) int64 {
	if n <= 0 {
		return 0
	}
	return int64(n) * int64(n+1) / 2
}

// Visit calls fn for every pair (i, j) with 0 <= j <= i < n, in row order:
// (0,0), (1,0), (1,1), (2,0), ... fn returning false stops the walk.
func Visit(n int, fn func(i, j int) bool) {
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			if !fn(i, j) {
				return
			}
		}
	}
}
