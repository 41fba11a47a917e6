// internal/common/sort.go
package common

import (
	"sort"

	"github.com/PyEED/aligner/core/engine"
)

// LessAlignment defines a stable order for results (for --sort).
func LessAlignment(a, b engine.Result) bool {
	if a.QueryID != b.QueryID {
		return a.QueryID < b.QueryID
	}
	return a.SubjectID < b.SubjectID
}

func SortAlignments(rs []engine.Result) {
	sort.Slice(rs, func(i, j int) bool { return LessAlignment(rs[i], rs[j]) })
}
