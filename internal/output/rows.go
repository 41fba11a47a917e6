// internal/output/rows.go
package output

import (
	"fmt"
	"strconv"

	"github.com/PyEED/aligner/core/engine"
)

// ScoreText renders the score column; skipped pairs get SkipScore.
func ScoreText(score *int) string {
	if score == nil {
		return SkipScore
	}
	return strconv.Itoa(*score)
}

// FormatRowTSV returns the five result columns (no trailing newline).
func FormatRowTSV(r engine.Result) string {
	return fmt.Sprintf("%s\t%s\t%s\t%d\t%d",
		r.QueryID, r.SubjectID, ScoreText(r.Score), r.Seq1Len, r.Seq2Len)
}
