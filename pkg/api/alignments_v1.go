// pkg/api/alignments_v1.go
package api

// AlignmentV1 is the stable JSON/JSONL schema for pairwise alignment results.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
//
// Score is a pointer so that a pair skipped by the prefilter serialises as
// JSON null rather than 0, which is a legal alignment score.
type AlignmentV1 struct {
	QueryID   string `json:"query_id"`
	SubjectID string `json:"subject_id"`
	Score     *int   `json:"score"`
	Seq1Len   int    `json:"seq1_len"`
	Seq2Len   int    `json:"seq2_len"`
}
