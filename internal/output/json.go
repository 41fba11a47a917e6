// internal/output/json.go
package output

import (
	"io"

	"github.com/PyEED/aligner/core/engine"
	"github.com/PyEED/aligner/internal/jsonutil"
	"github.com/PyEED/aligner/pkg/api"
)

// ToAPIAlignment converts a domain Result to the stable wire schema (v1).
// The score is copied by value so the wire record never aliases the domain
// result.
func ToAPIAlignment(r engine.Result) api.AlignmentV1 {
	v := api.AlignmentV1{
		QueryID:   r.QueryID,
		SubjectID: r.SubjectID,
		Seq1Len:   r.Seq1Len,
		Seq2Len:   r.Seq2Len,
	}
	if r.Score != nil {
		s := *r.Score
		v.Score = &s
	}
	return v
}

func toAPIAlignments(list []engine.Result) []api.AlignmentV1 {
	out := make([]api.AlignmentV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIAlignment(r))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 alignments (pretty-indented).
// An empty result set renders as [], never null.
func WriteJSON(w io.Writer, list []engine.Result) error {
	return jsonutil.EncodePretty(w, toAPIAlignments(list))
}

// WriteJSONL writes one compact v1 JSON line per alignment.
func WriteJSONL(w io.Writer, list []engine.Result) error {
	return jsonutil.EncodeLines(w, toAPIAlignments(list))
}
