package output

// Output format names accepted by --format.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// TSVHeader is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "query_id\tsubject_id\tscore\tseq1_len\tseq2_len"

// SkipScore is the text-format score column for pairs the prefilter skipped.
// JSON formats render null instead; -1 is only a sentinel in TSV.
const SkipScore = "-1"
