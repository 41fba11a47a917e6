// Package writers turns alignment results into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (TSV header, JSON/JSONL shapes).
//   - Engine stays domain-only; app stays orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
