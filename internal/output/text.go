// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"github.com/PyEED/aligner/core/engine"
)

// WriteText prints one TSV line per result, with an optional header.
func WriteText(w io.Writer, list []engine.Result, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}

// StreamText prints results as they arrive, with an optional header.
// On error the channel is left to the caller to drain.
func StreamText(w io.Writer, in <-chan engine.Result, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for r := range in {
		if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}
