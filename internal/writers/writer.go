// internal/writers/writer.go
package writers

import (
	"fmt"
	"io"

	"github.com/PyEED/aligner/core/engine"
	"github.com/PyEED/aligner/internal/common"
	"github.com/PyEED/aligner/internal/output"
)

// StartAlignmentWriter spins up a writer goroutine for engine.Result items.
// The returned channel is the sink; close it when done. The error channel
// delivers exactly one value once everything reaching out has been written.
//
// Unsorted JSONL streams line by line; every other format/sort combination
// buffers, because JSON arrays and sorted output need the full result set.
func StartAlignmentWriter(out io.Writer, format string, sort, header bool, bufSize int) (chan<- engine.Result, <-chan error) {
	if format == output.FormatJSONL && !sort {
		return startJSONL(out, bufSize)
	}

	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.Result, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case output.FormatJSON:
			buf := drain(in)
			if sort {
				common.SortAlignments(buf)
			}
			err = output.WriteJSON(out, buf)

		case output.FormatJSONL:
			buf := drain(in)
			common.SortAlignments(buf)
			err = output.WriteJSONL(out, buf)

		case output.FormatText:
			if sort {
				buf := drain(in)
				common.SortAlignments(buf)
				err = output.WriteText(out, buf, header)
			} else {
				err = output.StreamText(out, in, header)
				drain(in)
			}

		default:
			drain(in)
			err = fmt.Errorf("unsupported output format %q", format)
		}
		errCh <- err
	}()

	return in, errCh
}

// drain consumes the channel to completion so producers never block on a
// finished writer.
func drain(in <-chan engine.Result) []engine.Result {
	var buf []engine.Result
	for r := range in {
		buf = append(buf, r)
	}
	return buf
}
