// internal/writers/jsonl.go
package writers

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"

	"github.com/PyEED/aligner/core/engine"
	"github.com/PyEED/aligner/internal/output"
)

// Buffered writers are pooled across runs; 64 KiB keeps syscalls rare even
// when a run emits millions of result lines.
var bwPool = sync.Pool{
	New: func() any { return bufio.NewWriterSize(io.Discard, 64<<10) },
}

// startJSONL streams one compact v1 JSON line per result as results arrive.
// After a failure it keeps draining its channel so producers never block on
// a dead writer; the first error wins. A broken pipe on the final flush is
// not an error.
func startJSONL(out io.Writer, bufSize int) (chan<- engine.Result, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.Result, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bwPool.Get().(*bufio.Writer)
		bw.Reset(out)
		defer func() {
			bw.Reset(io.Discard) // drop the reference to out before pooling
			bwPool.Put(bw)
		}()

		enc := json.NewEncoder(bw)
		for r := range in {
			if err := enc.Encode(output.ToAPIAlignment(r)); err != nil {
				for range in {
				}
				done <- err
				return
			}
		}
		if err := bw.Flush(); err != nil && !IsBrokenPipe(err) {
			done <- err
			return
		}
		done <- nil
	}()

	return in, done
}
