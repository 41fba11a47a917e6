// internal/progress/progress.go
package progress

import (
	"io"

	"github.com/cheggaaa/pb/v3"
)

// Bar renders pair progress to a terminal. It satisfies engine.Ticker, so
// the engine can report completed pairs without knowing how they are drawn.
type Bar struct {
	bar *pb.ProgressBar
}

// Start begins rendering a bar for total units on w (normally stderr).
func Start(total int64, w io.Writer) *Bar {
	bar := pb.Full.Start64(total)
	bar.Set(pb.Bytes, false)
	bar.SetWriter(w)
	return &Bar{bar: bar}
}

// Tick records one completed pair.
func (b *Bar) Tick() { b.bar.Increment() }

// Finish stops the bar and draws its final state.
func (b *Bar) Finish() { b.bar.Finish() }

// Current reports ticks so far.
func (b *Bar) Current() int64 { return b.bar.Current() }
