// core/seqs/fasta.go
package seqs

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ReadFASTA parses whole FASTA records from r. The record ID is the header
// token up to the first whitespace; sequence lines are concatenated.
func ReadFASTA(r io.Reader) (*Collection, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	c := New()
	var (
		id   string
		seq  []byte
		open bool
	)
	flush := func() {
		if open {
			c.Add(id, string(seq))
		}
	}
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			flush()
			id = headerID(line[1:])
			seq = seq[:0]
			open = true
			continue
		}
		if !open {
			return nil, errors.New("fasta: sequence data before first header")
		}
		seq = append(seq, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta scan: %w", err)
	}
	flush()
	return c, nil
}

func headerID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
