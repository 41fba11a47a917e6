// core/seqs/open.go
package seqs

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Format selects the input parser.
type Format string

const (
	FormatAuto  Format = "auto"
	FormatJSON  Format = "json"
	FormatFASTA Format = "fasta"
)

// Load reads a collection from path ("-" means stdin), transparently
// decompressing gzip input.
func Load(path string, format Format) (*Collection, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	c, err := Read(rc, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Read parses a collection from r. FormatAuto sniffs the first non-blank
// byte: '>' means FASTA, anything else is treated as JSON.
func Read(r io.Reader, format Format) (*Collection, error) {
	switch format {
	case FormatJSON:
		return ReadJSON(r)
	case FormatFASTA:
		return ReadFASTA(r)
	case FormatAuto, "":
		br := bufio.NewReader(r)
		first, err := peekContent(br)
		if err != nil {
			return nil, err
		}
		if first == '>' {
			return ReadFASTA(br)
		}
		return ReadJSON(br)
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
}

// peekContent skips leading whitespace and returns the first content byte
// without consuming it.
func peekContent(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.Peek(1)
		if err == io.EOF {
			return 0, errors.New("empty input")
		}
		if err != nil {
			return 0, err
		}
		switch b[0] {
		case ' ', '\t', '\r', '\n':
			_, _ = br.ReadByte()
		default:
			return b[0], nil
		}
	}
}

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// openReader handles "-" (stdin) and gzip, detected by magic number
// (1F 8B) or by .gz suffix.
func openReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	_, _ = fh.Seek(0, io.SeekStart)
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return fh, nil
}
