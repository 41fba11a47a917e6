// core/seqs/json.go
package seqs

import (
	"encoding/json"
	"fmt"
	"io"
)

// ReadJSON parses a collection from a JSON object of id -> sequence:
//
//	{"Q6A0I3": "MAVMT...", "ADV92528.1": "MANPY..."}
//
// Keys keep document order. encoding/json's map type would randomise it, so
// the object is walked token by token instead.
func ReadJSON(r io.Reader) (*Collection, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("sequence JSON: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("sequence JSON: expected top-level object, got %v", tok)
	}

	c := New()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("sequence JSON: %w", err)
		}
		id, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("sequence JSON: unexpected key token %v", keyTok)
		}
		var seq string
		if err := dec.Decode(&seq); err != nil {
			return nil, fmt.Errorf("sequence JSON: value of %q: %w", id, err)
		}
		c.Add(id, seq)
	}
	if _, err := dec.Token(); err != nil { // closing '}'
		return nil, fmt.Errorf("sequence JSON: %w", err)
	}
	if tok, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("sequence JSON: trailing data after object: %v", tok)
	}
	return c, nil
}
