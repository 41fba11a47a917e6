// core/seqs/seqs.go

// Package seqs holds an ordered collection of named sequences plus the
// loaders that build one from JSON or FASTA input. Order is the order IDs
// were first observed, so downstream pair enumeration is reproducible.
package seqs

// Collection is an ordered set of id -> sequence entries.
type Collection struct {
	ids  []string
	vals []string
	idx  map[string]int
}

// New returns an empty collection.
func New() *Collection {
	return &Collection{idx: make(map[string]int)}
}

// Add appends a sequence. A duplicate id replaces the stored sequence but
// keeps the position of its first occurrence.
func (c *Collection) Add(id, seq string) {
	if i, ok := c.idx[id]; ok {
		c.vals[i] = seq
		return
	}
	c.idx[id] = len(c.ids)
	c.ids = append(c.ids, id)
	c.vals = append(c.vals, seq)
}

// Len returns the number of entries.
func (c *Collection) Len() int { return len(c.ids) }

// ID returns the identifier at position i.
func (c *Collection) ID(i int) string { return c.ids[i] }

// Seq returns the sequence at position i.
func (c *Collection) Seq(i int) string { return c.vals[i] }

// Get looks up a sequence by identifier.
func (c *Collection) Get(id string) (string, bool) {
	i, ok := c.idx[id]
	if !ok {
		return "", false
	}
	return c.vals[i], true
}

// IDs returns the identifiers in input order. The slice is shared with the
// collection and must not be modified.
func (c *Collection) IDs() []string { return c.ids }
