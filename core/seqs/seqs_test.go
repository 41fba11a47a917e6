// core/seqs/seqs_test.go
package seqs

import (
	"strings"
	"testing"
)

func TestCollectionOrderAndOverwrite(t *testing.T) {
	c := New()
	c.Add("b", "BBBB")
	c.Add("a", "AAAA")
	c.Add("b", "CCCC") // replaces the sequence, keeps the slot

	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
	if c.ID(0) != "b" || c.Seq(0) != "CCCC" {
		t.Errorf("slot 0 = %q/%q, want b/CCCC", c.ID(0), c.Seq(0))
	}
	if c.ID(1) != "a" || c.Seq(1) != "AAAA" {
		t.Errorf("slot 1 = %q/%q, want a/AAAA", c.ID(1), c.Seq(1))
	}
	if s, ok := c.Get("a"); !ok || s != "AAAA" {
		t.Errorf("Get(a) = %q,%v", s, ok)
	}
	if _, ok := c.Get("zz"); ok {
		t.Error("Get(zz) should miss")
	}
}

func TestReadJSONPreservesOrder(t *testing.T) {
	c, err := ReadJSON(strings.NewReader(`{"z":"AAA","a":"CCC","m":"GGG"}`))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	want := []string{"z", "a", "m"}
	if c.Len() != len(want) {
		t.Fatalf("Len = %d, want %d", c.Len(), len(want))
	}
	for i, id := range want {
		if c.ID(i) != id {
			t.Errorf("ID(%d) = %q, want %q", i, c.ID(i), id)
		}
	}
}

func TestReadJSONDuplicateKeys(t *testing.T) {
	c, err := ReadJSON(strings.NewReader(`{"x":"AAA","y":"CCC","x":"GGG"}`))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
	if c.ID(0) != "x" || c.Seq(0) != "GGG" {
		t.Errorf("duplicate key: slot 0 = %q/%q, want x/GGG (first slot, last value)", c.ID(0), c.Seq(0))
	}
}

func TestReadJSONErrors(t *testing.T) {
	bad := []string{
		`["a","b"]`,        // not an object
		`{"x":5}`,          // value not a string
		`{"x":"A"} extra`,  // trailing junk
		`{"x":"A"`,         // truncated
		``,                 // empty
	}
	for _, doc := range bad {
		if _, err := ReadJSON(strings.NewReader(doc)); err == nil {
			t.Errorf("ReadJSON(%q): expected error", doc)
		}
	}
}

func TestReadFASTA(t *testing.T) {
	const doc = `>seq1 some description
ACGT
ACGT
>seq2
NNNN
`
	c, err := ReadFASTA(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadFASTA: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
	if c.ID(0) != "seq1" || c.Seq(0) != "ACGTACGT" {
		t.Errorf("record 0 = %q/%q", c.ID(0), c.Seq(0))
	}
	if c.ID(1) != "seq2" || c.Seq(1) != "NNNN" {
		t.Errorf("record 1 = %q/%q", c.ID(1), c.Seq(1))
	}
}

func TestReadFASTADataBeforeHeader(t *testing.T) {
	if _, err := ReadFASTA(strings.NewReader("ACGT\n")); err == nil {
		t.Fatal("expected error for headerless data")
	}
}
