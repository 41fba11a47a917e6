package common

import (
	"testing"

	"github.com/PyEED/aligner/core/engine"
)

func TestSortAlignments(t *testing.T) {
	rs := []engine.Result{
		{QueryID: "c", SubjectID: "b"},
		{QueryID: "b", SubjectID: "a"},
		{QueryID: "c", SubjectID: "a"},
	}
	SortAlignments(rs)
	if rs[0].QueryID != "b" {
		t.Fatalf("unexpected order: %+v", rs)
	}
	// For the query tie, subject "a" should come before "b".
	if rs[1].SubjectID != "a" || rs[2].SubjectID != "b" {
		t.Fatalf("tie-break by subject failed: got %s then %s", rs[1].SubjectID, rs[2].SubjectID)
	}
}

func TestLessAlignmentIrreflexive(t *testing.T) {
	r := engine.Result{QueryID: "q", SubjectID: "s"}
	if LessAlignment(r, r) {
		t.Fatal("LessAlignment(r, r) must be false")
	}
}
