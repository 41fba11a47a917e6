// internal/cli/options_test.go
package cli

import (
	"errors"
	"flag"
	"io"
	"testing"
)

func newFS() *flag.FlagSet {
	fs := NewFlagSet("test")
	fs.SetOutput(io.Discard)
	return fs
}

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestDefaultsOK(t *testing.T) {
	o := mustParse(t, "seqs.json")
	if o.Input != "seqs.json" || o.Fraction != 0 || o.MinMatches != 0 {
		t.Errorf("bad defaults %+v", o)
	}
	if o.Scoring != ScoringIdentity || o.Format != "text" || o.InputFormat != "auto" {
		t.Errorf("bad defaults %+v", o)
	}
	if !o.Header {
		t.Errorf("header should default on")
	}
}

func TestPositionalAfterFlags(t *testing.T) {
	o := mustParse(t, "-f", "0.5", "-m", "2", "seqs.json")
	if o.Input != "seqs.json" || o.Fraction != 0.5 || o.MinMatches != 2 {
		t.Errorf("bad parse %+v", o)
	}
}

func TestFlagsAfterPositional(t *testing.T) {
	o := mustParse(t, "seqs.json", "--fraction", "0.25", "--sort", "--no-header")
	if o.Input != "seqs.json" || o.Fraction != 0.25 || !o.Sort || o.Header {
		t.Errorf("bad parse %+v", o)
	}
}

func TestStdinDash(t *testing.T) {
	o := mustParse(t, "-", "--format", "jsonl")
	if o.Input != "-" || o.Format != "jsonl" {
		t.Errorf("bad parse %+v", o)
	}
}

func TestAliasesMatchLongForms(t *testing.T) {
	a := mustParse(t, "-f", "0.5", "-m", "3", "-s", "blosum62", "-t", "4", "-o", "out.tsv", "-q", "in.json")
	b := mustParse(t, "--fraction", "0.5", "--min-matches", "3", "--scoring", "blosum62",
		"--threads", "4", "--output", "out.tsv", "--quiet", "in.json")
	if a != b {
		t.Errorf("alias parse mismatch:\n a=%+v\n b=%+v", a, b)
	}
}

func TestCustomScoringNeedsMatrix(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-s", "custom", "in.json"}); err == nil {
		t.Fatal("expected error: custom without --matrix")
	}
	o := mustParse(t, "-s", "custom", "--matrix", "m.yaml", "in.json")
	if o.Matrix != "m.yaml" {
		t.Errorf("bad parse %+v", o)
	}
}

func TestMatrixNeedsCustomScoring(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--matrix", "m.yaml", "in.json"}); err == nil {
		t.Fatal("expected error: --matrix without --scoring custom")
	}
}

func TestErrorMissingInput(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-f", "0.5"}); err == nil {
		t.Fatal("expected error when INPUT missing")
	}
}

func TestErrorExtraPositionals(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"a.json", "b.json"}); err == nil {
		t.Fatal("expected error with two positionals")
	}
}

func TestErrorFractionOutOfRange(t *testing.T) {
	for _, f := range []string{"-0.1", "1.5", "5"} {
		if _, err := ParseArgs(newFS(), []string{"-f", f, "in.json"}); err == nil {
			t.Errorf("fraction %s should be rejected", f)
		}
	}
}

func TestErrorNegativeMinMatches(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-m", "-1", "in.json"}); err == nil {
		t.Fatal("expected error for negative --min-matches")
	}
}

func TestErrorNegativeThreads(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-t", "-2", "in.json"}); err == nil {
		t.Fatal("expected error for negative --threads")
	}
}

func TestErrorBadFormat(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--format", "xml", "in.json"}); err == nil {
		t.Fatal("expected error for unknown --format")
	}
}

func TestErrorBadInputFormat(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--input-format", "csv", "in.json"}); err == nil {
		t.Fatal("expected error for unknown --input-format")
	}
}

func TestErrorBadScoring(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-s", "pam250", "in.json"}); err == nil {
		t.Fatal("expected error for unknown --scoring")
	}
}

func TestHelpReturnsErrHelp(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"-h"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("want flag.ErrHelp, got %v", err)
	}
}

func TestVersionSkipsValidation(t *testing.T) {
	o := mustParse(t, "-v")
	if !o.Version {
		t.Errorf("version flag not set: %+v", o)
	}
}
