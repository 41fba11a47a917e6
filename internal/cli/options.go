// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"github.com/PyEED/aligner/internal/cliutil"
)

// Scoring scheme names accepted by --scoring.
const (
	ScoringIdentity = "identity"
	ScoringBlosum62 = "blosum62"
	ScoringCustom   = "custom"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Input       string // positional: sequence file, or '-' for STDIN
	InputFormat string // auto | json | fasta

	// Prefilter
	Fraction   float64 // k-mer fraction of the shorter sequence; 0 disables
	MinMatches int

	// Scoring
	Scoring string // identity | blosum62 | custom
	Matrix  string // YAML matrix file, only with --scoring custom

	// Performance
	Threads int

	// Output
	Output string // file path; empty = STDOUT
	Format string // text | json | jsonl
	Sort   bool
	Header bool // true unless --no-header

	// Observability
	NoProgress  bool
	MetricsAddr string

	Quiet   bool
	Version bool
}

// Parse is the top-level call for CLI parsing.
func Parse(argv []string) (Options, error) { return ParseArgs(NewFlagSet("aligner"), argv) }

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool
	noHeader := false

	// Input
	fs.StringVar(&opt.InputFormat, "input-format", "auto", "input format: auto | json | fasta [auto]")

	// Prefilter
	fs.Float64Var(&opt.Fraction, "fraction", 0, "k-mer fraction of the shorter sequence (0 = no prefilter) [0]")
	fs.Float64Var(&opt.Fraction, "f", 0, "alias for --fraction")
	fs.IntVar(&opt.MinMatches, "min-matches", 0, "shared k-mers required to align a pair [0]")
	fs.IntVar(&opt.MinMatches, "m", 0, "alias for --min-matches")

	// Scoring
	fs.StringVar(&opt.Scoring, "scoring", ScoringIdentity, "scoring scheme: identity | blosum62 | custom ["+ScoringIdentity+"]")
	fs.StringVar(&opt.Scoring, "s", ScoringIdentity, "alias for --scoring")
	fs.StringVar(&opt.Matrix, "matrix", "", "YAML substitution matrix (requires --scoring custom)")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")
	fs.IntVar(&opt.Threads, "t", 0, "alias for --threads")

	// Output
	fs.StringVar(&opt.Output, "output", "", "write results to this file instead of STDOUT")
	fs.StringVar(&opt.Output, "o", "", "alias for --output")
	fs.StringVar(&opt.Format, "format", "text", "output format: text | json | jsonl [text]")
	fs.BoolVar(&opt.Sort, "sort", false, "sort outputs by (query_id, subject_id) [false]")
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")

	// Observability
	fs.BoolVar(&opt.NoProgress, "no-progress", false, "disable the progress bar [false]")
	fs.StringVar(&opt.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")

	fs.BoolVar(&opt.Quiet, "quiet", false, "log warnings and errors only, no progress bar [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias for --quiet")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "v", false, "alias for --version")
	fs.BoolVar(&help, "h", false, "show this help message [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	// Validation
	switch len(posArgs) {
	case 1:
		opt.Input = posArgs[0]
	case 0:
		return opt, errors.New("an INPUT file (or '-' for STDIN) is required")
	default:
		return opt, fmt.Errorf("expected one INPUT argument, got %d", len(posArgs))
	}
	if opt.Fraction < 0 || opt.Fraction > 1 {
		return opt, errors.New("--fraction must be within [0, 1]")
	}
	if opt.MinMatches < 0 {
		return opt, errors.New("--min-matches must be ≥ 0")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	switch opt.Format {
	case "text", "json", "jsonl":
	default:
		return opt, fmt.Errorf("invalid --format %q", opt.Format)
	}
	switch opt.InputFormat {
	case "auto", "json", "fasta":
	default:
		return opt, fmt.Errorf("invalid --input-format %q", opt.InputFormat)
	}
	switch opt.Scoring {
	case ScoringIdentity, ScoringBlosum62:
		if opt.Matrix != "" {
			return opt, errors.New("--matrix requires --scoring custom")
		}
	case ScoringCustom:
		if opt.Matrix == "" {
			return opt, errors.New("--scoring custom requires --matrix")
		}
	default:
		return opt, fmt.Errorf("invalid --scoring %q", opt.Scoring)
	}
	return opt, nil
}
