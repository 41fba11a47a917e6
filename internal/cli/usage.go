// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"
	"io"

	"github.com/PyEED/aligner/internal/version"
)

// installUsage installs the grouped help text on fs. Flag defaults are
// looked up at print time, after ParseArgs has registered them.
func installUsage(fs *flag.FlagSet, name string) {
	fs.Usage = func() { printUsage(fs.Output(), fs, name) }
}

func printUsage(out io.Writer, fs *flag.FlagSet, name string) {
	def := func(flagName string) string {
		if f := fs.Lookup(flagName); f != nil {
			return f.DefValue
		}
		return ""
	}

	// Header
	fmt.Fprintf(out, "%s – streaming all-vs-all pairwise sequence alignment\n\n", name)
	fmt.Fprintln(out, "Project: github.com/PyEED/aligner")
	fmt.Fprintln(out, "License: MIT")
	fmt.Fprintf(out, "Version: %s\n\n", version.Version)

	fmt.Fprintf(out, "Usage:\n  %s [flags] INPUT\n\n", name)
	fmt.Fprintln(out, "  INPUT is a JSON object ({\"id\": \"sequence\", ...}) or FASTA file,")
	fmt.Fprintln(out, "  or '-' to read from STDIN.")

	fmt.Fprintln(out, "\nInput:")
	fmt.Fprintf(out, "      --input-format string   Input format: auto | json | fasta [%s]\n", def("input-format"))

	fmt.Fprintln(out, "\nPrefilter:")
	fmt.Fprintf(out, "  -f, --fraction float        K-mer length as a fraction of the shorter sequence (0=off) [%s]\n", def("fraction"))
	fmt.Fprintf(out, "  -m, --min-matches int       Shared k-mer count required to align a pair [%s]\n", def("min-matches"))

	fmt.Fprintln(out, "\nScoring:")
	fmt.Fprintf(out, "  -s, --scoring string        Scoring scheme: identity | blosum62 | custom [%s]\n", def("scoring"))
	fmt.Fprintln(out, "      --matrix file           YAML substitution matrix (requires --scoring custom)")

	fmt.Fprintln(out, "\nPerformance:")
	fmt.Fprintf(out, "  -t, --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))

	fmt.Fprintln(out, "\nOutput:")
	fmt.Fprintln(out, "  -o, --output file           Write results to file instead of STDOUT")
	fmt.Fprintf(out, "      --format string         Output: text | json | jsonl [%s]\n", def("format"))
	fmt.Fprintf(out, "      --sort                  Sort outputs by (query_id, subject_id) [%s]\n", def("sort"))
	fmt.Fprintf(out, "      --no-header             Suppress header line in text/TSV [%s]\n", def("no-header"))

	fmt.Fprintln(out, "\nObservability:")
	fmt.Fprintf(out, "      --no-progress           Disable the progress bar [%s]\n", def("no-progress"))
	fmt.Fprintln(out, "      --metrics-addr addr     Serve Prometheus metrics on addr (e.g. :9090)")

	fmt.Fprintln(out, "\nMiscellaneous:")
	fmt.Fprintf(out, "  -q, --quiet                 Log warnings and errors only, no progress bar [%s]\n", def("quiet"))
	fmt.Fprintln(out, "  -v, --version               Print version and exit")
	fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
}
