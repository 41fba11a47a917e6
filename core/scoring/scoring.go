// core/scoring/scoring.go
package scoring

import "fmt"

// Func scores a single residue pair. Implementations must be pure and safe
// for concurrent use; the engine calls them from many goroutines at once.
type Func func(a, b byte) int

// Identity scores +1 for equal residue bytes and -1 otherwise. Comparison is
// exact: case is not folded here, loaders normalise if they need to.
func Identity(a, b byte) int {
	if a == b {
		return 1
	}
	return -1
}

// ByName resolves a built-in scheme by its CLI name.
func ByName(name string) (Func, error) {
	switch name {
	case "identity":
		return Identity, nil
	case "blosum62":
		return Blosum62, nil
	default:
		return nil, fmt.Errorf("unknown scoring scheme %q (want identity or blosum62)", name)
	}
}
