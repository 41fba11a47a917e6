// core/scoring/matrix.go
package scoring

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Matrix is a substitution matrix loaded from a YAML document:
//
//	default: -4
//	pairs:
//	  AA: 4
//	  AG: -1
//
// A pair key is exactly two residue bytes. Lookup is symmetric unless the
// document lists both orientations, in which case each orientation keeps its
// own score. Residues not covered by pairs score Default.
type Matrix struct {
	Default int            `yaml:"default"`
	Pairs   map[string]int `yaml:"pairs"`
}

// ParseMatrix decodes a YAML matrix document and validates its pair keys.
func ParseMatrix(data []byte) (*Matrix, error) {
	var m Matrix
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse scoring matrix: %w", err)
	}
	for k, v := range m.Pairs {
		if len(k) != 2 {
			return nil, fmt.Errorf("scoring matrix: pair key %q must be exactly two residues", k)
		}
		// The flattened table is int16.
		if v < math.MinInt16 || v > math.MaxInt16 {
			return nil, fmt.Errorf("scoring matrix: score %d for %q out of range", v, k)
		}
	}
	if m.Default < math.MinInt16 || m.Default > math.MaxInt16 {
		return nil, fmt.Errorf("scoring matrix: default score %d out of range", m.Default)
	}
	return &m, nil
}

// LoadMatrix reads and parses a YAML matrix file.
func LoadMatrix(path string) (*Matrix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scoring matrix: %w", err)
	}
	m, err := ParseMatrix(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Func flattens the matrix into a dense byte-pair table so the aligner's
// inner loop never touches a map.
func (m *Matrix) Func() Func {
	tab := make([][]int16, 256)
	for i := range tab {
		row := make([]int16, 256)
		for j := range row {
			row[j] = int16(m.Default)
		}
		tab[i] = row
	}
	for k, v := range m.Pairs {
		a, b := k[0], k[1]
		tab[a][b] = int16(v)
		if _, both := m.Pairs[string([]byte{b, a})]; !both {
			tab[b][a] = int16(v)
		}
	}
	return func(a, b byte) int { return int(tab[a][b]) }
}
