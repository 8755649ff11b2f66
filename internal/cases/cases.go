// Package cases loads named side triples from YAML batch files.
//
// File format:
//
//	cases:
//	  - name: right
//	    sides: [3, 4, 5]
//	  - name: flat
//	    sides: [3, 3, 6]
package cases

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/trilath/triangle"
)

var (
	// ErrNoCases indicates the document has no entries under "cases".
	ErrNoCases = errors.New("cases: file contains no cases")
	// ErrSideCount indicates a case without exactly three sides.
	ErrSideCount = errors.New("cases: each case needs exactly three sides")
)

// Case is one named triple.
type Case struct {
	Name  string
	Sides triangle.Sides
}

type fileDTO struct {
	Cases []caseDTO `yaml:"cases"`
}

type caseDTO struct {
	Name  string    `yaml:"name"`
	Sides []float64 `yaml:"sides"`
}

// LoadFile reads and decodes the batch file at path.
func LoadFile(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	out, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

// Decode parses a batch document from r. Unnamed cases are named
// "case-<n>" with n starting at 1.
func Decode(r io.Reader) ([]Case, error) {
	var dto fileDTO
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoCases
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if len(dto.Cases) == 0 {
		return nil, ErrNoCases
	}

	out := make([]Case, 0, len(dto.Cases))
	for i, c := range dto.Cases {
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("case-%d", i+1)
		}
		if len(c.Sides) != 3 {
			return nil, fmt.Errorf("%w: %q has %d", ErrSideCount, name, len(c.Sides))
		}
		out = append(out, Case{
			Name:  name,
			Sides: triangle.NewSides(c.Sides[0], c.Sides[1], c.Sides[2]),
		})
	}
	return out, nil
}
