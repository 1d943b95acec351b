// Package extract streams rows out of the flat tabular extract files.
//
// Each extract is UTF-8 CSV: one header row followed by data rows. Header
// cells for typed columns carry a type annotation in the form "name:type";
// a bare cell is a plain string column. The annotation selects the coercion
// rule downstream and is never stored as data.
package extract

import (
	"fmt"
	"strings"

	"github.com/baysidedata/parcelgraph/internal/coerce"
)

type Column struct {
	Name string
	Type coerce.Type
}

// Schema is the ordered column list parsed from an extract header row.
type Schema []Column

// ParseHeader converts raw header cells into a Schema. Duplicate column
// names and unknown type annotations are errors.
func ParseHeader(cells []string) (Schema, error) {
	schema := make(Schema, 0, len(cells))
	seen := make(map[string]bool, len(cells))
	for i, cell := range cells {
		name := strings.TrimSpace(cell)
		typ := coerce.String
		if idx := strings.IndexByte(name, ':'); idx >= 0 {
			annotation := name[idx+1:]
			name = strings.TrimSpace(name[:idx])
			parsed, err := coerce.ParseType(strings.TrimSpace(annotation))
			if err != nil {
				return nil, fmt.Errorf("header column %d: %w", i+1, err)
			}
			typ = parsed
		}
		if name == "" {
			return nil, fmt.Errorf("header column %d: empty column name", i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("header column %d: duplicate column %q", i+1, name)
		}
		seen[name] = true
		schema = append(schema, Column{Name: name, Type: typ})
	}
	return schema, nil
}

// Index returns the position of the named column, or -1.
func (s Schema) Index(name string) int {
	for i, c := range s {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Column returns the named column and whether it exists.
func (s Schema) Column(name string) (Column, bool) {
	if i := s.Index(name); i >= 0 {
		return s[i], true
	}
	return Column{}, false
}
