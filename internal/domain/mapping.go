package domain

import (
	"fmt"

	"github.com/baysidedata/parcelgraph/internal/coerce"
	"github.com/baysidedata/parcelgraph/internal/extract"
	pkgerrors "github.com/baysidedata/parcelgraph/internal/pkg/errors"
)

// Field binds one extract column to one graph attribute. Type is the
// authoritative coercion target; the header annotation on the column must
// agree with it (dates travel as plain-string columns).
type Field struct {
	Column string
	Attr   string
	Type   coerce.Type
}

// NodeMap describes how rows of one extract become vertices of one kind.
type NodeMap struct {
	Kind      Kind
	KeyColumn string
	KeyAttr   string
	Fields    []Field
}

// EdgeMap describes how rows of one extract become directed edges.
type EdgeMap struct {
	Kind        Kind
	StartColumn string
	EndColumn   string
	Fields      []Field
}

// Validate checks that every mapped column exists in the extract schema and
// that its header annotation is compatible with the mapped target type.
// Running this once per extract lets row-level failures mean bad data, not a
// bad mapping.
func (m NodeMap) Validate(schema extract.Schema) error {
	if _, ok := schema.Column(m.KeyColumn); !ok {
		return fmt.Errorf("%s extract: missing key column %q", m.Kind, m.KeyColumn)
	}
	return validateFields(m.Kind, schema, m.Fields)
}

func (m EdgeMap) Validate(schema extract.Schema) error {
	for _, col := range []string{m.StartColumn, m.EndColumn} {
		if _, ok := schema.Column(col); !ok {
			return fmt.Errorf("%s extract: missing endpoint column %q", m.Kind, col)
		}
	}
	return validateFields(m.Kind, schema, m.Fields)
}

func validateFields(kind Kind, schema extract.Schema, fields []Field) error {
	for _, f := range fields {
		col, ok := schema.Column(f.Column)
		if !ok {
			return fmt.Errorf("%s extract: missing column %q", kind, f.Column)
		}
		if !compatible(col.Type, f.Type) {
			return fmt.Errorf("%s extract: column %q annotated %s but mapped to %s",
				kind, f.Column, col.Type, f.Type)
		}
	}
	return nil
}

// compatible reports whether a header annotation can feed a target type.
// int and long share one 64-bit integer domain; date columns carry no
// annotation and arrive as plain strings.
func compatible(annotated, target coerce.Type) bool {
	if annotated == target {
		return true
	}
	if (annotated == coerce.Int || annotated == coerce.Long) &&
		(target == coerce.Int || target == coerce.Long) {
		return true
	}
	if annotated == coerce.String && target == coerce.Date {
		return true
	}
	return false
}

// Apply coerces one row into its vertex key and attribute map. Absent
// (empty-cell) values are omitted from the map entirely; a non-empty value
// that fails its grammar is a hard error for the row.
func (m NodeMap) Apply(row extract.Row) (string, map[string]any, error) {
	key, _ := row.Get(m.KeyColumn)
	if key == "" {
		return "", nil, fmt.Errorf("column %q: missing identifier: %w", m.KeyColumn, pkgerrors.ErrInvalidArgument)
	}
	props, err := applyFields(row, m.Fields)
	if err != nil {
		return "", nil, err
	}
	props[m.KeyAttr] = key
	return key, props, nil
}

// Apply coerces one row into an edge spec. Endpoint identifiers must be
// present; everything else follows node-map semantics.
func (m EdgeMap) Apply(row extract.Row) (EdgeSpec, error) {
	from, _ := row.Get(m.StartColumn)
	if from == "" {
		return EdgeSpec{}, fmt.Errorf("column %q: missing start identifier: %w", m.StartColumn, pkgerrors.ErrInvalidArgument)
	}
	to, _ := row.Get(m.EndColumn)
	if to == "" {
		return EdgeSpec{}, fmt.Errorf("column %q: missing end identifier: %w", m.EndColumn, pkgerrors.ErrInvalidArgument)
	}
	props, err := applyFields(row, m.Fields)
	if err != nil {
		return EdgeSpec{}, err
	}
	return EdgeSpec{FromKey: from, ToKey: to, Props: props}, nil
}

func applyFields(row extract.Row, fields []Field) (map[string]any, error) {
	props := make(map[string]any, len(fields))
	for _, f := range fields {
		raw, ok := row.Get(f.Column)
		if !ok {
			continue
		}
		v, err := coerce.Coerce(raw, f.Type)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", f.Column, err)
		}
		if v == nil {
			continue
		}
		props[f.Attr] = v
	}
	return props, nil
}
