package extract

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Row is one data record. Line is the 1-based physical line of the source
// file, kept so per-record failures can be reported with row context.
type Row struct {
	Line   int
	cells  []string
	schema Schema
}

// Get returns the raw cell for the named column and whether the column
// exists in the extract's schema. An empty cell is a present column with
// an empty value; the coercion layer decides what that means.
func (r Row) Get(name string) (string, bool) {
	i := r.schema.Index(name)
	if i < 0 || i >= len(r.cells) {
		return "", false
	}
	return r.cells[i], true
}

// Reader yields extract rows one at a time in a single forward pass.
type Reader struct {
	name   string
	cr     *csv.Reader
	schema Schema
	line   int
}

// NewReader reads and parses the header row immediately; name is the
// extract's label used in error messages.
func NewReader(r io.Reader, name string) (*Reader, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%s: reading header: %w", name, err)
	}
	schema, err := ParseHeader(header)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &Reader{name: name, cr: cr, schema: schema, line: 1}, nil
}

// Open opens an extract file. The caller closes the returned closer when
// done streaming.
func Open(path, name string) (*Reader, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", name, err)
	}
	r, err := NewReader(f, name)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return r, f, nil
}

func (r *Reader) Name() string   { return r.name }
func (r *Reader) Schema() Schema { return r.schema }

// Next returns the next data row, or io.EOF when the extract is exhausted.
// A row whose cell count does not match the header is an error carrying the
// offending line number; the caller may record it and keep streaming.
func (r *Reader) Next() (Row, error) {
	cells, err := r.cr.Read()
	if err == io.EOF {
		return Row{}, io.EOF
	}
	r.line++
	if err != nil {
		return Row{}, fmt.Errorf("%s line %d: %w", r.name, r.line, err)
	}
	if len(cells) != len(r.schema) {
		return Row{}, fmt.Errorf("%s line %d: got %d cells, header has %d columns",
			r.name, r.line, len(cells), len(r.schema))
	}
	return Row{Line: r.line, cells: cells, schema: r.schema}, nil
}

// NewRow builds a standalone row against a schema. Intended for tests and
// synthetic records.
func NewRow(schema Schema, line int, cells []string) Row {
	return Row{Line: line, cells: cells, schema: schema}
}
