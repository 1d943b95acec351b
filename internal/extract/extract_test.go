package extract

import (
	"io"
	"strings"
	"testing"

	"github.com/baysidedata/parcelgraph/internal/coerce"
)

func TestParseHeader_Annotations(t *testing.T) {
	schema, err := ParseHeader([]string{"identifier", "propertyCount:int", "totalPortfolioValue:long", "latitude:float", "isCommercial:boolean"})
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	want := Schema{
		{Name: "identifier", Type: coerce.String},
		{Name: "propertyCount", Type: coerce.Int},
		{Name: "totalPortfolioValue", Type: coerce.Long},
		{Name: "latitude", Type: coerce.Float},
		{Name: "isCommercial", Type: coerce.Bool},
	}
	if len(schema) != len(want) {
		t.Fatalf("schema length %d, want %d", len(schema), len(want))
	}
	for i := range want {
		if schema[i] != want[i] {
			t.Fatalf("column %d: got %#v, want %#v", i, schema[i], want[i])
		}
	}
}

func TestParseHeader_Rejects(t *testing.T) {
	if _, err := ParseHeader([]string{"a", "b:decimal"}); err == nil {
		t.Fatal("unknown annotation should fail")
	}
	if _, err := ParseHeader([]string{"a", "a:int"}); err == nil {
		t.Fatal("duplicate column should fail")
	}
	if _, err := ParseHeader([]string{":int"}); err == nil {
		t.Fatal("empty column name should fail")
	}
}

func TestReader_StreamsRowsOnce(t *testing.T) {
	src := "id,count:int\nENT_000001,2\nENT_000002,\n"
	r, err := NewReader(strings.NewReader(src), "owners")
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}

	row, err := r.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if row.Line != 2 {
		t.Fatalf("first data row line = %d, want 2", row.Line)
	}
	if v, ok := row.Get("id"); !ok || v != "ENT_000001" {
		t.Fatalf("Get(id) = %q, %v", v, ok)
	}
	if v, ok := row.Get("count"); !ok || v != "2" {
		t.Fatalf("Get(count) = %q, %v", v, ok)
	}
	if _, ok := row.Get("missing"); ok {
		t.Fatal("Get(missing) should report absence")
	}

	row, err = r.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if v, ok := row.Get("count"); !ok || v != "" {
		t.Fatalf("empty cell should be present and empty, got %q, %v", v, ok)
	}

	if _, err := r.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestReader_RaggedRowIsReportedWithLine(t *testing.T) {
	src := "id,count:int\nENT_000001,2\nENT_000002\n"
	r, err := NewReader(strings.NewReader(src), "owners")
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	if _, err := r.Next(); err != nil {
		t.Fatalf("first row: %v", err)
	}
	_, err = r.Next()
	if err == nil {
		t.Fatal("ragged row should error")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Fatalf("error should carry line number, got: %v", err)
	}
}
