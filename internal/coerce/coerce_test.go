package coerce

import (
	"testing"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
)

func TestCoerce_EmptyIsNilForEveryType(t *testing.T) {
	for _, typ := range []Type{Int, Long, Float, Bool, Date, String} {
		got, err := Coerce("", typ)
		if err != nil {
			t.Fatalf("Coerce(\"\", %s) returned error: %v", typ, err)
		}
		if got != nil {
			t.Fatalf("Coerce(\"\", %s) = %#v, want nil", typ, got)
		}
	}
}

func TestCoerce_TypedValues(t *testing.T) {
	if got, err := Coerce("12", Int); err != nil || got != int64(12) {
		t.Fatalf("int: got %#v, %v", got, err)
	}
	if got, err := Coerce("98765432100", Long); err != nil || got != int64(98765432100) {
		t.Fatalf("long: got %#v, %v", got, err)
	}
	if got, err := Coerce("3.5", Float); err != nil || got != 3.5 {
		t.Fatalf("float: got %#v, %v", got, err)
	}
	if got, err := Coerce("true", Bool); err != nil || got != true {
		t.Fatalf("bool: got %#v, %v", got, err)
	}
	if got, err := Coerce("FALSE", Bool); err != nil || got != false {
		t.Fatalf("bool case-insensitive: got %#v, %v", got, err)
	}
	if got, err := Coerce("plain", String); err != nil || got != "plain" {
		t.Fatalf("string: got %#v, %v", got, err)
	}
	got, err := Coerce("2021-06-30", Date)
	if err != nil {
		t.Fatalf("date: %v", err)
	}
	want := dbtype.Date(time.Date(2021, 6, 30, 0, 0, 0, 0, time.UTC))
	if got != want {
		t.Fatalf("date: got %#v, want %#v", got, want)
	}
}

func TestCoerce_BadValuesAreErrorsNotNulls(t *testing.T) {
	cases := []struct {
		raw string
		typ Type
	}{
		{"twelve", Int},
		{"12.5", Long},
		{"yes", Bool},
		{"1", Bool},
		{"06/30/2021", Date},
		{"2021-13-40", Date},
		{"abc", Float},
		{"NaN", Float},
		{"Inf", Float},
		{"-Inf", Float},
	}
	for _, c := range cases {
		got, err := Coerce(c.raw, c.typ)
		if err == nil {
			t.Fatalf("Coerce(%q, %s) = %#v, want error", c.raw, c.typ, got)
		}
		if got != nil {
			t.Fatalf("Coerce(%q, %s) returned value %#v alongside error", c.raw, c.typ, got)
		}
	}
}

func TestParseType(t *testing.T) {
	for ann, want := range map[string]Type{
		"int": Int, "long": Long, "float": Float, "boolean": Bool, "date": Date, "string": String,
		"INT": Int,
	} {
		got, err := ParseType(ann)
		if err != nil || got != want {
			t.Fatalf("ParseType(%q) = %v, %v; want %v", ann, got, err, want)
		}
	}
	if _, err := ParseType("decimal"); err == nil {
		t.Fatal("ParseType(\"decimal\") should fail")
	}
}
