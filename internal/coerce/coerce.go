// Package coerce converts raw extract cell text into typed scalar values.
//
// The one rule that holds for every type: an empty cell is an absent value
// and coerces to nil before any parsing happens. A non-empty cell that does
// not match its type's grammar is an error, never a silent nil.
package coerce

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
)

type Type string

const (
	Int    Type = "int"
	Long   Type = "long"
	Float  Type = "float"
	Bool   Type = "boolean"
	Date   Type = "date"
	String Type = "string"
)

// dateLayout is the only accepted calendar-date grammar (ISO 8601).
const dateLayout = "2006-01-02"

// Coerce converts raw into a value of target type t. It returns (nil, nil)
// for the empty string regardless of t. Int and Long both produce int64;
// the extracts distinguish them only in their header annotations.
func Coerce(raw string, t Type) (any, error) {
	if raw == "" {
		return nil, nil
	}
	switch t {
	case Int, Long:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("coerce %q as %s: %w", raw, t, err)
		}
		return v, nil
	case Float:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("coerce %q as %s: %w", raw, t, err)
		}
		// ParseFloat accepts Inf and NaN spellings; neither is a value
		// any extract column can legitimately carry.
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("coerce %q as %s: non-finite value", raw, t)
		}
		return v, nil
	case Bool:
		switch strings.ToLower(raw) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return nil, fmt.Errorf("coerce %q as %s: want true or false", raw, t)
	case Date:
		v, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, fmt.Errorf("coerce %q as %s: %w", raw, t, err)
		}
		return dbtype.Date(v), nil
	case String:
		return raw, nil
	}
	return nil, fmt.Errorf("coerce: unknown target type %q", t)
}

// ParseType maps a header type annotation onto a coercion type. The bare
// (unannotated) column form is a plain string and is handled by the caller.
func ParseType(annotation string) (Type, error) {
	switch strings.ToLower(annotation) {
	case "int":
		return Int, nil
	case "long":
		return Long, nil
	case "float":
		return Float, nil
	case "boolean":
		return Bool, nil
	case "date":
		return Date, nil
	case "string":
		return String, nil
	}
	return "", fmt.Errorf("unknown type annotation %q", annotation)
}
