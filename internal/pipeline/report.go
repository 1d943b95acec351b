package pipeline

import (
	"time"

	"github.com/baysidedata/parcelgraph/internal/audit"
)

// FailureKind is the per-record failure taxonomy. Structural failures
// (store unreachable, bad mapping) abort a phase and are not in this set.
type FailureKind string

const (
	FailureSchemaViolation      FailureKind = "schema_violation"
	FailureCoercion             FailureKind = "coercion"
	FailureReferentialIntegrity FailureKind = "referential_integrity"
)

// RecordFailure is one failed record with enough context to find it in the
// source extract.
type RecordFailure struct {
	Kind    FailureKind `json:"kind"`
	Extract string      `json:"extract"`
	Line    int         `json:"line"`
	Key     string      `json:"key,omitempty"`
	Err     string      `json:"error"`
}

// PhaseReport covers one ingestion phase (one extract).
type PhaseReport struct {
	Extract   string          `json:"extract"`
	Processed int64           `json:"processed"`
	Created   int64           `json:"created"`
	Failures  []RecordFailure `json:"failures,omitempty"`
}

func (p *PhaseReport) fail(kind FailureKind, line int, key string, err error) {
	p.Failures = append(p.Failures, RecordFailure{
		Kind:    kind,
		Extract: p.Extract,
		Line:    line,
		Key:     key,
		Err:     err.Error(),
	})
}

// LoadReport is the terminal output of one bulk pass: what was processed,
// what was created, what failed and why, and the post-load audit.
type LoadReport struct {
	LoadID     string        `json:"loadId"`
	StartedAt  time.Time     `json:"startedAt"`
	Duration   time.Duration `json:"duration"`
	Cancelled  bool          `json:"cancelled,omitempty"`
	Owners     PhaseReport   `json:"owners"`
	Properties PhaseReport   `json:"properties"`
	Ownerships PhaseReport   `json:"ownerships"`
	Audit      *audit.Report `json:"audit,omitempty"`
}

// FailuresByKind aggregates record failures across all phases.
func (r *LoadReport) FailuresByKind() map[FailureKind]int {
	out := make(map[FailureKind]int)
	for _, phase := range []PhaseReport{r.Owners, r.Properties, r.Ownerships} {
		for _, f := range phase.Failures {
			out[f.Kind]++
		}
	}
	return out
}

// TotalProcessed is the record count across all three extracts.
func (r *LoadReport) TotalProcessed() int64 {
	return r.Owners.Processed + r.Properties.Processed + r.Ownerships.Processed
}

// TotalCreated is the created entity count across all three extracts.
func (r *LoadReport) TotalCreated() int64 {
	return r.Owners.Created + r.Properties.Created + r.Ownerships.Created
}
