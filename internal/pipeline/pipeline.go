// Package pipeline orchestrates the bulk pass: identity constraints, node
// ingestion, edge ingestion, performance indexes, then the audit battery.
// It is strictly sequential and the sole writer during a load.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/baysidedata/parcelgraph/internal/audit"
	"github.com/baysidedata/parcelgraph/internal/domain"
	"github.com/baysidedata/parcelgraph/internal/extract"
	"github.com/baysidedata/parcelgraph/internal/platform/logger"
)

// GraphStore is the write surface the pipeline needs from the graph store.
type GraphStore interface {
	EnsureConstraints(ctx context.Context) error
	EnsureIndexes(ctx context.Context) error
	CreateNode(ctx context.Context, kind domain.Kind, key string, props map[string]any, mode domain.LoadMode) error
	CreateEdge(ctx context.Context, spec domain.EdgeSpec) error
}

// Sources supplies the three extract row streams, owners and properties
// before ownerships.
type Sources struct {
	Owners     *extract.Reader
	Properties *extract.Reader
	Ownerships *extract.Reader
}

type Options struct {
	Mode  domain.LoadMode
	Audit *audit.Config
}

type Service struct {
	store GraphStore
	audit audit.Reader
	log   *logger.Logger
	opts  Options
}

// NewService wires the pipeline. auditReader may be nil, in which case Run
// skips the post-load battery.
func NewService(store GraphStore, auditReader audit.Reader, log *logger.Logger, opts Options) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("pipeline: store required")
	}
	if log == nil {
		return nil, fmt.Errorf("pipeline: logger required")
	}
	if opts.Mode == "" {
		opts.Mode = domain.ModeReject
	}
	return &Service{
		store: store,
		audit: auditReader,
		log:   log.With("component", "Pipeline"),
		opts:  opts,
	}, nil
}

// Run executes one bulk pass. Per-record failures accumulate in the report
// and do not stop the pass; structural failures abort the current phase and
// return the partial report alongside the error. Cancellation stops new
// create calls without rolling back what already committed.
func (s *Service) Run(ctx context.Context, src Sources) (*LoadReport, error) {
	report := &LoadReport{
		LoadID:    uuid.NewString(),
		StartedAt: time.Now().UTC(),
	}
	defer func() { report.Duration = time.Since(report.StartedAt) }()

	log := s.log.With("load_id", report.LoadID)
	log.Info("starting bulk pass", "mode", string(s.opts.Mode))

	if err := s.store.EnsureConstraints(ctx); err != nil {
		return report, fmt.Errorf("pipeline: constraint phase: %w", err)
	}

	prov := provenance{loadID: report.LoadID, importDate: report.StartedAt.Format(time.RFC3339)}

	if err := s.ingestNodes(ctx, src.Owners, domain.OwnersMap, prov, &report.Owners); err != nil {
		return report, s.phaseErr(ctx, report, "owners", err)
	}
	if err := s.ingestNodes(ctx, src.Properties, domain.PropertiesMap, prov, &report.Properties); err != nil {
		return report, s.phaseErr(ctx, report, "properties", err)
	}
	if err := s.ingestEdges(ctx, src.Ownerships, domain.OwnershipsMap, prov, &report.Ownerships); err != nil {
		return report, s.phaseErr(ctx, report, "ownerships", err)
	}

	if err := s.store.EnsureIndexes(ctx); err != nil {
		return report, fmt.Errorf("pipeline: index phase: %w", err)
	}

	if s.audit != nil && s.opts.Audit != nil {
		auditReport, err := audit.Run(ctx, s.audit, *s.opts.Audit)
		if err != nil {
			return report, fmt.Errorf("pipeline: audit phase: %w", err)
		}
		report.Audit = auditReport
	}

	s.logSummary(log, report)
	return report, nil
}

func (s *Service) phaseErr(ctx context.Context, report *LoadReport, phase string, err error) error {
	if ctx.Err() != nil {
		report.Cancelled = true
		s.log.Warn("bulk pass cancelled, partial load committed", "phase", phase, "load_id", report.LoadID)
		return fmt.Errorf("pipeline: %s phase cancelled: %w", phase, err)
	}
	return fmt.Errorf("pipeline: %s phase: %w", phase, err)
}

type provenance struct {
	loadID     string
	importDate string
}

// stamp adds the load-time provenance attributes. sourceSystem comes from
// the row itself via the field maps; importDate is the clock at pass start.
func (p provenance) stamp(props map[string]any) {
	props[domain.AttrImportDate] = p.importDate
	props[domain.AttrLoadID] = p.loadID
}

func (s *Service) logSummary(log *logger.Logger, report *LoadReport) {
	byKind := report.FailuresByKind()
	log.Info("bulk pass complete",
		"processed", report.TotalProcessed(),
		"created", report.TotalCreated(),
		"schema_violations", byKind[FailureSchemaViolation],
		"coercion_failures", byKind[FailureCoercion],
		"referential_failures", byKind[FailureReferentialIntegrity],
	)
	if report.Audit != nil {
		log.Info("audit complete",
			"passed", report.Audit.Passed,
			"quality_score", report.Audit.QualityScore,
			"checks", len(report.Audit.Results),
		)
	}
}
