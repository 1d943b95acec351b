package pipeline

import (
	"context"
	"errors"
	"io"

	"github.com/baysidedata/parcelgraph/internal/domain"
	"github.com/baysidedata/parcelgraph/internal/extract"
	pkgerrors "github.com/baysidedata/parcelgraph/internal/pkg/errors"
)

// ingestEdges streams the ownership extract after both node sets are fully
// committed. An unresolved endpoint is a referential-integrity failure:
// counted, reported, no edge created, pass continues.
func (s *Service) ingestEdges(ctx context.Context, rdr *extract.Reader, m domain.EdgeMap, prov provenance, rep *PhaseReport) error {
	rep.Extract = rdr.Name()
	if err := m.Validate(rdr.Schema()); err != nil {
		return err
	}

	log := s.log.With("extract", rdr.Name(), "kind", string(m.Kind))
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		row, err := rdr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			rep.Processed++
			rep.fail(FailureCoercion, rep.lastLine(), "", err)
			continue
		}
		rep.Processed++

		spec, err := m.Apply(row)
		if err != nil {
			rep.fail(FailureCoercion, row.Line, spec.FromKey, err)
			continue
		}
		prov.stamp(spec.Props)

		if err := s.store.CreateEdge(ctx, spec); err != nil {
			if errors.Is(err, pkgerrors.ErrEndpointNotFound) {
				rep.fail(FailureReferentialIntegrity, row.Line, spec.FromKey+"->"+spec.ToKey, err)
				continue
			}
			return err
		}
		rep.Created++
	}

	log.Info("edge phase done", "processed", rep.Processed, "created", rep.Created, "failed", len(rep.Failures))
	return nil
}
