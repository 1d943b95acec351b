package pipeline

import (
	"context"
	"errors"
	"io"

	"github.com/baysidedata/parcelgraph/internal/domain"
	"github.com/baysidedata/parcelgraph/internal/extract"
	pkgerrors "github.com/baysidedata/parcelgraph/internal/pkg/errors"
)

// ingestNodes streams one extract and creates one vertex per row. Coercion
// failures and duplicate keys are recorded with row context and the stream
// continues; anything else aborts the phase.
func (s *Service) ingestNodes(ctx context.Context, rdr *extract.Reader, m domain.NodeMap, prov provenance, rep *PhaseReport) error {
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
			// Malformed row shape: report and keep streaming.
			rep.Processed++
			rep.fail(FailureCoercion, rep.lastLine(), "", err)
			continue
		}
		rep.Processed++

		key, props, err := m.Apply(row)
		if err != nil {
			rep.fail(FailureCoercion, row.Line, key, err)
			continue
		}
		prov.stamp(props)

		if err := s.store.CreateNode(ctx, m.Kind, key, props, s.opts.Mode); err != nil {
			if errors.Is(err, pkgerrors.ErrDuplicateKey) {
				rep.fail(FailureSchemaViolation, row.Line, key, err)
				continue
			}
			return err
		}
		rep.Created++
	}

	log.Info("node phase done", "processed", rep.Processed, "created", rep.Created, "failed", len(rep.Failures))
	return nil
}

// lastLine approximates the failing line for rows that could not be parsed
// into a Row at all: header is line 1, so the Nth record is line N+1.
func (p *PhaseReport) lastLine() int {
	return int(p.Processed) + 1
}
