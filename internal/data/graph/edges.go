package graph

import (
	"context"
	"fmt"

	"github.com/baysidedata/parcelgraph/internal/domain"
	pkgerrors "github.com/baysidedata/parcelgraph/internal/pkg/errors"
)

const createEdgeCypher = `
MATCH (a:Owner {id: $from})
MATCH (b:Property {id: $to})
CREATE (a)-[r:OWNS]->(b)
SET r = $props
`

const resolveEndpointsCypher = `
OPTIONAL MATCH (a:Owner {id: $from})
OPTIONAL MATCH (b:Property {id: $to})
RETURN a IS NOT NULL AS ownerFound, b IS NOT NULL AS propertyFound
`

// CreateEdge creates one Owner-[:OWNS]->Property edge after resolving both
// endpoints by identifier. An unresolved endpoint yields ErrEndpointNotFound
// naming the missing side; no edge is created. Parallel edges between the
// same pair are legal and expected (historical plus current ownership).
func (s *Store) CreateEdge(ctx context.Context, spec domain.EdgeSpec) error {
	summary, err := s.write(ctx, createEdgeCypher, map[string]any{
		"from":  spec.FromKey,
		"to":    spec.ToKey,
		"props": spec.Props,
	})
	if err != nil {
		return fmt.Errorf("graph: create edge %q->%q: %w", spec.FromKey, spec.ToKey, err)
	}
	if summary.Counters().RelationshipsCreated() > 0 {
		return nil
	}

	// Nothing matched. Ask the store which endpoint is missing so the
	// failure names the side, not just the pair.
	session := s.client.ReadSession(ctx)
	defer session.Close(ctx)
	result, err := session.Run(ctx, resolveEndpointsCypher, map[string]any{
		"from": spec.FromKey,
		"to":   spec.ToKey,
	})
	if err != nil {
		return fmt.Errorf("graph: resolve endpoints %q->%q: %w", spec.FromKey, spec.ToKey, err)
	}
	record, err := result.Single(ctx)
	if err != nil {
		return fmt.Errorf("graph: resolve endpoints %q->%q: %w", spec.FromKey, spec.ToKey, err)
	}
	ownerFound, _ := record.Values[0].(bool)
	propertyFound, _ := record.Values[1].(bool)

	switch {
	case !ownerFound && !propertyFound:
		return fmt.Errorf("owner %q and property %q: %w", spec.FromKey, spec.ToKey, pkgerrors.ErrEndpointNotFound)
	case !ownerFound:
		return fmt.Errorf("owner %q: %w", spec.FromKey, pkgerrors.ErrEndpointNotFound)
	case !propertyFound:
		return fmt.Errorf("property %q: %w", spec.ToKey, pkgerrors.ErrEndpointNotFound)
	}
	// Both endpoints exist but no edge was created; treat as structural.
	return fmt.Errorf("graph: create edge %q->%q: no relationship created", spec.FromKey, spec.ToKey)
}
