package graph

import (
	"context"
	"fmt"
)

// Identity constraints must exist before any vertex is loaded; the store
// enforces key uniqueness from that point on. All statements are
// IF NOT EXISTS and safe to re-run.
var constraintStatements = []string{
	`CREATE CONSTRAINT owner_id_unique IF NOT EXISTS FOR (o:Owner) REQUIRE o.id IS UNIQUE`,
	`CREATE CONSTRAINT property_id_unique IF NOT EXISTS FOR (p:Property) REQUIRE p.id IS UNIQUE`,
}

// Secondary indexes are purely advisory for read performance and are built
// only after the bulk load, against a stable dataset.
var indexStatements = []string{
	`CREATE INDEX owner_name_idx IF NOT EXISTS FOR (o:Owner) ON (o.name)`,
	`CREATE INDEX property_address_idx IF NOT EXISTS FOR (p:Property) ON (p.address)`,
	`CREATE INDEX ownership_type_idx IF NOT EXISTS FOR ()-[r:OWNS]-() ON (r.ownershipType)`,
}

func (s *Store) EnsureConstraints(ctx context.Context) error {
	for _, stmt := range constraintStatements {
		if _, err := s.write(ctx, stmt, nil); err != nil {
			return fmt.Errorf("graph: ensure constraints: %w", err)
		}
	}
	s.log.Debug("identity constraints ensured", "count", len(constraintStatements))
	return nil
}

func (s *Store) EnsureIndexes(ctx context.Context) error {
	for _, stmt := range indexStatements {
		if _, err := s.write(ctx, stmt, nil); err != nil {
			return fmt.Errorf("graph: ensure indexes: %w", err)
		}
	}
	s.log.Debug("performance indexes ensured", "count", len(indexStatements))
	return nil
}
