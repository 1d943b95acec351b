package graph

import (
	"context"
	"fmt"

	"github.com/baysidedata/parcelgraph/internal/domain"
)

// Read-only audit queries. Every method here is side-effect-free.

func (s *Store) CountNodes(ctx context.Context, kind domain.Kind) (int64, error) {
	label, err := nodeLabel(kind)
	if err != nil {
		return 0, err
	}
	return s.readCount(ctx, fmt.Sprintf(`MATCH (n:%s) RETURN count(n)`, label), nil)
}

func (s *Store) CountEdges(ctx context.Context, kind domain.Kind) (int64, error) {
	if kind != domain.KindOwnership {
		return 0, fmt.Errorf("graph: unknown edge kind %q", kind)
	}
	return s.readCount(ctx, `MATCH ()-[r:OWNS]->() RETURN count(r)`, nil)
}

func (s *Store) CountOwnersWithMalformedID(ctx context.Context, pattern string) (int64, error) {
	return s.readCount(ctx,
		`MATCH (o:Owner) WHERE NOT o.id =~ $pattern RETURN count(o)`,
		map[string]any{"pattern": pattern})
}

func (s *Store) CountAddressesContaining(ctx context.Context, substr string) (int64, error) {
	return s.readCount(ctx,
		`MATCH (p:Property) WHERE p.address CONTAINS $substr RETURN count(p)`,
		map[string]any{"substr": substr})
}

// Addresses streams every property address for app-side classification.
func (s *Store) Addresses(ctx context.Context) ([]string, error) {
	session := s.client.ReadSession(ctx)
	defer session.Close(ctx)

	result, err := session.Run(ctx, `MATCH (p:Property) WHERE p.address IS NOT NULL RETURN p.address`, nil)
	if err != nil {
		return nil, err
	}
	var addresses []string
	for result.Next(ctx) {
		if addr, ok := result.Record().Values[0].(string); ok {
			addresses = append(addresses, addr)
		}
	}
	if err := result.Err(); err != nil {
		return nil, err
	}
	return addresses, nil
}

func (s *Store) CountEdgesByOwnershipType(ctx context.Context, ownershipType string) (int64, error) {
	return s.readCount(ctx,
		`MATCH ()-[r:OWNS]->() WHERE r.ownershipType = $type RETURN count(r)`,
		map[string]any{"type": ownershipType})
}

func (s *Store) CountMultiOwnerProperties(ctx context.Context) (int64, error) {
	return s.readCount(ctx, `
MATCH (p:Property)<-[r:OWNS]-()
WITH p, count(r) AS owners
WHERE owners > 1
RETURN count(p)`, nil)
}

func (s *Store) CountJointGroupPercentageViolations(ctx context.Context, tolerance float64) (int64, error) {
	return s.readCount(ctx, `
MATCH ()-[r:OWNS]->()
WHERE r.originalJointId IS NOT NULL AND r.ownershipPercentage IS NOT NULL
WITH r.originalJointId AS grp, sum(r.ownershipPercentage) AS total
WHERE abs(total - 100.0) > $tolerance
RETURN count(grp)`, map[string]any{"tolerance": tolerance})
}

func (s *Store) CountYearBuiltOutOfRange(ctx context.Context, min, max int64) (int64, error) {
	return s.readCount(ctx, `
MATCH (p:Property)
WHERE p.yearBuilt IS NOT NULL AND (p.yearBuilt < $min OR p.yearBuilt > $max)
RETURN count(p)`, map[string]any{"min": min, "max": max})
}

func (s *Store) CountNegativeValuations(ctx context.Context) (int64, error) {
	return s.readCount(ctx, `
MATCH (p:Property)
WHERE (p.currentAssessedValue IS NOT NULL AND p.currentAssessedValue < 0)
   OR (p.priorAssessedValue IS NOT NULL AND p.priorAssessedValue < 0)
   OR (p.currentMarketValue IS NOT NULL AND p.currentMarketValue < 0)
   OR (p.lastSalePrice IS NOT NULL AND p.lastSalePrice < 0)
RETURN count(p)`, nil)
}

func (s *Store) CountSuspiciousSales(ctx context.Context, below int64) (int64, error) {
	return s.readCount(ctx, `
MATCH (p:Property)
WHERE p.lastSalePrice IS NOT NULL AND p.lastSalePrice > 0 AND p.lastSalePrice < $below
RETURN count(p)`, map[string]any{"below": below})
}
