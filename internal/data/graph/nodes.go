package graph

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"

	"github.com/baysidedata/parcelgraph/internal/domain"
	pkgerrors "github.com/baysidedata/parcelgraph/internal/pkg/errors"
)

// CreateNode writes one vertex. In reject mode a plain CREATE lets the
// uniqueness constraint catch duplicate keys, from this pass or a prior
// one; the violation surfaces as ErrDuplicateKey and the existing vertex
// is never touched. In upsert mode the key is merged and attributes
// overwritten.
func (s *Store) CreateNode(ctx context.Context, kind domain.Kind, key string, props map[string]any, mode domain.LoadMode) error {
	label, err := nodeLabel(kind)
	if err != nil {
		return err
	}

	var cypher string
	params := map[string]any{"props": props}
	switch mode {
	case domain.ModeUpsert:
		cypher = fmt.Sprintf(`MERGE (n:%s {id: $key}) SET n = $props`, label)
		params["key"] = key
	default:
		cypher = fmt.Sprintf(`CREATE (n:%s) SET n = $props`, label)
	}

	if _, err := s.write(ctx, cypher, params); err != nil {
		if isConstraintViolation(err) {
			return fmt.Errorf("%s %q: %w", kind, key, pkgerrors.ErrDuplicateKey)
		}
		return fmt.Errorf("graph: create %s %q: %w", kind, key, err)
	}
	return nil
}

func isConstraintViolation(err error) bool {
	var neo4jErr *db.Neo4jError
	if !errors.As(err, &neo4jErr) {
		return false
	}
	return strings.Contains(neo4jErr.Code, "ConstraintValidationFailed") ||
		strings.Contains(neo4jErr.Code, "ConstraintViolation")
}
