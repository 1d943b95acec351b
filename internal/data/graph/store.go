// Package graph is the only package that speaks Cypher. It implements the
// identity/schema manager, the vertex and edge writers, and the read-only
// audit queries against the property-graph store.
package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/baysidedata/parcelgraph/internal/domain"
	"github.com/baysidedata/parcelgraph/internal/platform/logger"
	"github.com/baysidedata/parcelgraph/internal/platform/neo4jdb"
)

type Store struct {
	client *neo4jdb.Client
	log    *logger.Logger
}

func NewStore(client *neo4jdb.Client, log *logger.Logger) (*Store, error) {
	if client == nil || client.Driver == nil {
		return nil, fmt.Errorf("graph: client required")
	}
	if log == nil {
		return nil, fmt.Errorf("graph: logger required")
	}
	return &Store{client: client, log: log.With("component", "GraphStore")}, nil
}

// nodeLabel maps a vertex kind onto its Cypher label. Labels cannot be
// query parameters, so the kind set is closed here.
func nodeLabel(kind domain.Kind) (string, error) {
	switch kind {
	case domain.KindOwner, domain.KindProperty:
		return string(kind), nil
	}
	return "", fmt.Errorf("graph: unknown vertex kind %q", kind)
}

// write runs one auto-commit write statement and returns its summary.
func (s *Store) write(ctx context.Context, cypher string, params map[string]any) (neo4j.ResultSummary, error) {
	session := s.client.WriteSession(ctx)
	defer session.Close(ctx)

	result, err := session.Run(ctx, cypher, params)
	if err != nil {
		return nil, err
	}
	return result.Consume(ctx)
}

// readCount runs a single-row, single-column count query.
func (s *Store) readCount(ctx context.Context, cypher string, params map[string]any) (int64, error) {
	session := s.client.ReadSession(ctx)
	defer session.Close(ctx)

	result, err := session.Run(ctx, cypher, params)
	if err != nil {
		return 0, err
	}
	record, err := result.Single(ctx)
	if err != nil {
		return 0, err
	}
	n, ok := record.Values[0].(int64)
	if !ok {
		return 0, fmt.Errorf("graph: count query returned %T", record.Values[0])
	}
	return n, nil
}
