// Package graphtest provides an in-memory graph store with the same
// observable semantics as the Neo4j-backed one: identity constraints,
// reject/upsert duplicate handling, endpoint resolution, and the audit
// read queries. Tests run the full pipeline against it without a server.
package graphtest

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/baysidedata/parcelgraph/internal/domain"
	pkgerrors "github.com/baysidedata/parcelgraph/internal/pkg/errors"
)

type edge struct {
	from  string
	to    string
	props map[string]any
}

type Store struct {
	nodes       map[domain.Kind]map[string]map[string]any
	edges       []edge
	constrained bool
	indexed     bool
	failWrites  error
}

func New() *Store {
	return &Store{
		nodes: map[domain.Kind]map[string]map[string]any{
			domain.KindOwner:    {},
			domain.KindProperty: {},
		},
	}
}

// FailWrites makes every subsequent write return err, simulating an
// unreachable store mid-pass.
func (s *Store) FailWrites(err error) { s.failWrites = err }

func (s *Store) EnsureConstraints(ctx context.Context) error {
	if s.failWrites != nil {
		return s.failWrites
	}
	s.constrained = true
	return nil
}

func (s *Store) EnsureIndexes(ctx context.Context) error {
	if s.failWrites != nil {
		return s.failWrites
	}
	s.indexed = true
	return nil
}

func (s *Store) ConstraintsEnsured() bool { return s.constrained }
func (s *Store) IndexesEnsured() bool     { return s.indexed }

func (s *Store) CreateNode(ctx context.Context, kind domain.Kind, key string, props map[string]any, mode domain.LoadMode) error {
	if s.failWrites != nil {
		return s.failWrites
	}
	byKey, ok := s.nodes[kind]
	if !ok {
		return fmt.Errorf("graphtest: unknown vertex kind %q", kind)
	}
	if _, exists := byKey[key]; exists && mode != domain.ModeUpsert {
		return fmt.Errorf("%s %q: %w", kind, key, pkgerrors.ErrDuplicateKey)
	}
	// Upsert replaces the whole attribute map, mirroring SET n = $props:
	// attributes missing from the new map do not survive.
	copied := make(map[string]any, len(props))
	for k, v := range props {
		copied[k] = v
	}
	byKey[key] = copied
	return nil
}

func (s *Store) CreateEdge(ctx context.Context, spec domain.EdgeSpec) error {
	if s.failWrites != nil {
		return s.failWrites
	}
	_, ownerFound := s.nodes[domain.KindOwner][spec.FromKey]
	_, propertyFound := s.nodes[domain.KindProperty][spec.ToKey]
	switch {
	case !ownerFound && !propertyFound:
		return fmt.Errorf("owner %q and property %q: %w", spec.FromKey, spec.ToKey, pkgerrors.ErrEndpointNotFound)
	case !ownerFound:
		return fmt.Errorf("owner %q: %w", spec.FromKey, pkgerrors.ErrEndpointNotFound)
	case !propertyFound:
		return fmt.Errorf("property %q: %w", spec.ToKey, pkgerrors.ErrEndpointNotFound)
	}
	copied := make(map[string]any, len(spec.Props))
	for k, v := range spec.Props {
		copied[k] = v
	}
	s.edges = append(s.edges, edge{from: spec.FromKey, to: spec.ToKey, props: copied})
	return nil
}

// Node returns a loaded vertex's attributes, for assertions.
func (s *Store) Node(kind domain.Kind, key string) (map[string]any, bool) {
	props, ok := s.nodes[kind][key]
	return props, ok
}

func (s *Store) CountNodes(ctx context.Context, kind domain.Kind) (int64, error) {
	byKey, ok := s.nodes[kind]
	if !ok {
		return 0, fmt.Errorf("graphtest: unknown vertex kind %q", kind)
	}
	return int64(len(byKey)), nil
}

func (s *Store) CountEdges(ctx context.Context, kind domain.Kind) (int64, error) {
	if kind != domain.KindOwnership {
		return 0, fmt.Errorf("graphtest: unknown edge kind %q", kind)
	}
	return int64(len(s.edges)), nil
}

func (s *Store) CountOwnersWithMalformedID(ctx context.Context, pattern string) (int64, error) {
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return 0, err
	}
	var n int64
	for key := range s.nodes[domain.KindOwner] {
		if !re.MatchString(key) {
			n++
		}
	}
	return n, nil
}

func (s *Store) CountAddressesContaining(ctx context.Context, substr string) (int64, error) {
	var n int64
	for _, props := range s.nodes[domain.KindProperty] {
		if addr, ok := props["address"].(string); ok && strings.Contains(addr, substr) {
			n++
		}
	}
	return n, nil
}

func (s *Store) Addresses(ctx context.Context) ([]string, error) {
	var addresses []string
	for _, props := range s.nodes[domain.KindProperty] {
		if addr, ok := props["address"].(string); ok {
			addresses = append(addresses, addr)
		}
	}
	return addresses, nil
}

func (s *Store) CountEdgesByOwnershipType(ctx context.Context, ownershipType string) (int64, error) {
	var n int64
	for _, e := range s.edges {
		if e.props["ownershipType"] == ownershipType {
			n++
		}
	}
	return n, nil
}

func (s *Store) CountMultiOwnerProperties(ctx context.Context) (int64, error) {
	incoming := make(map[string]int)
	for _, e := range s.edges {
		incoming[e.to]++
	}
	var n int64
	for _, count := range incoming {
		if count > 1 {
			n++
		}
	}
	return n, nil
}

func (s *Store) CountJointGroupPercentageViolations(ctx context.Context, tolerance float64) (int64, error) {
	sums := make(map[string]float64)
	for _, e := range s.edges {
		grp, ok := e.props["originalJointId"].(string)
		if !ok {
			continue
		}
		pct, ok := e.props["ownershipPercentage"].(float64)
		if !ok {
			continue
		}
		sums[grp] += pct
	}
	var n int64
	for _, total := range sums {
		diff := total - 100
		if diff < 0 {
			diff = -diff
		}
		if diff > tolerance {
			n++
		}
	}
	return n, nil
}

func (s *Store) CountYearBuiltOutOfRange(ctx context.Context, min, max int64) (int64, error) {
	var n int64
	for _, props := range s.nodes[domain.KindProperty] {
		if year, ok := props["yearBuilt"].(int64); ok && (year < min || year > max) {
			n++
		}
	}
	return n, nil
}

func (s *Store) CountNegativeValuations(ctx context.Context) (int64, error) {
	var n int64
	for _, props := range s.nodes[domain.KindProperty] {
		for _, attr := range []string{"currentAssessedValue", "priorAssessedValue", "currentMarketValue", "lastSalePrice"} {
			if v, ok := props[attr].(int64); ok && v < 0 {
				n++
				break
			}
		}
	}
	return n, nil
}

func (s *Store) CountSuspiciousSales(ctx context.Context, below int64) (int64, error) {
	var n int64
	for _, props := range s.nodes[domain.KindProperty] {
		if price, ok := props["lastSalePrice"].(int64); ok && price > 0 && price < below {
			n++
		}
	}
	return n, nil
}
