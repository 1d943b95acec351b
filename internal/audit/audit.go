// Package audit runs the post-load validation battery: a fixed set of
// read-only checks over the fully materialized graph, reported and never
// auto-corrected.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/baysidedata/parcelgraph/internal/domain"
)

// Reader is the read surface the battery needs from the graph store. Every
// method must be side-effect-free.
type Reader interface {
	CountNodes(ctx context.Context, kind domain.Kind) (int64, error)
	CountEdges(ctx context.Context, kind domain.Kind) (int64, error)
	CountOwnersWithMalformedID(ctx context.Context, pattern string) (int64, error)
	CountAddressesContaining(ctx context.Context, substr string) (int64, error)
	Addresses(ctx context.Context) ([]string, error)
	CountEdgesByOwnershipType(ctx context.Context, ownershipType string) (int64, error)
	CountMultiOwnerProperties(ctx context.Context) (int64, error)
	CountJointGroupPercentageViolations(ctx context.Context, tolerance float64) (int64, error)
	CountYearBuiltOutOfRange(ctx context.Context, min, max int64) (int64, error)
	CountNegativeValuations(ctx context.Context) (int64, error)
	CountSuspiciousSales(ctx context.Context, below int64) (int64, error)
}

// Config carries the caller-supplied expectations. Expected extract sizes
// are optional; when nil the corresponding count check is informational.
type Config struct {
	Sentinel            string
	ExpectedOwners      *int64
	ExpectedProperties  *int64
	ExpectedOwnerships  *int64
	ExpectJointTenancy  bool
	ExpectMultiOwner    bool
	PercentTolerance    float64
	SuspiciousSaleBelow int64
	YearBuiltMin        int64
	YearBuiltMax        int64
}

const DefaultSentinel = "INVALID ADDRESS"

// Defaults fills zero values with the battery's standard knobs.
func (c Config) Defaults() Config {
	if c.Sentinel == "" {
		c.Sentinel = DefaultSentinel
	}
	if c.PercentTolerance == 0 {
		c.PercentTolerance = 0.01
	}
	if c.SuspiciousSaleBelow == 0 {
		c.SuspiciousSaleBelow = 1000
	}
	if c.YearBuiltMin == 0 {
		c.YearBuiltMin = 1600
	}
	if c.YearBuiltMax == 0 {
		c.YearBuiltMax = int64(time.Now().Year())
	}
	return c
}

// Run executes the full battery. Checks are independent; the first store
// error aborts since remaining results would not be trustworthy.
func Run(ctx context.Context, rd Reader, cfg Config) (*Report, error) {
	cfg = cfg.Defaults()
	report := &Report{GeneratedAt: time.Now().UTC()}

	owners, err := rd.CountNodes(ctx, domain.KindOwner)
	if err != nil {
		return nil, fmt.Errorf("audit: owner count: %w", err)
	}
	report.add(countResult("owner_count", owners, cfg.ExpectedOwners))

	properties, err := rd.CountNodes(ctx, domain.KindProperty)
	if err != nil {
		return nil, fmt.Errorf("audit: property count: %w", err)
	}
	report.add(countResult("property_count", properties, cfg.ExpectedProperties))

	ownerships, err := rd.CountEdges(ctx, domain.KindOwnership)
	if err != nil {
		return nil, fmt.Errorf("audit: ownership count: %w", err)
	}
	report.add(countResult("ownership_count", ownerships, cfg.ExpectedOwnerships))

	malformed, err := rd.CountOwnersWithMalformedID(ctx, domain.OwnerIDPattern)
	if err != nil {
		return nil, fmt.Errorf("audit: owner id format: %w", err)
	}
	report.add(zeroResult("owner_id_format", malformed,
		fmt.Sprintf("no owner id outside %s", domain.OwnerIDPattern)))

	sentinelHits, err := rd.CountAddressesContaining(ctx, cfg.Sentinel)
	if err != nil {
		return nil, fmt.Errorf("audit: address sentinel: %w", err)
	}
	report.add(zeroResult("invalid_address_sentinel", sentinelHits,
		fmt.Sprintf("no address containing %q", cfg.Sentinel)))

	addresses, err := rd.Addresses(ctx)
	if err != nil {
		return nil, fmt.Errorf("audit: addresses: %w", err)
	}
	report.add(Result{
		Name:          "address_category_distribution",
		Count:         int64(len(addresses)),
		Distribution:  ClassifyAll(addresses),
		Expected:      "informational",
		Pass:          true,
		Informational: true,
	})

	jointEdges, err := rd.CountEdgesByOwnershipType(ctx, domain.OwnershipJointTenancy)
	if err != nil {
		return nil, fmt.Errorf("audit: joint tenancy edges: %w", err)
	}
	report.add(presenceResult("joint_tenancy_edges", jointEdges, cfg.ExpectJointTenancy))

	multiOwner, err := rd.CountMultiOwnerProperties(ctx)
	if err != nil {
		return nil, fmt.Errorf("audit: multi-owner properties: %w", err)
	}
	report.add(presenceResult("multi_owner_properties", multiOwner, cfg.ExpectMultiOwner))

	jointSum, err := rd.CountJointGroupPercentageViolations(ctx, cfg.PercentTolerance)
	if err != nil {
		return nil, fmt.Errorf("audit: joint group percentages: %w", err)
	}
	report.add(zeroResult("joint_group_percentage_sum", jointSum,
		"every joint-ownership group sums to 100"))

	badYears, err := rd.CountYearBuiltOutOfRange(ctx, cfg.YearBuiltMin, cfg.YearBuiltMax)
	if err != nil {
		return nil, fmt.Errorf("audit: year built range: %w", err)
	}
	report.add(zeroResult("year_built_range",
		badYears, fmt.Sprintf("yearBuilt within [%d, %d]", cfg.YearBuiltMin, cfg.YearBuiltMax)))

	negatives, err := rd.CountNegativeValuations(ctx)
	if err != nil {
		return nil, fmt.Errorf("audit: negative valuations: %w", err)
	}
	report.add(zeroResult("negative_valuations", negatives, "no negative valuation or sale value"))

	suspicious, err := rd.CountSuspiciousSales(ctx, cfg.SuspiciousSaleBelow)
	if err != nil {
		return nil, fmt.Errorf("audit: suspicious sales: %w", err)
	}
	report.add(Result{
		Name:          "suspicious_sale_prices",
		Count:         suspicious,
		Expected:      fmt.Sprintf("informational: sales in (0, %d) are likely non-arms-length", cfg.SuspiciousSaleBelow),
		Pass:          true,
		Informational: true,
	})

	report.finalize(owners + properties)
	return report, nil
}

func countResult(name string, got int64, expected *int64) Result {
	if expected == nil {
		return Result{Name: name, Count: got, Expected: "informational", Pass: true, Informational: true}
	}
	diff := got - *expected
	if diff < 0 {
		diff = -diff
	}
	return Result{
		Name:     name,
		Count:    got,
		Expected: fmt.Sprintf("exactly %d", *expected),
		Pass:     got == *expected,
		Issues:   diff,
	}
}

func zeroResult(name string, got int64, expectation string) Result {
	return Result{Name: name, Count: got, Expected: expectation, Pass: got == 0, Issues: got}
}

func presenceResult(name string, got int64, expectSome bool) Result {
	if !expectSome {
		return Result{Name: name, Count: got, Expected: "informational", Pass: true, Informational: true}
	}
	return Result{Name: name, Count: got, Expected: "greater than zero", Pass: got > 0, Issues: 1}
}
