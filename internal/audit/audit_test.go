package audit

import (
	"context"
	"testing"

	"github.com/baysidedata/parcelgraph/internal/data/graph/graphtest"
	"github.com/baysidedata/parcelgraph/internal/domain"
)

func loadFixture(t *testing.T, store *graphtest.Store) {
	t.Helper()
	ctx := context.Background()
	ownerProps := func(id string) map[string]any {
		return map[string]any{"id": id, "name": "OWNER " + id}
	}
	for _, id := range []string{"ENT_000001", "ENT_000002"} {
		if err := store.CreateNode(ctx, domain.KindOwner, id, ownerProps(id), domain.ModeReject); err != nil {
			t.Fatalf("CreateNode: %v", err)
		}
	}
	properties := []map[string]any{
		{"id": "P-1", "address": "1 MAIN ST", "yearBuilt": int64(1950), "lastSalePrice": int64(465000)},
		{"id": "P-2", "address": "OLD COLONY RAILROAD", "yearBuilt": int64(1890)},
		{"id": "P-3", "address": "12 ELM AVE INVALID ADDRESS", "yearBuilt": int64(1420), "lastSalePrice": int64(100)},
	}
	for _, props := range properties {
		if err := store.CreateNode(ctx, domain.KindProperty, props["id"].(string), props, domain.ModeReject); err != nil {
			t.Fatalf("CreateNode: %v", err)
		}
	}
	edges := []domain.EdgeSpec{
		{FromKey: "ENT_000001", ToKey: "P-1", Props: map[string]any{
			"ownershipType": domain.OwnershipJointTenancy, "ownershipPercentage": 60.0, "originalJointId": "J-1"}},
		{FromKey: "ENT_000002", ToKey: "P-1", Props: map[string]any{
			"ownershipType": domain.OwnershipJointTenancy, "ownershipPercentage": 60.0, "originalJointId": "J-1"}},
		{FromKey: "ENT_000001", ToKey: "P-2", Props: map[string]any{
			"ownershipType": domain.OwnershipSole, "ownershipPercentage": 100.0}},
	}
	for _, e := range edges {
		if err := store.CreateEdge(ctx, e); err != nil {
			t.Fatalf("CreateEdge: %v", err)
		}
	}
}

func TestRun_FullBattery(t *testing.T) {
	store := graphtest.New()
	loadFixture(t, store)

	two := int64(2)
	report, err := Run(context.Background(), store, Config{
		ExpectedOwners:     &two,
		ExpectJointTenancy: true,
		ExpectMultiOwner:   true,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	assertCheck := func(name string, wantCount int64, wantPass bool) {
		t.Helper()
		res := report.Result(name)
		if res == nil {
			t.Fatalf("check %s missing", name)
		}
		if res.Count != wantCount || res.Pass != wantPass {
			t.Fatalf("%s = count %d pass %v, want count %d pass %v", name, res.Count, res.Pass, wantCount, wantPass)
		}
	}

	assertCheck("owner_count", 2, true)
	assertCheck("property_count", 3, true)   // informational, no expectation
	assertCheck("ownership_count", 3, true)  // informational, no expectation
	assertCheck("owner_id_format", 0, true)
	assertCheck("invalid_address_sentinel", 1, false)
	assertCheck("joint_tenancy_edges", 2, true)
	assertCheck("multi_owner_properties", 1, true)
	assertCheck("joint_group_percentage_sum", 1, false) // 60+60 = 120
	assertCheck("year_built_range", 1, false)           // 1420
	assertCheck("negative_valuations", 0, true)

	suspicious := report.Result("suspicious_sale_prices")
	if suspicious == nil || suspicious.Count != 1 || !suspicious.Pass {
		t.Fatalf("suspicious sales should be informational, got %+v", suspicious)
	}

	if report.Passed {
		t.Fatal("report with failed checks must not pass")
	}
	if report.QualityScore >= 100 || report.QualityScore < 0 {
		t.Fatalf("quality score out of range: %f", report.QualityScore)
	}

	dist := report.Result("address_category_distribution")
	if dist == nil || dist.Distribution[CategoryTransportation] != 1 {
		t.Fatalf("distribution should see the railroad parcel, got %+v", dist)
	}
}

func TestRun_MalformedOwnerID(t *testing.T) {
	store := graphtest.New()
	ctx := context.Background()
	for _, id := range []string{"ENT_000042", "OWNER-7", "ENT_42"} {
		if err := store.CreateNode(ctx, domain.KindOwner, id, map[string]any{"id": id}, domain.ModeReject); err != nil {
			t.Fatalf("CreateNode: %v", err)
		}
	}

	report, err := Run(ctx, store, Config{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	res := report.Result("owner_id_format")
	if res == nil || res.Count != 2 || res.Pass {
		t.Fatalf("owner_id_format = %+v, want 2 malformed ids", res)
	}
}

func TestClassifyAddress(t *testing.T) {
	cases := map[string]string{
		"TOWN OF BRAINTREE":       CategoryMunicipal,
		"HOLLIS FIRE STATION":     CategoryMunicipal,
		"OLD COLONY RAILROAD":     CategoryTransportation,
		"ROUTE 37 PARCEL":         CategoryTransportation,
		"55 COMMERCE DR UNIT 2":   CategoryUnit,
		"12 GRANITE ST #4":        CategoryUnit,
		"400 FRANKLIN ST STE 100": CategoryCommercial,
		"2 OAK ST STE":            CategoryCommercial,
		"7 UNION ST SUITE":        CategoryCommercial,
		"SOUTH SHORE PLAZA":       CategoryCommercial,
		"25 ELM AVE":              CategoryResidential,
		"9 LIBERTY STREET":        CategoryResidential,
		"REAR LOT B":              CategoryStandard,
		"":                        CategoryStandard,
	}
	for addr, want := range cases {
		if got := ClassifyAddress(addr); got != want {
			t.Fatalf("ClassifyAddress(%q) = %s, want %s", addr, got, want)
		}
	}
}

func TestClassifyAll(t *testing.T) {
	dist := ClassifyAll([]string{"25 ELM AVE", "9 OAK ST", "TOWN OF BRAINTREE"})
	if dist[CategoryResidential] != 2 || dist[CategoryMunicipal] != 1 {
		t.Fatalf("unexpected distribution: %#v", dist)
	}
}
