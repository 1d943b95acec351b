package audit

import "strings"

// Address categories used by the distribution check. The classifier is a
// pure function so it can be exercised without a store.
const (
	CategoryMunicipal      = "municipal"
	CategoryTransportation = "transportation"
	CategoryCommercial     = "commercial"
	CategoryUnit           = "unit"
	CategoryResidential    = "residential"
	CategoryStandard       = "standard"
)

var streetSuffixes = []string{
	" ST", " STREET", " AVE", " AVENUE", " RD", " ROAD", " DR", " DRIVE",
	" LN", " LANE", " CIR", " CIRCLE", " WAY", " CT", " COURT", " TER",
	" TERRACE", " PL", " PLACE",
}

// ClassifyAddress buckets one already-normalized address string. The first
// matching category wins; the order goes from the most specific markers to
// the most generic.
func ClassifyAddress(addr string) string {
	a := strings.ToUpper(strings.TrimSpace(addr))

	switch {
	case containsAny(a, "TOWN OF", "CITY OF", "COMMONWEALTH", "MUNICIPAL", "SCHOOL", "FIRE STATION", "CEMETERY", "LIBRARY", "TOWN HALL"):
		return CategoryMunicipal
	case containsAny(a, "RAILROAD", "RAIL ", "HIGHWAY", "TURNPIKE", "ROUTE ", "RTE ", "MBTA"):
		return CategoryTransportation
	case containsAny(a, "#", " UNIT", " APT", " SUITE") || hasAbbrevMarker(a, " STE"):
		if containsAny(a, " SUITE") || hasAbbrevMarker(a, " STE") {
			return CategoryCommercial
		}
		return CategoryUnit
	case containsAny(a, "PLAZA", "SHOPPING", " MALL", " OFFICE", " WAREHOUSE"):
		return CategoryCommercial
	case startsWithNumber(a) && hasStreetSuffix(a):
		return CategoryResidential
	}
	return CategoryStandard
}

// ClassifyAll folds a list of addresses into a category distribution.
func ClassifyAll(addresses []string) map[string]int64 {
	dist := make(map[string]int64)
	for _, addr := range addresses {
		dist[ClassifyAddress(addr)]++
	}
	return dist
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// hasAbbrevMarker matches an abbreviation that must close a word: either
// mid-address followed by a space, or ending the address outright.
func hasAbbrevMarker(s, marker string) bool {
	return strings.HasSuffix(s, marker) || strings.Contains(s, marker+" ")
}

func startsWithNumber(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

func hasStreetSuffix(s string) bool {
	for _, suffix := range streetSuffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}
