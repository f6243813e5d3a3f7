package fare

import "strings"

const countySuffix = " County"

// NormalizeCounty strips the literal " County" suffix a geocoder attaches to
// administrative-area names and trims surrounding space. "Franklin County"
// and "Franklin" normalize to the same value.
func NormalizeCounty(name string) string {
	name = strings.TrimSpace(name)
	if strings.HasSuffix(name, countySuffix) {
		name = strings.TrimSpace(strings.TrimSuffix(name, countySuffix))
	}
	return name
}

// Classify determines the county profile of a trip from its two endpoints.
// homeTrip is true iff both endpoints resolve to the home county; it selects
// the cheaper per-mile tier. crossed counts the distinct non-home counties
// the endpoints touch (0, 1, or 2).
//
// An empty county means geocoding failed for that endpoint. The policy is to
// fail open: an unresolved endpoint is billed as home county. Counting is
// endpoint-based only; counties a route merely passes through are not
// tracked.
func Classify(pickupCounty, destinationCounty, homeCounty string) (homeTrip bool, crossed int) {
	home := NormalizeCounty(homeCounty)
	pickup := NormalizeCounty(pickupCounty)
	dest := NormalizeCounty(destinationCounty)

	// Fail open on unresolved endpoints.
	if pickup == "" {
		pickup = home
	}
	if dest == "" {
		dest = home
	}

	pickupHome := strings.EqualFold(pickup, home)
	destHome := strings.EqualFold(dest, home)

	switch {
	case pickupHome && destHome:
		return true, 0
	case !pickupHome && !destHome && !strings.EqualFold(pickup, dest):
		return false, 2
	default:
		return false, 1
	}
}
