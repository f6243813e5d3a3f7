package fare

import "time"

// WheelchairType identifies the wheelchair arrangement for a trip. Transport
// chairs are not representable on purpose: dispatch rejects them before a
// trip is ever priced.
type WheelchairType string

const (
	WheelchairNone   WheelchairType = "none"
	WheelchairManual WheelchairType = "manual"
	WheelchairPower  WheelchairType = "power"
	WheelchairRental WheelchairType = "rental"
)

// ClientType distinguishes private riders from facility accounts.
type ClientType string

const (
	ClientIndividual ClientType = "individual"
	ClientFacility   ClientType = "facility"
)

// LineItemKind classifies a line item within a fare breakdown.
type LineItemKind string

const (
	KindBase      LineItemKind = "base"
	KindSurcharge LineItemKind = "surcharge"
	KindDiscount  LineItemKind = "discount"
	KindTotal     LineItemKind = "total"
)

// LineItem is one labeled, signed monetary entry in a fare breakdown.
type LineItem struct {
	Label       string       `json:"label"`
	AmountCents int64        `json:"amount_cents"`
	Kind        LineItemKind `json:"kind"`
}

// Request carries everything the engine needs to price a trip. Distance and
// counties are resolved by the caller before pricing; the engine performs no
// geocoding or routing of its own.
//
// DistanceMiles is always the one-way distance. The engine doubles it for
// round trips; callers must not pre-double.
type Request struct {
	PickupAddress        string
	DestinationAddress   string
	DistanceMiles        float64
	PickupAt             time.Time
	RoundTrip            bool
	Emergency            bool
	WheelchairType       WheelchairType
	ClientType           ClientType
	Veteran              bool
	AdditionalPassengers int

	// PickupCounty and DestinationCounty are optional pre-resolved county
	// names. Empty means the county could not be determined; pricing then
	// falls open to home-county rates.
	PickupCounty      string
	DestinationCounty string

	// IsEstimated marks the distance as a fallback estimate. It passes
	// through to the result untouched and never changes the math.
	IsEstimated bool
}

// Result is a priced breakdown. LineItems are in insertion order, which is
// significant for display. TotalCents always equals the signed sum of all
// items whose kind is not "total".
type Result struct {
	LineItems       []LineItem `json:"line_items"`
	TotalCents      int64      `json:"total_cents"`
	DistanceMiles   float64    `json:"distance_miles"`
	RoundTrip       bool       `json:"round_trip"`
	CountiesCrossed int        `json:"counties_crossed"`
	IsEstimated     bool       `json:"is_estimated"`
}
