package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/carevan/carevan/internal/pkg/fare"
)

// ErrQuoteNotFound is returned when a quote ID does not exist.
var ErrQuoteNotFound = errors.New("quote not found")

// QuoteRequest is the inbound payload for pricing a trip. DistanceMiles is
// optional: when absent the service estimates one (coordinates if present,
// flat fallback otherwise) and flags the quote as estimated.
type QuoteRequest struct {
	FacilityID           string    `json:"facility_id,omitempty"`
	PickupAddress        string    `json:"pickup_address"`
	DestinationAddress   string    `json:"destination_address"`
	PickupLatitude       *float64  `json:"pickup_latitude,omitempty"`
	PickupLongitude      *float64  `json:"pickup_longitude,omitempty"`
	DestinationLatitude  *float64  `json:"destination_latitude,omitempty"`
	DestinationLongitude *float64  `json:"destination_longitude,omitempty"`
	DistanceMiles        *float64  `json:"distance_miles,omitempty"`
	PickupAt             time.Time `json:"pickup_at"`
	RoundTrip            bool      `json:"round_trip"`
	Emergency            bool      `json:"emergency"`
	WheelchairType       string    `json:"wheelchair_type"`
	ClientType           string    `json:"client_type"`
	Veteran              bool      `json:"veteran"`
	AdditionalPassengers int       `json:"additional_passengers"`
}

// Quote is a priced trip. Line items carry the full signed breakdown; the
// county and distance fields are echoed from the engine so invoicing never
// re-derives them.
type Quote struct {
	ID                 uuid.UUID            `json:"id" db:"id"`
	FacilityID         string               `json:"facility_id,omitempty" db:"facility_id"`
	PickupAddress      string               `json:"pickup_address" db:"pickup_address"`
	DestinationAddress string               `json:"destination_address" db:"destination_address"`
	PickupCounty       string               `json:"pickup_county,omitempty" db:"pickup_county"`
	DestinationCounty  string               `json:"destination_county,omitempty" db:"destination_county"`
	PickupAt           time.Time            `json:"pickup_at" db:"pickup_at"`
	DistanceMiles      float64              `json:"distance_miles" db:"distance_miles"`
	RoundTrip          bool                 `json:"round_trip" db:"round_trip"`
	CountiesCrossed    int                  `json:"counties_crossed" db:"counties_crossed"`
	Estimated          bool                 `json:"estimated" db:"estimated"`
	LineItems          []fare.LineItem      `json:"line_items"`
	Breakdown          []fare.BreakdownLine `json:"breakdown,omitempty"`
	TotalCents         int64                `json:"total_cents" db:"total_cents"`
	CreatedAt          time.Time            `json:"created_at" db:"created_at"`
}

// QuoteCreatedEvent is published to NSQ when a quote is persisted. The
// service month is precomputed so consumers bucket trips without date math
// disagreements.
type QuoteCreatedEvent struct {
	QuoteID            uuid.UUID `json:"quote_id"`
	FacilityID         string    `json:"facility_id,omitempty"`
	PickupAddress      string    `json:"pickup_address"`
	DestinationAddress string    `json:"destination_address"`
	PickupAt           time.Time `json:"pickup_at"`
	ServiceMonth       string    `json:"service_month"` // YYYY-MM of the pickup
	TotalCents         int64     `json:"total_cents"`
	Timestamp          time.Time `json:"timestamp"`
}
