package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidMonth is returned when a service month is not in YYYY-MM form.
var ErrInvalidMonth = errors.New("invalid service month, expected YYYY-MM")

// InvoiceItem is one billable trip recorded for a facility. Items are keyed
// by quote ID so replayed events never double-bill.
type InvoiceItem struct {
	ID           uuid.UUID `json:"id" db:"id"`
	QuoteID      uuid.UUID `json:"quote_id" db:"quote_id"`
	FacilityID   string    `json:"facility_id" db:"facility_id"`
	ServiceMonth string    `json:"service_month" db:"service_month"` // YYYY-MM
	Description  string    `json:"description" db:"description"`
	PickupAt     time.Time `json:"pickup_at" db:"pickup_at"`
	AmountCents  int64     `json:"amount_cents" db:"amount_cents"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Invoice is a derived monthly view over a facility's billable items.
// Regenerating it is idempotent; nothing is persisted per generation.
type Invoice struct {
	FacilityID   string        `json:"facility_id"`
	ServiceMonth string        `json:"service_month"`
	Items        []InvoiceItem `json:"items"`
	TripCount    int           `json:"trip_count"`
	TotalCents   int64         `json:"total_cents"`
	Total        string        `json:"total"`
	GeneratedAt  time.Time     `json:"generated_at"`
}
