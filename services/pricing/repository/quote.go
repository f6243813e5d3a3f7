package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/carevan/carevan/internal/pkg/fare"
	"github.com/carevan/carevan/internal/pkg/models"
)

// QuoteRepo persists quotes in PostgreSQL
type QuoteRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewQuoteRepository creates a new quote repository
func NewQuoteRepository(cfg *models.Config, db *sqlx.DB) *QuoteRepo {
	return &QuoteRepo{
		cfg: cfg,
		db:  db,
	}
}

// quoteRow is the database shape of a quote. Line items are stored as a
// JSONB document; the formatted breakdown is rehydrated on read, not stored.
type quoteRow struct {
	ID                 uuid.UUID `db:"id"`
	FacilityID         string    `db:"facility_id"`
	PickupAddress      string    `db:"pickup_address"`
	DestinationAddress string    `db:"destination_address"`
	PickupCounty       string    `db:"pickup_county"`
	DestinationCounty  string    `db:"destination_county"`
	PickupAt           time.Time `db:"pickup_at"`
	DistanceMiles      float64   `db:"distance_miles"`
	RoundTrip          bool      `db:"round_trip"`
	CountiesCrossed    int       `db:"counties_crossed"`
	Estimated          bool      `db:"estimated"`
	LineItems          []byte    `db:"line_items"`
	TotalCents         int64     `db:"total_cents"`
	CreatedAt          time.Time `db:"created_at"`
}

// CreateQuote inserts a new quote
func (r *QuoteRepo) CreateQuote(ctx context.Context, quote *models.Quote) error {
	lineItems, err := json.Marshal(quote.LineItems)
	if err != nil {
		return fmt.Errorf("failed to marshal line items: %w", err)
	}

	query := `
		INSERT INTO quotes (
			id, facility_id, pickup_address, destination_address,
			pickup_county, destination_county, pickup_at,
			distance_miles, round_trip, counties_crossed, estimated,
			line_items, total_cents, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err = r.db.ExecContext(
		ctx,
		query,
		quote.ID,
		quote.FacilityID,
		quote.PickupAddress,
		quote.DestinationAddress,
		quote.PickupCounty,
		quote.DestinationCounty,
		quote.PickupAt,
		quote.DistanceMiles,
		quote.RoundTrip,
		quote.CountiesCrossed,
		quote.Estimated,
		lineItems,
		quote.TotalCents,
		quote.CreatedAt,
	)

	return err
}

// GetQuote retrieves a quote by ID
func (r *QuoteRepo) GetQuote(ctx context.Context, id uuid.UUID) (*models.Quote, error) {
	query := `
		SELECT
			id, facility_id, pickup_address, destination_address,
			pickup_county, destination_county, pickup_at,
			distance_miles, round_trip, counties_crossed, estimated,
			line_items, total_cents, created_at
		FROM quotes
		WHERE id = $1
	`

	var row quoteRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrQuoteNotFound
		}
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}

	var lineItems []fare.LineItem
	if err := json.Unmarshal(row.LineItems, &lineItems); err != nil {
		return nil, fmt.Errorf("failed to unmarshal line items: %w", err)
	}

	return &models.Quote{
		ID:                 row.ID,
		FacilityID:         row.FacilityID,
		PickupAddress:      row.PickupAddress,
		DestinationAddress: row.DestinationAddress,
		PickupCounty:       row.PickupCounty,
		DestinationCounty:  row.DestinationCounty,
		PickupAt:           row.PickupAt,
		DistanceMiles:      row.DistanceMiles,
		RoundTrip:          row.RoundTrip,
		CountiesCrossed:    row.CountiesCrossed,
		Estimated:          row.Estimated,
		LineItems:          lineItems,
		Breakdown:          fare.FormatItems(lineItems),
		TotalCents:         row.TotalCents,
		CreatedAt:          row.CreatedAt,
	}, nil
}
