package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/carevan/carevan/internal/pkg/models"
)

// InvoiceRepo persists invoice items in PostgreSQL
type InvoiceRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(cfg *models.Config, db *sqlx.DB) *InvoiceRepo {
	return &InvoiceRepo{
		cfg: cfg,
		db:  db,
	}
}

// InsertItem records a billable trip. The quote_id conflict clause makes
// event redelivery safe: a replayed quote event inserts nothing.
func (r *InvoiceRepo) InsertItem(ctx context.Context, item *models.InvoiceItem) error {
	query := `
		INSERT INTO invoice_items (
			id, quote_id, facility_id, service_month,
			description, pickup_at, amount_cents, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (quote_id) DO NOTHING
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		item.ID,
		item.QuoteID,
		item.FacilityID,
		item.ServiceMonth,
		item.Description,
		item.PickupAt,
		item.AmountCents,
		item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert invoice item: %w", err)
	}

	return nil
}

// ListItems returns a facility's billable trips for a service month,
// ordered by pickup time
func (r *InvoiceRepo) ListItems(ctx context.Context, facilityID, month string) ([]models.InvoiceItem, error) {
	query := `
		SELECT
			id, quote_id, facility_id, service_month,
			description, pickup_at, amount_cents, created_at
		FROM invoice_items
		WHERE facility_id = $1 AND service_month = $2
		ORDER BY pickup_at ASC
	`

	items := []models.InvoiceItem{}
	if err := r.db.SelectContext(ctx, &items, query, facilityID, month); err != nil {
		return nil, fmt.Errorf("failed to list invoice items: %w", err)
	}

	return items, nil
}
