package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/carevan/carevan/internal/pkg/fare"
	"github.com/carevan/carevan/internal/pkg/models"
	"github.com/carevan/carevan/services/invoice"
)

// InvoiceUC implements the invoice.InvoiceUC interface
type InvoiceUC struct {
	cfg  *models.Config
	repo invoice.InvoiceRepo
}

// NewInvoiceUC creates a new invoice use case
func NewInvoiceUC(cfg *models.Config, repo invoice.InvoiceRepo) *InvoiceUC {
	return &InvoiceUC{
		cfg:  cfg,
		repo: repo,
	}
}

// RecordBillableTrip converts a quote-created event into an invoice item.
// Events without a facility are private-pay trips and are not invoiced.
func (uc *InvoiceUC) RecordBillableTrip(ctx context.Context, event models.QuoteCreatedEvent) error {
	if event.FacilityID == "" {
		return nil
	}
	if event.QuoteID == uuid.Nil {
		return fmt.Errorf("event is missing a quote ID")
	}

	month := event.ServiceMonth
	if month == "" {
		month = event.PickupAt.Format("2006-01")
	}
	if _, err := time.Parse("2006-01", month); err != nil {
		return fmt.Errorf("event has malformed service month %q: %w", month, err)
	}

	item := &models.InvoiceItem{
		ID:           uuid.New(),
		QuoteID:      event.QuoteID,
		FacilityID:   event.FacilityID,
		ServiceMonth: month,
		Description:  fmt.Sprintf("%s to %s", event.PickupAddress, event.DestinationAddress),
		PickupAt:     event.PickupAt,
		AmountCents:  event.TotalCents,
		CreatedAt:    time.Now().UTC(),
	}

	return uc.repo.InsertItem(ctx, item)
}

// GetMonthlyInvoice builds a facility's invoice for one service month
func (uc *InvoiceUC) GetMonthlyInvoice(ctx context.Context, facilityID, month string) (*models.Invoice, error) {
	if facilityID == "" {
		return nil, fmt.Errorf("facility ID is required")
	}
	if _, err := time.Parse("2006-01", month); err != nil {
		return nil, models.ErrInvalidMonth
	}

	items, err := uc.repo.ListItems(ctx, facilityID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoice items: %w", err)
	}

	var total int64
	for _, item := range items {
		total += item.AmountCents
	}

	return &models.Invoice{
		FacilityID:   facilityID,
		ServiceMonth: month,
		Items:        items,
		TripCount:    len(items),
		TotalCents:   total,
		Total:        fare.FormatCents(total),
		GeneratedAt:  time.Now().UTC(),
	}, nil
}
