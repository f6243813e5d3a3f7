package invoice

import (
	"context"

	"github.com/carevan/carevan/internal/pkg/models"
)

// InvoiceRepo defines the interface for invoice item data access
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/carevan/carevan/services/invoice InvoiceRepo
type InvoiceRepo interface {
	// InsertItem records a billable trip. Inserting an item whose quote ID
	// already exists is a silent no-op.
	InsertItem(ctx context.Context, item *models.InvoiceItem) error
	ListItems(ctx context.Context, facilityID, month string) ([]models.InvoiceItem, error)
}
