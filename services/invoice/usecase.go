package invoice

import (
	"context"

	"github.com/carevan/carevan/internal/pkg/models"
)

// InvoiceUC defines the interface for facility invoicing business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/carevan/carevan/services/invoice InvoiceUC
type InvoiceUC interface {
	// RecordBillableTrip adds a priced trip to its facility's monthly
	// invoice. Recording the same quote twice is a no-op.
	RecordBillableTrip(ctx context.Context, event models.QuoteCreatedEvent) error
	// GetMonthlyInvoice builds the invoice for a facility and service month
	// (YYYY-MM) from the recorded items.
	GetMonthlyInvoice(ctx context.Context, facilityID, month string) (*models.Invoice, error)
}
