package pricing

import (
	"context"

	"github.com/google/uuid"

	"github.com/carevan/carevan/internal/pkg/models"
)

// PricingUC defines the interface for trip pricing business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/carevan/carevan/services/pricing PricingUC
type PricingUC interface {
	// PreviewQuote prices a trip without persisting anything. It backs the
	// dispatch form's live recalculation.
	PreviewQuote(ctx context.Context, req *models.QuoteRequest) (*models.Quote, error)
	// CreateQuote prices a trip, persists the quote, and publishes a
	// quote-created event for downstream billing.
	CreateQuote(ctx context.Context, req *models.QuoteRequest) (*models.Quote, error)
	GetQuote(ctx context.Context, id uuid.UUID) (*models.Quote, error)
}
