package pricing

import (
	"context"

	"github.com/google/uuid"

	"github.com/carevan/carevan/internal/pkg/models"
)

// QuoteRepo defines the interface for quote data access operations
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/carevan/carevan/services/pricing QuoteRepo
type QuoteRepo interface {
	CreateQuote(ctx context.Context, quote *models.Quote) error
	GetQuote(ctx context.Context, id uuid.UUID) (*models.Quote, error)
}
