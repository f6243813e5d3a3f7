package pricing

import (
	"context"

	"github.com/carevan/carevan/internal/pkg/models"
)

// CountyGW resolves trip endpoints to county names through the external
// geocoding collaborator. Resolution never fails the pricing path: an
// endpoint that cannot be resolved comes back as "" and pricing falls open
// to home-county rates.
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/carevan/carevan/services/pricing CountyGW,EventGW
type CountyGW interface {
	ResolveCounty(ctx context.Context, address string) string
	ResolveCountyLatLng(ctx context.Context, lat, lng float64) string
}

// EventGW publishes pricing events to the message bus
type EventGW interface {
	PublishQuoteCreated(ctx context.Context, event models.QuoteCreatedEvent) error
}
