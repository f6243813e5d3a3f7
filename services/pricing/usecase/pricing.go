package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/carevan/carevan/internal/pkg/fare"
	"github.com/carevan/carevan/internal/pkg/logger"
	"github.com/carevan/carevan/internal/pkg/models"
	"github.com/carevan/carevan/internal/utils"
	"github.com/carevan/carevan/services/pricing"
)

// PricingUC implements the pricing.PricingUC interface
type PricingUC struct {
	cfg      *models.Config
	repo     pricing.QuoteRepo
	countyGW pricing.CountyGW
	eventGW  pricing.EventGW
}

// NewPricingUC creates a new pricing use case. The fare configuration is
// validated here so a broken rate card fails startup, never a request.
func NewPricingUC(
	cfg *models.Config,
	repo pricing.QuoteRepo,
	countyGW pricing.CountyGW,
	eventGW pricing.EventGW,
) (*PricingUC, error) {
	if err := cfg.Fare.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fare configuration: %w", err)
	}

	return &PricingUC{
		cfg:      cfg,
		repo:     repo,
		countyGW: countyGW,
		eventGW:  eventGW,
	}, nil
}

// PreviewQuote prices a trip without persisting anything
func (uc *PricingUC) PreviewQuote(ctx context.Context, req *models.QuoteRequest) (*models.Quote, error) {
	return uc.price(ctx, req)
}

// CreateQuote prices a trip, persists the quote, and publishes the
// quote-created event for invoicing.
func (uc *PricingUC) CreateQuote(ctx context.Context, req *models.QuoteRequest) (*models.Quote, error) {
	quote, err := uc.price(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.CreateQuote(ctx, quote); err != nil {
		return nil, fmt.Errorf("failed to persist quote: %w", err)
	}

	event := models.QuoteCreatedEvent{
		QuoteID:            quote.ID,
		FacilityID:         quote.FacilityID,
		PickupAddress:      quote.PickupAddress,
		DestinationAddress: quote.DestinationAddress,
		PickupAt:           quote.PickupAt,
		ServiceMonth:       quote.PickupAt.Format("2006-01"),
		TotalCents:         quote.TotalCents,
		Timestamp:          time.Now().UTC(),
	}

	// The quote is the source of truth; a lost event can be backfilled from
	// the quotes table, so publish failures don't fail the call.
	if err := uc.eventGW.PublishQuoteCreated(ctx, event); err != nil {
		logger.Warn("Failed to publish quote created event",
			logger.String("quote_id", quote.ID.String()),
			logger.Err(err))
	}

	return quote, nil
}

// GetQuote retrieves a stored quote by ID
func (uc *PricingUC) GetQuote(ctx context.Context, id uuid.UUID) (*models.Quote, error) {
	return uc.repo.GetQuote(ctx, id)
}

func (uc *PricingUC) price(ctx context.Context, req *models.QuoteRequest) (*models.Quote, error) {
	pickupCounty, destinationCounty := uc.resolveCounties(ctx, req)
	distance, estimated := uc.resolveDistance(req)

	fareReq := fare.Request{
		PickupAddress:        req.PickupAddress,
		DestinationAddress:   req.DestinationAddress,
		DistanceMiles:        distance,
		PickupAt:             req.PickupAt,
		RoundTrip:            req.RoundTrip,
		Emergency:            req.Emergency,
		WheelchairType:       fare.WheelchairType(req.WheelchairType),
		ClientType:           fare.ClientType(req.ClientType),
		Veteran:              req.Veteran,
		AdditionalPassengers: req.AdditionalPassengers,
		PickupCounty:         pickupCounty,
		DestinationCounty:    destinationCounty,
		IsEstimated:          estimated,
	}

	result, err := fare.Compute(fareReq, uc.cfg.Fare)
	if err != nil {
		return nil, err
	}

	return &models.Quote{
		ID:                 uuid.New(),
		FacilityID:         req.FacilityID,
		PickupAddress:      req.PickupAddress,
		DestinationAddress: req.DestinationAddress,
		PickupCounty:       pickupCounty,
		DestinationCounty:  destinationCounty,
		PickupAt:           req.PickupAt,
		DistanceMiles:      result.DistanceMiles,
		RoundTrip:          result.RoundTrip,
		CountiesCrossed:    result.CountiesCrossed,
		Estimated:          result.IsEstimated,
		LineItems:          result.LineItems,
		Breakdown:          fare.FormatBreakdown(result),
		TotalCents:         result.TotalCents,
		CreatedAt:          time.Now().UTC(),
	}, nil
}

// resolveCounties geocodes both endpoints, preferring coordinates over
// address strings. Failures surface as "" and pricing falls open to
// home-county rates; billing availability wins over billing precision.
func (uc *PricingUC) resolveCounties(ctx context.Context, req *models.QuoteRequest) (string, string) {
	var pickup, destination string

	if req.PickupLatitude != nil && req.PickupLongitude != nil {
		pickup = uc.countyGW.ResolveCountyLatLng(ctx, *req.PickupLatitude, *req.PickupLongitude)
	} else if req.PickupAddress != "" {
		pickup = uc.countyGW.ResolveCounty(ctx, req.PickupAddress)
	}

	if req.DestinationLatitude != nil && req.DestinationLongitude != nil {
		destination = uc.countyGW.ResolveCountyLatLng(ctx, *req.DestinationLatitude, *req.DestinationLongitude)
	} else if req.DestinationAddress != "" {
		destination = uc.countyGW.ResolveCounty(ctx, req.DestinationAddress)
	}

	if pickup == "" || destination == "" {
		logger.Warn("County resolution incomplete, pricing falls open to home county",
			logger.String("pickup_county", pickup),
			logger.String("destination_county", destination))
	}

	return pickup, destination
}

// resolveDistance picks the one-way distance to price. Callers that already
// ran the distance matrix send a concrete value; otherwise the service
// estimates from coordinates, or falls back to a flat configured distance.
func (uc *PricingUC) resolveDistance(req *models.QuoteRequest) (float64, bool) {
	if req.DistanceMiles != nil {
		return *req.DistanceMiles, false
	}

	if req.PickupLatitude != nil && req.PickupLongitude != nil &&
		req.DestinationLatitude != nil && req.DestinationLongitude != nil {
		straight := utils.HaversineMiles(
			*req.PickupLatitude, *req.PickupLongitude,
			*req.DestinationLatitude, *req.DestinationLongitude,
		)
		return straight * uc.cfg.Pricing.RoadFactor, true
	}

	return uc.cfg.Pricing.FallbackDistanceMiles, true
}
