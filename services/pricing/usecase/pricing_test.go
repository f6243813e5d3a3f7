package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carevan/carevan/internal/pkg/fare"
	"github.com/carevan/carevan/internal/pkg/models"
	"github.com/carevan/carevan/services/pricing/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Pricing: models.PricingConfig{
			FallbackDistanceMiles: 15.0,
			RoadFactor:            1.3,
		},
		Fare: fare.DefaultConfig(),
	}
}

func floatPtr(v float64) *float64 { return &v }

func setupUC(t *testing.T) (*PricingUC, *mocks.MockQuoteRepo, *mocks.MockCountyGW, *mocks.MockEventGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockQuoteRepo(ctrl)
	countyGW := mocks.NewMockCountyGW(ctrl)
	eventGW := mocks.NewMockEventGW(ctrl)

	uc, err := NewPricingUC(testConfig(), repo, countyGW, eventGW)
	require.NoError(t, err)

	return uc, repo, countyGW, eventGW
}

func TestNewPricingUC_RejectsInvalidFareConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Fare.HomeCounty = ""

	_, err := NewPricingUC(cfg, nil, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, fare.ErrUnsupportedConfig)
}

func TestPreviewQuote_HomeCountyTrip(t *testing.T) {
	uc, _, countyGW, _ := setupUC(t)

	countyGW.EXPECT().ResolveCounty(gomock.Any(), "100 Main St, Columbus").Return("Franklin")
	countyGW.EXPECT().ResolveCounty(gomock.Any(), "200 High St, Columbus").Return("Franklin")

	quote, err := uc.PreviewQuote(context.Background(), &models.QuoteRequest{
		PickupAddress:      "100 Main St, Columbus",
		DestinationAddress: "200 High St, Columbus",
		DistanceMiles:      floatPtr(10),
		PickupAt:           time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		WheelchairType:     "none",
		ClientType:         "individual",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(8000), quote.TotalCents)
	assert.Equal(t, "Franklin", quote.PickupCounty)
	assert.Equal(t, "Franklin", quote.DestinationCounty)
	assert.Equal(t, 0, quote.CountiesCrossed)
	assert.False(t, quote.Estimated)
	assert.NotEqual(t, uuid.Nil, quote.ID)
	assert.Len(t, quote.Breakdown, len(quote.LineItems))
	assert.Equal(t, "$80.00", quote.Breakdown[len(quote.Breakdown)-1].Amount)
}

func TestPreviewQuote_PrefersCoordinatesForCounty(t *testing.T) {
	uc, _, countyGW, _ := setupUC(t)

	countyGW.EXPECT().ResolveCountyLatLng(gomock.Any(), 39.96, -83.0).Return("Franklin")
	countyGW.EXPECT().ResolveCounty(gomock.Any(), "1 Hospital Dr, Delaware").Return("Delaware")

	quote, err := uc.PreviewQuote(context.Background(), &models.QuoteRequest{
		PickupAddress:      "100 Main St, Columbus",
		PickupLatitude:     floatPtr(39.96),
		PickupLongitude:    floatPtr(-83.0),
		DestinationAddress: "1 Hospital Dr, Delaware",
		DistanceMiles:      floatPtr(10),
		PickupAt:           time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		WheelchairType:     "none",
		ClientType:         "individual",
	})
	require.NoError(t, err)

	assert.Equal(t, "Franklin", quote.PickupCounty)
	assert.Equal(t, "Delaware", quote.DestinationCounty)
	assert.Equal(t, 1, quote.CountiesCrossed)
}

func TestPreviewQuote_FailedResolutionFallsOpen(t *testing.T) {
	uc, _, countyGW, _ := setupUC(t)

	countyGW.EXPECT().ResolveCounty(gomock.Any(), gomock.Any()).Return("").Times(2)

	quote, err := uc.PreviewQuote(context.Background(), &models.QuoteRequest{
		PickupAddress:      "unparseable",
		DestinationAddress: "also unparseable",
		DistanceMiles:      floatPtr(10),
		PickupAt:           time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		WheelchairType:     "none",
		ClientType:         "individual",
	})
	require.NoError(t, err)

	// unresolved counties are billed as home-county travel
	assert.Equal(t, int64(8000), quote.TotalCents)
	assert.Equal(t, 0, quote.CountiesCrossed)
}

func TestPreviewQuote_FallbackDistanceIsEstimated(t *testing.T) {
	uc, _, countyGW, _ := setupUC(t)

	countyGW.EXPECT().ResolveCounty(gomock.Any(), gomock.Any()).Return("Franklin").Times(2)

	quote, err := uc.PreviewQuote(context.Background(), &models.QuoteRequest{
		PickupAddress:      "100 Main St, Columbus",
		DestinationAddress: "200 High St, Columbus",
		PickupAt:           time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		WheelchairType:     "none",
		ClientType:         "individual",
	})
	require.NoError(t, err)

	assert.True(t, quote.Estimated)
	assert.Equal(t, 15.0, quote.DistanceMiles)
	// 5000 base + 15 * 300
	assert.Equal(t, int64(9500), quote.TotalCents)
}

func TestPreviewQuote_CoordinateDistanceEstimate(t *testing.T) {
	uc, _, countyGW, _ := setupUC(t)

	countyGW.EXPECT().ResolveCountyLatLng(gomock.Any(), gomock.Any(), gomock.Any()).Return("Franklin").Times(2)

	quote, err := uc.PreviewQuote(context.Background(), &models.QuoteRequest{
		PickupAddress:        "100 Main St, Columbus",
		PickupLatitude:       floatPtr(39.9612),
		PickupLongitude:      floatPtr(-82.9988),
		DestinationAddress:   "200 High St, Columbus",
		DestinationLatitude:  floatPtr(40.1062),
		DestinationLongitude: floatPtr(-82.9988),
		PickupAt:             time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		WheelchairType:       "none",
		ClientType:           "individual",
	})
	require.NoError(t, err)

	assert.True(t, quote.Estimated)
	// ~10 straight-line miles scaled by the road factor
	assert.InDelta(t, 13.0, quote.DistanceMiles, 0.5)
}

func TestPreviewQuote_InvalidRequest(t *testing.T) {
	uc, _, countyGW, _ := setupUC(t)

	countyGW.EXPECT().ResolveCounty(gomock.Any(), gomock.Any()).Return("Franklin").Times(2)

	_, err := uc.PreviewQuote(context.Background(), &models.QuoteRequest{
		PickupAddress:      "100 Main St, Columbus",
		DestinationAddress: "200 High St, Columbus",
		DistanceMiles:      floatPtr(10),
		PickupAt:           time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		WheelchairType:     "transport",
		ClientType:         "individual",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, fare.ErrInvalidInput)
}

func TestCreateQuote_PersistsAndPublishes(t *testing.T) {
	uc, repo, countyGW, eventGW := setupUC(t)

	countyGW.EXPECT().ResolveCounty(gomock.Any(), gomock.Any()).Return("Franklin").Times(2)

	var persisted *models.Quote
	repo.EXPECT().CreateQuote(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q *models.Quote) error {
			persisted = q
			return nil
		})

	var published models.QuoteCreatedEvent
	eventGW.EXPECT().PublishQuoteCreated(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.QuoteCreatedEvent) error {
			published = e
			return nil
		})

	quote, err := uc.CreateQuote(context.Background(), &models.QuoteRequest{
		FacilityID:         "sunrise-manor",
		PickupAddress:      "100 Main St, Columbus",
		DestinationAddress: "200 High St, Columbus",
		DistanceMiles:      floatPtr(10),
		PickupAt:           time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		WheelchairType:     "none",
		ClientType:         "facility",
	})
	require.NoError(t, err)

	require.NotNil(t, persisted)
	assert.Equal(t, quote.ID, persisted.ID)

	assert.Equal(t, quote.ID, published.QuoteID)
	assert.Equal(t, "sunrise-manor", published.FacilityID)
	assert.Equal(t, "2026-03", published.ServiceMonth)
	assert.Equal(t, quote.TotalCents, published.TotalCents)
}

func TestCreateQuote_RepoFailure(t *testing.T) {
	uc, repo, countyGW, _ := setupUC(t)

	countyGW.EXPECT().ResolveCounty(gomock.Any(), gomock.Any()).Return("Franklin").Times(2)
	repo.EXPECT().CreateQuote(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	_, err := uc.CreateQuote(context.Background(), &models.QuoteRequest{
		PickupAddress:      "100 Main St, Columbus",
		DestinationAddress: "200 High St, Columbus",
		DistanceMiles:      floatPtr(10),
		PickupAt:           time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		WheelchairType:     "none",
		ClientType:         "individual",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to persist quote")
}

func TestCreateQuote_PublishFailureDoesNotFail(t *testing.T) {
	uc, repo, countyGW, eventGW := setupUC(t)

	countyGW.EXPECT().ResolveCounty(gomock.Any(), gomock.Any()).Return("Franklin").Times(2)
	repo.EXPECT().CreateQuote(gomock.Any(), gomock.Any()).Return(nil)
	eventGW.EXPECT().PublishQuoteCreated(gomock.Any(), gomock.Any()).Return(errors.New("nsqd unreachable"))

	quote, err := uc.CreateQuote(context.Background(), &models.QuoteRequest{
		PickupAddress:      "100 Main St, Columbus",
		DestinationAddress: "200 High St, Columbus",
		DistanceMiles:      floatPtr(10),
		PickupAt:           time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		WheelchairType:     "none",
		ClientType:         "individual",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(8000), quote.TotalCents)
}

func TestGetQuote_Delegates(t *testing.T) {
	uc, repo, _, _ := setupUC(t)

	id := uuid.New()
	want := &models.Quote{ID: id, TotalCents: 8000}
	repo.EXPECT().GetQuote(gomock.Any(), id).Return(want, nil)

	got, err := uc.GetQuote(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetQuote_NotFound(t *testing.T) {
	uc, repo, _, _ := setupUC(t)

	id := uuid.New()
	repo.EXPECT().GetQuote(gomock.Any(), id).Return(nil, models.ErrQuoteNotFound)

	_, err := uc.GetQuote(context.Background(), id)
	assert.ErrorIs(t, err, models.ErrQuoteNotFound)
}
