package fare

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	// Wednesday 10:00 local
	weekdayMorning = time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	// Saturday 10:00 local
	saturdayMorning = time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC)
)

func sumExcludingTotal(items []LineItem) int64 {
	var sum int64
	for _, item := range items {
		if item.Kind != KindTotal {
			sum += item.AmountCents
		}
	}
	return sum
}

func TestCompute_RateCardScenarios(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name      string
		req       Request
		wantTotal int64
		wantItems int
	}{
		{
			name: "one way home county weekday",
			req: Request{
				DistanceMiles: 10,
				PickupAt:      weekdayMorning,
			},
			// base 50 + mileage 10*3
			wantTotal: 8000,
			wantItems: 3, // base, mileage, total
		},
		{
			name: "round trip weekend rental veteran",
			req: Request{
				DistanceMiles:  10,
				PickupAt:       saturdayMorning,
				RoundTrip:      true,
				WheelchairType: WheelchairRental,
				ClientType:     ClientIndividual,
				Veteran:        true,
			},
			// base 50+50 + mileage 20*3 + weekend 40 + rental 25 = 225,
			// minus 20% veteran discount
			wantTotal: 18000,
			wantItems: 7,
		},
		{
			name: "emergency crossing two non-home counties",
			req: Request{
				DistanceMiles:     10,
				PickupAt:          weekdayMorning,
				Emergency:         true,
				PickupCounty:      "Delaware",
				DestinationCounty: "Licking",
			},
			// base 50 + mileage 10*4 + county (2-1)*50 + emergency 40
			wantTotal: 18000,
			wantItems: 5,
		},
		{
			name: "zero distance still prices base and flags",
			req: Request{
				DistanceMiles: 0,
				PickupAt:      weekdayMorning,
				Emergency:     true,
			},
			wantTotal: 9000,
			wantItems: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Compute(tt.req, cfg)
			require.NoError(t, err)

			assert.Equal(t, tt.wantTotal, result.TotalCents)
			assert.Len(t, result.LineItems, tt.wantItems)
			assert.Equal(t, tt.wantTotal, sumExcludingTotal(result.LineItems),
				"total must equal the signed sum of non-total items")

			last := result.LineItems[len(result.LineItems)-1]
			assert.Equal(t, KindTotal, last.Kind)
			assert.Equal(t, tt.wantTotal, last.AmountCents)
		})
	}
}

func TestCompute_RoundTripDoublesDistanceAndLegs(t *testing.T) {
	cfg := DefaultConfig()

	result, err := Compute(Request{
		DistanceMiles: 12.5,
		PickupAt:      weekdayMorning,
		RoundTrip:     true,
	}, cfg)
	require.NoError(t, err)

	assert.Equal(t, "Base fare", result.LineItems[0].Label)
	assert.Equal(t, "Additional leg (round trip)", result.LineItems[1].Label)
	assert.Equal(t, cfg.BaseFareCents, result.LineItems[1].AmountCents)

	// 25.0 effective miles at the home rate
	assert.Equal(t, "Mileage (25.0 mi @ $3.00/mi)", result.LineItems[2].Label)
	assert.Equal(t, int64(7500), result.LineItems[2].AmountCents)

	// The echoed distance stays one-way.
	assert.Equal(t, 12.5, result.DistanceMiles)
	assert.True(t, result.RoundTrip)
}

func TestCompute_CountyCrossingAsymmetry(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name        string
		pickup      string
		destination string
		wantCrossed int
		wantFee     int64
	}{
		{"both home", "Franklin", "Franklin", 0, 0},
		{"one non-home no flat fee", "Franklin", "Delaware", 1, 0},
		{"same non-home county both ends", "Delaware", "Delaware", 1, 0},
		{"two distinct non-home counties", "Delaware", "Licking", 2, 5000},
		{"unresolved endpoints fail open to home", "", "", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Compute(Request{
				DistanceMiles:     5,
				PickupAt:          weekdayMorning,
				PickupCounty:      tt.pickup,
				DestinationCounty: tt.destination,
			}, cfg)
			require.NoError(t, err)

			assert.Equal(t, tt.wantCrossed, result.CountiesCrossed)

			var fee int64
			for _, item := range result.LineItems {
				if item.Kind == KindSurcharge {
					fee += item.AmountCents
				}
			}
			assert.Equal(t, tt.wantFee, fee)
		})
	}
}

func TestCompute_OffHoursFiresOnce(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		pickupAt time.Time
		want     int // off-hours items expected
	}{
		{"weekday inside office hours", weekdayMorning, 0},
		{"weekday at open boundary", time.Date(2026, 3, 4, 8, 0, 0, 0, time.UTC), 0},
		{"weekday before open", time.Date(2026, 3, 4, 7, 59, 0, 0, time.UTC), 1},
		{"weekday at close boundary", time.Date(2026, 3, 4, 18, 0, 0, 0, time.UTC), 1},
		{"weekend daytime", saturdayMorning, 1},
		{"weekend late night pays once not twice", time.Date(2026, 3, 7, 22, 30, 0, 0, time.UTC), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Compute(Request{DistanceMiles: 5, PickupAt: tt.pickupAt}, cfg)
			require.NoError(t, err)

			count := 0
			for _, item := range result.LineItems {
				if item.AmountCents == cfg.OffHoursFeeCents && item.Kind == KindSurcharge {
					count++
				}
			}
			assert.Equal(t, tt.want, count)
		})
	}
}

func TestCompute_OwnWheelchairPricesLikeNone(t *testing.T) {
	cfg := DefaultConfig()
	base := Request{DistanceMiles: 10, PickupAt: weekdayMorning}

	none, err := Compute(base, cfg)
	require.NoError(t, err)

	for _, wt := range []WheelchairType{WheelchairManual, WheelchairPower} {
		req := base
		req.WheelchairType = wt
		got, err := Compute(req, cfg)
		require.NoError(t, err)
		assert.Equal(t, none.TotalCents, got.TotalCents)
		assert.Equal(t, none.LineItems, got.LineItems)
	}
}

func TestCompute_FacilityWheelchairWaiver(t *testing.T) {
	cfg := DefaultConfig()
	req := Request{
		DistanceMiles:  10,
		PickupAt:       weekdayMorning,
		WheelchairType: WheelchairRental,
		ClientType:     ClientFacility,
	}

	result, err := Compute(req, cfg)
	require.NoError(t, err)

	// The waived fee stays visible on the breakdown at exactly $0.
	var found bool
	for _, item := range result.LineItems {
		if item.Label == "Wheelchair rental (facility waiver)" {
			found = true
			assert.Zero(t, item.AmountCents)
		}
	}
	assert.True(t, found)

	cfg.WaiveWheelchairFeeForFacilities = false
	result, err = Compute(req, cfg)
	require.NoError(t, err)
	assert.Equal(t, int64(8000+2500), result.TotalCents)
}

func TestCompute_VeteranDiscountTracksPositiveSubtotal(t *testing.T) {
	cfg := DefaultConfig()

	result, err := Compute(Request{
		DistanceMiles:  10,
		PickupAt:       saturdayMorning,
		RoundTrip:      true,
		WheelchairType: WheelchairRental,
		Veteran:        true,
	}, cfg)
	require.NoError(t, err)

	var positives, discount int64
	for _, item := range result.LineItems {
		switch {
		case item.Kind == KindDiscount:
			discount = item.AmountCents
		case item.Kind != KindTotal && item.AmountCents > 0:
			positives += item.AmountCents
		}
	}
	assert.Equal(t, -positives/5, discount)
}

func TestCompute_TotalNeverNegative(t *testing.T) {
	cfg := DefaultConfig()
	cfg.VeteranDiscountPercent = 150

	result, err := Compute(Request{
		DistanceMiles: 10,
		PickupAt:      weekdayMorning,
		Veteran:       true,
	}, cfg)
	require.NoError(t, err)

	assert.Equal(t, int64(0), result.TotalCents)
	assert.Equal(t, result.TotalCents, sumExcludingTotal(result.LineItems))
}

func TestCompute_InvalidInput(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		req  Request
	}{
		{"negative distance", Request{DistanceMiles: -1, PickupAt: weekdayMorning}},
		{"zero pickup time", Request{DistanceMiles: 5}},
		{"unknown wheelchair type", Request{DistanceMiles: 5, PickupAt: weekdayMorning, WheelchairType: "transport"}},
		{"unknown client type", Request{DistanceMiles: 5, PickupAt: weekdayMorning, ClientType: "broker"}},
		{"negative additional passengers", Request{DistanceMiles: 5, PickupAt: weekdayMorning, AdditionalPassengers: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Compute(tt.req, cfg)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCompute_EstimatedFlagPassesThrough(t *testing.T) {
	cfg := DefaultConfig()

	estimated, err := Compute(Request{DistanceMiles: 15, PickupAt: weekdayMorning, IsEstimated: true}, cfg)
	require.NoError(t, err)
	exact, err := Compute(Request{DistanceMiles: 15, PickupAt: weekdayMorning}, cfg)
	require.NoError(t, err)

	assert.True(t, estimated.IsEstimated)
	assert.False(t, exact.IsEstimated)
	// The flag is display-only and never changes the math.
	assert.Equal(t, exact.TotalCents, estimated.TotalCents)
}

func TestCompute_Deterministic(t *testing.T) {
	cfg := DefaultConfig()
	req := Request{
		DistanceMiles:     23.4,
		PickupAt:          saturdayMorning,
		RoundTrip:         true,
		Emergency:         true,
		WheelchairType:    WheelchairRental,
		Veteran:           true,
		PickupCounty:      "Delaware County",
		DestinationCounty: "Licking County",
	}

	first, err := Compute(req, cfg)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Compute(req, cfg)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
