package fare

import (
	"fmt"
	"math"
	"time"
)

// runningTotals is the context a rule sees when it fires. positiveCents only
// accumulates positive amounts so a percentage discount has a stable base
// regardless of how the rules above it are ordered.
type runningTotals struct {
	homeTrip      bool
	crossed       int
	positiveCents int64
	signedCents   int64
}

// rule inspects the request and contributes zero or more line items. Rules
// run in a fixed order; the discount rule must stay last so "sum so far" is
// well defined.
type rule func(req Request, cfg Config, run *runningTotals) []LineItem

var rules = []rule{
	baseFareRule,
	distanceRule,
	countyCrossingRule,
	offHoursRule,
	emergencyRule,
	wheelchairRule,
	veteranDiscountRule,
}

// baseFareRule charges the flat base fare once per leg.
func baseFareRule(req Request, cfg Config, _ *runningTotals) []LineItem {
	items := []LineItem{{
		Label:       "Base fare",
		AmountCents: cfg.BaseFareCents,
		Kind:        KindBase,
	}}
	if req.RoundTrip {
		items = append(items, LineItem{
			Label:       "Additional leg (round trip)",
			AmountCents: cfg.BaseFareCents,
			Kind:        KindBase,
		})
	}
	return items
}

// distanceRule charges the effective mileage at the tier the county profile
// selects. The request carries one-way distance; round trips double it here.
func distanceRule(req Request, cfg Config, run *runningTotals) []LineItem {
	effective := req.DistanceMiles
	if req.RoundTrip {
		effective *= 2
	}

	rate := cfg.CrossMileRateCents
	if run.homeTrip {
		rate = cfg.HomeMileRateCents
	}

	amount := int64(math.Round(effective * float64(rate)))
	return []LineItem{{
		Label:       fmt.Sprintf("Mileage (%.1f mi @ $%.2f/mi)", effective, float64(rate)/100),
		AmountCents: amount,
		Kind:        KindBase,
	}}
}

// countyCrossingRule charges per distinct non-home county beyond the first.
// A single non-home county carries no flat fee: the cross-county mile rate
// already prices that deviation. This asymmetry is intentional.
func countyCrossingRule(req Request, cfg Config, run *runningTotals) []LineItem {
	if run.crossed < 2 {
		return nil
	}
	extra := int64(run.crossed - 1)
	return []LineItem{{
		Label:       fmt.Sprintf("County crossing surcharge (%d counties)", run.crossed),
		AmountCents: extra * cfg.CountyCrossingFeeCents,
		Kind:        KindSurcharge,
	}}
}

// offHoursRule charges a flat surcharge for weekend or outside-office-hours
// pickups. The two conditions are OR'd; a late Saturday pickup pays once.
func offHoursRule(req Request, cfg Config, _ *runningTotals) []LineItem {
	weekday := req.PickupAt.Weekday()
	weekend := weekday == time.Saturday || weekday == time.Sunday
	hour := req.PickupAt.Hour()
	afterHours := hour < cfg.OfficeOpenHour || hour >= cfg.OfficeCloseHour

	if !weekend && !afterHours {
		return nil
	}

	label := "After-hours pickup surcharge"
	if weekend {
		label = "Weekend pickup surcharge"
	}
	return []LineItem{{
		Label:       label,
		AmountCents: cfg.OffHoursFeeCents,
		Kind:        KindSurcharge,
	}}
}

func emergencyRule(req Request, cfg Config, _ *runningTotals) []LineItem {
	if !req.Emergency {
		return nil
	}
	return []LineItem{{
		Label:       "Emergency trip surcharge",
		AmountCents: cfg.EmergencyFeeCents,
		Kind:        KindSurcharge,
	}}
}

// wheelchairRule charges the rental fee when the company provides the chair.
// Clients riding their own manual or power chair pay nothing and no item is
// emitted. Facility accounts can have the fee waived by contract; the waived
// item is kept at $0 so the waiver shows on the breakdown.
func wheelchairRule(req Request, cfg Config, _ *runningTotals) []LineItem {
	if req.WheelchairType != WheelchairRental {
		return nil
	}
	if req.ClientType == ClientFacility && cfg.WaiveWheelchairFeeForFacilities {
		return []LineItem{{
			Label:       "Wheelchair rental (facility waiver)",
			AmountCents: 0,
			Kind:        KindSurcharge,
		}}
	}
	return []LineItem{{
		Label:       "Wheelchair rental",
		AmountCents: cfg.WheelchairRentalFeeCents,
		Kind:        KindSurcharge,
	}}
}

// veteranDiscountRule emits a negative item worth a configured share of all
// positive items so far. It depends only on the running sums, never on which
// rules produced them, and is capped so the signed total cannot go below
// zero.
func veteranDiscountRule(req Request, cfg Config, run *runningTotals) []LineItem {
	if !req.Veteran || cfg.VeteranDiscountPercent == 0 {
		return nil
	}

	discount := int64(math.Round(float64(run.positiveCents) * float64(cfg.VeteranDiscountPercent) / 100))
	if discount > run.signedCents {
		discount = run.signedCents
	}
	if discount <= 0 {
		return nil
	}
	return []LineItem{{
		Label:       fmt.Sprintf("Veteran discount (%d%%)", cfg.VeteranDiscountPercent),
		AmountCents: -discount,
		Kind:        KindDiscount,
	}}
}
