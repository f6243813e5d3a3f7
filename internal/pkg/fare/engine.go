package fare

import (
	"fmt"
	"math"
)

// Compute prices a trip. It is deterministic and side-effect free: the same
// request and config always produce the same result, and the engine is safe
// to call from any number of goroutines.
//
// A zero distance is valid input (pickup equals destination, or the caller
// fell back to an estimate of zero); the base fare and flag surcharges still
// apply. Negative distance is a caller bug and fails with ErrInvalidInput.
func Compute(req Request, cfg Config) (*Result, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	run := &runningTotals{}
	run.homeTrip, run.crossed = Classify(req.PickupCounty, req.DestinationCounty, cfg.HomeCounty)

	result := &Result{
		DistanceMiles:   req.DistanceMiles,
		RoundTrip:       req.RoundTrip,
		CountiesCrossed: run.crossed,
		IsEstimated:     req.IsEstimated,
	}

	for _, r := range rules {
		for _, item := range r(req, cfg, run) {
			result.LineItems = append(result.LineItems, item)
			run.signedCents += item.AmountCents
			if item.AmountCents > 0 {
				run.positiveCents += item.AmountCents
			}
		}
	}

	result.TotalCents = run.signedCents
	result.LineItems = append(result.LineItems, LineItem{
		Label:       "Total",
		AmountCents: result.TotalCents,
		Kind:        KindTotal,
	})

	return result, nil
}

func validateRequest(req Request) error {
	if req.DistanceMiles < 0 || math.IsNaN(req.DistanceMiles) || math.IsInf(req.DistanceMiles, 0) {
		return fmt.Errorf("%w: distance %v miles", ErrInvalidInput, req.DistanceMiles)
	}
	if req.PickupAt.IsZero() {
		return fmt.Errorf("%w: pickup time is required", ErrInvalidInput)
	}
	if req.AdditionalPassengers < 0 {
		return fmt.Errorf("%w: additional passengers %d", ErrInvalidInput, req.AdditionalPassengers)
	}

	switch req.WheelchairType {
	case WheelchairNone, WheelchairManual, WheelchairPower, WheelchairRental, "":
	default:
		return fmt.Errorf("%w: wheelchair type %q", ErrInvalidInput, req.WheelchairType)
	}

	switch req.ClientType {
	case ClientIndividual, ClientFacility, "":
	default:
		return fmt.Errorf("%w: client type %q", ErrInvalidInput, req.ClientType)
	}

	return nil
}
