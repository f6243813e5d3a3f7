package fare

import "fmt"

// Config externalizes every tunable fare constant. The dispatch frontends
// used to carry their own copies of these numbers; this is the single source
// of truth now.
type Config struct {
	// BaseFareCents is charged once per leg. A round trip has two legs.
	BaseFareCents int64 `json:"base_fare_cents"`

	// HomeMileRateCents applies when both endpoints are in the home county,
	// CrossMileRateCents otherwise. The cross-county rate covers deadhead
	// positioning and must not undercut the home rate.
	HomeMileRateCents  int64 `json:"home_mile_rate_cents"`
	CrossMileRateCents int64 `json:"cross_mile_rate_cents"`

	// CountyCrossingFeeCents is charged per distinct non-home county beyond
	// the first. One non-home county carries no flat fee; the higher mile
	// rate already accounts for it.
	CountyCrossingFeeCents int64 `json:"county_crossing_fee_cents"`

	OffHoursFeeCents         int64 `json:"off_hours_fee_cents"`
	EmergencyFeeCents        int64 `json:"emergency_fee_cents"`
	WheelchairRentalFeeCents int64 `json:"wheelchair_rental_fee_cents"`

	// VeteranDiscountPercent is applied to the sum of all positive line
	// items and emitted as a negative item.
	VeteranDiscountPercent int64 `json:"veteran_discount_percent"`

	// HomeCounty is the low-rate service area, already normalized (no
	// " County" suffix).
	HomeCounty string `json:"home_county"`

	// Office hours window in local hours. Pickups before OfficeOpenHour or
	// at/after OfficeCloseHour incur the off-hours surcharge.
	OfficeOpenHour  int `json:"office_open_hour"`
	OfficeCloseHour int `json:"office_close_hour"`

	// WaiveWheelchairFeeForFacilities waives the rental fee on facility
	// accounts. Facility contracts include equipment, individuals pay.
	WaiveWheelchairFeeForFacilities bool `json:"waive_wheelchair_fee_for_facilities"`
}

// DefaultConfig returns the current rate card.
func DefaultConfig() Config {
	return Config{
		BaseFareCents:                   5000,
		HomeMileRateCents:               300,
		CrossMileRateCents:              400,
		CountyCrossingFeeCents:          5000,
		OffHoursFeeCents:                4000,
		EmergencyFeeCents:               4000,
		WheelchairRentalFeeCents:        2500,
		VeteranDiscountPercent:          20,
		HomeCounty:                      "Franklin",
		OfficeOpenHour:                  8,
		OfficeCloseHour:                 18,
		WaiveWheelchairFeeForFacilities: true,
	}
}

// Validate checks the configuration at startup. All failures wrap
// ErrUnsupportedConfig.
func (c Config) Validate() error {
	if c.HomeCounty == "" {
		return fmt.Errorf("%w: home county is required", ErrUnsupportedConfig)
	}
	if c.BaseFareCents < 0 || c.HomeMileRateCents < 0 || c.CrossMileRateCents < 0 ||
		c.CountyCrossingFeeCents < 0 || c.OffHoursFeeCents < 0 ||
		c.EmergencyFeeCents < 0 || c.WheelchairRentalFeeCents < 0 {
		return fmt.Errorf("%w: fee amounts must not be negative", ErrUnsupportedConfig)
	}
	if c.CrossMileRateCents < c.HomeMileRateCents {
		return fmt.Errorf("%w: cross-county mile rate must not undercut the home rate", ErrUnsupportedConfig)
	}
	if c.VeteranDiscountPercent < 0 {
		return fmt.Errorf("%w: veteran discount percent must not be negative", ErrUnsupportedConfig)
	}
	if c.OfficeOpenHour < 0 || c.OfficeOpenHour > 23 ||
		c.OfficeCloseHour < 1 || c.OfficeCloseHour > 24 ||
		c.OfficeOpenHour >= c.OfficeCloseHour {
		return fmt.Errorf("%w: office hours window %d-%d is not valid", ErrUnsupportedConfig, c.OfficeOpenHour, c.OfficeCloseHour)
	}
	return nil
}
