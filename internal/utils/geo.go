package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

// GeoCell returns the geohash cell for a coordinate at the given precision.
// Precision 6 cells are roughly 1.2 km across, far smaller than any county,
// which makes them safe cache keys for county lookups.
func GeoCell(lat, lng float64, precision uint) string {
	return geohash.EncodeWithPrecision(lat, lng, precision)
}

// HaversineMiles returns the straight-line distance between two coordinates
// in statute miles.
func HaversineMiles(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusMiles = 3958.8

	rlat1 := lat1 * math.Pi / 180.0
	rlng1 := lng1 * math.Pi / 180.0
	rlat2 := lat2 * math.Pi / 180.0
	rlng2 := lng2 * math.Pi / 180.0

	dLat := rlat2 - rlat1
	dLng := rlng2 - rlng1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMiles * c
}
