package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeoCell(t *testing.T) {
	// Columbus, OH city hall
	cell := GeoCell(39.9612, -82.9988, 6)
	assert.Len(t, cell, 6)

	// Nearby points share a precision-6 cell; distant points do not.
	assert.Equal(t, cell, GeoCell(39.9613, -82.9989, 6))
	assert.NotEqual(t, cell, GeoCell(40.0992, -83.1141, 6))
}

func TestHaversineMiles(t *testing.T) {
	// Columbus to Cleveland is about 126 miles straight-line.
	got := HaversineMiles(39.9612, -82.9988, 41.4993, -81.6944)
	assert.InDelta(t, 126, got, 5)

	assert.Zero(t, HaversineMiles(39.9612, -82.9988, 39.9612, -82.9988))
}
