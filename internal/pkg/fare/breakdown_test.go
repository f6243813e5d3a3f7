package fare

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCents(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{8000, "$80.00"},
		{-4500, "-$45.00"},
		{0, "$0.00"},
		{5, "$0.05"},
		{123456, "$1234.56"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCents(tt.cents))
	}
}

func TestFormatBreakdown_PreservesOrder(t *testing.T) {
	result, err := Compute(Request{
		DistanceMiles: 10,
		PickupAt:      time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC),
		Veteran:       true,
	}, DefaultConfig())
	require.NoError(t, err)

	lines := FormatBreakdown(result)
	require.Len(t, lines, len(result.LineItems))
	for i, line := range lines {
		assert.Equal(t, result.LineItems[i].Label, line.Label)
		assert.Equal(t, result.LineItems[i].Kind, line.Kind)
		assert.Equal(t, FormatCents(result.LineItems[i].AmountCents), line.Amount)
	}
	assert.Equal(t, KindTotal, lines[len(lines)-1].Kind)
}
