package fare

import "fmt"

// BreakdownLine is a display-ready breakdown entry. Amount is a formatted
// dollar string; use the line items on Result for arithmetic.
type BreakdownLine struct {
	Label  string       `json:"label"`
	Amount string       `json:"amount"`
	Kind   LineItemKind `json:"kind"`
}

// FormatBreakdown renders the result's line items for display, preserving
// insertion order.
func FormatBreakdown(result *Result) []BreakdownLine {
	return FormatItems(result.LineItems)
}

// FormatItems renders a bare line-item slice, for callers that rehydrate
// stored breakdowns.
func FormatItems(items []LineItem) []BreakdownLine {
	lines := make([]BreakdownLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, BreakdownLine{
			Label:  item.Label,
			Amount: FormatCents(item.AmountCents),
			Kind:   item.Kind,
		})
	}
	return lines
}

// FormatCents renders integer cents as a signed dollar string, e.g. 8000 ->
// "$80.00" and -4500 -> "-$45.00".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
