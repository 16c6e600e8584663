package services

import (
	"networth/src/models"
)

// ValuationCalculator converts each holding's cost and market value into the
// base currency and computes the profit/loss ratio.
type ValuationCalculator struct{}

func NewValuationCalculator() *ValuationCalculator {
	return &ValuationCalculator{}
}

// Value totals each holding in its own currency first and converts once,
// rather than converting per unit and summing, so rounding error does not
// compound across rows.
func (v *ValuationCalculator) Value(holdings []models.AggregatedHolding) []models.AggregatedHolding {
	valued := make([]models.AggregatedHolding, len(holdings))
	for i, h := range holdings {
		h.CostBase = h.TotalCostOriginal * h.FxRate
		h.ValueBase = h.TotalQuantity * h.CurrentPrice * h.FxRate
		if h.CostBase > 0 {
			h.PLRatio = (h.ValueBase - h.CostBase) / h.CostBase
		} else {
			// Zero cost basis: a ratio is meaningless, report 0 instead of
			// dividing.
			h.PLRatio = 0
		}
		valued[i] = h
	}
	return valued
}
