package services

import (
	"networth/src/models"
)

// AllocationCalculator computes each holding's share of total portfolio cost
// and total portfolio value.
type AllocationCalculator struct{}

func NewAllocationCalculator() *AllocationCalculator {
	return &AllocationCalculator{}
}

func (a *AllocationCalculator) Allocate(holdings []models.AggregatedHolding) []models.AggregatedHolding {
	var totalCost, totalValue float64
	for _, h := range holdings {
		totalCost += h.CostBase
		totalValue += h.ValueBase
	}

	allocated := make([]models.AggregatedHolding, len(holdings))
	for i, h := range holdings {
		h.CostSharePct = sharePct(h.CostBase, totalCost)
		h.ValueSharePct = sharePct(h.ValueBase, totalValue)
		allocated[i] = h
	}
	return allocated
}

// sharePct guards the degenerate cases: an empty portfolio or a zero part
// both yield 0, never NaN.
func sharePct(part, total float64) float64 {
	if part <= 0 || total <= 0 {
		return 0
	}
	return part / total * 100
}
