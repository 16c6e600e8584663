package services

import (
	"networth/src/models"
	"sort"
)

// Aggregator merges normalized holdings across accounts into one row per
// (canonical instrument, currency).
type Aggregator struct{}

func NewAggregator() *Aggregator {
	return &Aggregator{}
}

type aggregationKey struct {
	canonicalID string
	currency    string
}

type aggregationAcc struct {
	displayName string
	policy      models.TreatmentPolicy
	quantity    float64
	costTotal   float64
	accounts    map[string]bool
}

// Aggregate sums quantities and computes the quantity-weighted average cost
// per group. Face-value instruments intentionally discard broker-reported
// cost bases and carry a fixed unit cost of par instead; the brokers
// disagree with each other about premium/discount on these and par is the
// one number they all mean. Groups that net out to a non-positive quantity
// are fully closed positions and produce no output row.
func (a *Aggregator) Aggregate(rows []NormalizedHolding) []models.AggregatedHolding {
	groups := make(map[aggregationKey]*aggregationAcc)
	for _, row := range rows {
		key := aggregationKey{canonicalID: row.Canonical.CanonicalID, currency: row.Currency}
		acc, ok := groups[key]
		if !ok {
			acc = &aggregationAcc{
				displayName: row.Canonical.DisplayName,
				policy:      row.Canonical.Policy,
				accounts:    make(map[string]bool),
			}
			groups[key] = acc
		}
		acc.quantity += row.Quantity
		acc.costTotal += row.Quantity * row.CostPerUnit
		acc.accounts[row.AccountID] = true
	}

	holdings := make([]models.AggregatedHolding, 0, len(groups))
	for key, acc := range groups {
		if acc.quantity <= 0 {
			continue
		}

		avgCost := 0.0
		costTotal := acc.costTotal
		if acc.policy == models.TreatmentFaceValue {
			avgCost = models.FaceValueUnitPrice
			costTotal = acc.quantity * models.FaceValueUnitPrice
		} else if acc.quantity > 0 {
			avgCost = acc.costTotal / acc.quantity
		}

		holdings = append(holdings, models.AggregatedHolding{
			CanonicalID:       key.canonicalID,
			DisplayName:       acc.displayName,
			Currency:          key.currency,
			Policy:            acc.policy,
			TotalQuantity:     acc.quantity,
			AvgCostPerUnit:    avgCost,
			TotalCostOriginal: costTotal,
			AccountCount:      len(acc.accounts),
		})
	}

	// Deterministic output order: recomputing from unchanged inputs must
	// yield byte-identical tables.
	sort.Slice(holdings, func(i, j int) bool {
		if holdings[i].CanonicalID != holdings[j].CanonicalID {
			return holdings[i].CanonicalID < holdings[j].CanonicalID
		}
		return holdings[i].Currency < holdings[j].Currency
	})
	return holdings
}
