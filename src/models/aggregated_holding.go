package models

// AggregatedHolding is one instrument aggregated across every contributing
// account, in a single currency. The table is fully rebuilt on each
// recompute run; field names are stable because downstream report consumers
// query it directly.
type AggregatedHolding struct {
	CanonicalID       string          `db:"canonical_id" json:"canonicalId"`
	DisplayName       string          `db:"display_name" json:"displayName"`
	Currency          string          `db:"currency" json:"currency"`
	Policy            TreatmentPolicy `db:"treatment_policy" json:"treatmentPolicy"`
	TotalQuantity     float64         `db:"total_quantity" json:"totalQuantity"`
	AvgCostPerUnit    float64         `db:"avg_cost_per_unit" json:"avgCostPerUnit"`
	TotalCostOriginal float64         `db:"total_cost_original" json:"totalCostOriginal"`
	AccountCount      int             `db:"account_count" json:"accountCount"`
	CurrentPrice      float64         `db:"current_price" json:"currentPrice"`
	CostBase          float64         `db:"cost_base" json:"costBase"`
	ValueBase         float64         `db:"value_base" json:"valueBase"`
	PLRatio           float64         `db:"pl_ratio" json:"plRatio"`
	CostSharePct      float64         `db:"cost_share_pct" json:"costSharePct"`
	ValueSharePct     float64         `db:"value_share_pct" json:"valueSharePct"`

	// Carried between pipeline stages, not persisted.
	FxRate      float64 `db:"-" json:"-"`
	RateMissing bool    `db:"-" json:"-"`
}
