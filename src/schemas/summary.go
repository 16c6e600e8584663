package schemas

// RecomputeSummary is what a recompute run reports back to its caller for
// logging and alerting.
type RecomputeSummary struct {
	PeriodKey          string   `json:"periodKey"`
	Skipped            bool     `json:"skipped"`
	HoldingsProcessed  int      `json:"holdingsProcessed"`
	RowsSkipped        int      `json:"rowsSkipped"`
	MissingQuotes      int      `json:"missingQuotes"`
	MissingRates       int      `json:"missingRates"`
	TotalCostBase      float64  `json:"totalCostBase"`
	TotalValueBase     float64  `json:"totalValueBase"`
	AveragePLRatio     float64  `json:"averagePlRatio"`
	TotalNetWorthBase  float64  `json:"totalNetWorthBase"`
	DegradedCategories []string `json:"degradedCategories,omitempty"`
}
