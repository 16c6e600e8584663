package services

import (
	"networth/src/models"
	"networth/src/schemas"
)

// PipelineInput is everything a recompute run reads: one immutable snapshot
// of the upstream tables. The pipeline is a pure function of this input.
type PipelineInput struct {
	BaseCurrency    string
	PeriodKey       string
	Holdings        []models.RawHolding
	Quotes          []models.Quote
	Rates           []models.ExchangeRate
	OtherAssets     []models.OtherAsset
	AccountBalances []models.AccountBalance
}

type PipelineResult struct {
	Aggregated   []models.AggregatedHolding
	BalanceSheet schemas.BalanceSheet
	Snapshot     models.PeriodicSnapshot
	Summary      schemas.RecomputeSummary
}

// RunPipeline executes the sequential stages: normalize, aggregate, resolve
// rates, value, allocate, assemble. Each stage consumes the complete output
// of the previous one; nothing here touches the database.
func RunPipeline(rules ClassificationRules, in PipelineInput) PipelineResult {
	normalized, skipped := NewNormalizer(rules).Normalize(in.Holdings)
	aggregated := NewAggregator().Aggregate(normalized)

	tables := NewMarketTables(in.BaseCurrency, in.Quotes, in.Rates)
	resolved, stats := NewRateResolver(tables).Resolve(aggregated)
	valued := NewValuationCalculator().Value(resolved)
	allocated := NewAllocationCalculator().Allocate(valued)

	sheet := NewBalanceSheetAssembler(tables).Assemble(
		in.PeriodKey, allocated, in.OtherAssets, in.AccountBalances,
		countAccounts(in.Holdings, in.AccountBalances))

	var totalCost, totalValue, plSum float64
	for _, h := range allocated {
		totalCost += h.CostBase
		totalValue += h.ValueBase
		plSum += h.PLRatio
	}
	avgPL := 0.0
	if len(allocated) > 0 {
		avgPL = plSum / float64(len(allocated))
	}

	return PipelineResult{
		Aggregated:   allocated,
		BalanceSheet: sheet,
		Snapshot: models.PeriodicSnapshot{
			PeriodKey:           sheet.PeriodKey,
			SecuritiesValueBase: sheet.SecuritiesValueBase,
			InsuranceValueBase:  sheet.InsuranceValueBase,
			FundsValueBase:      sheet.FundsValueBase,
			PropertiesValueBase: sheet.PropertiesValueBase,
			BankDepositsBase:    sheet.BankDepositsBase,
			TotalCashBase:       sheet.TotalCashBase,
			TotalDebtBase:       sheet.TotalDebtBase,
			TotalNetWorthBase:   sheet.TotalNetWorthBase,
			SecurityCount:       sheet.SecurityCount,
			AccountCount:        sheet.AccountCount,
			OtherAssetCount:     sheet.OtherAssetCount,
		},
		Summary: schemas.RecomputeSummary{
			PeriodKey:          in.PeriodKey,
			HoldingsProcessed:  len(allocated),
			RowsSkipped:        skipped,
			MissingQuotes:      stats.MissingQuotes,
			MissingRates:       stats.MissingRates,
			TotalCostBase:      totalCost,
			TotalValueBase:     totalValue,
			AveragePLRatio:     avgPL,
			TotalNetWorthBase:  sheet.TotalNetWorthBase,
			DegradedCategories: sheet.DegradedCategories,
		},
	}
}

func countAccounts(holdings []models.RawHolding, balances []models.AccountBalance) int {
	accounts := make(map[string]bool)
	for _, h := range holdings {
		accounts[h.AccountID] = true
	}
	for _, b := range balances {
		accounts[b.AccountID] = true
	}
	return len(accounts)
}
