package services_test

import (
	"testing"
	"time"

	"networth/src/models"
	"networth/src/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pipelineInput() services.PipelineInput {
	asOf := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	return services.PipelineInput{
		BaseCurrency: "USD",
		PeriodKey:    "2026-08-01",
		Holdings: []models.RawHolding{
			{AccountID: "acc-1", InstrumentCode: "AAPL", Quantity: 10, CostPerUnit: 150, Currency: "USD"},
			{AccountID: "acc-2", InstrumentCode: "aapl", Quantity: 5, CostPerUnit: 170, Currency: "USD"},
			{AccountID: "acc-1", InstrumentCode: "TF Float A", Quantity: 1000, CostPerUnit: 0.98, Currency: "USD"},
			{AccountID: "acc-2", InstrumentCode: "US912797", Description: "Treasury Bill", Quantity: 500, CostPerUnit: 1.01, Currency: "USD"},
			{AccountID: "acc-2", InstrumentCode: "DELISTED", Quantity: 20, CostPerUnit: 30, Currency: "USD"},
			{AccountID: "acc-2", InstrumentCode: "", Quantity: 10, CostPerUnit: 1, Currency: "USD"},
			{AccountID: "acc-2", InstrumentCode: "VOO", Quantity: 0, CostPerUnit: 400, Currency: "USD"},
		},
		Quotes: []models.Quote{
			{InstrumentCode: "AAPL", Price: 180, Currency: "USD", AsOf: asOf},
		},
		Rates: []models.ExchangeRate{
			{FromCurrency: "EUR", ToCurrency: "USD", Rate: 1.1, AsOf: asOf},
		},
		OtherAssets: []models.OtherAsset{
			{AssetID: "fund-1", Category: models.CategoryFund, Currency: "EUR", Value: 1000},
		},
		AccountBalances: []models.AccountBalance{
			{AccountID: "acc-3", BaseCurrency: "USD", CashOriginal: 500, DebtOriginal: 100},
		},
	}
}

func TestRunPipeline(t *testing.T) {
	result := services.RunPipeline(services.DefaultClassificationRules(), pipelineInput())

	require.Len(t, result.Aggregated, 3)
	byID := make(map[string]models.AggregatedHolding)
	for _, h := range result.Aggregated {
		byID[h.CanonicalID] = h
	}

	t.Run("standard holding is merged and valued", func(t *testing.T) {
		aapl, ok := byID["AAPL"]
		require.True(t, ok)
		assert.Equal(t, 15.0, aapl.TotalQuantity)
		assert.InDelta(t, 2350.0, aapl.TotalCostOriginal, 1e-9)
		assert.InDelta(t, 2700.0, aapl.ValueBase, 1e-9)
		assert.Equal(t, 2, aapl.AccountCount)
	})

	t.Run("face value holdings collapse and price at par", func(t *testing.T) {
		gov, ok := byID[models.FaceValueCanonicalID]
		require.True(t, ok)
		assert.Equal(t, 1500.0, gov.TotalQuantity)
		assert.InDelta(t, 1500.0, gov.ValueBase, 1e-9)
		assert.Equal(t, 0.0, gov.PLRatio)
	})

	t.Run("missing quote is visible as total loss", func(t *testing.T) {
		delisted, ok := byID["DELISTED"]
		require.True(t, ok)
		assert.Equal(t, 0.0, delisted.ValueBase)
		assert.InDelta(t, -1.0, delisted.PLRatio, 1e-9)
	})

	t.Run("allocation shares sum to one hundred", func(t *testing.T) {
		var valueSum float64
		for _, h := range result.Aggregated {
			valueSum += h.ValueSharePct
		}
		assert.InDelta(t, 100.0, valueSum, 0.01)
	})

	t.Run("summary counts the fallbacks and skips", func(t *testing.T) {
		assert.Equal(t, "2026-08-01", result.Summary.PeriodKey)
		assert.Equal(t, 3, result.Summary.HoldingsProcessed)
		assert.Equal(t, 2, result.Summary.RowsSkipped)
		assert.Equal(t, 1, result.Summary.MissingQuotes)
		assert.Equal(t, 0, result.Summary.MissingRates)
	})

	t.Run("snapshot mirrors the balance sheet", func(t *testing.T) {
		assert.Equal(t, result.BalanceSheet.TotalNetWorthBase, result.Snapshot.TotalNetWorthBase)
		assert.Equal(t, result.BalanceSheet.SecuritiesValueBase, result.Snapshot.SecuritiesValueBase)
		assert.Equal(t, result.BalanceSheet.SecurityCount, result.Snapshot.SecurityCount)
		assert.Equal(t, "2026-08-01", result.Snapshot.PeriodKey)
	})

	t.Run("accounts are counted across holdings and balances", func(t *testing.T) {
		assert.Equal(t, 3, result.Snapshot.AccountCount)
	})

	t.Run("other assets convert through the rate table", func(t *testing.T) {
		assert.InDelta(t, 1100.0, result.BalanceSheet.FundsValueBase, 1e-9)
	})
}

func TestRunPipelineDeterministic(t *testing.T) {
	rules := services.DefaultClassificationRules()

	first := services.RunPipeline(rules, pipelineInput())
	second := services.RunPipeline(rules, pipelineInput())

	assert.Equal(t, first.Aggregated, second.Aggregated)
	assert.Equal(t, first.Snapshot, second.Snapshot)
	assert.Equal(t, first.Summary, second.Summary)
}

func TestRunPipelineEmptyInput(t *testing.T) {
	result := services.RunPipeline(services.DefaultClassificationRules(), services.PipelineInput{
		BaseCurrency: "USD",
		PeriodKey:    "2026-08-01",
	})

	assert.Empty(t, result.Aggregated)
	assert.Equal(t, 0.0, result.Snapshot.TotalNetWorthBase)
	assert.Equal(t, 0, result.Summary.HoldingsProcessed)
	assert.Equal(t, 0.0, result.Summary.AveragePLRatio)
}
