package services_test

import (
	"testing"

	"networth/src/models"
	"networth/src/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func normalize(t *testing.T, rows []models.RawHolding) []services.NormalizedHolding {
	t.Helper()
	normalized, _ := services.NewNormalizer(services.DefaultClassificationRules()).Normalize(rows)
	return normalized
}

func TestAggregateWeightedAverageCost(t *testing.T) {
	rows := normalize(t, []models.RawHolding{
		{AccountID: "acc-1", InstrumentCode: "AAPL", Quantity: 10, CostPerUnit: 10, Currency: "USD"},
		{AccountID: "acc-2", InstrumentCode: "AAPL", Quantity: 30, CostPerUnit: 14, Currency: "USD"},
	})

	holdings := services.NewAggregator().Aggregate(rows)

	require.Len(t, holdings, 1)
	h := holdings[0]
	assert.Equal(t, "AAPL", h.CanonicalID)
	assert.Equal(t, 40.0, h.TotalQuantity)
	assert.Equal(t, 520.0, h.TotalCostOriginal)
	assert.Equal(t, 13.0, h.AvgCostPerUnit)
	assert.Equal(t, 2, h.AccountCount)
}

func TestAggregateFaceValueUsesPar(t *testing.T) {
	// Brokers report different cost bases for the same government paper; the
	// merged position carries par, not the quantity-weighted broker costs.
	rows := normalize(t, []models.RawHolding{
		{AccountID: "acc-1", InstrumentCode: "TF Float A", Quantity: 1000, CostPerUnit: 0.98, Currency: "USD"},
		{AccountID: "acc-2", InstrumentCode: "US912797", Description: "Treasury Bill", Quantity: 500, CostPerUnit: 1.02, Currency: "USD"},
	})

	holdings := services.NewAggregator().Aggregate(rows)

	require.Len(t, holdings, 1)
	h := holdings[0]
	assert.Equal(t, models.FaceValueCanonicalID, h.CanonicalID)
	assert.Equal(t, models.TreatmentFaceValue, h.Policy)
	assert.Equal(t, 1500.0, h.TotalQuantity)
	assert.Equal(t, models.FaceValueUnitPrice, h.AvgCostPerUnit)
	assert.Equal(t, 1500.0, h.TotalCostOriginal)
	assert.Equal(t, 2, h.AccountCount)
}

func TestAggregateSplitsByCurrency(t *testing.T) {
	rows := normalize(t, []models.RawHolding{
		{AccountID: "acc-1", InstrumentCode: "VOO", Quantity: 5, CostPerUnit: 400, Currency: "USD"},
		{AccountID: "acc-1", InstrumentCode: "VOO", Quantity: 3, CostPerUnit: 380, Currency: "EUR"},
	})

	holdings := services.NewAggregator().Aggregate(rows)

	require.Len(t, holdings, 2)
	// Deterministic order: canonical id, then currency.
	assert.Equal(t, "EUR", holdings[0].Currency)
	assert.Equal(t, "USD", holdings[1].Currency)
}

func TestAggregateSameAccountCountedOnce(t *testing.T) {
	rows := normalize(t, []models.RawHolding{
		{AccountID: "acc-1", InstrumentCode: "AAPL", Quantity: 10, CostPerUnit: 10, Currency: "USD"},
		{AccountID: "acc-1", InstrumentCode: "AAPL", Quantity: 5, CostPerUnit: 12, Currency: "USD"},
	})

	holdings := services.NewAggregator().Aggregate(rows)

	require.Len(t, holdings, 1)
	assert.Equal(t, 1, holdings[0].AccountCount)
}

func TestAggregateDeterministicOrder(t *testing.T) {
	rows := normalize(t, []models.RawHolding{
		{AccountID: "acc-1", InstrumentCode: "VOO", Quantity: 5, CostPerUnit: 400, Currency: "USD"},
		{AccountID: "acc-1", InstrumentCode: "AAPL", Quantity: 10, CostPerUnit: 150, Currency: "USD"},
		{AccountID: "acc-2", InstrumentCode: "MSFT", Quantity: 2, CostPerUnit: 300, Currency: "USD"},
	})

	first := services.NewAggregator().Aggregate(rows)
	second := services.NewAggregator().Aggregate(rows)

	assert.Equal(t, first, second)
	require.Len(t, first, 3)
	assert.Equal(t, "AAPL", first[0].CanonicalID)
	assert.Equal(t, "MSFT", first[1].CanonicalID)
	assert.Equal(t, "VOO", first[2].CanonicalID)
}
