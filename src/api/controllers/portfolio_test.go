package controllers_test

import (
	"context"
	"testing"

	"networth/src/api/controllers"
	"networth/src/models"
	"networth/src/schemas"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePortfolioService struct {
	holdings     []models.AggregatedHolding
	getAllCalls  int
	recomputeRan int
}

func (s *fakePortfolioService) Recompute(_ context.Context, periodKey string) (*schemas.RecomputeSummary, error) {
	s.recomputeRan++
	return &schemas.RecomputeSummary{PeriodKey: periodKey}, nil
}

func (s *fakePortfolioService) GetAggregatedHoldings(_ context.Context) ([]models.AggregatedHolding, error) {
	s.getAllCalls++
	return s.holdings, nil
}

func (s *fakePortfolioService) GetSnapshots(_ context.Context, _, _ string) ([]models.PeriodicSnapshot, error) {
	return nil, nil
}

type fakeSyncService struct{}

func (s *fakeSyncService) RefreshQuotes(_ context.Context) (int, error) { return 0, nil }
func (s *fakeSyncService) RefreshRates(_ context.Context) (int, error)  { return 0, nil }

func TestGetAggregatedHoldingsCaching(t *testing.T) {
	ctx := context.Background()
	service := &fakePortfolioService{holdings: []models.AggregatedHolding{
		{CanonicalID: "AAPL", Currency: "USD"},
	}}
	controller := controllers.NewController(service, &fakeSyncService{})

	first, err := controller.GetAggregatedHoldings(ctx)
	require.NoError(t, err)
	second, err := controller.GetAggregatedHoldings(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	// Second read comes from the cache, not the service.
	assert.Equal(t, 1, service.getAllCalls)
}

func TestRecomputeClearsHoldingsCache(t *testing.T) {
	ctx := context.Background()
	service := &fakePortfolioService{holdings: []models.AggregatedHolding{
		{CanonicalID: "AAPL", Currency: "USD"},
	}}
	controller := controllers.NewController(service, &fakeSyncService{})

	_, err := controller.GetAggregatedHoldings(ctx)
	require.NoError(t, err)

	summary, err := controller.Recompute(ctx, "2026-08-01")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-01", summary.PeriodKey)
	assert.Equal(t, 1, service.recomputeRan)

	_, err = controller.GetAggregatedHoldings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, service.getAllCalls)
}
