package controllers

import (
	"context"
	"time"

	"networth/src/models"
	"networth/src/schemas"
)

const holdingsCacheTTL = time.Minute

func (c *Controller) GetAggregatedHoldings(ctx context.Context) ([]models.AggregatedHolding, error) {
	if cached, ok := c.holdingsCache.Get(time.Now()); ok {
		return cached, nil
	}

	holdings, err := c.PortfolioService.GetAggregatedHoldings(ctx)
	if err != nil {
		return nil, err
	}
	c.holdingsCache.Set(holdings, holdingsCacheTTL)
	return holdings, nil
}

func (c *Controller) GetSnapshots(ctx context.Context, fromKey, toKey string) ([]models.PeriodicSnapshot, error) {
	return c.PortfolioService.GetSnapshots(ctx, fromKey, toKey)
}

func (c *Controller) Recompute(ctx context.Context, periodKey string) (*schemas.RecomputeSummary, error) {
	summary, err := c.PortfolioService.Recompute(ctx, periodKey)
	if err != nil {
		return nil, err
	}
	// The aggregated table just changed under the cache
	c.holdingsCache.Clear()
	return summary, nil
}
