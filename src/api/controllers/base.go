package controllers

import (
	"networth/src/models"
	"networth/src/services"
	"networth/src/utils"
)

// Controller sits between the HTTP handlers and the portfolio service. The
// holdings cache keeps read traffic off the database between recompute runs.
type Controller struct {
	PortfolioService services.PortfolioServiceI
	SyncService      services.SyncServiceI

	holdingsCache *utils.Cache[[]models.AggregatedHolding]
}

func NewController(portfolioService services.PortfolioServiceI, syncService services.SyncServiceI) *Controller {
	return &Controller{
		PortfolioService: portfolioService,
		SyncService:      syncService,
		holdingsCache:    utils.NewCache[[]models.AggregatedHolding](),
	}
}
