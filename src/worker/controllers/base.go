package controllers

import (
	"sync"

	"networth/src/scheduler"
	"networth/src/services"

	"github.com/sirupsen/logrus"
)

// Controller owns the background jobs: the scheduled recompute and market
// refresh, plus their manual triggers. The scheduler map tracks running cron
// tasks by job name so re-scheduling cancels the previous schedule first.
type Controller struct {
	PortfolioService services.PortfolioServiceI
	SyncService      services.SyncServiceI
	Logger           *logrus.Logger

	SchedulerMutex sync.Mutex
	Schedulers     map[string]*scheduler.ScheduledTask
}

func NewController(
	portfolioService services.PortfolioServiceI,
	syncService services.SyncServiceI,
	logger *logrus.Logger,
) *Controller {
	return &Controller{
		PortfolioService: portfolioService,
		SyncService:      syncService,
		Logger:           logger,
		SchedulerMutex:   sync.Mutex{},
		Schedulers:       map[string]*scheduler.ScheduledTask{},
	}
}

func (c *Controller) GetSchedulers() map[string]*scheduler.ScheduledTask {
	return c.Schedulers
}
