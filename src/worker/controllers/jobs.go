package controllers

import (
	"context"
	"time"

	"networth/src/scheduler"
	"networth/src/utils"
)

const (
	recomputeJob     = "recompute"
	marketRefreshJob = "market-refresh"

	jobTimeout = 5 * time.Minute
)

// ScheduleRecompute registers the periodic recompute run under the given
// cron spec, replacing any previously registered schedule.
func (c *Controller) ScheduleRecompute(cronSpec string) error {
	return c.scheduleJob(recomputeJob, cronSpec, func() {
		if err := c.RunRecompute(context.Background()); err != nil {
			c.Logger.Errorf("scheduled recompute failed: %v", err)
		}
	})
}

// ScheduleMarketRefresh registers the periodic quote and rate refresh under
// the given cron spec, replacing any previously registered schedule.
func (c *Controller) ScheduleMarketRefresh(cronSpec string) error {
	return c.scheduleJob(marketRefreshJob, cronSpec, func() {
		if err := c.RunMarketRefresh(context.Background()); err != nil {
			c.Logger.Errorf("scheduled market refresh failed: %v", err)
		}
	})
}

// RunRecompute runs one recompute pass for today's period key. Overlapping
// runs are handled by the database lock, so firing this while a run is in
// flight is harmless.
func (c *Controller) RunRecompute(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(utils.WithLogger(ctx, c.Logger), jobTimeout)
	defer cancel()

	summary, err := c.PortfolioService.Recompute(ctx, "")
	if err != nil {
		return err
	}
	if summary.Skipped {
		c.Logger.Warn("recompute job skipped: another run holds the lock")
	}
	return nil
}

// RunMarketRefresh refreshes quotes first and rates second so a fresh quote
// in a new currency gets its rate fetched in the same pass.
func (c *Controller) RunMarketRefresh(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(utils.WithLogger(ctx, c.Logger), jobTimeout)
	defer cancel()

	if _, err := c.SyncService.RefreshQuotes(ctx); err != nil {
		return err
	}
	if _, err := c.SyncService.RefreshRates(ctx); err != nil {
		return err
	}
	return nil
}

func (c *Controller) scheduleJob(name, cronSpec string, taskFunc func()) error {
	// Cancel the existing scheduled goroutine first
	c.SchedulerMutex.Lock()
	if existingTask, exists := c.Schedulers[name]; exists {
		existingTask.Cancel()
		delete(c.Schedulers, name)
	}
	c.SchedulerMutex.Unlock()

	newTask, err := scheduler.NewScheduledTask(cronSpec, taskFunc)
	if err != nil {
		return err
	}

	c.SchedulerMutex.Lock()
	c.Schedulers[name] = newTask
	c.SchedulerMutex.Unlock()

	return nil
}
