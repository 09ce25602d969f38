// Package jobs registers the periodic background work of the front desk.
package jobs

import (
	"context"
	"fmt"
	"time"

	"frontdesk/config"
	"frontdesk/infras/scheduler"
	statisticsService "frontdesk/internal/domains/statistics/service"

	"github.com/rs/zerolog/log"
)

const JobDashboardRefresh = "dashboard-refresh"

type Jobs struct {
	scheduler  scheduler.Scheduler
	cfg        *config.Config
	statistics statisticsService.Statistics
}

func New(scheduler scheduler.Scheduler, cfg *config.Config, statistics statisticsService.Statistics) *Jobs {
	return &Jobs{
		scheduler:  scheduler,
		cfg:        cfg,
		statistics: statistics,
	}
}

// Register adds every job to the scheduler. It does nothing when the
// scheduler is disabled.
func (j *Jobs) Register() error {
	if !j.cfg.Scheduler.Enable {
		log.Info().Msg("scheduler disabled, background jobs not registered")

		return nil
	}

	interval := time.Duration(j.cfg.Scheduler.DashboardRefreshSeconds) * time.Second
	if interval <= 0 {
		return fmt.Errorf("invalid dashboard refresh interval: %s", interval)
	}

	return j.scheduler.Every(JobDashboardRefresh, interval, j.RefreshDashboard) //nolint:wrapcheck
}

// RefreshDashboard keeps the cached dashboard warm. Failures are logged and
// retried on the next tick.
func (j *Jobs) RefreshDashboard(ctx context.Context) {
	if err := j.statistics.RefreshDashboard(ctx); err != nil {
		log.Error().Err(err).Str("job", JobDashboardRefresh).Msg("failed to refresh dashboard")

		return
	}

	log.Debug().Str("job", JobDashboardRefresh).Msg("dashboard refreshed")
}
