package jobs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"frontdesk/config"
	"frontdesk/infras/scheduler"
	schedulerMocks "frontdesk/infras/scheduler/mocks"
	statisticsMocks "frontdesk/internal/domains/statistics/mocks"
	"frontdesk/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestJobs_Register(t *testing.T) {
	tests := []struct {
		name     string
		enable   bool
		seconds  int
		schedErr error
		wantErr  bool
		wantCall bool
	}{
		{name: "disabled", enable: false, seconds: 300},
		{name: "enabled", enable: true, seconds: 300, wantCall: true},
		{name: "zero interval", enable: true, seconds: 0, wantErr: true},
		{name: "scheduler rejects", enable: true, seconds: 60, schedErr: errors.New("duplicate"), wantErr: true, wantCall: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			sched := schedulerMocks.NewMockScheduler(ctrl)
			stats := statisticsMocks.NewMockStatisticsService(ctrl)

			cfg := &config.Config{}
			cfg.Scheduler.Enable = tt.enable
			cfg.Scheduler.DashboardRefreshSeconds = tt.seconds

			if tt.wantCall {
				sched.EXPECT().
					Every(jobs.JobDashboardRefresh, time.Duration(tt.seconds)*time.Second, gomock.Any()).
					Return(tt.schedErr)
			}

			err := jobs.New(sched, cfg, stats).Register()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestJobs_RegisteredTaskRefreshesDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	sched := schedulerMocks.NewMockScheduler(ctrl)
	stats := statisticsMocks.NewMockStatisticsService(ctrl)

	cfg := &config.Config{}
	cfg.Scheduler.Enable = true
	cfg.Scheduler.DashboardRefreshSeconds = 30

	var task scheduler.Task

	sched.EXPECT().
		Every(jobs.JobDashboardRefresh, 30*time.Second, gomock.Any()).
		DoAndReturn(func(_ string, _ time.Duration, registered scheduler.Task) error {
			task = registered

			return nil
		})

	require.NoError(t, jobs.New(sched, cfg, stats).Register())
	require.NotNil(t, task)

	gomock.InOrder(
		stats.EXPECT().RefreshDashboard(gomock.Any()).Return(nil),
		stats.EXPECT().RefreshDashboard(gomock.Any()).Return(errors.New("redis down")),
	)

	task(context.Background())
	task(context.Background())
}
