package scheduler

//go:generate go run go.uber.org/mock/mockgen -source=./scheduler.go -destination=./mocks/scheduler_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

// Task is a unit of periodic work. The context is cancelled on Shutdown.
type Task func(ctx context.Context)

type Scheduler interface {
	Every(name string, interval time.Duration, task Task) error
	Start()
	Shutdown() error
}

type schedulerImpl struct {
	inner  gocron.Scheduler
	ctx    context.Context
	cancel context.CancelFunc
}

func New() (Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		log.Error().Err(err).Msg("failed to create scheduler")

		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &schedulerImpl{
		inner:  sched,
		ctx:    ctx,
		cancel: cancel,
	}, nil
}

// Every registers task to run each interval. Overlapping runs are skipped.
func (s *schedulerImpl) Every(name string, interval time.Duration, task Task) error {
	job, err := s.inner.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			start := time.Now()

			task(s.ctx)

			log.Debug().Str("job", name).Dur("elapsed", time.Since(start)).Msg("scheduled job finished")
		}),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		log.Error().Err(err).Str("job", name).Msg("failed to register scheduled job")

		return fmt.Errorf("failed to register job %s: %w", name, err)
	}

	log.Info().Str("job", name).Str("id", job.ID().String()).Dur("interval", interval).Msg("scheduled job registered")

	return nil
}

func (s *schedulerImpl) Start() {
	s.inner.Start()
}

func (s *schedulerImpl) Shutdown() error {
	s.cancel()

	if err := s.inner.Shutdown(); err != nil {
		return fmt.Errorf("failed to shut down scheduler: %w", err)
	}

	return nil
}
