package scheduler

import (
	"context"
	"fmt"
	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
	"schedule_poll_bot/internal/poll"
	"time"
)

// Ticker receives cadence ticks. Implementations must not block on the work a tick triggers.
type Ticker interface {
	Tick(ctx context.Context, cadence poll.Cadence) error
}

// Intervals sets how often each cadence is checked. The poll policy decides whether it fires.
type Intervals map[poll.Cadence]time.Duration

type Scheduler struct {
	scheduler *gocron.Scheduler
	ticker    Ticker
	logger    *zap.SugaredLogger
	ctx       context.Context
	cancel    context.CancelFunc
}

func New(ticker Ticker, intervals Intervals, location *time.Location, logger *zap.SugaredLogger) (*Scheduler, error) {
	ctx, cancel := context.WithCancel(context.Background())

	s := &Scheduler{
		scheduler: gocron.NewScheduler(location),
		ticker:    ticker,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
	}
	s.scheduler.SingletonModeAll()

	for _, cadence := range []poll.Cadence{
		poll.CadenceReminder,
		poll.CadenceBump,
		poll.CadenceRepost,
		poll.CadenceRotation,
		poll.CadenceHealth,
	} {
		interval, ok := intervals[cadence]
		if !ok || interval <= 0 {
			cancel()
			return nil, fmt.Errorf("no interval for %s cadence", cadence)
		}

		_, err := s.scheduler.Every(interval).
			WaitForSchedule().
			Tag(cadence.String()).
			Do(s.tick, cadence)
		if err != nil {
			cancel()
			return nil, fmt.Errorf("schedule %s cadence: %w", cadence, err)
		}
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.logger.Infow("starting cadence scheduler", "jobs", len(s.scheduler.Jobs()))
	s.scheduler.StartAsync()
}

func (s *Scheduler) Stop() {
	s.cancel()
	s.scheduler.Stop()
	s.logger.Info("cadence scheduler stopped")
}

func (s *Scheduler) tick(cadence poll.Cadence) {
	if err := s.ticker.Tick(s.ctx, cadence); err != nil {
		s.logger.Warnw("failed to queue cadence tick", "cadence", cadence.String(), "error", err)
	}
}
