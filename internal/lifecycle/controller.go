package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"go.uber.org/zap"
	"schedule_poll_bot/internal/gateway"
	"schedule_poll_bot/internal/metrics"
	"schedule_poll_bot/internal/notify"
	"schedule_poll_bot/internal/poll"
	"schedule_poll_bot/internal/storage"
	"sync/atomic"
	"time"
)

var (
	ErrNoActivePoll = errors.New("no active poll")
	ErrStopped      = errors.New("poll controller stopped")
)

const defaultQueueSize = 64

type Options struct {
	Policy          poll.Policy
	ReminderEnabled bool
	AutoBumpEnabled bool
	// ReactionDelay paces reaction submissions while votes are restored onto a new message.
	ReactionDelay  time.Duration
	RestoreTimeout time.Duration
	QueueSize      int
	// SelfID is the bot's own participant ID; its reactions never count as votes.
	SelfID string
	Now    func() time.Time
}

// Reaction is an inbound reaction add or remove on some message.
type Reaction struct {
	Added       bool
	Message     gateway.Handle
	Participant string
	Symbol      string
}

type Status struct {
	State        string
	PollID       string
	Location     string
	Message      gateway.Handle
	WeekOf       time.Time
	CreatedAt    time.Time
	Participants int
	Votes        int
	Scheduling   poll.Scheduling
	Restoring    bool
	Failures     map[string]int64
}

// Controller owns the active poll, its ledger and scheduling state.
// All of them are touched only from the goroutine running Run.
type Controller struct {
	gateway  gateway.Gateway
	store    storage.Store
	notifier notify.Notifier
	logger   *zap.SugaredLogger
	options  Options
	now      func() time.Time

	machine    *machine
	state      *poll.State
	ledger     *poll.Ledger
	scheduling poll.Scheduling
	lastBump   gateway.Handle
	stopped    bool

	restoration *restoration
	restoring   atomic.Bool

	events chan func(context.Context)
	done   chan struct{}
}

func New(gw gateway.Gateway, store storage.Store, notifier notify.Notifier, logger *zap.SugaredLogger, options Options) *Controller {
	if options.QueueSize <= 0 {
		options.QueueSize = defaultQueueSize
	}
	if options.Now == nil {
		options.Now = time.Now
	}
	if notifier == nil {
		notifier = notify.Nop{}
	}

	return &Controller{
		gateway:  gw,
		store:    store,
		notifier: notifier,
		logger:   logger,
		options:  options,
		now:      options.Now,
		machine:  newMachine(logger),
		ledger:   poll.NewLedger(poll.DaysPerWeek),
		scheduling: poll.Scheduling{
			ReminderEnabled: options.ReminderEnabled,
			AutoBumpEnabled: options.AutoBumpEnabled,
		},
		events: make(chan func(context.Context), options.QueueSize),
		done:   make(chan struct{}),
	}
}

// Run dispatches queued events until ctx is cancelled. It must be called exactly once.
func (c *Controller) Run(ctx context.Context) {
	defer close(c.done)

	for {
		select {
		case <-ctx.Done():
			c.cancelRestoration()
			return
		case event := <-c.events:
			event(ctx)
		}
	}
}

// Restore loads the persisted poll. It must be called before Run.
func (c *Controller) Restore(ctx context.Context) error {
	record, err := c.store.Load(ctx)
	if err != nil {
		metrics.Failure(metrics.PersistenceFailure)
		return fmt.Errorf("load poll record: %w", err)
	}
	if record == nil {
		c.logger.Info("no saved poll found")
		return nil
	}

	state, ledger, scheduling, err := record.Restore()
	if err != nil {
		metrics.Failure(metrics.PersistenceFailure)
		return fmt.Errorf("restore poll record: %w", err)
	}

	c.scheduling = scheduling
	if state == nil {
		c.logger.Infow("restored scheduling state without a poll", "reminder_enabled", scheduling.ReminderEnabled)
		return nil
	}

	c.state = state
	c.ledger = ledger
	c.machine.restoreOpen()

	if !state.HasMessage() {
		c.scheduling.LastRepost = time.Time{}
	} else if _, err := c.gateway.FetchMessage(ctx, state.Message); err != nil {
		if c.bestEffort(ctx, "fetch poll message", err) == gateway.NotFound {
			c.forgetMessage()
		}
	}

	c.logger.Infow("poll restored",
		"poll_id", state.ID,
		"message", state.Message.String(),
		"participants", ledger.ParticipantCount(),
		"saved_at", record.LastSavedAt,
	)
	return nil
}

func (c *Controller) StartPoll(ctx context.Context, location string) error {
	return c.call(ctx, func(ctx context.Context) error {
		return c.startPoll(ctx, location)
	})
}

// HandleReaction queues a reaction event without waiting for it to be applied.
func (c *Controller) HandleReaction(ctx context.Context, reaction Reaction) error {
	return c.enqueue(ctx, func(runCtx context.Context) {
		c.applyReaction(runCtx, reaction)
	})
}

// Tick queues a cadence check without waiting for it to run.
func (c *Controller) Tick(ctx context.Context, cadence poll.Cadence) error {
	return c.enqueue(ctx, func(runCtx context.Context) {
		c.tick(runCtx, cadence)
	})
}

func (c *Controller) Repost(ctx context.Context) error {
	return c.call(ctx, func(ctx context.Context) error {
		return c.repost(ctx, c.now())
	})
}

func (c *Controller) Rotate(ctx context.Context) error {
	return c.call(ctx, func(ctx context.Context) error {
		return c.rotate(ctx, c.now())
	})
}

func (c *Controller) Results(ctx context.Context) ([]poll.OptionCount, error) {
	var counts []poll.OptionCount

	err := c.call(ctx, func(context.Context) error {
		if c.state == nil {
			return ErrNoActivePoll
		}
		counts = c.ledger.Counts(c.state.Options)
		return nil
	})

	return counts, err
}

func (c *Controller) Status(ctx context.Context) (Status, error) {
	var status Status

	err := c.call(ctx, func(context.Context) error {
		status = c.status()
		return nil
	})

	return status, err
}

func (c *Controller) SetReminderEnabled(ctx context.Context, enabled bool) error {
	return c.call(ctx, func(ctx context.Context) error {
		c.scheduling.ReminderEnabled = enabled
		c.persist(ctx)
		return nil
	})
}

func (c *Controller) SetAutoBumpEnabled(ctx context.Context, enabled bool) error {
	return c.call(ctx, func(ctx context.Context) error {
		c.scheduling.AutoBumpEnabled = enabled
		c.persist(ctx)
		return nil
	})
}

// Shutdown stops restoration, saves the poll and takes a snapshot. The posted message is left in place.
func (c *Controller) Shutdown(ctx context.Context) error {
	return c.call(ctx, func(ctx context.Context) error {
		c.cancelRestoration()
		c.persist(ctx)

		if err := c.store.Snapshot(ctx); err != nil {
			metrics.Failure(metrics.PersistenceFailure)
			c.logger.Errorw("failed to snapshot poll on shutdown", "error", err)
		}

		if err := c.machine.fire(eventShutdown); err != nil {
			c.logger.Warnw("failed to record shutdown transition", "error", err)
		}
		c.stopped = true

		c.logger.Info("poll controller stopped")
		return nil
	})
}

func (c *Controller) enqueue(ctx context.Context, event func(context.Context)) error {
	select {
	case c.events <- event:
		return nil
	case <-c.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// call runs fn on the dispatcher and waits for its result.
func (c *Controller) call(ctx context.Context, fn func(ctx context.Context) error) error {
	reply := make(chan error, 1)

	err := c.enqueue(ctx, func(context.Context) {
		if c.stopped {
			reply <- ErrStopped
			return
		}
		reply <- fn(ctx)
	})
	if err != nil {
		return err
	}

	select {
	case err := <-reply:
		return err
	case <-c.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Controller) status() Status {
	status := Status{
		State:        c.machine.current(),
		Participants: c.ledger.ParticipantCount(),
		Votes:        c.ledger.Pairs(),
		Scheduling:   c.scheduling,
		Restoring:    c.restoring.Load(),
		Failures:     metrics.Failures(),
	}

	if c.state != nil {
		status.PollID = c.state.ID
		status.Location = c.state.Location
		status.Message = c.state.Message
		status.WeekOf = c.state.WeekOf()
		status.CreatedAt = c.state.CreatedAt
	}

	return status
}
