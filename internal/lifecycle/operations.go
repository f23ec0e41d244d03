package lifecycle

import (
	"context"
	"fmt"
	"schedule_poll_bot/internal/gateway"
	"schedule_poll_bot/internal/metrics"
	"schedule_poll_bot/internal/poll"
	"time"
)

func (c *Controller) startPoll(ctx context.Context, location string) error {
	now := c.now()
	monday := poll.MondayOf(c.local(now))

	if c.machine.is(StatePollOpen) {
		c.logger.Infow("replacing active poll", "poll_id", c.state.ID)
		if err := c.replace(ctx, location, monday, now); err != nil {
			return err
		}
		metrics.Event("start")
		return nil
	}

	if err := c.machine.fire(eventStart); err != nil {
		return fmt.Errorf("start poll: %w", err)
	}

	c.state = poll.NewState(location, monday, now)
	c.ledger.Clear()

	err := c.publish(ctx, now)
	c.persist(ctx)
	if err != nil {
		return err
	}

	metrics.Event("start")
	c.logger.Infow("poll started", "poll_id", c.state.ID, "week_of", poll.Label(monday), "message", c.state.Message.String())
	return nil
}

func (c *Controller) repost(ctx context.Context, now time.Time) error {
	if c.state == nil {
		return ErrNoActivePoll
	}

	c.cancelRestoration()
	if err := c.machine.fire(eventBeginClose); err != nil {
		return fmt.Errorf("repost poll: %w", err)
	}
	defer c.reopen()

	if old := c.state.Message; !old.IsZero() {
		c.bestEffort(ctx, "unpin old poll message", c.gateway.UnpinMessage(ctx, old))
		c.bestEffort(ctx, "delete old poll message", c.gateway.DeleteMessage(ctx, old))
		c.state.Message = gateway.Handle{}
	}

	c.ledger = poll.ReplayLedger(len(c.state.Options), c.ledger.Entries())

	handle, err := c.gateway.CreateMessage(ctx, c.state.Location, renderPoll(c.state, c.ledger))
	if err != nil {
		c.bestEffort(ctx, "create poll message", err)
		c.scheduling.LastRepost = time.Time{}
		c.persist(ctx)
		return fmt.Errorf("create poll message: %w", err)
	}

	c.state.Message = handle
	c.bestEffort(ctx, "pin poll message", c.gateway.PinMessage(ctx, handle))
	c.scheduling.LastRepost = now
	c.startRestoration(handle, c.state.Options, c.ledger.Entries())
	c.persist(ctx)

	metrics.Event("repost")
	c.logger.Infow("poll reposted", "poll_id", c.state.ID, "message", handle.String(), "participants", c.ledger.ParticipantCount())
	return nil
}

func (c *Controller) rotate(ctx context.Context, now time.Time) error {
	if c.state == nil {
		return ErrNoActivePoll
	}

	previous := c.state.ID
	monday := poll.NextMonday(c.local(now))

	if err := c.replace(ctx, c.state.Location, monday, now); err != nil {
		return err
	}

	c.scheduling.LastRotation = now
	c.persist(ctx)

	metrics.Event("rotation")
	c.logger.Infow("poll rotated", "previous_poll_id", previous, "poll_id", c.state.ID, "week_of", poll.Label(monday))
	return nil
}

// replace closes the current poll message and publishes a fresh poll for the week starting at monday.
func (c *Controller) replace(ctx context.Context, location string, monday, now time.Time) error {
	c.cancelRestoration()
	if err := c.machine.fire(eventBeginClose); err != nil {
		return fmt.Errorf("close poll: %w", err)
	}
	defer c.reopen()

	if old := c.state.Message; !old.IsZero() {
		c.bestEffort(ctx, "mark poll message ended", c.gateway.EditMessage(ctx, old, renderClosed(c.state, c.ledger)))
		c.bestEffort(ctx, "unpin old poll message", c.gateway.UnpinMessage(ctx, old))
	}

	c.state = poll.NewState(location, monday, now)
	c.ledger.Clear()

	err := c.publish(ctx, now)
	c.persist(ctx)
	return err
}

// publish posts, pins and seeds a message for the current poll.
func (c *Controller) publish(ctx context.Context, now time.Time) error {
	handle, err := c.gateway.CreateMessage(ctx, c.state.Location, renderPoll(c.state, c.ledger))
	if err != nil {
		c.bestEffort(ctx, "create poll message", err)
		c.state.Message = gateway.Handle{}
		c.scheduling.LastRepost = time.Time{}
		return fmt.Errorf("create poll message: %w", err)
	}

	c.state.Message = handle
	c.bestEffort(ctx, "pin poll message", c.gateway.PinMessage(ctx, handle))
	c.scheduling.ResetCadences(now)
	c.startRestoration(handle, c.state.Options, nil)

	return nil
}

func (c *Controller) remind(ctx context.Context, now time.Time) {
	participants := c.ledger.ParticipantCount()

	_, err := c.gateway.CreateMessage(ctx, c.state.Location, renderReminder(c.state, participants))
	if c.bestEffort(ctx, "post reminder", err) == gateway.Ok {
		metrics.Event("reminder")
		c.logger.Infow("reminder posted", "poll_id", c.state.ID, "participants", participants)
	}

	c.scheduling.LastReminder = now
	c.persist(ctx)
}

func (c *Controller) bump(ctx context.Context, now time.Time) {
	handle, err := c.gateway.CreateMessage(ctx, c.state.Location, renderBump(c.state))
	if c.bestEffort(ctx, "post bump", err) == gateway.Ok {
		if !c.lastBump.IsZero() {
			c.bestEffort(ctx, "delete previous bump", c.gateway.DeleteMessage(ctx, c.lastBump))
		}
		c.lastBump = handle
		metrics.Event("bump")
	}

	c.scheduling.LastBump = now
	c.persist(ctx)
}

func (c *Controller) snapshot(ctx context.Context, now time.Time) {
	if err := c.store.Snapshot(ctx); err != nil {
		metrics.Failure(metrics.PersistenceFailure)
		c.logger.Errorw("failed to snapshot poll", "error", err)
	} else {
		metrics.Event("snapshot")
	}

	c.scheduling.LastHealth = now
	c.persist(ctx)

	status := c.status()
	c.logger.Infow("poll health",
		"state", status.State,
		"poll_id", status.PollID,
		"participants", status.Participants,
		"votes", status.Votes,
		"restoring", status.Restoring,
		"failures", status.Failures,
	)
}

func (c *Controller) tick(ctx context.Context, cadence poll.Cadence) {
	if c.stopped {
		return
	}

	now := c.now()
	policy := c.options.Policy

	switch cadence {
	case poll.CadenceReminder:
		if policy.ShouldRemind(now, c.scheduling, c.state, c.ledger.ParticipantCount()) {
			c.remind(ctx, now)
		}
	case poll.CadenceBump:
		if policy.ShouldBump(now, c.scheduling, c.state) {
			c.bump(ctx, now)
		}
	case poll.CadenceRepost:
		if policy.ShouldRepost(now, c.scheduling, c.state) {
			if err := c.repost(ctx, now); err != nil {
				c.logger.Errorw("scheduled repost failed", "error", err)
			}
		}
	case poll.CadenceRotation:
		if !policy.ShouldRotate(now, c.scheduling, c.state) {
			return
		}
		if c.state.WeekOf().Equal(poll.NextMonday(c.local(now))) {
			if !c.state.HasMessage() {
				// A previous rotation built next week's poll but could not post it.
				err := c.publish(ctx, now)
				if err != nil {
					c.persist(ctx)
					c.logger.Errorw("failed to post rotated poll", "poll_id", c.state.ID, "error", err)
					return
				}
				metrics.Event("rotation")
				c.logger.Infow("rotated poll posted", "poll_id", c.state.ID, "message", c.state.Message.String())
			} else {
				c.logger.Infow("poll already covers next week", "poll_id", c.state.ID)
			}
			c.scheduling.LastRotation = now
			c.persist(ctx)
			return
		}
		if err := c.rotate(ctx, now); err != nil {
			c.logger.Errorw("scheduled rotation failed", "error", err)
		}
	case poll.CadenceHealth:
		if policy.ShouldSnapshot(now, c.scheduling) {
			c.snapshot(ctx, now)
		}
	default:
		c.logger.Warnw("unknown cadence", "cadence", cadence)
	}
}

func (c *Controller) applyReaction(ctx context.Context, reaction Reaction) {
	if c.stopped || !c.machine.is(StatePollOpen) ||
		!c.state.IsCurrentMessage(reaction.Message) ||
		reaction.Participant == "" || reaction.Participant == c.options.SelfID {
		c.ignore(reaction)
		return
	}

	index, ok := poll.IndexOfSymbol(c.state.Options, reaction.Symbol)
	if !ok {
		c.ignore(reaction)
		return
	}

	// Duplicate deliveries of the same event leave the ledger untouched.
	if reaction.Added == c.ledger.Has(reaction.Participant, index) {
		return
	}

	result := c.ledger.Toggle(reaction.Participant, index)
	metrics.Event("vote_" + result.String())
	c.persist(ctx)

	err := c.gateway.EditMessage(ctx, c.state.Message, renderPoll(c.state, c.ledger))
	if c.bestEffort(ctx, "refresh poll tally", err) == gateway.NotFound {
		c.forgetMessage()
		c.persist(ctx)
	}
}

func (c *Controller) ignore(reaction Reaction) {
	metrics.Event(metrics.ReactionIgnored)
	c.logger.Debugw("reaction ignored",
		"participant", reaction.Participant,
		"symbol", reaction.Symbol,
		"message", reaction.Message.String(),
	)
}

// forgetMessage drops a vanished poll message so the next repost tick recreates it.
func (c *Controller) forgetMessage() {
	c.cancelRestoration()
	c.state.Message = gateway.Handle{}
	c.scheduling.LastRepost = time.Time{}
}

func (c *Controller) reopen() {
	if err := c.machine.fire(eventReopen); err != nil {
		c.logger.Errorw("failed to reopen poll", "error", err)
	}
}

func (c *Controller) persist(ctx context.Context) {
	record := poll.NewRecord(c.state, c.ledger, c.scheduling, c.now())
	if err := c.store.Save(ctx, record); err != nil {
		metrics.Failure(metrics.PersistenceFailure)
		c.logger.Errorw("failed to save poll", "error", err)
	}
}

// bestEffort logs a failed gateway call by category and reports which category it was.
func (c *Controller) bestEffort(ctx context.Context, action string, err error) gateway.Result {
	result := gateway.Classify(err)

	switch result {
	case gateway.Ok:
		return result
	case gateway.PermissionDenied:
		c.logger.Errorw("missing permission", "action", action, "error", err)
		if notifyErr := c.notifier.Notify(ctx, fmt.Sprintf("Schedule poll bot is missing permission to %s: %v", action, err)); notifyErr != nil {
			c.logger.Warnw("failed to send alert", "error", notifyErr)
		}
	case gateway.NotFound:
		c.logger.Warnw("message not found", "action", action, "error", err)
	default:
		c.logger.Errorw("gateway call failed", "action", action, "error", err)
	}

	metrics.Failure(result.String())
	return result
}

func (c *Controller) local(t time.Time) time.Time {
	if c.options.Policy.Location == nil {
		return t
	}
	return t.In(c.options.Policy.Location)
}
