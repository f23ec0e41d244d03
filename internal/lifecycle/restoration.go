package lifecycle

import (
	"context"
	"schedule_poll_bot/internal/gateway"
	"schedule_poll_bot/internal/metrics"
	"schedule_poll_bot/internal/poll"
	"time"
)

const defaultRestoreTimeout = 2 * time.Minute

type restoration struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// startRestoration re-applies the ledger's selections as reactions on handle, then seeds the
// remaining option symbols. It runs off the dispatcher and only talks to the gateway.
func (c *Controller) startRestoration(handle gateway.Handle, options []poll.Option, entries []poll.Entry) {
	c.cancelRestoration()

	timeout := c.options.RestoreTimeout
	if timeout <= 0 {
		timeout = defaultRestoreTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	r := &restoration{cancel: cancel, done: make(chan struct{})}
	c.restoration = r
	c.restoring.Store(true)

	plan := append([]poll.Option(nil), options...)
	go func() {
		defer close(r.done)
		defer cancel()
		defer c.restoring.Store(false)

		c.restore(ctx, handle, plan, entries)
	}()
}

// cancelRestoration stops a running restoration and waits for it to exit.
func (c *Controller) cancelRestoration() {
	if c.restoration == nil {
		return
	}

	c.restoration.cancel()
	<-c.restoration.done
	c.restoration = nil
}

func (c *Controller) restore(ctx context.Context, handle gateway.Handle, options []poll.Option, entries []poll.Entry) {
	applied := make(map[string]bool, len(options))
	submitted := 0

	submit := func(symbol string) error {
		if submitted > 0 {
			if err := pause(ctx, c.options.ReactionDelay); err != nil {
				return err
			}
		}
		submitted++
		return c.gateway.AddReaction(ctx, handle, symbol)
	}

	for _, entry := range entries {
		for _, index := range entry.Options {
			if index < 0 || index >= len(options) || applied[options[index].Symbol] {
				continue
			}

			symbol := options[index].Symbol
			if err := submit(symbol); err != nil {
				if ctx.Err() != nil {
					c.logger.Warnw("vote restoration stopped", "message", handle.String(), "error", ctx.Err())
					return
				}
				metrics.Failure(gateway.Classify(err).String())
				c.logger.Warnw("failed to restore votes", "participant", entry.Participant, "symbol", symbol, "error", err)
				break
			}
			applied[symbol] = true
		}
	}

	for _, option := range options {
		if applied[option.Symbol] {
			continue
		}

		if err := submit(option.Symbol); err != nil {
			if ctx.Err() != nil {
				c.logger.Warnw("vote restoration stopped", "message", handle.String(), "error", ctx.Err())
				return
			}
			metrics.Failure(gateway.Classify(err).String())
			c.logger.Warnw("failed to seed reaction", "symbol", option.Symbol, "error", err)
			continue
		}
		applied[option.Symbol] = true
	}

	c.logger.Debugw("vote restoration finished", "message", handle.String(), "reactions", len(applied))
}

// pause waits for d or until ctx is done.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
