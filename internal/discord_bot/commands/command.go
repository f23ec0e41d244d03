package commands

import (
	"context"
	"schedule_poll_bot/internal/lifecycle"
	"schedule_poll_bot/internal/poll"
)

// Request identifies who issued a command and where.
type Request struct {
	UserID    string
	ChannelID string
}

type Command interface {
	CanHandle(command string) bool
	// Privileged commands are limited to configured admins.
	Privileged() bool
	Handle(ctx context.Context, arguments string, request Request) string
}

// Controller is the part of the poll lifecycle the commands drive.
type Controller interface {
	StartPoll(ctx context.Context, location string) error
	Results(ctx context.Context) ([]poll.OptionCount, error)
	Status(ctx context.Context) (lifecycle.Status, error)
	SetReminderEnabled(ctx context.Context, enabled bool) error
	SetAutoBumpEnabled(ctx context.Context, enabled bool) error
	Repost(ctx context.Context) error
	Rotate(ctx context.Context) error
}

// ProcessControl stops or restarts the whole bot process.
type ProcessControl interface {
	Shutdown()
	Restart()
}
