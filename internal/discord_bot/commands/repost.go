package commands

import (
	"context"
	"errors"
	"go.uber.org/zap"
	"schedule_poll_bot/internal/discord_bot/extension"
	"schedule_poll_bot/internal/lifecycle"
)

const (
	repostCommandName = "repost"
	rotateCommandName = "rotate"
)

type repostCommand struct {
	controller Controller
	logger     *zap.SugaredLogger
}

func NewRepostCommand(controller Controller, logger *zap.SugaredLogger) Command {
	return &repostCommand{
		controller: controller,
		logger:     logger,
	}
}

func (c *repostCommand) CanHandle(command string) bool {
	return command == repostCommandName
}

func (c *repostCommand) Privileged() bool {
	return true
}

func (c *repostCommand) Handle(ctx context.Context, _ string, request Request) string {
	err := c.controller.Repost(ctx)
	if errors.Is(err, lifecycle.ErrNoActivePoll) {
		return extension.ErrorMessage("There is no active poll to repost.")
	}
	if err != nil {
		c.logger.Errorw("failed to repost poll", "user", request.UserID, "error", err)
		return extension.DefaultErrorMessage()
	}

	return "🔁 Poll reposted, votes are being restored."
}

type rotateCommand struct {
	controller Controller
	logger     *zap.SugaredLogger
}

func NewRotateCommand(controller Controller, logger *zap.SugaredLogger) Command {
	return &rotateCommand{
		controller: controller,
		logger:     logger,
	}
}

func (c *rotateCommand) CanHandle(command string) bool {
	return command == rotateCommandName
}

func (c *rotateCommand) Privileged() bool {
	return true
}

func (c *rotateCommand) Handle(ctx context.Context, _ string, request Request) string {
	err := c.controller.Rotate(ctx)
	if errors.Is(err, lifecycle.ErrNoActivePoll) {
		return extension.ErrorMessage("There is no active poll to rotate.")
	}
	if err != nil {
		c.logger.Errorw("failed to rotate poll", "user", request.UserID, "error", err)
		return extension.DefaultErrorMessage()
	}

	return "🗓️ Moved on to next week's poll."
}
