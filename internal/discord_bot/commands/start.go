package commands

import (
	"context"
	"fmt"
	"go.uber.org/zap"
	"schedule_poll_bot/configs"
	"schedule_poll_bot/internal/discord_bot/extension"
)

const startCommandName = "start"

type startCommand struct {
	discordConfig configs.Discord
	controller    Controller
	logger        *zap.SugaredLogger
}

func NewStartCommand(discordConfig configs.Discord, controller Controller, logger *zap.SugaredLogger) Command {
	return &startCommand{
		discordConfig: discordConfig,
		controller:    controller,
		logger:        logger,
	}
}

func (c *startCommand) CanHandle(command string) bool {
	return command == startCommandName
}

func (c *startCommand) Privileged() bool {
	return false
}

func (c *startCommand) Handle(ctx context.Context, _ string, request Request) string {
	location := c.discordConfig.ChannelID
	if location == "" {
		location = request.ChannelID
	}

	if err := c.controller.StartPoll(ctx, location); err != nil {
		c.logger.Errorw("failed to start poll", "user", request.UserID, "error", err)
		return extension.DefaultErrorMessage()
	}

	return fmt.Sprintf("📅 A new schedule poll is up in <#%s>.", location)
}
