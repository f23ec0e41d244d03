package commands

import (
	"context"
	"fmt"
	"go.uber.org/zap"
	"schedule_poll_bot/internal/discord_bot/extension"
	"strings"
)

const (
	remindCommandName = "remind"
	bumpCommandName   = "bump"
)

// toggleCommand switches one scheduled behaviour on or off.
type toggleCommand struct {
	name   string
	label  string
	set    func(ctx context.Context, enabled bool) error
	logger *zap.SugaredLogger
}

func NewRemindCommand(controller Controller, logger *zap.SugaredLogger) Command {
	return &toggleCommand{
		name:   remindCommandName,
		label:  "Reminders",
		set:    controller.SetReminderEnabled,
		logger: logger,
	}
}

func NewBumpCommand(controller Controller, logger *zap.SugaredLogger) Command {
	return &toggleCommand{
		name:   bumpCommandName,
		label:  "Auto bump",
		set:    controller.SetAutoBumpEnabled,
		logger: logger,
	}
}

func (c *toggleCommand) CanHandle(command string) bool {
	return command == c.name
}

func (c *toggleCommand) Privileged() bool {
	return false
}

func (c *toggleCommand) Handle(ctx context.Context, arguments string, request Request) string {
	var enabled bool
	switch strings.ToLower(strings.TrimSpace(arguments)) {
	case "on":
		enabled = true
	case "off":
		enabled = false
	default:
		return extension.ErrorMessage(fmt.Sprintf("Usage: %s on|off", c.name))
	}

	if err := c.set(ctx, enabled); err != nil {
		c.logger.Errorw("failed to toggle", "command", c.name, "user", request.UserID, "error", err)
		return extension.DefaultErrorMessage()
	}

	return fmt.Sprintf("%s turned %s.", c.label, extension.OnOff(enabled))
}
