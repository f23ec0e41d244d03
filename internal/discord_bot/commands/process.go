package commands

import (
	"context"
	"go.uber.org/zap"
)

const (
	shutdownCommandName = "shutdown"
	restartCommandName  = "restart"
)

type processCommand struct {
	name   string
	reply  string
	action func()
	logger *zap.SugaredLogger
}

func NewShutdownCommand(process ProcessControl, logger *zap.SugaredLogger) Command {
	return &processCommand{
		name:   shutdownCommandName,
		reply:  "👋 Shutting down. The poll is saved and stays where it is.",
		action: process.Shutdown,
		logger: logger,
	}
}

func NewRestartCommand(process ProcessControl, logger *zap.SugaredLogger) Command {
	return &processCommand{
		name:   restartCommandName,
		reply:  "♻️ Restarting, back in a moment.",
		action: process.Restart,
		logger: logger,
	}
}

func (c *processCommand) CanHandle(command string) bool {
	return command == c.name
}

func (c *processCommand) Privileged() bool {
	return true
}

func (c *processCommand) Handle(_ context.Context, _ string, request Request) string {
	c.logger.Infow("process command received", "command", c.name, "user", request.UserID)
	c.action()
	return c.reply
}
