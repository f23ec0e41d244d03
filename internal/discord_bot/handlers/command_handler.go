package handlers

import (
	"context"
	"fmt"
	"go.uber.org/zap"
	"schedule_poll_bot/configs"
	"schedule_poll_bot/internal/discord_bot/commands"
	"schedule_poll_bot/internal/discord_bot/extension"
	"strings"
)

// Message is an inbound chat message that may carry a command.
type Message struct {
	UserID    string
	ChannelID string
	Content   string
}

type CommandHandler interface {
	Handle(ctx context.Context, message Message) []string
}

type commandHandler struct {
	botConfig configs.Bot
	appConfig configs.App
	logger    *zap.SugaredLogger

	commands []commands.Command
}

func NewCommandHandler(
	botConfig configs.Bot,
	appConfig configs.App,
	logger *zap.SugaredLogger,
	commands []commands.Command,
) CommandHandler {
	return &commandHandler{
		botConfig: botConfig,
		appConfig: appConfig,
		logger:    logger,
		commands:  commands,
	}
}

func (h *commandHandler) Handle(ctx context.Context, message Message) []string {
	fields := strings.Fields(message.Content)
	if len(fields) == 0 || fields[0] != h.botConfig.CommandPrefix {
		return []string{}
	}

	if len(fields) == 1 {
		return []string{h.usage()}
	}

	name := strings.ToLower(fields[1])
	arguments := strings.Join(fields[2:], " ")
	request := commands.Request{UserID: message.UserID, ChannelID: message.ChannelID}

	h.logger.Infow("received command", "command", name, "arguments", arguments, "user", message.UserID)

	for _, command := range h.commands {
		if !command.CanHandle(name) {
			continue
		}

		if command.Privileged() && !h.appConfig.IsAdmin(message.UserID) {
			h.logger.Warnw("privileged command denied", "command", name, "user", message.UserID)
			return []string{extension.ErrorMessage("Only admins can use this command.")}
		}

		return []string{command.Handle(ctx, arguments, request)}
	}

	h.logger.Warnw("unknown command", "command", name)
	return []string{extension.ErrorMessage(fmt.Sprintf("Unknown command %q.", name)), h.usage()}
}

func (h *commandHandler) usage() string {
	prefix := h.botConfig.CommandPrefix
	return strings.Join([]string{
		"Commands:",
		prefix + " start - post this week's schedule poll",
		prefix + " results - show the current tally",
		prefix + " status - show poll and scheduler status",
		prefix + " remind on|off - toggle low-engagement reminders",
		prefix + " bump on|off - toggle automatic bumps",
		prefix + " repost - recreate the poll message (admin)",
		prefix + " rotate - move on to next week (admin)",
		prefix + " shutdown | restart - stop or restart the bot (admin)",
	}, "\n")
}
