package commands

import (
	"context"
	"errors"
	"fmt"
	"go.uber.org/zap"
	"schedule_poll_bot/internal/discord_bot/extension"
	"schedule_poll_bot/internal/lifecycle"
	"strings"
)

const resultsCommandName = "results"

type resultsCommand struct {
	controller Controller
	logger     *zap.SugaredLogger
}

func NewResultsCommand(controller Controller, logger *zap.SugaredLogger) Command {
	return &resultsCommand{
		controller: controller,
		logger:     logger,
	}
}

func (c *resultsCommand) CanHandle(command string) bool {
	return command == resultsCommandName
}

func (c *resultsCommand) Privileged() bool {
	return false
}

func (c *resultsCommand) Handle(ctx context.Context, _ string, request Request) string {
	counts, err := c.controller.Results(ctx)
	if errors.Is(err, lifecycle.ErrNoActivePoll) {
		return extension.ErrorMessage("There is no active poll.")
	}
	if err != nil {
		c.logger.Errorw("failed to get results", "user", request.UserID, "error", err)
		return extension.DefaultErrorMessage()
	}

	var b strings.Builder
	b.WriteString("📊 Current results\n")
	for _, count := range counts {
		mentions := make([]string, 0, len(count.Participants))
		for _, participant := range count.Participants {
			mentions = append(mentions, extension.Mention(participant))
		}

		fmt.Fprintf(&b, "%s %s: %d", count.Option.Symbol, count.Option.Label, count.Votes)
		if len(mentions) > 0 {
			fmt.Fprintf(&b, " (%s)", strings.Join(mentions, ", "))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
