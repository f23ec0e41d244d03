package commands

import (
	"context"
	"fmt"
	"go.uber.org/zap"
	"schedule_poll_bot/internal"
	"schedule_poll_bot/internal/discord_bot/extension"
	"schedule_poll_bot/internal/poll"
	"sort"
	"strings"
	"time"
)

const statusCommandName = "status"

type statusCommand struct {
	controller Controller
	location   *time.Location
	logger     *zap.SugaredLogger
}

func NewStatusCommand(controller Controller, location *time.Location, logger *zap.SugaredLogger) Command {
	return &statusCommand{
		controller: controller,
		location:   location,
		logger:     logger,
	}
}

func (c *statusCommand) CanHandle(command string) bool {
	return command == statusCommandName
}

func (c *statusCommand) Privileged() bool {
	return false
}

func (c *statusCommand) Handle(ctx context.Context, _ string, request Request) string {
	status, err := c.controller.Status(ctx)
	if err != nil {
		c.logger.Errorw("failed to get status", "user", request.UserID, "error", err)
		return extension.DefaultErrorMessage()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "State: %s\n", extension.StateName(status.State))
	if status.PollID != "" {
		fmt.Fprintf(&b, "Poll: %s (week of %s)\n", status.PollID, poll.Label(status.WeekOf))
		fmt.Fprintf(&b, "Posted: %s\n", internal.Format(status.CreatedAt, c.location))
		fmt.Fprintf(&b, "Participants: %d, votes: %d\n", status.Participants, status.Votes)
	}
	fmt.Fprintf(&b, "Reminders: %s, last %s\n", extension.OnOff(status.Scheduling.ReminderEnabled), extension.Since(status.Scheduling.LastReminder))
	fmt.Fprintf(&b, "Auto bump: %s, last %s\n", extension.OnOff(status.Scheduling.AutoBumpEnabled), extension.Since(status.Scheduling.LastBump))
	fmt.Fprintf(&b, "Last repost: %s\n", extension.Since(status.Scheduling.LastRepost))
	fmt.Fprintf(&b, "Last rotation: %s\n", extension.Since(status.Scheduling.LastRotation))
	if status.Restoring {
		b.WriteString("Restoring votes onto the poll message\n")
	}

	if len(status.Failures) > 0 {
		kinds := make([]string, 0, len(status.Failures))
		for kind := range status.Failures {
			kinds = append(kinds, kind)
		}
		sort.Strings(kinds)

		failures := make([]string, 0, len(kinds))
		for _, kind := range kinds {
			failures = append(failures, fmt.Sprintf("%s=%d", kind, status.Failures[kind]))
		}
		fmt.Fprintf(&b, "Failures: %s\n", strings.Join(failures, ", "))
	}

	return strings.TrimRight(b.String(), "\n")
}
