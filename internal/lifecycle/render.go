package lifecycle

import (
	"fmt"
	"github.com/dustin/go-humanize/english"
	"schedule_poll_bot/internal/gateway"
	"schedule_poll_bot/internal/poll"
	"strings"
)

const (
	colorOpen   = 0x5865F2
	colorClosed = 0x747F8D
)

func renderPoll(state *poll.State, ledger *poll.Ledger) gateway.Content {
	votes := votesByOption(state, ledger)

	fields := make([]gateway.Field, 0, len(state.Options))
	for _, option := range state.Options {
		fields = append(fields, gateway.Field{
			Name:   fmt.Sprintf("%s %s", option.Symbol, option.Label),
			Value:  english.Plural(votes[option.Index], "vote", ""),
			Inline: true,
		})
	}

	return gateway.Content{
		Title:       fmt.Sprintf("📅 Schedule poll: week of %s", weekLabel(state)),
		Description: "React with the number of every day you can make it. Pick as many as you like, remove a reaction to take a vote back.",
		Fields:      fields,
		Footer:      fmt.Sprintf("%s · poll %s", english.Plural(ledger.ParticipantCount(), "participant", ""), state.ID),
		Color:       colorOpen,
	}
}

func renderClosed(state *poll.State, ledger *poll.Ledger) gateway.Content {
	counts := ledger.Counts(state.Options)

	var best []string
	for _, count := range counts {
		if count.Votes == 0 || count.Votes < counts[0].Votes {
			break
		}
		best = append(best, count.Option.Label)
	}

	description := "No votes were cast."
	if len(best) > 0 {
		description = fmt.Sprintf("Most popular: %s with %s.", strings.Join(best, ", "), english.Plural(counts[0].Votes, "vote", ""))
	}

	return gateway.Content{
		Title:       fmt.Sprintf("🔒 Schedule poll ended: week of %s", weekLabel(state)),
		Description: description,
		Footer:      fmt.Sprintf("poll %s", state.ID),
		Color:       colorClosed,
	}
}

func renderReminder(state *poll.State, participants int) gateway.Content {
	text := "Nobody has voted on this week's schedule poll yet. Please react on the pinned poll!"
	if participants > 0 {
		text = fmt.Sprintf("Only %s voted on this week's schedule poll so far. Please react on the pinned poll!",
			english.Plural(participants, "person has", "people have"))
	}

	return gateway.Content{Text: text, Reference: state.Message}
}

func renderBump(state *poll.State) gateway.Content {
	return gateway.Content{
		Text:      fmt.Sprintf("⬆️ The schedule poll for the week of %s is still open.", weekLabel(state)),
		Reference: state.Message,
	}
}

func votesByOption(state *poll.State, ledger *poll.Ledger) map[int]int {
	votes := make(map[int]int, len(state.Options))
	for _, count := range ledger.Counts(state.Options) {
		votes[count.Option.Index] = count.Votes
	}
	return votes
}

func weekLabel(state *poll.State) string {
	if len(state.Options) == 0 {
		return "?"
	}
	return state.Options[0].Label
}
