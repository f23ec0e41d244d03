package discordbot

import (
	"context"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
	"schedule_poll_bot/internal/discord_bot/handlers"
	"schedule_poll_bot/internal/gateway"
	"schedule_poll_bot/internal/lifecycle"
	"time"
)

const commandTimeout = 30 * time.Second

// ReactionHandler receives poll votes.
type ReactionHandler interface {
	HandleReaction(ctx context.Context, reaction lifecycle.Reaction) error
}

type Bot struct {
	handler   handlers.CommandHandler
	reactions ReactionHandler
	logger    *zap.SugaredLogger
}

func NewBot(handler handlers.CommandHandler, reactions ReactionHandler, logger *zap.SugaredLogger) *Bot {
	return &Bot{
		handler:   handler,
		reactions: reactions,
		logger:    logger,
	}
}

// Register installs the bot's event handlers on session.
func (b *Bot) Register(session *discordgo.Session) {
	session.AddHandler(b.onMessageCreate)
	session.AddHandler(b.onReactionAdd)
	session.AddHandler(b.onReactionRemove)

	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentsMessageContent
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.Author.ID == s.State.User.ID {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	replies := b.handler.Handle(ctx, handlers.Message{
		UserID:    m.Author.ID,
		ChannelID: m.ChannelID,
		Content:   m.Content,
	})

	for _, reply := range replies {
		if _, err := s.ChannelMessageSendReply(m.ChannelID, reply, m.Reference()); err != nil {
			b.logger.Errorw("failed to send reply", "channel", m.ChannelID, "error", err)
		}
	}
}

func (b *Bot) onReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	b.forward(s.State.User.ID, true, r.MessageReaction)
}

func (b *Bot) onReactionRemove(s *discordgo.Session, r *discordgo.MessageReactionRemove) {
	b.forward(s.State.User.ID, false, r.MessageReaction)
}

func (b *Bot) forward(selfID string, added bool, r *discordgo.MessageReaction) {
	reaction, ok := toReaction(selfID, added, r)
	if !ok {
		return
	}

	if err := b.reactions.HandleReaction(context.Background(), reaction); err != nil {
		b.logger.Warnw("failed to queue reaction", "participant", reaction.Participant, "error", err)
	}
}

// toReaction converts a discord reaction, dropping the bot's own reactions.
func toReaction(selfID string, added bool, r *discordgo.MessageReaction) (lifecycle.Reaction, bool) {
	if r == nil || r.UserID == "" || r.UserID == selfID {
		return lifecycle.Reaction{}, false
	}

	return lifecycle.Reaction{
		Added:       added,
		Message:     gateway.Handle{ChannelID: r.ChannelID, MessageID: r.MessageID},
		Participant: r.UserID,
		Symbol:      r.Emoji.Name,
	}, true
}
