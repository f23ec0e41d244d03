package discord

import (
	"context"
	"errors"
	"fmt"
	"github.com/bwmarrin/discordgo"
	"net/http"
	"schedule_poll_bot/internal/gateway"
)

// Gateway performs poll message operations over a discordgo session.
type Gateway struct {
	session *discordgo.Session
}

func NewGateway(session *discordgo.Session) *Gateway {
	return &Gateway{session: session}
}

func (g *Gateway) CreateMessage(ctx context.Context, location string, content gateway.Content) (gateway.Handle, error) {
	if err := ctx.Err(); err != nil {
		return gateway.Handle{}, err
	}

	send := &discordgo.MessageSend{
		Content: content.Text,
		Embeds:  embeds(content),
	}
	if !content.Reference.IsZero() {
		send.Reference = &discordgo.MessageReference{
			ChannelID: content.Reference.ChannelID,
			MessageID: content.Reference.MessageID,
		}
	}

	message, err := g.session.ChannelMessageSendComplex(location, send)
	if err != nil {
		return gateway.Handle{}, translate("create message", err)
	}

	return gateway.Handle{ChannelID: message.ChannelID, MessageID: message.ID}, nil
}

func (g *Gateway) PinMessage(ctx context.Context, handle gateway.Handle) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return translate("pin message", g.session.ChannelMessagePin(handle.ChannelID, handle.MessageID))
}

func (g *Gateway) UnpinMessage(ctx context.Context, handle gateway.Handle) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return translate("unpin message", g.session.ChannelMessageUnpin(handle.ChannelID, handle.MessageID))
}

func (g *Gateway) EditMessage(ctx context.Context, handle gateway.Handle, content gateway.Content) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	edit := discordgo.NewMessageEdit(handle.ChannelID, handle.MessageID).
		SetContent(content.Text).
		SetEmbeds(embeds(content))

	_, err := g.session.ChannelMessageEditComplex(edit)
	return translate("edit message", err)
}

func (g *Gateway) DeleteMessage(ctx context.Context, handle gateway.Handle) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return translate("delete message", g.session.ChannelMessageDelete(handle.ChannelID, handle.MessageID))
}

func (g *Gateway) AddReaction(ctx context.Context, handle gateway.Handle, symbol string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return translate("add reaction", g.session.MessageReactionAdd(handle.ChannelID, handle.MessageID, symbol))
}

func (g *Gateway) FetchMessage(ctx context.Context, handle gateway.Handle) (gateway.Content, error) {
	if err := ctx.Err(); err != nil {
		return gateway.Content{}, err
	}

	message, err := g.session.ChannelMessage(handle.ChannelID, handle.MessageID)
	if err != nil {
		return gateway.Content{}, translate("fetch message", err)
	}

	return contentOf(message), nil
}

func embeds(content gateway.Content) []*discordgo.MessageEmbed {
	if content.Title == "" && content.Description == "" && len(content.Fields) == 0 {
		return nil
	}

	embed := &discordgo.MessageEmbed{
		Title:       content.Title,
		Description: content.Description,
		Color:       content.Color,
	}
	for _, field := range content.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   field.Name,
			Value:  field.Value,
			Inline: field.Inline,
		})
	}
	if content.Footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: content.Footer}
	}

	return []*discordgo.MessageEmbed{embed}
}

func contentOf(message *discordgo.Message) gateway.Content {
	content := gateway.Content{Text: message.Content}
	if len(message.Embeds) == 0 {
		return content
	}

	embed := message.Embeds[0]
	content.Title = embed.Title
	content.Description = embed.Description
	content.Color = embed.Color
	for _, field := range embed.Fields {
		content.Fields = append(content.Fields, gateway.Field{Name: field.Name, Value: field.Value, Inline: field.Inline})
	}
	if embed.Footer != nil {
		content.Footer = embed.Footer.Text
	}

	return content
}

// translate maps discordgo REST failures onto the gateway sentinel errors.
func translate(action string, err error) error {
	if err == nil {
		return nil
	}

	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) {
		return fmt.Errorf("%s: %w", action, err)
	}

	if restErr.Message != nil {
		switch restErr.Message.Code {
		case discordgo.ErrCodeUnknownMessage, discordgo.ErrCodeUnknownChannel, discordgo.ErrCodeUnknownUser:
			return fmt.Errorf("%s: %w: %s", action, gateway.ErrNotFound, restErr.Message.Message)
		case discordgo.ErrCodeMissingAccess, discordgo.ErrCodeMissingPermissions:
			return fmt.Errorf("%s: %w: %s", action, gateway.ErrPermissionDenied, restErr.Message.Message)
		}
	}

	if restErr.Response != nil {
		switch restErr.Response.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%s: %w", action, gateway.ErrNotFound)
		case http.StatusForbidden:
			return fmt.Errorf("%s: %w", action, gateway.ErrPermissionDenied)
		}
	}

	return fmt.Errorf("%s: %w", action, err)
}
