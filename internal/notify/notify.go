package notify

import (
	"context"
	"fmt"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"schedule_poll_bot/configs"
)

// Notifier delivers operator alerts out of band.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

type Nop struct{}

func (Nop) Notify(context.Context, string) error {
	return nil
}

// Telegram sends alerts to a single Telegram chat.
type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegram(bot *tgbotapi.BotAPI, chatID int64) *Telegram {
	return &Telegram{bot: bot, chatID: chatID}
}

// New returns a Telegram notifier when configured and Nop otherwise.
func New(config configs.Notifier) (Notifier, error) {
	if !config.IsEnabled() {
		return Nop{}, nil
	}

	bot, err := tgbotapi.NewBotAPI(config.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return NewTelegram(bot, config.TelegramChatID), nil
}

func (t *Telegram) Notify(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	message := tgbotapi.NewMessage(t.chatID, text)
	message.DisableWebPagePreview = true

	if _, err := t.bot.Send(message); err != nil {
		return fmt.Errorf("send telegram alert: %w", err)
	}
	return nil
}
