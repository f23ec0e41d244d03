package configs

type Notifier struct {
	TelegramToken  string `env:"TELEGRAM_ALERT_BOT_TOKEN"`
	TelegramChatID int64  `env:"TELEGRAM_ALERT_CHAT_ID"`
}

func (c Notifier) IsEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}
