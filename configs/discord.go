package configs

type Discord struct {
	GuildID   string `env:"DISCORD_SERVER_ID"`
	ChannelID string `env:"DISCORD_POLL_CHANNEL_ID"`
}
