package configs

type Bot struct {
	Token         string `env:"DISCORD_POLL_BOT_TOKEN,notEmpty"`
	CommandPrefix string `env:"DISCORD_COMMAND_PREFIX" envDefault:"!poll"`
}
