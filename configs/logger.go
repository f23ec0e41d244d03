package configs

type Logger struct {
	AppName string `env:"LOGGER_APP_NAME" envDefault:"schedule-poll-bot"`
	URL     string `env:"LOKI_URL"`
}
