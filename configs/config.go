package configs

import (
	"fmt"
	"github.com/caarlos0/env/v6"
)

type PollBotConfig struct {
	App      App
	Bot      Bot
	Discord  Discord
	DB       DB
	Logger   Logger
	Poll     Poll
	Notifier Notifier
	Storage  Storage
}

func LoadPollBotConfig() (PollBotConfig, error) {
	var config PollBotConfig

	if err := env.Parse(&config); err != nil {
		return PollBotConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if config.Poll.RotationStartHour >= config.Poll.RotationEndHour {
		return PollBotConfig{}, fmt.Errorf("rotation window [%d, %d) is empty", config.Poll.RotationStartHour, config.Poll.RotationEndHour)
	}

	if config.Storage.Driver == StorageDriverPostgres && config.DB.URL == "" {
		return PollBotConfig{}, fmt.Errorf("storage driver %q requires DATABASE_URL", config.Storage.Driver)
	}

	return config, nil
}
