package configs

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

type PollBotConfig struct {
	App    App
	Bot    Bot
	DB     DB
	Logger Logger
}

func LoadPollBotConfig() (PollBotConfig, error) {
	var config PollBotConfig

	if err := env.Parse(&config); err != nil {
		return PollBotConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

type PollExpiryServiceConfig struct {
	App         App
	DB          DB
	Logger      Logger
	ExpiryRules ExpiryRules
}

func LoadPollExpiryServiceConfig() (PollExpiryServiceConfig, error) {
	var config PollExpiryServiceConfig

	if err := env.Parse(&config); err != nil {
		return PollExpiryServiceConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}
