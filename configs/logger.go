package configs

type Logger struct {
	AppName string `env:"LOGGER_APP_NAME" envDefault:"poll-bot"`
	URL     string `env:"LOGGER_URL"`
}
