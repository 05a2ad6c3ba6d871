package configs

type Bot struct {
	Token         string `env:"TELEGRAM_POLL_BOT_TOKEN,notEmpty"`
	UpdateTimeout int    `env:"TELEGRAM_BOT_UPDATE_TIMEOUT" envDefault:"60"`
	HistorySize   int    `env:"POLL_HISTORY_SIZE" envDefault:"10"`
}
