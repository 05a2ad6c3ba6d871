package configs

type ExpiryRules struct {
	MaxPollAgeDays int    `env:"POLL_MAX_AGE_DAYS" envDefault:"7"`
	Schedule       string `env:"POLL_EXPIRY_SCHEDULE" envDefault:"0 12 * * *"`
}
