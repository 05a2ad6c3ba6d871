package main

import (
	"time"

	"poll_bot_system/configs"
	"poll_bot_system/internal/db"
	"poll_bot_system/internal/db/models"
	"poll_bot_system/internal/db/repositories"
	"poll_bot_system/internal/di"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

func main() {
	s := gocron.NewScheduler(time.UTC)

	config, err := configs.LoadPollExpiryServiceConfig()
	logger := di.NewLogger(config.Logger.AppName, config.App.Environment, config.Logger.URL)

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	logger.Info("starting db")
	database, err := db.StartDB(config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	logger.Info("db started")

	s.Cron(config.ExpiryRules.Schedule).Do(func() {
		pollRepository := repositories.NewPollRepository(database)
		cutoff := time.Now().AddDate(0, 0, -config.ExpiryRules.MaxPollAgeDays)

		expired := expirePolls(pollRepository, cutoff, logger)

		if len(expired) == 0 {
			logger.Info("no polls to expire")
		} else {
			logger.Infow("stale polls ended", "count", len(expired))
		}
	})

	s.StartBlocking()
}

// expirePolls force-ends every active poll created before the cutoff and
// returns the polls it managed to end. An abandoned poll would otherwise
// block its creator forever, since a creator can only run one poll at a
// time.
func expirePolls(pollRepository repositories.PollRepository, cutoff time.Time, logger *zap.SugaredLogger) []*models.Poll {
	polls, err := pollRepository.GetActiveCreatedBefore(cutoff)
	if err != nil {
		logger.Errorw("failed to get stale polls", "error", err)
		return nil
	}

	var expired []*models.Poll

	for _, poll := range polls {
		poll.EndedAt = time.Now()

		if _, err := pollRepository.Update(poll); err != nil {
			logger.Errorw("failed to end poll", "error", err, "poll", poll.ID)
			continue
		}

		expired = append(expired, poll)
	}

	return expired
}
