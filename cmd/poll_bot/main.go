package main

import (
	"poll_bot_system/configs"
	"poll_bot_system/internal/db"
	"poll_bot_system/internal/db/repositories"
	"poll_bot_system/internal/di"
	"poll_bot_system/internal/services"
	tgbot "poll_bot_system/internal/tg_bot"
	"poll_bot_system/internal/tg_bot/commands"
	pbhandlers "poll_bot_system/internal/tg_bot/handlers/poll_bot"

	"go.uber.org/zap"
)

func main() {
	logger := zap.Must(zap.NewProduction()).Sugar()

	logger.Info("loading config")
	config, err := configs.LoadPollBotConfig()
	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	logger = di.NewLogger(config.Logger.AppName, config.App.Environment, config.Logger.URL)

	logger.Info("starting db")
	database, err := db.StartDB(config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	logger.Info("db started")

	logger.Info("starting bot")
	pollRepository := repositories.NewPollRepository(database)
	voteRepository := repositories.NewVoteRepository(database)
	tallyService := services.NewTallyService(voteRepository)
	dataService := services.NewDataService(pollRepository, voteRepository, tallyService, logger)

	tgbot.NewBot(
		pbhandlers.NewPollBotCommandHandler(logger, []commands.Command{
			commands.NewStartCommand(logger),
			commands.NewCreatePollCommand(dataService, logger),
			commands.NewVoteCommand(dataService, logger),
			commands.NewEndPollCommand(dataService, logger),
			commands.NewHistoryCommand(dataService, config.Bot.HistorySize, logger),
		}),
	).Start(config, logger)
}
