package pbhandlers

import (
	"poll_bot_system/internal/tg_bot/commands"
	"poll_bot_system/internal/tg_bot/handlers"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type pollBotCommandHandler struct {
	logger   *zap.SugaredLogger
	commands []commands.Command
}

func NewPollBotCommandHandler(logger *zap.SugaredLogger, commands []commands.Command) handlers.CommandHandler {
	return &pollBotCommandHandler{
		logger:   logger,
		commands: commands,
	}
}

func (h *pollBotCommandHandler) Handle(update tgbotapi.Update) []tgbotapi.Chattable {
	message := update.Message
	if message == nil {
		return []tgbotapi.Chattable{}
	}

	if !message.IsCommand() {
		return []tgbotapi.Chattable{}
	}

	h.logger.Infow("received command", "command", message.Command())

	for _, handler := range h.commands {
		if handler.CanHandle(message.Command()) {
			return handler.Handle(message.Command(), message.CommandArguments(), message.From, message.Chat)
		}
	}

	h.logger.Warnw("received unknown command", "command", message.Command())
	return []tgbotapi.Chattable{}
}
