package commands

import (
	"errors"
	"fmt"
	"strings"

	"poll_bot_system/internal/services"
	tgbot "poll_bot_system/internal/tg_bot/extension"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const endPollCommandName = "endpoll"

type endPollCommand struct {
	dataService services.DataService
	logger      *zap.SugaredLogger
}

func NewEndPollCommand(dataService services.DataService, logger *zap.SugaredLogger) Command {
	return &endPollCommand{
		dataService: dataService,
		logger:      logger,
	}
}

func (c *endPollCommand) CanHandle(command string) bool {
	return command == endPollCommandName
}

func (c *endPollCommand) Handle(command, arguments string, user *tgbotapi.User, chat *tgbotapi.Chat) []tgbotapi.Chattable {
	poll, err := c.dataService.GetActivePoll(user.ID)
	if err != nil {
		c.logger.Errorw("failed to get active poll", "error", err)
		return []tgbotapi.Chattable{tgbot.DefaultErrorMessage(chat.ID)}
	}
	if poll == nil {
		return []tgbotapi.Chattable{tgbot.ErrorMessage(chat.ID, "You have no active poll")}
	}

	if err := c.dataService.EndPoll(user.ID); err != nil {
		if errors.Is(err, services.ErrNoActivePoll) {
			return []tgbotapi.Chattable{tgbot.ErrorMessage(chat.ID, "You have no active poll")}
		}

		c.logger.Errorw("failed to end poll", "error", err)
		return []tgbotapi.Chattable{tgbot.DefaultErrorMessage(chat.ID)}
	}

	results, err := c.dataService.GetPollResults(poll.ID)
	if err != nil {
		c.logger.Errorw("failed to get poll results", "error", err)
		return []tgbotapi.Chattable{tgbot.DefaultErrorMessage(chat.ID)}
	}

	votes, err := c.dataService.GetVotes(poll.ID)
	if err != nil {
		c.logger.Errorw("failed to get votes", "error", err)
		return []tgbotapi.Chattable{tgbot.DefaultErrorMessage(chat.ID)}
	}

	var messageText strings.Builder
	messageText.WriteString(fmt.Sprintf("Poll ended: %s\n%d votes cast\n\n", poll.QuestionText, len(votes)))
	messageText.WriteString(renderResults(results))

	return []tgbotapi.Chattable{tgbotapi.NewMessage(chat.ID, messageText.String())}
}
