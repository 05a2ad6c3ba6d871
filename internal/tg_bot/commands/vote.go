package commands

import (
	"fmt"
	"strconv"
	"strings"

	"poll_bot_system/internal/db/models"
	"poll_bot_system/internal/services"
	tgbot "poll_bot_system/internal/tg_bot/extension"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const voteCommandName = "vote"

type voteCommand struct {
	dataService services.DataService
	logger      *zap.SugaredLogger
}

func NewVoteCommand(dataService services.DataService, logger *zap.SugaredLogger) Command {
	return &voteCommand{
		dataService: dataService,
		logger:      logger,
	}
}

func (c *voteCommand) CanHandle(command string) bool {
	return command == voteCommandName
}

func (c *voteCommand) Handle(command, arguments string, user *tgbotapi.User, chat *tgbotapi.Chat) []tgbotapi.Chattable {
	parts := strings.SplitN(strings.TrimSpace(arguments), " ", 2)
	if len(parts) != 2 {
		return []tgbotapi.Chattable{tgbot.ErrorMessage(chat.ID, "Usage: /vote poll_id answer")}
	}

	pollID, err := strconv.Atoi(parts[0])
	if err != nil {
		return []tgbotapi.Chattable{tgbot.ErrorMessage(chat.ID, "Usage: /vote poll_id answer")}
	}
	answer := strings.TrimSpace(parts[1])

	poll, err := c.dataService.GetPoll(pollID)
	if err != nil {
		c.logger.Errorw("failed to get poll", "error", err)
		return []tgbotapi.Chattable{tgbot.DefaultErrorMessage(chat.ID)}
	}
	if poll == nil {
		return []tgbotapi.Chattable{tgbot.ErrorMessage(chat.ID, fmt.Sprintf("Poll #%d not found", pollID))}
	}
	if !poll.IsActive() {
		return []tgbotapi.Chattable{tgbot.ErrorMessage(chat.ID, "This poll has already ended")}
	}

	if !pollAllowsAnswer(poll, answer) {
		return []tgbotapi.Chattable{tgbot.ErrorMessage(chat.ID, fmt.Sprintf("Answer %q is not one of the poll's options", answer))}
	}

	hasVoted, err := c.dataService.HasVoted(user.ID, poll.ID)
	if err != nil {
		c.logger.Errorw("failed to check vote", "error", err)
		return []tgbotapi.Chattable{tgbot.DefaultErrorMessage(chat.ID)}
	}

	if hasVoted {
		if err := c.dataService.ChangeVote(user.ID, poll.ID, answer); err != nil {
			c.logger.Errorw("failed to change vote", "error", err)
			return []tgbotapi.Chattable{tgbot.DefaultErrorMessage(chat.ID)}
		}

		return []tgbotapi.Chattable{tgbotapi.NewMessage(chat.ID, fmt.Sprintf("Your vote was changed to %q", answer))}
	}

	_, err = c.dataService.CreateVote(&models.Vote{
		PollID: poll.ID,
		UserID: user.ID,
		Answer: answer,
	})
	if err != nil {
		c.logger.Errorw("failed to create vote", "error", err)
		return []tgbotapi.Chattable{tgbot.DefaultErrorMessage(chat.ID)}
	}

	return []tgbotapi.Chattable{tgbotapi.NewMessage(chat.ID, fmt.Sprintf("Your vote for %q was counted", answer))}
}

func pollAllowsAnswer(poll *models.Poll, answer string) bool {
	for _, allowed := range poll.Answers {
		if allowed == answer {
			return true
		}
	}

	return false
}
