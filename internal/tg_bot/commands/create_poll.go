package commands

import (
	"fmt"
	"strings"

	"poll_bot_system/internal/db/models"
	"poll_bot_system/internal/services"
	tgbot "poll_bot_system/internal/tg_bot/extension"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const createPollCommandName = "createpoll"

type createPollCommand struct {
	dataService services.DataService
	logger      *zap.SugaredLogger
}

func NewCreatePollCommand(dataService services.DataService, logger *zap.SugaredLogger) Command {
	return &createPollCommand{
		dataService: dataService,
		logger:      logger,
	}
}

func (c *createPollCommand) CanHandle(command string) bool {
	return command == createPollCommandName
}

func (c *createPollCommand) Handle(command, arguments string, user *tgbotapi.User, chat *tgbotapi.Chat) []tgbotapi.Chattable {
	question, answers, ok := parsePollDefinition(arguments)
	if !ok {
		return []tgbotapi.Chattable{tgbot.ErrorMessage(chat.ID, "Usage: /createpoll question | answer 1, answer 2, ...")}
	}

	hasActivePoll, err := c.dataService.HasActivePoll(user.ID)
	if err != nil {
		c.logger.Errorw("failed to check active poll", "error", err)
		return []tgbotapi.Chattable{tgbot.DefaultErrorMessage(chat.ID)}
	}
	if hasActivePoll {
		return []tgbotapi.Chattable{tgbot.ErrorMessage(chat.ID, "You already have an active poll, end it with /endpoll first")}
	}

	pollType := models.StreamTypeDirect
	if streamID(chat) != "" {
		pollType = models.StreamTypeRoom
	}

	poll, err := c.dataService.CreatePoll(&models.Poll{
		Creator:      user.ID,
		StreamID:     streamID(chat),
		Type:         pollType,
		QuestionText: question,
		Answers:      answers,
	})
	if err != nil {
		c.logger.Errorw("failed to create poll", "error", err)
		return []tgbotapi.Chattable{tgbot.DefaultErrorMessage(chat.ID)}
	}

	var messageText strings.Builder
	messageText.WriteString(fmt.Sprintf("%s poll #%d: %s\n\n", poll.Type.CapitalizedString(), poll.ID, poll.QuestionText))
	for _, answer := range poll.Answers {
		messageText.WriteString(fmt.Sprintf("- %s\n", answer))
	}
	messageText.WriteString(fmt.Sprintf("\nVote with /vote %d your answer", poll.ID))

	return []tgbotapi.Chattable{tgbotapi.NewMessage(chat.ID, messageText.String())}
}

// parsePollDefinition splits "question | a, b, c" into its parts. A poll
// needs at least two distinct answers.
func parsePollDefinition(arguments string) (string, []string, bool) {
	parts := strings.SplitN(arguments, "|", 2)
	if len(parts) != 2 {
		return "", nil, false
	}

	question := strings.TrimSpace(parts[0])
	if question == "" {
		return "", nil, false
	}

	answers := make([]string, 0)
	for _, answer := range strings.Split(parts[1], ",") {
		answer = strings.TrimSpace(answer)
		if answer == "" {
			continue
		}

		duplicate := false
		for _, existing := range answers {
			if existing == answer {
				duplicate = true
				break
			}
		}
		if !duplicate {
			answers = append(answers, answer)
		}
	}

	if len(answers) < 2 {
		return "", nil, false
	}

	return question, answers, true
}
