package commands

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const startCommandName = "start"

type startCommand struct {
	logger *zap.SugaredLogger
}

func NewStartCommand(logger *zap.SugaredLogger) Command {
	return &startCommand{
		logger: logger,
	}
}

func (c *startCommand) CanHandle(command string) bool {
	return command == startCommandName
}

func (c *startCommand) Handle(command, arguments string, user *tgbotapi.User, chat *tgbotapi.Chat) []tgbotapi.Chattable {
	messageText := `
Hi! I run polls. Here is what I can do:

/createpoll question | answer 1, answer 2, ... - create a poll (one active poll per creator)
/vote poll_id answer - cast or change your vote
/endpoll - end your active poll and show its results
/history - show your past polls with results
/history active - show your current active poll

For the full command list, press the Menu button.
`
	return []tgbotapi.Chattable{tgbotapi.NewMessage(chat.ID, messageText)}
}
