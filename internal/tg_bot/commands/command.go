package commands

import (
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Command interface {
	CanHandle(command string) bool
	Handle(command, arguments string, user *tgbotapi.User, chat *tgbotapi.Chat) []tgbotapi.Chattable
}

// streamID identifies the conversation a poll is scoped to. Direct chats
// with the bot map to the empty id, meaning creator-global scope.
func streamID(chat *tgbotapi.Chat) string {
	if chat == nil || chat.IsPrivate() {
		return ""
	}

	return strconv.FormatInt(chat.ID, 10)
}

func displayName(user *tgbotapi.User) string {
	var parts []string

	if user.FirstName != "" {
		parts = append(parts, user.FirstName)
	}

	if user.LastName != "" {
		parts = append(parts, user.LastName)
	}

	if len(parts) == 0 {
		return user.UserName
	}

	return strings.Join(parts, " ")
}
