package commands

import (
	"fmt"
	"strconv"
	"strings"

	"poll_bot_system/internal"
	"poll_bot_system/internal/db/models"
	"poll_bot_system/internal/services"
	tgbot "poll_bot_system/internal/tg_bot/extension"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const historyCommandName = "history"

type historyCommand struct {
	dataService services.DataService
	historySize int
	logger      *zap.SugaredLogger
}

func NewHistoryCommand(dataService services.DataService, historySize int, logger *zap.SugaredLogger) Command {
	return &historyCommand{
		dataService: dataService,
		historySize: historySize,
		logger:      logger,
	}
}

func (c *historyCommand) CanHandle(command string) bool {
	return command == historyCommandName
}

func (c *historyCommand) Handle(command, arguments string, user *tgbotapi.User, chat *tgbotapi.Chat) []tgbotapi.Chattable {
	count := c.historySize
	active := false

	arguments = strings.TrimSpace(arguments)
	switch {
	case arguments == "active":
		active = true
	case arguments != "":
		parsed, err := strconv.Atoi(arguments)
		if err != nil || parsed < 1 {
			return []tgbotapi.Chattable{tgbot.ErrorMessage(chat.ID, "Usage: /history, /history 5 or /history active")}
		}
		count = parsed
	}

	history, err := c.dataService.GetPollHistory(user.ID, streamID(chat), displayName(user), count, active)
	if err != nil {
		c.logger.Errorw("failed to get poll history", "error", err)
		return []tgbotapi.Chattable{tgbot.DefaultErrorMessage(chat.ID)}
	}
	if history == nil {
		return []tgbotapi.Chattable{tgbotapi.NewMessage(chat.ID, "No polls found")}
	}

	return []tgbotapi.Chattable{tgbotapi.NewMessage(chat.ID, renderHistory(history))}
}

func renderHistory(history *models.PollHistory) string {
	var text strings.Builder

	scope := "everywhere"
	if history.Room {
		scope = "in this room"
	}
	text.WriteString(fmt.Sprintf("Polls by %s %s:\n", history.CreatorDisplayName, scope))

	for _, item := range history.Polls {
		text.WriteString(fmt.Sprintf("\n%s (created %s", item.QuestionText, internal.Format(item.CreatedAt)))
		if item.EndedAt.IsZero() {
			text.WriteString(", still open)\n")
		} else {
			text.WriteString(fmt.Sprintf(", ended %s)\n", internal.Format(item.EndedAt)))
		}

		text.WriteString(renderResults(item.Results))
	}

	return text.String()
}

// renderResults draws one bar row per answer. Widths come normalized to
// [1, 200]; a terminal can't take 200 cells, so rows are scaled down to at
// most 20 blocks.
func renderResults(results []models.PollResult) string {
	var text strings.Builder

	for _, result := range results {
		blocks := result.Width / 10
		if blocks < 1 {
			blocks = 1
		}

		text.WriteString(fmt.Sprintf("%s %d - %s\n", strings.Repeat("▇", blocks), result.Count, result.Answer))
	}

	return text.String()
}
