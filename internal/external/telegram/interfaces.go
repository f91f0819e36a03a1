// Package telegram содержит отправку уведомлений через Telegram Bot API.
package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"followsync/internal/model"
)

// Notifier определяет интерфейс для отправки отчетов о запуске
type Notifier interface {
	SendRunReport(summary *model.RunSummary) error
}

// BotAPI определяет интерфейс для транспорта Telegram
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}
