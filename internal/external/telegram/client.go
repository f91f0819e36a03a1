package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"followsync/internal/model"
)

// Client представляет клиент Telegram Bot API
type Client struct {
	api    BotAPI
	chatID int64
	logger *zap.Logger
}

// NewClient создает новый клиент Telegram
func NewClient(botToken string, chatID int64, logger *zap.Logger) (*Client, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}

	bot.Debug = false
	logger.Info("Telegram bot created", zap.String("username", bot.Self.UserName))

	return NewClientWithAPI(bot, chatID, logger), nil
}

// NewClientWithAPI создает клиент поверх готового транспорта
func NewClientWithAPI(api BotAPI, chatID int64, logger *zap.Logger) *Client {
	return &Client{
		api:    api,
		chatID: chatID,
		logger: logger,
	}
}

// SendRunReport отправляет отчет о запуске синхронизации
func (c *Client) SendRunReport(summary *model.RunSummary) error {
	msg := tgbotapi.NewMessage(c.chatID, FormatRunReport(summary))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	if _, err := c.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send run report: %w", err)
	}

	c.logger.Info("Run report sent",
		zap.Int64("chat_id", c.chatID),
		zap.Int("followed", len(summary.Followed)),
		zap.Int("unfollowed", len(summary.Unfollowed)))
	return nil
}

var _ Notifier = (*Client)(nil)

// NoopNotifier используется при отсутствии настроек Telegram
type NoopNotifier struct {
	logger *zap.Logger
}

// NewNoopNotifier создает notifier-заглушку
func NewNoopNotifier(logger *zap.Logger) *NoopNotifier {
	return &NoopNotifier{logger: logger}
}

// SendRunReport ничего не отправляет
func (n *NoopNotifier) SendRunReport(summary *model.RunSummary) error {
	n.logger.Debug("Telegram is not configured, skipping run report")
	return nil
}

var _ Notifier = (*NoopNotifier)(nil)
