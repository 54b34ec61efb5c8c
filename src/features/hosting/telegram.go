package hosting

import (
	"fmt"
	"log/slog"

	"github.com/contre95/soundgate/src/features/config"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramNotifier announces catalog changes to a configured chat. It
// satisfies the Notifier interfaces the services declare.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramNotifier creates a notifier from the configuration.
func NewTelegramNotifier(cfg *config.Manager) (*TelegramNotifier, error) {
	telegramConfig := cfg.Get().Telegram

	if !telegramConfig.Enabled {
		return nil, fmt.Errorf("telegram notifier is disabled in configuration")
	}
	if telegramConfig.Token == "" {
		return nil, fmt.Errorf("telegram bot token is not configured")
	}
	if telegramConfig.ChatID == 0 {
		return nil, fmt.Errorf("telegram chat id is not configured")
	}

	bot, err := tgbotapi.NewBotAPI(telegramConfig.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	slog.Info("Telegram notifier initialized", "username", bot.Self.UserName)

	return &TelegramNotifier{bot: bot, chatID: telegramConfig.ChatID}, nil
}

// Notify sends one message. Delivery failures are logged and dropped; the
// notifier never blocks or fails the operation that triggered it. A nil
// notifier (telegram disabled) is a no-op.
func (n *TelegramNotifier) Notify(message string) {
	if n == nil {
		return
	}
	go func() {
		if _, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, message)); err != nil {
			slog.Warn("Failed to send telegram notification", "error", err)
		}
	}()
}
