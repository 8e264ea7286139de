package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/KasumiMercury/primind-medication-helper/internal/app"
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramNotifier struct {
	bot    sender
	chatID int64
}

func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	slog.Info("telegram notifier ready",
		slog.String("bot", bot.Self.UserName),
	)

	return &TelegramNotifier{
		bot:    bot,
		chatID: chatID,
	}, nil
}

func (n *TelegramNotifier) Name() string {
	return "telegram"
}

func (n *TelegramNotifier) Notify(ctx context.Context, reminder app.DueMedicationOutput) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(n.chatID, formatReminder(reminder))

	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}

	return nil
}

func formatReminder(reminder app.DueMedicationOutput) string {
	var b strings.Builder

	b.WriteString("Medication Reminder\n")
	fmt.Fprintf(&b, "Time to take %s! %s at %s", reminder.Name, reminder.Dosage, reminder.NextTime)

	if reminder.Notes != "" {
		fmt.Fprintf(&b, "\n%s", reminder.Notes)
	}

	return b.String()
}
