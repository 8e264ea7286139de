package notify

import (
	"context"
	"log/slog"

	"github.com/KasumiMercury/primind-medication-helper/internal/app"
)

type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}

	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Name() string {
	return "log"
}

func (n *LogNotifier) Notify(ctx context.Context, reminder app.DueMedicationOutput) error {
	n.logger.InfoContext(ctx, "medication reminder due",
		slog.String("event", "reminder.dispatch"),
		slog.String("medication_id", reminder.MedicationID),
		slog.String("name", reminder.Name),
		slog.String("dosage", reminder.Dosage),
		slog.String("reminder_time", reminder.NextTime),
		slog.Time("due_at", reminder.DueAt),
	)

	return nil
}
