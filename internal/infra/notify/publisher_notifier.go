package notify

import (
	"context"
	"time"

	"github.com/KasumiMercury/primind-medication-helper/internal/app"
	"github.com/KasumiMercury/primind-medication-helper/internal/infra/pubsub"
)

type PublisherNotifier struct {
	publisher pubsub.Publisher
	now       func() time.Time
}

func NewPublisherNotifier(publisher pubsub.Publisher) *PublisherNotifier {
	return &PublisherNotifier{
		publisher: publisher,
		now:       time.Now,
	}
}

func (n *PublisherNotifier) Name() string {
	return "event"
}

func (n *PublisherNotifier) Notify(ctx context.Context, reminder app.DueMedicationOutput) error {
	return n.publisher.PublishMedicationDue(ctx, &pubsub.MedicationDueEvent{
		MedicationID: reminder.MedicationID,
		Name:         reminder.Name,
		Dosage:       reminder.Dosage,
		Notes:        reminder.Notes,
		ReminderTime: reminder.NextTime,
		DueAt:        reminder.DueAt,
		DetectedAt:   n.now(),
	})
}
