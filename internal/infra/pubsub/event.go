package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/KasumiMercury/primind-medication-helper/internal/observability/tracing"
)

const (
	TopicMedicationDue = "medication.reminder.due"

	eventTypeMedicationDue = "medication.reminder.due"
)

type MedicationDueEvent struct {
	MedicationID string    `json:"medication_id"`
	Name         string    `json:"name"`
	Dosage       string    `json:"dosage"`
	Notes        string    `json:"notes,omitempty"`
	ReminderTime string    `json:"reminder_time"`
	DueAt        time.Time `json:"due_at"`
	DetectedAt   time.Time `json:"detected_at"`
}

func newMedicationDueMessage(ctx context.Context, event *MedicationDueEvent) (*message.Message, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_type", eventTypeMedicationDue)
	msg.Metadata.Set("medication_id", event.MedicationID)
	msg.Metadata.Set("due_at", event.DueAt.Format(time.RFC3339))
	tracing.InjectToMap(ctx, msg.Metadata)

	msg.SetContext(ctx)

	return msg, nil
}
