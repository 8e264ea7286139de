package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ReminderMetrics counts reminder notifications per notifier.
type ReminderMetrics struct {
	dispatched metric.Int64Counter
	failed     metric.Int64Counter
	suppressed metric.Int64Counter
}

func NewReminderMetrics(meter metric.Meter) (*ReminderMetrics, error) {
	dispatched, err := meter.Int64Counter(
		"medication.reminder.dispatched",
		metric.WithDescription("Reminder notifications delivered"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create dispatched counter: %w", err)
	}

	failed, err := meter.Int64Counter(
		"medication.reminder.failed",
		metric.WithDescription("Reminder notifications that a notifier rejected"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create failed counter: %w", err)
	}

	suppressed, err := meter.Int64Counter(
		"medication.reminder.suppressed",
		metric.WithDescription("Due reminders skipped because they were already delivered"),
		metric.WithUnit("{reminder}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create suppressed counter: %w", err)
	}

	return &ReminderMetrics{
		dispatched: dispatched,
		failed:     failed,
		suppressed: suppressed,
	}, nil
}

func (m *ReminderMetrics) RecordDispatched(ctx context.Context, notifier string) {
	m.dispatched.Add(ctx, 1, metric.WithAttributes(attribute.String("notifier", notifier)))
}

func (m *ReminderMetrics) RecordFailed(ctx context.Context, notifier string) {
	m.failed.Add(ctx, 1, metric.WithAttributes(attribute.String("notifier", notifier)))
}

func (m *ReminderMetrics) RecordSuppressed(ctx context.Context) {
	m.suppressed.Add(ctx, 1)
}
