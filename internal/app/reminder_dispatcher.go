package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultSuppressionCacheSize = 1024

// Notifier delivers a single due reminder to one channel.
type Notifier interface {
	Name() string
	Notify(ctx context.Context, reminder DueMedicationOutput) error
}

type ReminderMetrics interface {
	RecordDispatched(ctx context.Context, notifier string)
	RecordFailed(ctx context.Context, notifier string)
	RecordSuppressed(ctx context.Context)
}

type noopReminderMetrics struct{}

func (noopReminderMetrics) RecordDispatched(context.Context, string) {}
func (noopReminderMetrics) RecordFailed(context.Context, string)     {}
func (noopReminderMetrics) RecordSuppressed(context.Context)         {}

type DispatcherConfig struct {
	Tolerance            time.Duration
	SuppressionCacheSize int
}

type DispatchResult struct {
	Due        int
	Dispatched int
	Suppressed int
	Skipped    int
}

// ReminderDispatcher sends each due reminder to every notifier, at most once per due instant.
type ReminderDispatcher struct {
	medications MedicationUseCase
	notifiers   []Notifier
	tolerance   time.Duration
	metrics     ReminderMetrics
	// medication id -> due instant already notified
	notified *lru.Cache[string, time.Time]
}

func NewReminderDispatcher(
	medications MedicationUseCase,
	notifiers []Notifier,
	cfg DispatcherConfig,
	metrics ReminderMetrics,
) (*ReminderDispatcher, error) {
	if cfg.Tolerance < 0 {
		return nil, NewValidationError("tolerance", "must not be negative")
	}

	size := cfg.SuppressionCacheSize
	if size <= 0 {
		size = defaultSuppressionCacheSize
	}

	cache, err := lru.New[string, time.Time](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create suppression cache: %w", err)
	}

	if metrics == nil {
		metrics = noopReminderMetrics{}
	}

	return &ReminderDispatcher{
		medications: medications,
		notifiers:   notifiers,
		tolerance:   cfg.Tolerance,
		metrics:     metrics,
		notified:    cache,
	}, nil
}

func (d *ReminderDispatcher) Dispatch(ctx context.Context, now time.Time) (DispatchResult, error) {
	due, err := d.medications.ListDueMedications(ctx, ListDueMedicationsInput{
		At:        now,
		Tolerance: d.tolerance,
	})
	if err != nil {
		return DispatchResult{}, err
	}

	result := DispatchResult{
		Due:     len(due.Medications),
		Skipped: int(due.SkippedCount),
	}

	for _, reminder := range due.Medications {
		if last, ok := d.notified.Get(reminder.MedicationID); ok && last.Equal(reminder.DueAt) {
			d.metrics.RecordSuppressed(ctx)

			result.Suppressed++

			continue
		}

		if d.notify(ctx, reminder) {
			d.notified.Add(reminder.MedicationID, reminder.DueAt)

			result.Dispatched++
		}
	}

	return result, nil
}

// notify reports whether at least one notifier accepted the reminder.
func (d *ReminderDispatcher) notify(ctx context.Context, reminder DueMedicationOutput) bool {
	delivered := false

	for _, n := range d.notifiers {
		if err := n.Notify(ctx, reminder); err != nil {
			slog.WarnContext(ctx, "reminder notification failed",
				slog.String("event", "reminder.dispatch.fail"),
				slog.String("notifier", n.Name()),
				slog.String("medication_id", reminder.MedicationID),
				slog.String("error", err.Error()),
			)
			d.metrics.RecordFailed(ctx, n.Name())

			continue
		}

		d.metrics.RecordDispatched(ctx, n.Name())

		delivered = true
	}

	return delivered
}
