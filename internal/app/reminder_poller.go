package app

import (
	"context"
	"log/slog"
	"time"
)

const DefaultPollInterval = time.Minute

type ReminderPoller struct {
	dispatcher *ReminderDispatcher
	interval   time.Duration
	now        func() time.Time
}

func NewReminderPoller(dispatcher *ReminderDispatcher, interval time.Duration) *ReminderPoller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	return &ReminderPoller{
		dispatcher: dispatcher,
		interval:   interval,
		now:        time.Now,
	}
}

// Run polls immediately and then on every interval until ctx is cancelled.
func (p *ReminderPoller) Run(ctx context.Context) {
	slog.InfoContext(ctx, "reminder poller started",
		slog.Duration("interval", p.interval),
	)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "reminder poller stopped")

			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

func (p *ReminderPoller) tick(ctx context.Context) {
	now := p.now()

	result, err := p.dispatcher.Dispatch(ctx, now)
	if err != nil {
		slog.ErrorContext(ctx, "reminder poll failed",
			slog.String("event", "reminder.poll.fail"),
			slog.String("error", err.Error()),
		)

		return
	}

	if result.Due == 0 && result.Skipped == 0 {
		return
	}

	slog.InfoContext(ctx, "reminder poll finished",
		slog.String("event", "reminder.poll"),
		slog.Time("checked_at", now),
		slog.Int("due", result.Due),
		slog.Int("dispatched", result.Dispatched),
		slog.Int("suppressed", result.Suppressed),
		slog.Int("skipped", result.Skipped),
	)
}
