package domain

import "time"

// ReminderStatus is derived from a reminder configuration at a given moment.
// It is never persisted.
type ReminderStatus struct {
	hasNext   bool
	isDue     bool
	nextTime  TimeOfDay
	timeUntil time.Duration
	nextAt    time.Time
}

func (s ReminderStatus) HasNext() bool {
	return s.hasNext
}

func (s ReminderStatus) IsDue() bool {
	return s.isDue
}

// NextTime is meaningful only when HasNext is true.
func (s ReminderStatus) NextTime() TimeOfDay {
	return s.nextTime
}

func (s ReminderStatus) TimeUntil() time.Duration {
	return s.timeUntil
}

// NextAt is the next reminder instant in the location of the queried moment.
func (s ReminderStatus) NextAt() time.Time {
	return s.nextAt
}

// ComputeStatus finds the next daily occurrence among times relative to now.
//
// now is read as a naive wall-clock value: only its calendar fields are used,
// so zone offsets and DST transitions do not affect the result. TimeUntil is
// always in [0, 24h). Ties on TimeUntil resolve to the smallest TimeOfDay.
func ComputeStatus(times ReminderTimes, now time.Time, dueTolerance time.Duration) ReminderStatus {
	if times.IsEmpty() {
		return ReminderStatus{}
	}

	wall := wallClock(now)

	var (
		best      TimeOfDay
		bestUntil time.Duration
		found     bool
	)

	for _, t := range times.times {
		candidate := t.On(wall, time.UTC)
		if candidate.Before(wall) {
			candidate = candidate.AddDate(0, 0, 1)
		}

		until := candidate.Sub(wall)
		if !found || until < bestUntil || (until == bestUntil && t.Before(best)) {
			best = t
			bestUntil = until
			found = true
		}
	}

	nextDay := wall.Add(bestUntil)

	return ReminderStatus{
		hasNext:   true,
		isDue:     bestUntil <= dueTolerance,
		nextTime:  best,
		timeUntil: bestUntil,
		nextAt:    best.On(nextDay, now.Location()),
	}
}

type MedicationReminder struct {
	MedicationID MedicationID
	Config       ReminderConfig
}

// DueReminders returns the medications whose reminder is due at now, in input order.
// It does not remember earlier calls.
func DueReminders(configs []MedicationReminder, now time.Time, tolerance time.Duration) []MedicationID {
	due := make([]MedicationID, 0, len(configs))

	for _, c := range configs {
		if c.Config.Status(now, tolerance).IsDue() {
			due = append(due, c.MedicationID)
		}
	}

	return due
}

func wallClock(t time.Time) time.Time {
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()

	return time.Date(y, m, d, hh, mm, ss, t.Nanosecond(), time.UTC)
}
