package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

const reminderTimesSeparator = ","

// ReminderTimes is an ascending set of daily reminder times without duplicates.
type ReminderTimes struct {
	times []TimeOfDay
}

func NewReminderTimes(times ...TimeOfDay) ReminderTimes {
	sorted := slices.Clone(times)
	slices.SortFunc(sorted, TimeOfDay.Compare)

	return ReminderTimes{times: slices.Compact(sorted)}
}

// ParseReminderTimes parses a comma-separated list of HH:MM tokens.
// A blank string is the empty set; any invalid token fails the whole list.
func ParseReminderTimes(raw string) (ReminderTimes, error) {
	if strings.TrimSpace(raw) == "" {
		return ReminderTimes{}, nil
	}

	tokens := strings.Split(raw, reminderTimesSeparator)
	times := make([]TimeOfDay, 0, len(tokens))

	for i, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			return ReminderTimes{}, fmt.Errorf("%w: empty entry at position %d", ErrInvalidConfiguration, i)
		}

		t, err := ParseTimeOfDay(token)
		if err != nil {
			return ReminderTimes{}, err
		}

		times = append(times, t)
	}

	return NewReminderTimes(times...), nil
}

func (r ReminderTimes) ToSlice() []TimeOfDay {
	return slices.Clone(r.times)
}

func (r ReminderTimes) Count() int {
	return len(r.times)
}

func (r ReminderTimes) IsEmpty() bool {
	return len(r.times) == 0
}

func (r ReminderTimes) Contains(t TimeOfDay) bool {
	return slices.Contains(r.times, t)
}

func (r ReminderTimes) Strings() []string {
	out := make([]string, 0, len(r.times))
	for _, t := range r.times {
		out = append(out, t.String())
	}

	return out
}

// String returns the canonical stored form, e.g. "08:00,20:00".
func (r ReminderTimes) String() string {
	return strings.Join(r.Strings(), reminderTimesSeparator)
}

type ReminderConfig struct {
	enabled bool
	times   ReminderTimes
}

func NewReminderConfig(enabled bool, times ReminderTimes) ReminderConfig {
	return ReminderConfig{
		enabled: enabled,
		times:   times,
	}
}

func ParseReminderConfig(enabled bool, rawTimes string) (ReminderConfig, error) {
	times, err := ParseReminderTimes(rawTimes)
	if err != nil {
		return ReminderConfig{}, err
	}

	return NewReminderConfig(enabled, times), nil
}

func (c ReminderConfig) Enabled() bool {
	return c.enabled
}

func (c ReminderConfig) Times() ReminderTimes {
	return c.times
}

// EffectiveTimes is empty when reminders are disabled.
func (c ReminderConfig) EffectiveTimes() ReminderTimes {
	if !c.enabled {
		return ReminderTimes{}
	}

	return c.times
}

func (c ReminderConfig) Status(now time.Time, dueTolerance time.Duration) ReminderStatus {
	return ComputeStatus(c.EffectiveTimes(), now, dueTolerance)
}
