package domain

import (
	"cmp"
	"fmt"
	"time"
)

// TimeOfDay is a recurring daily wall-clock time with minute precision.
type TimeOfDay struct {
	hour   int
	minute int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("%w: hour %d out of range", ErrInvalidConfiguration, hour)
	}

	if minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: minute %d out of range", ErrInvalidConfiguration, minute)
	}

	return TimeOfDay{hour: hour, minute: minute}, nil
}

func MustTimeOfDay(hour, minute int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute)
	if err != nil {
		panic(err)
	}

	return t
}

// ParseTimeOfDay accepts only the strict "HH:MM" form.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return TimeOfDay{}, fmt.Errorf("%w: %q is not in HH:MM form", ErrInvalidConfiguration, s)
	}

	hour, ok := parseTwoDigits(s[0:2])
	if !ok {
		return TimeOfDay{}, fmt.Errorf("%w: %q has a non-numeric hour", ErrInvalidConfiguration, s)
	}

	minute, ok := parseTwoDigits(s[3:5])
	if !ok {
		return TimeOfDay{}, fmt.Errorf("%w: %q has a non-numeric minute", ErrInvalidConfiguration, s)
	}

	return NewTimeOfDay(hour, minute)
}

func parseTwoDigits(s string) (int, bool) {
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}

	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}

func (t TimeOfDay) Hour() int {
	return t.hour
}

func (t TimeOfDay) Minute() int {
	return t.minute
}

// On returns the instant at this time of day on the calendar date of day, in loc.
func (t TimeOfDay) On(day time.Time, loc *time.Location) time.Time {
	y, m, d := day.Date()

	return time.Date(y, m, d, t.hour, t.minute, 0, 0, loc)
}

func (t TimeOfDay) Compare(other TimeOfDay) int {
	return cmp.Compare(t.minutesOfDay(), other.minutesOfDay())
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.Compare(other) < 0
}

func (t TimeOfDay) Equals(other TimeOfDay) bool {
	return t == other
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

func (t TimeOfDay) minutesOfDay() int {
	return t.hour*60 + t.minute
}
