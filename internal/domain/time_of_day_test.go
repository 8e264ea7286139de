package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KasumiMercury/primind-medication-helper/internal/domain"
)

func TestParseTimeOfDaySuccess(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		expectedHour   int
		expectedMinute int
	}{
		{name: "midnight", input: "00:00", expectedHour: 0, expectedMinute: 0},
		{name: "morning", input: "08:05", expectedHour: 8, expectedMinute: 5},
		{name: "last minute of day", input: "23:59", expectedHour: 23, expectedMinute: 59},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tod, err := domain.ParseTimeOfDay(tt.input)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedHour, tod.Hour())
			assert.Equal(t, tt.expectedMinute, tod.Minute())
			assert.Equal(t, tt.input, tod.String())
		})
	}
}

func TestParseTimeOfDayError(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "single digit hour", input: "8:00"},
		{name: "out of range", input: "25:61"},
		{name: "hour 24", input: "24:00"},
		{name: "minute 60", input: "12:60"},
		{name: "wrong separator", input: "08.00"},
		{name: "non-numeric", input: "ab:cd"},
		{name: "signed value", input: "+8:00"},
		{name: "with seconds", input: "08:00:00"},
		{name: "empty", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.ParseTimeOfDay(tt.input)

			assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
		})
	}
}

func TestNewTimeOfDayError(t *testing.T) {
	tests := []struct {
		name   string
		hour   int
		minute int
	}{
		{name: "negative hour", hour: -1, minute: 0},
		{name: "negative minute", hour: 0, minute: -1},
		{name: "hour too large", hour: 24, minute: 0},
		{name: "minute too large", hour: 0, minute: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewTimeOfDay(tt.hour, tt.minute)

			assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
		})
	}
}

func TestTimeOfDayCompare(t *testing.T) {
	early := domain.MustTimeOfDay(8, 0)
	late := domain.MustTimeOfDay(20, 30)

	assert.True(t, early.Before(late))
	assert.False(t, late.Before(early))
	assert.Equal(t, 0, early.Compare(domain.MustTimeOfDay(8, 0)))
	assert.Positive(t, late.Compare(early))
}

func TestTimeOfDayOn(t *testing.T) {
	day := time.Date(2025, time.June, 10, 17, 45, 12, 0, time.UTC)

	got := domain.MustTimeOfDay(7, 30).On(day, time.UTC)

	assert.Equal(t, time.Date(2025, time.June, 10, 7, 30, 0, 0, time.UTC), got)
}
