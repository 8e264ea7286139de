package handler

import (
	"fmt"
	"time"
)

type MedicationRequest struct {
	Name            string `json:"name" binding:"required,max=100"`
	Dosage          string `json:"dosage" binding:"required,max=50"`
	Frequency       string `json:"frequency" binding:"required,max=100"`
	Notes           string `json:"notes"`
	ReminderEnabled bool   `json:"reminder_enabled"`
	ReminderTimes   string `json:"reminder_times"` // comma separated HH:MM, e.g. "08:00,20:00"
}

// ReminderQuery carries the optional evaluation instant and due tolerance.
type ReminderQuery struct {
	At        time.Time `form:"at" time_format:"2006-01-02T15:04:05Z07:00"`
	Tolerance string    `form:"tolerance"`
}

func (q ReminderQuery) ToleranceDuration() (time.Duration, error) {
	if q.Tolerance == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(q.Tolerance)
	if err != nil {
		return 0, fmt.Errorf("tolerance must be a duration such as 90s or 5m: %w", err)
	}

	return d, nil
}
