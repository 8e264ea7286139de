package app

import "time"

type CreateMedicationInput struct {
	Name            string
	Dosage          string
	Frequency       string
	Notes           string
	ReminderEnabled bool
	ReminderTimes   string
}

type UpdateMedicationInput struct {
	ID              string
	Name            string
	Dosage          string
	Frequency       string
	Notes           string
	ReminderEnabled bool
	ReminderTimes   string
}

type GetMedicationInput struct {
	ID string
}

type DeleteMedicationInput struct {
	ID string
}

// At defaults to the current time when zero.
type GetReminderStatusInput struct {
	ID        string
	At        time.Time
	Tolerance time.Duration
}

// At defaults to the current time when zero.
type ListDueMedicationsInput struct {
	At        time.Time
	Tolerance time.Duration
}
