package app

import (
	"time"

	"github.com/KasumiMercury/primind-medication-helper/internal/domain"
)

type MedicationOutput struct {
	ID              string
	Name            string
	Dosage          string
	Frequency       string
	Notes           string
	ReminderEnabled bool
	ReminderTimes   []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type MedicationsOutput struct {
	Medications []MedicationOutput
	Count       int32
}

type ReminderStatusOutput struct {
	MedicationID string
	HasNext      bool
	IsDue        bool
	NextTime     string
	TimeUntil    time.Duration
	NextAt       time.Time
	CheckedAt    time.Time
}

type DueMedicationOutput struct {
	MedicationID string
	Name         string
	Dosage       string
	Notes        string
	NextTime     string
	TimeUntil    time.Duration
	DueAt        time.Time
}

type DueMedicationsOutput struct {
	Medications  []DueMedicationOutput
	Count        int32
	SkippedCount int32
	CheckedAt    time.Time
}

func FromMedication(m *domain.Medication) MedicationOutput {
	return MedicationOutput{
		ID:              m.ID().String(),
		Name:            m.Name(),
		Dosage:          m.Dosage(),
		Frequency:       m.Frequency(),
		Notes:           m.Notes(),
		ReminderEnabled: m.Reminder().Enabled(),
		ReminderTimes:   m.Reminder().Times().Strings(),
		CreatedAt:       m.CreatedAt(),
		UpdatedAt:       m.UpdatedAt(),
	}
}

func FromMedications(medications []*domain.Medication) MedicationsOutput {
	outputs := make([]MedicationOutput, 0, len(medications))
	for _, m := range medications {
		outputs = append(outputs, FromMedication(m))
	}

	return MedicationsOutput{
		Medications: outputs,
		Count:       int32(len(outputs)), //nolint:gosec
	}
}

func FromReminderStatus(id domain.MedicationID, status domain.ReminderStatus, checkedAt time.Time) ReminderStatusOutput {
	out := ReminderStatusOutput{
		MedicationID: id.String(),
		HasNext:      status.HasNext(),
		IsDue:        status.IsDue(),
		CheckedAt:    checkedAt,
	}

	if status.HasNext() {
		out.NextTime = status.NextTime().String()
		out.TimeUntil = status.TimeUntil()
		out.NextAt = status.NextAt()
	}

	return out
}
