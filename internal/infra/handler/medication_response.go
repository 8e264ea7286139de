package handler

import (
	"time"

	"github.com/KasumiMercury/primind-medication-helper/internal/app"
)

type MedicationResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Dosage          string    `json:"dosage"`
	Frequency       string    `json:"frequency"`
	Notes           string    `json:"notes"`
	ReminderEnabled bool      `json:"reminder_enabled"`
	ReminderTimes   []string  `json:"reminder_times"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type MedicationsResponse struct {
	Medications []MedicationResponse `json:"medications"`
	Count       int32                `json:"count"`
}

type ReminderStatusResponse struct {
	MedicationID     string     `json:"medication_id"`
	HasNext          bool       `json:"has_next"`
	IsDue            bool       `json:"is_due"`
	NextTime         string     `json:"next_time,omitempty"`
	TimeUntilSeconds int64      `json:"time_until_seconds"`
	NextAt           *time.Time `json:"next_at,omitempty"`
	CheckedAt        time.Time  `json:"checked_at"`
}

type DueMedicationResponse struct {
	MedicationID     string    `json:"medication_id"`
	Name             string    `json:"name"`
	Dosage           string    `json:"dosage"`
	Notes            string    `json:"notes"`
	NextTime         string    `json:"next_time"`
	TimeUntilSeconds int64     `json:"time_until_seconds"`
	DueAt            time.Time `json:"due_at"`
}

type DueMedicationsResponse struct {
	Medications []DueMedicationResponse `json:"medications"`
	Count       int32                   `json:"count"`
	Skipped     int32                   `json:"skipped"`
	CheckedAt   time.Time               `json:"checked_at"`
}

func FromMedicationOutput(output app.MedicationOutput) MedicationResponse {
	return MedicationResponse{
		ID:              output.ID,
		Name:            output.Name,
		Dosage:          output.Dosage,
		Frequency:       output.Frequency,
		Notes:           output.Notes,
		ReminderEnabled: output.ReminderEnabled,
		ReminderTimes:   output.ReminderTimes,
		CreatedAt:       output.CreatedAt,
		UpdatedAt:       output.UpdatedAt,
	}
}

func FromMedicationsOutput(output app.MedicationsOutput) MedicationsResponse {
	medications := make([]MedicationResponse, 0, len(output.Medications))
	for _, m := range output.Medications {
		medications = append(medications, FromMedicationOutput(m))
	}

	return MedicationsResponse{
		Medications: medications,
		Count:       output.Count,
	}
}

func FromReminderStatusOutput(output app.ReminderStatusOutput) ReminderStatusResponse {
	resp := ReminderStatusResponse{
		MedicationID:     output.MedicationID,
		HasNext:          output.HasNext,
		IsDue:            output.IsDue,
		NextTime:         output.NextTime,
		TimeUntilSeconds: int64(output.TimeUntil / time.Second),
		CheckedAt:        output.CheckedAt,
	}

	if output.HasNext {
		nextAt := output.NextAt
		resp.NextAt = &nextAt
	}

	return resp
}

func FromDueMedicationsOutput(output app.DueMedicationsOutput) DueMedicationsResponse {
	medications := make([]DueMedicationResponse, 0, len(output.Medications))
	for _, m := range output.Medications {
		medications = append(medications, DueMedicationResponse{
			MedicationID:     m.MedicationID,
			Name:             m.Name,
			Dosage:           m.Dosage,
			Notes:            m.Notes,
			NextTime:         m.NextTime,
			TimeUntilSeconds: int64(m.TimeUntil / time.Second),
			DueAt:            m.DueAt,
		})
	}

	return DueMedicationsResponse{
		Medications: medications,
		Count:       output.Count,
		Skipped:     output.SkippedCount,
		CheckedAt:   output.CheckedAt,
	}
}
