package repository

import (
	"time"

	"github.com/KasumiMercury/primind-medication-helper/internal/domain"
)

type MedicationModel struct {
	ID              string    `gorm:"column:id;size:36;primaryKey"`
	Name            string    `gorm:"column:name;size:100;not null"`
	Dosage          string    `gorm:"column:dosage;size:50;not null"`
	Frequency       string    `gorm:"column:frequency;size:100;not null"`
	Notes           string    `gorm:"column:notes;not null;default:''"`
	ReminderEnabled bool      `gorm:"column:reminder_enabled;not null;default:false;index:idx_medications_reminder_enabled"`
	ReminderTimes   string    `gorm:"column:reminder_times;not null;default:''"` // canonical "HH:MM,HH:MM"
	CreatedAt       time.Time `gorm:"column:created_at;not null;index:idx_medications_created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;not null"`
}

func (MedicationModel) TableName() string {
	return "medications"
}

// medicationColumns are written on update so that false and empty values are persisted.
var medicationColumns = []string{
	"name", "dosage", "frequency", "notes", "reminder_enabled", "reminder_times", "updated_at",
}

func (m *MedicationModel) ToEntity() (*domain.Medication, error) {
	id, err := domain.MedicationIDFromString(m.ID)
	if err != nil {
		return nil, err
	}

	reminder, err := domain.ParseReminderConfig(m.ReminderEnabled, m.ReminderTimes)
	if err != nil {
		return nil, err
	}

	details := domain.MedicationDetails{
		Name:      m.Name,
		Dosage:    m.Dosage,
		Frequency: m.Frequency,
		Notes:     m.Notes,
	}

	return domain.ReconstituteMedication(id, details, reminder, m.CreatedAt, m.UpdatedAt), nil
}

func (m *MedicationModel) ToReminderRecord() (domain.ReminderRecord, error) {
	id, err := domain.MedicationIDFromString(m.ID)
	if err != nil {
		return domain.ReminderRecord{}, err
	}

	return domain.ReminderRecord{
		MedicationID:    id,
		Name:            m.Name,
		Dosage:          m.Dosage,
		Notes:           m.Notes,
		ReminderEnabled: m.ReminderEnabled,
		ReminderTimes:   m.ReminderTimes,
	}, nil
}

func FromMedication(e *domain.Medication) *MedicationModel {
	return &MedicationModel{
		ID:              e.ID().String(),
		Name:            e.Name(),
		Dosage:          e.Dosage(),
		Frequency:       e.Frequency(),
		Notes:           e.Notes(),
		ReminderEnabled: e.Reminder().Enabled(),
		ReminderTimes:   e.Reminder().Times().String(),
		CreatedAt:       e.CreatedAt(),
		UpdatedAt:       e.UpdatedAt(),
	}
}
