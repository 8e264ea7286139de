package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxMedicationNameLength = 100
	MaxDosageLength         = 50
	MaxFrequencyLength      = 100
)

type Medication struct {
	id        MedicationID
	name      string
	dosage    string
	frequency string
	notes     string
	reminder  ReminderConfig
	createdAt time.Time
	updatedAt time.Time
}

type MedicationDetails struct {
	Name      string
	Dosage    string
	Frequency string
	Notes     string
}

func (d MedicationDetails) validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrEmptyName
	}

	if strings.TrimSpace(d.Dosage) == "" {
		return ErrEmptyDosage
	}

	if strings.TrimSpace(d.Frequency) == "" {
		return ErrEmptyFrequency
	}

	if err := checkLength("name", d.Name, MaxMedicationNameLength); err != nil {
		return err
	}

	if err := checkLength("dosage", d.Dosage, MaxDosageLength); err != nil {
		return err
	}

	return checkLength("frequency", d.Frequency, MaxFrequencyLength)
}

func NewMedication(details MedicationDetails, reminder ReminderConfig) (*Medication, error) {
	if err := details.validate(); err != nil {
		return nil, err
	}

	now := time.Now()

	return &Medication{
		id:        NewMedicationID(),
		name:      details.Name,
		dosage:    details.Dosage,
		frequency: details.Frequency,
		notes:     details.Notes,
		reminder:  reminder,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstituteMedication(
	id MedicationID,
	details MedicationDetails,
	reminder ReminderConfig,
	createdAt time.Time,
	updatedAt time.Time,
) *Medication {
	return &Medication{
		id:        id,
		name:      details.Name,
		dosage:    details.Dosage,
		frequency: details.Frequency,
		notes:     details.Notes,
		reminder:  reminder,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (m *Medication) Update(details MedicationDetails, reminder ReminderConfig) error {
	if err := details.validate(); err != nil {
		return err
	}

	m.name = details.Name
	m.dosage = details.Dosage
	m.frequency = details.Frequency
	m.notes = details.Notes
	m.reminder = reminder
	m.updatedAt = time.Now()

	return nil
}

func (m *Medication) ReminderStatus(now time.Time, dueTolerance time.Duration) ReminderStatus {
	return m.reminder.Status(now, dueTolerance)
}

func (m *Medication) ID() MedicationID {
	return m.id
}

func (m *Medication) Name() string {
	return m.name
}

func (m *Medication) Dosage() string {
	return m.dosage
}

func (m *Medication) Frequency() string {
	return m.frequency
}

func (m *Medication) Notes() string {
	return m.notes
}

func (m *Medication) Reminder() ReminderConfig {
	return m.reminder
}

func (m *Medication) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Medication) UpdatedAt() time.Time {
	return m.updatedAt
}

func checkLength(field, value string, limit int) error {
	if utf8.RuneCountInString(value) > limit {
		return fmt.Errorf("%w: %s must be at most %d characters", ErrFieldTooLong, field, limit)
	}

	return nil
}
