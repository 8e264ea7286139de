package domain

import "context"

//go:generate mockgen -source=medication_repository.go -destination=medication_repository_mock.go -package=domain

// ReminderRecord is the raw reminder configuration of a medication as stored.
// ReminderTimes is unparsed so that one malformed record cannot hide the others.
type ReminderRecord struct {
	MedicationID    MedicationID
	Name            string
	Dosage          string
	Notes           string
	ReminderEnabled bool
	ReminderTimes   string
}

type MedicationRepository interface {
	Save(ctx context.Context, medication *Medication) error
	FindByID(ctx context.Context, id MedicationID) (*Medication, error)
	FindAll(ctx context.Context) ([]*Medication, error)
	// FindReminderRecords returns records with reminders enabled, oldest medication first.
	FindReminderRecords(ctx context.Context) ([]ReminderRecord, error)
	Update(ctx context.Context, medication *Medication) error
	Delete(ctx context.Context, id MedicationID) error
}
