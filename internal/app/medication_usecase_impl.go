package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-medication-helper/internal/domain"
)

type medicationUseCaseImpl struct {
	repo domain.MedicationRepository
}

func NewMedicationUseCase(repo domain.MedicationRepository) MedicationUseCase {
	return &medicationUseCaseImpl{
		repo: repo,
	}
}

func (uc *medicationUseCaseImpl) CreateMedication(ctx context.Context, input CreateMedicationInput) (MedicationOutput, error) {
	slog.DebugContext(ctx, "creating medication",
		"name", input.Name,
		"reminder_enabled", input.ReminderEnabled,
	)

	reminder, err := domain.ParseReminderConfig(input.ReminderEnabled, input.ReminderTimes)
	if err != nil {
		return MedicationOutput{}, NewValidationError("reminder_times", err.Error())
	}

	medication, err := domain.NewMedication(medicationDetails(input.Name, input.Dosage, input.Frequency, input.Notes), reminder)
	if err != nil {
		return MedicationOutput{}, NewValidationError(medicationField(err), err.Error())
	}

	if err := uc.repo.Save(ctx, medication); err != nil {
		slog.ErrorContext(ctx, "failed to save medication",
			"error", err,
			"medication_id", medication.ID().String(),
		)

		return MedicationOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.DebugContext(ctx, "medication created",
		"medication_id", medication.ID().String(),
	)

	return FromMedication(medication), nil
}

func (uc *medicationUseCaseImpl) GetMedication(ctx context.Context, input GetMedicationInput) (MedicationOutput, error) {
	medication, err := uc.findMedication(ctx, input.ID)
	if err != nil {
		return MedicationOutput{}, err
	}

	return FromMedication(medication), nil
}

func (uc *medicationUseCaseImpl) ListMedications(ctx context.Context) (MedicationsOutput, error) {
	medications, err := uc.repo.FindAll(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list medications",
			"error", err,
		)

		return MedicationsOutput{}, mapMedicationLoadError(err)
	}

	slog.DebugContext(ctx, "medications listed",
		"count", len(medications),
	)

	return FromMedications(medications), nil
}

func (uc *medicationUseCaseImpl) UpdateMedication(ctx context.Context, input UpdateMedicationInput) (MedicationOutput, error) {
	slog.DebugContext(ctx, "updating medication",
		"medication_id", input.ID,
	)

	reminder, err := domain.ParseReminderConfig(input.ReminderEnabled, input.ReminderTimes)
	if err != nil {
		return MedicationOutput{}, NewValidationError("reminder_times", err.Error())
	}

	medication, err := uc.findMedication(ctx, input.ID)
	if err != nil {
		return MedicationOutput{}, err
	}

	details := medicationDetails(input.Name, input.Dosage, input.Frequency, input.Notes)
	if err := medication.Update(details, reminder); err != nil {
		return MedicationOutput{}, NewValidationError(medicationField(err), err.Error())
	}

	if err := uc.repo.Update(ctx, medication); err != nil {
		if errors.Is(err, domain.ErrMedicationNotFound) {
			return MedicationOutput{}, fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.ErrorContext(ctx, "failed to update medication",
			"error", err,
			"medication_id", input.ID,
		)

		return MedicationOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.DebugContext(ctx, "medication updated",
		"medication_id", input.ID,
		"reminder_times", reminder.Times().String(),
	)

	return FromMedication(medication), nil
}

func (uc *medicationUseCaseImpl) DeleteMedication(ctx context.Context, input DeleteMedicationInput) error {
	slog.DebugContext(ctx, "deleting medication",
		"medication_id", input.ID,
	)

	id, err := domain.MedicationIDFromString(input.ID)
	if err != nil {
		return NewValidationError("id", err.Error())
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrMedicationNotFound) {
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.ErrorContext(ctx, "failed to delete medication",
			"error", err,
			"medication_id", input.ID,
		)

		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.DebugContext(ctx, "medication deleted",
		"medication_id", input.ID,
	)

	return nil
}

func (uc *medicationUseCaseImpl) GetReminderStatus(ctx context.Context, input GetReminderStatusInput) (ReminderStatusOutput, error) {
	if input.Tolerance < 0 {
		return ReminderStatusOutput{}, NewValidationError("tolerance", "must not be negative")
	}

	medication, err := uc.findMedication(ctx, input.ID)
	if err != nil {
		return ReminderStatusOutput{}, err
	}

	at := resolveInstant(input.At)
	status := medication.ReminderStatus(at, input.Tolerance)

	slog.DebugContext(ctx, "reminder status computed",
		"medication_id", input.ID,
		"is_due", status.IsDue(),
		"time_until", status.TimeUntil(),
	)

	return FromReminderStatus(medication.ID(), status, at), nil
}

func (uc *medicationUseCaseImpl) ListDueMedications(ctx context.Context, input ListDueMedicationsInput) (DueMedicationsOutput, error) {
	if input.Tolerance < 0 {
		return DueMedicationsOutput{}, NewValidationError("tolerance", "must not be negative")
	}

	at := resolveInstant(input.At)

	records, err := uc.repo.FindReminderRecords(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load reminder records",
			"error", err,
		)

		return DueMedicationsOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	type parsedRecord struct {
		record domain.ReminderRecord
		config domain.ReminderConfig
	}

	configs := make([]domain.MedicationReminder, 0, len(records))
	parsed := make(map[domain.MedicationID]parsedRecord, len(records))

	var skipped int32

	for _, rec := range records {
		cfg, err := domain.ParseReminderConfig(rec.ReminderEnabled, rec.ReminderTimes)
		if err != nil {
			slog.WarnContext(ctx, "skipping medication with invalid reminder times",
				"medication_id", rec.MedicationID.String(),
				"reminder_times", rec.ReminderTimes,
				"error", err,
			)

			skipped++

			continue
		}

		configs = append(configs, domain.MedicationReminder{MedicationID: rec.MedicationID, Config: cfg})
		parsed[rec.MedicationID] = parsedRecord{record: rec, config: cfg}
	}

	dueIDs := domain.DueReminders(configs, at, input.Tolerance)

	outputs := make([]DueMedicationOutput, 0, len(dueIDs))
	for _, id := range dueIDs {
		p := parsed[id]
		status := p.config.Status(at, input.Tolerance)

		outputs = append(outputs, DueMedicationOutput{
			MedicationID: id.String(),
			Name:         p.record.Name,
			Dosage:       p.record.Dosage,
			Notes:        p.record.Notes,
			NextTime:     status.NextTime().String(),
			TimeUntil:    status.TimeUntil(),
			DueAt:        status.NextAt(),
		})
	}

	slog.DebugContext(ctx, "due medications listed",
		"checked_at", at,
		"tolerance", input.Tolerance,
		"records", len(records),
		"due", len(outputs),
		"skipped", skipped,
	)

	return DueMedicationsOutput{
		Medications:  outputs,
		Count:        int32(len(outputs)), //nolint:gosec
		SkippedCount: skipped,
		CheckedAt:    at,
	}, nil
}

func (uc *medicationUseCaseImpl) findMedication(ctx context.Context, rawID string) (*domain.Medication, error) {
	id, err := domain.MedicationIDFromString(rawID)
	if err != nil {
		return nil, NewValidationError("id", err.Error())
	}

	medication, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrMedicationNotFound) {
			slog.ErrorContext(ctx, "failed to find medication",
				"error", err,
				"medication_id", rawID,
			)
		}

		return nil, mapMedicationLoadError(err)
	}

	return medication, nil
}

func mapMedicationLoadError(err error) error {
	switch {
	case errors.Is(err, domain.ErrMedicationNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, domain.ErrInvalidConfiguration):
		return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}
}

func medicationDetails(name, dosage, frequency, notes string) domain.MedicationDetails {
	return domain.MedicationDetails{
		Name:      name,
		Dosage:    dosage,
		Frequency: frequency,
		Notes:     notes,
	}
}

func medicationField(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyName):
		return "name"
	case errors.Is(err, domain.ErrEmptyDosage):
		return "dosage"
	case errors.Is(err, domain.ErrEmptyFrequency):
		return "frequency"
	default:
		return "medication"
	}
}

func resolveInstant(at time.Time) time.Time {
	if at.IsZero() {
		return time.Now()
	}

	return at
}
