package repository

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-medication-helper/internal/domain"
)

type medicationRepositoryImpl struct {
	db *gorm.DB
}

func NewMedicationRepository(db *gorm.DB) domain.MedicationRepository {
	return &medicationRepositoryImpl{
		db: db,
	}
}

func (r *medicationRepositoryImpl) Save(ctx context.Context, medication *domain.Medication) error {
	slog.Debug("saving medication to database",
		"medication_id", medication.ID().String(),
	)

	m := FromMedication(medication)

	result := r.db.WithContext(ctx).Create(m)
	if result.Error != nil {
		slog.Error("failed to save medication to database",
			"medication_id", medication.ID().String(),
			"error", result.Error,
		)

		return result.Error
	}

	slog.Debug("medication saved to database",
		"medication_id", medication.ID().String(),
	)

	return nil
}

func (r *medicationRepositoryImpl) FindByID(ctx context.Context, id domain.MedicationID) (*domain.Medication, error) {
	slog.Debug("finding medication by ID",
		"medication_id", id.String(),
	)

	var m MedicationModel

	result := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			slog.Debug("medication not found",
				"medication_id", id.String(),
			)

			return nil, domain.ErrMedicationNotFound
		}

		slog.Error("failed to find medication by ID",
			"medication_id", id.String(),
			"error", result.Error,
		)

		return nil, result.Error
	}

	return m.ToEntity()
}

func (r *medicationRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Medication, error) {
	var models []MedicationModel

	result := r.db.WithContext(ctx).Order("created_at ASC").Order("id ASC").Find(&models)
	if result.Error != nil {
		slog.Error("failed to list medications",
			"error", result.Error,
		)

		return nil, result.Error
	}

	medications := make([]*domain.Medication, 0, len(models))
	for _, m := range models {
		medication, err := m.ToEntity()
		if err != nil {
			slog.Error("failed to convert model to entity",
				"medication_id", m.ID,
				"error", err,
			)

			return nil, err
		}

		medications = append(medications, medication)
	}

	slog.Debug("medications found",
		"count", len(medications),
	)

	return medications, nil
}

func (r *medicationRepositoryImpl) FindReminderRecords(ctx context.Context) ([]domain.ReminderRecord, error) {
	var models []MedicationModel

	result := r.db.WithContext(ctx).
		Where("reminder_enabled = ?", true).
		Order("created_at ASC").
		Order("id ASC").
		Find(&models)
	if result.Error != nil {
		slog.Error("failed to find reminder records",
			"error", result.Error,
		)

		return nil, result.Error
	}

	records := make([]domain.ReminderRecord, 0, len(models))
	for _, m := range models {
		rec, err := m.ToReminderRecord()
		if err != nil {
			slog.Error("failed to convert model to reminder record",
				"medication_id", m.ID,
				"error", err,
			)

			return nil, err
		}

		records = append(records, rec)
	}

	slog.Debug("reminder records found",
		"count", len(records),
	)

	return records, nil
}

func (r *medicationRepositoryImpl) Update(ctx context.Context, medication *domain.Medication) error {
	slog.Debug("updating medication in database",
		"medication_id", medication.ID().String(),
	)

	m := FromMedication(medication)

	result := r.db.WithContext(ctx).
		Model(&MedicationModel{}).
		Where("id = ?", m.ID).
		Select(medicationColumns).
		Updates(m)
	if result.Error != nil {
		slog.Error("failed to update medication in database",
			"medication_id", medication.ID().String(),
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		slog.Debug("medication not found for update",
			"medication_id", medication.ID().String(),
		)

		return domain.ErrMedicationNotFound
	}

	slog.Debug("medication updated in database",
		"medication_id", medication.ID().String(),
	)

	return nil
}

func (r *medicationRepositoryImpl) Delete(ctx context.Context, id domain.MedicationID) error {
	slog.Debug("deleting medication from database",
		"medication_id", id.String(),
	)

	result := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&MedicationModel{})
	if result.Error != nil {
		slog.Error("failed to delete medication from database",
			"medication_id", id.String(),
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		slog.Debug("medication not found for deletion",
			"medication_id", id.String(),
		)

		return domain.ErrMedicationNotFound
	}

	slog.Debug("medication deleted from database",
		"medication_id", id.String(),
	)

	return nil
}
