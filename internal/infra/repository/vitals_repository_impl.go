package repository

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-medication-helper/internal/domain"
)

type vitalsRepositoryImpl struct {
	db *gorm.DB
}

func NewVitalsRepository(db *gorm.DB) domain.VitalsRepository {
	return &vitalsRepositoryImpl{
		db: db,
	}
}

func (r *vitalsRepositoryImpl) Save(ctx context.Context, vitals *domain.VitalSigns) error {
	m := FromVitalSigns(vitals)

	result := r.db.WithContext(ctx).Create(m)
	if result.Error != nil {
		slog.Error("failed to save vital signs to database",
			"vitals_id", vitals.ID().String(),
			"error", result.Error,
		)

		return result.Error
	}

	slog.Debug("vital signs saved to database",
		"vitals_id", vitals.ID().String(),
	)

	return nil
}

func (r *vitalsRepositoryImpl) FindAll(ctx context.Context) ([]*domain.VitalSigns, error) {
	var models []VitalsModel

	result := r.db.WithContext(ctx).Order("recorded_at DESC").Order("id DESC").Find(&models)
	if result.Error != nil {
		slog.Error("failed to list vital signs",
			"error", result.Error,
		)

		return nil, result.Error
	}

	list := make([]*domain.VitalSigns, 0, len(models))
	for _, m := range models {
		v, err := m.ToEntity()
		if err != nil {
			slog.Error("failed to convert model to entity",
				"vitals_id", m.ID,
				"error", err,
			)

			return nil, err
		}

		list = append(list, v)
	}

	return list, nil
}

func (r *vitalsRepositoryImpl) FindLatest(ctx context.Context) (*domain.VitalSigns, error) {
	var m VitalsModel

	result := r.db.WithContext(ctx).Order("recorded_at DESC").Order("id DESC").First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVitalsNotFound
		}

		slog.Error("failed to find latest vital signs",
			"error", result.Error,
		)

		return nil, result.Error
	}

	return m.ToEntity()
}

func (r *vitalsRepositoryImpl) Delete(ctx context.Context, id domain.VitalsID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&VitalsModel{})
	if result.Error != nil {
		slog.Error("failed to delete vital signs from database",
			"vitals_id", id.String(),
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrVitalsNotFound
	}

	slog.Debug("vital signs deleted from database",
		"vitals_id", id.String(),
	)

	return nil
}
