package repository

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-medication-helper/internal/domain"
)

type profileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) domain.ProfileRepository {
	return &profileRepositoryImpl{
		db: db,
	}
}

func (r *profileRepositoryImpl) Find(ctx context.Context) (*domain.Profile, error) {
	var m ProfileModel

	result := r.db.WithContext(ctx).Order("updated_at ASC").Order("id ASC").First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}

		slog.Error("failed to find profile",
			"error", result.Error,
		)

		return nil, result.Error
	}

	return m.ToEntity()
}

func (r *profileRepositoryImpl) Save(ctx context.Context, profile *domain.Profile) error {
	result := r.db.WithContext(ctx).Create(FromProfile(profile))
	if result.Error != nil {
		slog.Error("failed to save profile to database",
			"profile_id", profile.ID().String(),
			"error", result.Error,
		)

		return result.Error
	}

	slog.Debug("profile saved to database",
		"profile_id", profile.ID().String(),
	)

	return nil
}

func (r *profileRepositoryImpl) Update(ctx context.Context, profile *domain.Profile) error {
	m := FromProfile(profile)

	result := r.db.WithContext(ctx).
		Model(&ProfileModel{}).
		Where("id = ?", m.ID).
		Select(profileColumns).
		Updates(m)
	if result.Error != nil {
		slog.Error("failed to update profile in database",
			"profile_id", profile.ID().String(),
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrProfileNotFound
	}

	slog.Debug("profile updated in database",
		"profile_id", profile.ID().String(),
	)

	return nil
}
