package repository

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-medication-helper/internal/domain"
)

type contactRepositoryImpl struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) domain.ContactRepository {
	return &contactRepositoryImpl{
		db: db,
	}
}

func (r *contactRepositoryImpl) Save(ctx context.Context, contact *domain.EmergencyContact) error {
	m := FromEmergencyContact(contact)

	result := r.db.WithContext(ctx).Create(m)
	if result.Error != nil {
		slog.Error("failed to save emergency contact to database",
			"contact_id", contact.ID().String(),
			"error", result.Error,
		)

		return result.Error
	}

	slog.Debug("emergency contact saved to database",
		"contact_id", contact.ID().String(),
	)

	return nil
}

func (r *contactRepositoryImpl) FindByID(ctx context.Context, id domain.ContactID) (*domain.EmergencyContact, error) {
	var m ContactModel

	result := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			slog.Debug("emergency contact not found",
				"contact_id", id.String(),
			)

			return nil, domain.ErrContactNotFound
		}

		slog.Error("failed to find emergency contact by ID",
			"contact_id", id.String(),
			"error", result.Error,
		)

		return nil, result.Error
	}

	return m.ToEntity()
}

func (r *contactRepositoryImpl) FindAll(ctx context.Context) ([]*domain.EmergencyContact, error) {
	var models []ContactModel

	result := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&models)
	if result.Error != nil {
		slog.Error("failed to list emergency contacts",
			"error", result.Error,
		)

		return nil, result.Error
	}

	contacts := make([]*domain.EmergencyContact, 0, len(models))
	for _, m := range models {
		c, err := m.ToEntity()
		if err != nil {
			slog.Error("failed to convert model to entity",
				"contact_id", m.ID,
				"error", err,
			)

			return nil, err
		}

		contacts = append(contacts, c)
	}

	return contacts, nil
}

func (r *contactRepositoryImpl) Update(ctx context.Context, contact *domain.EmergencyContact) error {
	m := FromEmergencyContact(contact)

	result := r.db.WithContext(ctx).
		Model(&ContactModel{}).
		Where("id = ?", m.ID).
		Select(contactColumns).
		Updates(m)
	if result.Error != nil {
		slog.Error("failed to update emergency contact in database",
			"contact_id", contact.ID().String(),
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrContactNotFound
	}

	slog.Debug("emergency contact updated in database",
		"contact_id", contact.ID().String(),
	)

	return nil
}

func (r *contactRepositoryImpl) Delete(ctx context.Context, id domain.ContactID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&ContactModel{})
	if result.Error != nil {
		slog.Error("failed to delete emergency contact from database",
			"contact_id", id.String(),
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrContactNotFound
	}

	slog.Debug("emergency contact deleted from database",
		"contact_id", id.String(),
	)

	return nil
}
