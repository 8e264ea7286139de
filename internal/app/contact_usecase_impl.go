package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KasumiMercury/primind-medication-helper/internal/domain"
)

type contactUseCaseImpl struct {
	repo domain.ContactRepository
}

func NewContactUseCase(repo domain.ContactRepository) ContactUseCase {
	return &contactUseCaseImpl{
		repo: repo,
	}
}

func (uc *contactUseCaseImpl) CreateContact(ctx context.Context, input ContactInput) (ContactOutput, error) {
	contact, err := domain.NewEmergencyContact(input.details())
	if err != nil {
		return ContactOutput{}, NewValidationError(contactField(err), err.Error())
	}

	if err := uc.repo.Save(ctx, contact); err != nil {
		slog.ErrorContext(ctx, "failed to save emergency contact",
			"error", err,
			"contact_id", contact.ID().String(),
		)

		return ContactOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.DebugContext(ctx, "emergency contact created",
		"contact_id", contact.ID().String(),
	)

	return FromContact(contact), nil
}

func (uc *contactUseCaseImpl) GetContact(ctx context.Context, input GetContactInput) (ContactOutput, error) {
	contact, err := uc.findContact(ctx, input.ID)
	if err != nil {
		return ContactOutput{}, err
	}

	return FromContact(contact), nil
}

func (uc *contactUseCaseImpl) ListContacts(ctx context.Context) (ContactsOutput, error) {
	contacts, err := uc.repo.FindAll(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list emergency contacts",
			"error", err,
		)

		return ContactsOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return FromContacts(contacts), nil
}

func (uc *contactUseCaseImpl) UpdateContact(ctx context.Context, input UpdateContactInput) (ContactOutput, error) {
	contact, err := uc.findContact(ctx, input.ID)
	if err != nil {
		return ContactOutput{}, err
	}

	if err := contact.Update(input.details()); err != nil {
		return ContactOutput{}, NewValidationError(contactField(err), err.Error())
	}

	if err := uc.repo.Update(ctx, contact); err != nil {
		if errors.Is(err, domain.ErrContactNotFound) {
			return ContactOutput{}, fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.ErrorContext(ctx, "failed to update emergency contact",
			"error", err,
			"contact_id", input.ID,
		)

		return ContactOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.DebugContext(ctx, "emergency contact updated",
		"contact_id", input.ID,
	)

	return FromContact(contact), nil
}

func (uc *contactUseCaseImpl) DeleteContact(ctx context.Context, input DeleteContactInput) error {
	contactID, err := domain.ContactIDFromString(input.ID)
	if err != nil {
		return NewValidationError("id", err.Error())
	}

	if err := uc.repo.Delete(ctx, contactID); err != nil {
		if errors.Is(err, domain.ErrContactNotFound) {
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.ErrorContext(ctx, "failed to delete emergency contact",
			"error", err,
			"contact_id", input.ID,
		)

		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.DebugContext(ctx, "emergency contact deleted",
		"contact_id", input.ID,
	)

	return nil
}

func (uc *contactUseCaseImpl) findContact(ctx context.Context, id string) (*domain.EmergencyContact, error) {
	contactID, err := domain.ContactIDFromString(id)
	if err != nil {
		return nil, NewValidationError("id", err.Error())
	}

	contact, err := uc.repo.FindByID(ctx, contactID)
	if err != nil {
		if errors.Is(err, domain.ErrContactNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.ErrorContext(ctx, "failed to find emergency contact",
			"error", err,
			"contact_id", id,
		)

		return nil, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return contact, nil
}

func contactField(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyName):
		return "name"
	case errors.Is(err, domain.ErrEmptyRelationship):
		return "relationship"
	case errors.Is(err, domain.ErrEmptyPhone):
		return "phone_primary"
	case errors.Is(err, domain.ErrInvalidEmail):
		return "email"
	default:
		return "contact"
	}
}
