package app

import (
	"context"
	"time"

	"github.com/KasumiMercury/primind-medication-helper/internal/domain"
)

type ContactUseCase interface {
	CreateContact(ctx context.Context, input ContactInput) (ContactOutput, error)
	GetContact(ctx context.Context, input GetContactInput) (ContactOutput, error)
	ListContacts(ctx context.Context) (ContactsOutput, error)
	UpdateContact(ctx context.Context, input UpdateContactInput) (ContactOutput, error)
	DeleteContact(ctx context.Context, input DeleteContactInput) error
}

type GetContactInput struct {
	ID string
}

type DeleteContactInput struct {
	ID string
}

type UpdateContactInput struct {
	ID string
	ContactInput
}

type ContactInput struct {
	Name           string
	Relationship   string
	PhonePrimary   string
	PhoneSecondary string
	Email          string
	Address        string
	Notes          string
}

func (in ContactInput) details() domain.ContactDetails {
	return domain.ContactDetails{
		Name:           in.Name,
		Relationship:   in.Relationship,
		PhonePrimary:   in.PhonePrimary,
		PhoneSecondary: in.PhoneSecondary,
		Email:          in.Email,
		Address:        in.Address,
		Notes:          in.Notes,
	}
}

type ContactOutput struct {
	ID             string
	Name           string
	Relationship   string
	PhonePrimary   string
	PhoneSecondary string
	Email          string
	Address        string
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type ContactsOutput struct {
	Contacts []ContactOutput
	Count    int32
}

func FromContact(c *domain.EmergencyContact) ContactOutput {
	d := c.Details()

	return ContactOutput{
		ID:             c.ID().String(),
		Name:           d.Name,
		Relationship:   d.Relationship,
		PhonePrimary:   d.PhonePrimary,
		PhoneSecondary: d.PhoneSecondary,
		Email:          d.Email,
		Address:        d.Address,
		Notes:          d.Notes,
		CreatedAt:      c.CreatedAt(),
		UpdatedAt:      c.UpdatedAt(),
	}
}

func FromContacts(contacts []*domain.EmergencyContact) ContactsOutput {
	outputs := make([]ContactOutput, 0, len(contacts))
	for _, c := range contacts {
		outputs = append(outputs, FromContact(c))
	}

	return ContactsOutput{
		Contacts: outputs,
		Count:    int32(len(outputs)), //nolint:gosec
	}
}
