package domain

import "context"

type ContactRepository interface {
	Save(ctx context.Context, contact *EmergencyContact) error
	FindByID(ctx context.Context, id ContactID) (*EmergencyContact, error)
	FindAll(ctx context.Context) ([]*EmergencyContact, error)
	Update(ctx context.Context, contact *EmergencyContact) error
	Delete(ctx context.Context, id ContactID) error
}
