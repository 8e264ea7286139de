package domain

import "context"

type ProfileRepository interface {
	// Find returns ErrProfileNotFound when no profile has been stored yet.
	Find(ctx context.Context) (*Profile, error)
	Save(ctx context.Context, profile *Profile) error
	Update(ctx context.Context, profile *Profile) error
}
