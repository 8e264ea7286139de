package domain

import (
	"github.com/google/uuid"
)

type ProfileID struct {
	value uuid.UUID
}

func NewProfileID() ProfileID {
	return ProfileID{value: uuid.Must(uuid.NewV7())}
}

func ProfileIDFromString(s string) (ProfileID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ProfileID{}, ErrInvalidProfileID
	}

	if id.Version() != 7 {
		return ProfileID{}, ErrInvalidProfileID
	}

	return ProfileID{value: id}, nil
}

func ProfileIDFromUUID(id uuid.UUID) (ProfileID, error) {
	if id.Version() != 7 {
		return ProfileID{}, ErrInvalidProfileID
	}

	return ProfileID{value: id}, nil
}

func (p ProfileID) String() string {
	return p.value.String()
}

func (p ProfileID) UUID() uuid.UUID {
	return p.value
}

func (p ProfileID) IsZero() bool {
	return p.value == uuid.Nil
}

func (p ProfileID) Equals(other ProfileID) bool {
	return p.value == other.value
}
