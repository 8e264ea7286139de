package domain

import (
	"github.com/google/uuid"
)

type ContactID struct {
	value uuid.UUID
}

func NewContactID() ContactID {
	return ContactID{value: uuid.Must(uuid.NewV7())}
}

func ContactIDFromString(s string) (ContactID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ContactID{}, ErrInvalidContactID
	}

	if id.Version() != 7 {
		return ContactID{}, ErrInvalidContactID
	}

	return ContactID{value: id}, nil
}

func ContactIDFromUUID(id uuid.UUID) (ContactID, error) {
	if id.Version() != 7 {
		return ContactID{}, ErrInvalidContactID
	}

	return ContactID{value: id}, nil
}

func (c ContactID) String() string {
	return c.value.String()
}

func (c ContactID) UUID() uuid.UUID {
	return c.value
}

func (c ContactID) IsZero() bool {
	return c.value == uuid.Nil
}

func (c ContactID) Equals(other ContactID) bool {
	return c.value == other.value
}
