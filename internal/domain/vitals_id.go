package domain

import (
	"github.com/google/uuid"
)

type VitalsID struct {
	value uuid.UUID
}

func NewVitalsID() VitalsID {
	return VitalsID{value: uuid.Must(uuid.NewV7())}
}

func VitalsIDFromString(s string) (VitalsID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return VitalsID{}, ErrInvalidVitalsID
	}

	if id.Version() != 7 {
		return VitalsID{}, ErrInvalidVitalsID
	}

	return VitalsID{value: id}, nil
}

func VitalsIDFromUUID(id uuid.UUID) (VitalsID, error) {
	if id.Version() != 7 {
		return VitalsID{}, ErrInvalidVitalsID
	}

	return VitalsID{value: id}, nil
}

func (v VitalsID) String() string {
	return v.value.String()
}

func (v VitalsID) UUID() uuid.UUID {
	return v.value
}

func (v VitalsID) IsZero() bool {
	return v.value == uuid.Nil
}

func (v VitalsID) Equals(other VitalsID) bool {
	return v.value == other.value
}
