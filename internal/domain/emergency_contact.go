package domain

import (
	"net/mail"
	"strings"
	"time"
)

const (
	MaxContactNameLength  = 100
	MaxRelationshipLength = 50
	MaxPhoneLength        = 20
	MaxEmailLength        = 120
)

type ContactDetails struct {
	Name           string
	Relationship   string
	PhonePrimary   string
	PhoneSecondary string
	Email          string
	Address        string
	Notes          string
}

func (d ContactDetails) validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrEmptyName
	}

	if strings.TrimSpace(d.Relationship) == "" {
		return ErrEmptyRelationship
	}

	if strings.TrimSpace(d.PhonePrimary) == "" {
		return ErrEmptyPhone
	}

	checks := []struct {
		field string
		value string
		limit int
	}{
		{"name", d.Name, MaxContactNameLength},
		{"relationship", d.Relationship, MaxRelationshipLength},
		{"phone_primary", d.PhonePrimary, MaxPhoneLength},
		{"phone_secondary", d.PhoneSecondary, MaxPhoneLength},
		{"email", d.Email, MaxEmailLength},
	}
	for _, c := range checks {
		if err := checkLength(c.field, c.value, c.limit); err != nil {
			return err
		}
	}

	if d.Email != "" {
		if _, err := mail.ParseAddress(d.Email); err != nil {
			return ErrInvalidEmail
		}
	}

	return nil
}

type EmergencyContact struct {
	id        ContactID
	details   ContactDetails
	createdAt time.Time
	updatedAt time.Time
}

func NewEmergencyContact(details ContactDetails) (*EmergencyContact, error) {
	if err := details.validate(); err != nil {
		return nil, err
	}

	now := time.Now()

	return &EmergencyContact{
		id:        NewContactID(),
		details:   details,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstituteEmergencyContact(
	id ContactID,
	details ContactDetails,
	createdAt time.Time,
	updatedAt time.Time,
) *EmergencyContact {
	return &EmergencyContact{
		id:        id,
		details:   details,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *EmergencyContact) Update(details ContactDetails) error {
	if err := details.validate(); err != nil {
		return err
	}

	c.details = details
	c.updatedAt = time.Now()

	return nil
}

func (c *EmergencyContact) ID() ContactID {
	return c.id
}

func (c *EmergencyContact) Details() ContactDetails {
	return c.details
}

func (c *EmergencyContact) CreatedAt() time.Time {
	return c.createdAt
}

func (c *EmergencyContact) UpdatedAt() time.Time {
	return c.updatedAt
}
