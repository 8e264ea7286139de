package repository

import (
	"time"

	"github.com/KasumiMercury/primind-medication-helper/internal/domain"
)

type ContactModel struct {
	ID             string    `gorm:"column:id;size:36;primaryKey"`
	Name           string    `gorm:"column:name;size:100;not null"`
	Relationship   string    `gorm:"column:relationship;size:50;not null"`
	PhonePrimary   string    `gorm:"column:phone_primary;size:20;not null"`
	PhoneSecondary string    `gorm:"column:phone_secondary;size:20;not null;default:''"`
	Email          string    `gorm:"column:email;size:120;not null;default:''"`
	Address        string    `gorm:"column:address;not null;default:''"`
	Notes          string    `gorm:"column:notes;not null;default:''"`
	CreatedAt      time.Time `gorm:"column:created_at;not null;index:idx_emergency_contacts_created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;not null"`
}

func (ContactModel) TableName() string {
	return "emergency_contacts"
}

var contactColumns = []string{
	"name", "relationship", "phone_primary", "phone_secondary", "email", "address", "notes", "updated_at",
}

func (m *ContactModel) ToEntity() (*domain.EmergencyContact, error) {
	id, err := domain.ContactIDFromString(m.ID)
	if err != nil {
		return nil, err
	}

	details := domain.ContactDetails{
		Name:           m.Name,
		Relationship:   m.Relationship,
		PhonePrimary:   m.PhonePrimary,
		PhoneSecondary: m.PhoneSecondary,
		Email:          m.Email,
		Address:        m.Address,
		Notes:          m.Notes,
	}

	return domain.ReconstituteEmergencyContact(id, details, m.CreatedAt, m.UpdatedAt), nil
}

func FromEmergencyContact(e *domain.EmergencyContact) *ContactModel {
	d := e.Details()

	return &ContactModel{
		ID:             e.ID().String(),
		Name:           d.Name,
		Relationship:   d.Relationship,
		PhonePrimary:   d.PhonePrimary,
		PhoneSecondary: d.PhoneSecondary,
		Email:          d.Email,
		Address:        d.Address,
		Notes:          d.Notes,
		CreatedAt:      e.CreatedAt(),
		UpdatedAt:      e.UpdatedAt(),
	}
}
