package repository

import (
	"time"

	"github.com/KasumiMercury/primind-medication-helper/internal/domain"
)

type ProfileModel struct {
	ID                string    `gorm:"column:id;size:36;primaryKey"`
	FirstName         string    `gorm:"column:first_name;size:100;not null"`
	LastName          string    `gorm:"column:last_name;size:100;not null;default:''"`
	DateOfBirth       time.Time `gorm:"column:date_of_birth;not null"`
	HeightCM          float64   `gorm:"column:height_cm;not null;default:0"`
	WeightKG          float64   `gorm:"column:weight_kg;not null;default:0"`
	BloodType         string    `gorm:"column:blood_type;size:5;not null;default:''"`
	Allergies         string    `gorm:"column:allergies;not null;default:''"`
	MedicalConditions string    `gorm:"column:medical_conditions;not null;default:''"`
	UpdatedAt         time.Time `gorm:"column:updated_at;not null"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}

var profileColumns = []string{
	"first_name", "last_name", "date_of_birth", "height_cm", "weight_kg",
	"blood_type", "allergies", "medical_conditions", "updated_at",
}

func (m *ProfileModel) ToEntity() (*domain.Profile, error) {
	id, err := domain.ProfileIDFromString(m.ID)
	if err != nil {
		return nil, err
	}

	details := domain.ProfileDetails{
		FirstName:         m.FirstName,
		LastName:          m.LastName,
		DateOfBirth:       m.DateOfBirth,
		HeightCM:          m.HeightCM,
		WeightKG:          m.WeightKG,
		BloodType:         m.BloodType,
		Allergies:         m.Allergies,
		MedicalConditions: m.MedicalConditions,
	}

	return domain.ReconstituteProfile(id, details, m.UpdatedAt), nil
}

func FromProfile(e *domain.Profile) *ProfileModel {
	d := e.Details()

	return &ProfileModel{
		ID:                e.ID().String(),
		FirstName:         d.FirstName,
		LastName:          d.LastName,
		DateOfBirth:       d.DateOfBirth,
		HeightCM:          d.HeightCM,
		WeightKG:          d.WeightKG,
		BloodType:         d.BloodType,
		Allergies:         d.Allergies,
		MedicalConditions: d.MedicalConditions,
		UpdatedAt:         e.UpdatedAt(),
	}
}
