package app

import (
	"context"
	"time"

	"github.com/KasumiMercury/primind-medication-helper/internal/domain"
)

type ProfileUseCase interface {
	// GetProfile stores and returns the default profile when none exists yet.
	GetProfile(ctx context.Context) (ProfileOutput, error)
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (ProfileOutput, error)
}

type UpdateProfileInput struct {
	FirstName         string
	LastName          string
	DateOfBirth       time.Time
	HeightCM          float64
	WeightKG          float64
	BloodType         string
	Allergies         string
	MedicalConditions string
}

type ProfileOutput struct {
	ID                string
	FirstName         string
	LastName          string
	DateOfBirth       time.Time
	Age               int
	HeightCM          float64
	WeightKG          float64
	BloodType         string
	Allergies         string
	MedicalConditions string
	UpdatedAt         time.Time
}

func FromProfile(p *domain.Profile, now time.Time) ProfileOutput {
	d := p.Details()

	return ProfileOutput{
		ID:                p.ID().String(),
		FirstName:         d.FirstName,
		LastName:          d.LastName,
		DateOfBirth:       d.DateOfBirth,
		Age:               p.Age(now),
		HeightCM:          d.HeightCM,
		WeightKG:          d.WeightKG,
		BloodType:         d.BloodType,
		Allergies:         d.Allergies,
		MedicalConditions: d.MedicalConditions,
		UpdatedAt:         p.UpdatedAt(),
	}
}
