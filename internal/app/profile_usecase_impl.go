package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/KasumiMercury/primind-medication-helper/internal/domain"
)

type profileUseCaseImpl struct {
	repo domain.ProfileRepository
	// serializes the first-access creation of the default profile
	mu sync.Mutex
}

func NewProfileUseCase(repo domain.ProfileRepository) ProfileUseCase {
	return &profileUseCaseImpl{
		repo: repo,
	}
}

func (uc *profileUseCaseImpl) GetProfile(ctx context.Context) (ProfileOutput, error) {
	profile, err := uc.loadOrCreate(ctx)
	if err != nil {
		return ProfileOutput{}, err
	}

	return FromProfile(profile, time.Now()), nil
}

func (uc *profileUseCaseImpl) UpdateProfile(ctx context.Context, input UpdateProfileInput) (ProfileOutput, error) {
	profile, err := uc.loadOrCreate(ctx)
	if err != nil {
		return ProfileOutput{}, err
	}

	details := domain.ProfileDetails{
		FirstName:         input.FirstName,
		LastName:          input.LastName,
		DateOfBirth:       input.DateOfBirth,
		HeightCM:          input.HeightCM,
		WeightKG:          input.WeightKG,
		BloodType:         input.BloodType,
		Allergies:         input.Allergies,
		MedicalConditions: input.MedicalConditions,
	}

	if err := profile.Update(details); err != nil {
		return ProfileOutput{}, NewValidationError(profileField(err), err.Error())
	}

	if err := uc.repo.Update(ctx, profile); err != nil {
		slog.ErrorContext(ctx, "failed to update profile",
			"error", err,
			"profile_id", profile.ID().String(),
		)

		return ProfileOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.DebugContext(ctx, "profile updated",
		"profile_id", profile.ID().String(),
	)

	return FromProfile(profile, time.Now()), nil
}

func (uc *profileUseCaseImpl) loadOrCreate(ctx context.Context) (*domain.Profile, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	profile, err := uc.repo.Find(ctx)
	if err == nil {
		return profile, nil
	}

	if !errors.Is(err, domain.ErrProfileNotFound) {
		slog.ErrorContext(ctx, "failed to load profile",
			"error", err,
		)

		return nil, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	profile = domain.NewDefaultProfile(time.Now())
	if err := uc.repo.Save(ctx, profile); err != nil {
		slog.ErrorContext(ctx, "failed to create default profile",
			"error", err,
		)

		return nil, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.InfoContext(ctx, "default profile created",
		"profile_id", profile.ID().String(),
	)

	return profile, nil
}

func profileField(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidBloodType):
		return "blood_type"
	case errors.Is(err, domain.ErrFutureDateOfBirth):
		return "date_of_birth"
	case errors.Is(err, domain.ErrNegativeMeasure):
		return "measurements"
	default:
		return "profile"
	}
}
