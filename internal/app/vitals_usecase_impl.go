package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KasumiMercury/primind-medication-helper/internal/domain"
)

type vitalsUseCaseImpl struct {
	repo domain.VitalsRepository
}

func NewVitalsUseCase(repo domain.VitalsRepository) VitalsUseCase {
	return &vitalsUseCaseImpl{
		repo: repo,
	}
}

func (uc *vitalsUseCaseImpl) RecordVitals(ctx context.Context, input RecordVitalsInput) (VitalsOutput, error) {
	slog.DebugContext(ctx, "recording vital signs",
		"recorded_at", input.RecordedAt,
	)

	readings := domain.Readings{
		SystolicBP:       input.SystolicBP,
		DiastolicBP:      input.DiastolicBP,
		HeartRate:        input.HeartRate,
		RespiratoryRate:  input.RespiratoryRate,
		OxygenSaturation: input.OxygenSaturation,
		Temperature:      input.Temperature,
		BloodSugar:       input.BloodSugar,
	}

	vitals, err := domain.NewVitalSigns(input.RecordedAt, readings, input.Notes)
	if err != nil {
		field := "readings"
		if errors.Is(err, domain.ErrMissingRecordedAt) {
			field = "recorded_at"
		}

		return VitalsOutput{}, NewValidationError(field, err.Error())
	}

	if err := uc.repo.Save(ctx, vitals); err != nil {
		slog.ErrorContext(ctx, "failed to save vital signs",
			"error", err,
			"vitals_id", vitals.ID().String(),
		)

		return VitalsOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.DebugContext(ctx, "vital signs recorded",
		"vitals_id", vitals.ID().String(),
	)

	return FromVitalSigns(vitals), nil
}

func (uc *vitalsUseCaseImpl) ListVitals(ctx context.Context) (VitalsListOutput, error) {
	list, err := uc.repo.FindAll(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list vital signs",
			"error", err,
		)

		return VitalsListOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return FromVitalSignsList(list), nil
}

func (uc *vitalsUseCaseImpl) GetLatestVitals(ctx context.Context) (VitalsOutput, error) {
	vitals, err := uc.repo.FindLatest(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrVitalsNotFound) {
			return VitalsOutput{}, fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.ErrorContext(ctx, "failed to get latest vital signs",
			"error", err,
		)

		return VitalsOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return FromVitalSigns(vitals), nil
}

func (uc *vitalsUseCaseImpl) DeleteVitals(ctx context.Context, input DeleteVitalsInput) error {
	id, err := domain.VitalsIDFromString(input.ID)
	if err != nil {
		return NewValidationError("id", err.Error())
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrVitalsNotFound) {
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.ErrorContext(ctx, "failed to delete vital signs",
			"error", err,
			"vitals_id", input.ID,
		)

		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.DebugContext(ctx, "vital signs deleted",
		"vitals_id", input.ID,
	)

	return nil
}
