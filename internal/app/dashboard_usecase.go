package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-medication-helper/internal/domain"
)

type DashboardUseCase interface {
	GetDashboard(ctx context.Context, input GetDashboardInput) (DashboardOutput, error)
}

// At defaults to the current time when zero.
type GetDashboardInput struct {
	At time.Time
}

type DashboardMedicationOutput struct {
	Medication MedicationOutput
	Reminder   ReminderStatusOutput
}

type DashboardOutput struct {
	Profile      ProfileOutput
	Medications  []DashboardMedicationOutput
	LatestVitals *VitalsOutput
	ServerTime   time.Time
}

type dashboardUseCaseImpl struct {
	profiles    ProfileUseCase
	medications domain.MedicationRepository
	vitals      domain.VitalsRepository
}

func NewDashboardUseCase(
	profiles ProfileUseCase,
	medications domain.MedicationRepository,
	vitals domain.VitalsRepository,
) DashboardUseCase {
	return &dashboardUseCaseImpl{
		profiles:    profiles,
		medications: medications,
		vitals:      vitals,
	}
}

func (uc *dashboardUseCaseImpl) GetDashboard(ctx context.Context, input GetDashboardInput) (DashboardOutput, error) {
	at := resolveInstant(input.At)

	profile, err := uc.profiles.GetProfile(ctx)
	if err != nil {
		return DashboardOutput{}, err
	}

	medications, err := uc.medications.FindAll(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list medications for dashboard",
			"error", err,
		)

		return DashboardOutput{}, mapMedicationLoadError(err)
	}

	items := make([]DashboardMedicationOutput, 0, len(medications))
	for _, m := range medications {
		items = append(items, DashboardMedicationOutput{
			Medication: FromMedication(m),
			Reminder:   FromReminderStatus(m.ID(), m.ReminderStatus(at, 0), at),
		})
	}

	out := DashboardOutput{
		Profile:     profile,
		Medications: items,
		ServerTime:  at,
	}

	latest, err := uc.vitals.FindLatest(ctx)

	switch {
	case err == nil:
		v := FromVitalSigns(latest)
		out.LatestVitals = &v
	case errors.Is(err, domain.ErrVitalsNotFound):
	default:
		slog.ErrorContext(ctx, "failed to load latest vital signs for dashboard",
			"error", err,
		)

		return DashboardOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return out, nil
}
