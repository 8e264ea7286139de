package app_test

import (
	"testing"

	"github.com/KasumiMercury/primind-medication-helper/internal/app"
	"github.com/KasumiMercury/primind-medication-helper/internal/infra/repository"
	"github.com/KasumiMercury/primind-medication-helper/internal/testutil"
)

type useCases struct {
	db          *testutil.TestDB
	medications app.MedicationUseCase
	vitals      app.VitalsUseCase
	contacts    app.ContactUseCase
	profiles    app.ProfileUseCase
	dashboard   app.DashboardUseCase
}

func setupUseCaseTest(t *testing.T) useCases {
	t.Helper()

	testDB := testutil.SetupSQLiteDB(t)
	medRepo := repository.NewMedicationRepository(testDB.DB)
	vitalsRepo := repository.NewVitalsRepository(testDB.DB)
	profiles := app.NewProfileUseCase(repository.NewProfileRepository(testDB.DB))

	return useCases{
		db:          testDB,
		medications: app.NewMedicationUseCase(medRepo),
		vitals:      app.NewVitalsUseCase(vitalsRepo),
		contacts:    app.NewContactUseCase(repository.NewContactRepository(testDB.DB)),
		profiles:    profiles,
		dashboard:   app.NewDashboardUseCase(profiles, medRepo, vitalsRepo),
	}
}

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}
