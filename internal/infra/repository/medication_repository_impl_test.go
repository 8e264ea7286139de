package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-medication-helper/internal/domain"
	"github.com/KasumiMercury/primind-medication-helper/internal/infra/repository"
	"github.com/KasumiMercury/primind-medication-helper/internal/testutil"
)

func setupMedicationRepository(t *testing.T) (domain.MedicationRepository, *testutil.TestDB) {
	t.Helper()

	testDB := testutil.SetupSQLiteDB(t)

	return repository.NewMedicationRepository(testDB.DB), testDB
}

func TestMedicationSaveAndFindByIDSuccess(t *testing.T) {
	repo, _ := setupMedicationRepository(t)
	ctx := context.Background()

	m := newTestMedication(t, "Lisinopril", true, "08:00,20:00")
	require.NoError(t, repo.Save(ctx, m))

	found, err := repo.FindByID(ctx, m.ID())

	require.NoError(t, err)
	assert.True(t, m.ID().Equals(found.ID()))
	assert.Equal(t, "Lisinopril", found.Name())
	assert.True(t, found.Reminder().Enabled())
	assert.Equal(t, []string{"08:00", "20:00"}, found.Reminder().Times().Strings())
	assert.WithinDuration(t, m.CreatedAt(), found.CreatedAt(), time.Millisecond)
}

func TestMedicationFindByIDError(t *testing.T) {
	repo, testDB := setupMedicationRepository(t)
	ctx := context.Background()

	corruptID := domain.NewMedicationID()
	require.NoError(t, testDB.DB.Create(&repository.MedicationModel{
		ID:              corruptID.String(),
		Name:            "Broken",
		Dosage:          "1",
		Frequency:       "daily",
		ReminderEnabled: true,
		ReminderTimes:   "8:00",
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}).Error)

	tests := []struct {
		name        string
		id          domain.MedicationID
		expectedErr error
	}{
		{
			name:        "missing medication",
			id:          domain.NewMedicationID(),
			expectedErr: domain.ErrMedicationNotFound,
		},
		{
			name:        "stored reminder times are corrupt",
			id:          corruptID,
			expectedErr: domain.ErrInvalidConfiguration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := repo.FindByID(ctx, tt.id)

			assert.Nil(t, found)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestMedicationFindAllOrderSuccess(t *testing.T) {
	repo, _ := setupMedicationRepository(t)
	ctx := context.Background()

	names := []string{"first", "second", "third"}
	for _, name := range names {
		require.NoError(t, repo.Save(ctx, newTestMedication(t, name, false, "")))
		time.Sleep(2 * time.Millisecond)
	}

	all, err := repo.FindAll(ctx)

	require.NoError(t, err)
	require.Len(t, all, 3)

	for i, m := range all {
		assert.Equal(t, names[i], m.Name())
	}
}

func TestFindReminderRecordsSuccess(t *testing.T) {
	repo, testDB := setupMedicationRepository(t)
	ctx := context.Background()

	enabled := newTestMedication(t, "enabled", true, "09:00")
	require.NoError(t, repo.Save(ctx, enabled))
	time.Sleep(2 * time.Millisecond)

	require.NoError(t, repo.Save(ctx, newTestMedication(t, "disabled", false, "10:00")))
	time.Sleep(2 * time.Millisecond)

	corruptID := domain.NewMedicationID()
	require.NoError(t, testDB.DB.Create(&repository.MedicationModel{
		ID:              corruptID.String(),
		Name:            "corrupt",
		Dosage:          "1",
		Frequency:       "daily",
		ReminderEnabled: true,
		ReminderTimes:   "25:61",
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}).Error)

	records, err := repo.FindReminderRecords(ctx)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.True(t, enabled.ID().Equals(records[0].MedicationID))
	assert.Equal(t, "09:00", records[0].ReminderTimes)
	assert.True(t, corruptID.Equals(records[1].MedicationID))
	assert.Equal(t, "25:61", records[1].ReminderTimes)
}

func TestMedicationUpdateSuccess(t *testing.T) {
	repo, _ := setupMedicationRepository(t)
	ctx := context.Background()

	m := newTestMedication(t, "Statin", true, "21:00")
	require.NoError(t, repo.Save(ctx, m))

	disabled, err := domain.ParseReminderConfig(false, "")
	require.NoError(t, err)

	require.NoError(t, m.Update(domain.MedicationDetails{
		Name:      "Statin",
		Dosage:    "20mg",
		Frequency: "nightly",
	}, disabled))
	require.NoError(t, repo.Update(ctx, m))

	found, err := repo.FindByID(ctx, m.ID())

	require.NoError(t, err)
	assert.Equal(t, "20mg", found.Dosage())
	assert.Empty(t, found.Notes())
	assert.False(t, found.Reminder().Enabled())
	assert.True(t, found.Reminder().Times().IsEmpty())
}

func TestMedicationUpdateNotFoundError(t *testing.T) {
	repo, _ := setupMedicationRepository(t)

	err := repo.Update(context.Background(), newTestMedication(t, "ghost", false, ""))

	assert.ErrorIs(t, err, domain.ErrMedicationNotFound)
}

func TestMedicationDeleteSuccess(t *testing.T) {
	repo, _ := setupMedicationRepository(t)
	ctx := context.Background()

	m := newTestMedication(t, "Temporary", false, "")
	require.NoError(t, repo.Save(ctx, m))

	require.NoError(t, repo.Delete(ctx, m.ID()))

	_, err := repo.FindByID(ctx, m.ID())
	assert.ErrorIs(t, err, domain.ErrMedicationNotFound)
}

func TestMedicationDeleteError(t *testing.T) {
	repo, _ := setupMedicationRepository(t)

	err := repo.Delete(context.Background(), domain.NewMedicationID())

	assert.ErrorIs(t, err, domain.ErrMedicationNotFound)
}
