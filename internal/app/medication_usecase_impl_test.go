package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-medication-helper/internal/app"
	"github.com/KasumiMercury/primind-medication-helper/internal/domain"
	"github.com/KasumiMercury/primind-medication-helper/internal/infra/repository"
)

func validCreateInput() app.CreateMedicationInput {
	return app.CreateMedicationInput{
		Name:            "Metformin",
		Dosage:          "500mg",
		Frequency:       "twice daily",
		Notes:           "with meals",
		ReminderEnabled: true,
		ReminderTimes:   "20:00, 08:00",
	}
}

func insertCorruptMedication(t *testing.T, uc useCases, name, times string) domain.MedicationID {
	t.Helper()

	id := domain.NewMedicationID()
	now := time.Now()

	require.NoError(t, uc.db.DB.Create(&repository.MedicationModel{
		ID:              id.String(),
		Name:            name,
		Dosage:          "1 tablet",
		Frequency:       "daily",
		ReminderEnabled: true,
		ReminderTimes:   times,
		CreatedAt:       now,
		UpdatedAt:       now,
	}).Error)

	return id
}

func TestCreateMedicationSuccess(t *testing.T) {
	tests := []struct {
		name          string
		input         app.CreateMedicationInput
		expectedTimes []string
	}{
		{
			name:          "times are sorted",
			input:         validCreateInput(),
			expectedTimes: []string{"08:00", "20:00"},
		},
		{
			name: "duplicates collapse",
			input: app.CreateMedicationInput{
				Name: "Aspirin", Dosage: "81mg", Frequency: "daily",
				ReminderEnabled: true, ReminderTimes: "09:00,09:00",
			},
			expectedTimes: []string{"09:00"},
		},
		{
			name: "no reminder times",
			input: app.CreateMedicationInput{
				Name: "Ibuprofen", Dosage: "200mg", Frequency: "as needed",
			},
			expectedTimes: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := setupUseCaseTest(t)

			output, err := uc.medications.CreateMedication(context.Background(), tt.input)

			require.NoError(t, err)
			assert.NotEmpty(t, output.ID)
			assert.Equal(t, tt.input.Name, output.Name)
			assert.Equal(t, tt.input.ReminderEnabled, output.ReminderEnabled)
			assert.Equal(t, tt.expectedTimes, output.ReminderTimes)
		})
	}
}

func TestCreateMedicationError(t *testing.T) {
	tests := []struct {
		name          string
		modify        func(in *app.CreateMedicationInput)
		expectedField string
	}{
		{
			name:          "empty name",
			modify:        func(in *app.CreateMedicationInput) { in.Name = "  " },
			expectedField: "name",
		},
		{
			name:          "empty dosage",
			modify:        func(in *app.CreateMedicationInput) { in.Dosage = "" },
			expectedField: "dosage",
		},
		{
			name:          "empty frequency",
			modify:        func(in *app.CreateMedicationInput) { in.Frequency = "" },
			expectedField: "frequency",
		},
		{
			name:          "name too long",
			modify:        func(in *app.CreateMedicationInput) { in.Name = strings.Repeat("a", 101) },
			expectedField: "medication",
		},
		{
			name:          "single digit hour",
			modify:        func(in *app.CreateMedicationInput) { in.ReminderTimes = "8:00" },
			expectedField: "reminder_times",
		},
		{
			name:          "out of range time",
			modify:        func(in *app.CreateMedicationInput) { in.ReminderTimes = "25:61" },
			expectedField: "reminder_times",
		},
		{
			name:          "empty token",
			modify:        func(in *app.CreateMedicationInput) { in.ReminderTimes = "08:00,,20:00" },
			expectedField: "reminder_times",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := setupUseCaseTest(t)

			input := validCreateInput()
			tt.modify(&input)

			_, err := uc.medications.CreateMedication(context.Background(), input)

			var validationErr *app.ValidationError

			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.expectedField, validationErr.Field)
		})
	}
}

func TestGetMedicationError(t *testing.T) {
	uc := setupUseCaseTest(t)
	corruptID := insertCorruptMedication(t, uc, "Broken", "7:5")

	tests := []struct {
		name        string
		id          string
		expectedErr error
	}{
		{name: "malformed id", id: "abc", expectedErr: nil},
		{name: "missing medication", id: domain.NewMedicationID().String(), expectedErr: app.ErrNotFound},
		{name: "corrupt stored times", id: corruptID.String(), expectedErr: app.ErrInvalidConfiguration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.medications.GetMedication(context.Background(), app.GetMedicationInput{ID: tt.id})

			require.Error(t, err)

			if tt.expectedErr == nil {
				assert.True(t, app.IsValidationError(err))

				return
			}

			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestListMedicationsSuccess(t *testing.T) {
	uc := setupUseCaseTest(t)
	ctx := context.Background()

	for _, name := range []string{"A", "B"} {
		input := validCreateInput()
		input.Name = name

		_, err := uc.medications.CreateMedication(ctx, input)
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	output, err := uc.medications.ListMedications(ctx)

	require.NoError(t, err)
	assert.Equal(t, int32(2), output.Count)
	assert.Equal(t, "A", output.Medications[0].Name)
	assert.Equal(t, "B", output.Medications[1].Name)
}

func TestUpdateMedicationSuccess(t *testing.T) {
	uc := setupUseCaseTest(t)
	ctx := context.Background()

	created, err := uc.medications.CreateMedication(ctx, validCreateInput())
	require.NoError(t, err)

	updated, err := uc.medications.UpdateMedication(ctx, app.UpdateMedicationInput{
		ID:              created.ID,
		Name:            "Metformin XR",
		Dosage:          "750mg",
		Frequency:       "daily",
		ReminderEnabled: false,
		ReminderTimes:   "",
	})

	require.NoError(t, err)
	assert.Equal(t, "Metformin XR", updated.Name)
	assert.False(t, updated.ReminderEnabled)
	assert.Empty(t, updated.ReminderTimes)

	reloaded, err := uc.medications.GetMedication(ctx, app.GetMedicationInput{ID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, "750mg", reloaded.Dosage)
	assert.Empty(t, reloaded.Notes)
}

func TestUpdateMedicationError(t *testing.T) {
	uc := setupUseCaseTest(t)
	ctx := context.Background()

	created, err := uc.medications.CreateMedication(ctx, validCreateInput())
	require.NoError(t, err)

	tests := []struct {
		name   string
		input  app.UpdateMedicationInput
		assert func(t *testing.T, err error)
	}{
		{
			name: "invalid times",
			input: app.UpdateMedicationInput{
				ID: created.ID, Name: "x", Dosage: "y", Frequency: "z", ReminderTimes: "nope",
			},
			assert: func(t *testing.T, err error) {
				assert.True(t, app.IsValidationError(err))
			},
		},
		{
			name: "missing medication",
			input: app.UpdateMedicationInput{
				ID: domain.NewMedicationID().String(), Name: "x", Dosage: "y", Frequency: "z",
			},
			assert: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, app.ErrNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.medications.UpdateMedication(ctx, tt.input)

			require.Error(t, err)
			tt.assert(t, err)
		})
	}
}

func TestDeleteMedicationSuccess(t *testing.T) {
	uc := setupUseCaseTest(t)
	ctx := context.Background()

	created, err := uc.medications.CreateMedication(ctx, validCreateInput())
	require.NoError(t, err)

	require.NoError(t, uc.medications.DeleteMedication(ctx, app.DeleteMedicationInput{ID: created.ID}))

	err = uc.medications.DeleteMedication(ctx, app.DeleteMedicationInput{ID: created.ID})
	assert.ErrorIs(t, err, app.ErrNotFound)
}

func TestGetReminderStatusSuccess(t *testing.T) {
	uc := setupUseCaseTest(t)
	ctx := context.Background()

	created, err := uc.medications.CreateMedication(ctx, validCreateInput())
	require.NoError(t, err)

	at := time.Date(2026, 5, 10, 7, 59, 0, 0, time.UTC)

	tests := []struct {
		name          string
		at            time.Time
		tolerance     time.Duration
		expectedNext  string
		expectedUntil time.Duration
		expectedDue   bool
	}{
		{
			name:          "one minute before without tolerance",
			at:            at,
			expectedNext:  "08:00",
			expectedUntil: time.Minute,
		},
		{
			name:          "one minute before with tolerance",
			at:            at,
			tolerance:     time.Minute,
			expectedNext:  "08:00",
			expectedUntil: time.Minute,
			expectedDue:   true,
		},
		{
			name:          "after last time rolls over",
			at:            time.Date(2026, 5, 10, 21, 0, 0, 0, time.UTC),
			expectedNext:  "08:00",
			expectedUntil: 11 * time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := uc.medications.GetReminderStatus(ctx, app.GetReminderStatusInput{
				ID:        created.ID,
				At:        tt.at,
				Tolerance: tt.tolerance,
			})

			require.NoError(t, err)
			assert.True(t, status.HasNext)
			assert.Equal(t, tt.expectedNext, status.NextTime)
			assert.Equal(t, tt.expectedUntil, status.TimeUntil)
			assert.Equal(t, tt.expectedDue, status.IsDue)
			assert.Equal(t, tt.at, status.CheckedAt)
		})
	}
}

func TestGetReminderStatusDisabledSuccess(t *testing.T) {
	uc := setupUseCaseTest(t)
	ctx := context.Background()

	input := validCreateInput()
	input.ReminderEnabled = false

	created, err := uc.medications.CreateMedication(ctx, input)
	require.NoError(t, err)

	status, err := uc.medications.GetReminderStatus(ctx, app.GetReminderStatusInput{ID: created.ID})

	require.NoError(t, err)
	assert.False(t, status.HasNext)
	assert.False(t, status.IsDue)
	assert.Empty(t, status.NextTime)
}

func TestGetReminderStatusError(t *testing.T) {
	uc := setupUseCaseTest(t)
	ctx := context.Background()
	corruptID := insertCorruptMedication(t, uc, "Broken", "08:00,xx:yy")

	_, err := uc.medications.GetReminderStatus(ctx, app.GetReminderStatusInput{ID: corruptID.String()})
	assert.ErrorIs(t, err, app.ErrInvalidConfiguration)

	_, err = uc.medications.GetReminderStatus(ctx, app.GetReminderStatusInput{
		ID:        corruptID.String(),
		Tolerance: -time.Second,
	})
	assert.True(t, app.IsValidationError(err))
}

func TestListDueMedicationsSuccess(t *testing.T) {
	uc := setupUseCaseTest(t)
	ctx := context.Background()

	morning := validCreateInput()
	morning.Name = "morning"
	morning.ReminderTimes = "08:00"

	evening := validCreateInput()
	evening.Name = "evening"
	evening.ReminderTimes = "20:00"

	disabled := validCreateInput()
	disabled.Name = "disabled"
	disabled.ReminderEnabled = false
	disabled.ReminderTimes = "08:00"

	for _, in := range []app.CreateMedicationInput{morning, evening, disabled} {
		_, err := uc.medications.CreateMedication(ctx, in)
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	insertCorruptMedication(t, uc, "corrupt", "8:00")

	at := time.Date(2026, 5, 10, 7, 59, 30, 0, time.UTC)

	output, err := uc.medications.ListDueMedications(ctx, app.ListDueMedicationsInput{
		At:        at,
		Tolerance: time.Minute,
	})

	require.NoError(t, err)
	require.Equal(t, int32(1), output.Count)
	assert.Equal(t, int32(1), output.SkippedCount)
	assert.Equal(t, "morning", output.Medications[0].Name)
	assert.Equal(t, "08:00", output.Medications[0].NextTime)
	assert.Equal(t, 30*time.Second, output.Medications[0].TimeUntil)
	assert.Equal(t, time.Date(2026, 5, 10, 8, 0, 0, 0, time.UTC), output.Medications[0].DueAt)
	assert.Equal(t, at, output.CheckedAt)
}

func TestListDueMedicationsError(t *testing.T) {
	uc := setupUseCaseTest(t)

	_, err := uc.medications.ListDueMedications(context.Background(), app.ListDueMedicationsInput{
		Tolerance: -time.Minute,
	})

	var validationErr *app.ValidationError

	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "tolerance", validationErr.Field)
}
