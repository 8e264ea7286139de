package handler_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-medication-helper/internal/domain"
	"github.com/KasumiMercury/primind-medication-helper/internal/infra/handler"
	"github.com/KasumiMercury/primind-medication-helper/internal/infra/repository"
)

func medicationBody(times string) map[string]any {
	return map[string]any{
		"name":             "Metformin",
		"dosage":           "500mg",
		"frequency":        "twice daily",
		"notes":            "with meals",
		"reminder_enabled": true,
		"reminder_times":   times,
	}
}

func TestCreateMedicationHandlerSuccess(t *testing.T) {
	srv := setupTestRouter(t, handler.ViewConfig{})

	created := srv.createMedication(t, medicationBody("20:00,08:00"))

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Metformin", created.Name)
	assert.True(t, created.ReminderEnabled)
	assert.Equal(t, []string{"08:00", "20:00"}, created.ReminderTimes)
}

func TestCreateMedicationHandlerError(t *testing.T) {
	tests := []struct {
		name          string
		body          map[string]any
		expectedField string
	}{
		{
			name:          "invalid reminder time",
			body:          medicationBody("8:00"),
			expectedField: "reminder_times",
		},
		{
			name:          "out of range reminder time",
			body:          medicationBody("25:61"),
			expectedField: "reminder_times",
		},
		{
			name: "missing name",
			body: map[string]any{
				"dosage":    "1",
				"frequency": "daily",
			},
			expectedField: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := setupTestRouter(t, handler.ViewConfig{})

			rec := srv.do(t, http.MethodPost, "/api/v1/medications", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			resp := decode[handler.ErrorResponse](t, rec)
			assert.Equal(t, "validation_error", resp.Error)
			assert.Equal(t, tt.expectedField, resp.Field)
		})
	}
}

func TestMedicationCRUDHandlerSuccess(t *testing.T) {
	srv := setupTestRouter(t, handler.ViewConfig{})

	created := srv.createMedication(t, medicationBody("08:00"))
	path := "/api/v1/medications/" + created.ID

	rec := srv.do(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created.ID, decode[handler.MedicationResponse](t, rec).ID)

	update := medicationBody("")
	update["reminder_enabled"] = false
	update["dosage"] = "1000mg"

	rec = srv.do(t, http.MethodPut, path, update)
	require.Equal(t, http.StatusOK, rec.Code)

	updated := decode[handler.MedicationResponse](t, rec)
	assert.Equal(t, "1000mg", updated.Dosage)
	assert.False(t, updated.ReminderEnabled)
	assert.Empty(t, updated.ReminderTimes)

	rec = srv.do(t, http.MethodGet, "/api/v1/medications", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int32(1), decode[handler.MedicationsResponse](t, rec).Count)

	rec = srv.do(t, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = srv.do(t, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decode[handler.ErrorResponse](t, rec).Error)
}

func TestGetMedicationHandlerError(t *testing.T) {
	srv := setupTestRouter(t, handler.ViewConfig{})

	tests := []struct {
		name         string
		id           string
		expectedCode int
	}{
		{name: "malformed id", id: "123", expectedCode: http.StatusBadRequest},
		{name: "missing medication", id: domain.NewMedicationID().String(), expectedCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := srv.do(t, http.MethodGet, "/api/v1/medications/"+tt.id, nil)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestGetReminderStatusHandlerSuccess(t *testing.T) {
	srv := setupTestRouter(t, handler.ViewConfig{})
	created := srv.createMedication(t, medicationBody("08:00,20:00"))

	query := url.Values{}
	query.Set("at", "2026-05-10T07:59:00Z")
	query.Set("tolerance", "1m")

	rec := srv.do(t, http.MethodGet, "/api/v1/medications/"+created.ID+"/reminder-status?"+query.Encode(), nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	status := decode[handler.ReminderStatusResponse](t, rec)
	assert.True(t, status.HasNext)
	assert.True(t, status.IsDue)
	assert.Equal(t, "08:00", status.NextTime)
	assert.Equal(t, int64(60), status.TimeUntilSeconds)
	require.NotNil(t, status.NextAt)
	assert.True(t, status.NextAt.Equal(time.Date(2026, 5, 10, 8, 0, 0, 0, time.UTC)))
}

func TestGetReminderStatusHandlerError(t *testing.T) {
	srv := setupTestRouter(t, handler.ViewConfig{})
	created := srv.createMedication(t, medicationBody("08:00"))

	corruptID := domain.NewMedicationID()
	require.NoError(t, srv.db.DB.Create(&repository.MedicationModel{
		ID:              corruptID.String(),
		Name:            "corrupt",
		Dosage:          "1",
		Frequency:       "daily",
		ReminderEnabled: true,
		ReminderTimes:   "25:61",
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}).Error)

	tests := []struct {
		name          string
		path          string
		expectedCode  int
		expectedError string
		expectedField string
	}{
		{
			name:          "invalid stored configuration",
			path:          "/api/v1/medications/" + corruptID.String() + "/reminder-status",
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "invalid_configuration",
			expectedField: "reminder_times",
		},
		{
			name:          "malformed tolerance",
			path:          "/api/v1/medications/" + created.ID + "/reminder-status?tolerance=soon",
			expectedCode:  http.StatusBadRequest,
			expectedError: "validation_error",
			expectedField: "tolerance",
		},
		{
			name:          "negative tolerance",
			path:          "/api/v1/medications/" + created.ID + "/reminder-status?tolerance=-1m",
			expectedCode:  http.StatusBadRequest,
			expectedError: "validation_error",
			expectedField: "tolerance",
		},
		{
			name:          "malformed instant",
			path:          "/api/v1/medications/" + created.ID + "/reminder-status?at=yesterday",
			expectedCode:  http.StatusBadRequest,
			expectedError: "validation_error",
			expectedField: "at",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := srv.do(t, http.MethodGet, tt.path, nil)

			assert.Equal(t, tt.expectedCode, rec.Code)

			resp := decode[handler.ErrorResponse](t, rec)
			assert.Equal(t, tt.expectedError, resp.Error)
			assert.Equal(t, tt.expectedField, resp.Field)
		})
	}
}

func TestListDueMedicationsHandlerSuccess(t *testing.T) {
	srv := setupTestRouter(t, handler.ViewConfig{})
	due := srv.createMedication(t, medicationBody("08:00"))
	srv.createMedication(t, medicationBody("12:00"))

	rec := srv.do(t, http.MethodGet, "/api/v1/reminders/due?at=2026-05-10T08:00:00Z", nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decode[handler.DueMedicationsResponse](t, rec)
	require.Equal(t, int32(1), resp.Count)
	assert.Equal(t, due.ID, resp.Medications[0].MedicationID)
	assert.Equal(t, int64(0), resp.Medications[0].TimeUntilSeconds)
	assert.Equal(t, int32(0), resp.Skipped)
}
