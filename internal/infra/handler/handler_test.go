package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-medication-helper/internal/app"
	"github.com/KasumiMercury/primind-medication-helper/internal/infra/handler"
	"github.com/KasumiMercury/primind-medication-helper/internal/infra/repository"
	"github.com/KasumiMercury/primind-medication-helper/internal/testutil"
)

type testServer struct {
	router *gin.Engine
	db     *testutil.TestDB
}

func setupTestRouter(t *testing.T, view handler.ViewConfig) testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	testDB := testutil.SetupSQLiteDB(t)

	medRepo := repository.NewMedicationRepository(testDB.DB)
	vitalsRepo := repository.NewVitalsRepository(testDB.DB)
	profiles := app.NewProfileUseCase(repository.NewProfileRepository(testDB.DB))

	router := gin.New()
	api := router.Group("/api/v1")

	handler.NewMedicationHandler(app.NewMedicationUseCase(medRepo)).RegisterRoutes(api)
	handler.NewVitalsHandler(app.NewVitalsUseCase(vitalsRepo)).RegisterRoutes(api)
	handler.NewContactHandler(app.NewContactUseCase(repository.NewContactRepository(testDB.DB))).RegisterRoutes(api)
	handler.NewProfileHandler(profiles).RegisterRoutes(api)
	handler.NewDashboardHandler(app.NewDashboardUseCase(profiles, medRepo, vitalsRepo), view).RegisterRoutes(api)

	return testServer{router: router, db: testDB}
}

func (s testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader

	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)

		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))

	return v
}

func (s testServer) createMedication(t *testing.T, body map[string]any) handler.MedicationResponse {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/api/v1/medications", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	return decode[handler.MedicationResponse](t, rec)
}
