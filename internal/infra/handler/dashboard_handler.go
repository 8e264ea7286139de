package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-medication-helper/internal/app"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ViewConfig holds presentation preferences returned with the dashboard.
type ViewConfig struct {
	Theme Theme
}

type DashboardMedicationResponse struct {
	MedicationResponse
	Reminder ReminderStatusResponse `json:"reminder"`
}

type DashboardResponse struct {
	Profile      ProfileResponse               `json:"profile"`
	Medications  []DashboardMedicationResponse `json:"medications"`
	LatestVitals *VitalsResponse               `json:"latest_vitals"`
	ServerTime   time.Time                     `json:"server_time"`
	Theme        Theme                         `json:"theme"`
}

type DashboardHandler struct {
	useCase app.DashboardUseCase
	view    ViewConfig
}

func NewDashboardHandler(useCase app.DashboardUseCase, view ViewConfig) *DashboardHandler {
	if view.Theme == "" {
		view.Theme = ThemeLight
	}

	return &DashboardHandler{
		useCase: useCase,
		view:    view,
	}
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	var q ReminderQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err, "at")

		return
	}

	output, err := h.useCase.GetDashboard(c.Request.Context(), app.GetDashboardInput{At: q.At})
	if err != nil {
		handleError(c, err)

		return
	}

	medications := make([]DashboardMedicationResponse, 0, len(output.Medications))
	for _, m := range output.Medications {
		medications = append(medications, DashboardMedicationResponse{
			MedicationResponse: FromMedicationOutput(m.Medication),
			Reminder:           FromReminderStatusOutput(m.Reminder),
		})
	}

	resp := DashboardResponse{
		Profile:     FromProfileOutput(output.Profile),
		Medications: medications,
		ServerTime:  output.ServerTime,
		Theme:       h.view.Theme,
	}

	if output.LatestVitals != nil {
		v := FromVitalsOutput(*output.LatestVitals)
		resp.LatestVitals = &v
	}

	c.JSON(http.StatusOK, resp)
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard", h.GetDashboard)
}
