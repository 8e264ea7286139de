package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-medication-helper/internal/app"
)

type RecordVitalsRequest struct {
	RecordedAt       time.Time `json:"recorded_at" binding:"required"`
	SystolicBP       *int      `json:"systolic_bp"`
	DiastolicBP      *int      `json:"diastolic_bp"`
	HeartRate        *int      `json:"heart_rate"`
	RespiratoryRate  *int      `json:"respiratory_rate"`
	OxygenSaturation *int      `json:"oxygen_saturation"`
	Temperature      *float64  `json:"temperature"`
	BloodSugar       *float64  `json:"blood_sugar"`
	Notes            string    `json:"notes"`
}

type VitalsResponse struct {
	ID               string    `json:"id"`
	RecordedAt       time.Time `json:"recorded_at"`
	SystolicBP       *int      `json:"systolic_bp"`
	DiastolicBP      *int      `json:"diastolic_bp"`
	HeartRate        *int      `json:"heart_rate"`
	RespiratoryRate  *int      `json:"respiratory_rate"`
	OxygenSaturation *int      `json:"oxygen_saturation"`
	Temperature      *float64  `json:"temperature"`
	BloodSugar       *float64  `json:"blood_sugar"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
}

type VitalsListResponse struct {
	Vitals []VitalsResponse `json:"vitals"`
	Count  int32            `json:"count"`
}

func FromVitalsOutput(output app.VitalsOutput) VitalsResponse {
	return VitalsResponse{
		ID:               output.ID,
		RecordedAt:       output.RecordedAt,
		SystolicBP:       output.SystolicBP,
		DiastolicBP:      output.DiastolicBP,
		HeartRate:        output.HeartRate,
		RespiratoryRate:  output.RespiratoryRate,
		OxygenSaturation: output.OxygenSaturation,
		Temperature:      output.Temperature,
		BloodSugar:       output.BloodSugar,
		Notes:            output.Notes,
		CreatedAt:        output.CreatedAt,
	}
}

type VitalsHandler struct {
	useCase app.VitalsUseCase
}

func NewVitalsHandler(useCase app.VitalsUseCase) *VitalsHandler {
	return &VitalsHandler{
		useCase: useCase,
	}
}

func (h *VitalsHandler) RecordVitals(c *gin.Context) {
	var req RecordVitalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "")

		return
	}

	output, err := h.useCase.RecordVitals(c.Request.Context(), app.RecordVitalsInput{
		RecordedAt:       req.RecordedAt,
		SystolicBP:       req.SystolicBP,
		DiastolicBP:      req.DiastolicBP,
		HeartRate:        req.HeartRate,
		RespiratoryRate:  req.RespiratoryRate,
		OxygenSaturation: req.OxygenSaturation,
		Temperature:      req.Temperature,
		BloodSugar:       req.BloodSugar,
		Notes:            req.Notes,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	slog.InfoContext(c.Request.Context(), "vital signs recorded",
		"vitals_id", output.ID,
	)
	c.JSON(http.StatusCreated, FromVitalsOutput(output))
}

func (h *VitalsHandler) ListVitals(c *gin.Context) {
	output, err := h.useCase.ListVitals(c.Request.Context())
	if err != nil {
		handleError(c, err)

		return
	}

	vitals := make([]VitalsResponse, 0, len(output.Vitals))
	for _, v := range output.Vitals {
		vitals = append(vitals, FromVitalsOutput(v))
	}

	c.JSON(http.StatusOK, VitalsListResponse{
		Vitals: vitals,
		Count:  output.Count,
	})
}

func (h *VitalsHandler) GetLatestVitals(c *gin.Context) {
	output, err := h.useCase.GetLatestVitals(c.Request.Context())
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromVitalsOutput(output))
}

func (h *VitalsHandler) DeleteVitals(c *gin.Context) {
	id := c.Param("id")

	if err := h.useCase.DeleteVitals(c.Request.Context(), app.DeleteVitalsInput{ID: id}); err != nil {
		handleError(c, err)

		return
	}

	slog.InfoContext(c.Request.Context(), "vital signs deleted",
		"vitals_id", id,
	)
	c.Status(http.StatusNoContent)
}

func (h *VitalsHandler) RegisterRoutes(router *gin.RouterGroup) {
	vitals := router.Group("/vitals")
	{
		vitals.POST("", h.RecordVitals)
		vitals.GET("", h.ListVitals)
		vitals.GET("/latest", h.GetLatestVitals)
		vitals.DELETE("/:id", h.DeleteVitals)
	}
}
