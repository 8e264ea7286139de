package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-medication-helper/internal/app"
)

type MedicationHandler struct {
	useCase app.MedicationUseCase
}

func NewMedicationHandler(useCase app.MedicationUseCase) *MedicationHandler {
	return &MedicationHandler{
		useCase: useCase,
	}
}

func (h *MedicationHandler) CreateMedication(c *gin.Context) {
	var req MedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "")

		return
	}

	output, err := h.useCase.CreateMedication(c.Request.Context(), app.CreateMedicationInput{
		Name:            req.Name,
		Dosage:          req.Dosage,
		Frequency:       req.Frequency,
		Notes:           req.Notes,
		ReminderEnabled: req.ReminderEnabled,
		ReminderTimes:   req.ReminderTimes,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	slog.InfoContext(c.Request.Context(), "medication created",
		"medication_id", output.ID,
	)
	c.JSON(http.StatusCreated, FromMedicationOutput(output))
}

func (h *MedicationHandler) ListMedications(c *gin.Context) {
	output, err := h.useCase.ListMedications(c.Request.Context())
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromMedicationsOutput(output))
}

func (h *MedicationHandler) GetMedication(c *gin.Context) {
	output, err := h.useCase.GetMedication(c.Request.Context(), app.GetMedicationInput{ID: c.Param("id")})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromMedicationOutput(output))
}

func (h *MedicationHandler) UpdateMedication(c *gin.Context) {
	id := c.Param("id")

	var req MedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "")

		return
	}

	output, err := h.useCase.UpdateMedication(c.Request.Context(), app.UpdateMedicationInput{
		ID:              id,
		Name:            req.Name,
		Dosage:          req.Dosage,
		Frequency:       req.Frequency,
		Notes:           req.Notes,
		ReminderEnabled: req.ReminderEnabled,
		ReminderTimes:   req.ReminderTimes,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	slog.InfoContext(c.Request.Context(), "medication updated",
		"medication_id", id,
	)
	c.JSON(http.StatusOK, FromMedicationOutput(output))
}

func (h *MedicationHandler) DeleteMedication(c *gin.Context) {
	id := c.Param("id")

	if err := h.useCase.DeleteMedication(c.Request.Context(), app.DeleteMedicationInput{ID: id}); err != nil {
		handleError(c, err)

		return
	}

	slog.InfoContext(c.Request.Context(), "medication deleted",
		"medication_id", id,
	)
	c.Status(http.StatusNoContent)
}

func (h *MedicationHandler) GetReminderStatus(c *gin.Context) {
	var q ReminderQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err, "at")

		return
	}

	tolerance, err := q.ToleranceDuration()
	if err != nil {
		respondBindError(c, err, "tolerance")

		return
	}

	output, err := h.useCase.GetReminderStatus(c.Request.Context(), app.GetReminderStatusInput{
		ID:        c.Param("id"),
		At:        q.At,
		Tolerance: tolerance,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromReminderStatusOutput(output))
}

func (h *MedicationHandler) ListDueMedications(c *gin.Context) {
	var q ReminderQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err, "at")

		return
	}

	tolerance, err := q.ToleranceDuration()
	if err != nil {
		respondBindError(c, err, "tolerance")

		return
	}

	output, err := h.useCase.ListDueMedications(c.Request.Context(), app.ListDueMedicationsInput{
		At:        q.At,
		Tolerance: tolerance,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromDueMedicationsOutput(output))
}

func (h *MedicationHandler) RegisterRoutes(router *gin.RouterGroup) {
	medications := router.Group("/medications")
	{
		medications.POST("", h.CreateMedication)
		medications.GET("", h.ListMedications)
		medications.GET("/:id", h.GetMedication)
		medications.PUT("/:id", h.UpdateMedication)
		medications.DELETE("/:id", h.DeleteMedication)
		medications.GET("/:id/reminder-status", h.GetReminderStatus)
	}

	router.GET("/reminders/due", h.ListDueMedications)
}
