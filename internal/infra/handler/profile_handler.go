package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-medication-helper/internal/app"
)

const dateLayout = "2006-01-02"

type UpdateProfileRequest struct {
	FirstName         string  `json:"first_name" binding:"required,max=100"`
	LastName          string  `json:"last_name" binding:"max=100"`
	DateOfBirth       string  `json:"date_of_birth" binding:"required"` // YYYY-MM-DD
	HeightCM          float64 `json:"height_cm"`
	WeightKG          float64 `json:"weight_kg"`
	BloodType         string  `json:"blood_type"`
	Allergies         string  `json:"allergies"`
	MedicalConditions string  `json:"medical_conditions"`
}

type ProfileResponse struct {
	ID                string    `json:"id"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	DateOfBirth       string    `json:"date_of_birth"`
	Age               int       `json:"age"`
	HeightCM          float64   `json:"height_cm"`
	WeightKG          float64   `json:"weight_kg"`
	BloodType         string    `json:"blood_type"`
	Allergies         string    `json:"allergies"`
	MedicalConditions string    `json:"medical_conditions"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromProfileOutput(output app.ProfileOutput) ProfileResponse {
	return ProfileResponse{
		ID:                output.ID,
		FirstName:         output.FirstName,
		LastName:          output.LastName,
		DateOfBirth:       output.DateOfBirth.Format(dateLayout),
		Age:               output.Age,
		HeightCM:          output.HeightCM,
		WeightKG:          output.WeightKG,
		BloodType:         output.BloodType,
		Allergies:         output.Allergies,
		MedicalConditions: output.MedicalConditions,
		UpdatedAt:         output.UpdatedAt,
	}
}

type ProfileHandler struct {
	useCase app.ProfileUseCase
}

func NewProfileHandler(useCase app.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		useCase: useCase,
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	output, err := h.useCase.GetProfile(c.Request.Context())
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromProfileOutput(output))
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "")

		return
	}

	dob, err := time.ParseInLocation(dateLayout, req.DateOfBirth, time.Local)
	if err != nil {
		respondBindError(c, err, "date_of_birth")

		return
	}

	output, err := h.useCase.UpdateProfile(c.Request.Context(), app.UpdateProfileInput{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		DateOfBirth:       dob,
		HeightCM:          req.HeightCM,
		WeightKG:          req.WeightKG,
		BloodType:         req.BloodType,
		Allergies:         req.Allergies,
		MedicalConditions: req.MedicalConditions,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromProfileOutput(output))
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/profile", h.GetProfile)
	router.PUT("/profile", h.UpdateProfile)
}
