package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-medication-helper/internal/app"
)

type ContactRequest struct {
	Name           string `json:"name" binding:"required,max=100"`
	Relationship   string `json:"relationship" binding:"required,max=50"`
	PhonePrimary   string `json:"phone_primary" binding:"required,max=20"`
	PhoneSecondary string `json:"phone_secondary" binding:"max=20"`
	Email          string `json:"email" binding:"omitempty,max=120"`
	Address        string `json:"address"`
	Notes          string `json:"notes"`
}

func (r ContactRequest) toInput() app.ContactInput {
	return app.ContactInput{
		Name:           r.Name,
		Relationship:   r.Relationship,
		PhonePrimary:   r.PhonePrimary,
		PhoneSecondary: r.PhoneSecondary,
		Email:          r.Email,
		Address:        r.Address,
		Notes:          r.Notes,
	}
}

type ContactResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Relationship   string    `json:"relationship"`
	PhonePrimary   string    `json:"phone_primary"`
	PhoneSecondary string    `json:"phone_secondary"`
	Email          string    `json:"email"`
	Address        string    `json:"address"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type ContactsResponse struct {
	Contacts []ContactResponse `json:"contacts"`
	Count    int32             `json:"count"`
}

func FromContactOutput(output app.ContactOutput) ContactResponse {
	return ContactResponse{
		ID:             output.ID,
		Name:           output.Name,
		Relationship:   output.Relationship,
		PhonePrimary:   output.PhonePrimary,
		PhoneSecondary: output.PhoneSecondary,
		Email:          output.Email,
		Address:        output.Address,
		Notes:          output.Notes,
		CreatedAt:      output.CreatedAt,
		UpdatedAt:      output.UpdatedAt,
	}
}

type ContactHandler struct {
	useCase app.ContactUseCase
}

func NewContactHandler(useCase app.ContactUseCase) *ContactHandler {
	return &ContactHandler{
		useCase: useCase,
	}
}

func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "")

		return
	}

	output, err := h.useCase.CreateContact(c.Request.Context(), req.toInput())
	if err != nil {
		handleError(c, err)

		return
	}

	slog.InfoContext(c.Request.Context(), "emergency contact created",
		"contact_id", output.ID,
	)
	c.JSON(http.StatusCreated, FromContactOutput(output))
}

func (h *ContactHandler) ListContacts(c *gin.Context) {
	output, err := h.useCase.ListContacts(c.Request.Context())
	if err != nil {
		handleError(c, err)

		return
	}

	contacts := make([]ContactResponse, 0, len(output.Contacts))
	for _, contact := range output.Contacts {
		contacts = append(contacts, FromContactOutput(contact))
	}

	c.JSON(http.StatusOK, ContactsResponse{
		Contacts: contacts,
		Count:    output.Count,
	})
}

func (h *ContactHandler) GetContact(c *gin.Context) {
	output, err := h.useCase.GetContact(c.Request.Context(), app.GetContactInput{ID: c.Param("id")})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromContactOutput(output))
}

func (h *ContactHandler) UpdateContact(c *gin.Context) {
	id := c.Param("id")

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "")

		return
	}

	output, err := h.useCase.UpdateContact(c.Request.Context(), app.UpdateContactInput{
		ID:           id,
		ContactInput: req.toInput(),
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromContactOutput(output))
}

func (h *ContactHandler) DeleteContact(c *gin.Context) {
	id := c.Param("id")

	if err := h.useCase.DeleteContact(c.Request.Context(), app.DeleteContactInput{ID: id}); err != nil {
		handleError(c, err)

		return
	}

	slog.InfoContext(c.Request.Context(), "emergency contact deleted",
		"contact_id", id,
	)
	c.Status(http.StatusNoContent)
}

func (h *ContactHandler) RegisterRoutes(router *gin.RouterGroup) {
	contacts := router.Group("/emergency-contacts")
	{
		contacts.POST("", h.CreateContact)
		contacts.GET("", h.ListContacts)
		contacts.GET("/:id", h.GetContact)
		contacts.PUT("/:id", h.UpdateContact)
		contacts.DELETE("/:id", h.DeleteContact)
	}
}
