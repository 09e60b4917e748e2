package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/selimist/AiStudio-Wellness/internal/service"
)

// RegistrationHandler handles event pre-registration requests.
type RegistrationHandler struct {
	registrations service.RegistrationServiceInterface
}

// NewRegistrationHandler creates a new RegistrationHandler.
func NewRegistrationHandler(registrations service.RegistrationServiceInterface) *RegistrationHandler {
	return &RegistrationHandler{registrations: registrations}
}

// RegisterRequest is the payload for registering for an event.
type RegisterRequest struct {
	UserID string `json:"user_id"`
}

// Register handles POST /api/v1/events/:id/register
func (h *RegistrationHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	reg, created, err := h.registrations.Register(c.Request.Context(), req.UserID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	// A repeat registration reports success without a new record.
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, toRegistrationResponse(reg))
}

// ListUserRegistrations handles GET /api/v1/users/:id/registrations
func (h *RegistrationHandler) ListUserRegistrations(c *gin.Context) {
	regs, err := h.registrations.ListUserRegistrations(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]UserRegistrationResponse, len(regs))
	for i, r := range regs {
		out[i] = UserRegistrationResponse{
			Registration: toRegistrationResponse(&regs[i].Registration),
		}
		if r.Event != nil {
			event := toEventResponse(r.Event)
			out[i].Event = &event
		}
	}
	c.JSON(http.StatusOK, gin.H{"registrations": out})
}
