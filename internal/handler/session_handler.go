package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/selimist/AiStudio-Wellness/internal/domain"
	"github.com/selimist/AiStudio-Wellness/internal/service"
)

// SessionHandler handles the role-selection login and user lookups. There is
// no credential check; the client keeps the returned identity.
type SessionHandler struct {
	catalog service.CatalogServiceInterface
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(catalog service.CatalogServiceInterface) *SessionHandler {
	return &SessionHandler{catalog: catalog}
}

// LoginRequest is the payload for the role-selection login.
type LoginRequest struct {
	Role string `json:"role"`
}

// Login handles POST /api/v1/session
func (h *SessionHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.catalog.LoginAs(c.Request.Context(), domain.UserRole(req.Role))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetUser handles GET /api/v1/users/:id
func (h *SessionHandler) GetUser(c *gin.Context) {
	user, err := h.catalog.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
