package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/selimist/AiStudio-Wellness/internal/service"
)

// EventHandler handles catalog event reads.
type EventHandler struct {
	catalog service.CatalogServiceInterface
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(catalog service.CatalogServiceInterface) *EventHandler {
	return &EventHandler{catalog: catalog}
}

// ListEvents handles GET /api/v1/events
func (h *EventHandler) ListEvents(c *gin.Context) {
	events := h.catalog.ListEvents(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"events": toEventResponses(events)})
}

// ListFeaturedEvents handles GET /api/v1/events/featured
func (h *EventHandler) ListFeaturedEvents(c *gin.Context) {
	events := h.catalog.ListFeaturedEvents(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"events": toEventResponses(events)})
}

// GetEvent handles GET /api/v1/events/:id
func (h *EventHandler) GetEvent(c *gin.Context) {
	event, err := h.catalog.GetEventByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEventResponse(event))
}
