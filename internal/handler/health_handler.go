package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/selimist/AiStudio-Wellness/internal/service"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	catalog service.CatalogServiceInterface
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(catalog service.CatalogServiceInterface) *HealthHandler {
	return &HealthHandler{catalog: catalog}
}

// HealthResponse represents the response for health check endpoints.
type HealthResponse struct {
	Status   string         `json:"status"`
	Version  string         `json:"version,omitempty"`
	Services map[string]any `json:"services,omitempty"`
}

// Health handles GET /health. The store is in-process, so health reduces to
// reporting the catalog sizes.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Version: "1.0.0",
		Services: map[string]any{
			"store":    "healthy",
			"events":   len(h.catalog.ListEvents(ctx)),
			"articles": len(h.catalog.ListArticles(ctx)),
		},
	})
}

// Ready handles GET /ready - readiness probe.
func (h *HealthHandler) Ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Live handles GET /live - liveness probe.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}
