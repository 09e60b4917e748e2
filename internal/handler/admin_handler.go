package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/selimist/AiStudio-Wellness/internal/domain"
	"github.com/selimist/AiStudio-Wellness/internal/service"
)

// AdminHandler handles the admin console mutations.
type AdminHandler struct {
	admin service.AdminServiceInterface
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(admin service.AdminServiceInterface) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// CreateEventRequest is the payload for creating an event. Id and occupancy
// are assigned by the store.
type CreateEventRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Venue       string  `json:"venue"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Price       float64 `json:"price"`
	Capacity    int     `json:"capacity"`
	Organizer   string  `json:"organizer"`
	CoverImage  string  `json:"cover_image"`
	Type        string  `json:"type"`
	Status      string  `json:"status"`
	IsFeatured  bool    `json:"is_featured"`
}

// UpdateEventRequest is the payload for a partial event update.
type UpdateEventRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Location    *string  `json:"location"`
	Venue       *string  `json:"venue"`
	StartDate   *string  `json:"start_date"`
	EndDate     *string  `json:"end_date"`
	Price       *float64 `json:"price"`
	Capacity    *int     `json:"capacity"`
	Organizer   *string  `json:"organizer"`
	CoverImage  *string  `json:"cover_image"`
	Type        *string  `json:"type"`
	Status      *string  `json:"status"`
	IsFeatured  *bool    `json:"is_featured"`
}

// CreateArticleRequest is the payload for creating an article.
type CreateArticleRequest struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	CoverImage  string   `json:"cover_image"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
	Author      string   `json:"author"`
	PublishedAt string   `json:"published_at"`
	ReadingTime string   `json:"reading_time"`
}

func parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be a %s date", field, DateFormat)
	}
	return t, nil
}

// CreateEvent handles POST /api/v1/admin/events
func (h *AdminHandler) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	end, err := parseDate("end_date", req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.admin.CreateEvent(c.Request.Context(), domain.Event{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Venue:       req.Venue,
		StartDate:   start,
		EndDate:     end,
		Price:       req.Price,
		Capacity:    req.Capacity,
		Organizer:   req.Organizer,
		CoverImage:  req.CoverImage,
		Type:        domain.EventType(req.Type),
		Status:      domain.EventStatus(req.Status),
		IsFeatured:  req.IsFeatured,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toEventResponse(created))
}

// UpdateEvent handles PATCH /api/v1/admin/events/:id
func (h *AdminHandler) UpdateEvent(c *gin.Context) {
	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	patch := domain.EventPatch{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Venue:       req.Venue,
		Price:       req.Price,
		Capacity:    req.Capacity,
		Organizer:   req.Organizer,
		CoverImage:  req.CoverImage,
		IsFeatured:  req.IsFeatured,
	}
	if req.StartDate != nil {
		start, err := parseDate("start_date", *req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		patch.StartDate = &start
	}
	if req.EndDate != nil {
		end, err := parseDate("end_date", *req.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		patch.EndDate = &end
	}
	if req.Type != nil {
		t := domain.EventType(*req.Type)
		patch.Type = &t
	}
	if req.Status != nil {
		s := domain.EventStatus(*req.Status)
		patch.Status = &s
	}

	updated, err := h.admin.UpdateEvent(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEventResponse(updated))
}

// ToggleEventStatus handles POST /api/v1/admin/events/:id/status-toggle
func (h *AdminHandler) ToggleEventStatus(c *gin.Context) {
	updated, err := h.admin.ToggleEventStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEventResponse(updated))
}

// DeleteEvent handles DELETE /api/v1/admin/events/:id
func (h *AdminHandler) DeleteEvent(c *gin.Context) {
	if err := h.admin.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateArticle handles POST /api/v1/admin/articles
func (h *AdminHandler) CreateArticle(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	published, err := parseDate("published_at", req.PublishedAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.admin.CreateArticle(c.Request.Context(), domain.Article{
		Slug:        req.Slug,
		Title:       req.Title,
		CoverImage:  req.CoverImage,
		Content:     req.Content,
		Tags:        req.Tags,
		Author:      req.Author,
		PublishedAt: published,
		ReadingTime: req.ReadingTime,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toArticleResponse(created))
}
