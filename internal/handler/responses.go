package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/selimist/AiStudio-Wellness/internal/domain"
	"github.com/selimist/AiStudio-Wellness/internal/logger"
	"github.com/selimist/AiStudio-Wellness/internal/middleware"
	"github.com/selimist/AiStudio-Wellness/internal/repository"
	"github.com/selimist/AiStudio-Wellness/internal/service"
)

// EventResponse represents an event in the API response. SoldOut is the
// display disjunction: the admin label or a full occupancy count.
type EventResponse struct {
	ID                   string  `json:"id"`
	Title                string  `json:"title"`
	Description          string  `json:"description"`
	Location             string  `json:"location"`
	Venue                string  `json:"venue"`
	StartDate            string  `json:"start_date"`
	EndDate              string  `json:"end_date"`
	Price                float64 `json:"price"`
	Capacity             int     `json:"capacity"`
	CurrentRegistrations int     `json:"current_registrations"`
	SpotsLeft            int     `json:"spots_left"`
	Organizer            string  `json:"organizer"`
	CoverImage           string  `json:"cover_image"`
	Type                 string  `json:"type"`
	Status               string  `json:"status"`
	IsFeatured           bool    `json:"is_featured"`
	SoldOut              bool    `json:"sold_out"`
}

// toEventResponse converts a domain.Event to an EventResponse.
func toEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:                   e.ID,
		Title:                e.Title,
		Description:          e.Description,
		Location:             e.Location,
		Venue:                e.Venue,
		StartDate:            e.StartDate.Format(DateFormat),
		EndDate:              e.EndDate.Format(DateFormat),
		Price:                e.Price,
		Capacity:             e.Capacity,
		CurrentRegistrations: e.CurrentRegistrations,
		SpotsLeft:            e.SpotsLeft(),
		Organizer:            e.Organizer,
		CoverImage:           e.CoverImage,
		Type:                 string(e.Type),
		Status:               string(e.Status),
		IsFeatured:           e.IsFeatured,
		SoldOut:              e.Status == domain.EventStatusSoldOut || e.IsFull(),
	}
}

func toEventResponses(events []domain.Event) []EventResponse {
	out := make([]EventResponse, len(events))
	for i := range events {
		out[i] = toEventResponse(&events[i])
	}
	return out
}

// ArticleResponse represents an article in the API response.
type ArticleResponse struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	CoverImage  string   `json:"cover_image"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags,omitempty"`
	Author      string   `json:"author"`
	PublishedAt string   `json:"published_at"`
	ReadingTime string   `json:"reading_time"`
}

// toArticleResponse converts a domain.Article to an ArticleResponse.
func toArticleResponse(a *domain.Article) ArticleResponse {
	return ArticleResponse{
		ID:          a.ID,
		Slug:        a.Slug,
		Title:       a.Title,
		CoverImage:  a.CoverImage,
		Content:     a.Content,
		Tags:        a.Tags,
		Author:      a.Author,
		PublishedAt: a.PublishedAt.Format(DateFormat),
		ReadingTime: a.ReadingTime,
	}
}

// RegistrationResponse represents a registration in the API response.
type RegistrationResponse struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	EventID      string `json:"event_id"`
	Status       string `json:"status"`
	RegisteredAt string `json:"registered_at"`
}

// toRegistrationResponse converts a domain.Registration to a RegistrationResponse.
func toRegistrationResponse(r *domain.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		EventID:      r.EventID,
		Status:       string(r.Status),
		RegisteredAt: r.RegisteredAt.Format(TimeFormat),
	}
}

// UserRegistrationResponse joins a registration to its event; Event is null
// when the event has been deleted.
type UserRegistrationResponse struct {
	Registration RegistrationResponse `json:"registration"`
	Event        *EventResponse       `json:"event"`
}

// respondError maps service and repository errors to HTTP responses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrEventNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
	case errors.Is(err, repository.ErrArticleNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
	case errors.Is(err, repository.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, repository.ErrEventFull):
		c.JSON(http.StatusConflict, gin.H{"error": "event is at capacity"})
	default:
		logger.WithRequestID(middleware.GetRequestID(c)).Error("request failed",
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
