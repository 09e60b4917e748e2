package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/selimist/AiStudio-Wellness/internal/domain"
	"github.com/selimist/AiStudio-Wellness/internal/logger"
	"github.com/selimist/AiStudio-Wellness/internal/metrics"
	"github.com/selimist/AiStudio-Wellness/internal/repository"
)

// AdminValidator is implemented by internal/validator.Validator.
type AdminValidator interface {
	ValidateNewEvent(*domain.Event) error
	ValidateEventPatch(*domain.EventPatch) error
	ValidateNewArticle(*domain.Article) error
}

// AdminService orchestrates the admin console mutations.
type AdminService struct {
	store     repository.Store
	validator AdminValidator
}

// NewAdminService constructs an AdminService.
func NewAdminService(store repository.Store, v AdminValidator) *AdminService {
	return &AdminService{store: store, validator: v}
}

// CreateEvent validates and creates a new event with zero occupancy.
func (s *AdminService) CreateEvent(ctx context.Context, event domain.Event) (*domain.Event, error) {
	event.Title = strings.TrimSpace(event.Title)
	if err := s.validator.ValidateNewEvent(&event); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	created, err := s.store.CreateEvent(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	metrics.AdminMutationsTotal.WithLabelValues("event", "create").Inc()
	metrics.CatalogEvents.Set(float64(len(s.store.ListEvents(ctx))))
	logger.WithEventID(created.ID).Info("event created",
		slog.String("title", created.Title))

	return created, nil
}

// UpdateEvent validates and applies a partial update.
func (s *AdminService) UpdateEvent(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}
	if err := s.validator.ValidateEventPatch(&patch); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	updated, err := s.store.UpdateEvent(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	metrics.AdminMutationsTotal.WithLabelValues("event", "update").Inc()
	return updated, nil
}

// ToggleEventStatus flips Published to SoldOut and back. Draft events have no
// exposed status transition and are rejected.
func (s *AdminService) ToggleEventStatus(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.store.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var next domain.EventStatus
	switch event.Status {
	case domain.EventStatusPublished:
		next = domain.EventStatusSoldOut
	case domain.EventStatusSoldOut:
		next = domain.EventStatusPublished
	default:
		return nil, fmt.Errorf("%w: cannot toggle status of a %s event", ErrInvalidInput, event.Status)
	}

	updated, err := s.store.UpdateEvent(ctx, id, domain.EventPatch{Status: &next})
	if err != nil {
		return nil, err
	}

	metrics.AdminMutationsTotal.WithLabelValues("event", "status_toggle").Inc()
	logger.WithEventID(id).Info("event status toggled",
		slog.String("status", string(next)))

	return updated, nil
}

// DeleteEvent removes an event. Existing registrations become dangling.
func (s *AdminService) DeleteEvent(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}

	if err := s.store.DeleteEvent(ctx, id); err != nil {
		return err
	}

	metrics.AdminMutationsTotal.WithLabelValues("event", "delete").Inc()
	metrics.CatalogEvents.Set(float64(len(s.store.ListEvents(ctx))))
	logger.WithEventID(id).Info("event deleted")

	return nil
}

// CreateArticle validates and creates a new article.
func (s *AdminService) CreateArticle(ctx context.Context, article domain.Article) (*domain.Article, error) {
	article.Slug = strings.TrimSpace(article.Slug)
	if err := s.validator.ValidateNewArticle(&article); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	created, err := s.store.CreateArticle(ctx, article)
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	metrics.AdminMutationsTotal.WithLabelValues("article", "create").Inc()
	metrics.CatalogArticles.Set(float64(len(s.store.ListArticles(ctx))))
	logger.Info("article created",
		slog.String("article_id", created.ID),
		slog.String("slug", created.Slug))

	return created, nil
}
