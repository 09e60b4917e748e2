// Package service implements business logic, validation, and orchestration
// between HTTP handlers and the in-memory store.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/selimist/AiStudio-Wellness/internal/domain"
	"github.com/selimist/AiStudio-Wellness/internal/repository"
)

// ErrInvalidInput marks caller mistakes that handlers map to 400 responses.
var ErrInvalidInput = errors.New("invalid input")

// CatalogService exposes the catalog read operations.
type CatalogService struct {
	catalog repository.Catalog
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(catalog repository.Catalog) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// ListEvents returns all events in insertion order.
func (s *CatalogService) ListEvents(ctx context.Context) []domain.Event {
	return s.catalog.ListEvents(ctx)
}

// ListFeaturedEvents returns the home-page curation subsequence.
func (s *CatalogService) ListFeaturedEvents(ctx context.Context) []domain.Event {
	return s.catalog.ListFeaturedEvents(ctx)
}

// GetEventByID returns a single event by id.
func (s *CatalogService) GetEventByID(ctx context.Context, id string) (*domain.Event, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}
	return s.catalog.GetEventByID(ctx, id)
}

// ListArticles returns all articles in insertion order.
func (s *CatalogService) ListArticles(ctx context.Context) []domain.Article {
	return s.catalog.ListArticles(ctx)
}

// GetArticleBySlug returns a single article by its slug.
func (s *CatalogService) GetArticleBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, fmt.Errorf("%w: article slug is required", ErrInvalidInput)
	}
	return s.catalog.GetArticleBySlug(ctx, slug)
}

// GetUserByID returns a single user by id.
func (s *CatalogService) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	return s.catalog.GetUserByID(ctx, id)
}

// LoginAs returns the demo identity for the given role. This is the
// role-selection login: no credential is checked.
func (s *CatalogService) LoginAs(ctx context.Context, role domain.UserRole) (*domain.User, error) {
	if !domain.IsValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}
	return s.catalog.GetUserByRole(ctx, role)
}
