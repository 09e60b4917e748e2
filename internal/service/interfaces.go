package service

import (
	"context"

	"github.com/selimist/AiStudio-Wellness/internal/domain"
)

// CatalogServiceInterface defines the catalog read operations consumed by
// handlers.
type CatalogServiceInterface interface {
	ListEvents(ctx context.Context) []domain.Event
	ListFeaturedEvents(ctx context.Context) []domain.Event
	GetEventByID(ctx context.Context, id string) (*domain.Event, error)
	ListArticles(ctx context.Context) []domain.Article
	GetArticleBySlug(ctx context.Context, slug string) (*domain.Article, error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	LoginAs(ctx context.Context, role domain.UserRole) (*domain.User, error)
}

// RegistrationServiceInterface defines the registration operations consumed
// by handlers.
type RegistrationServiceInterface interface {
	Register(ctx context.Context, userID, eventID string) (*domain.Registration, bool, error)
	ListUserRegistrations(ctx context.Context, userID string) ([]domain.UserRegistration, error)
}

// AdminServiceInterface defines the admin mutations consumed by handlers.
type AdminServiceInterface interface {
	CreateEvent(ctx context.Context, event domain.Event) (*domain.Event, error)
	UpdateEvent(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error)
	ToggleEventStatus(ctx context.Context, id string) (*domain.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	CreateArticle(ctx context.Context, article domain.Article) (*domain.Article, error)
}
