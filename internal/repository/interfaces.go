package repository

import (
	"context"

	"github.com/selimist/AiStudio-Wellness/internal/domain"
)

// Catalog defines read access to the event and article collections.
// Sequences preserve insertion order.
type Catalog interface {
	ListEvents(ctx context.Context) []domain.Event
	ListFeaturedEvents(ctx context.Context) []domain.Event
	GetEventByID(ctx context.Context, id string) (*domain.Event, error)
	ListArticles(ctx context.Context) []domain.Article
	GetArticleBySlug(ctx context.Context, slug string) (*domain.Article, error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	GetUserByRole(ctx context.Context, role domain.UserRole) (*domain.User, error)
}

// RegistrationLedger defines the registration bookkeeping operations.
type RegistrationLedger interface {
	// RegisterForEvent admits a user to an event. The boolean reports whether
	// a new record was created; a repeat (user, event) pair returns the
	// existing record with false and no occupancy change.
	RegisterForEvent(ctx context.Context, userID, eventID string) (*domain.Registration, bool, error)
	ListRegistrationsForUser(ctx context.Context, userID string) []domain.UserRegistration
}

// AdminStore defines the mutations used by the admin console.
type AdminStore interface {
	CreateEvent(ctx context.Context, event domain.Event) (*domain.Event, error)
	UpdateEvent(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	CreateArticle(ctx context.Context, article domain.Article) (*domain.Article, error)
}

// Store combines all store-facing interfaces.
type Store interface {
	Catalog
	RegistrationLedger
	AdminStore
}
