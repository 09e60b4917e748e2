package repository

import (
	"context"

	"github.com/selimist/AiStudio-Wellness/internal/domain"
)

// ListEvents returns all events in insertion order.
func (s *MemoryStore) ListEvents(_ context.Context) []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Event, len(s.events))
	copy(out, s.events)
	return out
}

// ListFeaturedEvents returns the featured subsequence of ListEvents.
func (s *MemoryStore) ListFeaturedEvents(_ context.Context) []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Event, 0, len(s.events))
	for _, e := range s.events {
		if e.IsFeatured {
			out = append(out, e)
		}
	}
	return out
}

// GetEventByID returns the event with the given id, or ErrEventNotFound.
func (s *MemoryStore) GetEventByID(_ context.Context, id string) (*domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.eventIndex(id); i >= 0 {
		event := s.events[i]
		return &event, nil
	}
	return nil, ErrEventNotFound
}

// ListArticles returns all articles in insertion order.
func (s *MemoryStore) ListArticles(_ context.Context) []domain.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Article, len(s.articles))
	copy(out, s.articles)
	return out
}

// GetArticleBySlug returns the article with the given slug, or
// ErrArticleNotFound.
func (s *MemoryStore) GetArticleBySlug(_ context.Context, slug string) (*domain.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.articles {
		if s.articles[i].Slug == slug {
			article := s.articles[i]
			return &article, nil
		}
	}
	return nil, ErrArticleNotFound
}

// GetUserByID returns the user with the given id, or ErrUserNotFound.
func (s *MemoryStore) GetUserByID(_ context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].ID == id {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

// GetUserByRole returns the first user with the given role, or
// ErrUserNotFound. With the fixed demo identities there is one per role.
func (s *MemoryStore) GetUserByRole(_ context.Context, role domain.UserRole) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].Role == role {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}
