package repository

import (
	"context"

	"github.com/selimist/AiStudio-Wellness/internal/domain"
)

// CreateEvent assigns a fresh id, zeroes the occupancy regardless of input,
// and appends the event to the collection.
func (s *MemoryStore) CreateEvent(_ context.Context, event domain.Event) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event.ID = s.ids.NewID()
	event.CurrentRegistrations = 0
	s.events = append(s.events, event)

	created := event
	return &created, nil
}

// UpdateEvent applies the non-nil patch fields to the matching event and
// returns the updated copy, or ErrEventNotFound.
func (s *MemoryStore) UpdateEvent(_ context.Context, id string, patch domain.EventPatch) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.eventIndex(id)
	if i < 0 {
		return nil, ErrEventNotFound
	}

	e := &s.events[i]
	if patch.Title != nil {
		e.Title = *patch.Title
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	if patch.Location != nil {
		e.Location = *patch.Location
	}
	if patch.Venue != nil {
		e.Venue = *patch.Venue
	}
	if patch.StartDate != nil {
		e.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		e.EndDate = *patch.EndDate
	}
	if patch.Price != nil {
		e.Price = *patch.Price
	}
	if patch.Capacity != nil {
		e.Capacity = *patch.Capacity
	}
	if patch.Organizer != nil {
		e.Organizer = *patch.Organizer
	}
	if patch.CoverImage != nil {
		e.CoverImage = *patch.CoverImage
	}
	if patch.Type != nil {
		e.Type = *patch.Type
	}
	if patch.Status != nil {
		e.Status = *patch.Status
	}
	if patch.IsFeatured != nil {
		e.IsFeatured = *patch.IsFeatured
	}

	updated := *e
	return &updated, nil
}

// DeleteEvent removes the event with the given id. Registrations referencing
// it are left in place and become dangling; there is no cascade.
func (s *MemoryStore) DeleteEvent(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.eventIndex(id)
	if i < 0 {
		return ErrEventNotFound
	}
	s.events = append(s.events[:i], s.events[i+1:]...)
	return nil
}

// CreateArticle assigns a fresh id and appends the article to the collection.
func (s *MemoryStore) CreateArticle(_ context.Context, article domain.Article) (*domain.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	article.ID = s.ids.NewID()
	s.articles = append(s.articles, article)

	created := article
	return &created, nil
}
