package repository

import (
	"context"

	"github.com/selimist/AiStudio-Wellness/internal/domain"
)

// RegisterForEvent admits a user to an event under the store lock.
//
// Check order matters: existence, then idempotency, then capacity. A user who
// already holds a registration is re-admitted even when the event has since
// filled up.
func (s *MemoryStore) RegisterForEvent(_ context.Context, userID, eventID string) (*domain.Registration, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.eventIndex(eventID)
	if i < 0 {
		return nil, false, ErrEventNotFound
	}

	for j := range s.registrations {
		if s.registrations[j].UserID == userID && s.registrations[j].EventID == eventID {
			existing := s.registrations[j]
			return &existing, false, nil
		}
	}

	if s.events[i].IsFull() {
		return nil, false, ErrEventFull
	}

	reg := domain.Registration{
		ID:           s.ids.NewID(),
		UserID:       userID,
		EventID:      eventID,
		Status:       domain.RegistrationStatusRegistered,
		RegisteredAt: s.now(),
	}
	s.registrations = append(s.registrations, reg)
	s.events[i].CurrentRegistrations++

	return &reg, true, nil
}

// ListRegistrationsForUser joins the user's registrations to their events.
// The event side is nil when the event has been deleted; callers must
// tolerate the dangling reference.
func (s *MemoryStore) ListRegistrationsForUser(_ context.Context, userID string) []domain.UserRegistration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.UserRegistration, 0)
	for _, r := range s.registrations {
		if r.UserID != userID {
			continue
		}
		pair := domain.UserRegistration{Registration: r}
		if i := s.eventIndex(r.EventID); i >= 0 {
			event := s.events[i]
			pair.Event = &event
		}
		out = append(out, pair)
	}
	return out
}
