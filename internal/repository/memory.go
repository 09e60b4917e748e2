// Package repository implements the in-memory catalog store and registration
// ledger. All state lives for the lifetime of the process; a single mutex
// serializes mutations so the capacity-check-then-increment sequence stays
// atomic under concurrent callers.
package repository

import (
	"sync"
	"time"

	"github.com/selimist/AiStudio-Wellness/internal/domain"
)

// MemoryStore holds the event, article, user, and registration collections.
// It owns them exclusively; accessors return copies.
type MemoryStore struct {
	mu            sync.RWMutex
	events        []domain.Event
	articles      []domain.Article
	users         []domain.User
	registrations []domain.Registration

	ids IDProvider
	now func() time.Time
}

// NewMemoryStore creates an empty MemoryStore. A nil IDProvider defaults to
// random UUIDs.
func NewMemoryStore(ids IDProvider) *MemoryStore {
	if ids == nil {
		ids = NewUUIDProvider()
	}
	return &MemoryStore{
		ids: ids,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// eventIndex returns the position of the event with the given id, or -1.
// Caller must hold the lock.
func (s *MemoryStore) eventIndex(id string) int {
	for i := range s.events {
		if s.events[i].ID == id {
			return i
		}
	}
	return -1
}
