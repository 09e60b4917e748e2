package domain

import "time"

// RegistrationStatus represents the lifecycle state of a registration.
// Cancellation is modeled but no exposed operation produces it.
type RegistrationStatus string

const (
	RegistrationStatusRegistered RegistrationStatus = "registered"
	RegistrationStatusCancelled  RegistrationStatus = "cancelled"
)

// Registration links one user to one event, created once per pair.
type Registration struct {
	ID           string             `json:"id"`
	UserID       string             `json:"user_id"`
	EventID      string             `json:"event_id"`
	Status       RegistrationStatus `json:"status"`
	RegisteredAt time.Time          `json:"registered_at"`
}

// UserRegistration joins a registration to its event. Event is nil when the
// event has been deleted since the registration was created.
type UserRegistration struct {
	Registration Registration `json:"registration"`
	Event        *Event       `json:"event"`
}
