package domain

import "time"

// EventType classifies the kind of wellness experience.
type EventType string

const (
	EventTypeWorkshop EventType = "Workshop"
	EventTypeRetreat  EventType = "Retreat"
	EventTypeOnline   EventType = "Online Event"
)

// EventStatus is an admin-controlled display label. Availability is derived
// from occupancy, not from this field (see Event.IsFull).
type EventStatus string

const (
	EventStatusDraft     EventStatus = "Draft"
	EventStatusPublished EventStatus = "Published"
	EventStatusSoldOut   EventStatus = "Sold Out"
)

// Event represents a bookable wellness experience with finite capacity.
type Event struct {
	ID                   string      `json:"id"`
	Title                string      `json:"title"`
	Description          string      `json:"description"`
	Location             string      `json:"location"`
	Venue                string      `json:"venue"`
	StartDate            time.Time   `json:"start_date"`
	EndDate              time.Time   `json:"end_date"`
	Price                float64     `json:"price"`
	Capacity             int         `json:"capacity"`
	CurrentRegistrations int         `json:"current_registrations"`
	Organizer            string      `json:"organizer"`
	CoverImage           string      `json:"cover_image"`
	Type                 EventType   `json:"type"`
	Status               EventStatus `json:"status"`
	IsFeatured           bool        `json:"is_featured"`
}

// IsFull reports whether the event has no seats remaining.
func (e *Event) IsFull() bool {
	return e.CurrentRegistrations >= e.Capacity
}

// SpotsLeft returns the number of available seats, never negative.
func (e *Event) SpotsLeft() int {
	if e.IsFull() {
		return 0
	}
	return e.Capacity - e.CurrentRegistrations
}

// EventPatch carries a partial update for an event. Nil fields are left
// unchanged. CurrentRegistrations is absent on purpose: only the registration
// ledger mutates occupancy.
type EventPatch struct {
	Title       *string      `json:"title,omitempty"`
	Description *string      `json:"description,omitempty"`
	Location    *string      `json:"location,omitempty"`
	Venue       *string      `json:"venue,omitempty"`
	StartDate   *time.Time   `json:"start_date,omitempty"`
	EndDate     *time.Time   `json:"end_date,omitempty"`
	Price       *float64     `json:"price,omitempty"`
	Capacity    *int         `json:"capacity,omitempty"`
	Organizer   *string      `json:"organizer,omitempty"`
	CoverImage  *string      `json:"cover_image,omitempty"`
	Type        *EventType   `json:"type,omitempty"`
	Status      *EventStatus `json:"status,omitempty"`
	IsFeatured  *bool        `json:"is_featured,omitempty"`
}

// ValidEventTypes contains all valid event types.
var ValidEventTypes = []EventType{EventTypeWorkshop, EventTypeRetreat, EventTypeOnline}

// IsValidEventType checks if an event type is valid.
func IsValidEventType(t EventType) bool {
	for _, v := range ValidEventTypes {
		if v == t {
			return true
		}
	}
	return false
}

// ValidEventStatuses contains all valid event statuses.
var ValidEventStatuses = []EventStatus{EventStatusDraft, EventStatusPublished, EventStatusSoldOut}

// IsValidEventStatus checks if an event status is valid.
func IsValidEventStatus(s EventStatus) bool {
	for _, v := range ValidEventStatuses {
		if v == s {
			return true
		}
	}
	return false
}
