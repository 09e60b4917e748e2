package domain

import (
	"testing"
)

func TestIsValidEventType(t *testing.T) {
	tests := []struct {
		eventType EventType
		valid     bool
	}{
		{EventTypeWorkshop, true},
		{EventTypeRetreat, true},
		{EventTypeOnline, true},
		{"Webinar", false},
		{"", false},
		{"workshop", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.eventType), func(t *testing.T) {
			if got := IsValidEventType(tt.eventType); got != tt.valid {
				t.Errorf("IsValidEventType(%q) = %v, want %v", tt.eventType, got, tt.valid)
			}
		})
	}
}

func TestIsValidEventStatus(t *testing.T) {
	tests := []struct {
		status EventStatus
		valid  bool
	}{
		{EventStatusDraft, true},
		{EventStatusPublished, true},
		{EventStatusSoldOut, true},
		{"Archived", false},
		{"", false},
		{"published", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := IsValidEventStatus(tt.status); got != tt.valid {
				t.Errorf("IsValidEventStatus(%q) = %v, want %v", tt.status, got, tt.valid)
			}
		})
	}
}

func TestIsValidRole(t *testing.T) {
	tests := []struct {
		role  UserRole
		valid bool
	}{
		{RoleUser, true},
		{RoleAdmin, true},
		{RoleOrganizer, true},
		{"MODERATOR", false},
		{"admin", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			if got := IsValidRole(tt.role); got != tt.valid {
				t.Errorf("IsValidRole(%q) = %v, want %v", tt.role, got, tt.valid)
			}
		})
	}
}

func TestEventIsFull(t *testing.T) {
	tests := []struct {
		name         string
		capacity     int
		registered   int
		full         bool
		spotsLeft    int
	}{
		{"empty", 20, 0, false, 20},
		{"partial", 20, 12, false, 8},
		{"one seat left", 15, 14, false, 1},
		{"exactly full", 15, 15, true, 0},
		{"over capacity", 15, 16, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Event{Capacity: tt.capacity, CurrentRegistrations: tt.registered}
			if got := e.IsFull(); got != tt.full {
				t.Errorf("IsFull() = %v, want %v", got, tt.full)
			}
			if got := e.SpotsLeft(); got != tt.spotsLeft {
				t.Errorf("SpotsLeft() = %d, want %d", got, tt.spotsLeft)
			}
		})
	}
}
