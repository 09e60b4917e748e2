package validator

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/selimist/AiStudio-Wellness/internal/domain"
)

var (
	slugRegex   = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	validTypes  = []interface{}{domain.EventTypeWorkshop, domain.EventTypeRetreat, domain.EventTypeOnline}
	validStatus = []interface{}{domain.EventStatusDraft, domain.EventStatusPublished, domain.EventStatusSoldOut}
)

// Validator provides validation methods for admin mutation payloads.
// The store itself stays permissive; these rules are the hardening applied
// at the service boundary.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateNewEvent validates an event about to be created.
func (v *Validator) ValidateNewEvent(e *domain.Event) error {
	err := validation.ValidateStruct(e,
		validation.Field(&e.Title,
			validation.Required.Error("title_required"),
		),
		validation.Field(&e.Capacity,
			validation.Required.Error("capacity_required"),
			validation.Min(1).Error("capacity_must_be_positive"),
		),
		validation.Field(&e.Price,
			validation.Min(0.0).Error("price_must_be_non_negative"),
		),
		validation.Field(&e.Type,
			validation.Required.Error("type_required"),
			validation.In(validTypes...).Error("invalid_type"),
		),
		validation.Field(&e.Status,
			validation.Required.Error("status_required"),
			validation.In(validStatus...).Error("invalid_status"),
		),
	)
	if err != nil {
		return err
	}

	// Custom rule: calendar range must not end before it starts
	if !e.StartDate.IsZero() && !e.EndDate.IsZero() && e.EndDate.Before(e.StartDate) {
		return validation.Errors{
			"end_date": validation.NewError("end_before_start", "end date must not be before start date"),
		}
	}

	return nil
}

// ValidateEventPatch validates a partial event update. Only the fields
// present in the patch are checked.
func (v *Validator) ValidateEventPatch(p *domain.EventPatch) error {
	errs := validation.Errors{}

	if p.Title != nil && *p.Title == "" {
		errs["title"] = validation.NewError("title_required", "title must not be empty")
	}
	if p.Capacity != nil && *p.Capacity < 1 {
		errs["capacity"] = validation.NewError("capacity_must_be_positive", "capacity must be a positive integer")
	}
	if p.Price != nil && *p.Price < 0 {
		errs["price"] = validation.NewError("price_must_be_non_negative", "price must not be negative")
	}
	if p.Type != nil && !domain.IsValidEventType(*p.Type) {
		errs["type"] = validation.NewError("invalid_type", "unknown event type")
	}
	if p.Status != nil && !domain.IsValidEventStatus(*p.Status) {
		errs["status"] = validation.NewError("invalid_status", "unknown event status")
	}
	if p.StartDate != nil && p.EndDate != nil && p.EndDate.Before(*p.StartDate) {
		errs["end_date"] = validation.NewError("end_before_start", "end date must not be before start date")
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateNewArticle validates an article about to be created.
func (v *Validator) ValidateNewArticle(a *domain.Article) error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Slug,
			validation.Required.Error("slug_required"),
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
		validation.Field(&a.Title,
			validation.Required.Error("title_required"),
		),
		validation.Field(&a.Content,
			validation.Required.Error("content_required"),
		),
		validation.Field(&a.Author,
			validation.Required.Error("author_required"),
		),
	)
}
