package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/selimist/AiStudio-Wellness/internal/domain"
	"github.com/selimist/AiStudio-Wellness/internal/logger"
	"github.com/selimist/AiStudio-Wellness/internal/metrics"
	"github.com/selimist/AiStudio-Wellness/internal/repository"
)

// RegistrationService orchestrates pre-registration bookkeeping.
type RegistrationService struct {
	ledger repository.RegistrationLedger
}

// NewRegistrationService constructs a RegistrationService.
func NewRegistrationService(ledger repository.RegistrationLedger) *RegistrationService {
	return &RegistrationService{ledger: ledger}
}

// Register admits a user to an event. The boolean reports whether a new
// record was created; a repeat (user, event) pair succeeds without one.
func (s *RegistrationService) Register(ctx context.Context, userID, eventID string) (*domain.Registration, bool, error) {
	userID = strings.TrimSpace(userID)
	eventID = strings.TrimSpace(eventID)
	if userID == "" {
		return nil, false, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if eventID == "" {
		return nil, false, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}

	reg, created, err := s.ledger.RegisterForEvent(ctx, userID, eventID)
	switch {
	case errors.Is(err, repository.ErrEventNotFound):
		metrics.RegistrationAttemptsTotal.WithLabelValues(metrics.ResultNotFound).Inc()
		return nil, false, err
	case errors.Is(err, repository.ErrEventFull):
		metrics.RegistrationAttemptsTotal.WithLabelValues(metrics.ResultFull).Inc()
		logger.WithEventID(eventID).Warn("registration rejected, event at capacity",
			slog.String("user_id", userID))
		return nil, false, err
	case err != nil:
		metrics.RegistrationAttemptsTotal.WithLabelValues(metrics.ResultError).Inc()
		return nil, false, fmt.Errorf("register for event: %w", err)
	}

	if created {
		metrics.RegistrationAttemptsTotal.WithLabelValues(metrics.ResultCreated).Inc()
		logger.WithEventID(eventID).Info("registration created",
			slog.String("user_id", userID),
			slog.String("registration_id", reg.ID))
	} else {
		metrics.RegistrationAttemptsTotal.WithLabelValues(metrics.ResultDuplicate).Inc()
	}

	return reg, created, nil
}

// ListUserRegistrations returns the user's registrations joined to their
// events. Deleted events appear as nil pairs.
func (s *RegistrationService) ListUserRegistrations(ctx context.Context, userID string) ([]domain.UserRegistration, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	return s.ledger.ListRegistrationsForUser(ctx, userID), nil
}
