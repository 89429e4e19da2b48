package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/davsilvam/academic-api/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// AbsenceService handles absence business logic. Ownership is resolved
// through the absence's parent subject, and dates are validated against the
// dd/mm/yyyy format and the no-future rule.
type AbsenceService struct {
	absenceRepo AbsenceStore
	subjectRepo SubjectStore
	userRepo    UserStore
	events      *EventPublisher
	log         zerolog.Logger

	// now is swappable for tests.
	now func() time.Time
}

// NewAbsenceService creates a new AbsenceService.
func NewAbsenceService(absenceRepo AbsenceStore, subjectRepo SubjectStore, userRepo UserStore, events *EventPublisher, log zerolog.Logger) *AbsenceService {
	return &AbsenceService{
		absenceRepo: absenceRepo,
		subjectRepo: subjectRepo,
		userRepo:    userRepo,
		events:      events,
		log:         log.With().Str("component", "absence_service").Logger(),
		now:         time.Now,
	}
}

// Get returns an absence if the caller owns its parent subject.
func (s *AbsenceService) Get(ctx context.Context, id uuid.UUID, callerEmail string) (*model.Absence, error) {
	absence, _, err := s.authorizedAbsence(ctx, id, callerEmail)
	return absence, err
}

// List returns all absences under a subject the caller owns.
func (s *AbsenceService) List(ctx context.Context, subjectID uuid.UUID, callerEmail string) ([]model.Absence, error) {
	if _, err := s.subjectOwner(ctx, subjectID, callerEmail); err != nil {
		return nil, err
	}
	return s.absenceRepo.FindAllBySubjectID(ctx, subjectID)
}

// Create persists a new absence under a subject the caller owns. The date
// must parse as dd/mm/yyyy and must not be after today.
func (s *AbsenceService) Create(ctx context.Context, req *model.CreateAbsenceRequest, callerEmail string) (*model.Absence, error) {
	user, err := s.subjectOwner(ctx, req.SubjectID, callerEmail)
	if err != nil {
		return nil, err
	}

	date, err := s.parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	absence := &model.Absence{
		Date:      date,
		Amount:    *req.Amount,
		SubjectID: req.SubjectID,
	}

	if err := s.absenceRepo.Create(ctx, absence); err != nil {
		return nil, fmt.Errorf("create absence: %w", err)
	}

	s.events.Publish(ctx, user.ID, Event{Resource: "absence", Action: ActionCreated, ID: absence.ID, SubjectID: &absence.SubjectID})
	s.log.Info().Str("absence_id", absence.ID.String()).Msg("Absence created")
	return absence, nil
}

// Update applies a partial update. Date and amount are each independently
// optional; a present date goes through the same validation as on create.
func (s *AbsenceService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateAbsenceRequest, callerEmail string) (*model.Absence, error) {
	absence, user, err := s.authorizedAbsence(ctx, id, callerEmail)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		date, err := s.parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		absence.Date = date
	}
	if req.Amount != nil {
		absence.Amount = *req.Amount
	}

	if err := s.absenceRepo.Update(ctx, absence); err != nil {
		return nil, fmt.Errorf("update absence: %w", err)
	}

	s.events.Publish(ctx, user.ID, Event{Resource: "absence", Action: ActionUpdated, ID: absence.ID, SubjectID: &absence.SubjectID})
	return absence, nil
}

// Delete removes an absence.
func (s *AbsenceService) Delete(ctx context.Context, id uuid.UUID, callerEmail string) error {
	absence, user, err := s.authorizedAbsence(ctx, id, callerEmail)
	if err != nil {
		return err
	}

	if err := s.absenceRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete absence: %w", err)
	}

	s.events.Publish(ctx, user.ID, Event{Resource: "absence", Action: ActionDeleted, ID: id, SubjectID: &absence.SubjectID})
	return nil
}

// parseDate validates the dd/mm/yyyy wire format and rejects dates after
// today. The comparison is between calendar dates, both normalized to UTC
// midnight, so today is accepted regardless of the server's timezone.
func (s *AbsenceService) parseDate(raw string) (time.Time, error) {
	date, err := time.Parse(model.AbsenceDateLayout, raw)
	if err != nil {
		return time.Time{}, ErrAbsenceDateMalformed
	}
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.After(today) {
		return time.Time{}, ErrAbsenceDateFuture
	}
	return date, nil
}

// authorizedAbsence loads an absence and its parent subject, then checks that
// the caller owns the subject.
func (s *AbsenceService) authorizedAbsence(ctx context.Context, id uuid.UUID, callerEmail string) (*model.Absence, *model.User, error) {
	user, err := resolveUser(ctx, s.userRepo, callerEmail)
	if err != nil {
		return nil, nil, err
	}

	absence, err := s.absenceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrAbsenceNotFound
		}
		return nil, nil, fmt.Errorf("find absence: %w", err)
	}

	subject, err := s.subjectRepo.FindByID(ctx, absence.SubjectID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrSubjectNotFound
		}
		return nil, nil, fmt.Errorf("find subject: %w", err)
	}

	if subject.UserID != user.ID {
		return nil, nil, ErrNotOwner
	}

	return absence, user, nil
}

// subjectOwner resolves the caller and checks they own the given subject.
func (s *AbsenceService) subjectOwner(ctx context.Context, subjectID uuid.UUID, callerEmail string) (*model.User, error) {
	user, err := resolveUser(ctx, s.userRepo, callerEmail)
	if err != nil {
		return nil, err
	}

	subject, err := s.subjectRepo.FindByID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubjectNotFound
		}
		return nil, fmt.Errorf("find subject: %w", err)
	}

	if subject.UserID != user.ID {
		return nil, ErrNotOwner
	}
	return user, nil
}
