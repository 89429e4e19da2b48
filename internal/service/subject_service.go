package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/davsilvam/academic-api/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// SubjectService handles subject business logic. Every operation resolves the
// acting user from the caller's email and enforces ownership before touching
// the target subject.
type SubjectService struct {
	subjectRepo SubjectStore
	userRepo    UserStore
	events      *EventPublisher
	log         zerolog.Logger
}

// NewSubjectService creates a new SubjectService.
func NewSubjectService(subjectRepo SubjectStore, userRepo UserStore, events *EventPublisher, log zerolog.Logger) *SubjectService {
	return &SubjectService{
		subjectRepo: subjectRepo,
		userRepo:    userRepo,
		events:      events,
		log:         log.With().Str("component", "subject_service").Logger(),
	}
}

// Get returns a subject if the caller owns it.
func (s *SubjectService) Get(ctx context.Context, id uuid.UUID, callerEmail string) (*model.Subject, error) {
	user, err := resolveUser(ctx, s.userRepo, callerEmail)
	if err != nil {
		return nil, err
	}

	subject, err := s.findSubject(ctx, id)
	if err != nil {
		return nil, err
	}

	if subject.UserID != user.ID {
		return nil, ErrNotOwner
	}

	return subject, nil
}

// List returns all subjects owned by the caller, in creation order.
func (s *SubjectService) List(ctx context.Context, callerEmail string) ([]model.Subject, error) {
	user, err := resolveUser(ctx, s.userRepo, callerEmail)
	if err != nil {
		return nil, err
	}
	return s.subjectRepo.FindAllByUserID(ctx, user.ID)
}

// Create persists a new subject owned by the caller and attaches the given
// professors. Unknown professor IDs are silently ignored.
func (s *SubjectService) Create(ctx context.Context, req *model.CreateSubjectRequest, callerEmail string) (*model.Subject, error) {
	user, err := resolveUser(ctx, s.userRepo, callerEmail)
	if err != nil {
		return nil, err
	}

	subject := &model.Subject{
		Name:        req.Name,
		Description: req.Description,
		UserID:      user.ID,
	}

	if err := s.subjectRepo.Create(ctx, subject, req.ProfessorIDs); err != nil {
		return nil, fmt.Errorf("create subject: %w", err)
	}

	s.events.Publish(ctx, user.ID, Event{Resource: "subject", Action: ActionCreated, ID: subject.ID})
	s.log.Info().Str("subject_id", subject.ID.String()).Msg("Subject created")
	return subject, nil
}

// Update applies a partial update to the subject's name and description.
// Absent fields leave the stored values unchanged.
func (s *SubjectService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateSubjectRequest, callerEmail string) (*model.Subject, error) {
	user, err := resolveUser(ctx, s.userRepo, callerEmail)
	if err != nil {
		return nil, err
	}

	subject, err := s.findSubject(ctx, id)
	if err != nil {
		return nil, err
	}

	if subject.UserID != user.ID {
		return nil, ErrNotOwner
	}

	if req.Name != nil {
		subject.Name = *req.Name
	}
	if req.Description != nil {
		subject.Description = *req.Description
	}

	if err := s.subjectRepo.Update(ctx, subject); err != nil {
		return nil, fmt.Errorf("update subject: %w", err)
	}

	s.events.Publish(ctx, user.ID, Event{Resource: "subject", Action: ActionUpdated, ID: subject.ID})
	return subject, nil
}

// UpdateProfessors replaces the subject's professor association set. Every
// current link is detached before the new set (unknown IDs ignored) is
// attached; professors in neither set are untouched.
func (s *SubjectService) UpdateProfessors(ctx context.Context, id uuid.UUID, req *model.UpdateSubjectProfessorsRequest, callerEmail string) (*model.Subject, error) {
	user, err := resolveUser(ctx, s.userRepo, callerEmail)
	if err != nil {
		return nil, err
	}

	subject, err := s.findSubject(ctx, id)
	if err != nil {
		return nil, err
	}

	if subject.UserID != user.ID {
		return nil, ErrNotOwner
	}

	if err := s.subjectRepo.ReplaceProfessors(ctx, id, req.ProfessorIDs); err != nil {
		return nil, fmt.Errorf("replace professors: %w", err)
	}

	// Reload so the response reflects the resolved association set.
	subject, err = s.findSubject(ctx, id)
	if err != nil {
		return nil, err
	}

	s.events.Publish(ctx, user.ID, Event{Resource: "subject", Action: ActionUpdated, ID: subject.ID})
	return subject, nil
}

// Delete removes a subject. Professor associations are detached and the
// subject's grades and absences are removed along with it.
func (s *SubjectService) Delete(ctx context.Context, id uuid.UUID, callerEmail string) error {
	user, err := resolveUser(ctx, s.userRepo, callerEmail)
	if err != nil {
		return err
	}

	subject, err := s.findSubject(ctx, id)
	if err != nil {
		return err
	}

	if subject.UserID != user.ID {
		return ErrNotOwner
	}

	if err := s.subjectRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete subject: %w", err)
	}

	s.events.Publish(ctx, user.ID, Event{Resource: "subject", Action: ActionDeleted, ID: id})
	s.log.Info().Str("subject_id", id.String()).Msg("Subject deleted")
	return nil
}

func (s *SubjectService) findSubject(ctx context.Context, id uuid.UUID) (*model.Subject, error) {
	subject, err := s.subjectRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubjectNotFound
		}
		return nil, fmt.Errorf("find subject: %w", err)
	}
	return subject, nil
}
