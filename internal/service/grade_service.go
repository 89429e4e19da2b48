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

// GradeService handles grade business logic. Ownership is resolved through
// the grade's parent subject.
type GradeService struct {
	gradeRepo   GradeStore
	subjectRepo SubjectStore
	userRepo    UserStore
	events      *EventPublisher
	log         zerolog.Logger
}

// NewGradeService creates a new GradeService.
func NewGradeService(gradeRepo GradeStore, subjectRepo SubjectStore, userRepo UserStore, events *EventPublisher, log zerolog.Logger) *GradeService {
	return &GradeService{
		gradeRepo:   gradeRepo,
		subjectRepo: subjectRepo,
		userRepo:    userRepo,
		events:      events,
		log:         log.With().Str("component", "grade_service").Logger(),
	}
}

// Get returns a grade if the caller owns its parent subject.
func (s *GradeService) Get(ctx context.Context, id uuid.UUID, callerEmail string) (*model.Grade, error) {
	grade, _, err := s.authorizedGrade(ctx, id, callerEmail)
	return grade, err
}

// List returns all grades under a subject the caller owns.
func (s *GradeService) List(ctx context.Context, subjectID uuid.UUID, callerEmail string) ([]model.Grade, error) {
	if _, err := s.subjectOwner(ctx, subjectID, callerEmail); err != nil {
		return nil, err
	}
	return s.gradeRepo.FindAllBySubjectID(ctx, subjectID)
}

// Create persists a new grade under a subject the caller owns. The parent
// subject is fixed at creation and never changes.
func (s *GradeService) Create(ctx context.Context, req *model.CreateGradeRequest, callerEmail string) (*model.Grade, error) {
	user, err := s.subjectOwner(ctx, req.SubjectID, callerEmail)
	if err != nil {
		return nil, err
	}

	grade := &model.Grade{
		Name:      req.Name,
		Value:     *req.Value,
		SubjectID: req.SubjectID,
	}

	if err := s.gradeRepo.Create(ctx, grade); err != nil {
		return nil, fmt.Errorf("create grade: %w", err)
	}

	s.events.Publish(ctx, user.ID, Event{Resource: "grade", Action: ActionCreated, ID: grade.ID, SubjectID: &grade.SubjectID})
	s.log.Info().Str("grade_id", grade.ID.String()).Msg("Grade created")
	return grade, nil
}

// Update applies a partial update to the grade's name and value.
func (s *GradeService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateGradeRequest, callerEmail string) (*model.Grade, error) {
	grade, user, err := s.authorizedGrade(ctx, id, callerEmail)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		grade.Name = *req.Name
	}
	if req.Value != nil {
		grade.Value = *req.Value
	}

	if err := s.gradeRepo.Update(ctx, grade); err != nil {
		return nil, fmt.Errorf("update grade: %w", err)
	}

	s.events.Publish(ctx, user.ID, Event{Resource: "grade", Action: ActionUpdated, ID: grade.ID, SubjectID: &grade.SubjectID})
	return grade, nil
}

// Delete removes a grade.
func (s *GradeService) Delete(ctx context.Context, id uuid.UUID, callerEmail string) error {
	grade, user, err := s.authorizedGrade(ctx, id, callerEmail)
	if err != nil {
		return err
	}

	if err := s.gradeRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete grade: %w", err)
	}

	s.events.Publish(ctx, user.ID, Event{Resource: "grade", Action: ActionDeleted, ID: id, SubjectID: &grade.SubjectID})
	return nil
}

// authorizedGrade loads a grade and its parent subject, then checks that the
// caller owns the subject.
func (s *GradeService) authorizedGrade(ctx context.Context, id uuid.UUID, callerEmail string) (*model.Grade, *model.User, error) {
	user, err := resolveUser(ctx, s.userRepo, callerEmail)
	if err != nil {
		return nil, nil, err
	}

	grade, err := s.gradeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrGradeNotFound
		}
		return nil, nil, fmt.Errorf("find grade: %w", err)
	}

	subject, err := s.subjectRepo.FindByID(ctx, grade.SubjectID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrSubjectNotFound
		}
		return nil, nil, fmt.Errorf("find subject: %w", err)
	}

	if subject.UserID != user.ID {
		return nil, nil, ErrNotOwner
	}

	return grade, user, nil
}

// subjectOwner resolves the caller and checks they own the given subject.
func (s *GradeService) subjectOwner(ctx context.Context, subjectID uuid.UUID, callerEmail string) (*model.User, error) {
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
