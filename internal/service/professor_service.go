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

// ProfessorService handles professor business logic. Ownership is checked
// directly against the professor's owning user.
type ProfessorService struct {
	professorRepo ProfessorStore
	userRepo      UserStore
	events        *EventPublisher
	log           zerolog.Logger
}

// NewProfessorService creates a new ProfessorService.
func NewProfessorService(professorRepo ProfessorStore, userRepo UserStore, events *EventPublisher, log zerolog.Logger) *ProfessorService {
	return &ProfessorService{
		professorRepo: professorRepo,
		userRepo:      userRepo,
		events:        events,
		log:           log.With().Str("component", "professor_service").Logger(),
	}
}

// Get returns a professor if the caller owns it.
func (s *ProfessorService) Get(ctx context.Context, id uuid.UUID, callerEmail string) (*model.Professor, error) {
	user, err := resolveUser(ctx, s.userRepo, callerEmail)
	if err != nil {
		return nil, err
	}

	professor, err := s.findProfessor(ctx, id)
	if err != nil {
		return nil, err
	}

	if professor.UserID != user.ID {
		return nil, ErrNotOwner
	}

	return professor, nil
}

// GetWithSubjects returns a professor the caller owns along with the IDs of
// its associated subjects. Ownership is checked once for both.
func (s *ProfessorService) GetWithSubjects(ctx context.Context, id uuid.UUID, callerEmail string) (*model.Professor, []uuid.UUID, error) {
	professor, err := s.Get(ctx, id, callerEmail)
	if err != nil {
		return nil, nil, err
	}

	subjectIDs, err := s.professorRepo.FindSubjectIDs(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("find subject ids: %w", err)
	}

	return professor, subjectIDs, nil
}

// SubjectIDs returns the IDs of the subjects associated with a professor the
// caller owns.
func (s *ProfessorService) SubjectIDs(ctx context.Context, id uuid.UUID, callerEmail string) ([]uuid.UUID, error) {
	_, subjectIDs, err := s.GetWithSubjects(ctx, id, callerEmail)
	return subjectIDs, err
}

// List returns all professors owned by the caller, in creation order.
func (s *ProfessorService) List(ctx context.Context, callerEmail string) ([]model.Professor, error) {
	user, err := resolveUser(ctx, s.userRepo, callerEmail)
	if err != nil {
		return nil, err
	}
	return s.professorRepo.FindAllByUserID(ctx, user.ID)
}

// Create persists a new professor owned by the caller, with no subject
// associations yet.
func (s *ProfessorService) Create(ctx context.Context, req *model.CreateProfessorRequest, callerEmail string) (*model.Professor, error) {
	user, err := resolveUser(ctx, s.userRepo, callerEmail)
	if err != nil {
		return nil, err
	}

	professor := &model.Professor{
		Name:   req.Name,
		Email:  req.Email,
		UserID: user.ID,
	}

	if err := s.professorRepo.Create(ctx, professor); err != nil {
		return nil, fmt.Errorf("create professor: %w", err)
	}

	s.events.Publish(ctx, user.ID, Event{Resource: "professor", Action: ActionCreated, ID: professor.ID})
	s.log.Info().Str("professor_id", professor.ID.String()).Msg("Professor created")
	return professor, nil
}

// Update applies a partial update to the professor's name and email.
func (s *ProfessorService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateProfessorRequest, callerEmail string) (*model.Professor, error) {
	user, err := resolveUser(ctx, s.userRepo, callerEmail)
	if err != nil {
		return nil, err
	}

	professor, err := s.findProfessor(ctx, id)
	if err != nil {
		return nil, err
	}

	if professor.UserID != user.ID {
		return nil, ErrNotOwner
	}

	if req.Name != nil {
		professor.Name = *req.Name
	}
	if req.Email != nil {
		professor.Email = *req.Email
	}

	if err := s.professorRepo.Update(ctx, professor); err != nil {
		return nil, fmt.Errorf("update professor: %w", err)
	}

	s.events.Publish(ctx, user.ID, Event{Resource: "professor", Action: ActionUpdated, ID: professor.ID})
	return professor, nil
}

// Delete removes a professor. Every subject that referenced it is detached in
// the same operation, so no subject is left listing a deleted professor.
func (s *ProfessorService) Delete(ctx context.Context, id uuid.UUID, callerEmail string) error {
	user, err := resolveUser(ctx, s.userRepo, callerEmail)
	if err != nil {
		return err
	}

	professor, err := s.findProfessor(ctx, id)
	if err != nil {
		return err
	}

	if professor.UserID != user.ID {
		return ErrNotOwner
	}

	if err := s.professorRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete professor: %w", err)
	}

	s.events.Publish(ctx, user.ID, Event{Resource: "professor", Action: ActionDeleted, ID: id})
	s.log.Info().Str("professor_id", id.String()).Msg("Professor deleted")
	return nil
}

func (s *ProfessorService) findProfessor(ctx context.Context, id uuid.UUID) (*model.Professor, error) {
	professor, err := s.professorRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfessorNotFound
		}
		return nil, fmt.Errorf("find professor: %w", err)
	}
	return professor, nil
}
