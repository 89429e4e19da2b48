package service

import (
	"context"

	"github.com/davsilvam/academic-api/internal/model"
	"github.com/google/uuid"
)

// Store interfaces consumed by the services. The pgx implementations live in
// internal/repository; tests substitute in-memory fakes. Missing rows are
// reported as pgx.ErrNoRows by the real implementations, and the services
// translate them into domain errors.

// UserStore persists accounts.
type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// SubjectStore persists subjects and their professor associations.
type SubjectStore interface {
	Create(ctx context.Context, s *model.Subject, professorIDs []uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Subject, error)
	FindAllByUserID(ctx context.Context, userID uuid.UUID) ([]model.Subject, error)
	Update(ctx context.Context, s *model.Subject) error
	ReplaceProfessors(ctx context.Context, subjectID uuid.UUID, professorIDs []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProfessorStore persists professors.
type ProfessorStore interface {
	Create(ctx context.Context, p *model.Professor) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Professor, error)
	FindAllByUserID(ctx context.Context, userID uuid.UUID) ([]model.Professor, error)
	FindSubjectIDs(ctx context.Context, professorID uuid.UUID) ([]uuid.UUID, error)
	Update(ctx context.Context, p *model.Professor) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// GradeStore persists grades.
type GradeStore interface {
	Create(ctx context.Context, g *model.Grade) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Grade, error)
	FindAllBySubjectID(ctx context.Context, subjectID uuid.UUID) ([]model.Grade, error)
	Update(ctx context.Context, g *model.Grade) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AbsenceStore persists absences.
type AbsenceStore interface {
	Create(ctx context.Context, a *model.Absence) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Absence, error)
	FindAllBySubjectID(ctx context.Context, subjectID uuid.UUID) ([]model.Absence, error)
	Update(ctx context.Context, a *model.Absence) error
	Delete(ctx context.Context, id uuid.UUID) error
}
