package model

import (
	"time"

	"github.com/google/uuid"
)

// Subject is a course owned by a user. Professors holds the associated
// professors, derived from the subject_professors join table.
type Subject struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	UserID      uuid.UUID   `json:"user_id"`
	Professors  []Professor `json:"professors"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// CreateSubjectRequest is the payload for creating a subject.
// Unknown professor IDs are silently ignored.
type CreateSubjectRequest struct {
	Name         string      `json:"name" binding:"required,min=2,max=100"`
	Description  string      `json:"description" binding:"max=500"`
	ProfessorIDs []uuid.UUID `json:"professor_ids"`
}

// UpdateSubjectRequest is the payload for a partial subject update.
// Nil fields leave the stored value unchanged.
type UpdateSubjectRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

// UpdateSubjectProfessorsRequest replaces the full professor association set.
// An empty list detaches every professor.
type UpdateSubjectProfessorsRequest struct {
	ProfessorIDs []uuid.UUID `json:"professor_ids"`
}
