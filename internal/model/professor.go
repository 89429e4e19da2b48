package model

import (
	"time"

	"github.com/google/uuid"
)

// Professor is owned by a user and may be associated with many subjects.
// The reverse side of the association is derived by query, never stored here.
type Professor struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateProfessorRequest is the payload for creating a professor.
type CreateProfessorRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=100"`
	Email string `json:"email" binding:"required,email"`
}

// UpdateProfessorRequest is the payload for a partial professor update.
type UpdateProfessorRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=2,max=100"`
	Email *string `json:"email" binding:"omitempty,email"`
}
