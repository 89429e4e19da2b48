package model

import (
	"time"

	"github.com/google/uuid"
)

// Grade is a scored record under a subject. SubjectID never changes after
// creation.
type Grade struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Value     float64   `json:"value"`
	SubjectID uuid.UUID `json:"subject_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateGradeRequest is the payload for creating a grade.
// Value is a pointer so an explicit 0 passes the required check.
type CreateGradeRequest struct {
	Name      string    `json:"name" binding:"required,min=1,max=100"`
	Value     *float64  `json:"value" binding:"required"`
	SubjectID uuid.UUID `json:"subject_id" binding:"required"`
}

// UpdateGradeRequest is the payload for a partial grade update.
type UpdateGradeRequest struct {
	Name  *string  `json:"name" binding:"omitempty,min=1,max=100"`
	Value *float64 `json:"value"`
}
