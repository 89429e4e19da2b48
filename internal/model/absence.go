package model

import (
	"time"

	"github.com/google/uuid"
)

// AbsenceDateLayout is the wire format for absence dates (dd/mm/yyyy).
const AbsenceDateLayout = "02/01/2006"

// Absence counts missed classes for a subject on a given date.
// SubjectID never changes after creation.
type Absence struct {
	ID        uuid.UUID `json:"id"`
	Date      time.Time `json:"-"`
	Amount    int       `json:"amount"`
	SubjectID uuid.UUID `json:"subject_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AbsenceResponse is the API shape of an absence, with the date rendered
// in the dd/mm/yyyy wire format.
type AbsenceResponse struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	Amount    int       `json:"amount"`
	SubjectID uuid.UUID `json:"subject_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Response converts an absence to its API shape.
func (a *Absence) Response() AbsenceResponse {
	return AbsenceResponse{
		ID:        a.ID,
		Date:      a.Date.Format(AbsenceDateLayout),
		Amount:    a.Amount,
		SubjectID: a.SubjectID,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// AbsenceResponses converts a slice of absences to their API shape.
func AbsenceResponses(absences []Absence) []AbsenceResponse {
	out := make([]AbsenceResponse, len(absences))
	for i := range absences {
		out[i] = absences[i].Response()
	}
	return out
}

// CreateAbsenceRequest is the payload for creating an absence.
// Amount is a pointer so an explicit 0 passes the required check.
type CreateAbsenceRequest struct {
	Date      string    `json:"date" binding:"required"`
	Amount    *int      `json:"amount" binding:"required,gte=0"`
	SubjectID uuid.UUID `json:"subject_id" binding:"required"`
}

// UpdateAbsenceRequest is the payload for a partial absence update.
// Date and amount are each independently optional.
type UpdateAbsenceRequest struct {
	Date   *string `json:"date"`
	Amount *int    `json:"amount" binding:"omitempty,gte=0"`
}
