package service

import "errors"

// Domain errors shared across services. Handlers map these to typed response
// codes; everything else surfaces as an internal error.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrSubjectNotFound   = errors.New("subject not found")
	ErrProfessorNotFound = errors.New("professor not found")
	ErrGradeNotFound     = errors.New("grade not found")
	ErrAbsenceNotFound   = errors.New("absence not found")

	// ErrNotOwner means the acting user does not own the target resource
	// (or, for grades and absences, its parent subject).
	ErrNotOwner = errors.New("user not allowed to access this resource")

	ErrEmailAlreadyUsed   = errors.New("email already used")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrAbsenceDateMalformed = errors.New("invalid absence date format")
	ErrAbsenceDateFuture    = errors.New("absence date cannot be in the future")
)
