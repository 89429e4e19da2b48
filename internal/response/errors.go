package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrEmailAlreadyUsed   ErrCode = "EMAIL_ALREADY_USED"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"
	ErrSessionInvalidated ErrCode = "SESSION_INVALIDATED"

	// ─── Authorization ─────────────────────────────────────────────────
	ErrForbidden ErrCode = "FORBIDDEN"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrUserNotFound      ErrCode = "USER_NOT_FOUND"
	ErrSubjectNotFound   ErrCode = "SUBJECT_NOT_FOUND"
	ErrProfessorNotFound ErrCode = "PROFESSOR_NOT_FOUND"
	ErrGradeNotFound     ErrCode = "GRADE_NOT_FOUND"
	ErrAbsenceNotFound   ErrCode = "ABSENCE_NOT_FOUND"

	// ─── Absence dates ─────────────────────────────────────────────────
	ErrAbsenceDateMalformed ErrCode = "ABSENCE_DATE_MALFORMED"
	ErrAbsenceDateFuture    ErrCode = "ABSENCE_DATE_IN_FUTURE"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Authentication ────────────────────────────────────────────────
	case ErrInvalidCredentials:
		return "Email or password is incorrect."
	case ErrEmailAlreadyUsed:
		return "This email is already in use."
	case ErrTokenRequired:
		return "An authentication token is required."
	case ErrTokenInvalid:
		return "The authentication token is not valid."
	case ErrSessionInvalidated:
		return "Your session has ended. Please log in again."

	// ─── Authorization ─────────────────────────────────────────────────
	case ErrForbidden:
		return "You are not allowed to access this resource."

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid ID format."
	case ErrInvalidPayload:
		return "Invalid request payload."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrUserNotFound:
		return "User not found."
	case ErrSubjectNotFound:
		return "Subject not found."
	case ErrProfessorNotFound:
		return "Professor not found."
	case ErrGradeNotFound:
		return "Grade not found."
	case ErrAbsenceNotFound:
		return "Absence not found."

	// ─── Absence dates ─────────────────────────────────────────────────
	case ErrAbsenceDateMalformed:
		return "Invalid date format, please use dd/mm/yyyy."
	case ErrAbsenceDateFuture:
		return "Absence date cannot be in the future."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
