package handler

import (
	"errors"
	"net/http"

	"github.com/davsilvam/academic-api/internal/response"
	"github.com/davsilvam/academic-api/internal/service"
	"github.com/gin-gonic/gin"
)

// failFromService maps a service error to its HTTP status and response code.
// Unknown errors surface as an internal error.
func failFromService(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		// The authenticated principal no longer resolves to an account.
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
	case errors.Is(err, service.ErrSubjectNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrSubjectNotFound)
	case errors.Is(err, service.ErrProfessorNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrProfessorNotFound)
	case errors.Is(err, service.ErrGradeNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrGradeNotFound)
	case errors.Is(err, service.ErrAbsenceNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrAbsenceNotFound)
	case errors.Is(err, service.ErrNotOwner):
		response.Fail(c, http.StatusForbidden, response.ErrForbidden)
	case errors.Is(err, service.ErrEmailAlreadyUsed):
		response.Fail(c, http.StatusConflict, response.ErrEmailAlreadyUsed)
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
	case errors.Is(err, service.ErrAbsenceDateMalformed):
		response.Fail(c, http.StatusBadRequest, response.ErrAbsenceDateMalformed)
	case errors.Is(err, service.ErrAbsenceDateFuture):
		response.Fail(c, http.StatusBadRequest, response.ErrAbsenceDateFuture)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
