package handler

import (
	"net/http"

	"github.com/davsilvam/academic-api/internal/model"
	"github.com/davsilvam/academic-api/internal/response"
	"github.com/davsilvam/academic-api/internal/service"
	"github.com/davsilvam/academic-api/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AbsenceHandler handles absence endpoints.
type AbsenceHandler struct {
	absenceService *service.AbsenceService
}

// NewAbsenceHandler creates a new AbsenceHandler.
func NewAbsenceHandler(absenceService *service.AbsenceService) *AbsenceHandler {
	return &AbsenceHandler{absenceService: absenceService}
}

// Get godoc
// GET /api/v1/absences/:id
func (h *AbsenceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	absence, err := h.absenceService.Get(c.Request.Context(), id, callerEmail(c))
	if err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"absence": absence.Response()})
}

// ListBySubject godoc
// GET /api/v1/subjects/:id/absences
func (h *AbsenceHandler) ListBySubject(c *gin.Context) {
	subjectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	absences, err := h.absenceService.List(c.Request.Context(), subjectID, callerEmail(c))
	if err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"absences": model.AbsenceResponses(absences)})
}

// Create godoc
// POST /api/v1/absences
func (h *AbsenceHandler) Create(c *gin.Context) {
	var req model.CreateAbsenceRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	absence, err := h.absenceService.Create(c.Request.Context(), &req, callerEmail(c))
	if err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"absence": absence.Response()})
}

// Update godoc
// PUT /api/v1/absences/:id
func (h *AbsenceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateAbsenceRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	absence, err := h.absenceService.Update(c.Request.Context(), id, &req, callerEmail(c))
	if err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"absence": absence.Response()})
}

// Delete godoc
// DELETE /api/v1/absences/:id
func (h *AbsenceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.absenceService.Delete(c.Request.Context(), id, callerEmail(c)); err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "absence deleted successfully"})
}
