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

// ProfessorHandler handles professor endpoints.
type ProfessorHandler struct {
	professorService *service.ProfessorService
}

// NewProfessorHandler creates a new ProfessorHandler.
func NewProfessorHandler(professorService *service.ProfessorService) *ProfessorHandler {
	return &ProfessorHandler{professorService: professorService}
}

// Get godoc
// GET /api/v1/professors/:id
func (h *ProfessorHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	professor, subjectIDs, err := h.professorService.GetWithSubjects(c.Request.Context(), id, callerEmail(c))
	if err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"professor":   professor,
		"subject_ids": subjectIDs,
	})
}

// List godoc
// GET /api/v1/professors
func (h *ProfessorHandler) List(c *gin.Context) {
	professors, err := h.professorService.List(c.Request.Context(), callerEmail(c))
	if err != nil {
		failFromService(c, err)
		return
	}

	if professors == nil {
		professors = []model.Professor{}
	}

	response.Success(c, http.StatusOK, gin.H{"professors": professors})
}

// Create godoc
// POST /api/v1/professors
func (h *ProfessorHandler) Create(c *gin.Context) {
	var req model.CreateProfessorRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	professor, err := h.professorService.Create(c.Request.Context(), &req, callerEmail(c))
	if err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"professor": professor})
}

// Update godoc
// PUT /api/v1/professors/:id
func (h *ProfessorHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateProfessorRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	professor, err := h.professorService.Update(c.Request.Context(), id, &req, callerEmail(c))
	if err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"professor": professor})
}

// Delete godoc
// DELETE /api/v1/professors/:id
func (h *ProfessorHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.professorService.Delete(c.Request.Context(), id, callerEmail(c)); err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "professor deleted successfully"})
}
