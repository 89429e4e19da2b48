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

// GradeHandler handles grade endpoints.
type GradeHandler struct {
	gradeService *service.GradeService
}

// NewGradeHandler creates a new GradeHandler.
func NewGradeHandler(gradeService *service.GradeService) *GradeHandler {
	return &GradeHandler{gradeService: gradeService}
}

// Get godoc
// GET /api/v1/grades/:id
func (h *GradeHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	grade, err := h.gradeService.Get(c.Request.Context(), id, callerEmail(c))
	if err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"grade": grade})
}

// ListBySubject godoc
// GET /api/v1/subjects/:id/grades
func (h *GradeHandler) ListBySubject(c *gin.Context) {
	subjectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	grades, err := h.gradeService.List(c.Request.Context(), subjectID, callerEmail(c))
	if err != nil {
		failFromService(c, err)
		return
	}

	if grades == nil {
		grades = []model.Grade{}
	}

	response.Success(c, http.StatusOK, gin.H{"grades": grades})
}

// Create godoc
// POST /api/v1/grades
func (h *GradeHandler) Create(c *gin.Context) {
	var req model.CreateGradeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	grade, err := h.gradeService.Create(c.Request.Context(), &req, callerEmail(c))
	if err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"grade": grade})
}

// Update godoc
// PUT /api/v1/grades/:id
func (h *GradeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateGradeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	grade, err := h.gradeService.Update(c.Request.Context(), id, &req, callerEmail(c))
	if err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"grade": grade})
}

// Delete godoc
// DELETE /api/v1/grades/:id
func (h *GradeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.gradeService.Delete(c.Request.Context(), id, callerEmail(c)); err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "grade deleted successfully"})
}
