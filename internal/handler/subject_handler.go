package handler

import (
	"net/http"

	"github.com/davsilvam/academic-api/internal/middleware"
	"github.com/davsilvam/academic-api/internal/model"
	"github.com/davsilvam/academic-api/internal/response"
	"github.com/davsilvam/academic-api/internal/service"
	"github.com/davsilvam/academic-api/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SubjectHandler handles subject endpoints.
type SubjectHandler struct {
	subjectService *service.SubjectService
}

// NewSubjectHandler creates a new SubjectHandler.
func NewSubjectHandler(subjectService *service.SubjectService) *SubjectHandler {
	return &SubjectHandler{subjectService: subjectService}
}

// Get godoc
// GET /api/v1/subjects/:id
func (h *SubjectHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	subject, err := h.subjectService.Get(c.Request.Context(), id, callerEmail(c))
	if err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"subject": subject})
}

// List godoc
// GET /api/v1/subjects
func (h *SubjectHandler) List(c *gin.Context) {
	subjects, err := h.subjectService.List(c.Request.Context(), callerEmail(c))
	if err != nil {
		failFromService(c, err)
		return
	}

	if subjects == nil {
		subjects = []model.Subject{}
	}

	response.Success(c, http.StatusOK, gin.H{"subjects": subjects})
}

// Create godoc
// POST /api/v1/subjects
func (h *SubjectHandler) Create(c *gin.Context) {
	var req model.CreateSubjectRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	subject, err := h.subjectService.Create(c.Request.Context(), &req, callerEmail(c))
	if err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"subject": subject})
}

// Update godoc
// PUT /api/v1/subjects/:id
func (h *SubjectHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateSubjectRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	subject, err := h.subjectService.Update(c.Request.Context(), id, &req, callerEmail(c))
	if err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"subject": subject})
}

// UpdateProfessors godoc
// PUT /api/v1/subjects/:id/professors
func (h *SubjectHandler) UpdateProfessors(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateSubjectProfessorsRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	subject, err := h.subjectService.UpdateProfessors(c.Request.Context(), id, &req, callerEmail(c))
	if err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"subject": subject})
}

// Delete godoc
// DELETE /api/v1/subjects/:id
func (h *SubjectHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.subjectService.Delete(c.Request.Context(), id, callerEmail(c)); err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "subject deleted successfully"})
}

// callerEmail returns the authenticated principal's email from the JWT claims.
// The auth middleware guarantees claims are present on protected routes.
func callerEmail(c *gin.Context) string {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return ""
	}
	return claims.Email
}
