package handler

import (
	"net/http"

	"github.com/davsilvam/academic-api/internal/response"
	"github.com/gin-gonic/gin"
)

// Health godoc
// GET /health
func Health(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"status": "ok"})
}
