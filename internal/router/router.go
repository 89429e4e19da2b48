package router

import (
	"time"

	"github.com/davsilvam/academic-api/internal/config"
	"github.com/davsilvam/academic-api/internal/handler"
	"github.com/davsilvam/academic-api/internal/middleware"
	"github.com/davsilvam/academic-api/internal/response"
	"github.com/davsilvam/academic-api/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth      *handler.AuthHandler
	Subject   *handler.SubjectHandler
	Professor *handler.ProfessorHandler
	Grade     *handler.GradeHandler
	Absence   *handler.AbsenceHandler
	WS        *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", handler.Health)

	// ─── 1. Auth Group (register/login public) ─────────────────────────
	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/register", handlers.Auth.Register)
		auth.POST("/login", handlers.Auth.Login)

		// Authenticated profile routes
		auth.POST("/logout", middleware.RequireAuth(authService), handlers.Auth.Logout)
		auth.GET("/me", middleware.RequireAuth(authService), middleware.CheckSession(authService), handlers.Auth.Me)
	}

	// ─── 2. Records Group (JWT + active session) ───────────────────────
	api := router.Group("/api/v1")
	api.Use(
		middleware.RequireAuth(authService),
		middleware.CheckSession(authService),
	)
	{
		// Subjects
		api.GET("/subjects", handlers.Subject.List)
		api.POST("/subjects", handlers.Subject.Create)
		api.GET("/subjects/:id", handlers.Subject.Get)
		api.PUT("/subjects/:id", handlers.Subject.Update)
		api.PUT("/subjects/:id/professors", handlers.Subject.UpdateProfessors)
		api.DELETE("/subjects/:id", handlers.Subject.Delete)

		// Child records, scoped under their subject
		api.GET("/subjects/:id/grades", handlers.Grade.ListBySubject)
		api.GET("/subjects/:id/absences", handlers.Absence.ListBySubject)

		// Professors
		api.GET("/professors", handlers.Professor.List)
		api.POST("/professors", handlers.Professor.Create)
		api.GET("/professors/:id", handlers.Professor.Get)
		api.PUT("/professors/:id", handlers.Professor.Update)
		api.DELETE("/professors/:id", handlers.Professor.Delete)

		// Grades
		api.POST("/grades", handlers.Grade.Create)
		api.GET("/grades/:id", handlers.Grade.Get)
		api.PUT("/grades/:id", handlers.Grade.Update)
		api.DELETE("/grades/:id", handlers.Grade.Delete)

		// Absences
		api.POST("/absences", handlers.Absence.Create)
		api.GET("/absences/:id", handlers.Absence.Get)
		api.PUT("/absences/:id", handlers.Absence.Update)
		api.DELETE("/absences/:id", handlers.Absence.Delete)
	}

	// ─── 3. WebSocket Group (token via ?token=) ────────────────────────
	ws := router.Group("/ws/v1")
	ws.Use(
		middleware.RequireAuth(authService),
		middleware.CheckSession(authService),
	)
	{
		ws.GET("/events", handlers.WS.EventsStream)
	}

	return router
}
