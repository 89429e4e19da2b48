package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/davsilvam/academic-api/internal/config"
	"github.com/davsilvam/academic-api/internal/database"
	"github.com/davsilvam/academic-api/internal/handler"
	"github.com/davsilvam/academic-api/internal/logger"
	"github.com/davsilvam/academic-api/internal/repository"
	"github.com/davsilvam/academic-api/internal/router"
	"github.com/davsilvam/academic-api/internal/service"
	"github.com/davsilvam/academic-api/internal/validator"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Academic API")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	userRepo := repository.NewUserRepository(pool)
	subjectRepo := repository.NewSubjectRepository(pool)
	professorRepo := repository.NewProfessorRepository(pool)
	gradeRepo := repository.NewGradeRepository(pool)
	absenceRepo := repository.NewAbsenceRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	events := service.NewEventPublisher(rdb, log)
	authService := service.NewAuthService(cfg, rdb)
	userService := service.NewUserService(userRepo, log)
	subjectService := service.NewSubjectService(subjectRepo, userRepo, events, log)
	professorService := service.NewProfessorService(professorRepo, userRepo, events, log)
	gradeService := service.NewGradeService(gradeRepo, subjectRepo, userRepo, events, log)
	absenceService := service.NewAbsenceService(absenceRepo, subjectRepo, userRepo, events, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:      handler.NewAuthHandler(authService, userService),
		Subject:   handler.NewSubjectHandler(subjectService),
		Professor: handler.NewProfessorHandler(professorService),
		Grade:     handler.NewGradeHandler(gradeService),
		Absence:   handler.NewAbsenceHandler(absenceService),
		WS:        handler.NewWSHandler(rdb, log, cfg.AllowedOrigins),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
