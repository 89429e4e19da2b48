package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/davsilvam/academic-api/internal/config"
	"github.com/davsilvam/academic-api/internal/database"
	"github.com/davsilvam/academic-api/internal/logger"
	"github.com/davsilvam/academic-api/internal/repository"
	"github.com/davsilvam/academic-api/internal/service"
	"golang.org/x/term"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Initialize Services ───────────────────────────────────────────
	userRepo := repository.NewUserRepository(pool)
	userService := service.NewUserService(userRepo, log)
	authService := service.NewAuthService(cfg, nil)

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create New User ===")

	// Name
	fmt.Print("Enter Name: ")
	name, _ := reader.ReadString('\n')
	name = strings.TrimSpace(name)
	if name == "" {
		fmt.Println("Error: Name is required")
		return
	}

	// Email
	fmt.Print("Enter Email: ")
	email, _ := reader.ReadString('\n')
	email = strings.TrimSpace(email)
	if email == "" {
		fmt.Println("Error: Email is required")
		return
	}

	// Password
	fmt.Print("Enter Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nError reading password")
		return
	}
	password := string(bytePassword)
	fmt.Println() // Newline after password input
	if len(password) < 6 {
		fmt.Println("Error: Password must be at least 6 characters")
		return
	}

	hash, err := authService.HashPassword(password)
	if err != nil {
		fmt.Printf("Error: hash password: %v\n", err)
		return
	}

	user, err := userService.Register(ctx, name, email, hash)
	if err != nil {
		fmt.Printf("Error: create user: %v\n", err)
		return
	}

	fmt.Printf("User created: %s <%s> (id %s)\n", user.Name, user.Email, user.ID)
}
