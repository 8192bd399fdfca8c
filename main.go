package main

import (
	"context"
	"log"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"academia-backend/internal/api"
	"academia-backend/internal/auth"
	"academia-backend/internal/config"
	"academia-backend/internal/database"
)

func main() {
	cfg := config.Load()

	// Initialize database
	log.Printf("Initializing database at %s", cfg.DatabasePath)
	db, err := database.Open(database.Config{Path: cfg.DatabasePath})
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	admins := database.NewAdminRepo(db)
	sessions := database.NewSessionRepo(db, cfg.SessionSecret)
	members := database.NewMemberRepo(db)

	// Drop sessions left over from a previous run
	if n, err := sessions.DeleteExpired(context.Background()); err != nil {
		log.Printf("Warning: failed to purge expired sessions: %v", err)
	} else if n > 0 {
		log.Printf("Purged %d expired sessions", n)
	}

	// Create default admin if no admins exist
	if err := createDefaultAdminIfNeeded(admins); err != nil {
		log.Printf("Warning: failed to create default admin: %v", err)
	}

	authSvc := auth.NewService(admins, sessions, cfg.SessionTTL)

	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// API routes
	api.RegisterRoutes(e.Group("/api"), api.NewHandlers(cfg, members, authSvc))

	// Serve the static frontend when a public/ directory is present
	if _, err := os.Stat("public"); err == nil {
		e.Static("/", "public")
	}

	log.Printf("Starting academia backend on port %s", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

// createDefaultAdminIfNeeded seeds the fixed default admin when the admins
// table is empty
func createDefaultAdminIfNeeded(admins *database.AdminRepo) error {
	count, err := admins.Count(context.Background())
	if err != nil {
		return err
	}

	if count > 0 {
		return nil // Admin already exists
	}

	log.Println("Creating default admin (admin/admin123) - CHANGE THIS PASSWORD!")

	senhaHash, err := auth.HashPassword("admin123")
	if err != nil {
		return err
	}

	return admins.Create(context.Background(), "admin", senhaHash)
}
