// File: /main.go
package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"pulsenet-api/config"
	"pulsenet-api/database"
	"pulsenet-api/jobs"
	"pulsenet-api/middleware"
	"pulsenet-api/routes"
	"pulsenet-api/services"
)

func main() {
	cfg := config.Load()

	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db, cfg.SearchLanguage); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	var emailService *services.EmailService
	if cfg.SMTPHost != "" {
		emailService = services.NewEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.FromEmail)
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.SecurityHeaders())

	routes.SetupRoutes(r, db, cfg, emailService)

	cleanupJob := jobs.NewMediaCleanupJob(db, cfg.UploadDir)
	cleanupJob.Start()
	defer cleanupJob.Stop()

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
