package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"vocabtrainer/internal/config"
	"vocabtrainer/internal/database"
	"vocabtrainer/internal/repository"
	"vocabtrainer/internal/scheduler"
	"vocabtrainer/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database (supports sqlite, postgres, mysql)
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	progressRepo := repository.NewProgressRepository(db)

	// Initialize the reminder mailer
	reminderService, err := service.NewReminderService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AppBaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize reminder service: %v", err)
	}

	// Start the hourly reminder job
	reminderScheduler := scheduler.New(userRepo, progressRepo, reminderService, cfg.ReminderStartHour, cfg.ReminderEndHour)
	reminderScheduler.Start()
	defer reminderScheduler.Stop()

	log.Printf("Reminder daemon started (window %d:00-%d:00)", cfg.ReminderStartHour, cfg.ReminderEndHour)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Reminder daemon shutting down...")
}
