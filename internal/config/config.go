package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DatabaseType   string // sqlite, postgres or mysql
	DatabasePath   string // sqlite file path
	DatabaseURL    string // postgres/mysql connection string
	MigrationsPath string

	SessionWordLimit int // maximum words presented in one study session
	NewWordsPerDay   int // default daily-plan budget for unseen words

	ReminderStartHour int // reminders are only sent inside this local-hour window
	ReminderEndHour   int

	AWSRegion    string
	SESFromEmail string // empty disables the reminder mailer
	SESFromName  string
	AppBaseURL   string
}

// Load reads configuration from a .env file (if present) and environment
// variables with sensible defaults
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	return &Config{
		DatabaseType:   getEnv("DB_TYPE", "sqlite"),
		DatabasePath:   getEnv("DB_PATH", "./vocabtrainer.db"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),

		SessionWordLimit: getEnvInt("SESSION_WORD_LIMIT", 20),
		NewWordsPerDay:   getEnvInt("NEW_WORDS_PER_DAY", 10),

		ReminderStartHour: getEnvInt("REMINDER_START_HOUR", 8),
		ReminderEndHour:   getEnvInt("REMINDER_END_HOUR", 22),

		AWSRegion:    getEnv("AWS_REGION", "eu-west-1"),
		SESFromEmail: getEnv("SES_FROM_EMAIL", ""),
		SESFromName:  getEnv("SES_FROM_NAME", "VocabTrainer"),
		AppBaseURL:   getEnv("APP_BASE_URL", "http://localhost:8080"),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: invalid value for %s: %q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}
