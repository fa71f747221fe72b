package models

import "time"

// User represents a learner account in the system
type User struct {
	ID             int64
	Name           string
	Email          string
	NewWordsPerDay int // daily goal for new words introduced by a study plan
	ReminderHour   int // local hour (0-23) the user wants review reminders at
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
