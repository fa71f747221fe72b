package models

import "time"

// StudySession represents one sitting of reviews for a user
type StudySession struct {
	ID           int64
	PublicID     string // uuid exposed to callers instead of the row id
	UserID       int64
	StartedAt    time.Time
	CompletedAt  *time.Time
	TotalWords   int
	CorrectWords int
}

// IsCompleted checks if the session has been finalized
func (s *StudySession) IsCompleted() bool {
	return s.CompletedAt != nil
}

// ReviewAttempt represents a single answered word within a study session
type ReviewAttempt struct {
	ID             int64
	StudySessionID int64
	WordID         int64
	Quality        int
	IsCorrect      bool
	ElapsedMs      int
	AttemptedAt    time.Time
}

// SessionSummary combines a session with its accuracy for reporting
type SessionSummary struct {
	Session  StudySession
	Accuracy float64
}
