package models

import "time"

// ReviewSchedule holds the spaced-repetition state for one (user, word) pair.
// The interval/ease/repetitions fields are owned by the scheduler; the
// bookkeeping fields (LastStudied, counters, MasteryLevel) are owned by the
// review service and updated alongside each schedule write.
type ReviewSchedule struct {
	ID             int64
	UserID         int64
	WordID         int64
	Interval       int     // days until the next review
	EaseFactor     float64 // growth multiplier, never below 1.3
	Repetitions    int     // consecutive successful reviews since the last failure
	NextReviewDate time.Time
	LastStudied    *time.Time // nil before the first review is persisted
	TotalReviews   int
	CorrectReviews int
	MasteryLevel   int // 0-100 application-level summary
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ReviewResult is the outcome of a single recall attempt. It is an input to
// the scheduler and is not persisted as its own entity.
type ReviewResult struct {
	Quality   int  // 0-5 recall quality; 0 = total blackout, 5 = perfect
	IsCorrect bool // authoritative for the success/failure branch
}

// Accuracy returns the fraction of correct reviews over all reviews
func (s *ReviewSchedule) Accuracy() float64 {
	if s.TotalReviews == 0 {
		return 0
	}
	return float64(s.CorrectReviews) / float64(s.TotalReviews)
}
