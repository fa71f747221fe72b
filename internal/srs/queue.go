package srs

import (
	"time"

	"vocabtrainer/internal/models"
)

// Priority weights for ranking overdue words. The formula is a heuristic and
// deliberately isolated here so it can be tuned without touching the SM-2
// update: more overdue and less mastered words always rank sooner.
const (
	maxPriority         = 100.0
	overdueWeight       = 10.0 // points per day overdue
	maxOverduePoints    = 50.0
	maxMasteryPoints    = 30.0
	maxRepetitionPoints = 20.0
)

// IsDue reports whether a word is eligible for review. A word with no
// schedule has never been studied and is always due.
func IsDue(schedule *models.ReviewSchedule, now time.Time) bool {
	if schedule == nil {
		return true
	}
	return !now.Before(schedule.NextReviewDate)
}

// ReviewPriority scores a word for queue ordering. New words get the maximum
// score. Otherwise the score is a weighted sum: up to 50 points for days
// overdue, up to 30 for low mastery and up to 20 for few successful
// repetitions.
func ReviewPriority(schedule *models.ReviewSchedule, masteryLevel int, now time.Time) float64 {
	if schedule == nil {
		return maxPriority
	}

	overdueDays := now.Sub(schedule.NextReviewDate).Hours() / 24
	if overdueDays < 0 {
		overdueDays = 0
	}
	overduePoints := overdueDays * overdueWeight
	if overduePoints > maxOverduePoints {
		overduePoints = maxOverduePoints
	}

	if masteryLevel < 0 {
		masteryLevel = 0
	}
	if masteryLevel > 100 {
		masteryLevel = 100
	}
	masteryPoints := maxMasteryPoints * float64(100-masteryLevel) / 100

	repetitionPoints := maxRepetitionPoints / float64(schedule.Repetitions+1)

	return overduePoints + masteryPoints + repetitionPoints
}

// MasteryLevel summarizes a schedule as a 0-100 learning score: up to 60
// points for consecutive successful repetitions, up to 30 for interval length
// and up to 10 for lifetime accuracy. A word at five repetitions with a
// 30-day interval and perfect accuracy scores 100.
func MasteryLevel(schedule *models.ReviewSchedule) int {
	if schedule == nil {
		return 0
	}

	level := schedule.Repetitions * 12
	if level > 60 {
		level = 60
	}

	interval := schedule.Interval
	if interval > 30 {
		interval = 30
	}
	level += interval

	level += int(schedule.Accuracy() * 10)

	if level > 100 {
		level = 100
	}
	return level
}
