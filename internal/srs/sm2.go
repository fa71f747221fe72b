// Package srs implements the SuperMemo-2 spaced-repetition algorithm used to
// schedule vocabulary reviews. All functions are pure and safe for concurrent
// use; callers persist the returned schedule themselves.
//
// Dates are local calendar days: "today" is the wall-clock date at the moment
// of computation, truncated to midnight in the local timezone, and intervals
// are added with AddDate so DST transitions cannot shift a review across days.
package srs

import (
	"math"
	"time"

	"vocabtrainer/internal/models"
)

const (
	// InitialEaseFactor is assigned to a word with no review history
	InitialEaseFactor = 2.5

	// MinEaseFactor is the hard floor for the ease factor
	MinEaseFactor = 1.3

	// passThreshold is the lowest quality that counts as a successful recall
	passThreshold = 3
)

// ComputeNextReview applies the SM-2 update to a word's schedule given the
// latest recall result. A nil prev means the word has never been studied and
// routes to initialization. The returned schedule carries prev's identity and
// bookkeeping fields unchanged; only the scheduling fields are recomputed.
func ComputeNextReview(prev *models.ReviewSchedule, result models.ReviewResult) models.ReviewSchedule {
	return ComputeNextReviewAt(prev, result, time.Now())
}

// ComputeNextReviewAt is ComputeNextReview with an explicit clock
func ComputeNextReviewAt(prev *models.ReviewSchedule, result models.ReviewResult, now time.Time) models.ReviewSchedule {
	quality := clampQuality(result.Quality)
	today := startOfDay(now)

	if prev == nil {
		next := models.ReviewSchedule{
			Interval:       1,
			EaseFactor:     InitialEaseFactor,
			NextReviewDate: today.AddDate(0, 0, 1),
		}
		if result.IsCorrect {
			next.Repetitions = 1
		}
		return next
	}

	next := *prev

	if quality < passThreshold || !result.IsCorrect {
		// Failure fully resets progress on the word; the ease factor is
		// left untouched so difficulty history survives the lapse.
		next.Repetitions = 0
		next.Interval = 1
	} else {
		next.Repetitions = prev.Repetitions + 1

		switch {
		case next.Repetitions == 1:
			next.Interval = 1
		case next.Repetitions == 2:
			next.Interval = 6
		default:
			next.Interval = int(math.Round(float64(prev.Interval) * prev.EaseFactor))
		}
		if next.Interval < 1 {
			next.Interval = 1
		}

		ease := prev.EaseFactor + (0.1 - float64(5-quality)*(0.08+float64(5-quality)*0.02))
		if ease < MinEaseFactor {
			ease = MinEaseFactor
		}
		next.EaseFactor = ease
	}

	next.NextReviewDate = today.AddDate(0, 0, next.Interval)
	return next
}

// clampQuality forces a quality value into the 0-5 range. Upstream callers
// only ever send 1, 3 or 5 but the contract accepts anything.
func clampQuality(quality int) int {
	if quality < 0 {
		return 0
	}
	if quality > 5 {
		return 5
	}
	return quality
}

// startOfDay truncates a time to midnight in its location
func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
