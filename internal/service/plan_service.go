package service

import (
	"errors"
	"fmt"
	"time"

	"vocabtrainer/internal/models"
	"vocabtrainer/internal/repository"
	"vocabtrainer/internal/srs"
)

var ErrUserNotFound = errors.New("user not found")

// PlanService builds persisted daily study plans: the day's due reviews plus
// a capped batch of new words. Building the plan twice on the same day
// returns the stored plan, so the day's workload doesn't shift under the
// user as reviews complete.
type PlanService struct {
	planRepo     *repository.PlanRepository
	progressRepo *repository.ProgressRepository
	wordRepo     *repository.WordRepository
	userRepo     *repository.UserRepository
}

// NewPlanService creates a new plan service
func NewPlanService(planRepo *repository.PlanRepository, progressRepo *repository.ProgressRepository, wordRepo *repository.WordRepository, userRepo *repository.UserRepository) *PlanService {
	return &PlanService{
		planRepo:     planRepo,
		progressRepo: progressRepo,
		wordRepo:     wordRepo,
		userRepo:     userRepo,
	}
}

// BuildDailyPlan returns the user's plan for the day containing now,
// creating it on first call
func (s *PlanService) BuildDailyPlan(userID int64, now time.Time) (*models.PlanWithEntries, error) {
	planDate := startOfDay(now)

	existing, err := s.planRepo.GetPlanForDate(userID, planDate)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	dueSchedules, err := s.progressRepo.GetDueSchedules(userID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load due schedules: %w", err)
	}

	var entries []models.PlanEntry
	for i := range dueSchedules {
		schedule := &dueSchedules[i]
		entries = append(entries, models.PlanEntry{
			WordID:   schedule.WordID,
			Priority: srs.ReviewPriority(schedule, schedule.MasteryLevel, now),
		})
	}

	newWords, err := s.wordRepo.GetUnscheduledWords(userID, user.NewWordsPerDay)
	if err != nil {
		return nil, fmt.Errorf("failed to load new words: %w", err)
	}
	for _, word := range newWords {
		entries = append(entries, models.PlanEntry{
			WordID:   word.ID,
			IsNew:    true,
			Priority: srs.ReviewPriority(nil, 0, now),
		})
	}

	plan, err := s.planRepo.CreatePlan(userID, planDate, entries)
	if err != nil {
		return nil, err
	}

	return s.planRepo.GetPlanForDate(userID, plan.PlanDate)
}

// startOfDay truncates a time to midnight in its location
func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
