package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"vocabtrainer/internal/models"
	"vocabtrainer/internal/repository"
	"vocabtrainer/internal/srs"

	"github.com/google/uuid"
)

var (
	ErrNothingToStudy   = errors.New("no words are due for review")
	ErrSessionNotFound  = errors.New("study session not found")
	ErrSessionCompleted = errors.New("study session already completed")
	ErrWordNotFound     = errors.New("word not found")
)

// ReviewService orchestrates study sessions: it builds the day's review
// queue, maps the user's answers onto the scheduler input and persists the
// scheduler's output. The SM-2 update itself lives in the srs package and is
// never duplicated here.
type ReviewService struct {
	progressRepo *repository.ProgressRepository
	wordRepo     *repository.WordRepository
	sessionRepo  *repository.SessionRepository
	wordLimit    int
}

// NewReviewService creates a new review service. wordLimit caps how many
// words a single session presents.
func NewReviewService(progressRepo *repository.ProgressRepository, wordRepo *repository.WordRepository, sessionRepo *repository.SessionRepository, wordLimit int) *ReviewService {
	return &ReviewService{
		progressRepo: progressRepo,
		wordRepo:     wordRepo,
		sessionRepo:  sessionRepo,
		wordLimit:    wordLimit,
	}
}

// BuildQueue assembles the user's review queue: every due word plus never-
// studied words, ranked by review priority
func (s *ReviewService) BuildQueue(userID int64) ([]models.WordWithSchedule, error) {
	now := time.Now()

	dueSchedules, err := s.progressRepo.GetDueSchedules(userID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load due schedules: %w", err)
	}

	candidates := make([]models.WordWithSchedule, 0, len(dueSchedules))
	for i := range dueSchedules {
		schedule := dueSchedules[i]
		word, err := s.wordRepo.GetWordByID(schedule.WordID)
		if err != nil {
			return nil, fmt.Errorf("failed to load word %d: %w", schedule.WordID, err)
		}
		if word == nil {
			continue
		}
		candidates = append(candidates, models.WordWithSchedule{Word: *word, Schedule: &schedule})
	}

	newWords, err := s.wordRepo.GetUnscheduledWords(userID, s.wordLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load new words: %w", err)
	}
	for _, word := range newWords {
		candidates = append(candidates, models.WordWithSchedule{Word: word})
	}

	return rankQueue(candidates, now, s.wordLimit), nil
}

// StartSession builds a queue and opens a study session around it
func (s *ReviewService) StartSession(userID int64) (*models.StudySession, []models.WordWithSchedule, error) {
	queue, err := s.BuildQueue(userID)
	if err != nil {
		return nil, nil, err
	}
	if len(queue) == 0 {
		return nil, nil, ErrNothingToStudy
	}

	session, err := s.sessionRepo.CreateSession(userID, uuid.New().String(), len(queue))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, queue, nil
}

// SubmitAnswer records one answered word: the answer bucket becomes the
// scheduler input, the SM-2 result is written back to the progress store as
// an upsert on the (user, word) pair, and the attempt is logged against the
// session
func (s *ReviewService) SubmitAnswer(session *models.StudySession, wordID int64, answer srs.Answer, elapsedMs int) (*models.ReviewSchedule, error) {
	if session == nil {
		return nil, ErrSessionNotFound
	}
	if session.IsCompleted() {
		return nil, ErrSessionCompleted
	}

	word, err := s.wordRepo.GetWordByID(wordID)
	if err != nil {
		return nil, fmt.Errorf("failed to load word: %w", err)
	}
	if word == nil {
		return nil, ErrWordNotFound
	}

	prev, err := s.progressRepo.GetSchedule(session.UserID, wordID)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}

	result := answer.Result()
	next := srs.ComputeNextReview(prev, result)
	next.UserID = session.UserID
	next.WordID = wordID

	// Bookkeeping owned by the orchestrator, not the scheduler
	now := time.Now()
	next.LastStudied = &now
	next.TotalReviews++
	if result.IsCorrect {
		next.CorrectReviews++
	}
	next.MasteryLevel = srs.MasteryLevel(&next)

	if err := s.progressRepo.UpsertSchedule(&next); err != nil {
		return nil, err
	}

	if _, err := s.sessionRepo.RecordAttempt(session.ID, wordID, result.Quality, result.IsCorrect, elapsedMs); err != nil {
		return nil, err
	}

	return &next, nil
}

// CompleteSession finalizes a session from its recorded attempts
func (s *ReviewService) CompleteSession(session *models.StudySession) (*models.SessionSummary, error) {
	if session == nil {
		return nil, ErrSessionNotFound
	}
	if session.IsCompleted() {
		return nil, ErrSessionCompleted
	}

	attempts, err := s.sessionRepo.GetSessionAttempts(session.ID)
	if err != nil {
		return nil, err
	}

	correct := 0
	for _, attempt := range attempts {
		if attempt.IsCorrect {
			correct++
		}
	}

	if err := s.sessionRepo.CompleteSession(session.ID, correct); err != nil {
		return nil, err
	}

	now := time.Now()
	session.CompletedAt = &now
	session.CorrectWords = correct

	summary := &models.SessionSummary{Session: *session}
	if len(attempts) > 0 {
		summary.Accuracy = float64(correct) / float64(len(attempts))
	}
	return summary, nil
}

// rankQueue orders candidates by review priority, highest first, and trims
// to the session limit. Ties break on word ID so the order is stable.
func rankQueue(candidates []models.WordWithSchedule, now time.Time, limit int) []models.WordWithSchedule {
	sort.Slice(candidates, func(i, j int) bool {
		pi := srs.ReviewPriority(candidates[i].Schedule, srs.MasteryLevel(candidates[i].Schedule), now)
		pj := srs.ReviewPriority(candidates[j].Schedule, srs.MasteryLevel(candidates[j].Schedule), now)
		if pi != pj {
			return pi > pj
		}
		return candidates[i].Word.ID < candidates[j].Word.ID
	})

	if limit > 0 && len(candidates) > limit {
		return candidates[:limit]
	}
	return candidates
}
