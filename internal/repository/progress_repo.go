package repository

import (
	"database/sql"
	"fmt"
	"time"

	"vocabtrainer/internal/database"
	"vocabtrainer/internal/models"
)

// ProgressRepository is the progress store: it holds the review schedule for
// each (user, word) pair. The scheduler itself never touches storage; the
// review service reads a schedule here, runs the SM-2 update and writes the
// result back through UpsertSchedule.
type ProgressRepository struct {
	db database.DBTX
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db database.DBTX) *ProgressRepository {
	return &ProgressRepository{db: db}
}

const scheduleColumns = `id, user_id, word_id, interval_days, ease_factor, repetitions,
	       next_review_date, last_studied, total_reviews, correct_reviews, mastery_level,
	       created_at, updated_at`

// GetSchedule retrieves the schedule for a (user, word) pair. Returns
// (nil, nil) when the word has never been studied.
func (r *ProgressRepository) GetSchedule(userID, wordID int64) (*models.ReviewSchedule, error) {
	query := "SELECT " + scheduleColumns + " FROM review_schedules WHERE user_id = ? AND word_id = ?"

	schedule, err := scanSchedule(r.db.QueryRow(query, userID, wordID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}
	return schedule, nil
}

// UpsertSchedule writes a schedule keyed on (user_id, word_id). A concurrent
// write for the same pair resolves as last-write-wins.
func (r *ProgressRepository) UpsertSchedule(schedule *models.ReviewSchedule) error {
	query := r.db.GetDialect().ScheduleUpsertQuery()
	_, err := r.db.Exec(query,
		schedule.UserID,
		schedule.WordID,
		schedule.Interval,
		schedule.EaseFactor,
		schedule.Repetitions,
		schedule.NextReviewDate,
		schedule.LastStudied,
		schedule.TotalReviews,
		schedule.CorrectReviews,
		schedule.MasteryLevel,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert schedule: %w", err)
	}
	return nil
}

// GetUserSchedules retrieves all schedules for a user
func (r *ProgressRepository) GetUserSchedules(userID int64) ([]models.ReviewSchedule, error) {
	query := "SELECT " + scheduleColumns + " FROM review_schedules WHERE user_id = ? ORDER BY next_review_date ASC"

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user schedules: %w", err)
	}
	defer rows.Close()

	return scanSchedules(rows)
}

// GetDueSchedules retrieves schedules whose review date has passed
func (r *ProgressRepository) GetDueSchedules(userID int64, now time.Time) ([]models.ReviewSchedule, error) {
	query := "SELECT " + scheduleColumns + ` FROM review_schedules
		WHERE user_id = ? AND next_review_date <= ?
		ORDER BY next_review_date ASC`

	rows, err := r.db.Query(query, userID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get due schedules: %w", err)
	}
	defer rows.Close()

	return scanSchedules(rows)
}

// CountDue returns how many of the user's words are due for review
func (r *ProgressRepository) CountDue(userID int64, now time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(
		"SELECT COUNT(*) FROM review_schedules WHERE user_id = ? AND next_review_date <= ?",
		userID, now).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count due schedules: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSchedule(row rowScanner) (*models.ReviewSchedule, error) {
	schedule := &models.ReviewSchedule{}
	var lastStudied sql.NullTime

	err := row.Scan(
		&schedule.ID,
		&schedule.UserID,
		&schedule.WordID,
		&schedule.Interval,
		&schedule.EaseFactor,
		&schedule.Repetitions,
		&schedule.NextReviewDate,
		&lastStudied,
		&schedule.TotalReviews,
		&schedule.CorrectReviews,
		&schedule.MasteryLevel,
		&schedule.CreatedAt,
		&schedule.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if lastStudied.Valid {
		schedule.LastStudied = &lastStudied.Time
	}
	return schedule, nil
}

func scanSchedules(rows *sql.Rows) ([]models.ReviewSchedule, error) {
	var schedules []models.ReviewSchedule
	for rows.Next() {
		schedule, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		schedules = append(schedules, *schedule)
	}
	return schedules, rows.Err()
}
