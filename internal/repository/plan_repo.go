package repository

import (
	"database/sql"
	"fmt"
	"time"

	"vocabtrainer/internal/database"
	"vocabtrainer/internal/models"
)

// PlanRepository handles database operations for study plans
type PlanRepository struct {
	db database.DBTX
}

// NewPlanRepository creates a new plan repository
func NewPlanRepository(db database.DBTX) *PlanRepository {
	return &PlanRepository{db: db}
}

// CreatePlan persists a plan and its entries for the given day
func (r *PlanRepository) CreatePlan(userID int64, planDate time.Time, entries []models.PlanEntry) (*models.StudyPlan, error) {
	query := "INSERT INTO study_plans (user_id, plan_date) VALUES (?, ?)"
	planID, err := r.db.ExecReturningID(query, userID, planDate)
	if err != nil {
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}

	for _, entry := range entries {
		_, err := r.db.Exec(
			"INSERT INTO plan_entries (study_plan_id, word_id, is_new, priority) VALUES (?, ?, ?, ?)",
			planID, entry.WordID, entry.IsNew, entry.Priority)
		if err != nil {
			return nil, fmt.Errorf("failed to create plan entry: %w", err)
		}
	}

	return &models.StudyPlan{
		ID:        planID,
		UserID:    userID,
		PlanDate:  planDate,
		CreatedAt: time.Now(),
	}, nil
}

// GetPlanForDate retrieves the plan stored for a (user, day) pair. Returns
// (nil, nil) when no plan has been built for that day yet.
func (r *PlanRepository) GetPlanForDate(userID int64, planDate time.Time) (*models.PlanWithEntries, error) {
	query := `
		SELECT id, user_id, plan_date, created_at
		FROM study_plans
		WHERE user_id = ? AND plan_date = ?
	`
	plan := models.StudyPlan{}
	err := r.db.QueryRow(query, userID, planDate).Scan(
		&plan.ID,
		&plan.UserID,
		&plan.PlanDate,
		&plan.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	entries, err := r.getPlanEntries(plan.ID)
	if err != nil {
		return nil, err
	}

	return &models.PlanWithEntries{Plan: plan, Entries: entries}, nil
}

func (r *PlanRepository) getPlanEntries(planID int64) ([]models.PlanEntry, error) {
	query := `
		SELECT id, study_plan_id, word_id, is_new, priority
		FROM plan_entries
		WHERE study_plan_id = ?
		ORDER BY priority DESC, id ASC
	`
	rows, err := r.db.Query(query, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to get plan entries: %w", err)
	}
	defer rows.Close()

	var entries []models.PlanEntry
	for rows.Next() {
		var entry models.PlanEntry
		err := rows.Scan(
			&entry.ID,
			&entry.StudyPlanID,
			&entry.WordID,
			&entry.IsNew,
			&entry.Priority,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan plan entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
