package repository

import (
	"database/sql"
	"fmt"
	"time"

	"vocabtrainer/internal/database"
	"vocabtrainer/internal/models"
)

// UserRepository handles database operations for learner accounts
type UserRepository struct {
	db database.DBTX
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser creates a new learner account
func (r *UserRepository) CreateUser(name, email string, newWordsPerDay, reminderHour int) (*models.User, error) {
	query := "INSERT INTO users (name, email, new_words_per_day, reminder_hour) VALUES (?, ?, ?, ?)"
	id, err := r.db.ExecReturningID(query, name, email, newWordsPerDay, reminderHour)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &models.User{
		ID:             id,
		Name:           name,
		Email:          email,
		NewWordsPerDay: newWordsPerDay,
		ReminderHour:   reminderHour,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}, nil
}

// GetUserByID retrieves a user by ID
func (r *UserRepository) GetUserByID(userID int64) (*models.User, error) {
	query := `
		SELECT id, name, email, new_words_per_day, reminder_hour, created_at, updated_at
		FROM users
		WHERE id = ?
	`
	return r.scanUser(r.db.QueryRow(query, userID))
}

// GetUserByEmail retrieves a user by email
func (r *UserRepository) GetUserByEmail(email string) (*models.User, error) {
	query := `
		SELECT id, name, email, new_words_per_day, reminder_hour, created_at, updated_at
		FROM users
		WHERE email = ?
	`
	return r.scanUser(r.db.QueryRow(query, email))
}

// GetAllUsers retrieves all users ordered by creation date
func (r *UserRepository) GetAllUsers() ([]models.User, error) {
	query := `
		SELECT id, name, email, new_words_per_day, reminder_hour, created_at, updated_at
		FROM users
		ORDER BY created_at ASC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.NewWordsPerDay,
			&user.ReminderHour,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// GetUsersByReminderHour retrieves users who want a reminder at the given hour
func (r *UserRepository) GetUsersByReminderHour(hour int) ([]models.User, error) {
	query := `
		SELECT id, name, email, new_words_per_day, reminder_hour, created_at, updated_at
		FROM users
		WHERE reminder_hour = ?
	`
	rows, err := r.db.Query(query, hour)
	if err != nil {
		return nil, fmt.Errorf("failed to get users for reminder hour %d: %w", hour, err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.NewWordsPerDay,
			&user.ReminderHour,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// UpdateUser updates a user's goals and reminder preferences
func (r *UserRepository) UpdateUser(userID int64, newWordsPerDay, reminderHour int) error {
	query := `
		UPDATE users
		SET new_words_per_day = ?, reminder_hour = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	_, err := r.db.Exec(query, newWordsPerDay, reminderHour, userID)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

func (r *UserRepository) scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.NewWordsPerDay,
		&user.ReminderHour,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
