package repository

import (
	"database/sql"
	"fmt"
	"time"

	"vocabtrainer/internal/database"
	"vocabtrainer/internal/models"
)

// SessionRepository handles database operations for study sessions
type SessionRepository struct {
	db database.DBTX
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db database.DBTX) *SessionRepository {
	return &SessionRepository{db: db}
}

// CreateSession creates a new study session
func (r *SessionRepository) CreateSession(userID int64, publicID string, totalWords int) (*models.StudySession, error) {
	query := "INSERT INTO study_sessions (public_id, user_id, total_words) VALUES (?, ?, ?)"
	id, err := r.db.ExecReturningID(query, publicID, userID, totalWords)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &models.StudySession{
		ID:         id,
		PublicID:   publicID,
		UserID:     userID,
		StartedAt:  time.Now(),
		TotalWords: totalWords,
	}, nil
}

// GetSessionByPublicID retrieves a study session by its public identifier
func (r *SessionRepository) GetSessionByPublicID(publicID string) (*models.StudySession, error) {
	query := `
		SELECT id, public_id, user_id, started_at, completed_at, total_words, correct_words
		FROM study_sessions
		WHERE public_id = ?
	`

	session := &models.StudySession{}
	var completedAt sql.NullTime

	err := r.db.QueryRow(query, publicID).Scan(
		&session.ID,
		&session.PublicID,
		&session.UserID,
		&session.StartedAt,
		&completedAt,
		&session.TotalWords,
		&session.CorrectWords,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if completedAt.Valid {
		session.CompletedAt = &completedAt.Time
	}
	return session, nil
}

// RecordAttempt records an answered word within a session
func (r *SessionRepository) RecordAttempt(sessionID, wordID int64, quality int, isCorrect bool, elapsedMs int) (*models.ReviewAttempt, error) {
	query := `
		INSERT INTO review_attempts (study_session_id, word_id, quality, is_correct, elapsed_ms)
		VALUES (?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, sessionID, wordID, quality, isCorrect, elapsedMs)
	if err != nil {
		return nil, fmt.Errorf("failed to record attempt: %w", err)
	}

	return &models.ReviewAttempt{
		ID:             id,
		StudySessionID: sessionID,
		WordID:         wordID,
		Quality:        quality,
		IsCorrect:      isCorrect,
		ElapsedMs:      elapsedMs,
		AttemptedAt:    time.Now(),
	}, nil
}

// CompleteSession marks a session as finished and stores its totals
func (r *SessionRepository) CompleteSession(sessionID int64, correctWords int) error {
	query := `
		UPDATE study_sessions
		SET completed_at = ?, correct_words = ?
		WHERE id = ?
	`
	_, err := r.db.Exec(query, time.Now(), correctWords, sessionID)
	if err != nil {
		return fmt.Errorf("failed to complete session: %w", err)
	}
	return nil
}

// GetSessionAttempts retrieves all attempts for a session in answer order
func (r *SessionRepository) GetSessionAttempts(sessionID int64) ([]models.ReviewAttempt, error) {
	query := `
		SELECT id, study_session_id, word_id, quality, is_correct, elapsed_ms, attempted_at
		FROM review_attempts
		WHERE study_session_id = ?
		ORDER BY attempted_at ASC
	`
	rows, err := r.db.Query(query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session attempts: %w", err)
	}
	defer rows.Close()

	var attempts []models.ReviewAttempt
	for rows.Next() {
		var attempt models.ReviewAttempt
		err := rows.Scan(
			&attempt.ID,
			&attempt.StudySessionID,
			&attempt.WordID,
			&attempt.Quality,
			&attempt.IsCorrect,
			&attempt.ElapsedMs,
			&attempt.AttemptedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attempt: %w", err)
		}
		attempts = append(attempts, attempt)
	}

	return attempts, rows.Err()
}

// GetUserSessions retrieves a user's most recent study sessions
func (r *SessionRepository) GetUserSessions(userID int64, limit int) ([]models.StudySession, error) {
	query := `
		SELECT id, public_id, user_id, started_at, completed_at, total_words, correct_words
		FROM study_sessions
		WHERE user_id = ?
		ORDER BY started_at DESC
		LIMIT ?
	`
	rows, err := r.db.Query(query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get user sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.StudySession
	for rows.Next() {
		var session models.StudySession
		var completedAt sql.NullTime

		err := rows.Scan(
			&session.ID,
			&session.PublicID,
			&session.UserID,
			&session.StartedAt,
			&completedAt,
			&session.TotalWords,
			&session.CorrectWords,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}

		if completedAt.Valid {
			session.CompletedAt = &completedAt.Time
		}
		sessions = append(sessions, session)
	}

	return sessions, rows.Err()
}
