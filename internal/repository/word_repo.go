package repository

import (
	"database/sql"
	"fmt"
	"time"

	"vocabtrainer/internal/database"
	"vocabtrainer/internal/models"
)

// WordRepository handles database operations for the word catalog
type WordRepository struct {
	db database.DBTX
}

// NewWordRepository creates a new word repository
func NewWordRepository(db database.DBTX) *WordRepository {
	return &WordRepository{db: db}
}

// CreateWord adds a word to the catalog
func (r *WordRepository) CreateWord(wordText, translation, example, topic string, difficulty int) (*models.Word, error) {
	query := `
		INSERT INTO words (word_text, translation, example_sentence, topic, difficulty_level)
		VALUES (?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, wordText, translation, example, topic, difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to create word: %w", err)
	}

	return &models.Word{
		ID:              id,
		WordText:        wordText,
		Translation:     translation,
		ExampleSentence: example,
		Topic:           topic,
		DifficultyLevel: difficulty,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}, nil
}

// GetWordByID retrieves a word by ID
func (r *WordRepository) GetWordByID(wordID int64) (*models.Word, error) {
	query := `
		SELECT id, word_text, translation, example_sentence, topic, difficulty_level, created_at, updated_at
		FROM words
		WHERE id = ?
	`
	word := &models.Word{}
	err := r.db.QueryRow(query, wordID).Scan(
		&word.ID,
		&word.WordText,
		&word.Translation,
		&word.ExampleSentence,
		&word.Topic,
		&word.DifficultyLevel,
		&word.CreatedAt,
		&word.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get word: %w", err)
	}
	return word, nil
}

// GetAllWords retrieves the catalog, optionally filtered by topic
func (r *WordRepository) GetAllWords(topic string) ([]models.Word, error) {
	query := `
		SELECT id, word_text, translation, example_sentence, topic, difficulty_level, created_at, updated_at
		FROM words
	`
	args := []interface{}{}
	if topic != "" {
		query += " WHERE topic = ?"
		args = append(args, topic)
	}
	query += " ORDER BY word_text ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list words: %w", err)
	}
	defer rows.Close()

	return scanWords(rows)
}

// GetUnscheduledWords retrieves words the user has never studied, easiest
// first so new material ramps up in difficulty
func (r *WordRepository) GetUnscheduledWords(userID int64, limit int) ([]models.Word, error) {
	query := `
		SELECT w.id, w.word_text, w.translation, w.example_sentence, w.topic, w.difficulty_level, w.created_at, w.updated_at
		FROM words w
		LEFT JOIN review_schedules rs ON rs.word_id = w.id AND rs.user_id = ?
		WHERE rs.id IS NULL
		ORDER BY w.difficulty_level ASC, w.id ASC
		LIMIT ?
	`
	rows, err := r.db.Query(query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get unscheduled words: %w", err)
	}
	defer rows.Close()

	return scanWords(rows)
}

// UpdateWord updates a word's fields
func (r *WordRepository) UpdateWord(wordID int64, wordText, translation, example, topic string, difficulty int) error {
	query := `
		UPDATE words
		SET word_text = ?, translation = ?, example_sentence = ?, topic = ?,
		    difficulty_level = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	_, err := r.db.Exec(query, wordText, translation, example, topic, difficulty, wordID)
	if err != nil {
		return fmt.Errorf("failed to update word: %w", err)
	}
	return nil
}

// DeleteWord removes a word; schedules and attempts cascade with it
func (r *WordRepository) DeleteWord(wordID int64) error {
	if _, err := r.db.Exec("DELETE FROM words WHERE id = ?", wordID); err != nil {
		return fmt.Errorf("failed to delete word: %w", err)
	}
	return nil
}

func scanWords(rows *sql.Rows) ([]models.Word, error) {
	var words []models.Word
	for rows.Next() {
		var word models.Word
		err := rows.Scan(
			&word.ID,
			&word.WordText,
			&word.Translation,
			&word.ExampleSentence,
			&word.Topic,
			&word.DifficultyLevel,
			&word.CreatedAt,
			&word.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan word: %w", err)
		}
		words = append(words, word)
	}
	return words, rows.Err()
}
