package models

import "time"

// Word is one vocabulary entry in the catalog
type Word struct {
	ID              int64
	WordText        string
	Translation     string
	ExampleSentence string
	Topic           string
	DifficultyLevel int // 1 (easiest) upward; orders how new words are introduced
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// WordWithSchedule pairs a word with the user's review state for it.
// Schedule is nil for words the user has never studied.
type WordWithSchedule struct {
	Word     Word
	Schedule *ReviewSchedule
}
