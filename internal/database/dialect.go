package database

import (
	"database/sql"
	"regexp"
	"strconv"
)

// Dialect abstracts the differences between the supported SQL engines.
// Queries throughout the codebase are written with ? placeholders and passed
// through RewriteQuery before execution.
type Dialect interface {
	// DriverName returns the driver name for sql.Open
	DriverName() string

	// DSN builds the data source name from the dialect config
	DSN(cfg DialectConfig) string

	// RewriteQuery converts ? placeholders to the engine's syntax
	RewriteQuery(query string) string

	// SupportsLastInsertId reports whether the driver implements LastInsertId
	SupportsLastInsertId() bool

	// ConfigureConnection applies engine-specific pool and pragma settings
	ConfigureConnection(db *sql.DB) error

	// MigrationsSubdir names the per-engine migrations directory
	MigrationsSubdir() string

	// MigrationsTableQuery returns the DDL for the migrations tracking table
	MigrationsTableQuery() string

	// ScheduleUpsertQuery returns the INSERT for a review schedule that
	// overwrites the existing row on a (user_id, word_id) conflict. The
	// value order is: user_id, word_id, interval_days, ease_factor,
	// repetitions, next_review_date, last_studied, total_reviews,
	// correct_reviews, mastery_level.
	ScheduleUpsertQuery() string
}

// DialectConfig holds connection parameters for any supported engine
type DialectConfig struct {
	Path string // sqlite file path
	URL  string // postgres/mysql connection string
}

var questionMark = regexp.MustCompile(`\?`)

// numberPlaceholders converts ? placeholders to $1, $2, ... for postgres
func numberPlaceholders(query string) string {
	n := 0
	return questionMark.ReplaceAllStringFunc(query, func(string) string {
		n++
		return "$" + strconv.Itoa(n)
	})
}

// scheduleUpsertColumns is the shared column list for ScheduleUpsertQuery
const scheduleUpsertColumns = `user_id, word_id, interval_days, ease_factor, repetitions,
		       next_review_date, last_studied, total_reviews, correct_reviews, mastery_level`
