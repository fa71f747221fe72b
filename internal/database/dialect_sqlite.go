package database

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteDialect implements Dialect for SQLite
type SQLiteDialect struct{}

// NewSQLiteDialect creates a new SQLite dialect
func NewSQLiteDialect() *SQLiteDialect {
	return &SQLiteDialect{}
}

func (d *SQLiteDialect) DriverName() string {
	return "sqlite3"
}

func (d *SQLiteDialect) DSN(cfg DialectConfig) string {
	return cfg.Path
}

func (d *SQLiteDialect) RewriteQuery(query string) string {
	// SQLite uses ? natively
	return query
}

func (d *SQLiteDialect) SupportsLastInsertId() bool {
	return true
}

func (d *SQLiteDialect) ConfigureConnection(db *sql.DB) error {
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// WAL mode for concurrent readers during a study session
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return err
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON;"); err != nil {
		return err
	}
	return nil
}

func (d *SQLiteDialect) MigrationsSubdir() string {
	return "sqlite"
}

func (d *SQLiteDialect) MigrationsTableQuery() string {
	return `
		CREATE TABLE IF NOT EXISTS migrations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			filename TEXT UNIQUE NOT NULL,
			executed_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`
}

func (d *SQLiteDialect) ScheduleUpsertQuery() string {
	return `
		INSERT INTO review_schedules (` + scheduleUpsertColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, word_id) DO UPDATE SET
			interval_days = excluded.interval_days,
			ease_factor = excluded.ease_factor,
			repetitions = excluded.repetitions,
			next_review_date = excluded.next_review_date,
			last_studied = excluded.last_studied,
			total_reviews = excluded.total_reviews,
			correct_reviews = excluded.correct_reviews,
			mastery_level = excluded.mastery_level,
			updated_at = CURRENT_TIMESTAMP
	`
}
