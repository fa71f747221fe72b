package database

import (
	"database/sql"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLDialect implements Dialect for MySQL
type MySQLDialect struct{}

// NewMySQLDialect creates a new MySQL dialect
func NewMySQLDialect() *MySQLDialect {
	return &MySQLDialect{}
}

func (d *MySQLDialect) DriverName() string {
	return "mysql"
}

func (d *MySQLDialect) DSN(cfg DialectConfig) string {
	return cfg.URL
}

func (d *MySQLDialect) RewriteQuery(query string) string {
	// MySQL uses ? natively
	return query
}

func (d *MySQLDialect) SupportsLastInsertId() bool {
	return true
}

func (d *MySQLDialect) ConfigureConnection(db *sql.DB) error {
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if _, err := db.Exec("SET FOREIGN_KEY_CHECKS = 1;"); err != nil {
		return err
	}
	return nil
}

func (d *MySQLDialect) MigrationsSubdir() string {
	return "mysql"
}

func (d *MySQLDialect) MigrationsTableQuery() string {
	return `
		CREATE TABLE IF NOT EXISTS migrations (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			filename VARCHAR(255) UNIQUE NOT NULL,
			executed_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6)
		);
	`
}

func (d *MySQLDialect) ScheduleUpsertQuery() string {
	return `
		INSERT INTO review_schedules (` + scheduleUpsertColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			interval_days = VALUES(interval_days),
			ease_factor = VALUES(ease_factor),
			repetitions = VALUES(repetitions),
			next_review_date = VALUES(next_review_date),
			last_studied = VALUES(last_studied),
			total_reviews = VALUES(total_reviews),
			correct_reviews = VALUES(correct_reviews),
			mastery_level = VALUES(mastery_level),
			updated_at = CURRENT_TIMESTAMP
	`
}
