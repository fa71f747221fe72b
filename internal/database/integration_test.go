package database

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}

func TestMigrationsCreateSchema(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openTestDB(t)

	tables := []string{"users", "words", "review_schedules", "study_sessions", "review_attempts", "study_plans", "plan_entries"}
	for _, table := range tables {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name = ?", table).Scan(&name)
		if err != nil {
			t.Errorf("Table %s not found: %v", table, err)
		}
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openTestDB(t)

	// Running the same migrations again must be a no-op
	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Second migration run failed: %v", err)
	}
}

func TestScheduleUpsertLastWriteWins(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openTestDB(t)

	userID, err := db.ExecReturningID(
		"INSERT INTO users (name, email) VALUES (?, ?)", "Ada", "ada@example.com")
	if err != nil {
		t.Fatalf("Failed to insert user: %v", err)
	}
	wordID, err := db.ExecReturningID(
		"INSERT INTO words (word_text, translation) VALUES (?, ?)", "Haus", "house")
	if err != nil {
		t.Fatalf("Failed to insert word: %v", err)
	}

	upsert := db.Dialect.ScheduleUpsertQuery()
	next := time.Now().AddDate(0, 0, 1)

	// Two writes for the same (user, word) pair: the second must overwrite
	// the first rather than create another row.
	if _, err := db.Exec(upsert, userID, wordID, 1, 2.5, 1, next, time.Now(), 1, 1, 13); err != nil {
		t.Fatalf("First upsert failed: %v", err)
	}
	if _, err := db.Exec(upsert, userID, wordID, 6, 2.6, 2, next.AddDate(0, 0, 5), time.Now(), 2, 2, 31); err != nil {
		t.Fatalf("Second upsert failed: %v", err)
	}

	var count, interval int
	if err := db.QueryRow(
		"SELECT COUNT(*) FROM review_schedules WHERE user_id = ? AND word_id = ?", userID, wordID).Scan(&count); err != nil {
		t.Fatalf("Count query failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected a single schedule row, got %d", count)
	}

	if err := db.QueryRow(
		"SELECT interval_days FROM review_schedules WHERE user_id = ? AND word_id = ?", userID, wordID).Scan(&interval); err != nil {
		t.Fatalf("Interval query failed: %v", err)
	}
	if interval != 6 {
		t.Errorf("interval_days = %d, want 6 (last write wins)", interval)
	}
}

func TestTransactionRollback(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openTestDB(t)

	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("Failed to begin transaction: %v", err)
	}

	if _, err := tx.Exec("INSERT INTO words (word_text, translation) VALUES (?, ?)", "Baum", "tree"); err != nil {
		tx.Rollback()
		t.Fatalf("Insert in transaction failed: %v", err)
	}
	if err := tx.Rollback(); err != nil {
		t.Fatalf("Rollback failed: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM words WHERE word_text = ?", "Baum").Scan(&count); err != nil {
		t.Fatalf("Count query failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Rolled-back insert is visible: count = %d", count)
	}
}
