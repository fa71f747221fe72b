package repository

import (
	"path/filepath"
	"testing"
	"time"

	"vocabtrainer/internal/database"
	"vocabtrainer/internal/models"
)

func openTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}

func seedUserAndWord(t *testing.T, db *database.DB) (int64, int64) {
	t.Helper()

	user, err := NewUserRepository(db).CreateUser("Ada", "ada@example.com", 10, 9)
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	word, err := NewWordRepository(db).CreateWord("Haus", "house", "Das Haus ist alt.", "home", 1)
	if err != nil {
		t.Fatalf("Failed to create word: %v", err)
	}
	return user.ID, word.ID
}

func TestGetScheduleMissingReturnsNil(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openTestDB(t)
	userID, wordID := seedUserAndWord(t, db)

	repo := NewProgressRepository(db)
	schedule, err := repo.GetSchedule(userID, wordID)
	if err != nil {
		t.Fatalf("GetSchedule() error: %v", err)
	}
	if schedule != nil {
		t.Errorf("expected nil schedule for never-studied word, got %+v", schedule)
	}
}

func TestUpsertScheduleRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openTestDB(t)
	userID, wordID := seedUserAndWord(t, db)
	repo := NewProgressRepository(db)

	now := time.Now()
	first := &models.ReviewSchedule{
		UserID:         userID,
		WordID:         wordID,
		Interval:       1,
		EaseFactor:     2.5,
		Repetitions:    1,
		NextReviewDate: now.AddDate(0, 0, 1),
		LastStudied:    &now,
		TotalReviews:   1,
		CorrectReviews: 1,
		MasteryLevel:   13,
	}
	if err := repo.UpsertSchedule(first); err != nil {
		t.Fatalf("First upsert failed: %v", err)
	}

	// A second write for the same pair must overwrite, not duplicate
	second := *first
	second.Interval = 6
	second.Repetitions = 2
	second.EaseFactor = 2.36
	if err := repo.UpsertSchedule(&second); err != nil {
		t.Fatalf("Second upsert failed: %v", err)
	}

	got, err := repo.GetSchedule(userID, wordID)
	if err != nil {
		t.Fatalf("GetSchedule() error: %v", err)
	}
	if got == nil {
		t.Fatal("expected a schedule after upsert")
	}
	if got.Interval != 6 || got.Repetitions != 2 {
		t.Errorf("got interval=%d repetitions=%d, want 6 and 2", got.Interval, got.Repetitions)
	}
	if got.LastStudied == nil {
		t.Error("LastStudied should round-trip")
	}

	schedules, err := repo.GetUserSchedules(userID)
	if err != nil {
		t.Fatalf("GetUserSchedules() error: %v", err)
	}
	if len(schedules) != 1 {
		t.Errorf("expected one schedule row, got %d", len(schedules))
	}
}

func TestGetDueSchedulesAndCount(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openTestDB(t)
	userID, wordID := seedUserAndWord(t, db)
	secondWord, err := NewWordRepository(db).CreateWord("Baum", "tree", "", "nature", 2)
	if err != nil {
		t.Fatalf("Failed to create word: %v", err)
	}

	repo := NewProgressRepository(db)
	now := time.Now()

	overdue := &models.ReviewSchedule{
		UserID: userID, WordID: wordID,
		Interval: 1, EaseFactor: 2.5, Repetitions: 1,
		NextReviewDate: now.AddDate(0, 0, -1),
	}
	future := &models.ReviewSchedule{
		UserID: userID, WordID: secondWord.ID,
		Interval: 6, EaseFactor: 2.5, Repetitions: 2,
		NextReviewDate: now.AddDate(0, 0, 3),
	}
	if err := repo.UpsertSchedule(overdue); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if err := repo.UpsertSchedule(future); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	due, err := repo.GetDueSchedules(userID, now)
	if err != nil {
		t.Fatalf("GetDueSchedules() error: %v", err)
	}
	if len(due) != 1 || due[0].WordID != wordID {
		t.Errorf("expected only the overdue word to be due, got %+v", due)
	}

	count, err := repo.CountDue(userID, now)
	if err != nil {
		t.Fatalf("CountDue() error: %v", err)
	}
	if count != 1 {
		t.Errorf("CountDue() = %d, want 1", count)
	}
}

func TestGetUnscheduledWords(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openTestDB(t)
	userID, wordID := seedUserAndWord(t, db)

	wordRepo := NewWordRepository(db)
	unseen, err := wordRepo.CreateWord("Berg", "mountain", "", "nature", 3)
	if err != nil {
		t.Fatalf("Failed to create word: %v", err)
	}

	// Schedule the first word; only the second should remain unscheduled
	repo := NewProgressRepository(db)
	err = repo.UpsertSchedule(&models.ReviewSchedule{
		UserID: userID, WordID: wordID,
		Interval: 1, EaseFactor: 2.5, Repetitions: 1,
		NextReviewDate: time.Now().AddDate(0, 0, 1),
	})
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	words, err := wordRepo.GetUnscheduledWords(userID, 10)
	if err != nil {
		t.Fatalf("GetUnscheduledWords() error: %v", err)
	}
	if len(words) != 1 || words[0].ID != unseen.ID {
		t.Errorf("expected only the unseen word, got %+v", words)
	}
}
