package service

import (
	"testing"
	"time"

	"vocabtrainer/internal/models"
)

func TestRankQueueNewWordsFirst(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.Local)

	overdue := models.WordWithSchedule{
		Word: models.Word{ID: 1, WordText: "Haus"},
		Schedule: &models.ReviewSchedule{
			NextReviewDate: now.AddDate(0, 0, -2),
			Repetitions:    3,
		},
	}
	fresh := models.WordWithSchedule{
		Word: models.Word{ID: 2, WordText: "Baum"},
	}

	ranked := rankQueue([]models.WordWithSchedule{overdue, fresh}, now, 0)

	if ranked[0].Word.ID != 2 {
		t.Errorf("never-studied word should rank first, got word %d", ranked[0].Word.ID)
	}
}

func TestRankQueueOverdueOrdering(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.Local)

	makeCandidate := func(id int64, daysOverdue int) models.WordWithSchedule {
		return models.WordWithSchedule{
			Word: models.Word{ID: id},
			Schedule: &models.ReviewSchedule{
				NextReviewDate: now.AddDate(0, 0, -daysOverdue),
				Repetitions:    2,
			},
		}
	}

	ranked := rankQueue([]models.WordWithSchedule{
		makeCandidate(1, 1),
		makeCandidate(2, 4),
		makeCandidate(3, 2),
	}, now, 0)

	wantOrder := []int64{2, 3, 1}
	for i, want := range wantOrder {
		if ranked[i].Word.ID != want {
			t.Errorf("position %d: got word %d, want %d", i, ranked[i].Word.ID, want)
		}
	}
}

func TestRankQueueLimit(t *testing.T) {
	now := time.Now()

	candidates := make([]models.WordWithSchedule, 30)
	for i := range candidates {
		candidates[i] = models.WordWithSchedule{Word: models.Word{ID: int64(i + 1)}}
	}

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "trims to limit", limit: 20, want: 20},
		{name: "zero limit keeps all", limit: 0, want: 30},
		{name: "limit above size keeps all", limit: 50, want: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked := rankQueue(candidates, now, tt.limit)
			if len(ranked) != tt.want {
				t.Errorf("len = %d, want %d", len(ranked), tt.want)
			}
		})
	}
}

func TestRankQueueStableTies(t *testing.T) {
	now := time.Now()

	// Two never-studied words share the maximum priority; the lower word ID
	// must come first so queue order is deterministic.
	candidates := []models.WordWithSchedule{
		{Word: models.Word{ID: 9}},
		{Word: models.Word{ID: 4}},
	}

	ranked := rankQueue(candidates, now, 0)
	if ranked[0].Word.ID != 4 || ranked[1].Word.ID != 9 {
		t.Errorf("tie should break on word ID: got [%d, %d]", ranked[0].Word.ID, ranked[1].Word.ID)
	}
}

func TestStartOfDay(t *testing.T) {
	input := time.Date(2026, 3, 14, 23, 45, 12, 99, time.Local)
	want := time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local)

	if got := startOfDay(input); !got.Equal(want) {
		t.Errorf("startOfDay() = %v, want %v", got, want)
	}
}
