package srs

import (
	"testing"
	"time"

	"vocabtrainer/internal/models"
)

func TestIsDue(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		schedule *models.ReviewSchedule
		want     bool
	}{
		{
			name:     "nil schedule is always due",
			schedule: nil,
			want:     true,
		},
		{
			name:     "past review date",
			schedule: &models.ReviewSchedule{NextReviewDate: now.AddDate(0, 0, -1)},
			want:     true,
		},
		{
			name:     "exactly due",
			schedule: &models.ReviewSchedule{NextReviewDate: now},
			want:     true,
		},
		{
			name:     "future review date",
			schedule: &models.ReviewSchedule{NextReviewDate: now.AddDate(0, 0, 1)},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDue(tt.schedule, now); got != tt.want {
				t.Errorf("IsDue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReviewPriorityNewWord(t *testing.T) {
	now := time.Now()
	if got := ReviewPriority(nil, 0, now); got != 100 {
		t.Errorf("ReviewPriority(nil) = %v, want 100", got)
	}
}

func TestReviewPriorityMonotonicInOverdue(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.Local)

	// Identical mastery and repetitions, one twice as overdue
	oneDay := &models.ReviewSchedule{NextReviewDate: now.AddDate(0, 0, -1), Repetitions: 2}
	twoDays := &models.ReviewSchedule{NextReviewDate: now.AddDate(0, 0, -2), Repetitions: 2}

	p1 := ReviewPriority(oneDay, 40, now)
	p2 := ReviewPriority(twoDays, 40, now)
	if p2 <= p1 {
		t.Errorf("more overdue word should rank higher: %v <= %v", p2, p1)
	}

	// Beyond the cap extra overdue days stop adding points
	sixDays := &models.ReviewSchedule{NextReviewDate: now.AddDate(0, 0, -6), Repetitions: 2}
	tenDays := &models.ReviewSchedule{NextReviewDate: now.AddDate(0, 0, -10), Repetitions: 2}
	if ReviewPriority(sixDays, 40, now) != ReviewPriority(tenDays, 40, now) {
		t.Error("overdue points should cap at 50")
	}
}

func TestReviewPriorityMasteryAndRepetitions(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.Local)
	due := now.AddDate(0, 0, -1)

	t.Run("lower mastery ranks higher", func(t *testing.T) {
		schedule := &models.ReviewSchedule{NextReviewDate: due, Repetitions: 2}
		low := ReviewPriority(schedule, 10, now)
		high := ReviewPriority(schedule, 90, now)
		if low <= high {
			t.Errorf("low mastery %v should outrank high mastery %v", low, high)
		}
	})

	t.Run("fewer repetitions rank higher", func(t *testing.T) {
		fresh := &models.ReviewSchedule{NextReviewDate: due, Repetitions: 0}
		seasoned := &models.ReviewSchedule{NextReviewDate: due, Repetitions: 8}
		if ReviewPriority(fresh, 50, now) <= ReviewPriority(seasoned, 50, now) {
			t.Error("word with fewer repetitions should rank higher")
		}
	})

	t.Run("bounded above by new-word priority", func(t *testing.T) {
		worst := &models.ReviewSchedule{NextReviewDate: now.AddDate(0, 0, -30), Repetitions: 0}
		if p := ReviewPriority(worst, 0, now); p > 100 {
			t.Errorf("priority %v exceeds new-word maximum", p)
		}
	})
}

func TestMasteryLevel(t *testing.T) {
	tests := []struct {
		name     string
		schedule *models.ReviewSchedule
		want     int
	}{
		{
			name:     "nil schedule",
			schedule: nil,
			want:     0,
		},
		{
			name:     "fresh word",
			schedule: &models.ReviewSchedule{Interval: 1, Repetitions: 0},
			want:     1,
		},
		{
			name: "fully mastered",
			schedule: &models.ReviewSchedule{
				Interval:       45,
				Repetitions:    6,
				TotalReviews:   10,
				CorrectReviews: 10,
			},
			want: 100,
		},
		{
			name: "mid progress",
			schedule: &models.ReviewSchedule{
				Interval:       6,
				Repetitions:    2,
				TotalReviews:   4,
				CorrectReviews: 2,
			},
			want: 35, // 24 + 6 + 5
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MasteryLevel(tt.schedule); got != tt.want {
				t.Errorf("MasteryLevel() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAnswerResult(t *testing.T) {
	tests := []struct {
		answer      Answer
		wantQuality int
		wantCorrect bool
	}{
		{AnswerForgot, 1, false},
		{AnswerUnfamiliar, 3, true},
		{AnswerKnew, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.answer.String(), func(t *testing.T) {
			result := tt.answer.Result()
			if result.Quality != tt.wantQuality || result.IsCorrect != tt.wantCorrect {
				t.Errorf("Result() = %+v, want {%d %v}", result, tt.wantQuality, tt.wantCorrect)
			}
		})
	}
}

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		input   string
		want    Answer
		wantErr bool
	}{
		{input: "f", want: AnswerForgot},
		{input: "forgot", want: AnswerForgot},
		{input: "U", want: AnswerUnfamiliar},
		{input: " knew ", want: AnswerKnew},
		{input: "k", want: AnswerKnew},
		{input: "maybe", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAnswer(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseAnswer(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAnswer(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseAnswer(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
