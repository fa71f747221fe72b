package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"vocabtrainer/internal/models"
)

// UserSource yields the users who want a reminder at a given local hour
type UserSource interface {
	GetUsersByReminderHour(hour int) ([]models.User, error)
}

// DueCounter reports how many words a user has waiting for review
type DueCounter interface {
	CountDue(userID int64, now time.Time) (int, error)
}

// Notifier delivers a due-words reminder to a user
type Notifier interface {
	SendDueReminder(ctx context.Context, user *models.User, dueCount int) error
}

// Scheduler runs the hourly reminder job: every hour inside the configured
// window it finds users whose preferred reminder hour matches and notifies
// those with due words.
type Scheduler struct {
	scheduler *gocron.Scheduler
	users     UserSource
	progress  DueCounter
	notifier  Notifier
	startHour int
	endHour   int
}

// New creates a reminder scheduler limited to the [startHour, endHour] local window
func New(users UserSource, progress DueCounter, notifier Notifier, startHour, endHour int) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.Local),
		users:     users,
		progress:  progress,
		notifier:  notifier,
		startHour: startHour,
		endHour:   endHour,
	}
}

// Start begins the hourly reminder job without blocking
func (s *Scheduler) Start() {
	s.scheduler.Every(1).Hour().Do(s.runReminderPass)
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled jobs
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) runReminderPass() {
	now := time.Now()
	hour := now.Hour()

	if hour < s.startHour || hour > s.endHour {
		log.Printf("Hour %d outside reminder window (%d-%d), skipping pass", hour, s.startHour, s.endHour)
		return
	}

	users, err := s.users.GetUsersByReminderHour(hour)
	if err != nil {
		log.Printf("Error loading users for reminder hour %d: %v", hour, err)
		return
	}

	for i := range users {
		user := &users[i]

		dueCount, err := s.progress.CountDue(user.ID, now)
		if err != nil {
			log.Printf("Error counting due words for user %d: %v", user.ID, err)
			continue
		}
		if dueCount == 0 {
			continue
		}

		if err := s.notifier.SendDueReminder(context.Background(), user, dueCount); err != nil {
			log.Printf("Error sending reminder to user %d: %v", user.ID, err)
		}
	}
}
