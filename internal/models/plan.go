package models

import "time"

// StudyPlan is a persisted plan of what a user should study on a given day.
// Building the same plan twice for the same (user, day) returns the stored one.
type StudyPlan struct {
	ID        int64
	UserID    int64
	PlanDate  time.Time // midnight local time of the day the plan covers
	CreatedAt time.Time
}

// PlanEntry is one word scheduled inside a study plan
type PlanEntry struct {
	ID          int64
	StudyPlanID int64
	WordID      int64
	IsNew       bool    // word introduced for the first time by this plan
	Priority    float64 // review priority at plan-build time, for ordering
}

// PlanWithEntries combines a plan with its ordered entries
type PlanWithEntries struct {
	Plan    StudyPlan
	Entries []PlanEntry
}
