package domain

import "time"

// SleepSchedule is the closed set of sleep preference values a profile can hold.
type SleepSchedule string

const (
	SleepEarly    SleepSchedule = "early"
	SleepNightOwl SleepSchedule = "night_owl"
	SleepFlexible SleepSchedule = "flexible"
)

func (s SleepSchedule) Valid() bool {
	switch s {
	case SleepEarly, SleepNightOwl, SleepFlexible:
		return true
	}
	return false
}

// StudyHabits is the closed set of study environment preferences.
type StudyHabits string

const (
	StudyQuiet  StudyHabits = "quiet"
	StudyMusic  StudyHabits = "music"
	StudySocial StudyHabits = "social"
)

func (s StudyHabits) Valid() bool {
	switch s {
	case StudyQuiet, StudyMusic, StudySocial:
		return true
	}
	return false
}

// RoommateProfile holds one user's declared lifestyle preferences.
// There is at most one profile per user; saving again overwrites in place.
type RoommateProfile struct {
	ID            int           `json:"id" db:"id"`
	UserID        int           `json:"user_id" db:"user_id"`
	SleepSchedule SleepSchedule `json:"sleep_schedule" db:"sleep_schedule"`
	Cleanliness   int           `json:"cleanliness" db:"cleanliness"`
	StudyHabits   StudyHabits   `json:"study_habits" db:"study_habits"`
	Gender        string        `json:"gender" db:"gender"`
	BudgetRange   *string       `json:"budget_range" db:"budget_range"`
	Bio           *string       `json:"bio" db:"bio"`
	IsActive      bool          `json:"is_active" db:"is_active"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" db:"updated_at"`

	// Joined from users for listings and notifications.
	Name       string  `json:"name" db:"name"`
	University *string `json:"university" db:"university"`
	AvatarURL  *string `json:"avatar_url" db:"avatar_url"`
}
