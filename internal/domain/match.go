package domain

import "time"

// MatchStatus tracks the accept/reject workflow on a computed match.
type MatchStatus string

const (
	MatchPending  MatchStatus = "pending"
	MatchAccepted MatchStatus = "accepted"
	MatchRejected MatchStatus = "rejected"
)

// Actionable reports whether a participant may transition a match to this
// status. Pending is the initial state only, never a target.
func (s MatchStatus) Actionable() bool {
	return s == MatchAccepted || s == MatchRejected
}

// Match is a computed compatibility relation between two users. The pair is
// stored canonically (user1_id < user2_id) so each pair has exactly one row.
type Match struct {
	ID        int         `json:"id" db:"id"`
	User1ID   int         `json:"user1_id" db:"user1_id"`
	User2ID   int         `json:"user2_id" db:"user2_id"`
	Score     float64     `json:"match_score" db:"match_score"`
	Status    MatchStatus `json:"status" db:"status"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
}

func (m *Match) HasUser(userID int) bool {
	return m.User1ID == userID || m.User2ID == userID
}

func (m *Match) OtherUserID(userID int) (int, bool) {
	if m.User1ID == userID {
		return m.User2ID, true
	}
	if m.User2ID == userID {
		return m.User1ID, true
	}
	return 0, false
}

// CanonicalPair orders two user ids so the smaller one comes first.
func CanonicalPair(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

// MatchDetail is a match row joined with the counterpart's identity and
// lifestyle profile, as returned by listings.
type MatchDetail struct {
	ID                int           `json:"id" db:"id"`
	Score             float64       `json:"match_score" db:"match_score"`
	Status            MatchStatus   `json:"status" db:"status"`
	CreatedAt         time.Time     `json:"created_at" db:"created_at"`
	MatchedUserID     int           `json:"matched_user_id" db:"matched_user_id"`
	MatchedName       string        `json:"matched_name" db:"matched_name"`
	MatchedUniversity *string       `json:"matched_university" db:"matched_university"`
	AvatarURL         *string       `json:"avatar_url" db:"avatar_url"`
	SleepSchedule     SleepSchedule `json:"sleep_schedule" db:"sleep_schedule"`
	Cleanliness       int           `json:"cleanliness" db:"cleanliness"`
	StudyHabits       StudyHabits   `json:"study_habits" db:"study_habits"`
	Gender            string        `json:"gender" db:"gender"`
	BudgetRange       *string       `json:"budget_range" db:"budget_range"`
	Bio               *string       `json:"bio" db:"bio"`
}
