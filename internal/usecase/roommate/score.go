package roommate

import (
	"math"

	"github.com/campushub/backend/internal/domain"
)

// Attribute weights for compatibility scoring. They must sum to 1.0 so a
// candidate matching on every attribute scores exactly 100.
const (
	weightSleepSchedule = 0.35
	weightCleanliness   = 0.25
	weightStudyHabits   = 0.25
	weightBudgetRange   = 0.15
)

const (
	// flexibleSleepCredit is the partial sub-score when schedules differ but
	// either side is flexible.
	flexibleSleepCredit = 60
	// missingBudgetCredit is the neutral sub-score when either side has not
	// set a budget; absent data is not treated as a mismatch.
	missingBudgetCredit = 50
)

// CompatibilityScore computes a 0-100 compatibility score between two
// lifestyle profiles, rounded to one decimal. It is a pure symmetric function
// of sleep schedule, cleanliness, study habits and budget range; gender and
// bio are never scored.
func CompatibilityScore(a, b *domain.RoommateProfile) float64 {
	score := 0.0

	// sleep_schedule: exact match, with partial credit for flexible
	switch {
	case a.SleepSchedule == b.SleepSchedule:
		score += weightSleepSchedule * 100
	case a.SleepSchedule == domain.SleepFlexible || b.SleepSchedule == domain.SleepFlexible:
		score += weightSleepSchedule * flexibleSleepCredit
	}

	// cleanliness: linear in the distance on the 1-5 scale
	cleanDiff := math.Abs(float64(a.Cleanliness - b.Cleanliness))
	score += weightCleanliness * math.Max(0, 100-cleanDiff*25)

	// study_habits: exact match only
	if a.StudyHabits == b.StudyHabits {
		score += weightStudyHabits * 100
	}

	// budget_range: opaque string comparison
	switch {
	case hasBudget(a) && hasBudget(b) && *a.BudgetRange == *b.BudgetRange:
		score += weightBudgetRange * 100
	case !hasBudget(a) || !hasBudget(b):
		score += weightBudgetRange * missingBudgetCredit
	}

	return math.Round(score*10) / 10
}

func hasBudget(p *domain.RoommateProfile) bool {
	return p.BudgetRange != nil && *p.BudgetRange != ""
}
