package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/campushub/backend/internal/domain"
	"github.com/campushub/backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type roommateProfileRepository struct {
	db *sqlx.DB
}

func NewRoommateProfileRepository(db *sqlx.DB) repository.RoommateProfileRepository {
	return &roommateProfileRepository{db: db}
}

func (r *roommateProfileRepository) Upsert(ctx context.Context, profile *domain.RoommateProfile) error {
	query := `
		INSERT INTO roommate_profiles
			(user_id, sleep_schedule, cleanliness, study_habits, gender, budget_range, bio, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
		ON CONFLICT (user_id) DO UPDATE SET
			sleep_schedule = EXCLUDED.sleep_schedule,
			cleanliness    = EXCLUDED.cleanliness,
			study_habits   = EXCLUDED.study_habits,
			gender         = EXCLUDED.gender,
			budget_range   = EXCLUDED.budget_range,
			bio            = EXCLUDED.bio,
			is_active      = TRUE,
			updated_at     = CURRENT_TIMESTAMP
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(ctx, query,
		profile.UserID, profile.SleepSchedule, profile.Cleanliness, profile.StudyHabits,
		profile.Gender, profile.BudgetRange, profile.Bio,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

const profileSelect = `
	SELECT rp.id, rp.user_id, rp.sleep_schedule, rp.cleanliness, rp.study_habits,
	       rp.gender, rp.budget_range, rp.bio, rp.is_active, rp.created_at, rp.updated_at,
	       u.name, u.university, u.avatar_url
	FROM roommate_profiles rp
	JOIN users u ON u.id = rp.user_id
`

func (r *roommateProfileRepository) GetByUserID(ctx context.Context, userID int) (*domain.RoommateProfile, error) {
	var profile domain.RoommateProfile
	query := profileSelect + ` WHERE rp.user_id = $1`
	err := r.db.GetContext(ctx, &profile, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoommateProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *roommateProfileRepository) GetActiveExcluding(ctx context.Context, userID int) ([]*domain.RoommateProfile, error) {
	var profiles []*domain.RoommateProfile
	query := profileSelect + ` WHERE rp.is_active = TRUE AND rp.user_id != $1 ORDER BY rp.user_id`
	err := r.db.SelectContext(ctx, &profiles, query, userID)
	return profiles, err
}

func (r *roommateProfileRepository) Deactivate(ctx context.Context, userID int) error {
	query := `UPDATE roommate_profiles SET is_active = FALSE, updated_at = CURRENT_TIMESTAMP WHERE user_id = $1`
	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrRoommateProfileNotFound
	}
	return nil
}
