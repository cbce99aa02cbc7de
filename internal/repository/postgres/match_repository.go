package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/campushub/backend/internal/domain"
	"github.com/campushub/backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type matchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) repository.MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) Upsert(ctx context.Context, user1ID, user2ID int, score float64) error {
	// The unique constraint on (user1_id, user2_id) makes this safe when two
	// users recompute the same pair concurrently: last write wins on score,
	// a duplicate row can never appear.
	user1ID, user2ID = domain.CanonicalPair(user1ID, user2ID)

	query := `
		INSERT INTO roommate_matches (user1_id, user2_id, match_score)
		VALUES ($1, $2, $3)
		ON CONFLICT (user1_id, user2_id)
		DO UPDATE SET match_score = EXCLUDED.match_score
	`
	_, err := r.db.ExecContext(ctx, query, user1ID, user2ID, score)
	return err
}

func (r *matchRepository) GetByID(ctx context.Context, id int) (*domain.Match, error) {
	var match domain.Match
	query := `SELECT * FROM roommate_matches WHERE id = $1`
	err := r.db.GetContext(ctx, &match, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *matchRepository) GetDetailsForUser(ctx context.Context, userID int) ([]*domain.MatchDetail, error) {
	var details []*domain.MatchDetail
	query := `
		SELECT rm.id, rm.match_score, rm.status, rm.created_at,
		       CASE WHEN rm.user1_id = $1 THEN rm.user2_id ELSE rm.user1_id END AS matched_user_id,
		       u.name AS matched_name, u.university AS matched_university, u.avatar_url,
		       rp.sleep_schedule, rp.cleanliness, rp.study_habits, rp.gender, rp.budget_range, rp.bio
		FROM roommate_matches rm
		JOIN users u ON u.id = CASE WHEN rm.user1_id = $1 THEN rm.user2_id ELSE rm.user1_id END
		JOIN roommate_profiles rp ON rp.user_id = u.id
		WHERE (rm.user1_id = $1 OR rm.user2_id = $1)
		  AND rm.status != 'rejected'
		ORDER BY rm.match_score DESC
	`
	err := r.db.SelectContext(ctx, &details, query, userID)
	return details, err
}

func (r *matchRepository) DeleteAllForUser(ctx context.Context, userID int) error {
	query := `DELETE FROM roommate_matches WHERE user1_id = $1 OR user2_id = $1`
	_, err := r.db.ExecContext(ctx, query, userID)
	return err
}

func (r *matchRepository) SetStatus(ctx context.Context, matchID, actingUserID int, status domain.MatchStatus) (bool, error) {
	// Scoped by participant membership so an unrelated user cannot alter the
	// match; affecting zero rows is a no-op, not an error.
	query := `
		UPDATE roommate_matches SET status = $1
		WHERE id = $2 AND (user1_id = $3 OR user2_id = $3)
	`
	result, err := r.db.ExecContext(ctx, query, status, matchID, actingUserID)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
