package repository

import (
	"context"

	"github.com/campushub/backend/internal/domain"
)

type MatchRepository interface {
	// Upsert stores a score for the canonical pair, updating the score in
	// place if the pair already has a row. Status is never touched here.
	Upsert(ctx context.Context, user1ID, user2ID int, score float64) error
	GetByID(ctx context.Context, id int) (*domain.Match, error)
	// GetDetailsForUser lists a user's matches joined with the counterpart's
	// profile, excluding rejected ones, best score first.
	GetDetailsForUser(ctx context.Context, userID int) ([]*domain.MatchDetail, error)
	// DeleteAllForUser removes every row where the user appears on either
	// side, regardless of status.
	DeleteAllForUser(ctx context.Context, userID int) error
	// SetStatus updates the status only when actingUserID is a participant of
	// the match. Returns whether a row was updated; zero rows is not an error.
	SetStatus(ctx context.Context, matchID, actingUserID int, status domain.MatchStatus) (bool, error)
}
