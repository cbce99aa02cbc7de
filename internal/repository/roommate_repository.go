package repository

import (
	"context"

	"github.com/campushub/backend/internal/domain"
)

type RoommateProfileRepository interface {
	// Upsert creates the profile on first save and overwrites it afterwards,
	// always resetting is_active to true.
	Upsert(ctx context.Context, profile *domain.RoommateProfile) error
	GetByUserID(ctx context.Context, userID int) (*domain.RoommateProfile, error)
	// GetActiveExcluding returns every active profile except the given user's,
	// ordered by user id ascending.
	GetActiveExcluding(ctx context.Context, userID int) ([]*domain.RoommateProfile, error)
	Deactivate(ctx context.Context, userID int) error
}
