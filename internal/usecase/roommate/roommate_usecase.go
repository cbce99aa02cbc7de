package roommate

import (
	"context"
	"fmt"

	"github.com/campushub/backend/internal/domain"
	"github.com/campushub/backend/internal/infrastructure/gemini"
	"github.com/campushub/backend/internal/repository"
)

type RoommateUseCase struct {
	profileRepo  repository.RoommateProfileRepository
	matchRepo    repository.MatchRepository
	matching     *MatchingService
	worker       *MatchWorker
	geminiClient *gemini.GeminiClient
}

func NewRoommateUseCase(
	profileRepo repository.RoommateProfileRepository,
	matchRepo repository.MatchRepository,
	matching *MatchingService,
	worker *MatchWorker,
	geminiClient *gemini.GeminiClient,
) *RoommateUseCase {
	return &RoommateUseCase{
		profileRepo:  profileRepo,
		matchRepo:    matchRepo,
		matching:     matching,
		worker:       worker,
		geminiClient: geminiClient,
	}
}

// SaveProfileRequest represents a profile create-or-update
type SaveProfileRequest struct {
	SleepSchedule string  `json:"sleep_schedule" binding:"required,sleepschedule"`
	Cleanliness   int     `json:"cleanliness" binding:"required,min=1,max=5"`
	StudyHabits   string  `json:"study_habits" binding:"required,studyhabits"`
	Gender        string  `json:"gender" binding:"required,max=50"`
	BudgetRange   *string `json:"budget_range" binding:"omitempty,max=50"`
	Bio           *string `json:"bio" binding:"omitempty,max=500"`
}

// GetMyProfile returns the user's roommate profile
func (uc *RoommateUseCase) GetMyProfile(ctx context.Context, userID int) (*domain.RoommateProfile, error) {
	return uc.profileRepo.GetByUserID(ctx, userID)
}

// SaveProfile upserts the user's profile and schedules a background recompute
// of their matches. The save succeeds regardless of the matching outcome.
func (uc *RoommateUseCase) SaveProfile(ctx context.Context, userID int, req *SaveProfileRequest) (*domain.RoommateProfile, error) {
	profile := &domain.RoommateProfile{
		UserID:        userID,
		SleepSchedule: domain.SleepSchedule(req.SleepSchedule),
		Cleanliness:   req.Cleanliness,
		StudyHabits:   domain.StudyHabits(req.StudyHabits),
		Gender:        req.Gender,
		BudgetRange:   req.BudgetRange,
		Bio:           req.Bio,
	}

	if err := uc.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save roommate profile: %w", err)
	}

	if uc.worker != nil {
		uc.worker.Enqueue(userID)
	}

	// Re-read so joined user fields (name, university) are populated.
	return uc.profileRepo.GetByUserID(ctx, userID)
}

// DeactivateProfile opts the user out of matching without deleting the row.
func (uc *RoommateUseCase) DeactivateProfile(ctx context.Context, userID int) error {
	return uc.profileRepo.Deactivate(ctx, userID)
}

// GetMatches lists the user's stored matches with counterpart details,
// rejected ones excluded.
func (uc *RoommateUseCase) GetMatches(ctx context.Context, userID int) ([]*domain.MatchDetail, error) {
	return uc.matchRepo.GetDetailsForUser(ctx, userID)
}

// FindMatches runs a synchronous recompute without notifications and returns
// both the fresh ranking and the stored listing.
func (uc *RoommateUseCase) FindMatches(ctx context.Context, userID int) ([]RankedMatch, []*domain.MatchDetail, error) {
	ranked, err := uc.matching.RunMatchingForUser(ctx, userID, false)
	if err != nil {
		return nil, nil, err
	}
	details, err := uc.matchRepo.GetDetailsForUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return ranked, details, nil
}

// SetMatchStatus lets a participant accept or reject a match. Statuses other
// than accepted/rejected fail before any write. Acting on a match the user is
// not part of (or one that no longer exists) updates nothing and is not an
// error.
func (uc *RoommateUseCase) SetMatchStatus(ctx context.Context, matchID, actingUserID int, status domain.MatchStatus) (bool, error) {
	if !status.Actionable() {
		return false, domain.ErrInvalidMatchStatus
	}
	return uc.matchRepo.SetStatus(ctx, matchID, actingUserID, status)
}

// MatchInsight generates a short AI explanation of why the two participants
// fit. Only a participant may request it.
func (uc *RoommateUseCase) MatchInsight(ctx context.Context, matchID, userID int) (string, error) {
	match, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return "", err
	}
	otherID, ok := match.OtherUserID(userID)
	if !ok {
		return "", domain.ErrMatchNotFound
	}

	mine, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return "", err
	}
	theirs, err := uc.profileRepo.GetByUserID(ctx, otherID)
	if err != nil {
		return "", err
	}

	if uc.geminiClient == nil {
		return gemini.FallbackInsight(mine, theirs), nil
	}
	return uc.geminiClient.GenerateMatchInsight(ctx, mine, theirs, match.Score)
}
