package roommate

import (
	"context"
	"fmt"
	"sort"

	"github.com/campushub/backend/internal/domain"
	"github.com/campushub/backend/internal/repository"
	"go.uber.org/zap"
)

const (
	// topMatchLimit is how many matches survive a recompute.
	topMatchLimit = 10
	// notifyScoreThreshold marks a match as high-quality, eligible for a
	// proactive notification.
	notifyScoreThreshold = 75.0
)

// Notifier dispatches match-quality notifications. Dispatch is best-effort:
// a failing notifier must never fail the recompute that invoked it.
type Notifier interface {
	NotifyMatch(ctx context.Context, targetUserID int, initiatorName string, score float64) error
}

// RankedMatch is one scored candidate in a recompute result.
type RankedMatch struct {
	UserID int     `json:"user_id"`
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
}

// MatchingService runs the recompute cycle: filter the active pool, score
// every candidate, keep the best and replace the user's stored match set.
type MatchingService struct {
	profileRepo repository.RoommateProfileRepository
	matchRepo   repository.MatchRepository
	notifier    Notifier
	log         *zap.Logger
}

func NewMatchingService(
	profileRepo repository.RoommateProfileRepository,
	matchRepo repository.MatchRepository,
	notifier Notifier,
	log *zap.Logger,
) *MatchingService {
	return &MatchingService{
		profileRepo: profileRepo,
		matchRepo:   matchRepo,
		notifier:    notifier,
		log:         log,
	}
}

// RunMatchingForUser recomputes the user's matches and replaces the stored
// set wholesale: all existing rows involving the user are deleted before the
// new top list is written, so a recompute can silently drop a match the
// counterpart had already accepted. Returns ErrRoommateProfileNotFound if the
// user never saved a profile. An empty candidate pool returns an empty list
// without touching storage.
func (s *MatchingService) RunMatchingForUser(ctx context.Context, userID int, notify bool) ([]RankedMatch, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	// An opted-out requester gets no candidates; valid outcome, not an error.
	if !profile.IsActive {
		return []RankedMatch{}, nil
	}

	candidates, err := s.profileRepo.GetActiveExcluding(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate pool: %w", err)
	}

	pool := filterCandidates(profile, candidates)
	if len(pool) == 0 {
		return []RankedMatch{}, nil
	}

	ranked := rankCandidates(profile, pool)
	if len(ranked) > topMatchLimit {
		ranked = ranked[:topMatchLimit]
	}

	// Full replace: the delete must finish before inserts start so stale and
	// fresh rows never coexist.
	if err := s.matchRepo.DeleteAllForUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to clear previous matches: %w", err)
	}
	for _, m := range ranked {
		if err := s.matchRepo.Upsert(ctx, userID, m.UserID, m.Score); err != nil {
			return nil, fmt.Errorf("failed to store match with user %d: %w", m.UserID, err)
		}
	}

	if notify {
		s.notifyHighQuality(ctx, profile, ranked)
	}

	return ranked, nil
}

// filterCandidates narrows the pool to eligible candidates. Matching is
// same-gender only; this is a hard policy filter, not a scored attribute.
func filterCandidates(me *domain.RoommateProfile, pool []*domain.RoommateProfile) []*domain.RoommateProfile {
	var eligible []*domain.RoommateProfile
	for _, c := range pool {
		if c.Gender == me.Gender {
			eligible = append(eligible, c)
		}
	}
	return eligible
}

// rankCandidates scores every candidate and sorts best first. Ties are broken
// by candidate user id ascending so the ranking is deterministic regardless
// of the order the pool came back in.
func rankCandidates(me *domain.RoommateProfile, pool []*domain.RoommateProfile) []RankedMatch {
	ranked := make([]RankedMatch, 0, len(pool))
	for _, c := range pool {
		ranked = append(ranked, RankedMatch{
			UserID: c.UserID,
			Name:   c.Name,
			Score:  CompatibilityScore(me, c),
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].UserID < ranked[j].UserID
	})
	return ranked
}

func (s *MatchingService) notifyHighQuality(ctx context.Context, me *domain.RoommateProfile, ranked []RankedMatch) {
	if s.notifier == nil {
		return
	}
	for _, m := range ranked {
		if m.Score < notifyScoreThreshold {
			continue
		}
		if err := s.notifier.NotifyMatch(ctx, m.UserID, me.Name, m.Score); err != nil {
			s.log.Warn("match notification failed",
				zap.Int("target_user_id", m.UserID),
				zap.Float64("score", m.Score),
				zap.Error(err),
			)
		}
	}
}
