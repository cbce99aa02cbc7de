package roommate

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/campushub/backend/internal/domain"
	"go.uber.org/zap"
)

// In-memory repository fakes. Methods are mutex-guarded so tests that poll
// while the background worker runs stay race-free.

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[int]*domain.RoommateProfile
	failGet  error
	failList error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[int]*domain.RoommateProfile)}
}

func (f *fakeProfileRepo) Upsert(_ context.Context, p *domain.RoommateProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *p
	cp.IsActive = true
	if existing, ok := f.profiles[p.UserID]; ok {
		cp.ID = existing.ID
	} else {
		cp.ID = len(f.profiles) + 1
	}
	f.profiles[p.UserID] = &cp
	p.ID = cp.ID
	p.IsActive = true
	return nil
}

func (f *fakeProfileRepo) GetByUserID(_ context.Context, userID int) (*domain.RoommateProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failGet != nil {
		return nil, f.failGet
	}
	p, ok := f.profiles[userID]
	if !ok {
		return nil, domain.ErrRoommateProfileNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileRepo) GetActiveExcluding(_ context.Context, userID int) ([]*domain.RoommateProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failList != nil {
		return nil, f.failList
	}
	var ids []int
	for id, p := range f.profiles {
		if id != userID && p.IsActive {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	out := make([]*domain.RoommateProfile, 0, len(ids))
	for _, id := range ids {
		cp := *f.profiles[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeProfileRepo) Deactivate(_ context.Context, userID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[userID]
	if !ok {
		return domain.ErrRoommateProfileNotFound
	}
	p.IsActive = false
	return nil
}

func (f *fakeProfileRepo) add(p *domain.RoommateProfile) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *p
	cp.ID = len(f.profiles) + 1
	f.profiles[p.UserID] = &cp
}

type fakeMatchRepo struct {
	mu         sync.Mutex
	rows       []*domain.Match
	nextID     int
	failDelete error
	failUpsert error
}

func (f *fakeMatchRepo) Upsert(_ context.Context, user1ID, user2ID int, score float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpsert != nil {
		return f.failUpsert
	}
	a, b := domain.CanonicalPair(user1ID, user2ID)
	for _, m := range f.rows {
		if m.User1ID == a && m.User2ID == b {
			m.Score = score
			return nil
		}
	}
	f.nextID++
	f.rows = append(f.rows, &domain.Match{
		ID:      f.nextID,
		User1ID: a,
		User2ID: b,
		Score:   score,
		Status:  domain.MatchPending,
	})
	return nil
}

func (f *fakeMatchRepo) GetByID(_ context.Context, id int) (*domain.Match, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.rows {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, domain.ErrMatchNotFound
}

func (f *fakeMatchRepo) GetDetailsForUser(_ context.Context, userID int) ([]*domain.MatchDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.MatchDetail
	for _, m := range f.rows {
		other, ok := m.OtherUserID(userID)
		if !ok || m.Status == domain.MatchRejected {
			continue
		}
		out = append(out, &domain.MatchDetail{
			ID:            m.ID,
			Score:         m.Score,
			Status:        m.Status,
			MatchedUserID: other,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out, nil
}

func (f *fakeMatchRepo) DeleteAllForUser(_ context.Context, userID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failDelete != nil {
		return f.failDelete
	}
	var kept []*domain.Match
	for _, m := range f.rows {
		if !m.HasUser(userID) {
			kept = append(kept, m)
		}
	}
	f.rows = kept
	return nil
}

func (f *fakeMatchRepo) SetStatus(_ context.Context, matchID, actingUserID int, status domain.MatchStatus) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.rows {
		if m.ID == matchID && m.HasUser(actingUserID) {
			m.Status = status
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeMatchRepo) snapshot() []domain.Match {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Match, 0, len(f.rows))
	for _, m := range f.rows {
		out = append(out, *m)
	}
	return out
}

func (f *fakeMatchRepo) seed(id, user1ID, user2ID int, score float64, status domain.MatchStatus) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, b := domain.CanonicalPair(user1ID, user2ID)
	f.rows = append(f.rows, &domain.Match{ID: id, User1ID: a, User2ID: b, Score: score, Status: status})
	if id > f.nextID {
		f.nextID = id
	}
}

type notifyCall struct {
	targetUserID  int
	initiatorName string
	score         float64
}

type fakeNotifier struct {
	mu    sync.Mutex
	calls []notifyCall
	err   error
}

func (f *fakeNotifier) NotifyMatch(_ context.Context, targetUserID int, initiatorName string, score float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, notifyCall{targetUserID, initiatorName, score})
	return f.err
}

func (f *fakeNotifier) snapshot() []notifyCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]notifyCall(nil), f.calls...)
}

func testProfile(userID int, name, gender string, sleep domain.SleepSchedule, clean int, study domain.StudyHabits, budget string) *domain.RoommateProfile {
	p := &domain.RoommateProfile{
		UserID:        userID,
		Name:          name,
		Gender:        gender,
		SleepSchedule: sleep,
		Cleanliness:   clean,
		StudyHabits:   study,
		IsActive:      true,
	}
	if budget != "" {
		p.BudgetRange = &budget
	}
	return p
}

func newTestMatchingService(t *testing.T) (*MatchingService, *fakeProfileRepo, *fakeMatchRepo, *fakeNotifier) {
	t.Helper()
	profiles := newFakeProfileRepo()
	matches := &fakeMatchRepo{}
	notifier := &fakeNotifier{}
	svc := NewMatchingService(profiles, matches, notifier, zap.NewNop())
	return svc, profiles, matches, notifier
}

// waitFor polls until cond holds or the deadline passes.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met within deadline")
}
