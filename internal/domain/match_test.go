package domain

import "testing"

func TestCanonicalPair(t *testing.T) {
	tests := []struct {
		a, b         int
		wantA, wantB int
	}{
		{1, 2, 1, 2},
		{2, 1, 1, 2},
		{7, 7, 7, 7},
		{100, 3, 3, 100},
	}
	for _, tt := range tests {
		gotA, gotB := CanonicalPair(tt.a, tt.b)
		if gotA != tt.wantA || gotB != tt.wantB {
			t.Errorf("CanonicalPair(%d, %d) = (%d, %d), want (%d, %d)",
				tt.a, tt.b, gotA, gotB, tt.wantA, tt.wantB)
		}
	}
}

func TestMatchStatus_Actionable(t *testing.T) {
	tests := []struct {
		status MatchStatus
		want   bool
	}{
		{MatchAccepted, true},
		{MatchRejected, true},
		{MatchPending, false},
		{MatchStatus("blocked"), false},
		{MatchStatus(""), false},
	}
	for _, tt := range tests {
		if got := tt.status.Actionable(); got != tt.want {
			t.Errorf("Actionable(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestMatch_ParticipantLookups(t *testing.T) {
	m := &Match{User1ID: 3, User2ID: 8}

	if !m.HasUser(3) || !m.HasUser(8) {
		t.Error("both participants must be recognized")
	}
	if m.HasUser(5) {
		t.Error("outsider recognized as participant")
	}

	if other, ok := m.OtherUserID(3); !ok || other != 8 {
		t.Errorf("OtherUserID(3) = (%d, %v), want (8, true)", other, ok)
	}
	if other, ok := m.OtherUserID(8); !ok || other != 3 {
		t.Errorf("OtherUserID(8) = (%d, %v), want (3, true)", other, ok)
	}
	if _, ok := m.OtherUserID(5); ok {
		t.Error("OtherUserID must fail for a non-participant")
	}
}
