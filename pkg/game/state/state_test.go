package state

import "testing"

func TestRound_CollectIsIdempotent(t *testing.T) {
	r := NewRound()
	if !r.Collect(7) {
		t.Fatal("first Collect(7) = false, want true")
	}
	if r.Collect(7) {
		t.Error("second Collect(7) = true, want false")
	}
	r.Collect(9)
	if r.Coins != 2 {
		t.Errorf("Coins = %d, want 2", r.Coins)
	}
}

func TestRound_EdibleExpires(t *testing.T) {
	r := NewRound()
	r.StartEdible()
	if !r.Edible || r.EdibleTimer != 0 {
		t.Fatalf("after StartEdible: edible=%v timer=%v", r.Edible, r.EdibleTimer)
	}

	for i := 0; i < 10; i++ {
		r.TickEdible(1, 10)
	}
	if !r.Edible {
		t.Error("edible ended at exactly 10s, want still edible")
	}
	if got := r.EdibleRemaining(10); got != 0 {
		t.Errorf("EdibleRemaining at 10s = %v, want 0", got)
	}

	r.TickEdible(1, 10)
	if r.Edible {
		t.Error("edible after 11s, want false")
	}
}

func TestRound_StartEdibleResetsTimer(t *testing.T) {
	r := NewRound()
	r.StartEdible()
	r.TickEdible(6, 10)
	r.StartEdible()
	r.TickEdible(6, 10)
	if !r.Edible {
		t.Error("edible expired although the timer was reset")
	}
	if got := r.EdibleRemaining(10); got != 4 {
		t.Errorf("EdibleRemaining = %v, want 4", got)
	}
}

func TestRound_HandOffOnce(t *testing.T) {
	r := NewRound()
	if !r.HandOff(OutcomeWon) {
		t.Fatal("first HandOff = false")
	}
	if r.HandOff(OutcomeLost) {
		t.Error("second HandOff = true, want false")
	}
	if r.Outcome != OutcomeWon {
		t.Errorf("Outcome = %v, want won", r.Outcome)
	}
}

func TestSession_Record(t *testing.T) {
	s := NewSession()
	s.Record(OutcomeWon, 4)
	s.Record(OutcomeLost, 1)
	if s.Rounds != 2 || s.Best != 4 || s.Last != OutcomeLost || s.LastCoins != 1 {
		t.Errorf("session = %+v", *s)
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{SceneLoading.String(), "LOADING"},
		{SceneError.String(), "ERROR"},
		{WaitingToStart.String(), "WAITING_TO_START"},
		{BallLeaving.String(), "BALL_LEAVING"},
		{OutcomeNone.String(), "none"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}
