package state

import (
	"github.com/zyedidia/generic/mapset"
)

// Scene is the lifecycle state of a gameplay scene
type Scene int

// Scene states. Loading -> Running is the only forward edge; Error is absorbing.
const (
	SceneLoading Scene = iota
	SceneRunning
	SceneError
)

func (s Scene) String() string {
	switch s {
	case SceneLoading:
		return "LOADING"
	case SceneRunning:
		return "RUNNING"
	case SceneError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Gameplay is the round sub-state, only meaningful while the scene is running
type Gameplay int

// Gameplay states
const (
	Uninitialized Gameplay = iota
	WaitingToStart
	Playing
	BallLeaving
)

func (g Gameplay) String() string {
	switch g {
	case Uninitialized:
		return "UNINITIALIZED"
	case WaitingToStart:
		return "WAITING_TO_START"
	case Playing:
		return "PLAYING"
	case BallLeaving:
		return "BALL_LEAVING"
	}
	return "UNKNOWN"
}

// Outcome is how a scene instance ended
type Outcome int

// Outcomes
const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	}
	return "none"
}

// Round holds the counters of one scene instance
type Round struct {
	Coins     int
	Collected mapset.Set[int] // Cell indices of collected coins

	Edible      bool
	EdibleTimer float64 // Seconds since the power item was last touched

	HandedOff bool
	Outcome   Outcome
}

// NewRound creates an empty round
func NewRound() *Round {
	return &Round{
		Collected: mapset.New[int](),
	}
}

// Collect records the coin at cell. It returns false if that coin was already
// collected, leaving the counter untouched.
func (r *Round) Collect(cell int) bool {
	if r.Collected.Has(cell) {
		return false
	}
	r.Collected.Put(cell)
	r.Coins++
	return true
}

// StartEdible enters edible mode and restarts its countdown
func (r *Round) StartEdible() {
	r.Edible = true
	r.EdibleTimer = 0
}

// TickEdible advances the edible countdown; the mode ends once more than
// duration seconds have passed.
func (r *Round) TickEdible(dt, duration float64) {
	if !r.Edible {
		return
	}
	r.EdibleTimer += dt
	if r.EdibleTimer > duration {
		r.Edible = false
	}
}

// EdibleRemaining returns the seconds left in edible mode, 0 when inactive
func (r *Round) EdibleRemaining(duration float64) float64 {
	if !r.Edible || r.EdibleTimer >= duration {
		return 0
	}
	return duration - r.EdibleTimer
}

// HandOff marks the round as finished with the given outcome. It returns false
// if the round had already been handed off.
func (r *Round) HandOff(o Outcome) bool {
	if r.HandedOff {
		return false
	}
	r.HandedOff = true
	r.Outcome = o
	return true
}

// Session outlives scene instances and feeds the menu
type Session struct {
	Rounds    int
	Last      Outcome
	LastCoins int
	Best      int
}

// NewSession creates an empty session
func NewSession() *Session {
	return &Session{}
}

// Record stores the result of a finished round
func (s *Session) Record(o Outcome, coins int) {
	s.Rounds++
	s.Last = o
	s.LastCoins = coins
	if coins > s.Best {
		s.Best = coins
	}
}
