package gameplay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pacpong/pkg/engine/sprite"
	"pacpong/pkg/engine/world"
	"pacpong/pkg/game/state"
)

type recordingTransitioner struct {
	requests []string
}

func (r *recordingTransitioner) Replace(name string) {
	r.requests = append(r.requests, name)
}

// newFixture builds a one-row corridor between two rows of walls:
//
//	1 1 1 1 1
//	1 0 2 2 1
//	1 1 1 1 1
//
// Cells are 10 units wide with the origin at 0,0. Coins sit in cells 7 and 10.
func newFixture(t *testing.T) (*Resolver, *recordingTransitioner) {
	t.Helper()
	g, err := world.NewGrid(3, 5, []int{
		1, 1, 1,
		1, 0, 1,
		1, 2, 1,
		1, 2, 1,
		1, 1, 1,
	}, world.Vec2{}, 10)
	require.NoError(t, err)

	reg := sprite.NewRegistry()
	cells := sprite.CellSprites{}
	g.ForEachCell(func(c world.Cell) {
		size := world.Vec2{X: 10, Y: 10}
		switch c.Kind {
		case world.Empty:
			return
		case world.Coin:
			size = world.Vec2{X: 4, Y: 4}
		}
		cells[c.Index] = reg.Add(sprite.Entity{Position: g.CellCenter(c.Index), Size: size, Visible: true, Static: true})
	})

	tr := &recordingTransitioner{}
	r := &Resolver{
		Reg:       reg,
		Grid:      g,
		Cells:     cells,
		Player:    reg.Add(sprite.Entity{Position: world.Vec2{X: 15, Y: 15}, Size: world.Vec2{X: 8, Y: 8}, Visible: true}),
		Adversary: reg.Add(sprite.Entity{Position: world.Vec2{X: 200, Y: 200}, Size: world.Vec2{X: 8, Y: 8}, Visible: true}),
		Power:     reg.Add(sprite.Entity{Position: world.Vec2{X: 300, Y: 300}, Size: world.Vec2{X: 6, Y: 6}, Visible: true, Static: true}),
		Round:     state.NewRound(),
		Session:   state.NewSession(),
		Rules: Rules{
			WinThreshold:    2,
			Pushback:        5,
			EdibleDuration:  10,
			AdversarySpawn:  world.Vec2{X: 500, Y: 500},
			RespawnVelocity: world.Vec2{Y: -100},
		},
		Transition: tr,
	}
	return r, tr
}

func (r *Resolver) player() *sprite.Entity    { return r.Reg.Get(r.Player) }
func (r *Resolver) adversary() *sprite.Entity { return r.Reg.Get(r.Adversary) }

func TestResolve_PlayerStopsAtWall(t *testing.T) {
	tests := []struct {
		name    string
		pos     world.Vec2
		vel     world.Vec2
		wantPos world.Vec2
		wantVel world.Vec2
	}{
		{"up into top wall", world.Vec2{X: 15, Y: 13}, world.Vec2{Y: -60}, world.Vec2{X: 15, Y: 18}, world.Vec2{}},
		{"down into bottom wall", world.Vec2{X: 15, Y: 17}, world.Vec2{Y: 60}, world.Vec2{X: 15, Y: 12}, world.Vec2{}},
		{"left into side wall", world.Vec2{X: 13, Y: 15}, world.Vec2{X: -60}, world.Vec2{X: 18, Y: 15}, world.Vec2{}},
		{"free movement", world.Vec2{X: 15, Y: 15}, world.Vec2{X: 60}, world.Vec2{X: 15, Y: 15}, world.Vec2{X: 60}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newFixture(t)
			p := r.player()
			p.Position, p.Velocity = tt.pos, tt.vel

			r.Resolve(1.0 / 60)

			assert.Equal(t, tt.wantPos, p.Position)
			assert.Equal(t, tt.wantVel, p.Velocity)
		})
	}
}

func TestResolve_CoinCollectedOnce(t *testing.T) {
	r, tr := newFixture(t)
	r.player().Position = world.Vec2{X: 25, Y: 15}

	r.Resolve(1.0 / 60)
	r.Resolve(1.0 / 60)

	assert.Equal(t, 1, r.Round.Coins)
	assert.True(t, r.Round.Collected.Has(7))
	assert.Equal(t, sprite.Offscreen, r.Reg.Get(r.Cells[7]).Position, "coin tombstoned")
	assert.Empty(t, tr.requests)

	// Walking back over the parked coin's cell changes nothing
	r.Reg.Get(r.Cells[7]).Position = world.Vec2{X: 25, Y: 15}
	r.Resolve(1.0 / 60)
	assert.Equal(t, 1, r.Round.Coins)
}

func TestResolve_WinThresholdHandsOffOnce(t *testing.T) {
	r, tr := newFixture(t)
	p := r.player()
	p.Position = world.Vec2{X: 30, Y: 15}
	p.Size = world.Vec2{X: 12, Y: 8}

	r.Resolve(1.0 / 60)
	r.Resolve(1.0 / 60)

	assert.Equal(t, 2, r.Round.Coins)
	assert.Equal(t, []string{MenuScene}, tr.requests)
	assert.Equal(t, state.OutcomeWon, r.Round.Outcome)
	assert.Equal(t, 2, r.Session.Best)

	// A later loss in the same scene instance does not fire again
	r.adversary().Position = p.Position
	r.Resolve(1.0 / 60)
	assert.Len(t, tr.requests, 1)
	assert.Equal(t, state.OutcomeWon, r.Round.Outcome)
}

func TestResolve_AdversaryContactLoses(t *testing.T) {
	r, tr := newFixture(t)
	r.adversary().Position = world.Vec2{X: 18, Y: 15}

	r.Resolve(1.0 / 60)
	r.Resolve(1.0 / 60)

	assert.Equal(t, []string{MenuScene}, tr.requests)
	assert.Equal(t, state.OutcomeLost, r.Round.Outcome)
	assert.Equal(t, 1, r.Session.Rounds)
}

func TestResolve_PowerItemMakesAdversaryEdible(t *testing.T) {
	r, tr := newFixture(t)
	p := r.player()
	p.Position = r.Reg.Get(r.Power).Position

	r.Resolve(1.0 / 60)
	require.True(t, r.Round.Edible)
	assert.Zero(t, r.Round.EdibleTimer)

	// Contact while edible respawns the adversary instead of losing
	r.adversary().Position = p.Position
	r.Resolve(1.0 / 60)
	assert.Empty(t, tr.requests)
	assert.Equal(t, r.Rules.AdversarySpawn, r.adversary().Position)
	assert.Equal(t, r.Rules.RespawnVelocity, r.adversary().Velocity)
	assert.Equal(t, r.Reg.Get(r.Power).Position, world.Vec2{X: 300, Y: 300}, "power item stays by default")
}

func TestResolve_EdibleExpiresAfterDuration(t *testing.T) {
	r, tr := newFixture(t)
	p := r.player()
	p.Position = r.Reg.Get(r.Power).Position
	r.Resolve(0)
	require.True(t, r.Round.Edible)

	p.Position = world.Vec2{X: 15, Y: 15}
	for i := 0; i < 10; i++ {
		// The adversary keeps getting eaten along the way
		r.adversary().Position = p.Position
		r.Resolve(1)
	}
	assert.True(t, r.Round.Edible, "exactly the duration is still inside the window")
	assert.Empty(t, tr.requests, "contacts within the window were respawns")

	// The tick that crosses the duration ends edible mode before the contact
	r.adversary().Position = p.Position
	r.Resolve(1)
	assert.False(t, r.Round.Edible)
	assert.Equal(t, []string{MenuScene}, tr.requests)
}

func TestResolve_StandingOnPowerDoesNotExtend(t *testing.T) {
	r, _ := newFixture(t)
	p := r.player()
	p.Position = r.Reg.Get(r.Power).Position

	r.Resolve(0)
	require.True(t, r.Round.Edible)
	for i := 0; i < 11; i++ {
		r.Resolve(1)
	}
	assert.False(t, r.Round.Edible, "edible mode ends while the player still stands on the item")

	// Stepping off and back on arms it again
	p.Position = world.Vec2{X: 15, Y: 15}
	r.Resolve(0)
	p.Position = r.Reg.Get(r.Power).Position
	r.Resolve(0)
	assert.True(t, r.Round.Edible)
	assert.Zero(t, r.Round.EdibleTimer)
}

func TestResolve_ConsumePower(t *testing.T) {
	r, _ := newFixture(t)
	r.Rules.ConsumePower = true
	r.player().Position = r.Reg.Get(r.Power).Position

	r.Resolve(0)

	assert.True(t, r.Round.Edible)
	assert.Equal(t, sprite.Offscreen, r.Reg.Get(r.Power).Position)
}

func TestResolve_NoPowerItem(t *testing.T) {
	r, _ := newFixture(t)
	r.Power = sprite.None
	r.Resolve(1)
	assert.False(t, r.Round.Edible)
}
