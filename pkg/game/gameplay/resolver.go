// Package gameplay resolves what happens when sprites touch: walls stop the
// player, coins are collected, the adversary ends the round or is eaten, and the
// Pong ball bounces between the paddles.
package gameplay

import (
	"log"

	"pacpong/pkg/engine/sprite"
	"pacpong/pkg/engine/world"
	"pacpong/pkg/game/state"
)

// MenuScene is the scene a finished round hands control to
const MenuScene = "menu"

// Transitioner replaces the active scene. Requests are fire-and-forget.
type Transitioner interface {
	Replace(name string)
}

// Rules are the tuning constants of the maze round
type Rules struct {
	WinThreshold    int
	Pushback        float64
	EdibleDuration  float64 // Seconds
	ConsumePower    bool    // Tombstone the power item on first touch
	AdversarySpawn  world.Vec2
	RespawnVelocity world.Vec2
}

// Resolver applies the maze collision rules once per tick, after the sprites
// have moved. Power is sprite.None when the scene has no power item.
type Resolver struct {
	Reg   *sprite.Registry
	Grid  *world.Grid
	Cells sprite.CellSprites

	Player    sprite.ID
	Adversary sprite.ID
	Power     sprite.ID

	Round      *state.Round
	Session    *state.Session
	Rules      Rules
	Transition Transitioner

	onPower bool // Player overlapped the power item last tick
}

// Resolve runs the collision steps in order: player against walls, coins, the
// adversary, and finally the power item. The edible countdown advances before
// the adversary check.
func (r *Resolver) Resolve(dt float64) {
	player := r.Reg.Get(r.Player)
	if player == nil {
		return
	}
	r.resolveWalls(player)
	r.resolveCoins(player)
	r.Round.TickEdible(dt, r.Rules.EdibleDuration)
	r.resolveAdversary(player)
	r.resolvePower(player)
}

// resolveWalls pushes the player out of every wall it still overlaps, in cell
// order. A fast player can keep some overlap; the next tick corrects again.
func (r *Resolver) resolveWalls(player *sprite.Entity) {
	for _, idx := range r.Reg.Overlaps(player.Bounds(), r.Grid, r.Cells, world.Wall) {
		wall := r.Reg.Get(r.Cells[idx])
		if !player.Intersects(wall) {
			continue
		}
		player.PushBack(r.Rules.Pushback)
	}
}

func (r *Resolver) resolveCoins(player *sprite.Entity) {
	for _, idx := range r.Reg.Overlaps(player.Bounds(), r.Grid, r.Cells, world.Coin) {
		if !r.Round.Collect(idx) {
			continue
		}
		r.Reg.Tombstone(r.Cells[idx])
		if r.Round.Coins >= r.Rules.WinThreshold {
			r.handOff(state.OutcomeWon)
		}
	}
}

func (r *Resolver) resolveAdversary(player *sprite.Entity) {
	adv := r.Reg.Get(r.Adversary)
	if adv == nil || !player.Intersects(adv) {
		return
	}
	if r.Round.Edible {
		adv.Position = r.Rules.AdversarySpawn
		adv.Velocity = r.Rules.RespawnVelocity
		return
	}
	r.handOff(state.OutcomeLost)
}

// resolvePower arms edible mode when the player steps onto the power item.
// Standing on it does not re-arm the countdown.
func (r *Resolver) resolvePower(player *sprite.Entity) {
	power := r.Reg.Get(r.Power)
	touching := power != nil && player.Intersects(power)
	stepped := touching && !r.onPower
	r.onPower = touching
	if !stepped {
		return
	}
	r.Round.StartEdible()
	if r.Rules.ConsumePower {
		r.Reg.Tombstone(r.Power)
	}
}

// handOff ends the round at most once per scene instance
func (r *Resolver) handOff(o state.Outcome) {
	if !r.Round.HandOff(o) {
		return
	}
	log.Printf("Round %s with %d coins, handing off to %q", o, r.Round.Coins, MenuScene)
	if r.Session != nil {
		r.Session.Record(o, r.Round.Coins)
	}
	if r.Transition != nil {
		r.Transition.Replace(MenuScene)
	}
}
