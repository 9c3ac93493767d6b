// Package ai drives the computer-controlled sprites: the wandering adversary
// of the maze and the left paddle of the Pong court.
package ai

import (
	"pacpong/pkg/engine/sprite"
	"pacpong/pkg/engine/world"
)

// Rand is the random source the controllers draw from. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Wanderer bounces the adversary around the maze. It never plans a path: when
// the adversary runs into a wall it is pushed back and sent off in a random
// direction other than the one it was blocked in.
type Wanderer struct {
	Rand     Rand
	Speed    float64
	Pushback float64
}

// Step checks the adversary against the wall cells around it and redirects it
// on the first wall it overlaps. It reports whether a correction happened.
func (w *Wanderer) Step(reg *sprite.Registry, id sprite.ID, grid *world.Grid, cells sprite.CellSprites) bool {
	e := reg.Get(id)
	if e == nil {
		return false
	}
	if _, hit := reg.FirstOverlap(e.Bounds(), grid, cells, world.Wall); !hit {
		return false
	}

	blocked, ok := e.PushBack(w.Pushback)
	if !ok {
		return false
	}
	e.Velocity = w.redirect(blocked).Velocity(w.Speed)
	return true
}

// redirect picks uniformly among the three directions other than blocked
func (w *Wanderer) redirect(blocked world.Direction) world.Direction {
	choices := make([]world.Direction, 0, 3)
	for _, d := range world.AllDirections() {
		if d != blocked {
			choices = append(choices, d)
		}
	}
	return choices[w.Rand.Intn(len(choices))]
}
