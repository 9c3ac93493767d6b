package ai

import (
	"pacpong/pkg/engine/sprite"
)

// PaddleTracker moves the computer paddle after the ball. The paddle only
// reacts while the ball heads toward its side of the court vertically, and
// moves at half speed while the ball travels away from it.
type PaddleTracker struct {
	Speed float64
}

// Step updates the paddle for this tick. top and bottom are the court borders;
// a paddle touching either is clamped against it and stopped.
func (p *PaddleTracker) Step(reg *sprite.Registry, paddle, ball, top, bottom sprite.ID) {
	pe, be := reg.Get(paddle), reg.Get(ball)
	te, bo := reg.Get(top), reg.Get(bottom)
	if pe == nil || be == nil || te == nil || bo == nil {
		return
	}

	switch {
	case pe.Intersects(te):
		pe.Position.Y = te.Bounds().Bottom() + pe.Height()/2
		pe.Velocity.Y = 0
	case pe.Intersects(bo):
		pe.Position.Y = bo.Bounds().Top() - pe.Height()/2
		pe.Velocity.Y = 0
	default:
		factor := 0.5
		if be.Velocity.X < 0 {
			factor = 1
		}
		dy := be.Position.Y - pe.Position.Y
		switch {
		case be.Velocity.Y < 0:
			if dy < 0 {
				pe.Velocity.Y = -p.Speed * factor
			} else {
				pe.Velocity.Y = 0
			}
		case be.Velocity.Y > 0:
			if dy > 0 {
				pe.Velocity.Y = p.Speed * factor
			} else {
				pe.Velocity.Y = 0
			}
		}
	}
}
