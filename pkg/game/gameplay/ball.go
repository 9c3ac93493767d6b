package gameplay

import (
	"pacpong/pkg/engine/sprite"
	"pacpong/pkg/game/state"
)

// BallRules are the Pong court rules. Player is the character sprite that
// ends the round when it walks into the bottom border; it may be sprite.None.
type BallRules struct {
	Reg *sprite.Registry

	Ball        sprite.ID
	LeftPaddle  sprite.ID
	RightPaddle sprite.ID
	Top         sprite.ID
	Bottom      sprite.ID
	Player      sprite.ID

	CanvasWidth float64
}

// Check bounces the ball and detects the end of a round. It returns the next
// gameplay state and whether the round should restart.
func (b *BallRules) Check(gp state.Gameplay) (state.Gameplay, bool) {
	ball := b.Reg.Get(b.Ball)
	top, bottom := b.Reg.Get(b.Top), b.Reg.Get(b.Bottom)
	left, right := b.Reg.Get(b.LeftPaddle), b.Reg.Get(b.RightPaddle)
	if ball == nil || top == nil || bottom == nil || left == nil || right == nil {
		return gp, false
	}

	if ball.Intersects(top) {
		ball.Position.Y = top.Bounds().Bottom() + ball.Height()/2
		ball.Velocity.Y = -ball.Velocity.Y
	}
	if ball.Intersects(bottom) {
		ball.Position.Y = bottom.Bounds().Top() - ball.Height()/2
		ball.Velocity.Y = -ball.Velocity.Y
	}

	if gp != state.BallLeaving {
		bb := ball.Bounds()
		if lb := left.Bounds(); bb.Left() < lb.Right() {
			if overlapsVertically(bb.Top(), bb.Bottom(), lb.Top(), lb.Bottom()) {
				ball.Position.X = lb.Right() + ball.Width()/2
				ball.Velocity.X = -ball.Velocity.X
			} else {
				gp = state.BallLeaving
			}
		}
		if rb := right.Bounds(); bb.Right() > rb.Left() {
			if overlapsVertically(bb.Top(), bb.Bottom(), rb.Top(), rb.Bottom()) {
				ball.Position.X = rb.Left() - ball.Width()/2
				ball.Velocity.X = -ball.Velocity.X
			} else {
				gp = state.BallLeaving
			}
		}
	} else {
		bb := ball.Bounds()
		if bb.Right() < 0 || bb.Left() > b.CanvasWidth {
			return gp, true
		}
		// Nothing in flight will ever leave the court
		if ball.Velocity.IsZero() {
			return gp, true
		}
	}

	if player := b.Reg.Get(b.Player); player != nil && player.Visible && player.Intersects(bottom) {
		player.Visible = false
		player.Velocity.X, player.Velocity.Y = 0, 0
		gp = state.BallLeaving
	}
	return gp, false
}

func overlapsVertically(aTop, aBottom, bTop, bBottom float64) bool {
	return aTop < bBottom && aBottom > bTop
}
