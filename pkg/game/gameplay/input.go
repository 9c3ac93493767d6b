package gameplay

import (
	"pacpong/pkg/engine/sprite"
	"pacpong/pkg/engine/world"
)

// Buttons are the on-screen directional buttons, indexed by direction
type Buttons map[world.Direction]sprite.ID

// HitTest returns the direction of the first button containing p, checked in
// up, down, left, right order.
func (b Buttons) HitTest(reg *sprite.Registry, p world.Vec2) (world.Direction, bool) {
	for _, d := range []world.Direction{world.Up, world.Down, world.Left, world.Right} {
		id, ok := b[d]
		if !ok {
			continue
		}
		if e := reg.Get(id); e != nil && e.Contains(p) {
			return d, true
		}
	}
	return world.Up, false
}

// Steer sets the entity moving along d at speed, zeroing the other axis
func Steer(reg *sprite.Registry, id sprite.ID, d world.Direction, speed float64) {
	if e := reg.Get(id); e != nil {
		e.Velocity = d.Velocity(speed)
	}
}

// FollowPaddle moves the user's paddle toward the y of the touch being held
type FollowPaddle struct {
	Speed    float64
	DeadZone float64 // Distance at which the paddle stops instead of jittering

	Target    float64
	Following bool
}

// Track starts following y
func (f *FollowPaddle) Track(y float64) {
	f.Target = y
	f.Following = true
}

// Release stops following
func (f *FollowPaddle) Release() {
	f.Following = false
}

// Step updates the paddle velocity; it is clamped against the court borders
// the same way the computer paddle is.
func (f *FollowPaddle) Step(reg *sprite.Registry, paddle, top, bottom sprite.ID) {
	pe, te, be := reg.Get(paddle), reg.Get(top), reg.Get(bottom)
	if pe == nil || te == nil || be == nil {
		return
	}

	dy := f.Target - pe.Position.Y
	switch {
	case pe.Intersects(te) && (!f.Following || dy < 0):
		pe.Position.Y = te.Bounds().Bottom() + pe.Height()/2
		pe.Velocity.Y = 0
	case pe.Intersects(be) && (!f.Following || dy > 0):
		pe.Position.Y = be.Bounds().Top() - pe.Height()/2
		pe.Velocity.Y = 0
	case !f.Following:
		pe.Velocity.Y = 0
	case dy < -f.DeadZone:
		pe.Velocity.Y = -f.Speed
	case dy > f.DeadZone:
		pe.Velocity.Y = f.Speed
	default:
		pe.Velocity.Y = 0
	}
}
