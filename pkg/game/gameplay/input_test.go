package gameplay

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pacpong/pkg/engine/sprite"
	"pacpong/pkg/engine/world"
)

func TestButtons_HitTest(t *testing.T) {
	reg := sprite.NewRegistry()
	add := func(x, y float64) sprite.ID {
		return reg.Add(sprite.Entity{Position: world.Vec2{X: x, Y: y}, Size: world.Vec2{X: 64, Y: 64}, Static: true})
	}
	buttons := Buttons{
		world.Up:    add(640, 480),
		world.Down:  add(640, 600),
		world.Left:  add(540, 600),
		world.Right: add(740, 600),
	}

	tests := []struct {
		p      world.Vec2
		want   world.Direction
		wantOK bool
	}{
		{world.Vec2{X: 640, Y: 480}, world.Up, true},
		{world.Vec2{X: 660, Y: 620}, world.Down, true},
		{world.Vec2{X: 508, Y: 568}, world.Left, true},
		{world.Vec2{X: 772, Y: 632}, world.Right, true},
		{world.Vec2{X: 100, Y: 100}, world.Up, false},
	}
	for _, tt := range tests {
		d, ok := buttons.HitTest(reg, tt.p)
		assert.Equal(t, tt.wantOK, ok, "point %v", tt.p)
		if ok {
			assert.Equal(t, tt.want, d, "point %v", tt.p)
		}
	}
}

func TestSteer_ZeroesOtherAxis(t *testing.T) {
	reg := sprite.NewRegistry()
	id := reg.Add(sprite.Entity{Velocity: world.Vec2{X: 50}})

	Steer(reg, id, world.Up, 50)
	assert.Equal(t, world.Vec2{Y: -50}, reg.Get(id).Velocity)

	Steer(reg, id, world.Right, 50)
	assert.Equal(t, world.Vec2{X: 50}, reg.Get(id).Velocity)

	Steer(reg, sprite.None, world.Right, 50) // ignored
}

func TestFollowPaddle(t *testing.T) {
	reg := sprite.NewRegistry()
	top := reg.Add(sprite.Entity{Position: world.Vec2{X: 640, Y: 12}, Size: world.Vec2{X: 1280, Y: 24}, Static: true})
	bottom := reg.Add(sprite.Entity{Position: world.Vec2{X: 640, Y: 708}, Size: world.Vec2{X: 1280, Y: 24}, Static: true})
	paddle := reg.Add(sprite.Entity{Position: world.Vec2{X: 1208, Y: 360}, Size: world.Vec2{X: 24, Y: 120}})
	f := &FollowPaddle{Speed: 240, DeadZone: 2}

	f.Step(reg, paddle, top, bottom)
	assert.Zero(t, reg.Get(paddle).Velocity.Y, "idle without a touch")

	f.Track(100)
	f.Step(reg, paddle, top, bottom)
	assert.Equal(t, -240.0, reg.Get(paddle).Velocity.Y)

	f.Track(361)
	f.Step(reg, paddle, top, bottom)
	assert.Zero(t, reg.Get(paddle).Velocity.Y, "inside the dead zone")

	f.Track(600)
	f.Step(reg, paddle, top, bottom)
	assert.Equal(t, 240.0, reg.Get(paddle).Velocity.Y)

	// Pressed against the top border and still asked to rise
	p := reg.Get(paddle)
	p.Position.Y = 70
	f.Track(0)
	f.Step(reg, paddle, top, bottom)
	assert.Equal(t, 84.0, p.Position.Y)
	assert.Zero(t, p.Velocity.Y)

	// Allowed to leave the border downward
	p.Position.Y = 70
	f.Track(400)
	f.Step(reg, paddle, top, bottom)
	assert.Equal(t, 240.0, p.Velocity.Y)

	f.Release()
	f.Step(reg, paddle, top, bottom)
	assert.Zero(t, p.Velocity.Y)
}
