package scene

import (
	"log"
	"time"

	"github.com/leonelquinteros/gotext"

	"pacpong/pkg/engine/assets"
	"pacpong/pkg/engine/input"
	"pacpong/pkg/engine/sprite"
	"pacpong/pkg/engine/world"
	"pacpong/pkg/game/ai"
	"pacpong/pkg/game/config"
	"pacpong/pkg/game/gameplay"
	"pacpong/pkg/game/renderer"
	"pacpong/pkg/game/state"
)

// Scene names
const (
	GameScene = "game"
	MenuScene = gameplay.MenuScene
)

// followDeadZone stops the user paddle once it is this close to the touch
const followDeadZone = 2

// Options configures a gameplay scene
type Options struct {
	Config     *config.Scene
	Graphics   assets.Graphics
	Clock      assets.Clock // nil means the system clock
	Rand       ai.Rand
	Transition gameplay.Transitioner
	Session    *state.Session // nil means a private session
}

// Sprites are the handles of the sprites the scene drives directly. Roles the
// configuration does not use are sprite.None.
type Sprites struct {
	Player    sprite.ID
	Adversary sprite.ID
	Power     sprite.ID

	Ball        sprite.ID
	LeftPaddle  sprite.ID
	RightPaddle sprite.ID
	Top         sprite.ID
	Bottom      sprite.ID
	Net         sprite.ID

	Buttons gameplay.Buttons
}

// Game is the gameplay scene: it loads its textures, builds the sprites and the
// tile map, then runs the simulation each frame.
type Game struct {
	cfg        *config.Scene
	rng        ai.Rand
	transition gameplay.Transitioner
	session    *state.Session

	pipeline *assets.Pipeline

	state     state.Scene
	gameplay  state.Gameplay
	suspended bool

	reg     *sprite.Registry
	grid    *world.Grid
	cells   sprite.CellSprites
	sprites Sprites
	round   *state.Round

	wanderer  *ai.Wanderer
	tracker   *ai.PaddleTracker
	follow    *gameplay.FollowPaddle
	resolver  *gameplay.Resolver
	ballRules *gameplay.BallRules
}

// NewGame creates a gameplay scene. The loading screen's display timer starts here.
func NewGame(opts Options) *Game {
	cfg := opts.Config
	minDisplay := time.Duration(cfg.MinLoadingSeconds * float64(time.Second))
	session := opts.Session
	if session == nil {
		session = state.NewSession()
	}

	g := &Game{
		cfg:        cfg,
		rng:        opts.Rand,
		transition: opts.Transition,
		session:    session,
		pipeline:   assets.NewPipeline(cfg.Textures, opts.Graphics, opts.Clock, minDisplay),
		reg:        sprite.NewRegistry(),
		cells:      sprite.CellSprites{},
		round:      state.NewRound(),
	}
	g.Initialize()
	return g
}

// Initialize resets the lifecycle flags. The scene stays suspended until resumed.
func (g *Game) Initialize() {
	g.state = state.SceneLoading
	g.suspended = true
	g.gameplay = state.Uninitialized
}

// Suspend pauses the scene
func (g *Game) Suspend() { g.suspended = true }

// Resume resumes the scene
func (g *Game) Resume() { g.suspended = false }

// State returns the scene state
func (g *Game) State() state.Scene { return g.state }

// Gameplay returns the round sub-state
func (g *Game) Gameplay() state.Gameplay { return g.gameplay }

// Round returns the counters of this scene instance
func (g *Game) Round() *state.Round { return g.round }

// Registry returns the scene's sprites
func (g *Game) Registry() *sprite.Registry { return g.reg }

// Sprites returns the handles of the named sprites
func (g *Game) Sprites() Sprites { return g.sprites }

// Grid returns the tile map, nil for scenes without a maze
func (g *Game) Grid() *world.Grid { return g.grid }

// Cells returns the cell to sprite mapping of the tile map
func (g *Game) Cells() sprite.CellSprites { return g.cells }

// Pipeline returns the loading pipeline
func (g *Game) Pipeline() *assets.Pipeline { return g.pipeline }

// Update advances the scene by dt seconds
func (g *Game) Update(dt float64) {
	if g.suspended {
		return
	}
	switch g.state {
	case state.SceneLoading:
		g.loadTextures()
	case state.SceneRunning:
		g.runSimulation(dt)
	case state.SceneError:
	}
}

func (g *Game) loadTextures() {
	switch g.pipeline.Step() {
	case assets.Failed:
		g.state = state.SceneError
		log.Printf("Scene %q stopped: %v", g.cfg.Name, g.pipeline.Err())
	case assets.Ready:
		if err := g.createSprites(); err != nil {
			g.state = state.SceneError
			log.Printf("Scene %q stopped: %v", g.cfg.Name, err)
			return
		}
		g.restartGame()
		g.state = state.SceneRunning
		log.Printf("Scene %q running after %v (%d textures)", g.cfg.Name, g.pipeline.Elapsed().Round(time.Millisecond), g.pipeline.Total())
	}
}

// sized returns the base size of a texture and the scale that makes it width
// units wide. Missing or empty textures fall back to a width-sided square.
func (g *Game) sized(texture string, width float64) (world.Vec2, float64) {
	tex, ok := g.pipeline.Texture(texture)
	if !ok {
		return world.Vec2{X: width, Y: width}, 1
	}
	w, h := tex.Size()
	if w <= 0 || h <= 0 || width <= 0 {
		return world.Vec2{X: w, Y: h}, 1
	}
	return world.Vec2{X: w, Y: h}, width / w
}

func (g *Game) addActor(texture string, width float64, pos world.Vec2, static bool) sprite.ID {
	size, scale := g.sized(texture, width)
	return g.reg.Add(sprite.Entity{
		Texture:  texture,
		Position: pos,
		Size:     size,
		Scale:    scale,
		Visible:  true,
		Static:   static,
	})
}

// addStretched adds a static sprite drawn at an exact size, ignoring the
// texture's aspect ratio
func (g *Game) addStretched(texture string, pos, size world.Vec2) sprite.ID {
	return g.reg.Add(sprite.Entity{
		Texture:  texture,
		Position: pos,
		Size:     size,
		Scale:    1,
		Visible:  true,
		Static:   true,
	})
}

// createSprites builds every sprite of the scene. Insertion order is draw order.
func (g *Game) createSprites() error {
	cfg := g.cfg
	w, h := cfg.Canvas.Width, cfg.Canvas.Height
	g.sprites = Sprites{
		Player: sprite.None, Adversary: sprite.None, Power: sprite.None,
		Ball: sprite.None, LeftPaddle: sprite.None, RightPaddle: sprite.None,
		Top: sprite.None, Bottom: sprite.None, Net: sprite.None,
		Buttons: gameplay.Buttons{},
	}
	s := &g.sprites

	if p := cfg.Pong; p != nil {
		t := p.BorderThickness
		s.Top = g.addStretched(p.BorderTexture, world.Vec2{X: w / 2, Y: t / 2}, world.Vec2{X: w, Y: t})
		if p.NetTexture != "" {
			s.Net = g.addStretched(p.NetTexture, world.Vec2{X: w / 2, Y: h / 2}, world.Vec2{X: p.NetWidth, Y: h - 2*t})
		}
		s.Bottom = g.addStretched(p.BorderTexture, world.Vec2{X: w / 2, Y: h - t/2}, world.Vec2{X: w, Y: t})
	}

	if m := cfg.Maze; m != nil {
		grid, err := m.Grid()
		if err != nil {
			return err
		}
		g.grid = grid
		side := world.Vec2{X: m.CellSize, Y: m.CellSize}
		grid.ForEachCell(func(c world.Cell) {
			switch c.Kind {
			case world.Wall:
				g.cells[c.Index] = g.addStretched(m.WallTexture, grid.CellCenter(c.Index), side)
			case world.Coin:
				g.cells[c.Index] = g.addActor(m.CoinTexture, m.CoinSize, grid.CellCenter(c.Index), true)
			}
		})
		if pi := m.PowerItem; pi != nil {
			s.Power = g.addActor(pi.Texture, pi.Size, grid.CellCenter(grid.Index(pi.Row, pi.Col)), true)
		}
	}

	if p := cfg.Pong; p != nil {
		s.LeftPaddle = g.addActor(p.PaddleTexture, p.PaddleSize, world.Vec2{}, false)
		s.RightPaddle = g.addActor(p.PaddleTexture, p.PaddleSize, world.Vec2{}, false)
		s.Ball = g.addActor(p.BallTexture, p.BallSize, world.Vec2{}, false)
	}

	for _, b := range []struct {
		dir world.Direction
		cfg config.Button
	}{
		{world.Up, cfg.Buttons.Up},
		{world.Down, cfg.Buttons.Down},
		{world.Left, cfg.Buttons.Left},
		{world.Right, cfg.Buttons.Right},
	} {
		s.Buttons[b.dir] = g.addActor(b.cfg.Texture, b.cfg.Size, b.cfg.Position, true)
	}

	s.Player = g.addActor(cfg.Player.Texture, cfg.Player.Size, cfg.Player.Spawn, false)
	s.Adversary = g.addActor(cfg.Adversary.Texture, cfg.Adversary.Size, cfg.Adversary.Spawn, false)

	g.wire()
	return nil
}

// wire connects the controllers to the sprites just created
func (g *Game) wire() {
	cfg, s := g.cfg, g.sprites

	if m := cfg.Maze; m != nil {
		g.wanderer = &ai.Wanderer{Rand: g.rng, Speed: cfg.Adversary.Speed, Pushback: cfg.Pushback}
		rules := gameplay.Rules{
			WinThreshold:    m.WinThreshold,
			Pushback:        cfg.Pushback,
			AdversarySpawn:  cfg.Adversary.Spawn,
			RespawnVelocity: cfg.Adversary.RespawnVelocity,
		}
		if pi := m.PowerItem; pi != nil {
			rules.EdibleDuration = pi.EdibleSeconds
			rules.ConsumePower = pi.ConsumeOnTouch
		}
		g.resolver = &gameplay.Resolver{
			Reg:        g.reg,
			Grid:       g.grid,
			Cells:      g.cells,
			Player:     s.Player,
			Adversary:  s.Adversary,
			Power:      s.Power,
			Round:      g.round,
			Session:    g.session,
			Rules:      rules,
			Transition: g.transition,
		}
	}

	if p := cfg.Pong; p != nil {
		g.tracker = &ai.PaddleTracker{Speed: p.PaddleSpeed}
		g.follow = &gameplay.FollowPaddle{Speed: p.UserPaddleSpeed, DeadZone: followDeadZone}
		g.ballRules = &gameplay.BallRules{
			Reg:         g.reg,
			Ball:        s.Ball,
			LeftPaddle:  s.LeftPaddle,
			RightPaddle: s.RightPaddle,
			Top:         s.Top,
			Bottom:      s.Bottom,
			Player:      s.Player,
			CanvasWidth: cfg.Canvas.Width,
		}
	}
}

// restartGame puts the moving sprites back in their starting places and waits
// for the player to start the round
func (g *Game) restartGame() {
	cfg, s := g.cfg, g.sprites
	w, h := cfg.Canvas.Width, cfg.Canvas.Height

	place := func(id sprite.ID, pos world.Vec2) {
		if e := g.reg.Get(id); e != nil {
			e.Position = pos
			e.Velocity = world.Vec2{}
			e.Visible = true
		}
	}
	place(s.Player, cfg.Player.Spawn)
	place(s.Adversary, cfg.Adversary.Spawn)

	if cfg.Pong != nil {
		if e := g.reg.Get(s.LeftPaddle); e != nil {
			place(s.LeftPaddle, world.Vec2{X: e.Width() * 3, Y: h / 2})
		}
		if e := g.reg.Get(s.RightPaddle); e != nil {
			place(s.RightPaddle, world.Vec2{X: w - e.Width()*3, Y: h / 2})
		}
		place(s.Ball, world.Vec2{X: w / 2, Y: h / 2})
		g.follow.Release()
	}

	g.gameplay = state.WaitingToStart
}

// startPlaying launches the ball in a random direction and sets the adversary
// off
func (g *Game) startPlaying() {
	s := g.sprites
	if p := g.cfg.Pong; p != nil {
		if ball := g.reg.Get(s.Ball); ball != nil {
			ball.Velocity = g.randomDirection().Scale(p.BallSpeed)
		}
	}
	if adv := g.reg.Get(s.Adversary); adv != nil {
		adv.Velocity = g.cfg.Adversary.StartVelocity
	}
	g.gameplay = state.Playing
}

// randomDirection returns a random unit vector; zero draws are redrawn
func (g *Game) randomDirection() world.Vec2 {
	w, h := int(g.cfg.Canvas.Width), int(g.cfg.Canvas.Height)
	for {
		v := world.Vec2{
			X: float64(g.rng.Intn(w) - w/2),
			Y: float64(g.rng.Intn(h) - h/2),
		}
		if !v.IsZero() {
			return v.Normalized()
		}
	}
}

// Handle processes one input event. Events are dropped while suspended or
// unless the scene is running; while waiting to start, any event starts the
// round.
func (g *Game) Handle(ev input.Event) {
	if g.suspended || g.state != state.SceneRunning {
		return
	}
	if g.gameplay == state.WaitingToStart {
		g.startPlaying()
		return
	}

	switch ev.Kind {
	case input.TouchStarted:
		if g.follow != nil {
			g.follow.Track(ev.Y)
		}
	case input.TouchMoved:
		if g.follow != nil && g.follow.Following {
			g.follow.Track(ev.Y)
		}
	case input.TouchEnded:
		if d, ok := g.sprites.Buttons.HitTest(g.reg, ev.Point()); ok {
			gameplay.Steer(g.reg, g.sprites.Player, d, g.cfg.Player.Speed)
		}
		if g.follow != nil {
			g.follow.Release()
		}
	case input.KeyDirection:
		gameplay.Steer(g.reg, g.sprites.Player, ev.Direction, g.cfg.Player.Speed)
	}
}

func (g *Game) runSimulation(dt float64) {
	s := g.sprites
	g.reg.Update(dt)

	if g.tracker != nil {
		g.tracker.Step(g.reg, s.LeftPaddle, s.Ball, s.Top, s.Bottom)
		g.follow.Step(g.reg, s.RightPaddle, s.Top, s.Bottom)
	}
	if g.wanderer != nil {
		g.wanderer.Step(g.reg, s.Adversary, g.grid, g.cells)
	}
	if g.resolver != nil {
		g.resolver.Resolve(dt)
	}
	if g.ballRules != nil {
		next, restart := g.ballRules.Check(g.gameplay)
		g.gameplay = next
		if restart {
			g.restartGame()
		}
	}
}

// Render draws the loading screen or the playfield
func (g *Game) Render(c renderer.Canvas) {
	if g.suspended {
		return
	}
	c.Clear()
	switch g.state {
	case state.SceneLoading:
		g.renderLoading(c)
	case state.SceneRunning:
		g.renderPlayfield(c)
	case state.SceneError:
	}
}

func (g *Game) renderLoading(c renderer.Canvas) {
	center := world.Vec2{X: g.cfg.Canvas.Width / 2, Y: g.cfg.Canvas.Height / 2}
	if tex, ok := g.pipeline.Texture(g.cfg.LoadingTexture); ok {
		w, h := tex.Size()
		c.DrawTexture(g.cfg.LoadingTexture, center, world.Vec2{X: w, Y: h})
	}
	c.DrawText(gotext.Get("Loading %d/%d", g.pipeline.Loaded(), g.pipeline.Total()), 16, 16)
}

func (g *Game) renderPlayfield(c renderer.Canvas) {
	g.reg.Each(func(_ sprite.ID, e *sprite.Entity) {
		if !e.Visible || e.Position == sprite.Offscreen {
			return
		}
		c.DrawTexture(e.Texture, e.Position, world.Vec2{X: e.Width(), Y: e.Height()})
	})
	g.renderHUD(c)
}

func (g *Game) renderHUD(c renderer.Canvas) {
	y := 16.0
	line := func(msg string) {
		c.DrawText(msg, 16, y)
		y += 20
	}

	if m := g.cfg.Maze; m != nil {
		line(gotext.Get("SCORE{Coins: %d/%d}", g.round.Coins, m.WinThreshold))
		if pi := m.PowerItem; pi != nil && g.round.Edible {
			line(gotext.Get("DANGER{Edible: %.1fs}", g.round.EdibleRemaining(pi.EdibleSeconds)))
		}
	}
	if g.gameplay == state.WaitingToStart {
		line(gotext.Get("ACTION{Touch the screen or press a key to start}"))
	}
}
