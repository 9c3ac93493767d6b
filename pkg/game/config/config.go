// Package config describes a gameplay scene: its texture manifest, map, sprite
// placement and tuning constants. Scenes are loaded from YAML or TOML; two
// variants ship embedded.
package config

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"pacpong/pkg/engine/assets"
	"pacpong/pkg/engine/world"
)

//go:embed variants/*.yaml
var variantFiles embed.FS

// Configuration errors
var (
	ErrUnknownVariant = errors.New("unknown scene variant")
	ErrInvalidLayout  = errors.New("invalid map layout")
	ErrInvalidScene   = errors.New("invalid scene configuration")
)

// Scene is the full configuration of one gameplay scene
type Scene struct {
	Name              string          `yaml:"name" toml:"name"`
	Canvas            Canvas          `yaml:"canvas" toml:"canvas"`
	Textures          assets.Manifest `yaml:"textures" toml:"textures"`
	LoadingTexture    string          `yaml:"loading_texture" toml:"loading_texture"`
	MinLoadingSeconds float64         `yaml:"min_loading_seconds" toml:"min_loading_seconds"`
	Pushback          float64         `yaml:"pushback" toml:"pushback"`

	Player    Actor     `yaml:"player" toml:"player"`
	Adversary Adversary `yaml:"adversary" toml:"adversary"`
	Buttons   Buttons   `yaml:"buttons" toml:"buttons"`

	Maze *Maze `yaml:"maze,omitempty" toml:"maze,omitempty"`
	Pong *Pong `yaml:"pong,omitempty" toml:"pong,omitempty"`
}

// Canvas is the virtual resolution the scene is laid out in
type Canvas struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// Actor places a sprite. Size is the on-screen width in canvas units; the
// height follows the texture's aspect ratio.
type Actor struct {
	Texture string     `yaml:"texture" toml:"texture"`
	Spawn   world.Vec2 `yaml:"spawn" toml:"spawn"`
	Size    float64    `yaml:"size" toml:"size"`
	Speed   float64    `yaml:"speed" toml:"speed"`
}

// Adversary is the wandering enemy
type Adversary struct {
	Actor           `yaml:",inline"`
	StartVelocity   world.Vec2 `yaml:"start_velocity" toml:"start_velocity"`
	RespawnVelocity world.Vec2 `yaml:"respawn_velocity" toml:"respawn_velocity"`
}

// Button is an on-screen directional button
type Button struct {
	Texture  string     `yaml:"texture" toml:"texture"`
	Position world.Vec2 `yaml:"position" toml:"position"`
	Size     float64    `yaml:"size" toml:"size"`
}

// Buttons holds the four directional buttons
type Buttons struct {
	Up    Button `yaml:"up" toml:"up"`
	Down  Button `yaml:"down" toml:"down"`
	Left  Button `yaml:"left" toml:"left"`
	Right Button `yaml:"right" toml:"right"`
}

// Maze configures the tile map, coins and the power item
type Maze struct {
	Rows         int        `yaml:"rows" toml:"rows"`
	Cols         int        `yaml:"cols" toml:"cols"`
	Origin       world.Vec2 `yaml:"origin" toml:"origin"`
	CellSize     float64    `yaml:"cell_size" toml:"cell_size"`
	Layout       []string   `yaml:"layout" toml:"layout"`
	WallTexture  string     `yaml:"wall_texture" toml:"wall_texture"`
	CoinTexture  string     `yaml:"coin_texture" toml:"coin_texture"`
	CoinSize     float64    `yaml:"coin_size" toml:"coin_size"`
	WinThreshold int        `yaml:"win_threshold" toml:"win_threshold"`
	PowerItem    *PowerItem `yaml:"power_item,omitempty" toml:"power_item,omitempty"`
}

// PowerItem is the special coin that makes the adversary edible
type PowerItem struct {
	Texture        string  `yaml:"texture" toml:"texture"`
	Row            int     `yaml:"row" toml:"row"`
	Col            int     `yaml:"col" toml:"col"`
	Size           float64 `yaml:"size" toml:"size"`
	EdibleSeconds  float64 `yaml:"edible_seconds" toml:"edible_seconds"`
	ConsumeOnTouch bool    `yaml:"consume_on_touch" toml:"consume_on_touch"`
}

// Pong configures the ball, the paddles and the playfield borders
type Pong struct {
	BallTexture     string  `yaml:"ball_texture" toml:"ball_texture"`
	BallSize        float64 `yaml:"ball_size" toml:"ball_size"`
	BallSpeed       float64 `yaml:"ball_speed" toml:"ball_speed"`
	PaddleTexture   string  `yaml:"paddle_texture" toml:"paddle_texture"`
	PaddleSize      float64 `yaml:"paddle_size" toml:"paddle_size"`
	PaddleSpeed     float64 `yaml:"paddle_speed" toml:"paddle_speed"`
	UserPaddleSpeed float64 `yaml:"user_paddle_speed" toml:"user_paddle_speed"`
	BorderTexture   string  `yaml:"border_texture" toml:"border_texture"`
	BorderThickness float64 `yaml:"border_thickness" toml:"border_thickness"`
	NetTexture      string  `yaml:"net_texture" toml:"net_texture"`
	NetWidth        float64 `yaml:"net_width" toml:"net_width"`
}

// Variants returns the names of the embedded scene variants
func Variants() []string {
	entries, err := variantFiles.ReadDir("variants")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
	}
	sort.Strings(names)
	return names
}

// Variant loads one of the embedded scene variants by name
func Variant(name string) (*Scene, error) {
	data, err := variantFiles.ReadFile("variants/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w %q (have %s)", ErrUnknownVariant, name, strings.Join(Variants(), ", "))
	}
	return Parse(data, ".yaml")
}

// Load reads a scene configuration file; the format follows the extension
// (.yaml, .yml or .toml).
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene config: %w", err)
	}
	sc, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes and validates a scene configuration
func Parse(data []byte, ext string) (*Scene, error) {
	sc := &Scene{}
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(sc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), sc); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrInvalidScene, ext)
	}

	sc.applyDefaults()
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

func (s *Scene) applyDefaults() {
	if s.MinLoadingSeconds == 0 {
		s.MinLoadingSeconds = 1
	}
	if s.Pushback == 0 {
		s.Pushback = 5
	}
	if s.LoadingTexture == "" && len(s.Textures) > 0 {
		s.LoadingTexture = s.Textures[0].ID
	}
	if s.Adversary.RespawnVelocity.IsZero() {
		s.Adversary.RespawnVelocity = s.Adversary.StartVelocity
	}
	if s.Maze != nil && s.Maze.PowerItem != nil && s.Maze.PowerItem.EdibleSeconds == 0 {
		s.Maze.PowerItem.EdibleSeconds = 10
	}
}

// Validate checks the configuration for values the scene cannot run with
func (s *Scene) Validate() error {
	if s.Canvas.Width <= 0 || s.Canvas.Height <= 0 {
		return fmt.Errorf("%w: canvas must have a positive size", ErrInvalidScene)
	}
	if err := s.Textures.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}

	textures := map[string]string{
		"loading_texture":   s.LoadingTexture,
		"player.texture":    s.Player.Texture,
		"adversary.texture": s.Adversary.Texture,
		"buttons.up":        s.Buttons.Up.Texture,
		"buttons.down":      s.Buttons.Down.Texture,
		"buttons.left":      s.Buttons.Left.Texture,
		"buttons.right":     s.Buttons.Right.Texture,
	}
	if s.Player.Speed <= 0 {
		return fmt.Errorf("%w: player.speed must be positive", ErrInvalidScene)
	}

	if m := s.Maze; m != nil {
		if _, err := m.Cells(); err != nil {
			return err
		}
		if m.CellSize <= 0 {
			return fmt.Errorf("%w: maze.cell_size must be positive", ErrInvalidScene)
		}
		coins := m.CoinCount()
		if m.WinThreshold <= 0 || m.WinThreshold > coins {
			return fmt.Errorf("%w: maze.win_threshold %d must be in 1..%d", ErrInvalidScene, m.WinThreshold, coins)
		}
		if s.Adversary.Speed <= 0 {
			return fmt.Errorf("%w: adversary.speed must be positive", ErrInvalidScene)
		}
		// The adversary moves along exactly one axis at a time
		if _, ok := world.DirectionOf(s.Adversary.StartVelocity); !ok {
			return fmt.Errorf("%w: adversary.start_velocity %v must move along one axis", ErrInvalidScene, s.Adversary.StartVelocity)
		}
		if _, ok := world.DirectionOf(s.Adversary.RespawnVelocity); !ok {
			return fmt.Errorf("%w: adversary.respawn_velocity %v must move along one axis", ErrInvalidScene, s.Adversary.RespawnVelocity)
		}
		textures["maze.wall_texture"] = m.WallTexture
		textures["maze.coin_texture"] = m.CoinTexture
		if p := m.PowerItem; p != nil {
			if p.Row < 0 || p.Row >= m.Rows || p.Col < 0 || p.Col >= m.Cols {
				return fmt.Errorf("%w: power item at %d:%d is off the map", ErrInvalidScene, p.Row, p.Col)
			}
			textures["maze.power_item.texture"] = p.Texture
		}
	}

	if p := s.Pong; p != nil {
		if p.BallSpeed <= 0 || p.PaddleSpeed <= 0 {
			return fmt.Errorf("%w: pong speeds must be positive", ErrInvalidScene)
		}
		textures["pong.ball_texture"] = p.BallTexture
		textures["pong.paddle_texture"] = p.PaddleTexture
		textures["pong.border_texture"] = p.BorderTexture
		if p.NetTexture != "" {
			textures["pong.net_texture"] = p.NetTexture
		}
	}

	keys := make([]string, 0, len(textures))
	for k := range textures {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, field := range keys {
		if !s.Textures.Has(textures[field]) {
			return fmt.Errorf("%w: %s %q is not in the texture manifest", ErrInvalidScene, field, textures[field])
		}
	}
	return nil
}

// Cells flattens the layout rows into the column-major map source the tile
// map is built from.
func (m *Maze) Cells() ([]int, error) {
	if m.Rows <= 0 || m.Cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidLayout, m.Rows, m.Cols)
	}
	if len(m.Layout) != m.Rows {
		return nil, fmt.Errorf("%w: %d layout rows, want %d", ErrInvalidLayout, len(m.Layout), m.Rows)
	}

	cells := make([]int, m.Rows*m.Cols)
	for row, line := range m.Layout {
		if len(line) != m.Cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidLayout, row, len(line), m.Cols)
		}
		for col, ch := range line {
			code := int(ch - '0')
			if !world.CellKind(code).IsValid() {
				return nil, fmt.Errorf("%w: row %d col %d has code %q", ErrInvalidLayout, row, col, ch)
			}
			cells[row+col*m.Rows] = code
		}
	}
	return cells, nil
}

// CoinCount returns how many coin cells the layout holds
func (m *Maze) CoinCount() int {
	n := 0
	for _, line := range m.Layout {
		n += strings.Count(line, "2")
	}
	return n
}

// Grid builds the tile map described by the maze
func (m *Maze) Grid() (*world.Grid, error) {
	cells, err := m.Cells()
	if err != nil {
		return nil, err
	}
	return world.NewGrid(m.Rows, m.Cols, cells, m.Origin, m.CellSize)
}
