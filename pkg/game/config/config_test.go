package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pacpong/pkg/engine/world"
)

func TestVariants_AllValidate(t *testing.T) {
	names := Variants()
	require.Equal(t, []string{"classic", "maze"}, names)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			sc, err := Variant(name)
			require.NoError(t, err)
			assert.Equal(t, name, sc.Name)
			assert.Equal(t, "loading", sc.Textures[0].ID, "loading texture first")
		})
	}
}

func TestVariant_Unknown(t *testing.T) {
	_, err := Variant("tetris")
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestMazeVariant_GridMatchesLayout(t *testing.T) {
	sc, err := Variant("maze")
	require.NoError(t, err)
	require.NotNil(t, sc.Maze)

	g, err := sc.Maze.Grid()
	require.NoError(t, err)
	assert.Equal(t, 21, g.Rows())
	assert.Equal(t, 13, g.Cols())
	assert.Equal(t, 273, g.Len())
	assert.Equal(t, sc.Maze.CoinCount(), g.Count(world.Coin))

	// Border cells are walls, the spawn cells are empty
	assert.Equal(t, world.Wall, g.Kind(0, 0))
	assert.Equal(t, world.Wall, g.Kind(20, 12))
	for _, spawn := range []world.Vec2{sc.Player.Spawn, sc.Adversary.Spawn} {
		idx, ok := g.CellAt(spawn)
		require.True(t, ok)
		assert.Equal(t, world.Empty, g.Cell(idx).Kind, "spawn %v", spawn)
	}
	assert.Equal(t, 10.0, sc.Maze.PowerItem.EdibleSeconds)
}

func TestCells_ColumnMajor(t *testing.T) {
	m := &Maze{Rows: 2, Cols: 3, Layout: []string{"120", "002"}}
	cells, err := m.Cells()
	require.NoError(t, err)
	// index = row + col*rows
	assert.Equal(t, []int{1, 0, 2, 0, 0, 2}, cells)
}

func TestCells_Errors(t *testing.T) {
	tests := []struct {
		name string
		maze Maze
	}{
		{"row count", Maze{Rows: 2, Cols: 2, Layout: []string{"11"}}},
		{"row width", Maze{Rows: 1, Cols: 2, Layout: []string{"111"}}},
		{"bad code", Maze{Rows: 1, Cols: 2, Layout: []string{"13"}}},
		{"no size", Maze{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.maze.Cells()
			assert.ErrorIs(t, err, ErrInvalidLayout)
		})
	}
}

func TestParse_RejectsUnknownTexture(t *testing.T) {
	sc, err := Variant("maze")
	require.NoError(t, err)
	sc.Player.Texture = "missing"
	assert.ErrorIs(t, sc.Validate(), ErrInvalidScene)
}

func TestParse_RejectsUnreachableThreshold(t *testing.T) {
	sc, err := Variant("maze")
	require.NoError(t, err)
	sc.Maze.WinThreshold = sc.Maze.CoinCount() + 1
	assert.ErrorIs(t, sc.Validate(), ErrInvalidScene)
}

func TestValidate_AdversaryVelocityOnOneAxis(t *testing.T) {
	tests := []struct {
		name    string
		start   world.Vec2
		respawn world.Vec2
		wantErr bool
	}{
		{"vertical", world.Vec2{Y: -100}, world.Vec2{Y: -100}, false},
		{"horizontal respawn", world.Vec2{Y: -100}, world.Vec2{X: 100}, false},
		{"zero start", world.Vec2{}, world.Vec2{Y: -100}, true},
		{"diagonal start", world.Vec2{X: 100, Y: 100}, world.Vec2{Y: -100}, true},
		{"diagonal respawn", world.Vec2{Y: -100}, world.Vec2{X: 100, Y: -100}, true},
		{"zero respawn", world.Vec2{Y: -100}, world.Vec2{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := Variant("maze")
			require.NoError(t, err)
			sc.Adversary.StartVelocity = tt.start
			sc.Adversary.RespawnVelocity = tt.respawn

			err = sc.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidScene)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParse_UnknownYAMLField(t *testing.T) {
	_, err := Parse([]byte("name: x\nbogus: 1\n"), ".yaml")
	assert.Error(t, err)
}

const tomlScene = `
name = "tiny"
min_loading_seconds = 2

[canvas]
width = 320
height = 240

[[textures]]
id = "loading"
path = "loading.png"

[[textures]]
id = "hero"
path = "hero.png"

[player]
texture = "hero"
size = 16
speed = 40
spawn = { x = 20, y = 30 }

[adversary]
texture = "hero"
size = 16
speed = 80
start_velocity = { x = 80, y = 0 }

[buttons.up]
texture = "hero"
[buttons.down]
texture = "hero"
[buttons.left]
texture = "hero"
[buttons.right]
texture = "hero"

[maze]
rows = 2
cols = 3
cell_size = 10
wall_texture = "hero"
coin_texture = "hero"
win_threshold = 1
layout = ["120", "002"]
`

func TestLoad_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlScene), 0o644))

	sc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "tiny", sc.Name)
	assert.Equal(t, 2.0, sc.MinLoadingSeconds)
	assert.Equal(t, 5.0, sc.Pushback, "default pushback")
	assert.Equal(t, "loading", sc.LoadingTexture, "defaults to first texture")
	assert.Equal(t, world.Vec2{X: 20, Y: 30}, sc.Player.Spawn)
	assert.Equal(t, 80.0, sc.Adversary.Speed, "embedded actor fields decode")
	assert.Equal(t, world.Vec2{X: 80}, sc.Adversary.StartVelocity)
	assert.Equal(t, world.Vec2{X: 80}, sc.Adversary.RespawnVelocity, "respawn defaults to the start velocity")
	assert.Equal(t, 2, sc.Maze.CoinCount())
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidScene)
}
