// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"pacpong/pkg/engine/sprite"
	"pacpong/pkg/engine/world"
	"pacpong/pkg/game/scene"
	"pacpong/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// ErrNoScene is returned when there is nothing to dump yet
var ErrNoScene = errors.New("no gameplay scene running")

// Snapshot is the part of a gameplay scene the dump reads
type Snapshot struct {
	Scene    state.Scene
	Gameplay state.Gameplay
	Grid     *world.Grid // nil when the scene has no maze
	Registry *sprite.Registry
	Cells    sprite.CellSprites
	Round    *state.Round
	Actors   map[string]sprite.ID // Named sprites listed with their state
}

// FromGame takes a snapshot of a gameplay scene
func FromGame(g *scene.Game) Snapshot {
	s := g.Sprites()
	actors := map[string]sprite.ID{
		"player":       s.Player,
		"adversary":    s.Adversary,
		"power":        s.Power,
		"ball":         s.Ball,
		"left_paddle":  s.LeftPaddle,
		"right_paddle": s.RightPaddle,
	}
	for name, id := range actors {
		if id == sprite.None {
			delete(actors, name)
		}
	}
	return Snapshot{
		Scene:    g.State(),
		Gameplay: g.Gameplay(),
		Grid:     g.Grid(),
		Registry: g.Registry(),
		Cells:    g.Cells(),
		Round:    g.Round(),
		Actors:   actors,
	}
}

// cellSymbol returns the single-character symbol for a cell
func cellSymbol(s Snapshot, c world.Cell) rune {
	switch c.Kind {
	case world.Wall:
		return '#'
	case world.Coin:
		if s.Round != nil && s.Round.Collected.Has(c.Index) {
			return ','
		}
		return 'o'
	default:
		return '.'
	}
}

// writeMapGrid writes the grid, overlaying the first letter of each actor
// (upper-cased) on the cell its centre is in.
func writeMapGrid(w io.Writer, s Snapshot) {
	g := s.Grid
	overlay := map[int]rune{}
	names := sortedActors(s.Actors)
	for _, name := range names {
		e := s.Registry.Get(s.Actors[name])
		if e == nil || !e.Visible {
			continue
		}
		if idx, ok := g.CellAt(e.Position); ok {
			overlay[idx] = rune(name[0] - 'a' + 'A')
		}
	}

	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			idx := g.Index(row, col)
			if r, ok := overlay[idx]; ok {
				fmt.Fprintf(w, "%c", r)
				continue
			}
			fmt.Fprintf(w, "%c", cellSymbol(s, g.Cell(idx)))
		}
		fmt.Fprintln(w)
	}
}

func sortedActors(actors map[string]sprite.ID) []string {
	names := make([]string, 0, len(actors))
	for name := range actors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WriteDump writes a debug dump of the scene: metadata, legend, the tile map
// and the named sprites.
func WriteDump(w io.Writer, s Snapshot) error {
	if s.Registry == nil {
		return ErrNoScene
	}

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAP DUMP DEBUG (tile map, sprites, round) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "scene_state: %v\n", s.Scene)
	fmt.Fprintf(w, "gameplay_state: %v\n", s.Gameplay)
	fmt.Fprintf(w, "sprites: %d\n", s.Registry.Len())
	if s.Round != nil {
		fmt.Fprintf(w, "coins_collected: %d\n", s.Round.Coins)
		fmt.Fprintf(w, "adversary_edible: %v\n", s.Round.Edible)
		fmt.Fprintf(w, "edible_timer: %.2f\n", s.Round.EdibleTimer)
		fmt.Fprintf(w, "outcome: %v\n", s.Round.Outcome)
	}
	fmt.Fprintln(w, "")

	if s.Grid != nil {
		g := s.Grid
		fmt.Fprintf(w, "grid_rows: %d\n", g.Rows())
		fmt.Fprintf(w, "grid_cols: %d\n", g.Cols())
		fmt.Fprintf(w, "grid_origin: %.1f,%.1f\n", g.Origin().X, g.Origin().Y)
		fmt.Fprintf(w, "cell_size: %.1f\n", g.CellSize())
		fmt.Fprintf(w, "coordinate_system: row,col (0-based); index = row + col*rows\n")
		fmt.Fprintln(w, "")

		// --- Legend ---
		fmt.Fprintln(w, "--- Legend (cell symbols) ---")
		fmt.Fprintln(w, ". = empty  # = wall  o = coin  , = collected coin  capital letter = first letter of a sprite below")
		fmt.Fprintln(w, "")

		fmt.Fprintln(w, "--- Map ---")
		writeMapGrid(w, s)
		fmt.Fprintln(w, "")
	}

	// --- Sprites ---
	fmt.Fprintln(w, "--- Sprites ---")
	for _, name := range sortedActors(s.Actors) {
		id := s.Actors[name]
		e := s.Registry.Get(id)
		if e == nil {
			continue
		}
		cell := "-"
		if s.Grid != nil {
			if idx, ok := s.Grid.CellAt(e.Position); ok {
				row, col := s.Grid.Position(idx)
				cell = fmt.Sprintf("%d,%d", row, col)
			}
		}
		fmt.Fprintf(w, "  %s: id: %d pos: %.1f,%.1f vel: %.1f,%.1f size: %.1fx%.1f cell: %s visible: %v\n",
			name, id, e.Position.X, e.Position.Y, e.Velocity.X, e.Velocity.Y, e.Width(), e.Height(), cell, e.Visible)
	}
	return nil
}

// DumpMapToFile writes the dump to map.txt in the working directory and
// returns its absolute path
func DumpMapToFile(s Snapshot) (string, error) {
	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteDump(f, s); err != nil {
		return "", err
	}
	return absPath, nil
}
