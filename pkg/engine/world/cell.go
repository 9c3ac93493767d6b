// Package world provides the 2D primitives of the playfield: geometry,
// directions and the tile map the scene builds its static sprites from.
package world

import "fmt"

// CellKind is the code stored for each tile of the map
type CellKind int

// Cell kinds, as they appear in map sources
const (
	Empty CellKind = 0
	Wall  CellKind = 1
	Coin  CellKind = 2
)

// String returns the string representation of a cell kind
func (k CellKind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Wall:
		return "Wall"
	case Coin:
		return "Coin"
	default:
		return fmt.Sprintf("CellKind(%d)", int(k))
	}
}

// IsValid returns true for the codes a map source may contain
func (k CellKind) IsValid() bool {
	return k >= Empty && k <= Coin
}

// Cell is a read-only view of one tile of the grid.
type Cell struct {
	Index int // Position in the flattened array
	Row   int
	Col   int
	Kind  CellKind
}

// Solid reports whether the cell spawns a sprite
func (c Cell) Solid() bool {
	return c.Kind != Empty
}
