package world

import (
	"errors"
	"fmt"
	"math"
)

// Grid errors
var (
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	ErrLayoutLength      = errors.New("layout length does not match grid dimensions")
	ErrUnknownCell       = errors.New("unknown cell code")
)

// Grid is the tile map: a flattened, column-major array of cell kinds placed on
// the board at an origin offset with square cells.
//
// The cell at (row, col) lives at index row + col*rows.
type Grid struct {
	cells    []CellKind
	rows     int
	cols     int
	origin   Vec2
	cellSize float64
}

// NewGrid creates a grid from a flattened map source. codes must hold exactly
// rows*cols entries in column-major order.
func NewGrid(rows, cols int, codes []int, origin Vec2, cellSize float64) (*Grid, error) {
	if rows <= 0 || cols <= 0 || cellSize <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(codes) != rows*cols {
		return nil, fmt.Errorf("%w: got %d cells, want %dx%d=%d", ErrLayoutLength, len(codes), rows, cols, rows*cols)
	}

	cells := make([]CellKind, len(codes))
	for i, code := range codes {
		kind := CellKind(code)
		if !kind.IsValid() {
			return nil, fmt.Errorf("%w %d at index %d", ErrUnknownCell, code, i)
		}
		cells[i] = kind
	}

	return &Grid{
		cells:    cells,
		rows:     rows,
		cols:     cols,
		origin:   origin,
		cellSize: cellSize,
	}, nil
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// Len returns the number of cells in the grid
func (g *Grid) Len() int {
	return len(g.cells)
}

// Origin returns the world position of the top-left corner of cell 0
func (g *Grid) Origin() Vec2 {
	return g.origin
}

// CellSize returns the side of a cell in world units
func (g *Grid) CellSize() float64 {
	return g.cellSize
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Index returns the flattened index of (row, col). Out of range positions panic.
func (g *Grid) Index(row, col int) int {
	if !g.IsValidPosition(row, col) {
		panic(fmt.Sprintf("grid position %d:%d out of range", row, col))
	}
	return row + col*g.rows
}

// Position returns the row and column of a flattened index
func (g *Grid) Position(index int) (row, col int) {
	return index % g.rows, index / g.rows
}

// Cell returns the cell at the given index
func (g *Grid) Cell(index int) Cell {
	row, col := g.Position(index)
	return Cell{Index: index, Row: row, Col: col, Kind: g.cells[index]}
}

// Kind returns the kind of the cell at (row, col), or Empty when out of bounds
func (g *Grid) Kind(row, col int) CellKind {
	if !g.IsValidPosition(row, col) {
		return Empty
	}
	return g.cells[g.Index(row, col)]
}

// CellBounds returns the world rectangle covered by the cell at index
func (g *Grid) CellBounds(index int) Rect {
	row, col := g.Position(index)
	return Rect{
		X: g.origin.X + float64(col)*g.cellSize,
		Y: g.origin.Y + float64(row)*g.cellSize,
		W: g.cellSize,
		H: g.cellSize,
	}
}

// CellCenter returns the world position of the centre of the cell at index
func (g *Grid) CellCenter(index int) Vec2 {
	return g.CellBounds(index).Center()
}

// CellAt returns the index of the cell containing p
func (g *Grid) CellAt(p Vec2) (int, bool) {
	col := int(math.Floor((p.X - g.origin.X) / g.cellSize))
	row := int(math.Floor((p.Y - g.origin.Y) / g.cellSize))
	if !g.IsValidPosition(row, col) {
		return 0, false
	}
	return g.Index(row, col), true
}

// Bounds returns the world rectangle covered by the whole grid
func (g *Grid) Bounds() Rect {
	return Rect{
		X: g.origin.X,
		Y: g.origin.Y,
		W: float64(g.cols) * g.cellSize,
		H: float64(g.rows) * g.cellSize,
	}
}

// ForEachCell iterates over all cells in index order
func (g *Grid) ForEachCell(fn func(cell Cell)) {
	for i := range g.cells {
		fn(g.Cell(i))
	}
}

// Count returns the number of cells of the given kind
func (g *Grid) Count(kind CellKind) int {
	n := 0
	for _, k := range g.cells {
		if k == kind {
			n++
		}
	}
	return n
}

// Neighbourhood returns the indices of every cell that can overlap r, plus a
// one cell margin, in ascending index order. Scanning these instead of the whole
// map visits candidate cells in the same relative order as a full scan.
func (g *Grid) Neighbourhood(r Rect) []int {
	minCol := int(math.Floor((r.Left()-g.origin.X)/g.cellSize)) - 1
	maxCol := int(math.Floor((r.Right()-g.origin.X)/g.cellSize)) + 1
	minRow := int(math.Floor((r.Top()-g.origin.Y)/g.cellSize)) - 1
	maxRow := int(math.Floor((r.Bottom()-g.origin.Y)/g.cellSize)) + 1

	minCol = max(minCol, 0)
	minRow = max(minRow, 0)
	maxCol = min(maxCol, g.cols-1)
	maxRow = min(maxRow, g.rows-1)
	if minCol > maxCol || minRow > maxRow {
		return nil
	}

	// Column-major storage: columns outer, rows inner keeps indices ascending
	indices := make([]int, 0, (maxCol-minCol+1)*(maxRow-minRow+1))
	for col := minCol; col <= maxCol; col++ {
		for row := minRow; row <= maxRow; row++ {
			indices = append(indices, row+col*g.rows)
		}
	}
	return indices
}
