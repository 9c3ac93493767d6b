package world

import (
	"errors"
	"testing"
)

// makeGrid builds a rows x cols grid of empty cells at the origin with 10 unit cells.
func makeGrid(t *testing.T, rows, cols int) *Grid {
	t.Helper()
	g, err := NewGrid(rows, cols, make([]int, rows*cols), Vec2{}, 10)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d) error = %v", rows, cols, err)
	}
	return g
}

func TestNewGrid_RejectsBadSources(t *testing.T) {
	tests := []struct {
		name  string
		rows  int
		cols  int
		codes []int
		want  error
	}{
		{"zero rows", 0, 2, nil, ErrInvalidDimensions},
		{"short layout", 2, 2, []int{0, 1, 2}, ErrLayoutLength},
		{"long layout", 1, 2, []int{0, 1, 2}, ErrLayoutLength},
		{"unknown code", 1, 2, []int{0, 7}, ErrUnknownCell},
		{"negative code", 1, 1, []int{-1}, ErrUnknownCell},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGrid(tt.rows, tt.cols, tt.codes, Vec2{}, 10)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewGrid error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestIndex_ColumnMajorRoundTrip(t *testing.T) {
	g := makeGrid(t, 21, 13)
	if g.Len() != 273 {
		t.Fatalf("Len() = %d, want 273", g.Len())
	}
	for col := 0; col < g.Cols(); col++ {
		for row := 0; row < g.Rows(); row++ {
			idx := g.Index(row, col)
			if idx != row+col*21 {
				t.Fatalf("Index(%d, %d) = %d, want %d", row, col, idx, row+col*21)
			}
			r, c := g.Position(idx)
			if r != row || c != col {
				t.Fatalf("Position(%d) = %d:%d, want %d:%d", idx, r, c, row, col)
			}
		}
	}
}

func TestCellBoundsAndCellAt(t *testing.T) {
	g, err := NewGrid(3, 2, make([]int, 6), Vec2{X: 100, Y: 50}, 20)
	if err != nil {
		t.Fatal(err)
	}
	idx := g.Index(2, 1)
	b := g.CellBounds(idx)
	if b.X != 120 || b.Y != 90 || b.W != 20 || b.H != 20 {
		t.Errorf("CellBounds(2:1) = %+v, want {120 90 20 20}", b)
	}
	got, ok := g.CellAt(Vec2{X: 125, Y: 95})
	if !ok || got != idx {
		t.Errorf("CellAt(125,95) = %d,%v want %d,true", got, ok, idx)
	}
	if _, ok := g.CellAt(Vec2{X: 99, Y: 60}); ok {
		t.Error("CellAt outside the board reported ok")
	}
}

func TestNeighbourhood_AscendingAndClamped(t *testing.T) {
	g := makeGrid(t, 5, 5)

	// A small box inside cell (2,2) sees the 3x3 block around it
	got := g.Neighbourhood(Rect{X: 22, Y: 22, W: 4, H: 4})
	if len(got) != 9 {
		t.Fatalf("len(Neighbourhood) = %d, want 9", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			t.Fatalf("Neighbourhood not ascending: %v", got)
		}
	}
	if got[0] != g.Index(1, 1) || got[len(got)-1] != g.Index(3, 3) {
		t.Errorf("Neighbourhood = %v, want block 1:1..3:3", got)
	}

	// Corner boxes are clamped to the grid
	corner := g.Neighbourhood(Rect{X: 1, Y: 1, W: 2, H: 2})
	if len(corner) != 4 {
		t.Errorf("corner Neighbourhood = %v, want 4 cells", corner)
	}

	// Fully outside the board
	if out := g.Neighbourhood(Rect{X: -500, Y: -500, W: 5, H: 5}); out != nil {
		t.Errorf("outside Neighbourhood = %v, want nil", out)
	}
}

func TestCount(t *testing.T) {
	g, err := NewGrid(2, 2, []int{1, 2, 2, 0}, Vec2{}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if n := g.Count(Coin); n != 2 {
		t.Errorf("Count(Coin) = %d, want 2", n)
	}
	if n := g.Count(Wall); n != 1 {
		t.Errorf("Count(Wall) = %d, want 1", n)
	}
}

func TestDirectionOf(t *testing.T) {
	tests := []struct {
		v      Vec2
		want   Direction
		wantOK bool
	}{
		{Vec2{Y: -3}, Up, true},
		{Vec2{Y: 3}, Down, true},
		{Vec2{X: 3}, Right, true},
		{Vec2{X: -3}, Left, true},
		{Vec2{}, Up, false},
		{Vec2{X: 1, Y: 1}, Up, false},
	}
	for _, tt := range tests {
		got, ok := DirectionOf(tt.v)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("DirectionOf(%v) = %v,%v want %v,%v", tt.v, got, ok, tt.want, tt.wantOK)
		}
	}
	for _, d := range AllDirections() {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v.Opposite().Opposite() != %v", d, d)
		}
		if got, _ := DirectionOf(d.Velocity(7)); got != d {
			t.Errorf("DirectionOf(%v.Velocity) = %v", d, got)
		}
	}
}

func TestRectIntersects_EdgesDoNotTouch(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	if a.Intersects(Rect{X: 10, Y: 0, W: 5, H: 5}) {
		t.Error("rectangles sharing an edge intersect")
	}
	if !a.Intersects(Rect{X: 9, Y: 9, W: 5, H: 5}) {
		t.Error("overlapping rectangles do not intersect")
	}
}
