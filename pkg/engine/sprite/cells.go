package sprite

import (
	"math"

	"pacpong/pkg/engine/world"
)

// CellSprites maps tile map cell indices to the sprite built for that cell
type CellSprites map[int]ID

// Overlaps returns the cells of the given kind whose sprites overlap bounds,
// in ascending cell index order. Only the neighbourhood of bounds is scanned.
func (r *Registry) Overlaps(bounds world.Rect, g *world.Grid, cells CellSprites, kind world.CellKind) []int {
	var hits []int
	for _, idx := range g.Neighbourhood(bounds) {
		if r.cellOverlaps(bounds, g, cells, kind, idx) {
			hits = append(hits, idx)
		}
	}
	return hits
}

// FirstOverlap returns the lowest index cell of the given kind whose sprite
// overlaps bounds.
func (r *Registry) FirstOverlap(bounds world.Rect, g *world.Grid, cells CellSprites, kind world.CellKind) (int, bool) {
	for _, idx := range g.Neighbourhood(bounds) {
		if r.cellOverlaps(bounds, g, cells, kind, idx) {
			return idx, true
		}
	}
	return -1, false
}

func (r *Registry) cellOverlaps(bounds world.Rect, g *world.Grid, cells CellSprites, kind world.CellKind, idx int) bool {
	if g.Cell(idx).Kind != kind {
		return false
	}
	id, ok := cells[idx]
	if !ok {
		return false
	}
	e := r.Get(id)
	return e != nil && e.Bounds().Intersects(bounds)
}

// PushBack moves the entity dist units against its motion and stops it on that
// axis. Vertical motion takes precedence over horizontal. It returns the
// direction the entity was blocked in; ok is false for a stationary entity.
func (e *Entity) PushBack(dist float64) (blocked world.Direction, ok bool) {
	switch {
	case e.Velocity.Y != 0:
		sign := math.Copysign(1, e.Velocity.Y)
		e.Position.Y -= sign * dist
		e.Velocity.Y = 0
		if sign < 0 {
			return world.Up, true
		}
		return world.Down, true
	case e.Velocity.X != 0:
		sign := math.Copysign(1, e.Velocity.X)
		e.Position.X -= sign * dist
		e.Velocity.X = 0
		if sign < 0 {
			return world.Left, true
		}
		return world.Right, true
	}
	return world.Up, false
}
