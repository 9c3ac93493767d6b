// Package sprite holds the movable and static entities of a scene in a single
// arena. Other components refer to entities by ID and never keep pointers
// across calls.
package sprite

import (
	"pacpong/pkg/engine/world"
)

// ID identifies an entity inside its Registry
type ID int

// None is the zero handle; no entity has it
const None ID = -1

// Offscreen is where tombstoned entities are parked
var Offscreen = world.Vec2{X: -10000, Y: -10000}

// Entity is a sprite handle with its simulation state
type Entity struct {
	Texture  string     // Texture ID from the manifest
	Position world.Vec2 // Centre of the sprite
	Velocity world.Vec2 // Units per second
	Size     world.Vec2 // Unscaled size (texture size)
	Scale    float64
	Visible  bool
	Static   bool // Static entities are never integrated
}

// Width returns the scaled width
func (e *Entity) Width() float64 {
	return e.Size.X * e.Scale
}

// Height returns the scaled height
func (e *Entity) Height() float64 {
	return e.Size.Y * e.Scale
}

// Bounds returns the axis-aligned bounding box centred on the position
func (e *Entity) Bounds() world.Rect {
	return world.RectFromCenter(e.Position, e.Width(), e.Height())
}

// Intersects reports whether two entities overlap
func (e *Entity) Intersects(other *Entity) bool {
	return e.Bounds().Intersects(other.Bounds())
}

// Contains reports whether p is inside the entity's bounds
func (e *Entity) Contains(p world.Vec2) bool {
	return e.Bounds().Contains(p)
}

// Registry owns every entity of a scene
type Registry struct {
	entities []Entity
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Add stores a copy of e and returns its handle. Handles stay valid until Reset.
func (r *Registry) Add(e Entity) ID {
	if e.Scale == 0 {
		e.Scale = 1
	}
	r.entities = append(r.entities, e)
	return ID(len(r.entities) - 1)
}

// Get returns the entity for id, or nil for an unknown handle. The pointer is
// only valid until the next Add.
func (r *Registry) Get(id ID) *Entity {
	if id < 0 || int(id) >= len(r.entities) {
		return nil
	}
	return &r.entities[id]
}

// Len returns the number of entities
func (r *Registry) Len() int {
	return len(r.entities)
}

// Each calls fn for every entity in insertion order
func (r *Registry) Each(fn func(id ID, e *Entity)) {
	for i := range r.entities {
		fn(ID(i), &r.entities[i])
	}
}

// Update advances every non-static entity by its velocity
func (r *Registry) Update(dt float64) {
	for i := range r.entities {
		e := &r.entities[i]
		if e.Static {
			continue
		}
		e.Position = e.Position.Add(e.Velocity.Scale(dt))
	}
}

// Tombstone parks an entity off-screen and stops it, keeping its handle valid
func (r *Registry) Tombstone(id ID) {
	e := r.Get(id)
	if e == nil {
		return
	}
	e.Position = Offscreen
	e.Velocity = world.Vec2{}
}

// Reset drops every entity; all handles become invalid
func (r *Registry) Reset() {
	r.entities = nil
}
