// Package input defines the events a scene receives from its host and the
// bindings that turn raw device codes into them.
package input

import (
	"fmt"

	"pacpong/pkg/engine/world"
)

// Kind tags the variant held by an Event
type Kind int

const (
	// TouchStarted is a finger or mouse button going down
	TouchStarted Kind = iota
	// TouchMoved is a held touch moving
	TouchMoved
	// TouchEnded is a touch being released
	TouchEnded
	// KeyDirection is a directional key press (arrows, hjkl, d-pad)
	KeyDirection
)

// String returns the string representation of an event kind
func (k Kind) String() string {
	switch k {
	case TouchStarted:
		return "touch-started"
	case TouchMoved:
		return "touch-moved"
	case TouchEnded:
		return "touch-ended"
	case KeyDirection:
		return "key-direction"
	default:
		return "unknown"
	}
}

// Event is a tagged union: touch kinds carry X/Y in canvas coordinates,
// KeyDirection carries Direction.
type Event struct {
	Kind      Kind
	X, Y      float64
	Direction world.Direction
}

// Touch creates a touch event of the given kind
func Touch(kind Kind, x, y float64) Event {
	return Event{Kind: kind, X: x, Y: y}
}

// Key creates a directional key event
func Key(dir world.Direction) Event {
	return Event{Kind: KeyDirection, Direction: dir}
}

// Point returns the touch position
func (e Event) Point() world.Vec2 {
	return world.Vec2{X: e.X, Y: e.Y}
}

// IsTouch reports whether the event carries coordinates
func (e Event) IsTouch() bool {
	return e.Kind == TouchStarted || e.Kind == TouchMoved || e.Kind == TouchEnded
}

func (e Event) String() string {
	if e.IsTouch() {
		return fmt.Sprintf("%v(%.1f,%.1f)", e.Kind, e.X, e.Y)
	}
	return fmt.Sprintf("%v(%v)", e.Kind, e.Direction)
}
