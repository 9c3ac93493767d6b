package renderer

import (
	"pacpong/pkg/engine/input"
	"pacpong/pkg/engine/world"
)

// Canvas is the drawing surface a scene renders into. Coordinates are in the
// scene's virtual canvas units with y growing downward.
// Implementations can include TUI (terminal), Ebiten, etc.
type Canvas interface {
	// Clear clears the surface
	Clear()

	// DrawTexture draws a loaded texture stretched to size, centred on center
	DrawTexture(id string, center, size world.Vec2)

	// DrawText draws a line of text with its top-left corner at x, y. Text may
	// carry FormatString markup.
	DrawText(msg string, x, y float64)
}

// Driver is what a host runs each frame: normally the scene director
type Driver interface {
	Handle(ev input.Event)
	Update(dt float64)
	Render(c Canvas)
	Suspend()
	Resume()
}

// Host runs a scene loop until the player quits
type Host interface {
	Run() error
}
