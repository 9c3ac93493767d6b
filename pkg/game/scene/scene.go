// Package scene runs gameplay scenes and hands control between them.
package scene

import (
	"pacpong/pkg/engine/input"
	"pacpong/pkg/game/renderer"
)

// Scene is the lifecycle every scene exposes to its host. Hosts call Update
// and Render once per frame from a single goroutine; a full Update completes
// before Render runs.
type Scene interface {
	// Initialize puts the scene in its starting state. New scenes start suspended.
	Initialize()

	// Suspend and Resume pause the scene; a suspended scene neither
	// changes state nor draws
	Suspend()
	Resume()

	// Handle receives one input event
	Handle(ev input.Event)

	// Update advances the simulation by dt seconds
	Update(dt float64)

	// Render draws the current frame
	Render(c renderer.Canvas)
}
