package scene

import (
	"fmt"
	"log"
	"sort"

	"pacpong/pkg/engine/input"
	"pacpong/pkg/game/renderer"
)

// Factory builds a fresh instance of a named scene
type Factory func() Scene

// Director owns the active scene. Scene changes requested with Replace are
// applied at the start of the next Update, never in the middle of a tick.
type Director struct {
	factories map[string]Factory

	active     Scene
	activeName string
	suspended  bool

	pending    string
	hasPending bool
}

// NewDirector creates a director with no scenes registered
func NewDirector() *Director {
	return &Director{factories: make(map[string]Factory)}
}

// Register adds a scene factory under name
func (d *Director) Register(name string, f Factory) {
	d.factories[name] = f
}

// Names returns the registered scene names, sorted
func (d *Director) Names() []string {
	names := make([]string, 0, len(d.factories))
	for name := range d.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Start makes name the active scene immediately. Hosts call it once before
// the first frame.
func (d *Director) Start(name string) error {
	if _, ok := d.factories[name]; !ok {
		return fmt.Errorf("unknown scene %q", name)
	}
	d.switchTo(name)
	return nil
}

// Replace requests that the active scene be replaced by name
func (d *Director) Replace(name string) {
	if _, ok := d.factories[name]; !ok {
		log.Printf("Ignoring replace request for unknown scene %q", name)
		return
	}
	d.pending = name
	d.hasPending = true
}

// Pending returns the scene waiting to become active, if any
func (d *Director) Pending() (string, bool) {
	return d.pending, d.hasPending
}

func (d *Director) switchTo(name string) {
	if d.active != nil {
		d.active.Suspend()
	}
	d.active = d.factories[name]()
	d.activeName = name
	d.active.Initialize()
	if !d.suspended {
		d.active.Resume()
	}
	log.Printf("Scene %q active", name)
}

// Active returns the running scene and its name
func (d *Director) Active() (Scene, string) {
	return d.active, d.activeName
}

// Suspend pauses the active scene, e.g. while the window is unfocused
func (d *Director) Suspend() {
	if d.suspended {
		return
	}
	d.suspended = true
	if d.active != nil {
		d.active.Suspend()
	}
}

// Resume resumes the active scene
func (d *Director) Resume() {
	if !d.suspended {
		return
	}
	d.suspended = false
	if d.active != nil {
		d.active.Resume()
	}
}

// Suspended reports whether the director is paused
func (d *Director) Suspended() bool {
	return d.suspended
}

// Handle forwards an event to the active scene. Events are dropped while
// suspended.
func (d *Director) Handle(ev input.Event) {
	if d.active != nil && !d.suspended {
		d.active.Handle(ev)
	}
}

// Update applies a pending scene change, then ticks the active scene
func (d *Director) Update(dt float64) {
	if d.hasPending {
		name := d.pending
		d.pending, d.hasPending = "", false
		d.switchTo(name)
	}
	if d.active != nil {
		d.active.Update(dt)
	}
}

// Render draws the active scene
func (d *Director) Render(c renderer.Canvas) {
	if d.active != nil {
		d.active.Render(c)
	}
}
