package ebiten

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"pacpong/pkg/engine/input"
)

// New creates an Ebiten host for the driver
func New(opts Options) *EbitenRenderer {
	return &EbitenRenderer{
		driver:      opts.Driver,
		library:     opts.Library,
		title:       opts.Title,
		width:       opts.Width,
		height:      opts.Height,
		onDumpMap:   opts.OnDumpMap,
		face:        newFace(),
		events:      input.NewQueue(),
		touch:       input.NewTouchTracker(),
		heldTouches: make(map[ebiten.TouchID]bool),
		focused:     true,
	}
}

// Run opens the window and blocks until it is closed or the player quits
func (e *EbitenRenderer) Run() error {
	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle(e.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(e)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

// Quit closes the window at the next update
func (e *EbitenRenderer) Quit() { e.quit = true }

// Update handles input and advances the active scene (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
		// Textures can be uploaded from here on
		e.library.SetAvailable(true)
	}

	if focused := ebiten.IsFocused(); focused != e.focused {
		e.focused = focused
		if focused {
			log.Printf("Window focused, resuming")
			e.driver.Resume()
		} else {
			log.Printf("Window lost focus, suspending")
			e.driver.Suspend()
		}
	}

	e.pollInput()
	if e.quit {
		return ebiten.Termination
	}

	e.events.Drain(e.driver.Handle)
	e.driver.Update(1 / float64(ebiten.TPS()))
	if e.quit {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the active scene (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	e.driver.Render(&canvas{e: e, screen: screen})
}

// Layout returns the virtual canvas size; Ebiten scales it to the window
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.width, e.height
}
