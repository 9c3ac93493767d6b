// Package tui hosts the scenes in a terminal, drawing each sprite as a
// coloured character.
package tui

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"pacpong/pkg/engine/input"
	"pacpong/pkg/engine/terminal"
	"pacpong/pkg/game/renderer"
	"pacpong/pkg/game/renderer/images"
)

// ErrNotTerminal is returned when stdin is not a terminal
var ErrNotTerminal = errors.New("stdin is not a terminal")

// frameInterval is the simulation and redraw period
const frameInterval = time.Second / 30

// Texture only records the image size; the terminal draws glyphs instead
type Texture struct {
	W, H float64
}

// Size returns the image size in pixels
func (t *Texture) Size() (w, h float64) { return t.W, t.H }

// Upload keeps the size of a decoded image
func Upload(img image.Image) *Texture {
	b := img.Bounds()
	return &Texture{W: float64(b.Dx()), H: float64(b.Dy())}
}

// Library is the texture library type the terminal host loads into
type Library = images.Library[*Texture]

// Options configures the terminal host
type Options struct {
	Driver  renderer.Driver
	Library *Library
	Width   float64 // Virtual canvas size
	Height  float64

	// OnDumpMap is called when the map dump key is pressed
	OnDumpMap func()
}

// TUIRenderer runs the driver in the terminal
type TUIRenderer struct {
	opts     Options
	out      io.Writer
	quitting bool
}

// New creates a terminal host writing to stdout
func New(opts Options) *TUIRenderer {
	return &TUIRenderer{opts: opts, out: os.Stdout}
}

// Quit stops the loop after the current frame
func (t *TUIRenderer) Quit() { t.quitting = true }

// Run takes over the terminal until the player quits or stdin closes
func (t *TUIRenderer) Run() error {
	if !terminal.IsTerminal() {
		return ErrNotTerminal
	}
	restore, err := terminal.EnableRawMode()
	if err != nil {
		return err
	}
	defer restore()

	terminal.HideCursor()
	terminal.Clear()
	defer func() {
		terminal.Clear()
		terminal.ShowCursor()
	}()

	codes := make(chan string, 16)
	go input.StreamCodes(os.Stdin, codes)

	t.opts.Library.SetAvailable(true)
	log.Printf("Terminal host started")
	return t.loop(codes)
}

func (t *TUIRenderer) loop(codes <-chan string) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case code, ok := <-codes:
			if !ok {
				return nil
			}
			if quit := t.handleCode(code); quit || t.quitting {
				return nil
			}
		case now := <-ticker.C:
			t.opts.Driver.Update(now.Sub(last).Seconds())
			last = now
			if t.quitting {
				return nil
			}
			t.draw()
		}
	}
}

// handleCode forwards a key to the driver; it returns true on quit
func (t *TUIRenderer) handleCode(code string) bool {
	ev, act, ok := input.ToEvent(code)
	if ok {
		t.opts.Driver.Handle(ev)
		return false
	}
	switch act {
	case input.ActionQuit:
		return true
	case input.ActionDumpMap:
		if t.opts.OnDumpMap != nil {
			t.opts.OnDumpMap()
		}
	}
	return false
}

func (t *TUIRenderer) draw() {
	w, h := terminal.GetSize()
	f := newFrame(w, h-1, t.opts.Width, t.opts.Height)
	t.opts.Driver.Render(f)

	// Raw mode needs explicit carriage returns
	terminal.Home()
	fmt.Fprint(t.out, strings.Join(f.Lines(), "\x1b[K\r\n"))
}
