// Package ebiten provides an Ebiten-based 2D graphical host for Pac-Pong.
package ebiten

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"pacpong/pkg/engine/input"
	"pacpong/pkg/game/renderer"
	"pacpong/pkg/game/renderer/images"
)

// Texture is an uploaded GPU image
type Texture struct {
	img *ebiten.Image
}

// Size returns the texture's size in pixels
func (t *Texture) Size() (w, h float64) {
	b := t.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Upload turns a decoded image into a texture
func Upload(img image.Image) *Texture {
	return &Texture{img: ebiten.NewImageFromImage(img)}
}

// Library is the texture library type the renderer draws from
type Library = images.Library[*Texture]

// Options configures the window
type Options struct {
	Driver  renderer.Driver
	Library *Library
	Title   string
	Width   int // Virtual canvas size; the window scales it
	Height  int

	// OnDumpMap is called when the map dump key is pressed
	OnDumpMap func()
}

// EbitenRenderer hosts the scene driver in an Ebiten window
type EbitenRenderer struct {
	driver    renderer.Driver
	library   *Library
	title     string
	width     int
	height    int
	onDumpMap func()

	face   text.Face
	events *input.Queue
	touch  *input.TouchTracker

	// Touch IDs held on the previous tick
	heldTouches map[ebiten.TouchID]bool

	focused            bool
	windowOpenedLogged bool
	quit               bool
}
