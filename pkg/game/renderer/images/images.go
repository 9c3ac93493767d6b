// Package images embeds the textures referenced by the shipped scene variants
// and provides the texture library both hosts upload them into.
package images

import (
	"embed"
	"fmt"
	"image"
	_ "image/png" // PNG decoder
	"io/fs"
	"sync"

	"pacpong/pkg/engine/assets"
)

//go:embed game-scene button character
var FS embed.FS

// Decode reads and decodes one image from fsys
func Decode(fsys fs.FS, path string) (image.Image, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Library holds the textures a host has uploaded. It hands out a graphics
// context to one holder at a time, and only once the host has made the
// context available.
type Library[T assets.Texture] struct {
	fsys   fs.FS
	upload func(image.Image) T

	lock      sync.Mutex
	mu        sync.RWMutex
	available bool
	textures  map[string]T
}

// NewLibrary creates a library reading from fsys. upload turns a decoded
// image into the host's texture type.
func NewLibrary[T assets.Texture](fsys fs.FS, upload func(image.Image) T) *Library[T] {
	return &Library[T]{
		fsys:     fsys,
		upload:   upload,
		textures: make(map[string]T),
	}
}

// SetAvailable marks the graphics context as usable or not
func (l *Library[T]) SetAvailable(ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.available = ok
}

// LockContext returns the context, or ok=false when it is unavailable or
// already held
func (l *Library[T]) LockContext() (assets.GraphicsContext, bool) {
	l.mu.RLock()
	available := l.available
	l.mu.RUnlock()
	if !available {
		return nil, false
	}
	if !l.lock.TryLock() {
		return nil, false
	}
	return &libraryContext[T]{lib: l}, true
}

// Get returns an uploaded texture
func (l *Library[T]) Get(id string) (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	tex, ok := l.textures[id]
	return tex, ok
}

// Len returns the number of uploaded textures
func (l *Library[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.textures)
}

type libraryContext[T assets.Texture] struct {
	lib      *Library[T]
	released bool
}

func (c *libraryContext[T]) Create(id, path string) (assets.Texture, error) {
	img, err := Decode(c.lib.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("texture %q: %w", id, err)
	}
	return c.lib.upload(img), nil
}

func (c *libraryContext[T]) Add(id string, tex assets.Texture) {
	t, ok := tex.(T)
	if !ok {
		return
	}
	c.lib.mu.Lock()
	c.lib.textures[id] = t
	c.lib.mu.Unlock()
}

func (c *libraryContext[T]) Release() {
	if c.released {
		return
	}
	c.released = true
	c.lib.lock.Unlock()
}
