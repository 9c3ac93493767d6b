package assets

import (
	"fmt"
	"log"
	"time"
)

// Texture is an uploaded image the canvas can draw
type Texture interface {
	Size() (w, h float64)
}

// GraphicsContext creates and registers textures while locked
type GraphicsContext interface {
	Create(id, path string) (Texture, error)
	Add(id string, tex Texture)
	Release()
}

// Graphics hands out the graphics context. ok is false while no context is
// available; callers retry on a later step.
type Graphics interface {
	LockContext() (ctx GraphicsContext, ok bool)
}

// Clock is the time source used for the minimum display time
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock
type SystemClock struct{}

// Now returns the current time
func (SystemClock) Now() time.Time { return time.Now() }

// DefaultMinDisplay is how long the loading screen stays up at minimum
const DefaultMinDisplay = time.Second

// Status is the state of a loading pipeline after a step
type Status int

const (
	// Loading means textures remain to be loaded
	Loading Status = iota
	// Holding means every texture is loaded but the minimum display time has not passed
	Holding
	// Ready means loading is complete
	Ready
	// Failed is terminal: a texture could not be created
	Failed
)

// String returns the string representation of a status
func (s Status) String() string {
	switch s {
	case Loading:
		return "Loading"
	case Holding:
		return "Holding"
	case Ready:
		return "Ready"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Pipeline loads the manifest one texture per Step
type Pipeline struct {
	manifest   Manifest
	graphics   Graphics
	clock      Clock
	minDisplay time.Duration
	started    time.Time

	textures map[string]Texture
	status   Status
	err      error
}

// NewPipeline creates a pipeline; the display timer starts now.
func NewPipeline(manifest Manifest, graphics Graphics, clock Clock, minDisplay time.Duration) *Pipeline {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Pipeline{
		manifest:   manifest,
		graphics:   graphics,
		clock:      clock,
		minDisplay: minDisplay,
		started:    clock.Now(),
		textures:   make(map[string]Texture, len(manifest)),
		status:     Loading,
	}
}

// Step advances loading by at most one texture and returns the new status.
func (p *Pipeline) Step() Status {
	switch p.status {
	case Failed, Ready:
		return p.status
	}

	if len(p.textures) < len(p.manifest) {
		p.loadNext()
		if p.status == Failed {
			return p.status
		}
		if len(p.textures) < len(p.manifest) {
			return p.status
		}
	}

	// Everything is resident; keep the loading screen up for a perceptible time
	if p.clock.Now().Sub(p.started) > p.minDisplay {
		p.status = Ready
	} else {
		p.status = Holding
	}
	return p.status
}

func (p *Pipeline) loadNext() {
	ctx, ok := p.graphics.LockContext()
	if !ok {
		return
	}
	defer ctx.Release()

	spec := p.manifest[len(p.textures)]
	tex, err := ctx.Create(spec.ID, spec.Path)
	if err != nil || tex == nil {
		if err == nil {
			err = ErrTextureMissing
		}
		p.err = fmt.Errorf("load texture %q from %s: %w", spec.ID, spec.Path, err)
		p.status = Failed
		log.Printf("Texture loading failed: %v", p.err)
		return
	}

	ctx.Add(spec.ID, tex)
	p.textures[spec.ID] = tex
}

// Status returns the status reached by the last step
func (p *Pipeline) Status() Status {
	return p.status
}

// Err returns the failure that stopped loading, if any
func (p *Pipeline) Err() error {
	return p.err
}

// Loaded returns how many textures are resident
func (p *Pipeline) Loaded() int {
	return len(p.textures)
}

// Total returns the number of textures in the manifest
func (p *Pipeline) Total() int {
	return len(p.manifest)
}

// Texture returns a loaded texture by id
func (p *Pipeline) Texture(id string) (Texture, bool) {
	tex, ok := p.textures[id]
	return tex, ok
}

// Elapsed returns the time since the pipeline was created
func (p *Pipeline) Elapsed() time.Duration {
	return p.clock.Now().Sub(p.started)
}
