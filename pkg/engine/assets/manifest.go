// Package assets loads the textures a scene needs, one per simulation step.
package assets

import (
	"errors"
	"fmt"
)

// Manifest errors
var (
	ErrEmptyManifest    = errors.New("texture manifest is empty")
	ErrTextureMissing   = errors.New("texture not loaded")
	ErrDuplicateTexture = errors.New("duplicate texture id")
)

// TextureSpec names a texture and where to load it from
type TextureSpec struct {
	ID   string `yaml:"id" toml:"id"`
	Path string `yaml:"path" toml:"path"`
}

// Manifest is the ordered list of textures a scene loads. The first entry
// should be the loading indicator so it can be drawn as early as possible.
type Manifest []TextureSpec

// Validate checks the manifest for empty and duplicate entries
func (m Manifest) Validate() error {
	if len(m) == 0 {
		return ErrEmptyManifest
	}
	seen := make(map[string]bool, len(m))
	for i, spec := range m {
		if spec.ID == "" || spec.Path == "" {
			return fmt.Errorf("manifest entry %d: id and path are required", i)
		}
		if seen[spec.ID] {
			return fmt.Errorf("%w %q", ErrDuplicateTexture, spec.ID)
		}
		seen[spec.ID] = true
	}
	return nil
}

// Has reports whether the manifest declares id
func (m Manifest) Has(id string) bool {
	for _, spec := range m {
		if spec.ID == id {
			return true
		}
	}
	return false
}
