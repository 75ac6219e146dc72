// Package font provides a registry that resolves a font name and size
// to a renderable font face, caching derived faces for reuse.
package font

import (
	"fmt"

	"github.com/inkforge/fable/render"
)

// Registry maps logical font names to parsed font sources and caches
// the faces derived from them.
type Registry struct {
	loader    render.ResourceLoader
	sources   map[string]render.FontSource
	faceCache map[string]render.Font
}

// NewRegistry creates an empty font registry backed by the given loader.
func NewRegistry(loader render.ResourceLoader) *Registry {
	return &Registry{
		loader:    loader,
		sources:   make(map[string]render.FontSource),
		faceCache: make(map[string]render.Font),
	}
}

// Register loads and parses the font file at path and stores it under name.
// Registering the same name twice replaces the previous source.
func (r *Registry) Register(name, path string) error {
	source, err := r.loader.LoadFontSource(path)
	if err != nil {
		return fmt.Errorf("failed to register font %q: %w", name, err)
	}
	r.sources[name] = source
	return nil
}

// RegisterSource stores an already-parsed font source under name.
// Useful for embedded fonts and tests.
func (r *Registry) RegisterSource(name string, source render.FontSource) {
	r.sources[name] = source
}

// Face resolves a registered font name and pixel size to a font face.
// Derived faces are cached with a name+size key.
func (r *Registry) Face(name string, size float64) (render.Font, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", name, size)
	if face, ok := r.faceCache[cacheKey]; ok {
		return face, nil
	}

	source, ok := r.sources[name]
	if !ok {
		return nil, fmt.Errorf("font %q is not registered", name)
	}

	face := source.Face(size)
	r.faceCache[cacheKey] = face
	return face, nil
}

// Names returns the registered font names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	return names
}
