// Package material implements the material resolution pipeline: a memoized
// registry of material types and a resolver that validates an object's
// resource bindings against its material type's schema.
package material

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/singleflight"

	"github.com/spaghettifunk/prisma/engine/core"
	"github.com/spaghettifunk/prisma/engine/descriptor"
)

// RegistryConfig configures a material type registry.
type RegistryConfig struct {
	// AssetsDir is the root all material type and shader paths are relative to.
	AssetsDir string
	// VerifyShaderPaths enables checking that the shader files a material
	// type references exist on disk at load time.
	VerifyShaderPaths bool
}

// Registry loads material types memoized by path. A cached entry stays
// pointer-identical until invalidated. Lookups and invalidations may come
// from different goroutines (render side vs file watcher); the cache is
// guarded so they never interleave into a half-updated entry, and concurrent
// first loads of the same path collapse into a single parse.
type Registry struct {
	config RegistryConfig

	mu     sync.RWMutex
	loaded map[string]*descriptor.MaterialType
	group  singleflight.Group

	listenerMu sync.Mutex
	listeners  []func(path string)
}

func NewRegistry(config RegistryConfig) *Registry {
	return &Registry{
		config: config,
		loaded: make(map[string]*descriptor.MaterialType),
	}
}

// LoadOrGet returns the material type at path (relative to the assets root),
// parsing it on first use and returning the cached instance afterwards.
func (r *Registry) LoadOrGet(path string) (*descriptor.MaterialType, error) {
	r.mu.RLock()
	mt, ok := r.loaded[path]
	r.mu.RUnlock()
	if ok {
		return mt, nil
	}

	v, err, _ := r.group.Do(path, func() (interface{}, error) {
		// A concurrent load may have won the race before this call joined.
		r.mu.RLock()
		cached, ok := r.loaded[path]
		r.mu.RUnlock()
		if ok {
			return cached, nil
		}

		mt, err := r.load(path)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.loaded[path] = mt
		r.mu.Unlock()
		return mt, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*descriptor.MaterialType), nil
}

func (r *Registry) load(path string) (*descriptor.MaterialType, error) {
	full := filepath.Join(r.config.AssetsDir, filepath.FromSlash(path))
	mt, err := descriptor.DecodeMaterialTypeFile(full)
	if err != nil {
		return nil, err
	}

	if r.config.VerifyShaderPaths {
		if err := r.verifyShader(path, mt.Pipeline.Vertex); err != nil {
			return nil, err
		}
		if mt.Pipeline.HasFragment() {
			if err := r.verifyShader(path, mt.Pipeline.Fragment); err != nil {
				return nil, err
			}
		}
	}

	core.LogDebug("loaded material type %q from %s (%d slots)", mt.Name, path, len(mt.ResourceTypes))
	return mt, nil
}

func (r *Registry) verifyShader(typePath, shaderPath string) error {
	full := filepath.Join(r.config.AssetsDir, filepath.FromSlash(shaderPath))
	if _, err := os.Stat(full); err != nil {
		return fmt.Errorf("%w: material type %s references missing shader %s", descriptor.ErrValidation, typePath, shaderPath)
	}
	return nil
}

// Invalidate drops the cached entry for path and notifies listeners.
// Returns false when the path was not cached.
func (r *Registry) Invalidate(path string) bool {
	r.mu.Lock()
	_, ok := r.loaded[path]
	if ok {
		delete(r.loaded, path)
	}
	r.mu.Unlock()

	if !ok {
		return false
	}
	r.notify(path)
	return true
}

// InvalidateAll drops every cached entry and returns the invalidated paths.
func (r *Registry) InvalidateAll() []string {
	r.mu.Lock()
	paths := maps.Keys(r.loaded)
	maps.Clear(r.loaded)
	r.mu.Unlock()

	slices.Sort(paths)
	for _, p := range paths {
		r.notify(p)
	}
	return paths
}

// InvalidateUsingShader drops every cached material type whose pipeline
// references the given shader path and returns the invalidated type paths.
func (r *Registry) InvalidateUsingShader(shaderPath string) []string {
	r.mu.Lock()
	var paths []string
	for p, mt := range r.loaded {
		if mt.UsesShader(shaderPath) {
			delete(r.loaded, p)
			paths = append(paths, p)
		}
	}
	r.mu.Unlock()

	slices.Sort(paths)
	for _, p := range paths {
		r.notify(p)
	}
	return paths
}

// Paths returns the cached material type paths, sorted.
func (r *Registry) Paths() []string {
	r.mu.RLock()
	paths := maps.Keys(r.loaded)
	r.mu.RUnlock()
	slices.Sort(paths)
	return paths
}

// OnInvalidate registers a callback invoked with the path of every
// invalidated entry. Resolved materials derived from that entry are stale
// once the callback fires.
func (r *Registry) OnInvalidate(fn func(path string)) {
	r.listenerMu.Lock()
	r.listeners = append(r.listeners, fn)
	r.listenerMu.Unlock()
}

func (r *Registry) notify(path string) {
	r.listenerMu.Lock()
	listeners := make([]func(string), len(r.listeners))
	copy(listeners, r.listeners)
	r.listenerMu.Unlock()

	for _, fn := range listeners {
		fn(path)
	}
	core.EventFire(core.EVENT_CODE_MATERIAL_TYPE_INVALIDATED, r, core.EventContext{Path: path})
}
