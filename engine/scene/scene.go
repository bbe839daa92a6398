// Package scene tracks spawned objects and keeps their backend resources in
// step with descriptor changes. Reloads are diffed: only the parts of an
// object that actually changed (translation, material, shape) touch the
// backend.
package scene

import (
	"fmt"
	"sync"

	"golang.org/x/exp/slices"

	"github.com/spaghettifunk/prisma/engine/core"
	"github.com/spaghettifunk/prisma/engine/descriptor"
	"github.com/spaghettifunk/prisma/engine/material"
	"github.com/spaghettifunk/prisma/engine/math"
	"github.com/spaghettifunk/prisma/engine/mesh"
	"github.com/spaghettifunk/prisma/engine/renderer"
)

type Scene struct {
	mu       sync.Mutex
	entities map[string]*Entity

	registry  *material.Registry
	resolver  *material.Resolver
	backend   renderer.Backend
	pipelines *renderer.PipelineCache
}

func NewScene(registry *material.Registry, resolver *material.Resolver, backend renderer.Backend) *Scene {
	return &Scene{
		entities:  make(map[string]*Entity),
		registry:  registry,
		resolver:  resolver,
		backend:   backend,
		pipelines: renderer.NewPipelineCache(backend),
	}
}

// Spawn creates the entity for an object descriptor: material resolution,
// mesh generation, backend resources. All-or-nothing; a failed spawn leaves
// no entity behind.
func (s *Scene) Spawn(path string, desc *descriptor.ObjectDescriptor) (*Entity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entities[path]; exists {
		return nil, fmt.Errorf("object %s already spawned", path)
	}

	e, err := s.build(path, desc)
	if err != nil {
		return nil, err
	}
	s.entities[path] = e

	core.LogInfo("spawned object %s (shape=%s material=%s)", path, desc.Shape.ShapeName(), e.Resolved.TypeName)
	core.EventFire(core.EVENT_CODE_OBJECT_SPAWNED, s, core.EventContext{Path: path})
	return e, nil
}

func (s *Scene) build(path string, desc *descriptor.ObjectDescriptor) (*Entity, error) {
	resolved, err := s.resolver.Resolve(&desc.Material)
	if err != nil {
		return nil, fmt.Errorf("object %s: %w", path, err)
	}

	m, err := mesh.Generate(desc.Shape)
	if err != nil {
		return nil, fmt.Errorf("object %s: %w", path, err)
	}

	geometry, err := s.backend.CreateGeometry(m)
	if err != nil {
		return nil, fmt.Errorf("object %s: %w", path, err)
	}

	pipeline, err := s.pipelines.Get(resolved.Pipeline)
	if err != nil {
		return nil, fmt.Errorf("object %s: %w", path, err)
	}

	mat, err := s.backend.CreateMaterial(pipeline, resolved)
	if err != nil {
		return nil, fmt.Errorf("object %s: %w", path, err)
	}

	e := &Entity{
		ID:         core.NewEntityID(),
		Path:       path,
		Descriptor: desc,
		Transform:  math.NewTransformFromPosition(desc.Translation),
		Resolved:   resolved,
		Geometry:   geometry,
		Pipeline:   pipeline,
		Material:   mat,
	}
	if err := s.backend.UpdateTransform(e.Geometry, e.Transform.Local()); err != nil {
		return nil, fmt.Errorf("object %s: %w", path, err)
	}
	return e, nil
}

// Reload applies a changed descriptor to an existing entity, spawning it
// when absent. Unchanged parts keep their backend resources.
func (s *Scene) Reload(path string, desc *descriptor.ObjectDescriptor) (*Entity, error) {
	s.mu.Lock()
	e, exists := s.entities[path]
	s.mu.Unlock()

	if !exists {
		return s.Spawn(path, desc)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := e.Descriptor

	if desc.Translation != prev.Translation {
		core.LogInfo("move object %s: (%g, %g, %g)", path, desc.Translation.X, desc.Translation.Y, desc.Translation.Z)
		e.Transform.SetPosition(desc.Translation)
		if err := s.backend.UpdateTransform(e.Geometry, e.Transform.Local()); err != nil {
			return nil, fmt.Errorf("object %s: %w", path, err)
		}
	}

	if !desc.Material.Equal(&prev.Material) {
		core.LogInfo("update material of object %s", path)
		if err := s.rebindMaterial(e, &desc.Material); err != nil {
			return nil, err
		}
	}

	if desc.Shape != prev.Shape {
		core.LogInfo("update shape of object %s: %s", path, desc.Shape.ShapeName())
		m, err := mesh.Generate(desc.Shape)
		if err != nil {
			return nil, fmt.Errorf("object %s: %w", path, err)
		}
		if err := s.backend.UpdateGeometry(e.Geometry, m); err != nil {
			return nil, fmt.Errorf("object %s: %w", path, err)
		}
	}

	e.Descriptor = desc
	core.EventFire(core.EVENT_CODE_OBJECT_UPDATED, s, core.EventContext{Path: path})
	return e, nil
}

// rebindMaterial re-resolves a binding and refreshes the entity's backend
// material. Caller holds the scene lock.
func (s *Scene) rebindMaterial(e *Entity, binding *descriptor.MaterialBinding) error {
	resolved, err := s.resolver.Resolve(binding)
	if err != nil {
		return fmt.Errorf("object %s: %w", e.Path, err)
	}

	pipeline, err := s.pipelines.Get(resolved.Pipeline)
	if err != nil {
		return fmt.Errorf("object %s: %w", e.Path, err)
	}

	if err := s.backend.UpdateMaterial(e.Material, pipeline, resolved); err != nil {
		return fmt.Errorf("object %s: %w", e.Path, err)
	}
	e.Resolved = resolved
	e.Pipeline = pipeline
	return nil
}

// Remove destroys the entity spawned for path, if any.
func (s *Scene) Remove(path string) bool {
	s.mu.Lock()
	e, ok := s.entities[path]
	delete(s.entities, path)
	s.mu.Unlock()
	if !ok {
		return false
	}

	if err := s.backend.DestroyMaterial(e.Material); err != nil {
		core.LogError("destroy material of %s: %s", path, err.Error())
	}
	if err := s.backend.DestroyGeometry(e.Geometry); err != nil {
		core.LogError("destroy geometry of %s: %s", path, err.Error())
	}
	core.LogInfo("removed object %s", path)
	return true
}

// Entity returns the entity spawned for path.
func (s *Scene) Entity(path string) (*Entity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entities[path]
	return e, ok
}

// Len returns the number of spawned entities.
func (s *Scene) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entities)
}

// Paths returns the spawned object paths, sorted.
func (s *Scene) Paths() []string {
	s.mu.Lock()
	out := make([]string, 0, len(s.entities))
	for p := range s.entities {
		out = append(out, p)
	}
	s.mu.Unlock()
	slices.Sort(out)
	return out
}

// InvalidateShader drops cached pipelines built from the shader path. The
// next material rebind recreates them.
func (s *Scene) InvalidateShader(path string) []descriptor.Pipeline {
	return s.pipelines.InvalidateShader(path)
}

// ReresolveMaterialType re-resolves every entity bound to the given material
// type path, after the registry entry was invalidated. Per-entity failures
// are logged and skipped so one broken binding cannot stall the rest.
// Returns the paths of the entities that were refreshed.
func (s *Scene) ReresolveMaterialType(typePath string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var updated []string
	for path, e := range s.entities {
		if e.Descriptor.Material.MaterialType != typePath {
			continue
		}
		if err := s.rebindMaterial(e, &e.Descriptor.Material); err != nil {
			core.LogError("re-resolve %s: %s", path, err.Error())
			continue
		}
		updated = append(updated, path)
	}
	slices.Sort(updated)
	return updated
}

// RefreshTexture re-uploads the material of every entity whose resolved
// resources reference the given texture path. Returns the refreshed paths.
func (s *Scene) RefreshTexture(texturePath string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var updated []string
	for path, e := range s.entities {
		if e.Resolved == nil || !slices.Contains(e.Resolved.Textures(), texturePath) {
			continue
		}
		if err := s.backend.UpdateMaterial(e.Material, e.Pipeline, e.Resolved); err != nil {
			core.LogError("refresh texture of %s: %s", path, err.Error())
			continue
		}
		updated = append(updated, path)
	}
	slices.Sort(updated)
	return updated
}
