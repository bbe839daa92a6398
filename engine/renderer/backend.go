// Package renderer defines the boundary to the rendering backend. The
// resolution pipeline stops here: it hands over validated, resolved
// materials and generated meshes; GPU resource creation and draw submission
// are the backend's problem.
package renderer

import (
	"github.com/spaghettifunk/prisma/engine/descriptor"
	"github.com/spaghettifunk/prisma/engine/material"
	"github.com/spaghettifunk/prisma/engine/math"
	"github.com/spaghettifunk/prisma/engine/mesh"
)

// Handles are backend-scoped identifiers for created resources.
type (
	PipelineHandle uint32
	GeometryHandle uint32
	MaterialHandle uint32
)

// InvalidHandle marks an unassigned handle slot.
const InvalidHandle uint32 = 0

// Backend creates and updates GPU-side resources from resolved data.
// Implementations are expected to be driven from a single goroutine.
type Backend interface {
	// CreatePipeline compiles (or looks up) the pipeline for a shader pair.
	CreatePipeline(pipeline descriptor.Pipeline) (PipelineHandle, error)
	// DestroyPipeline releases a pipeline.
	DestroyPipeline(h PipelineHandle) error

	// CreateGeometry uploads a generated mesh.
	CreateGeometry(m *mesh.Mesh) (GeometryHandle, error)
	// UpdateGeometry replaces the mesh data behind an existing handle.
	UpdateGeometry(h GeometryHandle, m *mesh.Mesh) error
	DestroyGeometry(h GeometryHandle) error

	// CreateMaterial uploads the resources of a resolved material as bind
	// group 2, laid out per ResolvedMaterial.BindGroupLayout.
	CreateMaterial(p PipelineHandle, rm *material.ResolvedMaterial) (MaterialHandle, error)
	// UpdateMaterial re-uploads resources behind an existing handle.
	UpdateMaterial(h MaterialHandle, p PipelineHandle, rm *material.ResolvedMaterial) error
	DestroyMaterial(h MaterialHandle) error

	// UpdateTransform sets the model matrix of bind group 1 for a geometry.
	UpdateTransform(h GeometryHandle, model math.Mat4) error
	// SetCamera sets the view-projection data of bind group 0.
	SetCamera(view math.Mat4, projection math.Mat4) error
}
