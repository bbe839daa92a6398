package renderer

import (
	"sync/atomic"

	"github.com/spaghettifunk/prisma/engine/core"
	"github.com/spaghettifunk/prisma/engine/descriptor"
	"github.com/spaghettifunk/prisma/engine/material"
	"github.com/spaghettifunk/prisma/engine/math"
	"github.com/spaghettifunk/prisma/engine/mesh"
)

// NullBackend satisfies Backend without touching a GPU. It hands out
// sequential handles and logs what a real backend would do, which makes the
// designer usable headless and keeps the resolution pipeline exercisable in
// CI.
type NullBackend struct {
	next uint32
}

func NewNullBackend() *NullBackend {
	return &NullBackend{}
}

func (nb *NullBackend) handle() uint32 {
	return atomic.AddUint32(&nb.next, 1)
}

func (nb *NullBackend) CreatePipeline(pipeline descriptor.Pipeline) (PipelineHandle, error) {
	h := PipelineHandle(nb.handle())
	core.LogDebug("null backend: pipeline %d (vertex=%s fragment=%s)", h, pipeline.Vertex, pipeline.Fragment)
	return h, nil
}

func (nb *NullBackend) DestroyPipeline(h PipelineHandle) error {
	return nil
}

func (nb *NullBackend) CreateGeometry(m *mesh.Mesh) (GeometryHandle, error) {
	h := GeometryHandle(nb.handle())
	core.LogDebug("null backend: geometry %d (%d vertices, %d indices)", h, len(m.Vertices), len(m.Indices))
	return h, nil
}

func (nb *NullBackend) UpdateGeometry(h GeometryHandle, m *mesh.Mesh) error {
	return nil
}

func (nb *NullBackend) DestroyGeometry(h GeometryHandle) error {
	return nil
}

func (nb *NullBackend) CreateMaterial(p PipelineHandle, rm *material.ResolvedMaterial) (MaterialHandle, error) {
	h := MaterialHandle(nb.handle())
	core.LogDebug("null backend: material %d (%s, %d bindings)", h, rm.TypeName, len(rm.BindGroupLayout()))
	return h, nil
}

func (nb *NullBackend) UpdateMaterial(h MaterialHandle, p PipelineHandle, rm *material.ResolvedMaterial) error {
	return nil
}

func (nb *NullBackend) DestroyMaterial(h MaterialHandle) error {
	return nil
}

func (nb *NullBackend) UpdateTransform(h GeometryHandle, model math.Mat4) error {
	return nil
}

func (nb *NullBackend) SetCamera(view math.Mat4, projection math.Mat4) error {
	return nil
}
