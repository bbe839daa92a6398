package scene

import (
	"github.com/spaghettifunk/prisma/engine/core"
	"github.com/spaghettifunk/prisma/engine/descriptor"
	"github.com/spaghettifunk/prisma/engine/material"
	"github.com/spaghettifunk/prisma/engine/math"
	"github.com/spaghettifunk/prisma/engine/renderer"
)

// Entity is one spawned object, keyed by its descriptor file path. The id
// survives in-place reloads; backend handles are replaced piecemeal as the
// descriptor changes.
type Entity struct {
	ID   core.EntityID
	Path string

	Descriptor *descriptor.ObjectDescriptor
	Transform  *math.Transform
	Resolved   *material.ResolvedMaterial

	Geometry renderer.GeometryHandle
	Pipeline renderer.PipelineHandle
	Material renderer.MaterialHandle
}
