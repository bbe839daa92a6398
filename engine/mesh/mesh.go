// Package mesh turns descriptor shapes into vertex/index data for the
// rendering backend. All generators produce counter-clockwise triangles with
// positions, normals and texture coordinates.
package mesh

import (
	"fmt"

	"github.com/spaghettifunk/prisma/engine/descriptor"
	"github.com/spaghettifunk/prisma/engine/math"
)

// Mesh is generated geometry for one object.
type Mesh struct {
	Vertices []math.Vertex3D
	Indices  []uint32
}

// Generate builds the mesh for a descriptor shape.
func Generate(shape descriptor.Shape) (*Mesh, error) {
	switch s := shape.(type) {
	case descriptor.Box:
		return generateBox(s.X, s.Y, s.Z), nil
	case descriptor.Cube:
		return generateBox(s.Size, s.Size, s.Size), nil
	case descriptor.Plane:
		return generatePlane(s.Size), nil
	case descriptor.Quad:
		return generateQuad(s.Size, s.Flip), nil
	case descriptor.Icosphere:
		return generateIcosphere(s.Radius, s.Subdivisions), nil
	case descriptor.Torus:
		return generateTorus(s), nil
	case descriptor.Capsule:
		return generateCapsule(s), nil
	}
	return nil, fmt.Errorf("unsupported shape %q", shape.ShapeName())
}

// GenerateFaceNormals recomputes flat face normals from the index list.
// Smoothing, if wanted, is a separate pass.
func GenerateFaceNormals(m *Mesh) {
	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0 := m.Indices[i+0]
		i1 := m.Indices[i+1]
		i2 := m.Indices[i+2]

		edge1 := m.Vertices[i1].Position.Sub(m.Vertices[i0].Position)
		edge2 := m.Vertices[i2].Position.Sub(m.Vertices[i0].Position)

		normal := edge1.Cross(edge2).Normalized()
		m.Vertices[i0].Normal = normal
		m.Vertices[i1].Normal = normal
		m.Vertices[i2].Normal = normal
	}
}
