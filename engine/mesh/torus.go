package mesh

import (
	"github.com/spaghettifunk/prisma/engine/descriptor"
	"github.com/spaghettifunk/prisma/engine/math"
)

// generateTorus builds a torus in the XZ plane. Radius is the distance from
// the center to the tube center, RingRadius the tube radius.
func generateTorus(t descriptor.Torus) *Mesh {
	segments := math.Max(t.SubdivisionsSegments, 3)
	sides := math.Max(t.SubdivisionsSides, 3)

	m := &Mesh{
		Vertices: make([]math.Vertex3D, 0, (segments+1)*(sides+1)),
		Indices:  make([]uint32, 0, segments*sides*6),
	}

	for seg := 0; seg <= segments; seg++ {
		u := float32(seg) / float32(segments)
		theta := u * 2 * math.Pi

		// Center of the tube ring for this segment.
		ringCenter := math.NewVec3(kcos(theta)*t.Radius, 0, ksin(theta)*t.Radius)

		for side := 0; side <= sides; side++ {
			v := float32(side) / float32(sides)
			phi := v * 2 * math.Pi

			// Normal points from the tube center outwards.
			normal := math.NewVec3(
				kcos(theta)*kcos(phi),
				ksin(phi),
				ksin(theta)*kcos(phi),
			)
			m.Vertices = append(m.Vertices, math.Vertex3D{
				Position: ringCenter.Add(normal.MulScalar(t.RingRadius)),
				Normal:   normal,
				Texcoord: math.NewVec2(u, v),
			})
		}
	}

	stride := uint32(sides + 1)
	for seg := uint32(0); seg < uint32(segments); seg++ {
		for side := uint32(0); side < uint32(sides); side++ {
			a := seg*stride + side
			b := (seg+1)*stride + side
			m.Indices = append(m.Indices,
				a, b, a+1,
				b, b+1, a+1,
			)
		}
	}
	return m
}
