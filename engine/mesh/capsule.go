package mesh

import (
	"github.com/spaghettifunk/prisma/engine/descriptor"
	"github.com/spaghettifunk/prisma/engine/math"
)

// generateCapsule builds a Y-axis capsule: a cylinder of the given depth
// capped with hemispheres. Latitudes split evenly between the hemispheres,
// rings subdivide the cylinder section. The UV profile decides how the V
// range is shared between caps and cylinder.
func generateCapsule(c descriptor.Capsule) *Mesh {
	longitudes := math.Max(c.Longitudes, 3)
	latitudes := math.Max(c.Latitudes, 2)
	halfLats := math.Max(latitudes/2, 1)
	rings := math.Max(c.Rings, 1)

	halfDepth := c.Depth * 0.5
	vTop, vCyl := vSections(c)

	type ring struct {
		y      float32 // ring height
		radial float32 // distance from the Y axis
		ny     float32 // Y component of the normal
		nr     float32 // radial component of the normal
		v      float32 // texture V coordinate
	}
	var rs []ring

	// Top hemisphere, pole to equator.
	for i := 0; i <= halfLats; i++ {
		f := float32(i) / float32(halfLats)
		phi := f * math.Pi / 2 // 0 at the pole
		sin, cos := ksin(phi), kcos(phi)
		rs = append(rs, ring{
			y:      halfDepth + c.Radius*cos,
			radial: c.Radius * sin,
			ny:     cos,
			nr:     sin,
			v:      f * vTop,
		})
	}
	// Cylinder section, excluding both equators which the hemispheres own.
	for i := 1; i < rings; i++ {
		f := float32(i) / float32(rings)
		rs = append(rs, ring{
			y:      halfDepth - c.Depth*f,
			radial: c.Radius,
			ny:     0,
			nr:     1,
			v:      vTop + f*vCyl,
		})
	}
	// Bottom hemisphere, equator to pole.
	for i := 0; i <= halfLats; i++ {
		f := float32(i) / float32(halfLats)
		phi := math.Pi/2 + f*math.Pi/2
		sin, cos := ksin(phi), kcos(phi)
		rs = append(rs, ring{
			y:      -halfDepth + c.Radius*cos,
			radial: c.Radius * sin,
			ny:     cos,
			nr:     sin,
			v:      vTop + vCyl + f*(1-vTop-vCyl),
		})
	}

	m := &Mesh{}
	stride := uint32(longitudes + 1)

	for _, r := range rs {
		for lon := 0; lon <= longitudes; lon++ {
			u := float32(lon) / float32(longitudes)
			theta := u * 2 * math.Pi
			sin, cos := ksin(theta), kcos(theta)
			m.Vertices = append(m.Vertices, math.Vertex3D{
				Position: math.NewVec3(r.radial*cos, r.y, r.radial*sin),
				Normal:   math.NewVec3(r.nr*cos, r.ny, r.nr*sin).Normalized(),
				Texcoord: math.NewVec2(u, r.v),
			})
		}
	}

	// Connect consecutive rings. Triangles touching a pole ring collapse an
	// edge there, which renderers handle fine.
	for r := uint32(0); r+1 < uint32(len(rs)); r++ {
		for lon := uint32(0); lon < uint32(longitudes); lon++ {
			a := r*stride + lon
			b := (r+1)*stride + lon
			m.Indices = append(m.Indices,
				a, a+1, b,
				a+1, b+1, b,
			)
		}
	}
	return m
}

// vSections returns the V extents of the top cap and cylinder sections for
// the requested UV profile. The bottom cap takes the remainder.
func vSections(c descriptor.Capsule) (vTop, vCyl float32) {
	switch c.UVProfile {
	case descriptor.CapsuleUVUniform:
		return 1.0 / 3.0, 1.0 / 3.0
	case descriptor.CapsuleUVFixed:
		return 0.25, 0.5
	default: // Aspect
		total := c.Depth + 2*c.Radius
		if total <= 0 {
			return 1.0 / 3.0, 1.0 / 3.0
		}
		return c.Radius / total, c.Depth / total
	}
}
